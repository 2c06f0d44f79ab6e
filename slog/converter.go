// Package slog provides logging decorators for feedtab services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/feedtab"
)

// Ensure LoggingConverter implements feedtab.Converter.
var _ feedtab.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   feedtab.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next feedtab.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string, mode feedtab.Mode) (res *feedtab.Result, err error) {
	defer func(begin time.Time) {
		var records int
		if res != nil {
			records = res.Len()
			mode = res.Mode
		}
		c.logger.Debug("convert",
			"mode", mode.String(),
			"bytes", len(html),
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html, mode)
}
