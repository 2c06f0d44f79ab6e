package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/feedtab"
)

// Ensure LoggingDetector implements feedtab.ModeDetector.
var _ feedtab.ModeDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a ModeDetector with debug logging.
type LoggingDetector struct {
	next   feedtab.ModeDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next feedtab.ModeDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// DetectMode delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) DetectMode(html string) feedtab.Mode {
	begin := time.Now()
	mode := d.next.DetectMode(html)
	d.logger.Debug("mode detection",
		"mode", mode.String(),
		"duration", time.Since(begin),
	)
	return mode
}
