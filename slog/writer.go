package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/feedtab"
)

// Ensure LoggingResultWriter implements feedtab.ResultWriter.
var _ feedtab.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with logging. Failures are logged
// at error level.
type LoggingResultWriter struct {
	next   feedtab.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next feedtab.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, source string, res *feedtab.Result) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		var mode feedtab.Mode
		var rows int
		if res != nil {
			mode, rows = res.Mode, res.Len()
		}
		w.logger.Log(ctx, level, "write",
			"source", source,
			"mode", mode.String(),
			"rows", rows,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, source, res)
}
