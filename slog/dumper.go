// Package slog provides logging decorators for gddoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gddoc/gddoc"
)

// Ensure LoggingDumper implements gddoc.APIDumper.
var _ gddoc.APIDumper = (*LoggingDumper)(nil)

// LoggingDumper wraps an APIDumper with timing logs. The engine dump is the
// one slow step in the pipeline, so it gets its own instrumentation.
type LoggingDumper struct {
	next   gddoc.APIDumper
	logger *slog.Logger
}

// NewLoggingDumper creates a new LoggingDumper.
func NewLoggingDumper(next gddoc.APIDumper, logger *slog.Logger) *LoggingDumper {
	return &LoggingDumper{next: next, logger: logger}
}

// Dump delegates to the wrapped dumper, logging duration and outcome.
func (d *LoggingDumper) Dump(ctx context.Context) ([]byte, error) {
	begin := time.Now()
	data, err := d.next.Dump(ctx)
	if err != nil {
		d.logger.Error("api dump failed",
			"duration", time.Since(begin),
			"code", gddoc.ErrorCode(err),
		)
		return nil, err
	}
	d.logger.Info("api dump",
		"duration", time.Since(begin),
		"bytes", len(data),
	)
	return data, nil
}
