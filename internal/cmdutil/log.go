// internal/cmdutil/log.go
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// LogConfig selects the handler installed for a run.
type LogConfig struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Quiet  bool   // only errors
}

// NewLogger builds a slog logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("unknown log level %q", c.Level)
	}
	if c.Quiet {
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

// WithLogger returns ctx carrying a logger built from c.
func (c LogConfig) WithLogger(ctx context.Context, w io.Writer) (context.Context, error) {
	l, err := c.NewLogger(w)
	if err != nil {
		return ctx, err
	}
	return ctxlog.Context(ctx, l), nil
}

// Warnf logs a formatted warning on the context's logger.
func Warnf(ctx context.Context, format string, a ...any) {
	ctxlog.Logger(ctx).Warn(fmt.Sprintf(format, a...))
}
