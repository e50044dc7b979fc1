package adminkit

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// LoggingContext returns a copy of ctx carrying logger. Every render and
// injection call logs through the logger found in its context; without one,
// nothing is logged.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// logger returns the context's logger tagged with the part of the kit doing
// the logging, or a logger that discards everything.
func logger(ctx context.Context, part string) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || l == nil {
		return discard
	}
	return l.With(slog.String("part", part))
}

var discard = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
