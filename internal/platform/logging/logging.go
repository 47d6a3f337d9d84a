// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr, logging.WithService("adhesion-api"))
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "company registered")
//
// Error logs from services carry the operation, entity identifiers and the
// full error chain:
//
//	logger.ErrorContext(ctx, "failed to register company",
//	    slog.String("operation", "RegisterCompany"),
//	    slog.String("tax_id", cmd.TaxID),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New runs attributes through a masq redactor, so
// credentials never reach the output even when a call site forgets to drop
// them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// Option customizes a logger built by New.
type Option func(*settings)

type settings struct {
	service string
}

// WithService tags every record with a "service" attribute. Used when
// several binaries ship logs to the same sink.
func WithService(name string) Option {
	return func(s *settings) { s.service = name }
}

// New creates a logger writing to w. format "text" selects the logfmt-style
// text handler and anything else JSON. level accepts debug, info, warn or
// error in any case; anything else means info. Debug loggers include the
// source location.
func New(level, format string, w io.Writer, opts ...Option) *slog.Logger {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	lvl := ParseLevel(level)
	handlerOpts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	logger := slog.New(handler)
	if s.service != "" {
		logger = logger.With(slog.String("service", s.service))
	}
	return logger
}

// ParseLevel maps a configured level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
