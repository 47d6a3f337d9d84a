package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
)

// LoggingOption configures Logging.
type LoggingOption func(*accessLog)

// WithQuietPaths drops successful requests under the given path prefixes to
// DEBUG. Meant for probe endpoints that would otherwise flood the log.
func WithQuietPaths(prefixes ...string) LoggingOption {
	return func(a *accessLog) {
		a.quiet = append(a.quiet, prefixes...)
	}
}

type accessLog struct {
	logger *slog.Logger
	quiet  []string
}

// Logging writes an access log entry per request and stores a request-scoped
// logger, tagged with request and correlation IDs, for logging.FromContext.
// Completion is logged at WARN for 4xx and ERROR for 5xx.
func Logging(logger *slog.Logger, opts ...LoggingOption) func(http.Handler) http.Handler {
	a := &accessLog{logger: logger}
	for _, opt := range opts {
		opt(a)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := a.logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			quiet := a.isQuiet(r.URL.Path)
			startLevel := slog.LevelInfo
			if quiet {
				startLevel = slog.LevelDebug
			}
			reqLogger.Log(ctx, startLevel, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := completionLevel(rec.status)
			if quiet && level == slog.LevelInfo {
				level = slog.LevelDebug
			}
			reqLogger.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func (a *accessLog) isQuiet(path string) bool {
	for _, p := range a.quiet {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
