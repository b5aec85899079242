package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"time"
)

type loggerKey struct{}

// NewStructuredLogger creates a structured logger with JSON output.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// LevelForEnv maps the environment name to a log level: development is
// chatty, everything else starts at INFO.
func LevelForEnv(env string) slog.Level {
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewErrorLogger adapts a structured logger for use as an http.Server
// ErrorLog.
func NewErrorLogger(logger *slog.Logger) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), slog.LevelError)
}

// LogError logs an error with structured context.
func LogError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))

	for _, attr := range attrs {
		args = append(args, attr)
	}

	logger.Error(message, args...)
}

// LogOperation logs an operation with structured context. Zero-value
// durations are dropped so unfinished operations do not report 0ms.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "duration" && attr.Value.Duration() == 0 {
			continue
		}
		args = append(args, attr)
	}

	logger.Info(operation, args...)
}

// LogHTTPRequest logs HTTP request details.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs)+4)
	args = append(args,
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	)

	for _, attr := range attrs {
		args = append(args, attr)
	}

	logger.Info("http_request", args...)
}

// LogSourceFetch logs one upstream data source call. Failed fetches are
// logged at WARN because triangulation degrades rather than fails.
func LogSourceFetch(logger *slog.Logger, source, indicator, country string, dur time.Duration, err error) {
	if logger == nil {
		return
	}

	args := []any{
		slog.String("source", source),
		slog.String("indicator", indicator),
		slog.String("country", country),
		slog.Float64("duration_ms", float64(dur.Microseconds())/1000),
	}

	if err != nil {
		args = append(args, slog.String("error", err.Error()))
		logger.Warn("source_fetch_failed", args...)
		return
	}
	logger.Info("source_fetch", args...)
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves a logger from the context, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
