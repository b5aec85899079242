package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()

		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		err := assert.AnError
		LogError(logger, "failed to fetch data", err,
			slog.String("url", "http://example.com"),
			slog.String("component", "http_client"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to fetch data"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"url":"http://example.com"`)
		assert.Contains(t, output, `"component":"http_client"`)
	})

	t.Run("LogOperation drops zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "model_loaded",
			slog.String("path", "models/analyst.gguf"),
			slog.Int("context_size", 768),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"model_loaded"`)
		assert.Contains(t, output, `"path":"models/analyst.gguf"`)
		assert.Contains(t, output, `"context_size":768`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/v2/countries.json", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/v2/countries.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
	})

	t.Run("LogSourceFetch logs success at info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogSourceFetch(logger, "worldbank", "gdp_growth", "DEU", 250*time.Millisecond, nil)

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"source_fetch"`)
		assert.Contains(t, output, `"source":"worldbank"`)
		assert.Contains(t, output, `"indicator":"gdp_growth"`)
		assert.Contains(t, output, `"country":"DEU"`)
		assert.Contains(t, output, `"duration_ms":250`)
	})

	t.Run("LogSourceFetch logs failure at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogSourceFetch(logger, "fred", "inflation", "BRA", time.Millisecond, assert.AnError)

		output := buf.String()
		assert.Contains(t, output, `"level":"WARN"`)
		assert.Contains(t, output, `"msg":"source_fetch_failed"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := context.Background()
		ctx = WithLogger(ctx, logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")

		output := buf.String()
		assert.Contains(t, output, "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		ctx := context.Background()
		logger := FromContext(ctx)

		require.NotNil(t, logger)
		logger.Info("test message")
	})
}
