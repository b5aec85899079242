package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"macropilot.econdata.org/internal/logging"
)

// EnsureModel makes sure the GGUF weights exist at path, downloading them
// from url when missing. The download streams to a partial file and renames
// on success so an interrupted fetch never leaves truncated weights behind.
func EnsureModel(ctx context.Context, url, path string, logger *slog.Logger) error {
	if _, err := os.Stat(path); err == nil {
		logger.Info("model found locally", slog.String("path", path))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating model directory: %w", err)
	}

	logger.Info("downloading model", slog.String("url", url), slog.String("path", path))
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building model request: %w", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading model: %w", err)
	}
	defer logging.SafeCloseWithLogging(res.Body, logger, "model download body")

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading model: status=%d", res.StatusCode)
	}

	partial := path + ".partial"
	out, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("creating partial file: %w", err)
	}

	written, err := io.Copy(out, res.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(partial); removeErr != nil {
			logger.Warn("failed to remove partial model file", slog.String("path", partial))
		}
		return fmt.Errorf("writing model file: %w", err)
	}

	if err := os.Rename(partial, path); err != nil {
		return fmt.Errorf("renaming model file: %w", err)
	}

	logging.LogOperation(logger, "model_download",
		slog.Duration("duration", time.Since(start)),
		slog.Int64("bytes", written))
	return nil
}
