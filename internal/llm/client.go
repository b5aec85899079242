package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"macropilot.econdata.org/internal/logging"
)

// Client talks to a llama.cpp server over its native HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	logger  *slog.Logger
}

// New builds a client for the llama.cpp server at baseURL. Completion
// requests can legitimately run for minutes on CPU-only hosts, so the
// transport timeout is generous and callers bound requests with contexts.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 5 * time.Minute,
		},
		logger: logger,
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	GenerationParams
}

type completionChunk struct {
	Content string `json:"content"`
	Stop    bool   `json:"stop"`
}

// Healthy reports whether the server is up and the model is loaded.
// llama.cpp answers 503 while the model is still loading.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return false
	}
	defer logging.SafeCloseWithLogging(res.Body, c.logger, "llama health body")

	return res.StatusCode == http.StatusOK
}

// Complete runs a blocking completion and returns the full generated text.
func (c *Client) Complete(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	res, err := c.postCompletion(ctx, prompt, params, false)
	if err != nil {
		return "", err
	}
	defer logging.SafeCloseWithLogging(res.Body, c.logger, "llama completion body")

	var chunk completionChunk
	if err := json.NewDecoder(res.Body).Decode(&chunk); err != nil {
		return "", fmt.Errorf("decoding completion: %w", err)
	}
	return chunk.Content, nil
}

// Stream runs a streaming completion, invoking fn for every token the
// server emits. Streaming stops when fn returns an error or the server
// signals the final chunk.
func (c *Client) Stream(ctx context.Context, prompt string, params GenerationParams, fn func(token string) error) error {
	res, err := c.postCompletion(ctx, prompt, params, true)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(res.Body, c.logger, "llama stream body")

	scanner := bufio.NewScanner(res.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &chunk); err != nil {
			return fmt.Errorf("decoding stream chunk: %w", err)
		}
		if chunk.Content != "" {
			if err := fn(chunk.Content); err != nil {
				return err
			}
		}
		if chunk.Stop {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}
	return nil
}

func (c *Client) postCompletion(ctx context.Context, prompt string, params GenerationParams, stream bool) (*http.Response, error) {
	body, err := json.Marshal(completionRequest{
		Prompt:           prompt,
		Stream:           stream,
		GenerationParams: params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/completion", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		logging.SafeCloseWithLogging(res.Body, c.logger, "llama completion body")
		return nil, fmt.Errorf("completion status=%d", res.StatusCode)
	}
	return res, nil
}
