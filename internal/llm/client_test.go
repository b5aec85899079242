package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthy(t *testing.T) {
	status := http.StatusServiceUnavailable
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(status)
	}))
	defer server.Close()

	client := New(server.URL, testLogger())

	assert.False(t, client.Healthy(context.Background()))

	status = http.StatusOK
	assert.True(t, client.Healthy(context.Background()))
}

func TestHealthyServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL, testLogger())
	assert.False(t, client.Healthy(context.Background()))
}

func TestCompleteReturnsFullText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/completion", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, false, req["stream"])
		assert.Equal(t, float64(500), req["n_predict"])
		assert.NotEmpty(t, req["prompt"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"content":"GDP growth is solid.","stop":true}`)
	}))
	defer server.Close()

	client := New(server.URL, testLogger())

	text, err := client.Complete(context.Background(), BuildPrompt("How is US GDP?"), DefaultGenerationParams())
	require.NoError(t, err)
	assert.Equal(t, "GDP growth is solid.", text)
}

func TestCompleteNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, testLogger())

	_, err := client.Complete(context.Background(), "prompt", DefaultGenerationParams())
	assert.ErrorContains(t, err, "status=500")
}

func TestStreamDeliversTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, true, req["stream"])

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"content\":\"Inflation \",\"stop\":false}\n\n")
		fmt.Fprint(w, "data: {\"content\":\"is easing.\",\"stop\":false}\n\n")
		fmt.Fprint(w, "data: {\"content\":\"\",\"stop\":true}\n\n")
	}))
	defer server.Close()

	client := New(server.URL, testLogger())

	var tokens []string
	err := client.Stream(context.Background(), "prompt", DefaultGenerationParams(), func(token string) error {
		tokens = append(tokens, token)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inflation ", "is easing."}, tokens)
}

func TestStreamStopsWhenCallbackFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for i := 0; i < 10; i++ {
			fmt.Fprintf(w, "data: {\"content\":\"tok%d \",\"stop\":false}\n\n", i)
		}
		fmt.Fprint(w, "data: {\"content\":\"\",\"stop\":true}\n\n")
	}))
	defer server.Close()

	client := New(server.URL, testLogger())

	calls := 0
	wantErr := errors.New("client went away")
	err := client.Stream(context.Background(), "prompt", DefaultGenerationParams(), func(string) error {
		calls++
		if calls == 2 {
			return wantErr
		}
		return nil
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, calls)
}
