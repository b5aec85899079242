package restapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"macropilot.econdata.org/internal/app"
	"macropilot.econdata.org/internal/chat"
	"macropilot.econdata.org/internal/llm"
	"macropilot.econdata.org/internal/metrics"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
)

// createTestApi creates a RestAPI backed by simulated data and a stub
// model server that completes every prompt successfully.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithModel(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"content":"Test analysis.","stop":true}`)
	})
}

func createTestApiWithModel(t *testing.T, modelHandler http.HandlerFunc) *RestAPI {
	t.Helper()

	modelServer := httptest.NewServer(modelHandler)
	t.Cleanup(modelServer.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := triangulate.NewFetcher(triangulate.Options{Workers: 4, Logger: logger})

	application := &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Logger:  logger,
		Fetcher: fetcher,
		Metrics: metrics.New(),
		Chat: chat.NewEngine(chat.EngineOptions{
			Fetcher: fetcher,
			Model:   llm.New(modelServer.URL, logger),
			Logger:  logger,
		}),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)
	return server
}

// getJSON performs a GET and returns the raw body for responses that do
// not use the standard envelope, such as validation errors.
func getJSON(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// entryFromModel extracts data.entry from a decoded envelope.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

// listFromModel extracts data.list from a decoded envelope.
func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	return list
}
