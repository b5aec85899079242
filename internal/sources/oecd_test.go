package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOECDSkipsNonMembers(t *testing.T) {
	oecd := NewOECD(newTestClient())
	point := oecd.Fetch(context.Background(), indicator(t, "gdp_growth"), country(t, "CHN"))
	assert.True(t, point.Skipped())
}

func TestOECDSkipsIndicatorsWithoutDataset(t *testing.T) {
	oecd := NewOECD(newTestClient())
	point := oecd.Fetch(context.Background(), indicator(t, "gdp_per_capita"), country(t, "DEU"))
	assert.True(t, point.Skipped())
}

func TestOECDParsesSDMXObservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/QNA/DEU", r.URL.Path)
		assert.Equal(t, "jsondata", r.URL.Query().Get("format"))

		_, _ = w.Write([]byte(`{
			"data": {
				"dataSets": [{"observations": {"0:0:0:0": [1.37, 0]}}],
				"structures": [{
					"dimensions": {
						"observation": [
							{"id": "TIME_PERIOD", "values": [{"id": "2025-Q3"}, {"id": "2025-Q4"}]}
						]
					}
				}]
			}
		}`))
	}))
	defer server.Close()

	oecd := NewOECD(newTestClient())
	oecd.baseURL = server.URL

	point := oecd.Fetch(context.Background(), indicator(t, "gdp_growth"), country(t, "DEU"))
	require.NoError(t, point.Err)
	require.NotNil(t, point.Value)
	assert.InDelta(t, 1.37, *point.Value, 1e-9)
	assert.Equal(t, "2025-Q4", point.Period)
}

func TestOECDErrorsOnEmptyDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"dataSets": [{"observations": {}}]}}`))
	}))
	defer server.Close()

	oecd := NewOECD(newTestClient())
	oecd.baseURL = server.URL

	point := oecd.Fetch(context.Background(), indicator(t, "inflation"), country(t, "FRA"))
	require.Error(t, point.Err)
	assert.Contains(t, point.Err.Error(), "no observations")
}
