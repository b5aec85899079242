package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropilot.econdata.org/internal/reference"
)

func TestIndicatorsHandlerListsCatalog(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/indicators.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	assert.Len(t, list, len(reference.IndicatorCodes()))

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gdp_growth", first["code"])
	assert.NotEmpty(t, first["displayName"])
	assert.NotEmpty(t, first["unit"])
}

func TestIndicatorHandlerReturnsEntry(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/indicator/inflation?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "inflation", entry["code"])
	assert.Equal(t, "Inflation", entry["displayName"])
}

func TestIndicatorHandlerNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/indicator/money_velocity?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestIndicatorHandlerRejectsMalformedCode(t *testing.T) {
	api := createTestApi(t)
	server := newTestServer(t, api)

	resp, body := getJSON(t, server.URL+"/api/v2/indicator/1nflation?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "fieldErrors")
}
