package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropilot.econdata.org/internal/reference"
)

func TestCountriesHandlerReturnsFullCatalog(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/countries.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	assert.Len(t, list, reference.CountryCount()+1)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, first["code"])
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["region"])
}

func TestCountryHandlerReturnsEntry(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/country/JPN?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "JPN", entry["code"])
	assert.Equal(t, "Japan", entry["name"])
	assert.Equal(t, "Asia", entry["region"])
}

func TestCountryHandlerIsCaseInsensitive(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/country/jpn?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, "JPN", entry["code"])
}

func TestCountryHandlerReturnsNotFoundForUnknownCode(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/country/ZZZ?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
	assert.Equal(t, 2, model.Version)
}

func TestCountryHandlerRejectsMalformedCode(t *testing.T) {
	api := createTestApi(t)
	server := newTestServer(t, api)

	resp, body := getJSON(t, server.URL+"/api/v2/country/TOOLONG?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "fieldErrors")
}
