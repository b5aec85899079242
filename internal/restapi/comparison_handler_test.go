package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonHandlerPreservesRequestOrder(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/comparison/gdp_growth?key=TEST&countries=JPN,USA,DEU")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 3)
	assert.Equal(t, "JPN", list[0].(map[string]interface{})["countryCode"])
	assert.Equal(t, "USA", list[1].(map[string]interface{})["countryCode"])
	assert.Equal(t, "DEU", list[2].(map[string]interface{})["countryCode"])
}

func TestComparisonHandlerRejectsAggregate(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/comparison/gdp_growth?key=TEST&countries=USA,EUU")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestComparisonHandlerRequiresTwoCountries(t *testing.T) {
	api := createTestApi(t)
	server := newTestServer(t, api)

	resp, body := getJSON(t, server.URL+"/api/v2/comparison/gdp_growth?key=TEST&countries=USA")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "countries")
}
