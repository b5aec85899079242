package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRegionHandlerBuildsConfidenceColoredBars(t *testing.T) {
	endpoint := "/api/v2/chart/region/gdp_growth?key=TEST&region=" + url.QueryEscape("Oceania")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "hbar", entry["chartType"])
	assert.Equal(t, "GDP Growth by Country", entry["title"])

	series, ok := entry["series"].([]interface{})
	require.True(t, ok)
	require.Len(t, series, 1)

	points := series[0].(map[string]interface{})["data"].([]interface{})
	assert.Len(t, points, 2)
	for _, p := range points {
		point := p.(map[string]interface{})
		assert.NotEmpty(t, point["color"])
		assert.NotNil(t, point["value"])
	}
}

func TestChartRankingHandlerLimitsSeries(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/chart/ranking/unemployment?key=TEST&limit=5")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	series := entry["series"].([]interface{})
	points := series[0].(map[string]interface{})["data"].([]interface{})
	assert.Len(t, points, 5)
}

func TestChartComparisonHandlerHasFourSeries(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/chart/comparison/inflation?key=TEST&countries=USA,JPN")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "group", entry["barMode"])

	series := entry["series"].([]interface{})
	require.Len(t, series, 4)
	assert.Equal(t, "Consensus", series[3].(map[string]interface{})["name"])
}

func TestChartProfileHandlerBuildsRadar(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/chart/profile/JPN?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "radar", entry["chartType"])
	assert.Equal(t, "Economic Profile: Japan", entry["title"])

	series := entry["series"].([]interface{})
	require.Len(t, series, 1)

	points := series[0].(map[string]interface{})["data"].([]interface{})
	assert.Len(t, points, len(profileIndicators))
	for _, p := range points {
		value := p.(map[string]interface{})["value"].(float64)
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
	}
}

func TestChartGaugeHandlerBuildsDial(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/chart/gauge/gdp_growth/JPN?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "gauge", entry["chartType"])

	gauge, ok := entry["gauge"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, -5.0, gauge["min"])
	assert.Equal(t, 15.0, gauge["max"])

	steps := gauge["steps"].([]interface{})
	assert.Len(t, steps, 3)
}

func TestChartProfileHandlerUnknownCountry(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v2/chart/profile/XXX?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
