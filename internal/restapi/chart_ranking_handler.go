package restapi

import (
	"errors"
	"net/http"

	"macropilot.econdata.org/internal/charts"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

const defaultRankingChartSize = 15

func (api *RestAPI) chartRankingHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	limit, fieldErrors := utils.ParseIntParam(r.URL.Query(), "limit", defaultRankingChartSize, fieldErrors)
	if limit <= 0 {
		fieldErrors["limit"] = append(fieldErrors["limit"], "limit must be positive")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations, err := api.Fetcher.GlobalRanking(r.Context(), indicatorCode, limit)
	if err != nil {
		if errors.Is(err, triangulate.ErrUnknownIndicator) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	chart := charts.Ranking(observations, indicatorCode, limit)
	if chart == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(chart, observationReferences(observations))
	api.sendResponse(w, r, response)
}
