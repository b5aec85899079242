package restapi

import (
	"errors"
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

const defaultRankingLimit = 10

func (api *RestAPI) rankingsHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	limit, fieldErrors := utils.ParseIntParam(r.URL.Query(), "limit", defaultRankingLimit, fieldErrors)
	if limit < 0 {
		fieldErrors["limit"] = append(fieldErrors["limit"], "limit must not be negative")
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

	limitExceeded := limit > 0 && len(observations) == limit
	response := models.NewListResponseWithRange(observations, observationReferences(observations), limitExceeded)
	api.sendResponse(w, r, response)
}
