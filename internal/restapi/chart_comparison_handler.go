package restapi

import (
	"errors"
	"net/http"

	"macropilot.econdata.org/internal/charts"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) chartComparisonHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")
	countryCodes := utils.ParseCodeListParam(r.URL.Query(), "countries")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	if len(countryCodes) == 0 {
		fieldErrors["countries"] = []string{"countries is required"}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations, err := api.Fetcher.Comparison(r.Context(), indicatorCode, countryCodes)
	if err != nil {
		if errors.Is(err, triangulate.ErrUnknownCountry) || errors.Is(err, triangulate.ErrUnknownIndicator) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	chart := charts.Comparison(observations, indicatorCode)
	if chart == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(chart, observationReferences(observations))
	api.sendResponse(w, r, response)
}
