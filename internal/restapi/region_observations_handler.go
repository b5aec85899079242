package restapi

import (
	"errors"
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) regionObservationsHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")
	region := r.URL.Query().Get("region")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	if region == "" {
		fieldErrors["region"] = []string{"region is required"}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations, err := api.Fetcher.RegionData(r.Context(), indicatorCode, region)
	if err != nil {
		if errors.Is(err, triangulate.ErrUnknownRegion) || errors.Is(err, triangulate.ErrUnknownIndicator) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(observations, observationReferences(observations))
	api.sendResponse(w, r, response)
}
