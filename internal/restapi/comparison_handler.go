package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

const maxComparisonCountries = 5

func (api *RestAPI) comparisonHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")
	countryCodes := utils.ParseCodeListParam(r.URL.Query(), "countries")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	if len(countryCodes) < 2 {
		fieldErrors["countries"] = append(fieldErrors["countries"], "at least two country codes are required")
	}
	if len(countryCodes) > maxComparisonCountries {
		fieldErrors["countries"] = append(fieldErrors["countries"],
			fmt.Sprintf("at most %d countries can be compared", maxComparisonCountries))
	}
	for _, code := range countryCodes {
		if err := utils.ValidateCountryCode(code); err != nil {
			fieldErrors["countries"] = append(fieldErrors["countries"], err.Error())
		}
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

	response := models.NewListResponse(observations, observationReferences(observations))
	api.sendResponse(w, r, response)
}
