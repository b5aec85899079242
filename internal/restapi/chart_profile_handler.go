package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/charts"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

// profileIndicators are the series shown on the radar profile.
var profileIndicators = []string{
	"gdp_growth", "inflation", "unemployment", "gdp_per_capita", "consumer_confidence",
}

func (api *RestAPI) chartProfileHandler(w http.ResponseWriter, r *http.Request) {
	countryCode := utils.ExtractCountryCode(r, "country")

	if err := utils.ValidateCountryCode(countryCode); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"country": {err.Error()},
		})
		return
	}

	country := reference.CountryByCode(countryCode)
	if country == nil {
		api.sendNotFound(w, r)
		return
	}

	observations := make([]*triangulate.Observation, 0, len(profileIndicators))
	for _, indicatorCode := range profileIndicators {
		obs, err := api.Fetcher.Observe(r.Context(), indicatorCode, countryCode)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		observations = append(observations, obs)
	}

	chart := charts.Profile(observations, country.Name)
	if chart == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(chart, observationReferences(observations))
	api.sendResponse(w, r, response)
}
