package restapi

import (
	"errors"
	"net/http"

	"macropilot.econdata.org/internal/charts"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) chartGaugeHandler(w http.ResponseWriter, r *http.Request) {
	indicatorCode := utils.ExtractIndicatorCode(r, "indicator")
	countryCode := utils.ExtractCountryCode(r, "country")

	fieldErrors := map[string][]string{}
	if err := utils.ValidateIndicatorCode(indicatorCode); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	if err := utils.ValidateCountryCode(countryCode); err != nil {
		fieldErrors["country"] = []string{err.Error()}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	obs, err := api.Fetcher.Observe(r.Context(), indicatorCode, countryCode)
	if err != nil {
		if errors.Is(err, triangulate.ErrUnknownCountry) || errors.Is(err, triangulate.ErrUnknownIndicator) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	chart := charts.Gauge(obs.ConsensusValue, indicatorCode, obs.CountryName)
	if chart == nil {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewReferencesBuilder()
	references.AddCountry(obs.CountryCode)
	references.AddIndicator(obs.IndicatorCode)

	response := models.NewEntryResponse(chart, references.Build())
	api.sendResponse(w, r, response)
}
