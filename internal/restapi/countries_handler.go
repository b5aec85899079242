package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	codes := reference.AllCountryCodes()

	countries := make([]reference.Country, 0, len(codes))
	for _, code := range codes {
		countries = append(countries, *reference.CountryByCode(code))
	}

	response := models.NewListResponse(countries, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
