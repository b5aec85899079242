package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) countryHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractCountryCode(r, "id")

	if err := utils.ValidateCountryCode(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	country := reference.CountryByCode(code)
	if country == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(country, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
