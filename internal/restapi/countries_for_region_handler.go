package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) countriesForRegionHandler(w http.ResponseWriter, r *http.Request) {
	region := utils.ExtractIDFromParams(r, "id")

	countries := reference.CountriesForRegion(region)
	if countries == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewListResponse(countries, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
