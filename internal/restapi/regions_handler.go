package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
)

// regionEntry summarizes one regional grouping.
type regionEntry struct {
	Name         string `json:"name"`
	CountryCount int    `json:"countryCount"`
}

func (api *RestAPI) regionsHandler(w http.ResponseWriter, r *http.Request) {
	names := reference.RegionNames()

	regions := make([]regionEntry, 0, len(names))
	for _, name := range names {
		regions = append(regions, regionEntry{
			Name:         name,
			CountryCount: len(reference.CountriesForRegion(name)),
		})
	}

	response := models.NewListResponse(regions, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
