package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
)

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(reference.AllIndicators(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
