package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) indicatorHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractIndicatorCode(r, "id")

	if err := utils.ValidateIndicatorCode(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	indicator := reference.IndicatorByCode(code)
	if indicator == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(indicator, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
