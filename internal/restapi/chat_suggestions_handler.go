package restapi

import (
	"net/http"
	"strings"

	"macropilot.econdata.org/internal/chat"
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/utils"
)

func (api *RestAPI) chatSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	countryCode := strings.ToUpper(r.URL.Query().Get("country"))

	if countryCode != "" {
		if err := utils.ValidateCountryCode(countryCode); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"country": {err.Error()},
			})
			return
		}
	}

	references := models.NewReferencesBuilder()
	references.AddCountry(countryCode)

	response := models.NewListResponse(chat.SuggestedQuestions(countryCode), references.Build())
	api.sendResponse(w, r, response)
}
