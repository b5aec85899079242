package restapi

import (
	"net/http"

	"macropilot.econdata.org/internal/models"
)

func (api *RestAPI) chatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		api.validationErrorResponse(w, r, map[string][]string{
			"conversationId": {"conversationId is required"},
		})
		return
	}

	if err := api.Chat.ClearHistory(r.Context(), conversationID); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewOKResponse(nil)
	api.sendResponse(w, r, response)
}
