package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/utils"
)

type chatRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversationId"`
	Stream         bool   `json:"stream"`
}

func (api *RestAPI) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be valid JSON"},
		})
		return
	}

	query, err := utils.ValidateAndSanitizeQuery(req.Query)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {err.Error()},
		})
		return
	}
	if query == "" {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {"query is required"},
		})
		return
	}

	if req.Stream {
		api.streamChat(w, r, req.ConversationID, query)
		return
	}

	reply, err := api.Chat.Respond(r.Context(), req.ConversationID, query)
	if err != nil {
		api.badGatewayResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(reply, observationReferences(reply.Data))
	api.sendResponse(w, r, response)
}

// streamChat emits the answer as server-sent events: one "token" event per
// generated token, then a final "done" event carrying the full reply with
// its supporting data.
func (api *RestAPI) streamChat(w http.ResponseWriter, r *http.Request, conversationID, query string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		api.serverErrorResponse(w, r, fmt.Errorf("streaming unsupported by connection"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sentAny := false
	reply, err := api.Chat.RespondStream(r.Context(), conversationID, query, func(token string) error {
		payload, err := json.Marshal(map[string]string{"token": token})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: token\ndata: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		sentAny = true
		return nil
	})
	if err != nil {
		if !sentAny {
			api.badGatewayResponse(w, r, err)
			return
		}
		// Headers are gone; all we can do is log and end the stream.
		api.Logger.Error("chat stream aborted", "error", err)
		return
	}

	payload, err := json.Marshal(reply)
	if err != nil {
		api.Logger.Error("failed to encode final chat event", "error", err)
		return
	}
	if _, err := fmt.Fprintf(w, "event: done\ndata: %s\n\n", payload); err != nil {
		api.Logger.Error("failed to write final chat event", "error", err)
		return
	}
	flusher.Flush()
}
