package restapi

import (
	"encoding/json"
	"net/http"

	"macropilot.econdata.org/internal/models"
)

type errorEnvelope struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	// Version 1 here, not 2 as in a successful response. Probably a mistake
	// originally, but clients depend on it now.
	api.sendErrorEnvelope(w, http.StatusUnauthorized, "permission denied", 1)
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.sendErrorEnvelope(w, http.StatusInternalServerError, "internal server error", 1)
}

// badGatewayResponse reports an unreachable or failing model server. Data
// endpoints stay unaffected.
func (api *RestAPI) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("model server unavailable", "error", err, "path", r.URL.Path)
	api.sendErrorEnvelope(w, http.StatusBadGateway, "model server unavailable", 1)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

func (api *RestAPI) sendErrorEnvelope(w http.ResponseWriter, status int, text string, version int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(errorEnvelope{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     version,
	})
	if err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}
