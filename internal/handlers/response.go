package handlers

import (
	"encoding/json"
	"net/http"

	"signcrypt-backend/internal/models"
	"signcrypt-backend/internal/services"
)

// Shared helpers

const chatErrorPrefix = "Error processing chat: "

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Detail: message,
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError answers 400 for validation failures and 500 for every
// gateway failure; the code field carries the failure kind.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
	case services.KindAuthentication:
		writeJSON(w, http.StatusInternalServerError, errorResp("AUTHENTICATION_ERROR", chatErrorPrefix+err.Error(), r))
	case services.KindNetwork:
		writeJSON(w, http.StatusInternalServerError, errorResp("NETWORK_ERROR", chatErrorPrefix+err.Error(), r))
	case services.KindProviderFormat:
		writeJSON(w, http.StatusInternalServerError, errorResp("PROVIDER_FORMAT_ERROR", chatErrorPrefix+err.Error(), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", chatErrorPrefix+err.Error(), r))
	}
}
