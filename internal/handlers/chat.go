package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"signcrypt-backend/internal/models"
	"signcrypt-backend/internal/prompt"
	"signcrypt-backend/internal/services"
)

type ChatHandler struct {
	assembler *prompt.Assembler
	gateway   services.Gateway
}

func NewChatHandler(assembler *prompt.Assembler, gateway services.Gateway) *ChatHandler {
	return &ChatHandler{
		assembler: assembler,
		gateway:   gateway,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleServiceError(w, r, services.NewValidationError("Request body too large"))
			return
		}
		handleServiceError(w, r, services.NewValidationError("Invalid request body"))
		return
	}

	if req.Message == "" {
		handleServiceError(w, r, services.NewValidationError("Message is required"))
		return
	}

	turns := h.assembler.Build(req)

	reply, err := h.gateway.Complete(r.Context(), turns)
	if err != nil {
		log.Printf("chat failed [%s] request_id=%s: %v", services.KindOf(err), r.Header.Get("X-Request-ID"), err)
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply, Status: models.StatusSuccess})
}
