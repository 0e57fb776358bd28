package handlers

import (
	"net/http"

	"signcrypt-backend/internal/models"
	"signcrypt-backend/internal/prompt"
)

type StatusHandler struct {
	title   string
	service string
}

func NewStatusHandler(p *prompt.Persona) *StatusHandler {
	return &StatusHandler{title: p.Title, service: p.Name}
}

func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RootResponse{Message: h.title, Status: "active"})
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy", Service: h.service})
}
