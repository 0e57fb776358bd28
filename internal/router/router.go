package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"signcrypt-backend/internal/handlers"
	"signcrypt-backend/internal/middleware"
)

func New(
	statusHandler *handlers.StatusHandler,
	chatHandler *handlers.ChatHandler,
	maxRequestBytes int64,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)

	r.With(middleware.MaxBytes(maxRequestBytes)).Post("/chat", chatHandler.Chat)

	return r
}
