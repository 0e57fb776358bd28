package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"signcrypt-backend/internal/config"
	"signcrypt-backend/internal/handlers"
	"signcrypt-backend/internal/prompt"
	"signcrypt-backend/internal/router"
	"signcrypt-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting SignCrypt AI Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("✗ Invalid configuration: %v", err)
	}
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Persona ────
	persona, err := prompt.LoadPersona(cfg.PersonaFile)
	if err != nil {
		log.Fatalf("✗ Persona load failed: %v", err)
	}
	log.Printf("✓ Persona %q loaded (%s)", persona.Name, persona.Description)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ──── Step 3: Initialize Model Gateway ────
	var gateway services.Gateway
	switch {
	case cfg.APIKey == "":
		log.Println("⚠ LLM_API_KEY is not set; /chat will fail until it is configured")
		gateway = services.MissingKeyGateway{}
	case cfg.Provider == config.ProviderGemini:
		gemini, err := services.NewGeminiGateway(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		gateway = gemini
	default:
		gateway = services.NewOpenAIGateway(cfg.APIKey, cfg.BaseURL, cfg.Model)
	}
	log.Printf("✓ %s gateway initialized (model %s)", cfg.Provider, cfg.Model)

	// ──── Step 4: Initialize Handlers ────
	statusHandler := handlers.NewStatusHandler(persona)
	chatHandler := handlers.NewChatHandler(prompt.NewAssembler(persona), gateway)

	// ──── Step 5: Start HTTP Server ────
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.New(statusHandler, chatHandler, cfg.MaxRequestBytes),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("✓ SignCrypt AI Backend ready on http://%s", cfg.Addr())
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
