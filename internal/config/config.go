package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Server
	Host string
	Port string
	Env  string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// 0 disables the cap.
	MaxRequestBytes int64

	// Model provider
	Provider string
	APIKey   string
	BaseURL  string
	Model    string

	// Persona override; empty uses the built-in persona.
	PersonaFile string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	provider := strings.ToLower(getEnvOrDefault("MODEL_PROVIDER", ProviderOpenAI))

	cfg := &Config{
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		Port:            getEnvOrDefault("PORT", "8000"),
		Env:             getEnvOrDefault("ENV", "development"),
		ReadTimeout:     getEnvAsDurationOrDefault("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDurationOrDefault("HTTP_WRITE_TIMEOUT", 0),
		ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second),
		MaxRequestBytes: int64(getEnvAsIntOrDefault("MAX_REQUEST_BYTES", 0)),
		Provider:        provider,
		APIKey:          getEnvOrDefault("LLM_API_KEY", ""),
		BaseURL:         getEnvOrDefault("LLM_BASE_URL", ""),
		Model:           getEnvOrDefault("LLM_MODEL", defaultModel(provider)),
		PersonaFile:     getEnvOrDefault("PERSONA_FILE", ""),
	}

	return cfg
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("unknown MODEL_PROVIDER %q", c.Provider))
	}
	if c.MaxRequestBytes < 0 {
		errs = append(errs, errors.New("MAX_REQUEST_BYTES must not be negative"))
	}
	return errors.Join(errs...)
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "provider-6/gemini-2.5-flash"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
