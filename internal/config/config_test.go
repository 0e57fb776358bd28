package config

import (
	"strings"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration", "90s", time.Second, 90 * time.Second},
		{"uses default for empty", "", time.Second, time.Second},
		{"uses default for garbage", "soon", time.Second, time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tc.envValue)

			result := getEnvAsDurationOrDefault("TEST_DURATION", tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "MODEL_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "MAX_REQUEST_BYTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Expected addr 0.0.0.0:8000, got %q", cfg.Addr())
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Expected provider %q, got %q", ProviderOpenAI, cfg.Provider)
	}
	if cfg.Model != "provider-6/gemini-2.5-flash" {
		t.Errorf("Unexpected default model %q", cfg.Model)
	}
	if cfg.MaxRequestBytes != 0 {
		t.Errorf("Expected no request cap by default, got %d", cfg.MaxRequestBytes)
	}
}

func TestLoad_GeminiDefaultModel(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "Gemini")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()
	if cfg.Provider != ProviderGemini {
		t.Fatalf("Expected provider %q, got %q", ProviderGemini, cfg.Provider)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Unexpected default model %q", cfg.Model)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI, APIKey: "sk-test"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}

	// A missing key is reported per request, not at startup.
	cfg = &Config{Provider: ProviderGemini}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected config without API key to validate, got %v", err)
	}

	cfg = &Config{Provider: "bedrock", MaxRequestBytes: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"MODEL_PROVIDER", "MAX_REQUEST_BYTES"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %q", want, err.Error())
		}
	}
}
