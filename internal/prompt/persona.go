package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed persona.yaml
var defaultPersona []byte

// Persona is the fixed assistant identity. SystemPrompt becomes the system
// turn of every assembled conversation; the other fields feed the status routes.
type Persona struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	SystemPrompt string `yaml:"system_prompt"`
}

// DefaultPersona returns the built-in SignCrypt AI persona.
func DefaultPersona() (*Persona, error) {
	return ParsePersona(defaultPersona)
}

// LoadPersona reads a persona YAML file. An empty path yields the built-in persona.
func LoadPersona(path string) (*Persona, error) {
	if path == "" {
		return DefaultPersona()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}
	p, err := ParsePersona(data)
	if err != nil {
		return nil, fmt.Errorf("persona %s: %w", path, err)
	}
	return p, nil
}

func ParsePersona(data []byte) (*Persona, error) {
	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse persona: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("persona name is required")
	}
	if strings.TrimSpace(p.SystemPrompt) == "" {
		return nil, errors.New("persona system_prompt is required")
	}
	if p.Title == "" {
		p.Title = p.Name
	}
	return &p, nil
}
