package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"signcrypt-backend/internal/models"
)

type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGateway{client: client, model: model}, nil
}

func (g *GeminiGateway) Close() {
	g.client.Close()
}

// Complete maps the system turn to the model's system instruction, replays
// history as chat history and sends the final user turn. A GenerativeModel is
// built per call since its fields are mutable.
func (g *GeminiGateway) Complete(ctx context.Context, turns []models.ChatTurn) (string, error) {
	system, history, last, err := splitTurns(turns)
	if err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(Temperature)
	model.SetMaxOutputTokens(MaxOutputTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", &ChatError{Kind: KindProviderFormat, Err: fmt.Errorf("gemini: %w", err)}
		}
		return "", classify(fmt.Errorf("gemini API error: %w", err))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", providerFormatError("provider returned no candidates")
	}
	return extractText(resp.Candidates[0]), nil
}

// splitTurns separates the leading system turns, the history and the final
// user message. Gemini names the assistant role "model".
func splitTurns(turns []models.ChatTurn) (system string, history []*genai.Content, last string, err error) {
	if len(turns) == 0 {
		return "", nil, "", NewValidationError("no chat turns to send")
	}

	var sys []string
	rest := turns[:len(turns)-1]
	for len(rest) > 0 && rest[0].Role == models.RoleSystem {
		sys = append(sys, rest[0].Content)
		rest = rest[1:]
	}

	history = make([]*genai.Content, 0, len(rest))
	for _, t := range rest {
		role := "user"
		if t.Role == models.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(t.Content)}})
	}

	return strings.Join(sys, "\n\n"), history, turns[len(turns)-1].Content, nil
}

func extractText(cand *genai.Candidate) string {
	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}
