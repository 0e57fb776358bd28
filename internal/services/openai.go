package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"signcrypt-backend/internal/models"
)

// OpenAIGateway talks to any OpenAI-compatible chat-completions endpoint.
type OpenAIGateway struct {
	client openai.Client
	model  string
}

// NewOpenAIGateway builds the client once at startup. SDK retries are
// disabled: one failed attempt is one failed chat request.
func NewOpenAIGateway(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIGateway {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIGateway{
		client: openai.NewClient(clientOpts...),
		model:  model,
	}
}

func (g *OpenAIGateway) Complete(ctx context.Context, turns []models.ChatTurn) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       g.model,
		Messages:    toOpenAIMessages(turns),
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(MaxOutputTokens),
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(fmt.Errorf("openai chat completion: %w", err))
	}

	if len(completion.Choices) == 0 {
		return "", providerFormatError("provider returned no choices")
	}

	msg := completion.Choices[0].Message
	if !msg.JSON.Content.Valid() {
		if msg.Refusal != "" {
			return "", providerFormatError("provider refused: " + msg.Refusal)
		}
		return "", providerFormatError("provider returned no message content")
	}

	return msg.Content, nil
}

// toOpenAIMessages converts chat turns to the SDK union type. Roles without an
// SDK constructor go out as user messages with the role field overridden, so
// the provider sees the caller's role name.
func toOpenAIMessages(turns []models.ChatTurn) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, len(turns))
	for i, t := range turns {
		switch t.Role {
		case models.RoleSystem:
			out[i] = openai.SystemMessage(t.Content)
		case models.RoleUser:
			out[i] = openai.UserMessage(t.Content)
		case models.RoleAssistant:
			out[i] = openai.AssistantMessage(t.Content)
		case models.RoleDeveloper:
			out[i] = openai.DeveloperMessage(t.Content)
		default:
			out[i] = openai.UserMessage(t.Content)
			out[i].OfUser.SetExtraFields(map[string]any{"role": string(t.Role)})
		}
	}
	return out
}
