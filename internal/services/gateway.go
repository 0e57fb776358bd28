package services

import (
	"context"

	"signcrypt-backend/internal/models"
)

// Sampling parameters sent with every completion request.
const (
	Temperature     = 0.7
	MaxOutputTokens = 1000
)

// Gateway sends an assembled conversation to a chat-completion provider and
// returns the text of the first completion. Implementations must be safe for
// concurrent use and make exactly one provider call per Complete.
type Gateway interface {
	Complete(ctx context.Context, turns []models.ChatTurn) (string, error)
}

// MissingKeyGateway fails every call with an authentication error. It stands
// in for a provider when no API key is configured, so the status routes keep
// serving.
type MissingKeyGateway struct{}

func (MissingKeyGateway) Complete(context.Context, []models.ChatTurn) (string, error) {
	return "", &ChatError{Kind: KindAuthentication, Err: errMissingKey}
}
