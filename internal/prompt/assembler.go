package prompt

import "signcrypt-backend/internal/models"

// Assembler builds the message list sent to the model gateway.
type Assembler struct {
	systemPrompt string
}

func NewAssembler(p *Persona) *Assembler {
	return &Assembler{systemPrompt: p.SystemPrompt}
}

// Build returns [system, history..., user]. History is forwarded verbatim and
// in caller order; nothing is truncated or deduplicated.
func (a *Assembler) Build(req models.ChatRequest) []models.ChatTurn {
	turns := make([]models.ChatTurn, 0, len(req.ConversationHistory)+2)
	turns = append(turns, models.ChatTurn{Role: models.RoleSystem, Content: a.systemPrompt})
	turns = append(turns, req.ConversationHistory...)
	turns = append(turns, models.ChatTurn{Role: models.RoleUser, Content: req.Message})
	return turns
}
