package port

import (
	"context"
	"tunebot/internal/core/domain"
)

type TextGenerator interface {
	// GenerateFromPrompt returns a model completion for the given conversation.
	GenerateFromPrompt(ctx context.Context, prompts []domain.Prompt) (domain.ModelResponse, error)
}
