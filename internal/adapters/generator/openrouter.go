package generator

import (
	"context"
	"errors"
	"fmt"
	"tunebot/internal/core/domain"

	"github.com/revrost/go-openrouter"
)

type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

type OpenRouter struct {
	client       OpenRouterClient
	systemPrompt string
	model        string
}

func NewOpenRouter(apiKey, systemPrompt, model string) *OpenRouter {
	return &OpenRouter{
		systemPrompt: systemPrompt,
		model:        model,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("tunebot"),
		),
	}
}

func (c *OpenRouter) GenerateFromPrompt(ctx context.Context, prompts []domain.Prompt) (domain.ModelResponse, error) {
	if len(prompts) == 0 {
		return domain.ModelResponse{}, domain.ErrEmptyPrompt
	}

	messages := make([]openrouter.ChatCompletionMessage, 0, len(prompts)+1)

	if c.systemPrompt != "" {
		messages = append(messages, textMessage(openrouter.ChatMessageRoleSystem, c.systemPrompt))
	}

	for _, prompt := range prompts {
		switch prompt.Author {
		case domain.System:
			messages = append(messages, textMessage(openrouter.ChatMessageRoleAssistant, prompt.Prompt))
		default:
			messages = append(messages, textMessage(openrouter.ChatMessageRoleUser, prompt.Prompt))
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Messages: messages,
		Model:    c.model,
	})
	if err != nil {
		return domain.ModelResponse{}, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.ModelResponse{}, errors.New("openrouter returned no choices")
	}

	metadata := domain.ResponseMetadata{Model: resp.Model}
	if resp.Usage != nil {
		metadata.CompletionTokens = resp.Usage.CompletionTokens
		metadata.TotalTokens = resp.Usage.TotalTokens
	}

	return domain.ModelResponse{
		Response: resp.Choices[0].Message.Content.Text,
		Metadata: metadata,
	}, nil
}

func textMessage(role, text string) openrouter.ChatCompletionMessage {
	return openrouter.ChatCompletionMessage{
		Role: role,
		Content: openrouter.Content{
			Text: text,
		},
	}
}
