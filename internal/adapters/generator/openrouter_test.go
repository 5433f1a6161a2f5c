package generator

import (
	"context"
	"errors"
	"testing"
	"tunebot/internal/core/domain"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for the OpenRouterClient interface.
type mockClient struct {
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestOpenRouter_GenerateFromPrompt(t *testing.T) {
	okResp := openrouter.ChatCompletionResponse{
		Choices: []openrouter.ChatCompletionChoice{{
			Message: openrouter.ChatCompletionMessage{
				Content: openrouter.Content{Text: "hello!"},
			},
		}},
		Model: "openai/gpt-4.1",
		Usage: &openrouter.Usage{
			CompletionTokens: 7,
			TotalTokens:      9,
		},
	}

	noUsageResp := okResp
	noUsageResp.Usage = nil

	testCases := []struct {
		name         string
		systemPrompt string
		prompts      []domain.Prompt
		mockResp     openrouter.ChatCompletionResponse
		mockErr      error
		wantMessages int
		expectedResp domain.ModelResponse
		expectErr    bool
	}{
		{
			name:         "success, single user prompt",
			systemPrompt: "system",
			prompts:      []domain.Prompt{{Prompt: "hi", Author: domain.User}},
			mockResp:     okResp,
			wantMessages: 2,
			expectedResp: domain.ModelResponse{
				Response: "hello!",
				Metadata: domain.ResponseMetadata{
					Model:            "openai/gpt-4.1",
					CompletionTokens: 7,
					TotalTokens:      9,
				},
			},
		},
		{
			name: "success, no system prompt",
			prompts: []domain.Prompt{
				{Prompt: "i'm an assistant.", Author: domain.System},
				{Prompt: "hi", Author: domain.User},
			},
			mockResp:     okResp,
			wantMessages: 2,
			expectedResp: domain.ModelResponse{
				Response: "hello!",
				Metadata: domain.ResponseMetadata{
					Model:            "openai/gpt-4.1",
					CompletionTokens: 7,
					TotalTokens:      9,
				},
			},
		},
		{
			name:         "success, usage omitted",
			prompts:      []domain.Prompt{{Prompt: "hi", Author: domain.User}},
			mockResp:     noUsageResp,
			wantMessages: 1,
			expectedResp: domain.ModelResponse{
				Response: "hello!",
				Metadata: domain.ResponseMetadata{Model: "openai/gpt-4.1"},
			},
		},
		{
			name:         "API error returned",
			systemPrompt: "system",
			prompts:      []domain.Prompt{{Prompt: "fail", Author: domain.User}},
			mockErr:      errors.New("api failure"),
			wantMessages: 2,
			expectErr:    true,
		},
		{
			name:         "no choices",
			prompts:      []domain.Prompt{{Prompt: "hi", Author: domain.User}},
			wantMessages: 1,
			expectErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got openrouter.ChatCompletionRequest
			mock := &mockClient{
				createChatCompletionFunc: func(_ context.Context,
					ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
					got = ccr
					return tc.mockResp, tc.mockErr
				},
			}
			gen := &OpenRouter{
				client:       mock,
				systemPrompt: tc.systemPrompt,
				model:        "openai/gpt-4.1",
			}
			resp, err := gen.GenerateFromPrompt(t.Context(), tc.prompts)
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedResp, resp)
			}

			assert.Len(t, got.Messages, tc.wantMessages)
			assert.Equal(t, "openai/gpt-4.1", got.Model)
		})
	}
}

func TestOpenRouter_GenerateFromPromptEmpty(t *testing.T) {
	gen := &OpenRouter{client: &mockClient{}}

	_, err := gen.GenerateFromPrompt(t.Context(), nil)
	require.ErrorIs(t, err, domain.ErrEmptyPrompt)
}
