package generation

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

type openAI struct {
	client *openai.Client
}

// NewOpenAI creates a chat-completions backend. A non-empty baseURL targets
// any OpenAI-compatible endpoint such as OpenRouter or Ollama.
func NewOpenAI(apiKey, baseURL string) Backend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAI{client: openai.NewClientWithConfig(cfg)}
}

func (o *openAI) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion")
	}
	return resp.Choices[0].Message.Content, nil
}
