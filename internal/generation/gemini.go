package generation

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

type gemini struct {
	client *genai.Client
}

// NewGemini creates a Vertex AI Gemini backend for project and region.
func NewGemini(ctx context.Context, project, region string) (Backend, error) {
	client, err := genai.NewClient(ctx, project, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	return &gemini{client: client}, nil
}

func (g *gemini) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return geminiText(resp), nil
}

func (g *gemini) Close() error {
	return g.client.Close()
}

// geminiText concatenates the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			parts = append(parts, string(txt))
		}
	}
	return joinParts(parts)
}
