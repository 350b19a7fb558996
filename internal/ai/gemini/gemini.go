// Package gemini generates marketing copy through the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mfortin/shopshelf/internal/ai"
)

type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

func (g *Generator) Close() error {
	return g.client.Close()
}

func (g *Generator) ProductDescription(ctx context.Context, productName, categoryName string) (string, error) {
	return g.generate(ctx, ai.DescriptionPrompt(productName, categoryName))
}

func (g *Generator) CatalogTagline(ctx context.Context, catalogName string, productNames []string) (string, error) {
	return g.generate(ctx, ai.TaglinePrompt(catalogName, productNames))
}

// generate issues one GenerateContent call and concatenates the text parts of
// the first candidate.
func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("model returned no text")
	}
	return out, nil
}
