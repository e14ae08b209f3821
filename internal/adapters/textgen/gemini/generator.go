package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyAnswer = errors.New("empty response from ai")

// Generator implementa textgen.Generator sobre el Client.
type Generator struct {
	client *Client
}

func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// Generate trata una respuesta vacía como error, así el retry la vuelve a pedir.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrGeminiNotConfigured
	}

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}
