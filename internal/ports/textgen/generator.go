package textgen

import "context"

// Generator produce texto a partir de un prompt (Gemini u otro proveedor).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
