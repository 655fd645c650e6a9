package summarizer

import "context"

// Generator produces a summary from a fully built prompt. Implementations
// wrap the claude CLI or the Gemini API; tests use a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
