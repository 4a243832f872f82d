package llm

import "context"

// ChatModel is a minimal abstraction for text-generation models used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}
