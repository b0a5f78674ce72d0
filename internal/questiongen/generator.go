package questiongen

import (
	"context"

	"github.com/Rupesh023/Question-gen/internal/question"
)

// Generator produces a variation of a base question using an LLM provider.
type Generator interface {
	// Generate produces a single variation for the given base question.
	// The returned question has passed all configured validators.
	Generate(ctx context.Context, base question.BaseQuestion) (*question.GeneratedQuestion, error)
}
