package questiongen

import (
	"context"
	"fmt"

	"github.com/Rupesh023/Question-gen/internal/llm"
	"github.com/Rupesh023/Question-gen/internal/question"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single variation of the base question.
// Stages fail fast: a bad base question never reaches the provider, and a
// malformed response never reaches the validators.
func (g *LLMGenerator) Generate(ctx context.Context, base question.BaseQuestion) (*question.GeneratedQuestion, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "variation-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(base)},
		},
		Schema:      VariationSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generation call failed: %w", err)
	}
	if resp.StopReason == "max_tokens" {
		return nil, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	q, err := question.Parse(string(resp.Content), base)
	if err != nil {
		return nil, err
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, base); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
