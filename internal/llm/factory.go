package llm

import (
	"context"
	"fmt"

	"github.com/Rupesh023/Question-gen/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// middleware chain: caller → retry → timeout → logging → base. The timeout
// sits inside retry so each attempt gets its own deadline.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	timed := WithTimeout(logged, cfg.Timeout)
	return WithRetry(timed, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from QGEN_* env vars when set,
// otherwise discovers one from the standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, eventRepo)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no API key found: set QGEN_LLM_PROVIDER and its key, or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
	}
	return NewProvider(ctx, discovered, eventRepo)
}
