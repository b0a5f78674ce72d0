package llm

import (
	"testing"
	"time"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QGEN_LLM_PROVIDER", "QGEN_GEMINI_API_KEY", "QGEN_OPENAI_API_KEY",
		"QGEN_ANTHROPIC_API_KEY", "QGEN_OPENROUTER_API_KEY", "QGEN_LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeyEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider should be gemini, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("unexpected default model: %q", cfg.Gemini.Model)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("unexpected default retry attempts: %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("QGEN_LLM_PROVIDER", "openai")
	t.Setenv("QGEN_OPENAI_API_KEY", "sk-test")
	t.Setenv("QGEN_OPENAI_MODEL", "gpt-4o")
	t.Setenv("QGEN_LLM_TIMEOUT", "90s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config not applied: %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("timeout override not applied: %s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// Gemini wins when both are present.
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("expected gemini discovery, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"missing gemini key", func(c *Config) { c.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"missing anthropic key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-at-home" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
