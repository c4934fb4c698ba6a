package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("CODEPREP_LLM_PROVIDER", "openai")
	t.Setenv("CODEPREP_OPENAI_API_KEY", "sk-test")
	t.Setenv("CODEPREP_OPENAI_MODEL", "gpt-4o-mini")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai config not applied: %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing anthropic key")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llamafile"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic (highest priority)", cfg.Provider)
	}
}

func TestResolveModelFriendlyAndRaw(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name not resolved: %q", got)
	}
	if got := resolveModel("claude-x-unknown", anthropicModels); got != "claude-x-unknown" {
		t.Errorf("raw ID should pass through: %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	want := 0.15 + 0.6
	if got != want {
		t.Errorf("cost = %v, want %v", got, want)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("expected nil for unknown model")
	}
}
