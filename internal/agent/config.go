package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/codeprep-ai/codeprep/internal/llm"
	"github.com/codeprep-ai/codeprep/internal/store"
)

// Config selects the gateway implementation and agent identifiers.
type Config struct {
	// Endpoint is the hosted platform's agent call URL. When set, the
	// platform gateway is used.
	Endpoint string

	// APIKey authenticates against the platform endpoint.
	APIKey string

	IDs IDs
}

// ConfigFromEnv reads gateway configuration from CODEPREP_* env vars.
func ConfigFromEnv() Config {
	cfg := Config{IDs: DefaultIDs()}

	cfg.Endpoint = os.Getenv("CODEPREP_AGENT_ENDPOINT")
	cfg.APIKey = os.Getenv("CODEPREP_AGENT_API_KEY")

	if v := os.Getenv("CODEPREP_STUDY_PLAN_AGENT"); v != "" {
		cfg.IDs.StudyPlan = v
	}
	if v := os.Getenv("CODEPREP_MOCK_INTERVIEW_AGENT"); v != "" {
		cfg.IDs.MockInterview = v
	}
	if v := os.Getenv("CODEPREP_PROGRESS_AGENT"); v != "" {
		cfg.IDs.Progress = v
	}

	return cfg
}

// NewGatewayFromEnv builds the best available gateway: the hosted
// platform when an endpoint is configured, otherwise a local gateway
// over whichever LLM provider the environment supplies.
func NewGatewayFromEnv(ctx context.Context, eventRepo store.EventRepo) (Gateway, IDs, error) {
	cfg := ConfigFromEnv()

	if cfg.Endpoint != "" {
		gw := Gateway(NewPlatformGateway(cfg.Endpoint, cfg.APIKey))
		if eventRepo != nil {
			gw = WithLogging(gw, cfg.IDs, eventRepo)
		}
		return gw, cfg.IDs, nil
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return nil, cfg.IDs, fmt.Errorf("no agent endpoint configured and %w", err)
	}
	return NewLocalGateway(provider, cfg.IDs), cfg.IDs, nil
}
