package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/store"
)

// Service generates and persists study plans.
type Service struct {
	kv      store.KV
	gateway agent.Gateway
	agentID string
}

// NewService creates a planner service.
func NewService(kv store.KV, gateway agent.Gateway, agentID string) *Service {
	return &Service{kv: kv, gateway: gateway, agentID: agentID}
}

// LoadProfile returns the saved candidate profile, or nil when none
// has been saved yet.
func (s *Service) LoadProfile(ctx context.Context) (*Profile, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyProfile)
	if err != nil || !ok {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt blob reads as absent.
		return nil, nil
	}
	return &p, nil
}

// SaveProfile persists the candidate profile.
func (s *Service) SaveProfile(ctx context.Context, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, store.KeyProfile, raw)
}

// LoadPlan returns the saved study plan, or nil when none exists.
func (s *Service) LoadPlan(ctx context.Context) (*StudyPlan, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyStudyPlan)
	if err != nil || !ok {
		return nil, err
	}
	var plan StudyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, nil
	}
	return &plan, nil
}

// Generate asks the study-plan agent for a roadmap, saves the profile
// and the resulting plan, and returns the plan. The previous plan is
// kept when the call fails.
func (s *Service) Generate(ctx context.Context, profile Profile) (*StudyPlan, error) {
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	res := s.gateway.Call(ctx, string(payload), s.agentID, agent.CallOpts{})
	if !res.Success || res.Response == nil {
		if res.Error != "" {
			return nil, errors.New(res.Error)
		}
		return nil, errors.New("agent returned no plan")
	}

	var plan StudyPlan
	if err := json.Unmarshal(res.Response.Result, &plan); err != nil {
		return nil, fmt.Errorf("decode study plan: %w", err)
	}

	if err := s.kv.Set(ctx, store.KeyStudyPlan, json.RawMessage(res.Response.Result)); err != nil {
		return nil, err
	}
	return &plan, nil
}
