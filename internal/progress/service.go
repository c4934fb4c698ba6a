package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/store"
)

// Service runs progress analyses over past sessions.
type Service struct {
	kv      store.KV
	gateway agent.Gateway
	agentID string
}

// NewService creates a progress service.
func NewService(kv store.KV, gateway agent.Gateway, agentID string) *Service {
	return &Service{kv: kv, gateway: gateway, agentID: agentID}
}

// ErrNoSessions is returned when analysis is requested before any
// interview has completed.
var ErrNoSessions = errors.New("no completed sessions to analyze")

type analysisRequest struct {
	Sessions    []interview.SessionRecord `json:"sessions"`
	CurrentPlan *planner.StudyPlan        `json:"current_plan,omitempty"`
}

// Analyze sends the session history and current plan to the progress
// agent, persists the resulting analysis, and returns it.
func (s *Service) Analyze(ctx context.Context) (*Analysis, error) {
	sessions, err := interview.LoadSessions(ctx, s.kv)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}

	var plan *planner.StudyPlan
	if raw, ok, err := s.kv.Get(ctx, store.KeyStudyPlan); err != nil {
		return nil, err
	} else if ok {
		plan = &planner.StudyPlan{}
		if err := json.Unmarshal(raw, plan); err != nil {
			plan = nil
		}
	}

	payload, err := json.Marshal(analysisRequest{Sessions: sessions, CurrentPlan: plan})
	if err != nil {
		return nil, err
	}

	res := s.gateway.Call(ctx, string(payload), s.agentID, agent.CallOpts{})
	if !res.Success || res.Response == nil {
		if res.Error != "" {
			return nil, errors.New(res.Error)
		}
		return nil, errors.New("agent returned no analysis")
	}

	var analysis Analysis
	if err := json.Unmarshal(res.Response.Result, &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	if err := s.kv.Set(ctx, store.KeyProgress, json.RawMessage(res.Response.Result)); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// LoadAnalysis returns the last persisted analysis, or nil.
func (s *Service) LoadAnalysis(ctx context.Context) (*Analysis, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyProgress)
	if err != nil || !ok {
		return nil, err
	}
	var analysis Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, nil
	}
	return &analysis, nil
}

// AverageScore is the mean session score rounded to the nearest
// integer. Zero sessions average to zero.
func AverageScore(sessions []interview.SessionRecord) int {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += s.Score
	}
	return int(math.Round(sum / float64(len(sessions))))
}
