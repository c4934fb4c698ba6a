package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/store"
)

func TestAverageScore(t *testing.T) {
	sessions := []interview.SessionRecord{
		{Score: 85}, {Score: 62}, {Score: 78},
	}
	if got := AverageScore(sessions); got != 75 {
		t.Errorf("AverageScore = %d, want 75", got)
	}
	if got := AverageScore(nil); got != 0 {
		t.Errorf("AverageScore(nil) = %d, want 0", got)
	}
	if got := AverageScore([]interview.SessionRecord{{Score: 70}, {Score: 71}}); got != 71 {
		t.Errorf("AverageScore = %d, want 71 (round half up)", got)
	}
}

func TestAnalyzeRequiresSessions(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := NewService(kv, agent.NewScriptedGateway(), agent.DefaultProgressAgentID)

	_, err := svc.Analyze(context.Background())
	if !errors.Is(err, ErrNoSessions) {
		t.Fatalf("err = %v, want ErrNoSessions", err)
	}
}

func TestAnalyzeSendsSessionsAndPlan(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	if err := interview.AppendSession(ctx, kv, interview.SessionRecord{ID: "1", Topic: "Graphs", Score: 80}); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, store.KeyStudyPlan, json.RawMessage(`{"plan_title":"Plan A"}`)); err != nil {
		t.Fatal(err)
	}

	gw := agent.NewScriptedGateway(agent.Result{
		Success:  true,
		Response: &agent.ResponseBody{Result: json.RawMessage(`{"analysis_summary":"Solid progress on graphs."}`)},
	})
	svc := NewService(kv, gw, agent.DefaultProgressAgentID)

	analysis, err := svc.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.AnalysisSummary != "Solid progress on graphs." {
		t.Errorf("summary = %q", analysis.AnalysisSummary)
	}

	var sent analysisRequest
	if err := json.Unmarshal([]byte(gw.Calls[0].Payload), &sent); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(sent.Sessions) != 1 || sent.Sessions[0].Topic != "Graphs" {
		t.Errorf("sessions sent = %+v", sent.Sessions)
	}
	if sent.CurrentPlan == nil || sent.CurrentPlan.PlanTitle != "Plan A" {
		t.Errorf("plan sent = %+v", sent.CurrentPlan)
	}

	// Analysis is persisted for the next launch.
	loaded, err := svc.LoadAnalysis(ctx)
	if err != nil || loaded == nil {
		t.Fatalf("LoadAnalysis: %v %v", loaded, err)
	}
	if loaded.AnalysisSummary != analysis.AnalysisSummary {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestAnalyzeGatewayFailure(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	if err := interview.AppendSession(ctx, kv, interview.SessionRecord{ID: "1"}); err != nil {
		t.Fatal(err)
	}

	gw := agent.NewScriptedGateway(agent.Result{Success: false, Error: "An error occurred"})
	svc := NewService(kv, gw, agent.DefaultProgressAgentID)

	if _, err := svc.Analyze(ctx); err == nil {
		t.Fatal("expected error")
	}

	if loaded, _ := svc.LoadAnalysis(ctx); loaded != nil {
		t.Errorf("failed analysis was persisted: %+v", loaded)
	}
}
