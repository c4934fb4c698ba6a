package planner

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/store"
)

func newTestService(gw agent.Gateway) (*Service, *store.MemoryKV) {
	kv := store.NewMemoryKV()
	return NewService(kv, gw, agent.DefaultStudyPlanAgentID), kv
}

func TestGenerateSavesProfileAndPlan(t *testing.T) {
	planJSON := `{"plan_title":"6-Week Plan","weeks":[{"week_number":1,"theme":"Arrays","topics":[{"name":"Two Pointers"}]}]}`
	gw := agent.NewScriptedGateway(agent.Result{
		Success:  true,
		Response: &agent.ResponseBody{Result: json.RawMessage(planJSON)},
	})
	svc, _ := newTestService(gw)
	ctx := context.Background()

	profile := Profile{
		ExperienceLevel: "intermediate",
		TargetRole:      "Backend Engineer",
		HoursPerWeek:    8,
		KnownTopics:     []string{"Arrays & Strings", "Hash Tables"},
		TimelineWeeks:   8,
	}
	plan, err := svc.Generate(ctx, profile)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.PlanTitle != "6-Week Plan" {
		t.Errorf("PlanTitle = %q", plan.PlanTitle)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(gw.Calls[0].Payload), &sent); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	for _, field := range []string{"experience_level", "target_role", "hours_per_week", "known_topics", "timeline"} {
		if _, ok := sent[field]; !ok {
			t.Errorf("payload missing %s", field)
		}
	}

	saved, err := svc.LoadProfile(ctx)
	if err != nil || saved == nil {
		t.Fatalf("LoadProfile: %v %v", saved, err)
	}
	if saved.TargetRole != "Backend Engineer" {
		t.Errorf("saved profile = %+v", saved)
	}

	loaded, err := svc.LoadPlan(ctx)
	if err != nil || loaded == nil {
		t.Fatalf("LoadPlan: %v %v", loaded, err)
	}
	if loaded.Weeks[0].Topics[0].Name != "Two Pointers" {
		t.Errorf("loaded plan = %+v", loaded)
	}
}

func TestGenerateFailureKeepsOldPlan(t *testing.T) {
	gw := agent.NewScriptedGateway(
		agent.Result{Success: true, Response: &agent.ResponseBody{Result: json.RawMessage(`{"plan_title":"First"}`)}},
		agent.Result{Success: false, Error: "An error occurred"},
	)
	svc, _ := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, Profile{TimelineWeeks: 4}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}

	if _, err := svc.Generate(ctx, Profile{TimelineWeeks: 8}); err == nil {
		t.Fatal("expected error from failed call")
	}

	plan, err := svc.LoadPlan(ctx)
	if err != nil || plan == nil {
		t.Fatalf("LoadPlan: %v %v", plan, err)
	}
	if plan.PlanTitle != "First" {
		t.Errorf("old plan overwritten: %+v", plan)
	}
}

func TestLoadPlanMissing(t *testing.T) {
	svc, _ := newTestService(agent.NewScriptedGateway())
	plan, err := svc.LoadPlan(context.Background())
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}
	if plan != nil {
		t.Errorf("plan = %+v, want nil", plan)
	}
}

func TestCorruptBlobsReadAsAbsent(t *testing.T) {
	svc, kv := newTestService(agent.NewScriptedGateway())
	ctx := context.Background()

	for _, key := range []string{store.KeyProfile, store.KeyStudyPlan, store.KeyCompleted} {
		if err := kv.Set(ctx, key, json.RawMessage(`{not json`)); err != nil {
			t.Fatal(err)
		}
	}

	if p, err := svc.LoadProfile(ctx); err != nil || p != nil {
		t.Errorf("LoadProfile = %+v, %v", p, err)
	}
	if plan, err := svc.LoadPlan(ctx); err != nil || plan != nil {
		t.Errorf("LoadPlan = %+v, %v", plan, err)
	}
	set, err := svc.LoadCompleted(ctx)
	if err != nil || len(set) != 0 {
		t.Errorf("LoadCompleted = %v, %v", set, err)
	}
}

func TestToggleCompleted(t *testing.T) {
	svc, _ := newTestService(agent.NewScriptedGateway())
	ctx := context.Background()

	key := CompletedKey(2, 1)
	if key != "w2-t1" {
		t.Fatalf("key = %q", key)
	}

	set, err := svc.ToggleCompleted(ctx, key)
	if err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}
	if !set[key] {
		t.Error("first toggle should mark complete")
	}

	set, err = svc.ToggleCompleted(ctx, key)
	if err != nil {
		t.Fatalf("ToggleCompleted: %v", err)
	}
	if set[key] {
		t.Error("second toggle should unmark")
	}

	// The key stays in the persisted set after unmarking.
	reloaded, err := svc.LoadCompleted(ctx)
	if err != nil {
		t.Fatalf("LoadCompleted: %v", err)
	}
	if _, present := reloaded[key]; !present {
		t.Error("key pruned from persisted set")
	}
}

func TestCompletedCountIgnoresStaleKeys(t *testing.T) {
	svc, _ := newTestService(agent.NewScriptedGateway())
	ctx := context.Background()

	// w1-t0 belongs to the plan below; w9-t9 is left over from an
	// older plan.
	if _, err := svc.ToggleCompleted(ctx, "w1-t0"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleCompleted(ctx, "w9-t9"); err != nil {
		t.Fatal(err)
	}

	plan := &StudyPlan{Weeks: []Week{
		{WeekNumber: 1, Topics: []Topic{{Name: "Arrays"}, {Name: "Strings"}}},
	}}

	set, err := svc.LoadCompleted(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := set.CompletedCount(plan); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}
	if got := plan.TopicCount(); got != 2 {
		t.Errorf("TopicCount = %d, want 2", got)
	}
}
