package store

import (
	"context"
	"encoding/json"
	"testing"
)

// openTestStore opens an in-memory store that is closed when the test ends.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func TestBlobRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.Blobs()
	ctx := context.Background()

	want := json.RawMessage(`{"experience_level":"intermediate","hours_per_week":10}`)
	if err := kv.Set(ctx, KeyProfile, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := kv.Get(ctx, KeyProfile)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected value, got absent")
	}
	if string(got) != string(want) {
		t.Errorf("round trip mismatch: got %s, want %s", got, want)
	}
}

func TestBlobGetMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Blobs().Get(ctx, KeySessions)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected absent for missing key")
	}
}

func TestBlobOverwrite(t *testing.T) {
	s := openTestStore(t)
	kv := s.Blobs()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyProgress, json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := kv.Set(ctx, KeyProgress, json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("second set: %v", err)
	}

	got, ok, err := kv.Get(ctx, KeyProgress)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("expected last write to win, got %s", got)
	}
}

func TestBlobDelete(t *testing.T) {
	s := openTestStore(t)
	kv := s.Blobs()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyCompleted, json.RawMessage(`{"w1-t0":true}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, KeyCompleted); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, KeyCompleted); ok {
		t.Error("expected absent after delete")
	}

	// Deleting again is a no-op.
	if err := kv.Delete(ctx, KeyCompleted); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestAppendAndQueryAgentCalls(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.Events()
	if err != nil {
		t.Fatalf("events repo: %v", err)
	}
	ctx := context.Background()

	calls := []AgentCallEventData{
		{Gateway: "platform", Agent: "study-plan", Success: true, LatencyMs: 1200},
		{Gateway: "platform", Agent: "mock-interview", SessionID: "abc", Success: true, LatencyMs: 800},
		{Gateway: "anthropic", Model: "claude-haiku-4-5-20251001", Agent: "mock-interview", Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := repo.AppendAgentCall(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryAgentCalls(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Descending by sequence: latest first.
	if events[0].Agent != "mock-interview" || events[0].Gateway != "anthropic" {
		t.Errorf("expected latest event first, got %+v", events[0])
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	limited, err := repo.QueryAgentCalls(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestGetAgentCall(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.Events()
	if err != nil {
		t.Fatalf("events repo: %v", err)
	}
	ctx := context.Background()

	data := AgentCallEventData{
		Gateway:      "platform",
		Agent:        "progress",
		Success:      true,
		RequestBody:  `{"sessions":[]}`,
		ResponseBody: `{"analysis_summary":"ok"}`,
	}
	if err := repo.AppendAgentCall(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryAgentCalls(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetAgentCall(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody != data.RequestBody || got.ResponseBody != data.ResponseBody {
		t.Errorf("body mismatch: %+v", got)
	}

	missing, err := repo.GetAgentCall(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.Events()
	if err != nil {
		t.Fatalf("events repo: %v", err)
	}
	ctx := context.Background()

	for range 2 {
		if err := repo.AppendAgentCall(ctx, AgentCallEventData{
			Gateway: "openai", Model: "gpt-4o-mini", Agent: "study-plan",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendAgentCall(ctx, AgentCallEventData{
		Gateway: "platform", Agent: "mock-interview",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 600, Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	byAgent, err := repo.UsageByAgent(ctx)
	if err != nil {
		t.Fatalf("usage by agent: %v", err)
	}
	if len(byAgent) != 2 {
		t.Fatalf("expected 2 agent rows, got %d", len(byAgent))
	}
	for _, st := range byAgent {
		if st.Agent == "study-plan" {
			if st.Calls != 2 || st.InputTokens != 200 || st.OutputTokens != 100 {
				t.Errorf("study-plan aggregate wrong: %+v", st)
			}
		}
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	// Platform calls carry no model and are excluded.
	if len(byModel) != 1 || byModel[0].Model != "gpt-4o-mini" || byModel[0].Calls != 2 {
		t.Errorf("model aggregate wrong: %+v", byModel)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, ok, _ := kv.Get(ctx, KeyProfile); ok {
		t.Error("expected empty store")
	}
	if err := kv.Set(ctx, KeyProfile, json.RawMessage(`{"target_role":"Backend"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, _ := kv.Get(ctx, KeyProfile)
	if !ok || string(got) != `{"target_role":"Backend"}` {
		t.Errorf("get mismatch: ok=%v got=%s", ok, got)
	}
	if err := kv.Delete(ctx, KeyProfile); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, KeyProfile); ok {
		t.Error("expected absent after delete")
	}
}
