package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/codeprep-ai/codeprep/internal/llm"
)

func TestLocalCallStudyPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"plan_title":"4-Week Sprint","weeks":[]}`),
	})
	gw := NewLocalGateway(mock, DefaultIDs())

	res := gw.Call(context.Background(), `{"timeline":4}`, DefaultStudyPlanAgentID, CallOpts{})

	if !res.Success {
		t.Fatalf("Call failed: %s", res.Error)
	}
	if res.SessionID != "" {
		t.Errorf("single-turn call minted session %q", res.SessionID)
	}
	var plan map[string]any
	if err := json.Unmarshal(res.Response.Result, &plan); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if plan["plan_title"] != "4-Week Sprint" {
		t.Errorf("result = %v", plan)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("CallCount = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.System != studyPlanSystem {
		t.Error("wrong system prompt")
	}
	if req.Schema == nil || req.Schema.Name != "study-plan" {
		t.Errorf("schema = %v", req.Schema)
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != `{"timeline":4}` {
		t.Errorf("messages = %v", req.Messages)
	}
}

func TestLocalCallMintsAndThreadsSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"message":"Question 1","is_complete":false}`)},
		llm.MockResponse{Content: json.RawMessage(`{"message":"Question 2","is_complete":false}`)},
	)
	gw := NewLocalGateway(mock, DefaultIDs())

	first := gw.Call(context.Background(), "start", DefaultMockInterviewAgentID, CallOpts{})
	if !first.Success {
		t.Fatalf("first call failed: %s", first.Error)
	}
	if first.SessionID == "" {
		t.Fatal("conversational call did not mint a session ID")
	}

	second := gw.Call(context.Background(), "my answer", DefaultMockInterviewAgentID, CallOpts{SessionID: first.SessionID})
	if !second.Success {
		t.Fatalf("second call failed: %s", second.Error)
	}
	if second.SessionID != first.SessionID {
		t.Errorf("session changed: %q vs %q", second.SessionID, first.SessionID)
	}

	// Second request carries the full prior exchange.
	req := mock.Calls[1]
	if len(req.Messages) != 3 {
		t.Fatalf("second call has %d messages, want 3", len(req.Messages))
	}
	if req.Messages[0].Content != "start" {
		t.Errorf("messages[0] = %q", req.Messages[0].Content)
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("messages[1].Role = %q", req.Messages[1].Role)
	}
	if req.Messages[2].Content != "my answer" {
		t.Errorf("messages[2] = %q", req.Messages[2].Content)
	}
}

func TestLocalCallEndSessionDiscardsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"message":"q1","is_complete":false}`)},
		llm.MockResponse{Content: json.RawMessage(`{"message":"q1 again","is_complete":false}`)},
	)
	gw := NewLocalGateway(mock, DefaultIDs())

	first := gw.Call(context.Background(), "start", DefaultMockInterviewAgentID, CallOpts{})
	gw.EndSession(first.SessionID)

	gw.Call(context.Background(), "start", DefaultMockInterviewAgentID, CallOpts{SessionID: first.SessionID})
	if got := len(mock.Calls[1].Messages); got != 1 {
		t.Errorf("history survived EndSession: %d messages", got)
	}
}

func TestLocalCallUnknownAgent(t *testing.T) {
	gw := NewLocalGateway(llm.NewMockProvider(), DefaultIDs())

	res := gw.Call(context.Background(), "{}", "no-such-agent", CallOpts{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "Unknown agent" {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestLocalCallProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gw := NewLocalGateway(mock, DefaultIDs())

	res := gw.Call(context.Background(), "{}", DefaultStudyPlanAgentID, CallOpts{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != genericErrorMessage {
		t.Errorf("Error = %q, want generic message", res.Error)
	}
}

func TestLocalCallRateLimitMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gw := NewLocalGateway(mock, DefaultIDs())

	res := gw.Call(context.Background(), "{}", DefaultStudyPlanAgentID, CallOpts{})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "The agent is busy. Please try again in a moment." {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestIDsLabel(t *testing.T) {
	ids := DefaultIDs()
	cases := []struct {
		id   string
		want string
	}{
		{ids.StudyPlan, "study-plan"},
		{ids.MockInterview, "mock-interview"},
		{ids.Progress, "progress"},
		{"something-else", "unknown"},
	}
	for _, tc := range cases {
		if got := ids.Label(tc.id); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
