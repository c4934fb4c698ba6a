package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlatformCallSuccess(t *testing.T) {
	var gotAuth string
	var gotReq platformRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"response":   map[string]any{"result": map[string]any{"plan_title": "Prep"}},
			"session_id": "sess-1",
		})
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "test-key")
	res := gw.Call(context.Background(), `{"hours_per_week":10}`, DefaultStudyPlanAgentID, CallOpts{})

	if !res.Success {
		t.Fatalf("Call failed: %s", res.Error)
	}
	if res.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", res.SessionID)
	}
	if res.Response == nil {
		t.Fatal("Response is nil")
	}
	var inner map[string]any
	if err := json.Unmarshal(res.Response.Result, &inner); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if inner["plan_title"] != "Prep" {
		t.Errorf("result = %v", inner)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.AgentID != DefaultStudyPlanAgentID {
		t.Errorf("agent_id = %q", gotReq.AgentID)
	}
	if gotReq.Payload != `{"hours_per_week":10}` {
		t.Errorf("payload = %q", gotReq.Payload)
	}
}

func TestPlatformCallThreadsSession(t *testing.T) {
	var gotReq platformRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"response":   map[string]any{"result": map[string]any{"message": "ok"}},
			"session_id": gotReq.SessionID,
		})
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "answer", DefaultMockInterviewAgentID, CallOpts{SessionID: "sess-42"})

	if gotReq.SessionID != "sess-42" {
		t.Errorf("session_id sent = %q, want sess-42", gotReq.SessionID)
	}
	if res.SessionID != "sess-42" {
		t.Errorf("session_id returned = %q, want sess-42", res.SessionID)
	}
}

func TestPlatformCallServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Agent quota exceeded",
		})
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "{}", DefaultProgressAgentID, CallOpts{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "Agent quota exceeded" {
		t.Errorf("Error = %q, want server message", res.Error)
	}
}

func TestPlatformCallServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "{}", DefaultProgressAgentID, CallOpts{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != genericErrorMessage {
		t.Errorf("Error = %q, want generic message", res.Error)
	}
}

func TestPlatformCallHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "{}", DefaultStudyPlanAgentID, CallOpts{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "Agent returned HTTP 502" {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestPlatformCallMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "{}", DefaultStudyPlanAgentID, CallOpts{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != genericErrorMessage {
		t.Errorf("Error = %q, want generic message", res.Error)
	}
}

func TestPlatformCallTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gw := NewPlatformGateway(srv.URL, "")
	res := gw.Call(context.Background(), "{}", DefaultStudyPlanAgentID, CallOpts{})

	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != genericErrorMessage {
		t.Errorf("Error = %q, want generic message", res.Error)
	}
}
