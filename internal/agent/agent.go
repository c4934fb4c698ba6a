package agent

import (
	"context"
	"encoding/json"
)

// Default agent identifiers for the hosted platform. Overridable via
// CODEPREP_* env vars (see Config).
const (
	DefaultStudyPlanAgentID     = "69a27f71ad98307a3fb27935"
	DefaultMockInterviewAgentID = "69a27afb96ed232cfb0c7c52"
	DefaultProgressAgentID      = "69a27afb71a7effa8577c00b"
)

// genericErrorMessage replaces any transport or decode failure. The
// underlying cause is recorded in the event log, never shown to callers.
const genericErrorMessage = "An error occurred"

// ResponseBody wraps the agent-specific result object.
type ResponseBody struct {
	Result json.RawMessage `json:"result"`
}

// Result is the normalized outcome of one agent call. Every failure
// path, transport, decode, or server-reported, collapses into
// Success=false with a flat error string.
type Result struct {
	Success   bool          `json:"success"`
	Response  *ResponseBody `json:"response,omitempty"`
	SessionID string        `json:"session_id,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// CallOpts carries optional per-call context.
type CallOpts struct {
	// SessionID threads a prior conversation when present.
	SessionID string
}

// Gateway sends a payload to a remote agent and returns a normalized
// Result. Implementations perform exactly one logical round trip per
// call and never return a Go error; failures surface in Result.Error.
type Gateway interface {
	Call(ctx context.Context, payload string, agentID string, opts CallOpts) Result
}

// IDs groups the three agent identifiers in use.
type IDs struct {
	StudyPlan     string
	MockInterview string
	Progress      string
}

// DefaultIDs returns the hosted platform's fixed agent identifiers.
func DefaultIDs() IDs {
	return IDs{
		StudyPlan:     DefaultStudyPlanAgentID,
		MockInterview: DefaultMockInterviewAgentID,
		Progress:      DefaultProgressAgentID,
	}
}

// Label maps an agent ID to its event-log label.
func (ids IDs) Label(agentID string) string {
	switch agentID {
	case ids.StudyPlan:
		return "study-plan"
	case ids.MockInterview:
		return "mock-interview"
	case ids.Progress:
		return "progress"
	}
	return "unknown"
}
