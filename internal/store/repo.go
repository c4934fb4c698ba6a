package store

import (
	"context"
	"encoding/json"
	"time"
)

// Storage keys for the app's durable blobs. Each key holds one JSON value,
// replaced wholesale on every write.
const (
	KeyProfile   = "codeprep_profile"
	KeyStudyPlan = "codeprep_study_plan"
	KeySessions  = "codeprep_sessions"
	KeyProgress  = "codeprep_progress"
	KeyCompleted = "codeprep_completed"
)

// AllKeys lists every blob key, in the order reset should clear them.
var AllKeys = []string{KeyProfile, KeyStudyPlan, KeySessions, KeyProgress, KeyCompleted}

// KV is a key-scoped, last-write-wins JSON document store. Get reports
// absence (not an error) for missing keys; callers that fail to decode a
// returned value must treat it the same as absent.
type KV interface {
	// Get returns the stored value for key, or ok=false if none exists.
	Get(ctx context.Context, key string) (value json.RawMessage, ok bool, err error)

	// Set replaces the value for key.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Delete removes the value for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AgentCallEventData captures the data for a single agent call event.
type AgentCallEventData struct {
	Gateway      string
	Model        string
	Agent        string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AgentCallEventRecord is a stored agent call event.
type AgentCallEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AgentCallEventData
}

// AgentUsageStat aggregates call volume and token usage per agent label.
type AgentUsageStat struct {
	Agent        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsageStat aggregates token usage per model for cost estimation.
type ModelUsageStat struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to agent call events.
type EventRepo interface {
	// AppendAgentCall records one agent invocation.
	AppendAgentCall(ctx context.Context, data AgentCallEventData) error

	// QueryAgentCalls returns events ordered by sequence descending.
	QueryAgentCalls(ctx context.Context, opts QueryOpts) ([]AgentCallEventRecord, error)

	// GetAgentCall returns a single event by ID, or nil if not found.
	GetAgentCall(ctx context.Context, id int) (*AgentCallEventRecord, error)

	// UsageByAgent aggregates usage per agent label.
	UsageByAgent(ctx context.Context) ([]AgentUsageStat, error)

	// UsageByModel aggregates usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsageStat, error)
}
