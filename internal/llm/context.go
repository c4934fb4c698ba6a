package llm

import "context"

type contextKey string

const (
	agentKey   contextKey = "agent_label"
	sessionKey contextKey = "agent_session"
)

// WithAgent attaches an agent label to the context for event logging
// (study-plan, mock-interview, progress).
func WithAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, agentKey, agent)
}

// AgentFrom extracts the agent label from the context.
func AgentFrom(ctx context.Context) string {
	if v, ok := ctx.Value(agentKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithSession attaches a conversation session ID to the context.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// SessionFrom extracts the session ID from the context, if any.
func SessionFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}
