package agent

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/codeprep-ai/codeprep/internal/llm"
)

// LocalGateway emulates the hosted agents with a direct LLM provider.
// Conversational agents keep per-session message history in memory;
// history is lost when the process exits, matching the hosted agents'
// behavior of expiring idle sessions.
type LocalGateway struct {
	provider llm.Provider
	ids      IDs
	profiles map[string]profile

	mu       sync.Mutex
	sessions map[string][]llm.Message
}

var _ Gateway = (*LocalGateway)(nil)

// NewLocalGateway creates a gateway backed by the given provider.
func NewLocalGateway(provider llm.Provider, ids IDs) *LocalGateway {
	return &LocalGateway{
		provider: provider,
		ids:      ids,
		profiles: map[string]profile{
			ids.StudyPlan:     studyPlanProfile(),
			ids.MockInterview: mockInterviewProfile(),
			ids.Progress:      progressProfile(),
		},
		sessions: make(map[string][]llm.Message),
	}
}

func (g *LocalGateway) Call(ctx context.Context, payload string, agentID string, opts CallOpts) Result {
	prof, ok := g.profiles[agentID]
	if !ok {
		return Result{Success: false, Error: "Unknown agent"}
	}

	ctx = llm.WithAgent(ctx, prof.Label)

	var sessionID string
	var messages []llm.Message

	if prof.Conversational {
		sessionID = opts.SessionID
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		ctx = llm.WithSession(ctx, sessionID)

		g.mu.Lock()
		history := g.sessions[sessionID]
		g.mu.Unlock()

		messages = append(messages, history...)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: payload})

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    prof.System,
		Messages:  messages,
		Schema:    prof.Schema,
		MaxTokens: prof.MaxTokens,
	})
	if err != nil {
		return Result{Success: false, Error: humanError(err)}
	}

	if prof.Conversational {
		g.mu.Lock()
		g.sessions[sessionID] = append(messages, llm.Message{
			Role:    llm.RoleAssistant,
			Content: string(resp.Content),
		})
		g.mu.Unlock()
	}

	return Result{
		Success:   true,
		Response:  &ResponseBody{Result: json.RawMessage(resp.Content)},
		SessionID: sessionID,
	}
}

// EndSession discards the conversation history for a session.
func (g *LocalGateway) EndSession(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, sessionID)
}

// humanError flattens provider errors into the gateway's string taxonomy.
// The typed cause is preserved in the event log, not here.
func humanError(err error) string {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return "The agent is busy. Please try again in a moment."
	}
	var mt *llm.ErrMaxTokensExceeded
	if errors.As(err, &mt) {
		return "The agent response was cut short. Please try again."
	}
	return genericErrorMessage
}
