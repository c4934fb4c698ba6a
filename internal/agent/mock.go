package agent

import (
	"context"
	"sync"
)

// ScriptedCall records one invocation of the ScriptedGateway.
type ScriptedCall struct {
	Payload   string
	AgentID   string
	SessionID string
}

// ScriptedGateway is a deterministic Gateway for tests. It returns
// canned results in FIFO order and records all calls.
type ScriptedGateway struct {
	mu      sync.Mutex
	results []Result
	Calls   []ScriptedCall
}

var _ Gateway = (*ScriptedGateway)(nil)

// NewScriptedGateway creates a gateway with the given canned results.
func NewScriptedGateway(results ...Result) *ScriptedGateway {
	return &ScriptedGateway{results: results}
}

func (g *ScriptedGateway) Call(_ context.Context, payload string, agentID string, opts CallOpts) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, ScriptedCall{
		Payload:   payload,
		AgentID:   agentID,
		SessionID: opts.SessionID,
	})

	if len(g.results) == 0 {
		return Result{Success: false, Error: genericErrorMessage}
	}
	res := g.results[0]
	g.results = g.results[1:]
	return res
}

// AddResult appends a canned result to the queue.
func (g *ScriptedGateway) AddResult(res Result) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = append(g.results, res)
}
