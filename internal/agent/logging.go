package agent

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/codeprep-ai/codeprep/internal/store"
)

// LoggingGateway records every platform call as an agent call event.
// The local gateway logs at the provider layer instead, where token
// usage is known.
type LoggingGateway struct {
	inner     Gateway
	ids       IDs
	eventRepo store.EventRepo
}

var _ Gateway = (*LoggingGateway)(nil)

// WithLogging wraps a Gateway with event logging.
func WithLogging(g Gateway, ids IDs, repo store.EventRepo) Gateway {
	return &LoggingGateway{inner: g, ids: ids, eventRepo: repo}
}

func (l *LoggingGateway) Call(ctx context.Context, payload string, agentID string, opts CallOpts) Result {
	start := time.Now()

	res := l.inner.Call(ctx, payload, agentID, opts)

	data := store.AgentCallEventData{
		Gateway:     "platform",
		Agent:       l.ids.Label(agentID),
		SessionID:   res.SessionID,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     res.Success,
		RequestBody: payload,
	}
	if res.SessionID == "" {
		data.SessionID = opts.SessionID
	}
	if res.Response != nil {
		data.ResponseBody = string(res.Response.Result)
	}
	if !res.Success {
		data.ErrorMessage = res.Error
	}

	if err := l.eventRepo.AppendAgentCall(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log agent call event: %v\n", err)
	}

	return res
}
