package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// PlatformGateway calls the hosted agent endpoint. One POST per call;
// no retry, no timeout beyond the caller's context, no idempotency key.
type PlatformGateway struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ Gateway = (*PlatformGateway)(nil)

// NewPlatformGateway creates a gateway against the hosted endpoint.
func NewPlatformGateway(endpoint, apiKey string) *PlatformGateway {
	return &PlatformGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{},
	}
}

type platformRequest struct {
	Payload   string `json:"payload"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id,omitempty"`
}

type platformResponse struct {
	Success   bool          `json:"success"`
	Response  *ResponseBody `json:"response"`
	SessionID string        `json:"session_id"`
	Error     string        `json:"error"`
}

func (g *PlatformGateway) Call(ctx context.Context, payload string, agentID string, opts CallOpts) Result {
	body, err := json.Marshal(platformRequest{
		Payload:   payload,
		AgentID:   agentID,
		SessionID: opts.SessionID,
	})
	if err != nil {
		return Result{Success: false, Error: genericErrorMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, Error: genericErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{Success: false, Error: genericErrorMessage}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Success: false, Error: genericErrorMessage}
	}

	var pr platformResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return Result{Success: false, Error: genericErrorMessage}
	}

	if resp.StatusCode != http.StatusOK && pr.Error == "" {
		return Result{Success: false, Error: fmt.Sprintf("Agent returned HTTP %d", resp.StatusCode)}
	}

	if !pr.Success {
		msg := pr.Error
		if msg == "" {
			msg = genericErrorMessage
		}
		return Result{Success: false, Error: msg}
	}

	return Result{
		Success:   true,
		Response:  pr.Response,
		SessionID: pr.SessionID,
	}
}
