package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codeprep-ai/codeprep/ent"
	"github.com/codeprep-ai/codeprep/ent/agentcallevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAgentCall(ctx context.Context, data AgentCallEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AgentCallEvent.Create().
		SetSequence(seqNum).
		SetGateway(data.Gateway).
		SetModel(data.Model).
		SetAgent(data.Agent).
		SetSessionID(data.SessionID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save agent call event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAgentCalls(ctx context.Context, opts QueryOpts) ([]AgentCallEventRecord, error) {
	q := r.client.AgentCallEvent.Query().
		Order(ent.Desc(agentcallevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(agentcallevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(agentcallevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(agentcallevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(agentcallevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query agent call events: %w", err)
	}

	out := make([]AgentCallEventRecord, len(events))
	for i, e := range events {
		out[i] = entToRecord(e)
	}
	return out, nil
}

func (r *eventRepo) GetAgentCall(ctx context.Context, id int) (*AgentCallEventRecord, error) {
	e, err := r.client.AgentCallEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent call event: %w", err)
	}
	rec := entToRecord(e)
	return &rec, nil
}

func (r *eventRepo) UsageByAgent(ctx context.Context) ([]AgentUsageStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT agent, COUNT(*), SUM(input_tokens), SUM(output_tokens), CAST(AVG(latency_ms) AS INTEGER)
		FROM agent_call_events
		GROUP BY agent
		ORDER BY agent`)
	if err != nil {
		return nil, fmt.Errorf("query usage by agent: %w", err)
	}
	defer rows.Close()

	var stats []AgentUsageStat
	for rows.Next() {
		var s AgentUsageStat
		if err := rows.Scan(&s.Agent, &s.Calls, &s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsageStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM agent_call_events
		WHERE model != ''
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var stats []ModelUsageStat
	for rows.Next() {
		var s ModelUsageStat
		if err := rows.Scan(&s.Model, &s.Calls, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func entToRecord(e *ent.AgentCallEvent) AgentCallEventRecord {
	return AgentCallEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		AgentCallEventData: AgentCallEventData{
			Gateway:      e.Gateway,
			Model:        e.Model,
			Agent:        e.Agent,
			SessionID:    e.SessionID,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
