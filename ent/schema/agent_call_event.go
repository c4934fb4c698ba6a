package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentCallEvent records every remote agent invocation for cost tracking
// and debugging.
type AgentCallEvent struct {
	ent.Schema
}

func (AgentCallEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AgentCallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("gateway").
			Comment("Gateway that served the call: platform, anthropic, openai, gemini, openrouter"),
		field.String("model").
			Default("").
			Comment("Model ID when served by a direct LLM gateway"),
		field.String("agent").
			Comment("Consumer-provided label: study-plan, mock-interview, progress"),
		field.String("session_id").
			Default("").
			Comment("Conversation session ID, when threaded"),
		field.Int("input_tokens").
			Default(0).
			Comment("Tokens in the request"),
		field.Int("output_tokens").
			Default(0).
			Comment("Tokens in the response"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success").
			Comment("Whether the call succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Text("request_body").
			Default("").
			Comment("Serialized request payload"),
		field.Text("response_body").
			Default("").
			Comment("Raw response body"),
	}
}

func (AgentCallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gateway"),
		index.Fields("agent"),
		index.Fields("success"),
	}
}
