// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeprep-ai/codeprep/ent/agentcallevent"
	"github.com/codeprep-ai/codeprep/ent/blob"
	"github.com/codeprep-ai/codeprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcalleventMixin := schema.AgentCallEvent{}.Mixin()
	agentcalleventMixinFields0 := agentcalleventMixin[0].Fields()
	_ = agentcalleventMixinFields0
	agentcalleventFields := schema.AgentCallEvent{}.Fields()
	_ = agentcalleventFields
	// agentcalleventDescTimestamp is the schema descriptor for timestamp field.
	agentcalleventDescTimestamp := agentcalleventMixinFields0[1].Descriptor()
	// agentcallevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	agentcallevent.DefaultTimestamp = agentcalleventDescTimestamp.Default.(func() time.Time)
	// agentcalleventDescModel is the schema descriptor for model field.
	agentcalleventDescModel := agentcalleventFields[1].Descriptor()
	// agentcallevent.DefaultModel holds the default value on creation for the model field.
	agentcallevent.DefaultModel = agentcalleventDescModel.Default.(string)
	// agentcalleventDescSessionID is the schema descriptor for session_id field.
	agentcalleventDescSessionID := agentcalleventFields[3].Descriptor()
	// agentcallevent.DefaultSessionID holds the default value on creation for the session_id field.
	agentcallevent.DefaultSessionID = agentcalleventDescSessionID.Default.(string)
	// agentcalleventDescInputTokens is the schema descriptor for input_tokens field.
	agentcalleventDescInputTokens := agentcalleventFields[4].Descriptor()
	// agentcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentcallevent.DefaultInputTokens = agentcalleventDescInputTokens.Default.(int)
	// agentcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	agentcalleventDescOutputTokens := agentcalleventFields[5].Descriptor()
	// agentcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentcallevent.DefaultOutputTokens = agentcalleventDescOutputTokens.Default.(int)
	// agentcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	agentcalleventDescLatencyMs := agentcalleventFields[6].Descriptor()
	// agentcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	agentcallevent.DefaultLatencyMs = agentcalleventDescLatencyMs.Default.(int64)
	// agentcalleventDescErrorMessage is the schema descriptor for error_message field.
	agentcalleventDescErrorMessage := agentcalleventFields[8].Descriptor()
	// agentcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	agentcallevent.DefaultErrorMessage = agentcalleventDescErrorMessage.Default.(string)
	// agentcalleventDescRequestBody is the schema descriptor for request_body field.
	agentcalleventDescRequestBody := agentcalleventFields[9].Descriptor()
	// agentcallevent.DefaultRequestBody holds the default value on creation for the request_body field.
	agentcallevent.DefaultRequestBody = agentcalleventDescRequestBody.Default.(string)
	// agentcalleventDescResponseBody is the schema descriptor for response_body field.
	agentcalleventDescResponseBody := agentcalleventFields[10].Descriptor()
	// agentcallevent.DefaultResponseBody holds the default value on creation for the response_body field.
	agentcallevent.DefaultResponseBody = agentcalleventDescResponseBody.Default.(string)
	blobFields := schema.Blob{}.Fields()
	_ = blobFields
	// blobDescUpdatedAt is the schema descriptor for updated_at field.
	blobDescUpdatedAt := blobFields[2].Descriptor()
	// blob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blob.DefaultUpdatedAt = blobDescUpdatedAt.Default.(func() time.Time)
	// blob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blob.UpdateDefaultUpdatedAt = blobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
