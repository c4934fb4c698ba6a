// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentCallEventsColumns holds the columns for the "agent_call_events" table.
	AgentCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "gateway", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "agent", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AgentCallEventsTable holds the schema information for the "agent_call_events" table.
	AgentCallEventsTable = &schema.Table{
		Name:       "agent_call_events",
		Columns:    AgentCallEventsColumns,
		PrimaryKey: []*schema.Column{AgentCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentcallevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AgentCallEventsColumns[1]},
			},
			{
				Name:    "agentcallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentCallEventsColumns[2]},
			},
			{
				Name:    "agentcallevent_gateway",
				Unique:  false,
				Columns: []*schema.Column{AgentCallEventsColumns[3]},
			},
			{
				Name:    "agentcallevent_agent",
				Unique:  false,
				Columns: []*schema.Column{AgentCallEventsColumns[5]},
			},
			{
				Name:    "agentcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{AgentCallEventsColumns[10]},
			},
		},
	}
	// BlobsColumns holds the columns for the "blobs" table.
	BlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BlobsTable holds the schema information for the "blobs" table.
	BlobsTable = &schema.Table{
		Name:       "blobs",
		Columns:    BlobsColumns,
		PrimaryKey: []*schema.Column{BlobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blob_key",
				Unique:  false,
				Columns: []*schema.Column{BlobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentCallEventsTable,
		BlobsTable,
	}
)

func init() {
}
