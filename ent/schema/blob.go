package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blob is a single named JSON document. The app keeps each piece of
// durable state (profile, study plan, session list, progress analysis,
// completed topics) under its own key, replaced wholesale on every write.
type Blob struct {
	ent.Schema
}

func (Blob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Storage key, e.g. codeprep_profile"),
		field.Bytes("data").
			Comment("Raw JSON value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Time of the last write"),
	}
}

func (Blob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
