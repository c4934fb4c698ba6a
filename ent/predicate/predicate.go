// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentCallEvent is the predicate function for agentcallevent builders.
type AgentCallEvent func(*sql.Selector)

// Blob is the predicate function for blob builders.
type Blob func(*sql.Selector)
