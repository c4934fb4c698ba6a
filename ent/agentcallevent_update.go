// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeprep-ai/codeprep/ent/agentcallevent"
	"github.com/codeprep-ai/codeprep/ent/predicate"
)

// AgentCallEventUpdate is the builder for updating AgentCallEvent entities.
type AgentCallEventUpdate struct {
	config
	hooks    []Hook
	mutation *AgentCallEventMutation
}

// Where appends a list predicates to the AgentCallEventUpdate builder.
func (_u *AgentCallEventUpdate) Where(ps ...predicate.AgentCallEvent) *AgentCallEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGateway sets the "gateway" field.
func (_u *AgentCallEventUpdate) SetGateway(v string) *AgentCallEventUpdate {
	_u.mutation.SetGateway(v)
	return _u
}

// SetNillableGateway sets the "gateway" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableGateway(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetGateway(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentCallEventUpdate) SetModel(v string) *AgentCallEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableModel(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentCallEventUpdate) SetAgent(v string) *AgentCallEventUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableAgent(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentCallEventUpdate) SetSessionID(v string) *AgentCallEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableSessionID(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentCallEventUpdate) SetInputTokens(v int) *AgentCallEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableInputTokens(v *int) *AgentCallEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentCallEventUpdate) AddInputTokens(v int) *AgentCallEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentCallEventUpdate) SetOutputTokens(v int) *AgentCallEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableOutputTokens(v *int) *AgentCallEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentCallEventUpdate) AddOutputTokens(v int) *AgentCallEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentCallEventUpdate) SetLatencyMs(v int64) *AgentCallEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableLatencyMs(v *int64) *AgentCallEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentCallEventUpdate) AddLatencyMs(v int64) *AgentCallEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentCallEventUpdate) SetSuccess(v bool) *AgentCallEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableSuccess(v *bool) *AgentCallEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentCallEventUpdate) SetErrorMessage(v string) *AgentCallEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableErrorMessage(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *AgentCallEventUpdate) SetRequestBody(v string) *AgentCallEventUpdate {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableRequestBody(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *AgentCallEventUpdate) SetResponseBody(v string) *AgentCallEventUpdate {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *AgentCallEventUpdate) SetNillableResponseBody(v *string) *AgentCallEventUpdate {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the AgentCallEventMutation object of the builder.
func (_u *AgentCallEventUpdate) Mutation() *AgentCallEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentCallEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentCallEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentCallEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentCallEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentCallEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcallevent.Table, agentcallevent.Columns, sqlgraph.NewFieldSpec(agentcallevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Gateway(); ok {
		_spec.SetField(agentcallevent.FieldGateway, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentcallevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentcallevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentcallevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentcallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentcallevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(agentcallevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(agentcallevent.FieldResponseBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentCallEventUpdateOne is the builder for updating a single AgentCallEvent entity.
type AgentCallEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentCallEventMutation
}

// SetGateway sets the "gateway" field.
func (_u *AgentCallEventUpdateOne) SetGateway(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetGateway(v)
	return _u
}

// SetNillableGateway sets the "gateway" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableGateway(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetGateway(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentCallEventUpdateOne) SetModel(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableModel(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentCallEventUpdateOne) SetAgent(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableAgent(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentCallEventUpdateOne) SetSessionID(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableSessionID(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentCallEventUpdateOne) SetInputTokens(v int) *AgentCallEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableInputTokens(v *int) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentCallEventUpdateOne) AddInputTokens(v int) *AgentCallEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentCallEventUpdateOne) SetOutputTokens(v int) *AgentCallEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableOutputTokens(v *int) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentCallEventUpdateOne) AddOutputTokens(v int) *AgentCallEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentCallEventUpdateOne) SetLatencyMs(v int64) *AgentCallEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableLatencyMs(v *int64) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentCallEventUpdateOne) AddLatencyMs(v int64) *AgentCallEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentCallEventUpdateOne) SetSuccess(v bool) *AgentCallEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableSuccess(v *bool) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentCallEventUpdateOne) SetErrorMessage(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableErrorMessage(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *AgentCallEventUpdateOne) SetRequestBody(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableRequestBody(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *AgentCallEventUpdateOne) SetResponseBody(v string) *AgentCallEventUpdateOne {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *AgentCallEventUpdateOne) SetNillableResponseBody(v *string) *AgentCallEventUpdateOne {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the AgentCallEventMutation object of the builder.
func (_u *AgentCallEventUpdateOne) Mutation() *AgentCallEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentCallEventUpdate builder.
func (_u *AgentCallEventUpdateOne) Where(ps ...predicate.AgentCallEvent) *AgentCallEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentCallEventUpdateOne) Select(field string, fields ...string) *AgentCallEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentCallEvent entity.
func (_u *AgentCallEventUpdateOne) Save(ctx context.Context) (*AgentCallEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentCallEventUpdateOne) SaveX(ctx context.Context) *AgentCallEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentCallEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentCallEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentCallEventUpdateOne) sqlSave(ctx context.Context) (_node *AgentCallEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcallevent.Table, agentcallevent.Columns, sqlgraph.NewFieldSpec(agentcallevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentCallEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcallevent.FieldID)
		for _, f := range fields {
			if !agentcallevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcallevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Gateway(); ok {
		_spec.SetField(agentcallevent.FieldGateway, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentcallevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentcallevent.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentcallevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentcallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentcallevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(agentcallevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(agentcallevent.FieldResponseBody, field.TypeString, value)
	}
	_node = &AgentCallEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
