// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *AgentSessionUpdate) SetServerID(v string) *AgentSessionUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableServerID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// ClearServerID clears the value of the "server_id" field.
func (_u *AgentSessionUpdate) ClearServerID() *AgentSessionUpdate {
	_u.mutation.ClearServerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AgentSessionUpdate) SetHeartbeatAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableHeartbeatAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *AgentSessionUpdate) ClearHeartbeatAt() *AgentSessionUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (_u *AgentSessionUpdate) SetLastSeenSequence(v int64) *AgentSessionUpdate {
	_u.mutation.ResetLastSeenSequence()
	_u.mutation.SetLastSeenSequence(v)
	return _u
}

// SetNillableLastSeenSequence sets the "last_seen_sequence" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastSeenSequence(v *int64) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastSeenSequence(*v)
	}
	return _u
}

// AddLastSeenSequence adds value to the "last_seen_sequence" field.
func (_u *AgentSessionUpdate) AddLastSeenSequence(v int64) *AgentSessionUpdate {
	_u.mutation.AddLastSeenSequence(v)
	return _u
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (_u *AgentSessionUpdate) SetSentMessageIds(v []string) *AgentSessionUpdate {
	_u.mutation.SetSentMessageIds(v)
	return _u
}

// AppendSentMessageIds appends value to the "sent_message_ids" field.
func (_u *AgentSessionUpdate) AppendSentMessageIds(v []string) *AgentSessionUpdate {
	_u.mutation.AppendSentMessageIds(v)
	return _u
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (_u *AgentSessionUpdate) ClearSentMessageIds() *AgentSessionUpdate {
	_u.mutation.ClearSentMessageIds()
	return _u
}

// SetResponseMessageID sets the "response_message_id" field.
func (_u *AgentSessionUpdate) SetResponseMessageID(v string) *AgentSessionUpdate {
	_u.mutation.SetResponseMessageID(v)
	return _u
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableResponseMessageID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetResponseMessageID(*v)
	}
	return _u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (_u *AgentSessionUpdate) ClearResponseMessageID() *AgentSessionUpdate {
	_u.mutation.ClearResponseMessageID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdate) SetErrorMessage(v string) *AgentSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableErrorMessage(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdate) ClearErrorMessage() *AgentSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentSessionUpdate) SetCompletedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableCompletedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentSessionUpdate) ClearCompletedAt() *AgentSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentSessionUpdate) AddStepIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdate) AddSteps(v ...*AgentStep) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdate) ClearSteps() *AgentSessionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentSessionUpdate) RemoveStepIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentSessionUpdate) RemoveSteps(v ...*AgentStep) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(agentsession.FieldServerID, field.TypeString, value)
	}
	if _u.mutation.ServerIDCleared() {
		_spec.ClearField(agentsession.FieldServerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentsession.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(agentsession.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenSequence(); ok {
		_spec.SetField(agentsession.FieldLastSeenSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeenSequence(); ok {
		_spec.AddField(agentsession.FieldLastSeenSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentMessageIds(); ok {
		_spec.SetField(agentsession.FieldSentMessageIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSentMessageIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentsession.FieldSentMessageIds, value)
		})
	}
	if _u.mutation.SentMessageIdsCleared() {
		_spec.ClearField(agentsession.FieldSentMessageIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseMessageID(); ok {
		_spec.SetField(agentsession.FieldResponseMessageID, field.TypeString, value)
	}
	if _u.mutation.ResponseMessageIDCleared() {
		_spec.ClearField(agentsession.FieldResponseMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *AgentSessionUpdateOne) SetServerID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableServerID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// ClearServerID clears the value of the "server_id" field.
func (_u *AgentSessionUpdateOne) ClearServerID() *AgentSessionUpdateOne {
	_u.mutation.ClearServerID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AgentSessionUpdateOne) SetHeartbeatAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableHeartbeatAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *AgentSessionUpdateOne) ClearHeartbeatAt() *AgentSessionUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (_u *AgentSessionUpdateOne) SetLastSeenSequence(v int64) *AgentSessionUpdateOne {
	_u.mutation.ResetLastSeenSequence()
	_u.mutation.SetLastSeenSequence(v)
	return _u
}

// SetNillableLastSeenSequence sets the "last_seen_sequence" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastSeenSequence(v *int64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastSeenSequence(*v)
	}
	return _u
}

// AddLastSeenSequence adds value to the "last_seen_sequence" field.
func (_u *AgentSessionUpdateOne) AddLastSeenSequence(v int64) *AgentSessionUpdateOne {
	_u.mutation.AddLastSeenSequence(v)
	return _u
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (_u *AgentSessionUpdateOne) SetSentMessageIds(v []string) *AgentSessionUpdateOne {
	_u.mutation.SetSentMessageIds(v)
	return _u
}

// AppendSentMessageIds appends value to the "sent_message_ids" field.
func (_u *AgentSessionUpdateOne) AppendSentMessageIds(v []string) *AgentSessionUpdateOne {
	_u.mutation.AppendSentMessageIds(v)
	return _u
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (_u *AgentSessionUpdateOne) ClearSentMessageIds() *AgentSessionUpdateOne {
	_u.mutation.ClearSentMessageIds()
	return _u
}

// SetResponseMessageID sets the "response_message_id" field.
func (_u *AgentSessionUpdateOne) SetResponseMessageID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetResponseMessageID(v)
	return _u
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableResponseMessageID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetResponseMessageID(*v)
	}
	return _u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (_u *AgentSessionUpdateOne) ClearResponseMessageID() *AgentSessionUpdateOne {
	_u.mutation.ClearResponseMessageID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdateOne) SetErrorMessage(v string) *AgentSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableErrorMessage(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdateOne) ClearErrorMessage() *AgentSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentSessionUpdateOne) SetCompletedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentSessionUpdateOne) ClearCompletedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentSessionUpdateOne) AddStepIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdateOne) AddSteps(v ...*AgentStep) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdateOne) ClearSteps() *AgentSessionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveStepIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentSessionUpdateOne) RemoveSteps(v ...*AgentStep) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(agentsession.FieldServerID, field.TypeString, value)
	}
	if _u.mutation.ServerIDCleared() {
		_spec.ClearField(agentsession.FieldServerID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentsession.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(agentsession.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenSequence(); ok {
		_spec.SetField(agentsession.FieldLastSeenSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeenSequence(); ok {
		_spec.AddField(agentsession.FieldLastSeenSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentMessageIds(); ok {
		_spec.SetField(agentsession.FieldSentMessageIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSentMessageIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentsession.FieldSentMessageIds, value)
		})
	}
	if _u.mutation.SentMessageIdsCleared() {
		_spec.ClearField(agentsession.FieldSentMessageIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseMessageID(); ok {
		_spec.SetField(agentsession.FieldResponseMessageID, field.TypeString, value)
	}
	if _u.mutation.ResponseMessageIDCleared() {
		_spec.ClearField(agentsession.FieldResponseMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
