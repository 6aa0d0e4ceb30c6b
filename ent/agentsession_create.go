// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentSessionCreate) SetWorkspaceID(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *AgentSessionCreate) SetStreamID(v string) *AgentSessionCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *AgentSessionCreate) SetPersonaID(v string) *AgentSessionCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetTriggerMessageID sets the "trigger_message_id" field.
func (_c *AgentSessionCreate) SetTriggerMessageID(v string) *AgentSessionCreate {
	_c.mutation.SetTriggerMessageID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetServerID sets the "server_id" field.
func (_c *AgentSessionCreate) SetServerID(v string) *AgentSessionCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableServerID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetServerID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *AgentSessionCreate) SetHeartbeatAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableHeartbeatAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (_c *AgentSessionCreate) SetLastSeenSequence(v int64) *AgentSessionCreate {
	_c.mutation.SetLastSeenSequence(v)
	return _c
}

// SetNillableLastSeenSequence sets the "last_seen_sequence" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastSeenSequence(v *int64) *AgentSessionCreate {
	if v != nil {
		_c.SetLastSeenSequence(*v)
	}
	return _c
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (_c *AgentSessionCreate) SetSentMessageIds(v []string) *AgentSessionCreate {
	_c.mutation.SetSentMessageIds(v)
	return _c
}

// SetResponseMessageID sets the "response_message_id" field.
func (_c *AgentSessionCreate) SetResponseMessageID(v string) *AgentSessionCreate {
	_c.mutation.SetResponseMessageID(v)
	return _c
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableResponseMessageID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetResponseMessageID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentSessionCreate) SetErrorMessage(v string) *AgentSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableErrorMessage(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentSessionCreate) SetCompletedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCompletedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_c *AgentSessionCreate) AddStepIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_c *AgentSessionCreate) AddSteps(v ...*AgentStep) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastSeenSequence(); !ok {
		v := agentsession.DefaultLastSeenSequence
		_c.mutation.SetLastSeenSequence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentSession.workspace_id"`)}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "AgentSession.stream_id"`)}
	}
	if _, ok := _c.mutation.PersonaID(); !ok {
		return &ValidationError{Name: "persona_id", err: errors.New(`ent: missing required field "AgentSession.persona_id"`)}
	}
	if _, ok := _c.mutation.TriggerMessageID(); !ok {
		return &ValidationError{Name: "trigger_message_id", err: errors.New(`ent: missing required field "AgentSession.trigger_message_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeenSequence(); !ok {
		return &ValidationError{Name: "last_seen_sequence", err: errors.New(`ent: missing required field "AgentSession.last_seen_sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentsession.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(agentsession.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.PersonaID(); ok {
		_spec.SetField(agentsession.FieldPersonaID, field.TypeString, value)
		_node.PersonaID = value
	}
	if value, ok := _c.mutation.TriggerMessageID(); ok {
		_spec.SetField(agentsession.FieldTriggerMessageID, field.TypeString, value)
		_node.TriggerMessageID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ServerID(); ok {
		_spec.SetField(agentsession.FieldServerID, field.TypeString, value)
		_node.ServerID = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentsession.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.LastSeenSequence(); ok {
		_spec.SetField(agentsession.FieldLastSeenSequence, field.TypeInt64, value)
		_node.LastSeenSequence = value
	}
	if value, ok := _c.mutation.SentMessageIds(); ok {
		_spec.SetField(agentsession.FieldSentMessageIds, field.TypeJSON, value)
		_node.SentMessageIds = value
	}
	if value, ok := _c.mutation.ResponseMessageID(); ok {
		_spec.SetField(agentsession.FieldResponseMessageID, field.TypeString, value)
		_node.ResponseMessageID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertOne {
	_c.conflict = opts
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflictColumns(columns ...string) *AgentSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

type (
	// AgentSessionUpsertOne is the builder for "upsert"-ing
	//  one AgentSession node.
	AgentSessionUpsertOne struct {
		create *AgentSessionCreate
	}

	// AgentSessionUpsert is the "OnConflict" setter.
	AgentSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *AgentSessionUpsert) SetStatus(v agentsession.Status) *AgentSessionUpsert {
	u.Set(agentsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateStatus() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldStatus)
	return u
}

// SetServerID sets the "server_id" field.
func (u *AgentSessionUpsert) SetServerID(v string) *AgentSessionUpsert {
	u.Set(agentsession.FieldServerID, v)
	return u
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateServerID() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldServerID)
	return u
}

// ClearServerID clears the value of the "server_id" field.
func (u *AgentSessionUpsert) ClearServerID() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldServerID)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AgentSessionUpsert) SetHeartbeatAt(v time.Time) *AgentSessionUpsert {
	u.Set(agentsession.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateHeartbeatAt() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AgentSessionUpsert) ClearHeartbeatAt() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldHeartbeatAt)
	return u
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (u *AgentSessionUpsert) SetLastSeenSequence(v int64) *AgentSessionUpsert {
	u.Set(agentsession.FieldLastSeenSequence, v)
	return u
}

// UpdateLastSeenSequence sets the "last_seen_sequence" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateLastSeenSequence() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldLastSeenSequence)
	return u
}

// AddLastSeenSequence adds v to the "last_seen_sequence" field.
func (u *AgentSessionUpsert) AddLastSeenSequence(v int64) *AgentSessionUpsert {
	u.Add(agentsession.FieldLastSeenSequence, v)
	return u
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (u *AgentSessionUpsert) SetSentMessageIds(v []string) *AgentSessionUpsert {
	u.Set(agentsession.FieldSentMessageIds, v)
	return u
}

// UpdateSentMessageIds sets the "sent_message_ids" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateSentMessageIds() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldSentMessageIds)
	return u
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (u *AgentSessionUpsert) ClearSentMessageIds() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldSentMessageIds)
	return u
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *AgentSessionUpsert) SetResponseMessageID(v string) *AgentSessionUpsert {
	u.Set(agentsession.FieldResponseMessageID, v)
	return u
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateResponseMessageID() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldResponseMessageID)
	return u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *AgentSessionUpsert) ClearResponseMessageID() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldResponseMessageID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentSessionUpsert) SetErrorMessage(v string) *AgentSessionUpsert {
	u.Set(agentsession.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateErrorMessage() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentSessionUpsert) ClearErrorMessage() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldErrorMessage)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentSessionUpsert) SetCompletedAt(v time.Time) *AgentSessionUpsert {
	u.Set(agentsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateCompletedAt() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentSessionUpsert) ClearCompletedAt() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertOne) UpdateNewValues() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentsession.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(agentsession.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.StreamID(); exists {
			s.SetIgnore(agentsession.FieldStreamID)
		}
		if _, exists := u.create.mutation.PersonaID(); exists {
			s.SetIgnore(agentsession.FieldPersonaID)
		}
		if _, exists := u.create.mutation.TriggerMessageID(); exists {
			s.SetIgnore(agentsession.FieldTriggerMessageID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentSessionUpsertOne) Ignore() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertOne) DoNothing() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreate.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertOne) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentSessionUpsertOne) SetStatus(v agentsession.Status) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateStatus() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetServerID sets the "server_id" field.
func (u *AgentSessionUpsertOne) SetServerID(v string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetServerID(v)
	})
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateServerID() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateServerID()
	})
}

// ClearServerID clears the value of the "server_id" field.
func (u *AgentSessionUpsertOne) ClearServerID() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearServerID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AgentSessionUpsertOne) SetHeartbeatAt(v time.Time) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateHeartbeatAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AgentSessionUpsertOne) ClearHeartbeatAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (u *AgentSessionUpsertOne) SetLastSeenSequence(v int64) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetLastSeenSequence(v)
	})
}

// AddLastSeenSequence adds v to the "last_seen_sequence" field.
func (u *AgentSessionUpsertOne) AddLastSeenSequence(v int64) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.AddLastSeenSequence(v)
	})
}

// UpdateLastSeenSequence sets the "last_seen_sequence" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateLastSeenSequence() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateLastSeenSequence()
	})
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (u *AgentSessionUpsertOne) SetSentMessageIds(v []string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetSentMessageIds(v)
	})
}

// UpdateSentMessageIds sets the "sent_message_ids" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateSentMessageIds() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateSentMessageIds()
	})
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (u *AgentSessionUpsertOne) ClearSentMessageIds() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearSentMessageIds()
	})
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *AgentSessionUpsertOne) SetResponseMessageID(v string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetResponseMessageID(v)
	})
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateResponseMessageID() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateResponseMessageID()
	})
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *AgentSessionUpsertOne) ClearResponseMessageID() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearResponseMessageID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentSessionUpsertOne) SetErrorMessage(v string) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateErrorMessage() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentSessionUpsertOne) ClearErrorMessage() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentSessionUpsertOne) SetCompletedAt(v time.Time) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateCompletedAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentSessionUpsertOne) ClearCompletedAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentSessionUpsertOne.ID is not supported by MySQL driver. Use AgentSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertBulk {
	_c.conflict = opts
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflictColumns(columns ...string) *AgentSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// AgentSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentSession nodes.
type AgentSessionUpsertBulk struct {
	create *AgentSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) UpdateNewValues() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentsession.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(agentsession.FieldWorkspaceID)
			}
			if _, exists := b.mutation.StreamID(); exists {
				s.SetIgnore(agentsession.FieldStreamID)
			}
			if _, exists := b.mutation.PersonaID(); exists {
				s.SetIgnore(agentsession.FieldPersonaID)
			}
			if _, exists := b.mutation.TriggerMessageID(); exists {
				s.SetIgnore(agentsession.FieldTriggerMessageID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) Ignore() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertBulk) DoNothing() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertBulk) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentSessionUpsertBulk) SetStatus(v agentsession.Status) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateStatus() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetServerID sets the "server_id" field.
func (u *AgentSessionUpsertBulk) SetServerID(v string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetServerID(v)
	})
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateServerID() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateServerID()
	})
}

// ClearServerID clears the value of the "server_id" field.
func (u *AgentSessionUpsertBulk) ClearServerID() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearServerID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *AgentSessionUpsertBulk) SetHeartbeatAt(v time.Time) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateHeartbeatAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *AgentSessionUpsertBulk) ClearHeartbeatAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (u *AgentSessionUpsertBulk) SetLastSeenSequence(v int64) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetLastSeenSequence(v)
	})
}

// AddLastSeenSequence adds v to the "last_seen_sequence" field.
func (u *AgentSessionUpsertBulk) AddLastSeenSequence(v int64) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.AddLastSeenSequence(v)
	})
}

// UpdateLastSeenSequence sets the "last_seen_sequence" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateLastSeenSequence() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateLastSeenSequence()
	})
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (u *AgentSessionUpsertBulk) SetSentMessageIds(v []string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetSentMessageIds(v)
	})
}

// UpdateSentMessageIds sets the "sent_message_ids" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateSentMessageIds() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateSentMessageIds()
	})
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (u *AgentSessionUpsertBulk) ClearSentMessageIds() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearSentMessageIds()
	})
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *AgentSessionUpsertBulk) SetResponseMessageID(v string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetResponseMessageID(v)
	})
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateResponseMessageID() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateResponseMessageID()
	})
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *AgentSessionUpsertBulk) ClearResponseMessageID() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearResponseMessageID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentSessionUpsertBulk) SetErrorMessage(v string) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateErrorMessage() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentSessionUpsertBulk) ClearErrorMessage() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentSessionUpsertBulk) SetCompletedAt(v time.Time) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateCompletedAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentSessionUpsertBulk) ClearCompletedAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
