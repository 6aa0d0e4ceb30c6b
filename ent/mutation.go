// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/ent/event"
	"github.com/loomchat/companion/ent/job"
	"github.com/loomchat/companion/ent/listenercursor"
	"github.com/loomchat/companion/ent/outboxentry"
	"github.com/loomchat/companion/ent/predicate"
	"github.com/loomchat/companion/ent/rollingsummary"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession   = "AgentSession"
	TypeAgentStep      = "AgentStep"
	TypeEvent          = "Event"
	TypeJob            = "Job"
	TypeListenerCursor = "ListenerCursor"
	TypeOutboxEntry    = "OutboxEntry"
	TypeRollingSummary = "RollingSummary"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	workspace_id           *string
	stream_id              *string
	persona_id             *string
	trigger_message_id     *string
	status                 *agentsession.Status
	server_id              *string
	heartbeat_at           *time.Time
	last_seen_sequence     *int64
	addlast_seen_sequence  *int64
	sent_message_ids       *[]string
	appendsent_message_ids []string
	response_message_id    *string
	error_message          *string
	created_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	steps                  map[string]struct{}
	removedsteps           map[string]struct{}
	clearedsteps           bool
	done                   bool
	oldValue               func(context.Context) (*AgentSession, error)
	predicates             []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentSessionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentSessionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentSessionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetStreamID sets the "stream_id" field.
func (m *AgentSessionMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *AgentSessionMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *AgentSessionMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *AgentSessionMutation) SetPersonaID(s string) {
	m.persona_id = &s
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *AgentSessionMutation) PersonaID() (r string, exists bool) {
	v := m.persona_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldPersonaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *AgentSessionMutation) ResetPersonaID() {
	m.persona_id = nil
}

// SetTriggerMessageID sets the "trigger_message_id" field.
func (m *AgentSessionMutation) SetTriggerMessageID(s string) {
	m.trigger_message_id = &s
}

// TriggerMessageID returns the value of the "trigger_message_id" field in the mutation.
func (m *AgentSessionMutation) TriggerMessageID() (r string, exists bool) {
	v := m.trigger_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerMessageID returns the old "trigger_message_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTriggerMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerMessageID: %w", err)
	}
	return oldValue.TriggerMessageID, nil
}

// ResetTriggerMessageID resets all changes to the "trigger_message_id" field.
func (m *AgentSessionMutation) ResetTriggerMessageID() {
	m.trigger_message_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetServerID sets the "server_id" field.
func (m *AgentSessionMutation) SetServerID(s string) {
	m.server_id = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *AgentSessionMutation) ServerID() (r string, exists bool) {
	v := m.server_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldServerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ClearServerID clears the value of the "server_id" field.
func (m *AgentSessionMutation) ClearServerID() {
	m.server_id = nil
	m.clearedFields[agentsession.FieldServerID] = struct{}{}
}

// ServerIDCleared returns if the "server_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ServerIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldServerID]
	return ok
}

// ResetServerID resets all changes to the "server_id" field.
func (m *AgentSessionMutation) ResetServerID() {
	m.server_id = nil
	delete(m.clearedFields, agentsession.FieldServerID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *AgentSessionMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *AgentSessionMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *AgentSessionMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[agentsession.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *AgentSessionMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *AgentSessionMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, agentsession.FieldHeartbeatAt)
}

// SetLastSeenSequence sets the "last_seen_sequence" field.
func (m *AgentSessionMutation) SetLastSeenSequence(i int64) {
	m.last_seen_sequence = &i
	m.addlast_seen_sequence = nil
}

// LastSeenSequence returns the value of the "last_seen_sequence" field in the mutation.
func (m *AgentSessionMutation) LastSeenSequence() (r int64, exists bool) {
	v := m.last_seen_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenSequence returns the old "last_seen_sequence" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldLastSeenSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenSequence: %w", err)
	}
	return oldValue.LastSeenSequence, nil
}

// AddLastSeenSequence adds i to the "last_seen_sequence" field.
func (m *AgentSessionMutation) AddLastSeenSequence(i int64) {
	if m.addlast_seen_sequence != nil {
		*m.addlast_seen_sequence += i
	} else {
		m.addlast_seen_sequence = &i
	}
}

// AddedLastSeenSequence returns the value that was added to the "last_seen_sequence" field in this mutation.
func (m *AgentSessionMutation) AddedLastSeenSequence() (r int64, exists bool) {
	v := m.addlast_seen_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeenSequence resets all changes to the "last_seen_sequence" field.
func (m *AgentSessionMutation) ResetLastSeenSequence() {
	m.last_seen_sequence = nil
	m.addlast_seen_sequence = nil
}

// SetSentMessageIds sets the "sent_message_ids" field.
func (m *AgentSessionMutation) SetSentMessageIds(s []string) {
	m.sent_message_ids = &s
	m.appendsent_message_ids = nil
}

// SentMessageIds returns the value of the "sent_message_ids" field in the mutation.
func (m *AgentSessionMutation) SentMessageIds() (r []string, exists bool) {
	v := m.sent_message_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSentMessageIds returns the old "sent_message_ids" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldSentMessageIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentMessageIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentMessageIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentMessageIds: %w", err)
	}
	return oldValue.SentMessageIds, nil
}

// AppendSentMessageIds adds s to the "sent_message_ids" field.
func (m *AgentSessionMutation) AppendSentMessageIds(s []string) {
	m.appendsent_message_ids = append(m.appendsent_message_ids, s...)
}

// AppendedSentMessageIds returns the list of values that were appended to the "sent_message_ids" field in this mutation.
func (m *AgentSessionMutation) AppendedSentMessageIds() ([]string, bool) {
	if len(m.appendsent_message_ids) == 0 {
		return nil, false
	}
	return m.appendsent_message_ids, true
}

// ClearSentMessageIds clears the value of the "sent_message_ids" field.
func (m *AgentSessionMutation) ClearSentMessageIds() {
	m.sent_message_ids = nil
	m.appendsent_message_ids = nil
	m.clearedFields[agentsession.FieldSentMessageIds] = struct{}{}
}

// SentMessageIdsCleared returns if the "sent_message_ids" field was cleared in this mutation.
func (m *AgentSessionMutation) SentMessageIdsCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldSentMessageIds]
	return ok
}

// ResetSentMessageIds resets all changes to the "sent_message_ids" field.
func (m *AgentSessionMutation) ResetSentMessageIds() {
	m.sent_message_ids = nil
	m.appendsent_message_ids = nil
	delete(m.clearedFields, agentsession.FieldSentMessageIds)
}

// SetResponseMessageID sets the "response_message_id" field.
func (m *AgentSessionMutation) SetResponseMessageID(s string) {
	m.response_message_id = &s
}

// ResponseMessageID returns the value of the "response_message_id" field in the mutation.
func (m *AgentSessionMutation) ResponseMessageID() (r string, exists bool) {
	v := m.response_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMessageID returns the old "response_message_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldResponseMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMessageID: %w", err)
	}
	return oldValue.ResponseMessageID, nil
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (m *AgentSessionMutation) ClearResponseMessageID() {
	m.response_message_id = nil
	m.clearedFields[agentsession.FieldResponseMessageID] = struct{}{}
}

// ResponseMessageIDCleared returns if the "response_message_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ResponseMessageIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldResponseMessageID]
	return ok
}

// ResetResponseMessageID resets all changes to the "response_message_id" field.
func (m *AgentSessionMutation) ResetResponseMessageID() {
	m.response_message_id = nil
	delete(m.clearedFields, agentsession.FieldResponseMessageID)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentsession.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentsession.FieldCompletedAt)
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by ids.
func (m *AgentSessionMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the AgentStep entity.
func (m *AgentSessionMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the AgentStep entity was cleared.
func (m *AgentSessionMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the AgentStep entity by IDs.
func (m *AgentSessionMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the AgentStep entity.
func (m *AgentSessionMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentSessionMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentSessionMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workspace_id != nil {
		fields = append(fields, agentsession.FieldWorkspaceID)
	}
	if m.stream_id != nil {
		fields = append(fields, agentsession.FieldStreamID)
	}
	if m.persona_id != nil {
		fields = append(fields, agentsession.FieldPersonaID)
	}
	if m.trigger_message_id != nil {
		fields = append(fields, agentsession.FieldTriggerMessageID)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.server_id != nil {
		fields = append(fields, agentsession.FieldServerID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, agentsession.FieldHeartbeatAt)
	}
	if m.last_seen_sequence != nil {
		fields = append(fields, agentsession.FieldLastSeenSequence)
	}
	if m.sent_message_ids != nil {
		fields = append(fields, agentsession.FieldSentMessageIds)
	}
	if m.response_message_id != nil {
		fields = append(fields, agentsession.FieldResponseMessageID)
	}
	if m.error_message != nil {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentsession.FieldStreamID:
		return m.StreamID()
	case agentsession.FieldPersonaID:
		return m.PersonaID()
	case agentsession.FieldTriggerMessageID:
		return m.TriggerMessageID()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldServerID:
		return m.ServerID()
	case agentsession.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case agentsession.FieldLastSeenSequence:
		return m.LastSeenSequence()
	case agentsession.FieldSentMessageIds:
		return m.SentMessageIds()
	case agentsession.FieldResponseMessageID:
		return m.ResponseMessageID()
	case agentsession.FieldErrorMessage:
		return m.ErrorMessage()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentsession.FieldStreamID:
		return m.OldStreamID(ctx)
	case agentsession.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case agentsession.FieldTriggerMessageID:
		return m.OldTriggerMessageID(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldServerID:
		return m.OldServerID(ctx)
	case agentsession.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case agentsession.FieldLastSeenSequence:
		return m.OldLastSeenSequence(ctx)
	case agentsession.FieldSentMessageIds:
		return m.OldSentMessageIds(ctx)
	case agentsession.FieldResponseMessageID:
		return m.OldResponseMessageID(ctx)
	case agentsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentsession.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case agentsession.FieldPersonaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case agentsession.FieldTriggerMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerMessageID(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case agentsession.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case agentsession.FieldLastSeenSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenSequence(v)
		return nil
	case agentsession.FieldSentMessageIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentMessageIds(v)
		return nil
	case agentsession.FieldResponseMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMessageID(v)
		return nil
	case agentsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addlast_seen_sequence != nil {
		fields = append(fields, agentsession.FieldLastSeenSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldLastSeenSequence:
		return m.AddedLastSeenSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldLastSeenSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeenSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldServerID) {
		fields = append(fields, agentsession.FieldServerID)
	}
	if m.FieldCleared(agentsession.FieldHeartbeatAt) {
		fields = append(fields, agentsession.FieldHeartbeatAt)
	}
	if m.FieldCleared(agentsession.FieldSentMessageIds) {
		fields = append(fields, agentsession.FieldSentMessageIds)
	}
	if m.FieldCleared(agentsession.FieldResponseMessageID) {
		fields = append(fields, agentsession.FieldResponseMessageID)
	}
	if m.FieldCleared(agentsession.FieldErrorMessage) {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.FieldCleared(agentsession.FieldCompletedAt) {
		fields = append(fields, agentsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldServerID:
		m.ClearServerID()
		return nil
	case agentsession.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case agentsession.FieldSentMessageIds:
		m.ClearSentMessageIds()
		return nil
	case agentsession.FieldResponseMessageID:
		m.ClearResponseMessageID()
		return nil
	case agentsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentsession.FieldStreamID:
		m.ResetStreamID()
		return nil
	case agentsession.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case agentsession.FieldTriggerMessageID:
		m.ResetTriggerMessageID()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldServerID:
		m.ResetServerID()
		return nil
	case agentsession.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case agentsession.FieldLastSeenSequence:
		m.ResetLastSeenSequence()
		return nil
	case agentsession.FieldSentMessageIds:
		m.ResetSentMessageIds()
		return nil
	case agentsession.FieldResponseMessageID:
		m.ResetResponseMessageID()
		return nil
	case agentsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// AgentStepMutation represents an operation that mutates the AgentStep nodes in the graph.
type AgentStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_number    *int
	addstep_number *int
	step_type      *string
	content        *string
	sources        *[]map[string]string
	appendsources  []map[string]string
	message_id     *string
	metadata       *map[string]interface{}
	started_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*AgentStep, error)
	predicates     []predicate.AgentStep
}

var _ ent.Mutation = (*AgentStepMutation)(nil)

// agentstepOption allows management of the mutation configuration using functional options.
type agentstepOption func(*AgentStepMutation)

// newAgentStepMutation creates new mutation for the AgentStep entity.
func newAgentStepMutation(c config, op Op, opts ...agentstepOption) *AgentStepMutation {
	m := &AgentStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStepID sets the ID field of the mutation.
func withAgentStepID(id string) agentstepOption {
	return func(m *AgentStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentStep
		)
		m.oldValue = func(ctx context.Context) (*AgentStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentStep sets the old AgentStep of the mutation.
func withAgentStep(node *AgentStep) agentstepOption {
	return func(m *AgentStepMutation) {
		m.oldValue = func(context.Context) (*AgentStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentStep entities.
func (m *AgentStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentStepMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentStepMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentStepMutation) ResetSessionID() {
	m.session = nil
}

// SetStepNumber sets the "step_number" field.
func (m *AgentStepMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *AgentStepMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *AgentStepMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *AgentStepMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *AgentStepMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetStepType sets the "step_type" field.
func (m *AgentStepMutation) SetStepType(s string) {
	m.step_type = &s
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *AgentStepMutation) StepType() (r string, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *AgentStepMutation) ResetStepType() {
	m.step_type = nil
}

// SetContent sets the "content" field.
func (m *AgentStepMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentStepMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *AgentStepMutation) ClearContent() {
	m.content = nil
	m.clearedFields[agentstep.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *AgentStepMutation) ContentCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *AgentStepMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, agentstep.FieldContent)
}

// SetSources sets the "sources" field.
func (m *AgentStepMutation) SetSources(value []map[string]string) {
	m.sources = &value
	m.appendsources = nil
}

// Sources returns the value of the "sources" field in the mutation.
func (m *AgentStepMutation) Sources() (r []map[string]string, exists bool) {
	v := m.sources
	if v == nil {
		return
	}
	return *v, true
}

// OldSources returns the old "sources" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldSources(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSources: %w", err)
	}
	return oldValue.Sources, nil
}

// AppendSources adds value to the "sources" field.
func (m *AgentStepMutation) AppendSources(value []map[string]string) {
	m.appendsources = append(m.appendsources, value...)
}

// AppendedSources returns the list of values that were appended to the "sources" field in this mutation.
func (m *AgentStepMutation) AppendedSources() ([]map[string]string, bool) {
	if len(m.appendsources) == 0 {
		return nil, false
	}
	return m.appendsources, true
}

// ClearSources clears the value of the "sources" field.
func (m *AgentStepMutation) ClearSources() {
	m.sources = nil
	m.appendsources = nil
	m.clearedFields[agentstep.FieldSources] = struct{}{}
}

// SourcesCleared returns if the "sources" field was cleared in this mutation.
func (m *AgentStepMutation) SourcesCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldSources]
	return ok
}

// ResetSources resets all changes to the "sources" field.
func (m *AgentStepMutation) ResetSources() {
	m.sources = nil
	m.appendsources = nil
	delete(m.clearedFields, agentstep.FieldSources)
}

// SetMessageID sets the "message_id" field.
func (m *AgentStepMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *AgentStepMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *AgentStepMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[agentstep.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *AgentStepMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *AgentStepMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, agentstep.FieldMessageID)
}

// SetMetadata sets the "metadata" field.
func (m *AgentStepMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentStepMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentStepMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentstep.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentStepMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentStepMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentstep.FieldMetadata)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentStepMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentstep.FieldCompletedAt)
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *AgentStepMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentstep.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *AgentStepMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentStepMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgentStepMutation builder.
func (m *AgentStepMutation) Where(ps ...predicate.AgentStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentStep).
func (m *AgentStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, agentstep.FieldSessionID)
	}
	if m.step_number != nil {
		fields = append(fields, agentstep.FieldStepNumber)
	}
	if m.step_type != nil {
		fields = append(fields, agentstep.FieldStepType)
	}
	if m.content != nil {
		fields = append(fields, agentstep.FieldContent)
	}
	if m.sources != nil {
		fields = append(fields, agentstep.FieldSources)
	}
	if m.message_id != nil {
		fields = append(fields, agentstep.FieldMessageID)
	}
	if m.metadata != nil {
		fields = append(fields, agentstep.FieldMetadata)
	}
	if m.started_at != nil {
		fields = append(fields, agentstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentstep.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldSessionID:
		return m.SessionID()
	case agentstep.FieldStepNumber:
		return m.StepNumber()
	case agentstep.FieldStepType:
		return m.StepType()
	case agentstep.FieldContent:
		return m.Content()
	case agentstep.FieldSources:
		return m.Sources()
	case agentstep.FieldMessageID:
		return m.MessageID()
	case agentstep.FieldMetadata:
		return m.Metadata()
	case agentstep.FieldStartedAt:
		return m.StartedAt()
	case agentstep.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstep.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentstep.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case agentstep.FieldStepType:
		return m.OldStepType(ctx)
	case agentstep.FieldContent:
		return m.OldContent(ctx)
	case agentstep.FieldSources:
		return m.OldSources(ctx)
	case agentstep.FieldMessageID:
		return m.OldMessageID(ctx)
	case agentstep.FieldMetadata:
		return m.OldMetadata(ctx)
	case agentstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentstep.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case agentstep.FieldStepType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case agentstep.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentstep.FieldSources:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSources(v)
		return nil
	case agentstep.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case agentstep.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agentstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_number != nil {
		fields = append(fields, agentstep.FieldStepNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldStepNumber:
		return m.AddedStepNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstep.FieldContent) {
		fields = append(fields, agentstep.FieldContent)
	}
	if m.FieldCleared(agentstep.FieldSources) {
		fields = append(fields, agentstep.FieldSources)
	}
	if m.FieldCleared(agentstep.FieldMessageID) {
		fields = append(fields, agentstep.FieldMessageID)
	}
	if m.FieldCleared(agentstep.FieldMetadata) {
		fields = append(fields, agentstep.FieldMetadata)
	}
	if m.FieldCleared(agentstep.FieldCompletedAt) {
		fields = append(fields, agentstep.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStepMutation) ClearField(name string) error {
	switch name {
	case agentstep.FieldContent:
		m.ClearContent()
		return nil
	case agentstep.FieldSources:
		m.ClearSources()
		return nil
	case agentstep.FieldMessageID:
		m.ClearMessageID()
		return nil
	case agentstep.FieldMetadata:
		m.ClearMetadata()
		return nil
	case agentstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStepMutation) ResetField(name string) error {
	switch name {
	case agentstep.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentstep.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case agentstep.FieldStepType:
		m.ResetStepType()
		return nil
	case agentstep.FieldContent:
		m.ResetContent()
		return nil
	case agentstep.FieldSources:
		m.ResetSources()
		return nil
	case agentstep.FieldMessageID:
		m.ResetMessageID()
		return nil
	case agentstep.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agentstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, agentstep.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, agentstep.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStepMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstep.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStepMutation) ClearEdge(name string) error {
	switch name {
	case agentstep.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStepMutation) ResetEdge(name string) error {
	switch name {
	case agentstep.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgentStep edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	session_id    *string
	room          *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetRoom sets the "room" field.
func (m *EventMutation) SetRoom(s string) {
	m.room = &s
}

// Room returns the value of the "room" field in the mutation.
func (m *EventMutation) Room() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoom returns the old "room" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRoom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoom: %w", err)
	}
	return oldValue.Room, nil
}

// ResetRoom resets all changes to the "room" field.
func (m *EventMutation) ResetRoom() {
	m.room = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.room != nil {
		fields = append(fields, event.FieldRoom)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldRoom:
		return m.Room()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldRoom:
		return m.OldRoom(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldRoom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoom(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldRoom:
		m.ResetRoom()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	queue           *string
	payload         *map[string]interface{}
	status          *job.Status
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	run_at          *time.Time
	last_error      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id int64) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAt sets the "run_at" field.
func (m *JobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *JobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *JobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.run_at != nil {
		fields = append(fields, job.FieldRunAt)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldRunAt:
		return m.RunAt()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldRunAt:
		return m.OldRunAt(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldRunAt:
		m.ResetRunAt()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// ListenerCursorMutation represents an operation that mutates the ListenerCursor nodes in the graph.
type ListenerCursorMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	last_processed_id    *int64
	addlast_processed_id *int64
	lease_owner          *string
	lease_expires_at     *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ListenerCursor, error)
	predicates           []predicate.ListenerCursor
}

var _ ent.Mutation = (*ListenerCursorMutation)(nil)

// listenercursorOption allows management of the mutation configuration using functional options.
type listenercursorOption func(*ListenerCursorMutation)

// newListenerCursorMutation creates new mutation for the ListenerCursor entity.
func newListenerCursorMutation(c config, op Op, opts ...listenercursorOption) *ListenerCursorMutation {
	m := &ListenerCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeListenerCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListenerCursorID sets the ID field of the mutation.
func withListenerCursorID(id string) listenercursorOption {
	return func(m *ListenerCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *ListenerCursor
		)
		m.oldValue = func(ctx context.Context) (*ListenerCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ListenerCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListenerCursor sets the old ListenerCursor of the mutation.
func withListenerCursor(node *ListenerCursor) listenercursorOption {
	return func(m *ListenerCursorMutation) {
		m.oldValue = func(context.Context) (*ListenerCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListenerCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListenerCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ListenerCursor entities.
func (m *ListenerCursorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListenerCursorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListenerCursorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ListenerCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLastProcessedID sets the "last_processed_id" field.
func (m *ListenerCursorMutation) SetLastProcessedID(i int64) {
	m.last_processed_id = &i
	m.addlast_processed_id = nil
}

// LastProcessedID returns the value of the "last_processed_id" field in the mutation.
func (m *ListenerCursorMutation) LastProcessedID() (r int64, exists bool) {
	v := m.last_processed_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedID returns the old "last_processed_id" field's value of the ListenerCursor entity.
// If the ListenerCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListenerCursorMutation) OldLastProcessedID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedID: %w", err)
	}
	return oldValue.LastProcessedID, nil
}

// AddLastProcessedID adds i to the "last_processed_id" field.
func (m *ListenerCursorMutation) AddLastProcessedID(i int64) {
	if m.addlast_processed_id != nil {
		*m.addlast_processed_id += i
	} else {
		m.addlast_processed_id = &i
	}
}

// AddedLastProcessedID returns the value that was added to the "last_processed_id" field in this mutation.
func (m *ListenerCursorMutation) AddedLastProcessedID() (r int64, exists bool) {
	v := m.addlast_processed_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastProcessedID resets all changes to the "last_processed_id" field.
func (m *ListenerCursorMutation) ResetLastProcessedID() {
	m.last_processed_id = nil
	m.addlast_processed_id = nil
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *ListenerCursorMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *ListenerCursorMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the ListenerCursor entity.
// If the ListenerCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListenerCursorMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *ListenerCursorMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[listenercursor.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *ListenerCursorMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[listenercursor.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *ListenerCursorMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, listenercursor.FieldLeaseOwner)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *ListenerCursorMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *ListenerCursorMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the ListenerCursor entity.
// If the ListenerCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListenerCursorMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *ListenerCursorMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[listenercursor.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *ListenerCursorMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[listenercursor.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *ListenerCursorMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, listenercursor.FieldLeaseExpiresAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ListenerCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ListenerCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ListenerCursor entity.
// If the ListenerCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListenerCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ListenerCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ListenerCursorMutation builder.
func (m *ListenerCursorMutation) Where(ps ...predicate.ListenerCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListenerCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListenerCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ListenerCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListenerCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListenerCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ListenerCursor).
func (m *ListenerCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListenerCursorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.last_processed_id != nil {
		fields = append(fields, listenercursor.FieldLastProcessedID)
	}
	if m.lease_owner != nil {
		fields = append(fields, listenercursor.FieldLeaseOwner)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, listenercursor.FieldLeaseExpiresAt)
	}
	if m.updated_at != nil {
		fields = append(fields, listenercursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListenerCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listenercursor.FieldLastProcessedID:
		return m.LastProcessedID()
	case listenercursor.FieldLeaseOwner:
		return m.LeaseOwner()
	case listenercursor.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case listenercursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListenerCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listenercursor.FieldLastProcessedID:
		return m.OldLastProcessedID(ctx)
	case listenercursor.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case listenercursor.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case listenercursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ListenerCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListenerCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listenercursor.FieldLastProcessedID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedID(v)
		return nil
	case listenercursor.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case listenercursor.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case listenercursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ListenerCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListenerCursorMutation) AddedFields() []string {
	var fields []string
	if m.addlast_processed_id != nil {
		fields = append(fields, listenercursor.FieldLastProcessedID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListenerCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listenercursor.FieldLastProcessedID:
		return m.AddedLastProcessedID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListenerCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listenercursor.FieldLastProcessedID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProcessedID(v)
		return nil
	}
	return fmt.Errorf("unknown ListenerCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListenerCursorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listenercursor.FieldLeaseOwner) {
		fields = append(fields, listenercursor.FieldLeaseOwner)
	}
	if m.FieldCleared(listenercursor.FieldLeaseExpiresAt) {
		fields = append(fields, listenercursor.FieldLeaseExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListenerCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListenerCursorMutation) ClearField(name string) error {
	switch name {
	case listenercursor.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case listenercursor.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ListenerCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListenerCursorMutation) ResetField(name string) error {
	switch name {
	case listenercursor.FieldLastProcessedID:
		m.ResetLastProcessedID()
		return nil
	case listenercursor.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case listenercursor.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case listenercursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ListenerCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListenerCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListenerCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListenerCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListenerCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListenerCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListenerCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListenerCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ListenerCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListenerCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ListenerCursor edge %s", name)
}

// OutboxEntryMutation represents an operation that mutates the OutboxEntry nodes in the graph.
type OutboxEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	kind          *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OutboxEntry, error)
	predicates    []predicate.OutboxEntry
}

var _ ent.Mutation = (*OutboxEntryMutation)(nil)

// outboxentryOption allows management of the mutation configuration using functional options.
type outboxentryOption func(*OutboxEntryMutation)

// newOutboxEntryMutation creates new mutation for the OutboxEntry entity.
func newOutboxEntryMutation(c config, op Op, opts ...outboxentryOption) *OutboxEntryMutation {
	m := &OutboxEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEntryID sets the ID field of the mutation.
func withOutboxEntryID(id int64) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEntry
		)
		m.oldValue = func(ctx context.Context) (*OutboxEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEntry sets the old OutboxEntry of the mutation.
func withOutboxEntry(node *OutboxEntry) outboxentryOption {
	return func(m *OutboxEntryMutation) {
		m.oldValue = func(context.Context) (*OutboxEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxEntry entities.
func (m *OutboxEntryMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEntryMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEntryMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *OutboxEntryMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OutboxEntryMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OutboxEntryMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxEntry entity.
// If the OutboxEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OutboxEntryMutation builder.
func (m *OutboxEntryMutation) Where(ps ...predicate.OutboxEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEntry).
func (m *OutboxEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.kind != nil {
		fields = append(fields, outboxentry.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, outboxentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, outboxentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxentry.FieldKind:
		return m.Kind()
	case outboxentry.FieldPayload:
		return m.Payload()
	case outboxentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxentry.FieldKind:
		return m.OldKind(ctx)
	case outboxentry.FieldPayload:
		return m.OldPayload(ctx)
	case outboxentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxentry.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case outboxentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OutboxEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OutboxEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEntryMutation) ResetField(name string) error {
	switch name {
	case outboxentry.FieldKind:
		m.ResetKind()
		return nil
	case outboxentry.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEntry edge %s", name)
}

// RollingSummaryMutation represents an operation that mutates the RollingSummary nodes in the graph.
type RollingSummaryMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	stream_id                   *string
	persona_id                  *string
	summary                     *string
	last_summarized_sequence    *int64
	addlast_summarized_sequence *int64
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*RollingSummary, error)
	predicates                  []predicate.RollingSummary
}

var _ ent.Mutation = (*RollingSummaryMutation)(nil)

// rollingsummaryOption allows management of the mutation configuration using functional options.
type rollingsummaryOption func(*RollingSummaryMutation)

// newRollingSummaryMutation creates new mutation for the RollingSummary entity.
func newRollingSummaryMutation(c config, op Op, opts ...rollingsummaryOption) *RollingSummaryMutation {
	m := &RollingSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeRollingSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRollingSummaryID sets the ID field of the mutation.
func withRollingSummaryID(id string) rollingsummaryOption {
	return func(m *RollingSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *RollingSummary
		)
		m.oldValue = func(ctx context.Context) (*RollingSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RollingSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRollingSummary sets the old RollingSummary of the mutation.
func withRollingSummary(node *RollingSummary) rollingsummaryOption {
	return func(m *RollingSummaryMutation) {
		m.oldValue = func(context.Context) (*RollingSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RollingSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RollingSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RollingSummary entities.
func (m *RollingSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RollingSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RollingSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RollingSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *RollingSummaryMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *RollingSummaryMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the RollingSummary entity.
// If the RollingSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RollingSummaryMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *RollingSummaryMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *RollingSummaryMutation) SetPersonaID(s string) {
	m.persona_id = &s
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *RollingSummaryMutation) PersonaID() (r string, exists bool) {
	v := m.persona_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the RollingSummary entity.
// If the RollingSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RollingSummaryMutation) OldPersonaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *RollingSummaryMutation) ResetPersonaID() {
	m.persona_id = nil
}

// SetSummary sets the "summary" field.
func (m *RollingSummaryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RollingSummaryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the RollingSummary entity.
// If the RollingSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RollingSummaryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *RollingSummaryMutation) ResetSummary() {
	m.summary = nil
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (m *RollingSummaryMutation) SetLastSummarizedSequence(i int64) {
	m.last_summarized_sequence = &i
	m.addlast_summarized_sequence = nil
}

// LastSummarizedSequence returns the value of the "last_summarized_sequence" field in the mutation.
func (m *RollingSummaryMutation) LastSummarizedSequence() (r int64, exists bool) {
	v := m.last_summarized_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSummarizedSequence returns the old "last_summarized_sequence" field's value of the RollingSummary entity.
// If the RollingSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RollingSummaryMutation) OldLastSummarizedSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSummarizedSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSummarizedSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSummarizedSequence: %w", err)
	}
	return oldValue.LastSummarizedSequence, nil
}

// AddLastSummarizedSequence adds i to the "last_summarized_sequence" field.
func (m *RollingSummaryMutation) AddLastSummarizedSequence(i int64) {
	if m.addlast_summarized_sequence != nil {
		*m.addlast_summarized_sequence += i
	} else {
		m.addlast_summarized_sequence = &i
	}
}

// AddedLastSummarizedSequence returns the value that was added to the "last_summarized_sequence" field in this mutation.
func (m *RollingSummaryMutation) AddedLastSummarizedSequence() (r int64, exists bool) {
	v := m.addlast_summarized_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSummarizedSequence resets all changes to the "last_summarized_sequence" field.
func (m *RollingSummaryMutation) ResetLastSummarizedSequence() {
	m.last_summarized_sequence = nil
	m.addlast_summarized_sequence = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RollingSummaryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RollingSummaryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RollingSummary entity.
// If the RollingSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RollingSummaryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RollingSummaryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RollingSummaryMutation builder.
func (m *RollingSummaryMutation) Where(ps ...predicate.RollingSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RollingSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RollingSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RollingSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RollingSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RollingSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RollingSummary).
func (m *RollingSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RollingSummaryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.stream_id != nil {
		fields = append(fields, rollingsummary.FieldStreamID)
	}
	if m.persona_id != nil {
		fields = append(fields, rollingsummary.FieldPersonaID)
	}
	if m.summary != nil {
		fields = append(fields, rollingsummary.FieldSummary)
	}
	if m.last_summarized_sequence != nil {
		fields = append(fields, rollingsummary.FieldLastSummarizedSequence)
	}
	if m.updated_at != nil {
		fields = append(fields, rollingsummary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RollingSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rollingsummary.FieldStreamID:
		return m.StreamID()
	case rollingsummary.FieldPersonaID:
		return m.PersonaID()
	case rollingsummary.FieldSummary:
		return m.Summary()
	case rollingsummary.FieldLastSummarizedSequence:
		return m.LastSummarizedSequence()
	case rollingsummary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RollingSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rollingsummary.FieldStreamID:
		return m.OldStreamID(ctx)
	case rollingsummary.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case rollingsummary.FieldSummary:
		return m.OldSummary(ctx)
	case rollingsummary.FieldLastSummarizedSequence:
		return m.OldLastSummarizedSequence(ctx)
	case rollingsummary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RollingSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RollingSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rollingsummary.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case rollingsummary.FieldPersonaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case rollingsummary.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case rollingsummary.FieldLastSummarizedSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSummarizedSequence(v)
		return nil
	case rollingsummary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RollingSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RollingSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addlast_summarized_sequence != nil {
		fields = append(fields, rollingsummary.FieldLastSummarizedSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RollingSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rollingsummary.FieldLastSummarizedSequence:
		return m.AddedLastSummarizedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RollingSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rollingsummary.FieldLastSummarizedSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSummarizedSequence(v)
		return nil
	}
	return fmt.Errorf("unknown RollingSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RollingSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RollingSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RollingSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RollingSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RollingSummaryMutation) ResetField(name string) error {
	switch name {
	case rollingsummary.FieldStreamID:
		m.ResetStreamID()
		return nil
	case rollingsummary.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case rollingsummary.FieldSummary:
		m.ResetSummary()
		return nil
	case rollingsummary.FieldLastSummarizedSequence:
		m.ResetLastSummarizedSequence()
		return nil
	case rollingsummary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RollingSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RollingSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RollingSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RollingSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RollingSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RollingSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RollingSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RollingSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RollingSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RollingSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RollingSummary edge %s", name)
}
