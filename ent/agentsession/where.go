// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomchat/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStreamID, v))
}

// PersonaID applies equality check predicate on the "persona_id" field. It's identical to PersonaIDEQ.
func PersonaID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPersonaID, v))
}

// TriggerMessageID applies equality check predicate on the "trigger_message_id" field. It's identical to TriggerMessageIDEQ.
func TriggerMessageID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTriggerMessageID, v))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldServerID, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldHeartbeatAt, v))
}

// LastSeenSequence applies equality check predicate on the "last_seen_sequence" field. It's identical to LastSeenSequenceEQ.
func LastSeenSequence(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastSeenSequence, v))
}

// ResponseMessageID applies equality check predicate on the "response_message_id" field. It's identical to ResponseMessageIDEQ.
func ResponseMessageID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldResponseMessageID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCompletedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldStreamID, v))
}

// PersonaIDEQ applies the EQ predicate on the "persona_id" field.
func PersonaIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPersonaID, v))
}

// PersonaIDNEQ applies the NEQ predicate on the "persona_id" field.
func PersonaIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldPersonaID, v))
}

// PersonaIDIn applies the In predicate on the "persona_id" field.
func PersonaIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldPersonaID, vs...))
}

// PersonaIDNotIn applies the NotIn predicate on the "persona_id" field.
func PersonaIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldPersonaID, vs...))
}

// PersonaIDGT applies the GT predicate on the "persona_id" field.
func PersonaIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldPersonaID, v))
}

// PersonaIDGTE applies the GTE predicate on the "persona_id" field.
func PersonaIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldPersonaID, v))
}

// PersonaIDLT applies the LT predicate on the "persona_id" field.
func PersonaIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldPersonaID, v))
}

// PersonaIDLTE applies the LTE predicate on the "persona_id" field.
func PersonaIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldPersonaID, v))
}

// PersonaIDContains applies the Contains predicate on the "persona_id" field.
func PersonaIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldPersonaID, v))
}

// PersonaIDHasPrefix applies the HasPrefix predicate on the "persona_id" field.
func PersonaIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldPersonaID, v))
}

// PersonaIDHasSuffix applies the HasSuffix predicate on the "persona_id" field.
func PersonaIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldPersonaID, v))
}

// PersonaIDEqualFold applies the EqualFold predicate on the "persona_id" field.
func PersonaIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldPersonaID, v))
}

// PersonaIDContainsFold applies the ContainsFold predicate on the "persona_id" field.
func PersonaIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldPersonaID, v))
}

// TriggerMessageIDEQ applies the EQ predicate on the "trigger_message_id" field.
func TriggerMessageIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTriggerMessageID, v))
}

// TriggerMessageIDNEQ applies the NEQ predicate on the "trigger_message_id" field.
func TriggerMessageIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTriggerMessageID, v))
}

// TriggerMessageIDIn applies the In predicate on the "trigger_message_id" field.
func TriggerMessageIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTriggerMessageID, vs...))
}

// TriggerMessageIDNotIn applies the NotIn predicate on the "trigger_message_id" field.
func TriggerMessageIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTriggerMessageID, vs...))
}

// TriggerMessageIDGT applies the GT predicate on the "trigger_message_id" field.
func TriggerMessageIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTriggerMessageID, v))
}

// TriggerMessageIDGTE applies the GTE predicate on the "trigger_message_id" field.
func TriggerMessageIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTriggerMessageID, v))
}

// TriggerMessageIDLT applies the LT predicate on the "trigger_message_id" field.
func TriggerMessageIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTriggerMessageID, v))
}

// TriggerMessageIDLTE applies the LTE predicate on the "trigger_message_id" field.
func TriggerMessageIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTriggerMessageID, v))
}

// TriggerMessageIDContains applies the Contains predicate on the "trigger_message_id" field.
func TriggerMessageIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldTriggerMessageID, v))
}

// TriggerMessageIDHasPrefix applies the HasPrefix predicate on the "trigger_message_id" field.
func TriggerMessageIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldTriggerMessageID, v))
}

// TriggerMessageIDHasSuffix applies the HasSuffix predicate on the "trigger_message_id" field.
func TriggerMessageIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldTriggerMessageID, v))
}

// TriggerMessageIDEqualFold applies the EqualFold predicate on the "trigger_message_id" field.
func TriggerMessageIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldTriggerMessageID, v))
}

// TriggerMessageIDContainsFold applies the ContainsFold predicate on the "trigger_message_id" field.
func TriggerMessageIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldTriggerMessageID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDIsNil applies the IsNil predicate on the "server_id" field.
func ServerIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldServerID))
}

// ServerIDNotNil applies the NotNil predicate on the "server_id" field.
func ServerIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldServerID))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldServerID, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldHeartbeatAt))
}

// LastSeenSequenceEQ applies the EQ predicate on the "last_seen_sequence" field.
func LastSeenSequenceEQ(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastSeenSequence, v))
}

// LastSeenSequenceNEQ applies the NEQ predicate on the "last_seen_sequence" field.
func LastSeenSequenceNEQ(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldLastSeenSequence, v))
}

// LastSeenSequenceIn applies the In predicate on the "last_seen_sequence" field.
func LastSeenSequenceIn(vs ...int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldLastSeenSequence, vs...))
}

// LastSeenSequenceNotIn applies the NotIn predicate on the "last_seen_sequence" field.
func LastSeenSequenceNotIn(vs ...int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldLastSeenSequence, vs...))
}

// LastSeenSequenceGT applies the GT predicate on the "last_seen_sequence" field.
func LastSeenSequenceGT(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldLastSeenSequence, v))
}

// LastSeenSequenceGTE applies the GTE predicate on the "last_seen_sequence" field.
func LastSeenSequenceGTE(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldLastSeenSequence, v))
}

// LastSeenSequenceLT applies the LT predicate on the "last_seen_sequence" field.
func LastSeenSequenceLT(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldLastSeenSequence, v))
}

// LastSeenSequenceLTE applies the LTE predicate on the "last_seen_sequence" field.
func LastSeenSequenceLTE(v int64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldLastSeenSequence, v))
}

// SentMessageIdsIsNil applies the IsNil predicate on the "sent_message_ids" field.
func SentMessageIdsIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldSentMessageIds))
}

// SentMessageIdsNotNil applies the NotNil predicate on the "sent_message_ids" field.
func SentMessageIdsNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldSentMessageIds))
}

// ResponseMessageIDEQ applies the EQ predicate on the "response_message_id" field.
func ResponseMessageIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldResponseMessageID, v))
}

// ResponseMessageIDNEQ applies the NEQ predicate on the "response_message_id" field.
func ResponseMessageIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldResponseMessageID, v))
}

// ResponseMessageIDIn applies the In predicate on the "response_message_id" field.
func ResponseMessageIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldResponseMessageID, vs...))
}

// ResponseMessageIDNotIn applies the NotIn predicate on the "response_message_id" field.
func ResponseMessageIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldResponseMessageID, vs...))
}

// ResponseMessageIDGT applies the GT predicate on the "response_message_id" field.
func ResponseMessageIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldResponseMessageID, v))
}

// ResponseMessageIDGTE applies the GTE predicate on the "response_message_id" field.
func ResponseMessageIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldResponseMessageID, v))
}

// ResponseMessageIDLT applies the LT predicate on the "response_message_id" field.
func ResponseMessageIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldResponseMessageID, v))
}

// ResponseMessageIDLTE applies the LTE predicate on the "response_message_id" field.
func ResponseMessageIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldResponseMessageID, v))
}

// ResponseMessageIDContains applies the Contains predicate on the "response_message_id" field.
func ResponseMessageIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldResponseMessageID, v))
}

// ResponseMessageIDHasPrefix applies the HasPrefix predicate on the "response_message_id" field.
func ResponseMessageIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldResponseMessageID, v))
}

// ResponseMessageIDHasSuffix applies the HasSuffix predicate on the "response_message_id" field.
func ResponseMessageIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldResponseMessageID, v))
}

// ResponseMessageIDIsNil applies the IsNil predicate on the "response_message_id" field.
func ResponseMessageIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldResponseMessageID))
}

// ResponseMessageIDNotNil applies the NotNil predicate on the "response_message_id" field.
func ResponseMessageIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldResponseMessageID))
}

// ResponseMessageIDEqualFold applies the EqualFold predicate on the "response_message_id" field.
func ResponseMessageIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldResponseMessageID, v))
}

// ResponseMessageIDContainsFold applies the ContainsFold predicate on the "response_message_id" field.
func ResponseMessageIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldResponseMessageID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.AgentStep) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
