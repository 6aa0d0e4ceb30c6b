// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsession type in the database.
	Label = "agent_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldPersonaID holds the string denoting the persona_id field in the database.
	FieldPersonaID = "persona_id"
	// FieldTriggerMessageID holds the string denoting the trigger_message_id field in the database.
	FieldTriggerMessageID = "trigger_message_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldLastSeenSequence holds the string denoting the last_seen_sequence field in the database.
	FieldLastSeenSequence = "last_seen_sequence"
	// FieldSentMessageIds holds the string denoting the sent_message_ids field in the database.
	FieldSentMessageIds = "sent_message_ids"
	// FieldResponseMessageID holds the string denoting the response_message_id field in the database.
	FieldResponseMessageID = "response_message_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// AgentStepFieldID holds the string denoting the ID field of the AgentStep.
	AgentStepFieldID = "step_id"
	// Table holds the table name of the agentsession in the database.
	Table = "agent_sessions"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "agent_steps"
	// StepsInverseTable is the table name for the AgentStep entity.
	// It exists in this package in order to avoid circular dependency with the "agentstep" package.
	StepsInverseTable = "agent_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "session_id"
)

// Columns holds all SQL columns for agentsession fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldStreamID,
	FieldPersonaID,
	FieldTriggerMessageID,
	FieldStatus,
	FieldServerID,
	FieldHeartbeatAt,
	FieldLastSeenSequence,
	FieldSentMessageIds,
	FieldResponseMessageID,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastSeenSequence holds the default value on creation for the "last_seen_sequence" field.
	DefaultLastSeenSequence int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSuperseded Status = "superseded"
	StatusDeleted    Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSuperseded, StatusDeleted:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByPersonaID orders the results by the persona_id field.
func ByPersonaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaID, opts...).ToFunc()
}

// ByTriggerMessageID orders the results by the trigger_message_id field.
func ByTriggerMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerMessageID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByLastSeenSequence orders the results by the last_seen_sequence field.
func ByLastSeenSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenSequence, opts...).ToFunc()
}

// ByResponseMessageID orders the results by the response_message_id field.
func ByResponseMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMessageID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, AgentStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
