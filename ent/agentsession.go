// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomchat/companion/ent/agentsession"
)

// AgentSession is the model entity for the AgentSession schema.
type AgentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID string `json:"persona_id,omitempty"`
	// Retry idempotence — one session per trigger message
	TriggerMessageID string `json:"trigger_message_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agentsession.Status `json:"status,omitempty"`
	// For multi-replica coordination
	ServerID *string `json:"server_id,omitempty"`
	// For orphan detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// Highest stream sequence absorbed by this session; never regresses
	LastSeenSequence int64 `json:"last_seen_sequence,omitempty"`
	// SentMessageIds holds the value of the "sent_message_ids" field.
	SentMessageIds []string `json:"sent_message_ids,omitempty"`
	// ResponseMessageID holds the value of the "response_message_id" field.
	ResponseMessageID *string `json:"response_message_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSessionQuery when eager-loading is set.
	Edges        AgentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSessionEdges holds the relations/edges for other nodes in the graph.
type AgentSessionEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*AgentStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) StepsOrErr() ([]*AgentStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldSentMessageIds:
			values[i] = new([]byte)
		case agentsession.FieldLastSeenSequence:
			values[i] = new(sql.NullInt64)
		case agentsession.FieldID, agentsession.FieldWorkspaceID, agentsession.FieldStreamID, agentsession.FieldPersonaID, agentsession.FieldTriggerMessageID, agentsession.FieldStatus, agentsession.FieldServerID, agentsession.FieldResponseMessageID, agentsession.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agentsession.FieldHeartbeatAt, agentsession.FieldCreatedAt, agentsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSession fields.
func (_m *AgentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsession.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case agentsession.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case agentsession.FieldPersonaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = value.String
			}
		case agentsession.FieldTriggerMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_message_id", values[i])
			} else if value.Valid {
				_m.TriggerMessageID = value.String
			}
		case agentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentsession.Status(value.String)
			}
		case agentsession.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = new(string)
				*_m.ServerID = value.String
			}
		case agentsession.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case agentsession.FieldLastSeenSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_sequence", values[i])
			} else if value.Valid {
				_m.LastSeenSequence = value.Int64
			}
		case agentsession.FieldSentMessageIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sent_message_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SentMessageIds); err != nil {
					return fmt.Errorf("unmarshal field sent_message_ids: %w", err)
				}
			}
		case agentsession.FieldResponseMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_message_id", values[i])
			} else if value.Valid {
				_m.ResponseMessageID = new(string)
				*_m.ResponseMessageID = value.String
			}
		case agentsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the AgentSession entity.
func (_m *AgentSession) QuerySteps() *AgentStepQuery {
	return NewAgentSessionClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this AgentSession.
// Note that you need to call AgentSession.Unwrap() before calling this method if this AgentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSession) Update() *AgentSessionUpdateOne {
	return NewAgentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSession) Unwrap() *AgentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("persona_id=")
	builder.WriteString(_m.PersonaID)
	builder.WriteString(", ")
	builder.WriteString("trigger_message_id=")
	builder.WriteString(_m.TriggerMessageID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ServerID; v != nil {
		builder.WriteString("server_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seen_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeenSequence))
	builder.WriteString(", ")
	builder.WriteString("sent_message_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentMessageIds))
	builder.WriteString(", ")
	if v := _m.ResponseMessageID; v != nil {
		builder.WriteString("response_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentSessions is a parsable slice of AgentSession.
type AgentSessions []*AgentSession
