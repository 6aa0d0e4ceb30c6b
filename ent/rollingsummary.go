// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loomchat/companion/ent/rollingsummary"
)

// RollingSummary is the model entity for the RollingSummary schema.
type RollingSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID string `json:"persona_id,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Coverage high-water mark; never regresses
	LastSummarizedSequence int64 `json:"last_summarized_sequence,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RollingSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rollingsummary.FieldLastSummarizedSequence:
			values[i] = new(sql.NullInt64)
		case rollingsummary.FieldID, rollingsummary.FieldStreamID, rollingsummary.FieldPersonaID, rollingsummary.FieldSummary:
			values[i] = new(sql.NullString)
		case rollingsummary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RollingSummary fields.
func (_m *RollingSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rollingsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rollingsummary.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case rollingsummary.FieldPersonaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = value.String
			}
		case rollingsummary.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case rollingsummary.FieldLastSummarizedSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_summarized_sequence", values[i])
			} else if value.Valid {
				_m.LastSummarizedSequence = value.Int64
			}
		case rollingsummary.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RollingSummary.
// This includes values selected through modifiers, order, etc.
func (_m *RollingSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RollingSummary.
// Note that you need to call RollingSummary.Unwrap() before calling this method if this RollingSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RollingSummary) Update() *RollingSummaryUpdateOne {
	return NewRollingSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RollingSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RollingSummary) Unwrap() *RollingSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RollingSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RollingSummary) String() string {
	var builder strings.Builder
	builder.WriteString("RollingSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("persona_id=")
	builder.WriteString(_m.PersonaID)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("last_summarized_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSummarizedSequence))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RollingSummaries is a parsable slice of RollingSummary.
type RollingSummaries []*RollingSummary
