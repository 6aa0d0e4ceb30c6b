// Code generated by ent, DO NOT EDIT.

package rollingsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rollingsummary type in the database.
	Label = "rolling_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
	// FieldPersonaID holds the string denoting the persona_id field in the database.
	FieldPersonaID = "persona_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldLastSummarizedSequence holds the string denoting the last_summarized_sequence field in the database.
	FieldLastSummarizedSequence = "last_summarized_sequence"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the rollingsummary in the database.
	Table = "rolling_summaries"
)

// Columns holds all SQL columns for rollingsummary fields.
var Columns = []string{
	FieldID,
	FieldStreamID,
	FieldPersonaID,
	FieldSummary,
	FieldLastSummarizedSequence,
	FieldUpdatedAt,
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
	// DefaultLastSummarizedSequence holds the default value on creation for the "last_summarized_sequence" field.
	DefaultLastSummarizedSequence int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the RollingSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
}

// ByPersonaID orders the results by the persona_id field.
func ByPersonaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByLastSummarizedSequence orders the results by the last_summarized_sequence field.
func ByLastSummarizedSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSummarizedSequence, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
