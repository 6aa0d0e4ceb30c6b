// Code generated by ent, DO NOT EDIT.

package rollingsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/loomchat/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContainsFold(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldStreamID, v))
}

// PersonaID applies equality check predicate on the "persona_id" field. It's identical to PersonaIDEQ.
func PersonaID(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldPersonaID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldSummary, v))
}

// LastSummarizedSequence applies equality check predicate on the "last_summarized_sequence" field. It's identical to LastSummarizedSequenceEQ.
func LastSummarizedSequence(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldLastSummarizedSequence, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContainsFold(FieldStreamID, v))
}

// PersonaIDEQ applies the EQ predicate on the "persona_id" field.
func PersonaIDEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldPersonaID, v))
}

// PersonaIDNEQ applies the NEQ predicate on the "persona_id" field.
func PersonaIDNEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldPersonaID, v))
}

// PersonaIDIn applies the In predicate on the "persona_id" field.
func PersonaIDIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldPersonaID, vs...))
}

// PersonaIDNotIn applies the NotIn predicate on the "persona_id" field.
func PersonaIDNotIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldPersonaID, vs...))
}

// PersonaIDGT applies the GT predicate on the "persona_id" field.
func PersonaIDGT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldPersonaID, v))
}

// PersonaIDGTE applies the GTE predicate on the "persona_id" field.
func PersonaIDGTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldPersonaID, v))
}

// PersonaIDLT applies the LT predicate on the "persona_id" field.
func PersonaIDLT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldPersonaID, v))
}

// PersonaIDLTE applies the LTE predicate on the "persona_id" field.
func PersonaIDLTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldPersonaID, v))
}

// PersonaIDContains applies the Contains predicate on the "persona_id" field.
func PersonaIDContains(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContains(FieldPersonaID, v))
}

// PersonaIDHasPrefix applies the HasPrefix predicate on the "persona_id" field.
func PersonaIDHasPrefix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasPrefix(FieldPersonaID, v))
}

// PersonaIDHasSuffix applies the HasSuffix predicate on the "persona_id" field.
func PersonaIDHasSuffix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasSuffix(FieldPersonaID, v))
}

// PersonaIDEqualFold applies the EqualFold predicate on the "persona_id" field.
func PersonaIDEqualFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEqualFold(FieldPersonaID, v))
}

// PersonaIDContainsFold applies the ContainsFold predicate on the "persona_id" field.
func PersonaIDContainsFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContainsFold(FieldPersonaID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldContainsFold(FieldSummary, v))
}

// LastSummarizedSequenceEQ applies the EQ predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceEQ(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldLastSummarizedSequence, v))
}

// LastSummarizedSequenceNEQ applies the NEQ predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceNEQ(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldLastSummarizedSequence, v))
}

// LastSummarizedSequenceIn applies the In predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceIn(vs ...int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldLastSummarizedSequence, vs...))
}

// LastSummarizedSequenceNotIn applies the NotIn predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceNotIn(vs ...int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldLastSummarizedSequence, vs...))
}

// LastSummarizedSequenceGT applies the GT predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceGT(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldLastSummarizedSequence, v))
}

// LastSummarizedSequenceGTE applies the GTE predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceGTE(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldLastSummarizedSequence, v))
}

// LastSummarizedSequenceLT applies the LT predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceLT(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldLastSummarizedSequence, v))
}

// LastSummarizedSequenceLTE applies the LTE predicate on the "last_summarized_sequence" field.
func LastSummarizedSequenceLTE(v int64) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldLastSummarizedSequence, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RollingSummary {
	return predicate.RollingSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RollingSummary) predicate.RollingSummary {
	return predicate.RollingSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RollingSummary) predicate.RollingSummary {
	return predicate.RollingSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RollingSummary) predicate.RollingSummary {
	return predicate.RollingSummary(sql.NotPredicates(p))
}
