// Code generated by ent, DO NOT EDIT.

package agentstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loomchat/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldSessionID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStepNumber, v))
}

// StepType applies equality check predicate on the "step_type" field. It's identical to StepTypeEQ.
func StepType(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStepType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldContent, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldMessageID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContainsFold(FieldSessionID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldStepNumber, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldStepType, vs...))
}

// StepTypeGT applies the GT predicate on the "step_type" field.
func StepTypeGT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldStepType, v))
}

// StepTypeGTE applies the GTE predicate on the "step_type" field.
func StepTypeGTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldStepType, v))
}

// StepTypeLT applies the LT predicate on the "step_type" field.
func StepTypeLT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldStepType, v))
}

// StepTypeLTE applies the LTE predicate on the "step_type" field.
func StepTypeLTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldStepType, v))
}

// StepTypeContains applies the Contains predicate on the "step_type" field.
func StepTypeContains(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContains(FieldStepType, v))
}

// StepTypeHasPrefix applies the HasPrefix predicate on the "step_type" field.
func StepTypeHasPrefix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasPrefix(FieldStepType, v))
}

// StepTypeHasSuffix applies the HasSuffix predicate on the "step_type" field.
func StepTypeHasSuffix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasSuffix(FieldStepType, v))
}

// StepTypeEqualFold applies the EqualFold predicate on the "step_type" field.
func StepTypeEqualFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEqualFold(FieldStepType, v))
}

// StepTypeContainsFold applies the ContainsFold predicate on the "step_type" field.
func StepTypeContainsFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContainsFold(FieldStepType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContainsFold(FieldContent, v))
}

// SourcesIsNil applies the IsNil predicate on the "sources" field.
func SourcesIsNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIsNull(FieldSources))
}

// SourcesNotNil applies the NotNil predicate on the "sources" field.
func SourcesNotNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotNull(FieldSources))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldContainsFold(FieldMessageID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotNull(FieldMetadata))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentStep {
	return predicate.AgentStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentStep {
	return predicate.AgentStep(sql.FieldNotNull(FieldCompletedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentStep {
	return predicate.AgentStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AgentSession) predicate.AgentStep {
	return predicate.AgentStep(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentStep) predicate.AgentStep {
	return predicate.AgentStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentStep) predicate.AgentStep {
	return predicate.AgentStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentStep) predicate.AgentStep {
	return predicate.AgentStep(sql.NotPredicates(p))
}
