// Code generated by ent, DO NOT EDIT.

package listenercursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/loomchat/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldContainsFold(FieldID, id))
}

// LastProcessedID applies equality check predicate on the "last_processed_id" field. It's identical to LastProcessedIDEQ.
func LastProcessedID(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLastProcessedID, v))
}

// LeaseOwner applies equality check predicate on the "lease_owner" field. It's identical to LeaseOwnerEQ.
func LeaseOwner(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastProcessedIDEQ applies the EQ predicate on the "last_processed_id" field.
func LastProcessedIDEQ(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLastProcessedID, v))
}

// LastProcessedIDNEQ applies the NEQ predicate on the "last_processed_id" field.
func LastProcessedIDNEQ(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNEQ(FieldLastProcessedID, v))
}

// LastProcessedIDIn applies the In predicate on the "last_processed_id" field.
func LastProcessedIDIn(vs ...int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIn(FieldLastProcessedID, vs...))
}

// LastProcessedIDNotIn applies the NotIn predicate on the "last_processed_id" field.
func LastProcessedIDNotIn(vs ...int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotIn(FieldLastProcessedID, vs...))
}

// LastProcessedIDGT applies the GT predicate on the "last_processed_id" field.
func LastProcessedIDGT(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGT(FieldLastProcessedID, v))
}

// LastProcessedIDGTE applies the GTE predicate on the "last_processed_id" field.
func LastProcessedIDGTE(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGTE(FieldLastProcessedID, v))
}

// LastProcessedIDLT applies the LT predicate on the "last_processed_id" field.
func LastProcessedIDLT(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLT(FieldLastProcessedID, v))
}

// LastProcessedIDLTE applies the LTE predicate on the "last_processed_id" field.
func LastProcessedIDLTE(v int64) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLTE(FieldLastProcessedID, v))
}

// LeaseOwnerEQ applies the EQ predicate on the "lease_owner" field.
func LeaseOwnerEQ(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLeaseOwner, v))
}

// LeaseOwnerNEQ applies the NEQ predicate on the "lease_owner" field.
func LeaseOwnerNEQ(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNEQ(FieldLeaseOwner, v))
}

// LeaseOwnerIn applies the In predicate on the "lease_owner" field.
func LeaseOwnerIn(vs ...string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerNotIn applies the NotIn predicate on the "lease_owner" field.
func LeaseOwnerNotIn(vs ...string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotIn(FieldLeaseOwner, vs...))
}

// LeaseOwnerGT applies the GT predicate on the "lease_owner" field.
func LeaseOwnerGT(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGT(FieldLeaseOwner, v))
}

// LeaseOwnerGTE applies the GTE predicate on the "lease_owner" field.
func LeaseOwnerGTE(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGTE(FieldLeaseOwner, v))
}

// LeaseOwnerLT applies the LT predicate on the "lease_owner" field.
func LeaseOwnerLT(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLT(FieldLeaseOwner, v))
}

// LeaseOwnerLTE applies the LTE predicate on the "lease_owner" field.
func LeaseOwnerLTE(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLTE(FieldLeaseOwner, v))
}

// LeaseOwnerContains applies the Contains predicate on the "lease_owner" field.
func LeaseOwnerContains(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldContains(FieldLeaseOwner, v))
}

// LeaseOwnerHasPrefix applies the HasPrefix predicate on the "lease_owner" field.
func LeaseOwnerHasPrefix(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldHasPrefix(FieldLeaseOwner, v))
}

// LeaseOwnerHasSuffix applies the HasSuffix predicate on the "lease_owner" field.
func LeaseOwnerHasSuffix(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldHasSuffix(FieldLeaseOwner, v))
}

// LeaseOwnerIsNil applies the IsNil predicate on the "lease_owner" field.
func LeaseOwnerIsNil() predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIsNull(FieldLeaseOwner))
}

// LeaseOwnerNotNil applies the NotNil predicate on the "lease_owner" field.
func LeaseOwnerNotNil() predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotNull(FieldLeaseOwner))
}

// LeaseOwnerEqualFold applies the EqualFold predicate on the "lease_owner" field.
func LeaseOwnerEqualFold(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEqualFold(FieldLeaseOwner, v))
}

// LeaseOwnerContainsFold applies the ContainsFold predicate on the "lease_owner" field.
func LeaseOwnerContainsFold(v string) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldContainsFold(FieldLeaseOwner, v))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListenerCursor) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListenerCursor) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListenerCursor) predicate.ListenerCursor {
	return predicate.ListenerCursor(sql.NotPredicates(p))
}
