// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomchat/companion/ent/listenercursor"
	"github.com/loomchat/companion/ent/predicate"
)

// ListenerCursorUpdate is the builder for updating ListenerCursor entities.
type ListenerCursorUpdate struct {
	config
	hooks    []Hook
	mutation *ListenerCursorMutation
}

// Where appends a list predicates to the ListenerCursorUpdate builder.
func (_u *ListenerCursorUpdate) Where(ps ...predicate.ListenerCursor) *ListenerCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_u *ListenerCursorUpdate) SetLastProcessedID(v int64) *ListenerCursorUpdate {
	_u.mutation.ResetLastProcessedID()
	_u.mutation.SetLastProcessedID(v)
	return _u
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_u *ListenerCursorUpdate) SetNillableLastProcessedID(v *int64) *ListenerCursorUpdate {
	if v != nil {
		_u.SetLastProcessedID(*v)
	}
	return _u
}

// AddLastProcessedID adds value to the "last_processed_id" field.
func (_u *ListenerCursorUpdate) AddLastProcessedID(v int64) *ListenerCursorUpdate {
	_u.mutation.AddLastProcessedID(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ListenerCursorUpdate) SetLeaseOwner(v string) *ListenerCursorUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ListenerCursorUpdate) SetNillableLeaseOwner(v *string) *ListenerCursorUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ListenerCursorUpdate) ClearLeaseOwner() *ListenerCursorUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ListenerCursorUpdate) SetLeaseExpiresAt(v time.Time) *ListenerCursorUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ListenerCursorUpdate) SetNillableLeaseExpiresAt(v *time.Time) *ListenerCursorUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ListenerCursorUpdate) ClearLeaseExpiresAt() *ListenerCursorUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListenerCursorUpdate) SetUpdatedAt(v time.Time) *ListenerCursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ListenerCursorMutation object of the builder.
func (_u *ListenerCursorUpdate) Mutation() *ListenerCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListenerCursorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListenerCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListenerCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListenerCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListenerCursorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listenercursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ListenerCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(listenercursor.Table, listenercursor.Columns, sqlgraph.NewFieldSpec(listenercursor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastProcessedID(); ok {
		_spec.SetField(listenercursor.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedID(); ok {
		_spec.AddField(listenercursor.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(listenercursor.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(listenercursor.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(listenercursor.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(listenercursor.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listenercursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listenercursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListenerCursorUpdateOne is the builder for updating a single ListenerCursor entity.
type ListenerCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListenerCursorMutation
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_u *ListenerCursorUpdateOne) SetLastProcessedID(v int64) *ListenerCursorUpdateOne {
	_u.mutation.ResetLastProcessedID()
	_u.mutation.SetLastProcessedID(v)
	return _u
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_u *ListenerCursorUpdateOne) SetNillableLastProcessedID(v *int64) *ListenerCursorUpdateOne {
	if v != nil {
		_u.SetLastProcessedID(*v)
	}
	return _u
}

// AddLastProcessedID adds value to the "last_processed_id" field.
func (_u *ListenerCursorUpdateOne) AddLastProcessedID(v int64) *ListenerCursorUpdateOne {
	_u.mutation.AddLastProcessedID(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ListenerCursorUpdateOne) SetLeaseOwner(v string) *ListenerCursorUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ListenerCursorUpdateOne) SetNillableLeaseOwner(v *string) *ListenerCursorUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ListenerCursorUpdateOne) ClearLeaseOwner() *ListenerCursorUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ListenerCursorUpdateOne) SetLeaseExpiresAt(v time.Time) *ListenerCursorUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ListenerCursorUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *ListenerCursorUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ListenerCursorUpdateOne) ClearLeaseExpiresAt() *ListenerCursorUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListenerCursorUpdateOne) SetUpdatedAt(v time.Time) *ListenerCursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ListenerCursorMutation object of the builder.
func (_u *ListenerCursorUpdateOne) Mutation() *ListenerCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ListenerCursorUpdate builder.
func (_u *ListenerCursorUpdateOne) Where(ps ...predicate.ListenerCursor) *ListenerCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListenerCursorUpdateOne) Select(field string, fields ...string) *ListenerCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListenerCursor entity.
func (_u *ListenerCursorUpdateOne) Save(ctx context.Context) (*ListenerCursor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListenerCursorUpdateOne) SaveX(ctx context.Context) *ListenerCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListenerCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListenerCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListenerCursorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listenercursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ListenerCursorUpdateOne) sqlSave(ctx context.Context) (_node *ListenerCursor, err error) {
	_spec := sqlgraph.NewUpdateSpec(listenercursor.Table, listenercursor.Columns, sqlgraph.NewFieldSpec(listenercursor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListenerCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listenercursor.FieldID)
		for _, f := range fields {
			if !listenercursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listenercursor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastProcessedID(); ok {
		_spec.SetField(listenercursor.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedID(); ok {
		_spec.AddField(listenercursor.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(listenercursor.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(listenercursor.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(listenercursor.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(listenercursor.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listenercursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ListenerCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listenercursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
