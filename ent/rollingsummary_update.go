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
	"github.com/loomchat/companion/ent/predicate"
	"github.com/loomchat/companion/ent/rollingsummary"
)

// RollingSummaryUpdate is the builder for updating RollingSummary entities.
type RollingSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *RollingSummaryMutation
}

// Where appends a list predicates to the RollingSummaryUpdate builder.
func (_u *RollingSummaryUpdate) Where(ps ...predicate.RollingSummary) *RollingSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RollingSummaryUpdate) SetSummary(v string) *RollingSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RollingSummaryUpdate) SetNillableSummary(v *string) *RollingSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (_u *RollingSummaryUpdate) SetLastSummarizedSequence(v int64) *RollingSummaryUpdate {
	_u.mutation.ResetLastSummarizedSequence()
	_u.mutation.SetLastSummarizedSequence(v)
	return _u
}

// SetNillableLastSummarizedSequence sets the "last_summarized_sequence" field if the given value is not nil.
func (_u *RollingSummaryUpdate) SetNillableLastSummarizedSequence(v *int64) *RollingSummaryUpdate {
	if v != nil {
		_u.SetLastSummarizedSequence(*v)
	}
	return _u
}

// AddLastSummarizedSequence adds value to the "last_summarized_sequence" field.
func (_u *RollingSummaryUpdate) AddLastSummarizedSequence(v int64) *RollingSummaryUpdate {
	_u.mutation.AddLastSummarizedSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RollingSummaryUpdate) SetUpdatedAt(v time.Time) *RollingSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RollingSummaryMutation object of the builder.
func (_u *RollingSummaryUpdate) Mutation() *RollingSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RollingSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RollingSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RollingSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RollingSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RollingSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rollingsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RollingSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rollingsummary.Table, rollingsummary.Columns, sqlgraph.NewFieldSpec(rollingsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rollingsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSummarizedSequence(); ok {
		_spec.SetField(rollingsummary.FieldLastSummarizedSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSummarizedSequence(); ok {
		_spec.AddField(rollingsummary.FieldLastSummarizedSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rollingsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rollingsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RollingSummaryUpdateOne is the builder for updating a single RollingSummary entity.
type RollingSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RollingSummaryMutation
}

// SetSummary sets the "summary" field.
func (_u *RollingSummaryUpdateOne) SetSummary(v string) *RollingSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RollingSummaryUpdateOne) SetNillableSummary(v *string) *RollingSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (_u *RollingSummaryUpdateOne) SetLastSummarizedSequence(v int64) *RollingSummaryUpdateOne {
	_u.mutation.ResetLastSummarizedSequence()
	_u.mutation.SetLastSummarizedSequence(v)
	return _u
}

// SetNillableLastSummarizedSequence sets the "last_summarized_sequence" field if the given value is not nil.
func (_u *RollingSummaryUpdateOne) SetNillableLastSummarizedSequence(v *int64) *RollingSummaryUpdateOne {
	if v != nil {
		_u.SetLastSummarizedSequence(*v)
	}
	return _u
}

// AddLastSummarizedSequence adds value to the "last_summarized_sequence" field.
func (_u *RollingSummaryUpdateOne) AddLastSummarizedSequence(v int64) *RollingSummaryUpdateOne {
	_u.mutation.AddLastSummarizedSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RollingSummaryUpdateOne) SetUpdatedAt(v time.Time) *RollingSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RollingSummaryMutation object of the builder.
func (_u *RollingSummaryUpdateOne) Mutation() *RollingSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RollingSummaryUpdate builder.
func (_u *RollingSummaryUpdateOne) Where(ps ...predicate.RollingSummary) *RollingSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RollingSummaryUpdateOne) Select(field string, fields ...string) *RollingSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RollingSummary entity.
func (_u *RollingSummaryUpdateOne) Save(ctx context.Context) (*RollingSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RollingSummaryUpdateOne) SaveX(ctx context.Context) *RollingSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RollingSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RollingSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RollingSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rollingsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RollingSummaryUpdateOne) sqlSave(ctx context.Context) (_node *RollingSummary, err error) {
	_spec := sqlgraph.NewUpdateSpec(rollingsummary.Table, rollingsummary.Columns, sqlgraph.NewFieldSpec(rollingsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RollingSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rollingsummary.FieldID)
		for _, f := range fields {
			if !rollingsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rollingsummary.FieldID {
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
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(rollingsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSummarizedSequence(); ok {
		_spec.SetField(rollingsummary.FieldLastSummarizedSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSummarizedSequence(); ok {
		_spec.AddField(rollingsummary.FieldLastSummarizedSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rollingsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RollingSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rollingsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
