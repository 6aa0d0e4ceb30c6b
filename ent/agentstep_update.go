// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loomchat/companion/ent/agentstep"
	"github.com/loomchat/companion/ent/predicate"
)

// AgentStepUpdate is the builder for updating AgentStep entities.
type AgentStepUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStepMutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdate) Where(ps ...predicate.AgentStep) *AgentStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *AgentStepUpdate) SetStepNumber(v int) *AgentStepUpdate {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStepNumber(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *AgentStepUpdate) AddStepNumber(v int) *AgentStepUpdate {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *AgentStepUpdate) SetStepType(v string) *AgentStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStepType(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentStepUpdate) SetContent(v string) *AgentStepUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableContent(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AgentStepUpdate) ClearContent() *AgentStepUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetSources sets the "sources" field.
func (_u *AgentStepUpdate) SetSources(v []map[string]string) *AgentStepUpdate {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *AgentStepUpdate) AppendSources(v []map[string]string) *AgentStepUpdate {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *AgentStepUpdate) ClearSources() *AgentStepUpdate {
	_u.mutation.ClearSources()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *AgentStepUpdate) SetMessageID(v string) *AgentStepUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableMessageID(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *AgentStepUpdate) ClearMessageID() *AgentStepUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentStepUpdate) SetMetadata(v map[string]interface{}) *AgentStepUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentStepUpdate) ClearMetadata() *AgentStepUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentStepUpdate) SetCompletedAt(v time.Time) *AgentStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableCompletedAt(v *time.Time) *AgentStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentStepUpdate) ClearCompletedAt() *AgentStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdate) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.session"`)
	}
	return nil
}

func (_u *AgentStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(agentstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(agentstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(agentstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentstep.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(agentstep.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(agentstep.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstep.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(agentstep.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(agentstep.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(agentstep.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentstep.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentstep.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentstep.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStepUpdateOne is the builder for updating a single AgentStep entity.
type AgentStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStepMutation
}

// SetStepNumber sets the "step_number" field.
func (_u *AgentStepUpdateOne) SetStepNumber(v int) *AgentStepUpdateOne {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStepNumber(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *AgentStepUpdateOne) AddStepNumber(v int) *AgentStepUpdateOne {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *AgentStepUpdateOne) SetStepType(v string) *AgentStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStepType(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentStepUpdateOne) SetContent(v string) *AgentStepUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableContent(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AgentStepUpdateOne) ClearContent() *AgentStepUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetSources sets the "sources" field.
func (_u *AgentStepUpdateOne) SetSources(v []map[string]string) *AgentStepUpdateOne {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *AgentStepUpdateOne) AppendSources(v []map[string]string) *AgentStepUpdateOne {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *AgentStepUpdateOne) ClearSources() *AgentStepUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *AgentStepUpdateOne) SetMessageID(v string) *AgentStepUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableMessageID(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *AgentStepUpdateOne) ClearMessageID() *AgentStepUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentStepUpdateOne) SetMetadata(v map[string]interface{}) *AgentStepUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentStepUpdateOne) ClearMetadata() *AgentStepUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentStepUpdateOne) SetCompletedAt(v time.Time) *AgentStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentStepUpdateOne) ClearCompletedAt() *AgentStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdateOne) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdateOne) Where(ps ...predicate.AgentStep) *AgentStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStepUpdateOne) Select(field string, fields ...string) *AgentStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentStep entity.
func (_u *AgentStepUpdateOne) Save(ctx context.Context) (*AgentStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdateOne) SaveX(ctx context.Context) *AgentStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.session"`)
	}
	return nil
}

func (_u *AgentStepUpdateOne) sqlSave(ctx context.Context) (_node *AgentStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstep.FieldID)
		for _, f := range fields {
			if !agentstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstep.FieldID {
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
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(agentstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(agentstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(agentstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentstep.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(agentstep.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(agentstep.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstep.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(agentstep.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(agentstep.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(agentstep.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentstep.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentstep.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentstep.FieldCompletedAt, field.TypeTime)
	}
	_node = &AgentStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
