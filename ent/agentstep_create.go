// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loomchat/companion/ent/agentsession"
	"github.com/loomchat/companion/ent/agentstep"
)

// AgentStepCreate is the builder for creating a AgentStep entity.
type AgentStepCreate struct {
	config
	mutation *AgentStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AgentStepCreate) SetSessionID(v string) *AgentStepCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *AgentStepCreate) SetStepNumber(v int) *AgentStepCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *AgentStepCreate) SetStepType(v string) *AgentStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentStepCreate) SetContent(v string) *AgentStepCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableContent(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetSources sets the "sources" field.
func (_c *AgentStepCreate) SetSources(v []map[string]string) *AgentStepCreate {
	_c.mutation.SetSources(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *AgentStepCreate) SetMessageID(v string) *AgentStepCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableMessageID(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentStepCreate) SetMetadata(v map[string]interface{}) *AgentStepCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentStepCreate) SetStartedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableStartedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentStepCreate) SetCompletedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableCompletedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStepCreate) SetID(v string) *AgentStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *AgentStepCreate) SetSession(v *AgentSession) *AgentStepCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_c *AgentStepCreate) Mutation() *AgentStepMutation {
	return _c.mutation
}

// Save creates the AgentStep in the database.
func (_c *AgentStepCreate) Save(ctx context.Context) (*AgentStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStepCreate) SaveX(ctx context.Context) *AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStepCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agentstep.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStepCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentStep.session_id"`)}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "AgentStep.step_number"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "AgentStep.step_type"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentStep.started_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentStep.session"`)}
	}
	return nil
}

func (_c *AgentStepCreate) sqlSave(ctx context.Context) (*AgentStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStepCreate) createSpec() (*AgentStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstep.Table, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(agentstep.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(agentstep.FieldStepType, field.TypeString, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentstep.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sources(); ok {
		_spec.SetField(agentstep.FieldSources, field.TypeJSON, value)
		_node.Sources = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(agentstep.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentstep.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstep.SessionTable,
			Columns: []string{agentstep.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentStep.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStepUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStepCreate) OnConflict(opts ...sql.ConflictOption) *AgentStepUpsertOne {
	_c.conflict = opts
	return &AgentStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStepCreate) OnConflictColumns(columns ...string) *AgentStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStepUpsertOne{
		create: _c,
	}
}

type (
	// AgentStepUpsertOne is the builder for "upsert"-ing
	//  one AgentStep node.
	AgentStepUpsertOne struct {
		create *AgentStepCreate
	}

	// AgentStepUpsert is the "OnConflict" setter.
	AgentStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepNumber sets the "step_number" field.
func (u *AgentStepUpsert) SetStepNumber(v int) *AgentStepUpsert {
	u.Set(agentstep.FieldStepNumber, v)
	return u
}

// UpdateStepNumber sets the "step_number" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateStepNumber() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldStepNumber)
	return u
}

// AddStepNumber adds v to the "step_number" field.
func (u *AgentStepUpsert) AddStepNumber(v int) *AgentStepUpsert {
	u.Add(agentstep.FieldStepNumber, v)
	return u
}

// SetStepType sets the "step_type" field.
func (u *AgentStepUpsert) SetStepType(v string) *AgentStepUpsert {
	u.Set(agentstep.FieldStepType, v)
	return u
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateStepType() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldStepType)
	return u
}

// SetContent sets the "content" field.
func (u *AgentStepUpsert) SetContent(v string) *AgentStepUpsert {
	u.Set(agentstep.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateContent() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *AgentStepUpsert) ClearContent() *AgentStepUpsert {
	u.SetNull(agentstep.FieldContent)
	return u
}

// SetSources sets the "sources" field.
func (u *AgentStepUpsert) SetSources(v []map[string]string) *AgentStepUpsert {
	u.Set(agentstep.FieldSources, v)
	return u
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateSources() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldSources)
	return u
}

// ClearSources clears the value of the "sources" field.
func (u *AgentStepUpsert) ClearSources() *AgentStepUpsert {
	u.SetNull(agentstep.FieldSources)
	return u
}

// SetMessageID sets the "message_id" field.
func (u *AgentStepUpsert) SetMessageID(v string) *AgentStepUpsert {
	u.Set(agentstep.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateMessageID() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldMessageID)
	return u
}

// ClearMessageID clears the value of the "message_id" field.
func (u *AgentStepUpsert) ClearMessageID() *AgentStepUpsert {
	u.SetNull(agentstep.FieldMessageID)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AgentStepUpsert) SetMetadata(v map[string]interface{}) *AgentStepUpsert {
	u.Set(agentstep.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateMetadata() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentStepUpsert) ClearMetadata() *AgentStepUpsert {
	u.SetNull(agentstep.FieldMetadata)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentStepUpsert) SetCompletedAt(v time.Time) *AgentStepUpsert {
	u.Set(agentstep.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentStepUpsert) UpdateCompletedAt() *AgentStepUpsert {
	u.SetExcluded(agentstep.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentStepUpsert) ClearCompletedAt() *AgentStepUpsert {
	u.SetNull(agentstep.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStepUpsertOne) UpdateNewValues() *AgentStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentstep.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(agentstep.FieldSessionID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(agentstep.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentStepUpsertOne) Ignore() *AgentStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStepUpsertOne) DoNothing() *AgentStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStepCreate.OnConflict
// documentation for more info.
func (u *AgentStepUpsertOne) Update(set func(*AgentStepUpsert)) *AgentStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepNumber sets the "step_number" field.
func (u *AgentStepUpsertOne) SetStepNumber(v int) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetStepNumber(v)
	})
}

// AddStepNumber adds v to the "step_number" field.
func (u *AgentStepUpsertOne) AddStepNumber(v int) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.AddStepNumber(v)
	})
}

// UpdateStepNumber sets the "step_number" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateStepNumber() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateStepNumber()
	})
}

// SetStepType sets the "step_type" field.
func (u *AgentStepUpsertOne) SetStepType(v string) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateStepType() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateStepType()
	})
}

// SetContent sets the "content" field.
func (u *AgentStepUpsertOne) SetContent(v string) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateContent() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *AgentStepUpsertOne) ClearContent() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearContent()
	})
}

// SetSources sets the "sources" field.
func (u *AgentStepUpsertOne) SetSources(v []map[string]string) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetSources(v)
	})
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateSources() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateSources()
	})
}

// ClearSources clears the value of the "sources" field.
func (u *AgentStepUpsertOne) ClearSources() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearSources()
	})
}

// SetMessageID sets the "message_id" field.
func (u *AgentStepUpsertOne) SetMessageID(v string) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateMessageID() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *AgentStepUpsertOne) ClearMessageID() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearMessageID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentStepUpsertOne) SetMetadata(v map[string]interface{}) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateMetadata() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentStepUpsertOne) ClearMetadata() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearMetadata()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentStepUpsertOne) SetCompletedAt(v time.Time) *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentStepUpsertOne) UpdateCompletedAt() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentStepUpsertOne) ClearCompletedAt() *AgentStepUpsertOne {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AgentStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentStepUpsertOne.ID is not supported by MySQL driver. Use AgentStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentStepCreateBulk is the builder for creating many AgentStep entities in bulk.
type AgentStepCreateBulk struct {
	config
	err      error
	builders []*AgentStepCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentStep entities in the database.
func (_c *AgentStepCreateBulk) Save(ctx context.Context) ([]*AgentStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStepCreateBulk) SaveX(ctx context.Context) []*AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStepUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentStepUpsertBulk {
	_c.conflict = opts
	return &AgentStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStepCreateBulk) OnConflictColumns(columns ...string) *AgentStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStepUpsertBulk{
		create: _c,
	}
}

// AgentStepUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentStep nodes.
type AgentStepUpsertBulk struct {
	create *AgentStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStepUpsertBulk) UpdateNewValues() *AgentStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentstep.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(agentstep.FieldSessionID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(agentstep.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentStepUpsertBulk) Ignore() *AgentStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStepUpsertBulk) DoNothing() *AgentStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStepCreateBulk.OnConflict
// documentation for more info.
func (u *AgentStepUpsertBulk) Update(set func(*AgentStepUpsert)) *AgentStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepNumber sets the "step_number" field.
func (u *AgentStepUpsertBulk) SetStepNumber(v int) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetStepNumber(v)
	})
}

// AddStepNumber adds v to the "step_number" field.
func (u *AgentStepUpsertBulk) AddStepNumber(v int) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.AddStepNumber(v)
	})
}

// UpdateStepNumber sets the "step_number" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateStepNumber() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateStepNumber()
	})
}

// SetStepType sets the "step_type" field.
func (u *AgentStepUpsertBulk) SetStepType(v string) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateStepType() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateStepType()
	})
}

// SetContent sets the "content" field.
func (u *AgentStepUpsertBulk) SetContent(v string) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateContent() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *AgentStepUpsertBulk) ClearContent() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearContent()
	})
}

// SetSources sets the "sources" field.
func (u *AgentStepUpsertBulk) SetSources(v []map[string]string) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetSources(v)
	})
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateSources() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateSources()
	})
}

// ClearSources clears the value of the "sources" field.
func (u *AgentStepUpsertBulk) ClearSources() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearSources()
	})
}

// SetMessageID sets the "message_id" field.
func (u *AgentStepUpsertBulk) SetMessageID(v string) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateMessageID() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *AgentStepUpsertBulk) ClearMessageID() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearMessageID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentStepUpsertBulk) SetMetadata(v map[string]interface{}) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateMetadata() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentStepUpsertBulk) ClearMetadata() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearMetadata()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentStepUpsertBulk) SetCompletedAt(v time.Time) *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentStepUpsertBulk) UpdateCompletedAt() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentStepUpsertBulk) ClearCompletedAt() *AgentStepUpsertBulk {
	return u.Update(func(s *AgentStepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AgentStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
