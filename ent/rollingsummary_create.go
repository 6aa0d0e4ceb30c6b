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
	"github.com/loomchat/companion/ent/rollingsummary"
)

// RollingSummaryCreate is the builder for creating a RollingSummary entity.
type RollingSummaryCreate struct {
	config
	mutation *RollingSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStreamID sets the "stream_id" field.
func (_c *RollingSummaryCreate) SetStreamID(v string) *RollingSummaryCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *RollingSummaryCreate) SetPersonaID(v string) *RollingSummaryCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RollingSummaryCreate) SetSummary(v string) *RollingSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (_c *RollingSummaryCreate) SetLastSummarizedSequence(v int64) *RollingSummaryCreate {
	_c.mutation.SetLastSummarizedSequence(v)
	return _c
}

// SetNillableLastSummarizedSequence sets the "last_summarized_sequence" field if the given value is not nil.
func (_c *RollingSummaryCreate) SetNillableLastSummarizedSequence(v *int64) *RollingSummaryCreate {
	if v != nil {
		_c.SetLastSummarizedSequence(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RollingSummaryCreate) SetUpdatedAt(v time.Time) *RollingSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RollingSummaryCreate) SetNillableUpdatedAt(v *time.Time) *RollingSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RollingSummaryCreate) SetID(v string) *RollingSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RollingSummaryMutation object of the builder.
func (_c *RollingSummaryCreate) Mutation() *RollingSummaryMutation {
	return _c.mutation
}

// Save creates the RollingSummary in the database.
func (_c *RollingSummaryCreate) Save(ctx context.Context) (*RollingSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RollingSummaryCreate) SaveX(ctx context.Context) *RollingSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RollingSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RollingSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RollingSummaryCreate) defaults() {
	if _, ok := _c.mutation.LastSummarizedSequence(); !ok {
		v := rollingsummary.DefaultLastSummarizedSequence
		_c.mutation.SetLastSummarizedSequence(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rollingsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RollingSummaryCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "RollingSummary.stream_id"`)}
	}
	if _, ok := _c.mutation.PersonaID(); !ok {
		return &ValidationError{Name: "persona_id", err: errors.New(`ent: missing required field "RollingSummary.persona_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "RollingSummary.summary"`)}
	}
	if _, ok := _c.mutation.LastSummarizedSequence(); !ok {
		return &ValidationError{Name: "last_summarized_sequence", err: errors.New(`ent: missing required field "RollingSummary.last_summarized_sequence"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RollingSummary.updated_at"`)}
	}
	return nil
}

func (_c *RollingSummaryCreate) sqlSave(ctx context.Context) (*RollingSummary, error) {
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
			return nil, fmt.Errorf("unexpected RollingSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RollingSummaryCreate) createSpec() (*RollingSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &RollingSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rollingsummary.Table, sqlgraph.NewFieldSpec(rollingsummary.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(rollingsummary.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.PersonaID(); ok {
		_spec.SetField(rollingsummary.FieldPersonaID, field.TypeString, value)
		_node.PersonaID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(rollingsummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.LastSummarizedSequence(); ok {
		_spec.SetField(rollingsummary.FieldLastSummarizedSequence, field.TypeInt64, value)
		_node.LastSummarizedSequence = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rollingsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RollingSummary.Create().
//		SetStreamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RollingSummaryUpsert) {
//			SetStreamID(v+v).
//		}).
//		Exec(ctx)
func (_c *RollingSummaryCreate) OnConflict(opts ...sql.ConflictOption) *RollingSummaryUpsertOne {
	_c.conflict = opts
	return &RollingSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RollingSummaryCreate) OnConflictColumns(columns ...string) *RollingSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RollingSummaryUpsertOne{
		create: _c,
	}
}

type (
	// RollingSummaryUpsertOne is the builder for "upsert"-ing
	//  one RollingSummary node.
	RollingSummaryUpsertOne struct {
		create *RollingSummaryCreate
	}

	// RollingSummaryUpsert is the "OnConflict" setter.
	RollingSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetSummary sets the "summary" field.
func (u *RollingSummaryUpsert) SetSummary(v string) *RollingSummaryUpsert {
	u.Set(rollingsummary.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RollingSummaryUpsert) UpdateSummary() *RollingSummaryUpsert {
	u.SetExcluded(rollingsummary.FieldSummary)
	return u
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (u *RollingSummaryUpsert) SetLastSummarizedSequence(v int64) *RollingSummaryUpsert {
	u.Set(rollingsummary.FieldLastSummarizedSequence, v)
	return u
}

// UpdateLastSummarizedSequence sets the "last_summarized_sequence" field to the value that was provided on create.
func (u *RollingSummaryUpsert) UpdateLastSummarizedSequence() *RollingSummaryUpsert {
	u.SetExcluded(rollingsummary.FieldLastSummarizedSequence)
	return u
}

// AddLastSummarizedSequence adds v to the "last_summarized_sequence" field.
func (u *RollingSummaryUpsert) AddLastSummarizedSequence(v int64) *RollingSummaryUpsert {
	u.Add(rollingsummary.FieldLastSummarizedSequence, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RollingSummaryUpsert) SetUpdatedAt(v time.Time) *RollingSummaryUpsert {
	u.Set(rollingsummary.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RollingSummaryUpsert) UpdateUpdatedAt() *RollingSummaryUpsert {
	u.SetExcluded(rollingsummary.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rollingsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RollingSummaryUpsertOne) UpdateNewValues() *RollingSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rollingsummary.FieldID)
		}
		if _, exists := u.create.mutation.StreamID(); exists {
			s.SetIgnore(rollingsummary.FieldStreamID)
		}
		if _, exists := u.create.mutation.PersonaID(); exists {
			s.SetIgnore(rollingsummary.FieldPersonaID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RollingSummaryUpsertOne) Ignore() *RollingSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RollingSummaryUpsertOne) DoNothing() *RollingSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RollingSummaryCreate.OnConflict
// documentation for more info.
func (u *RollingSummaryUpsertOne) Update(set func(*RollingSummaryUpsert)) *RollingSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RollingSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *RollingSummaryUpsertOne) SetSummary(v string) *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RollingSummaryUpsertOne) UpdateSummary() *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (u *RollingSummaryUpsertOne) SetLastSummarizedSequence(v int64) *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetLastSummarizedSequence(v)
	})
}

// AddLastSummarizedSequence adds v to the "last_summarized_sequence" field.
func (u *RollingSummaryUpsertOne) AddLastSummarizedSequence(v int64) *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.AddLastSummarizedSequence(v)
	})
}

// UpdateLastSummarizedSequence sets the "last_summarized_sequence" field to the value that was provided on create.
func (u *RollingSummaryUpsertOne) UpdateLastSummarizedSequence() *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateLastSummarizedSequence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RollingSummaryUpsertOne) SetUpdatedAt(v time.Time) *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RollingSummaryUpsertOne) UpdateUpdatedAt() *RollingSummaryUpsertOne {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RollingSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RollingSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RollingSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RollingSummaryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RollingSummaryUpsertOne.ID is not supported by MySQL driver. Use RollingSummaryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RollingSummaryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RollingSummaryCreateBulk is the builder for creating many RollingSummary entities in bulk.
type RollingSummaryCreateBulk struct {
	config
	err      error
	builders []*RollingSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the RollingSummary entities in the database.
func (_c *RollingSummaryCreateBulk) Save(ctx context.Context) ([]*RollingSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RollingSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RollingSummaryMutation)
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
func (_c *RollingSummaryCreateBulk) SaveX(ctx context.Context) []*RollingSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RollingSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RollingSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RollingSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RollingSummaryUpsert) {
//			SetStreamID(v+v).
//		}).
//		Exec(ctx)
func (_c *RollingSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *RollingSummaryUpsertBulk {
	_c.conflict = opts
	return &RollingSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RollingSummaryCreateBulk) OnConflictColumns(columns ...string) *RollingSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RollingSummaryUpsertBulk{
		create: _c,
	}
}

// RollingSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of RollingSummary nodes.
type RollingSummaryUpsertBulk struct {
	create *RollingSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rollingsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RollingSummaryUpsertBulk) UpdateNewValues() *RollingSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rollingsummary.FieldID)
			}
			if _, exists := b.mutation.StreamID(); exists {
				s.SetIgnore(rollingsummary.FieldStreamID)
			}
			if _, exists := b.mutation.PersonaID(); exists {
				s.SetIgnore(rollingsummary.FieldPersonaID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RollingSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RollingSummaryUpsertBulk) Ignore() *RollingSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RollingSummaryUpsertBulk) DoNothing() *RollingSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RollingSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *RollingSummaryUpsertBulk) Update(set func(*RollingSummaryUpsert)) *RollingSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RollingSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *RollingSummaryUpsertBulk) SetSummary(v string) *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RollingSummaryUpsertBulk) UpdateSummary() *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetLastSummarizedSequence sets the "last_summarized_sequence" field.
func (u *RollingSummaryUpsertBulk) SetLastSummarizedSequence(v int64) *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetLastSummarizedSequence(v)
	})
}

// AddLastSummarizedSequence adds v to the "last_summarized_sequence" field.
func (u *RollingSummaryUpsertBulk) AddLastSummarizedSequence(v int64) *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.AddLastSummarizedSequence(v)
	})
}

// UpdateLastSummarizedSequence sets the "last_summarized_sequence" field to the value that was provided on create.
func (u *RollingSummaryUpsertBulk) UpdateLastSummarizedSequence() *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateLastSummarizedSequence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RollingSummaryUpsertBulk) SetUpdatedAt(v time.Time) *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RollingSummaryUpsertBulk) UpdateUpdatedAt() *RollingSummaryUpsertBulk {
	return u.Update(func(s *RollingSummaryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RollingSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RollingSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RollingSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RollingSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
