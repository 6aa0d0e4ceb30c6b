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
	"github.com/loomchat/companion/ent/listenercursor"
)

// ListenerCursorCreate is the builder for creating a ListenerCursor entity.
type ListenerCursorCreate struct {
	config
	mutation *ListenerCursorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_c *ListenerCursorCreate) SetLastProcessedID(v int64) *ListenerCursorCreate {
	_c.mutation.SetLastProcessedID(v)
	return _c
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_c *ListenerCursorCreate) SetNillableLastProcessedID(v *int64) *ListenerCursorCreate {
	if v != nil {
		_c.SetLastProcessedID(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *ListenerCursorCreate) SetLeaseOwner(v string) *ListenerCursorCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *ListenerCursorCreate) SetNillableLeaseOwner(v *string) *ListenerCursorCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *ListenerCursorCreate) SetLeaseExpiresAt(v time.Time) *ListenerCursorCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *ListenerCursorCreate) SetNillableLeaseExpiresAt(v *time.Time) *ListenerCursorCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ListenerCursorCreate) SetUpdatedAt(v time.Time) *ListenerCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ListenerCursorCreate) SetNillableUpdatedAt(v *time.Time) *ListenerCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListenerCursorCreate) SetID(v string) *ListenerCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ListenerCursorMutation object of the builder.
func (_c *ListenerCursorCreate) Mutation() *ListenerCursorMutation {
	return _c.mutation
}

// Save creates the ListenerCursor in the database.
func (_c *ListenerCursorCreate) Save(ctx context.Context) (*ListenerCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListenerCursorCreate) SaveX(ctx context.Context) *ListenerCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListenerCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListenerCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListenerCursorCreate) defaults() {
	if _, ok := _c.mutation.LastProcessedID(); !ok {
		v := listenercursor.DefaultLastProcessedID
		_c.mutation.SetLastProcessedID(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := listenercursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListenerCursorCreate) check() error {
	if _, ok := _c.mutation.LastProcessedID(); !ok {
		return &ValidationError{Name: "last_processed_id", err: errors.New(`ent: missing required field "ListenerCursor.last_processed_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ListenerCursor.updated_at"`)}
	}
	return nil
}

func (_c *ListenerCursorCreate) sqlSave(ctx context.Context) (*ListenerCursor, error) {
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
			return nil, fmt.Errorf("unexpected ListenerCursor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ListenerCursorCreate) createSpec() (*ListenerCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &ListenerCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listenercursor.Table, sqlgraph.NewFieldSpec(listenercursor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LastProcessedID(); ok {
		_spec.SetField(listenercursor.FieldLastProcessedID, field.TypeInt64, value)
		_node.LastProcessedID = value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(listenercursor.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(listenercursor.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(listenercursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ListenerCursor.Create().
//		SetLastProcessedID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ListenerCursorUpsert) {
//			SetLastProcessedID(v+v).
//		}).
//		Exec(ctx)
func (_c *ListenerCursorCreate) OnConflict(opts ...sql.ConflictOption) *ListenerCursorUpsertOne {
	_c.conflict = opts
	return &ListenerCursorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ListenerCursorCreate) OnConflictColumns(columns ...string) *ListenerCursorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ListenerCursorUpsertOne{
		create: _c,
	}
}

type (
	// ListenerCursorUpsertOne is the builder for "upsert"-ing
	//  one ListenerCursor node.
	ListenerCursorUpsertOne struct {
		create *ListenerCursorCreate
	}

	// ListenerCursorUpsert is the "OnConflict" setter.
	ListenerCursorUpsert struct {
		*sql.UpdateSet
	}
)

// SetLastProcessedID sets the "last_processed_id" field.
func (u *ListenerCursorUpsert) SetLastProcessedID(v int64) *ListenerCursorUpsert {
	u.Set(listenercursor.FieldLastProcessedID, v)
	return u
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *ListenerCursorUpsert) UpdateLastProcessedID() *ListenerCursorUpsert {
	u.SetExcluded(listenercursor.FieldLastProcessedID)
	return u
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *ListenerCursorUpsert) AddLastProcessedID(v int64) *ListenerCursorUpsert {
	u.Add(listenercursor.FieldLastProcessedID, v)
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *ListenerCursorUpsert) SetLeaseOwner(v string) *ListenerCursorUpsert {
	u.Set(listenercursor.FieldLeaseOwner, v)
	return u
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *ListenerCursorUpsert) UpdateLeaseOwner() *ListenerCursorUpsert {
	u.SetExcluded(listenercursor.FieldLeaseOwner)
	return u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *ListenerCursorUpsert) ClearLeaseOwner() *ListenerCursorUpsert {
	u.SetNull(listenercursor.FieldLeaseOwner)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *ListenerCursorUpsert) SetLeaseExpiresAt(v time.Time) *ListenerCursorUpsert {
	u.Set(listenercursor.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *ListenerCursorUpsert) UpdateLeaseExpiresAt() *ListenerCursorUpsert {
	u.SetExcluded(listenercursor.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *ListenerCursorUpsert) ClearLeaseExpiresAt() *ListenerCursorUpsert {
	u.SetNull(listenercursor.FieldLeaseExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ListenerCursorUpsert) SetUpdatedAt(v time.Time) *ListenerCursorUpsert {
	u.Set(listenercursor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ListenerCursorUpsert) UpdateUpdatedAt() *ListenerCursorUpsert {
	u.SetExcluded(listenercursor.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(listenercursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ListenerCursorUpsertOne) UpdateNewValues() *ListenerCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(listenercursor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ListenerCursorUpsertOne) Ignore() *ListenerCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ListenerCursorUpsertOne) DoNothing() *ListenerCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ListenerCursorCreate.OnConflict
// documentation for more info.
func (u *ListenerCursorUpsertOne) Update(set func(*ListenerCursorUpsert)) *ListenerCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ListenerCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (u *ListenerCursorUpsertOne) SetLastProcessedID(v int64) *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLastProcessedID(v)
	})
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *ListenerCursorUpsertOne) AddLastProcessedID(v int64) *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.AddLastProcessedID(v)
	})
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *ListenerCursorUpsertOne) UpdateLastProcessedID() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLastProcessedID()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *ListenerCursorUpsertOne) SetLeaseOwner(v string) *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *ListenerCursorUpsertOne) UpdateLeaseOwner() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *ListenerCursorUpsertOne) ClearLeaseOwner() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *ListenerCursorUpsertOne) SetLeaseExpiresAt(v time.Time) *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *ListenerCursorUpsertOne) UpdateLeaseExpiresAt() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *ListenerCursorUpsertOne) ClearLeaseExpiresAt() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ListenerCursorUpsertOne) SetUpdatedAt(v time.Time) *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ListenerCursorUpsertOne) UpdateUpdatedAt() *ListenerCursorUpsertOne {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ListenerCursorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ListenerCursorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ListenerCursorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ListenerCursorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ListenerCursorUpsertOne.ID is not supported by MySQL driver. Use ListenerCursorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ListenerCursorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ListenerCursorCreateBulk is the builder for creating many ListenerCursor entities in bulk.
type ListenerCursorCreateBulk struct {
	config
	err      error
	builders []*ListenerCursorCreate
	conflict []sql.ConflictOption
}

// Save creates the ListenerCursor entities in the database.
func (_c *ListenerCursorCreateBulk) Save(ctx context.Context) ([]*ListenerCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListenerCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListenerCursorMutation)
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
func (_c *ListenerCursorCreateBulk) SaveX(ctx context.Context) []*ListenerCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListenerCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListenerCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ListenerCursor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ListenerCursorUpsert) {
//			SetLastProcessedID(v+v).
//		}).
//		Exec(ctx)
func (_c *ListenerCursorCreateBulk) OnConflict(opts ...sql.ConflictOption) *ListenerCursorUpsertBulk {
	_c.conflict = opts
	return &ListenerCursorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ListenerCursorCreateBulk) OnConflictColumns(columns ...string) *ListenerCursorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ListenerCursorUpsertBulk{
		create: _c,
	}
}

// ListenerCursorUpsertBulk is the builder for "upsert"-ing
// a bulk of ListenerCursor nodes.
type ListenerCursorUpsertBulk struct {
	create *ListenerCursorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(listenercursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ListenerCursorUpsertBulk) UpdateNewValues() *ListenerCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(listenercursor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ListenerCursor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ListenerCursorUpsertBulk) Ignore() *ListenerCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ListenerCursorUpsertBulk) DoNothing() *ListenerCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ListenerCursorCreateBulk.OnConflict
// documentation for more info.
func (u *ListenerCursorUpsertBulk) Update(set func(*ListenerCursorUpsert)) *ListenerCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ListenerCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (u *ListenerCursorUpsertBulk) SetLastProcessedID(v int64) *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLastProcessedID(v)
	})
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *ListenerCursorUpsertBulk) AddLastProcessedID(v int64) *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.AddLastProcessedID(v)
	})
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *ListenerCursorUpsertBulk) UpdateLastProcessedID() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLastProcessedID()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *ListenerCursorUpsertBulk) SetLeaseOwner(v string) *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *ListenerCursorUpsertBulk) UpdateLeaseOwner() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *ListenerCursorUpsertBulk) ClearLeaseOwner() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *ListenerCursorUpsertBulk) SetLeaseExpiresAt(v time.Time) *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *ListenerCursorUpsertBulk) UpdateLeaseExpiresAt() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *ListenerCursorUpsertBulk) ClearLeaseExpiresAt() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ListenerCursorUpsertBulk) SetUpdatedAt(v time.Time) *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ListenerCursorUpsertBulk) UpdateUpdatedAt() *ListenerCursorUpsertBulk {
	return u.Update(func(s *ListenerCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ListenerCursorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ListenerCursorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ListenerCursorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ListenerCursorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
