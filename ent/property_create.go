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
	"github.com/rentdesk/rentdesk/ent/property"
	"github.com/rentdesk/rentdesk/ent/unit"
)

// PropertyCreate is the builder for creating a Property entity.
type PropertyCreate struct {
	config
	mutation *PropertyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (pc *PropertyCreate) SetAccountID(s string) *PropertyCreate {
	pc.mutation.SetAccountID(s)
	return pc
}

// SetStatus sets the "status" field.
func (pc *PropertyCreate) SetStatus(s string) *PropertyCreate {
	pc.mutation.SetStatus(s)
	return pc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableStatus(s *string) *PropertyCreate {
	if s != nil {
		pc.SetStatus(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PropertyCreate) SetCreatedAt(t time.Time) *PropertyCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableCreatedAt(t *time.Time) *PropertyCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *PropertyCreate) SetUpdatedAt(t time.Time) *PropertyCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableUpdatedAt(t *time.Time) *PropertyCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetCreatedBy sets the "created_by" field.
func (pc *PropertyCreate) SetCreatedBy(s string) *PropertyCreate {
	pc.mutation.SetCreatedBy(s)
	return pc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableCreatedBy(s *string) *PropertyCreate {
	if s != nil {
		pc.SetCreatedBy(*s)
	}
	return pc
}

// SetUpdatedBy sets the "updated_by" field.
func (pc *PropertyCreate) SetUpdatedBy(s string) *PropertyCreate {
	pc.mutation.SetUpdatedBy(s)
	return pc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableUpdatedBy(s *string) *PropertyCreate {
	if s != nil {
		pc.SetUpdatedBy(*s)
	}
	return pc
}

// SetName sets the "name" field.
func (pc *PropertyCreate) SetName(s string) *PropertyCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetAddress sets the "address" field.
func (pc *PropertyCreate) SetAddress(s string) *PropertyCreate {
	pc.mutation.SetAddress(s)
	return pc
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (pc *PropertyCreate) SetNillableAddress(s *string) *PropertyCreate {
	if s != nil {
		pc.SetAddress(*s)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *PropertyCreate) SetID(s string) *PropertyCreate {
	pc.mutation.SetID(s)
	return pc
}

// AddUnitIDs adds the "units" edge to the Unit entity by IDs.
func (pc *PropertyCreate) AddUnitIDs(ids ...string) *PropertyCreate {
	pc.mutation.AddUnitIDs(ids...)
	return pc
}

// AddUnits adds the "units" edges to the Unit entity.
func (pc *PropertyCreate) AddUnits(u ...*Unit) *PropertyCreate {
	ids := make([]string, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return pc.AddUnitIDs(ids...)
}

// Mutation returns the PropertyMutation object of the builder.
func (pc *PropertyCreate) Mutation() *PropertyMutation {
	return pc.mutation
}

// Save creates the Property in the database.
func (pc *PropertyCreate) Save(ctx context.Context) (*Property, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PropertyCreate) SaveX(ctx context.Context) *Property {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PropertyCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PropertyCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PropertyCreate) defaults() {
	if _, ok := pc.mutation.Status(); !ok {
		v := property.DefaultStatus
		pc.mutation.SetStatus(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := property.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := property.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PropertyCreate) check() error {
	if _, ok := pc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Property.account_id"`)}
	}
	if v, ok := pc.mutation.AccountID(); ok {
		if err := property.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Property.account_id": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Property.status"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Property.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Property.updated_at"`)}
	}
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Property.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := property.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Property.name": %w`, err)}
		}
	}
	return nil
}

func (pc *PropertyCreate) sqlSave(ctx context.Context) (*Property, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Property.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PropertyCreate) createSpec() (*Property, *sqlgraph.CreateSpec) {
	var (
		_node = &Property{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(property.Table, sqlgraph.NewFieldSpec(property.FieldID, field.TypeString))
	)
	_spec.OnConflict = pc.conflict
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.AccountID(); ok {
		_spec.SetField(property.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := pc.mutation.Status(); ok {
		_spec.SetField(property.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(property.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pc.mutation.CreatedBy(); ok {
		_spec.SetField(property.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := pc.mutation.UpdatedBy(); ok {
		_spec.SetField(property.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(property.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if nodes := pc.mutation.UnitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.UnitsTable,
			Columns: []string{property.UnitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Property.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (pc *PropertyCreate) OnConflict(opts ...sql.ConflictOption) *PropertyUpsertOne {
	pc.conflict = opts
	return &PropertyUpsertOne{
		create: pc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Property.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pc *PropertyCreate) OnConflictColumns(columns ...string) *PropertyUpsertOne {
	pc.conflict = append(pc.conflict, sql.ConflictColumns(columns...))
	return &PropertyUpsertOne{
		create: pc,
	}
}

type (
	// PropertyUpsertOne is the builder for "upsert"-ing
	//  one Property node.
	PropertyUpsertOne struct {
		create *PropertyCreate
	}

	// PropertyUpsert is the "OnConflict" setter.
	PropertyUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PropertyUpsert) SetStatus(v string) *PropertyUpsert {
	u.Set(property.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyUpsert) UpdateStatus() *PropertyUpsert {
	u.SetExcluded(property.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUpsert) SetUpdatedAt(v time.Time) *PropertyUpsert {
	u.Set(property.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUpsert) UpdateUpdatedAt() *PropertyUpsert {
	u.SetExcluded(property.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PropertyUpsert) SetUpdatedBy(v string) *PropertyUpsert {
	u.Set(property.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PropertyUpsert) UpdateUpdatedBy() *PropertyUpsert {
	u.SetExcluded(property.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PropertyUpsert) ClearUpdatedBy() *PropertyUpsert {
	u.SetNull(property.FieldUpdatedBy)
	return u
}

// SetName sets the "name" field.
func (u *PropertyUpsert) SetName(v string) *PropertyUpsert {
	u.Set(property.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PropertyUpsert) UpdateName() *PropertyUpsert {
	u.SetExcluded(property.FieldName)
	return u
}

// SetAddress sets the "address" field.
func (u *PropertyUpsert) SetAddress(v string) *PropertyUpsert {
	u.Set(property.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PropertyUpsert) UpdateAddress() *PropertyUpsert {
	u.SetExcluded(property.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *PropertyUpsert) ClearAddress() *PropertyUpsert {
	u.SetNull(property.FieldAddress)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Property.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(property.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyUpsertOne) UpdateNewValues() *PropertyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(property.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(property.FieldAccountID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(property.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(property.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Property.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PropertyUpsertOne) Ignore() *PropertyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyUpsertOne) DoNothing() *PropertyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyCreate.OnConflict
// documentation for more info.
func (u *PropertyUpsertOne) Update(set func(*PropertyUpsert)) *PropertyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PropertyUpsertOne) SetStatus(v string) *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyUpsertOne) UpdateStatus() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUpsertOne) SetUpdatedAt(v time.Time) *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUpsertOne) UpdateUpdatedAt() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PropertyUpsertOne) SetUpdatedBy(v string) *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PropertyUpsertOne) UpdateUpdatedBy() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PropertyUpsertOne) ClearUpdatedBy() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *PropertyUpsertOne) SetName(v string) *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PropertyUpsertOne) UpdateName() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *PropertyUpsertOne) SetAddress(v string) *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PropertyUpsertOne) UpdateAddress() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PropertyUpsertOne) ClearAddress() *PropertyUpsertOne {
	return u.Update(func(s *PropertyUpsert) {
		s.ClearAddress()
	})
}

// Exec executes the query.
func (u *PropertyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PropertyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PropertyUpsertOne.ID is not supported by MySQL driver. Use PropertyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PropertyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PropertyCreateBulk is the builder for creating many Property entities in bulk.
type PropertyCreateBulk struct {
	config
	err      error
	builders []*PropertyCreate
	conflict []sql.ConflictOption
}

// Save creates the Property entities in the database.
func (pcb *PropertyCreateBulk) Save(ctx context.Context) ([]*Property, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Property, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PropertyCreateBulk) SaveX(ctx context.Context) []*Property {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PropertyCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PropertyCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Property.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (pcb *PropertyCreateBulk) OnConflict(opts ...sql.ConflictOption) *PropertyUpsertBulk {
	pcb.conflict = opts
	return &PropertyUpsertBulk{
		create: pcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Property.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pcb *PropertyCreateBulk) OnConflictColumns(columns ...string) *PropertyUpsertBulk {
	pcb.conflict = append(pcb.conflict, sql.ConflictColumns(columns...))
	return &PropertyUpsertBulk{
		create: pcb,
	}
}

// PropertyUpsertBulk is the builder for "upsert"-ing
// a bulk of Property nodes.
type PropertyUpsertBulk struct {
	create *PropertyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Property.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(property.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyUpsertBulk) UpdateNewValues() *PropertyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(property.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(property.FieldAccountID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(property.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(property.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Property.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PropertyUpsertBulk) Ignore() *PropertyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyUpsertBulk) DoNothing() *PropertyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyCreateBulk.OnConflict
// documentation for more info.
func (u *PropertyUpsertBulk) Update(set func(*PropertyUpsert)) *PropertyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PropertyUpsertBulk) SetStatus(v string) *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyUpsertBulk) UpdateStatus() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyUpsertBulk) SetUpdatedAt(v time.Time) *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyUpsertBulk) UpdateUpdatedAt() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PropertyUpsertBulk) SetUpdatedBy(v string) *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PropertyUpsertBulk) UpdateUpdatedBy() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PropertyUpsertBulk) ClearUpdatedBy() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *PropertyUpsertBulk) SetName(v string) *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PropertyUpsertBulk) UpdateName() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *PropertyUpsertBulk) SetAddress(v string) *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PropertyUpsertBulk) UpdateAddress() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PropertyUpsertBulk) ClearAddress() *PropertyUpsertBulk {
	return u.Update(func(s *PropertyUpsert) {
		s.ClearAddress()
	})
}

// Exec executes the query.
func (u *PropertyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PropertyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
