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
	"github.com/rentdesk/rentdesk/ent/tenant"
	"github.com/rentdesk/rentdesk/ent/unit"
	"github.com/shopspring/decimal"
)

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (uc *UnitCreate) SetAccountID(s string) *UnitCreate {
	uc.mutation.SetAccountID(s)
	return uc
}

// SetStatus sets the "status" field.
func (uc *UnitCreate) SetStatus(s string) *UnitCreate {
	uc.mutation.SetStatus(s)
	return uc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uc *UnitCreate) SetNillableStatus(s *string) *UnitCreate {
	if s != nil {
		uc.SetStatus(*s)
	}
	return uc
}

// SetCreatedAt sets the "created_at" field.
func (uc *UnitCreate) SetCreatedAt(t time.Time) *UnitCreate {
	uc.mutation.SetCreatedAt(t)
	return uc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (uc *UnitCreate) SetNillableCreatedAt(t *time.Time) *UnitCreate {
	if t != nil {
		uc.SetCreatedAt(*t)
	}
	return uc
}

// SetUpdatedAt sets the "updated_at" field.
func (uc *UnitCreate) SetUpdatedAt(t time.Time) *UnitCreate {
	uc.mutation.SetUpdatedAt(t)
	return uc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (uc *UnitCreate) SetNillableUpdatedAt(t *time.Time) *UnitCreate {
	if t != nil {
		uc.SetUpdatedAt(*t)
	}
	return uc
}

// SetCreatedBy sets the "created_by" field.
func (uc *UnitCreate) SetCreatedBy(s string) *UnitCreate {
	uc.mutation.SetCreatedBy(s)
	return uc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (uc *UnitCreate) SetNillableCreatedBy(s *string) *UnitCreate {
	if s != nil {
		uc.SetCreatedBy(*s)
	}
	return uc
}

// SetUpdatedBy sets the "updated_by" field.
func (uc *UnitCreate) SetUpdatedBy(s string) *UnitCreate {
	uc.mutation.SetUpdatedBy(s)
	return uc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (uc *UnitCreate) SetNillableUpdatedBy(s *string) *UnitCreate {
	if s != nil {
		uc.SetUpdatedBy(*s)
	}
	return uc
}

// SetPropertyID sets the "property_id" field.
func (uc *UnitCreate) SetPropertyID(s string) *UnitCreate {
	uc.mutation.SetPropertyID(s)
	return uc
}

// SetUnitNumber sets the "unit_number" field.
func (uc *UnitCreate) SetUnitNumber(s string) *UnitCreate {
	uc.mutation.SetUnitNumber(s)
	return uc
}

// SetMonthlyRent sets the "monthly_rent" field.
func (uc *UnitCreate) SetMonthlyRent(d decimal.Decimal) *UnitCreate {
	uc.mutation.SetMonthlyRent(d)
	return uc
}

// SetNillableMonthlyRent sets the "monthly_rent" field if the given value is not nil.
func (uc *UnitCreate) SetNillableMonthlyRent(d *decimal.Decimal) *UnitCreate {
	if d != nil {
		uc.SetMonthlyRent(*d)
	}
	return uc
}

// SetID sets the "id" field.
func (uc *UnitCreate) SetID(s string) *UnitCreate {
	uc.mutation.SetID(s)
	return uc
}

// SetProperty sets the "property" edge to the Property entity.
func (uc *UnitCreate) SetProperty(p *Property) *UnitCreate {
	return uc.SetPropertyID(p.ID)
}

// AddTenantIDs adds the "tenants" edge to the Tenant entity by IDs.
func (uc *UnitCreate) AddTenantIDs(ids ...string) *UnitCreate {
	uc.mutation.AddTenantIDs(ids...)
	return uc
}

// AddTenants adds the "tenants" edges to the Tenant entity.
func (uc *UnitCreate) AddTenants(t ...*Tenant) *UnitCreate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return uc.AddTenantIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (uc *UnitCreate) Mutation() *UnitMutation {
	return uc.mutation
}

// Save creates the Unit in the database.
func (uc *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	uc.defaults()
	return withHooks(ctx, uc.sqlSave, uc.mutation, uc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uc *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := uc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uc *UnitCreate) Exec(ctx context.Context) error {
	_, err := uc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uc *UnitCreate) ExecX(ctx context.Context) {
	if err := uc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uc *UnitCreate) defaults() {
	if _, ok := uc.mutation.Status(); !ok {
		v := unit.DefaultStatus
		uc.mutation.SetStatus(v)
	}
	if _, ok := uc.mutation.CreatedAt(); !ok {
		v := unit.DefaultCreatedAt()
		uc.mutation.SetCreatedAt(v)
	}
	if _, ok := uc.mutation.UpdatedAt(); !ok {
		v := unit.DefaultUpdatedAt()
		uc.mutation.SetUpdatedAt(v)
	}
	if _, ok := uc.mutation.MonthlyRent(); !ok {
		v := unit.DefaultMonthlyRent
		uc.mutation.SetMonthlyRent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uc *UnitCreate) check() error {
	if _, ok := uc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Unit.account_id"`)}
	}
	if v, ok := uc.mutation.AccountID(); ok {
		if err := unit.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Unit.account_id": %w`, err)}
		}
	}
	if _, ok := uc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Unit.status"`)}
	}
	if _, ok := uc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Unit.created_at"`)}
	}
	if _, ok := uc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Unit.updated_at"`)}
	}
	if _, ok := uc.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "Unit.property_id"`)}
	}
	if v, ok := uc.mutation.PropertyID(); ok {
		if err := unit.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Unit.property_id": %w`, err)}
		}
	}
	if _, ok := uc.mutation.UnitNumber(); !ok {
		return &ValidationError{Name: "unit_number", err: errors.New(`ent: missing required field "Unit.unit_number"`)}
	}
	if v, ok := uc.mutation.UnitNumber(); ok {
		if err := unit.UnitNumberValidator(v); err != nil {
			return &ValidationError{Name: "unit_number", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_number": %w`, err)}
		}
	}
	if _, ok := uc.mutation.MonthlyRent(); !ok {
		return &ValidationError{Name: "monthly_rent", err: errors.New(`ent: missing required field "Unit.monthly_rent"`)}
	}
	if _, ok := uc.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property", err: errors.New(`ent: missing required edge "Unit.property"`)}
	}
	return nil
}

func (uc *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
	if err := uc.check(); err != nil {
		return nil, err
	}
	_node, _spec := uc.createSpec()
	if err := sqlgraph.CreateNode(ctx, uc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Unit.ID type: %T", _spec.ID.Value)
		}
	}
	uc.mutation.id = &_node.ID
	uc.mutation.done = true
	return _node, nil
}

func (uc *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: uc.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	)
	_spec.OnConflict = uc.conflict
	if id, ok := uc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := uc.mutation.AccountID(); ok {
		_spec.SetField(unit.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := uc.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := uc.mutation.CreatedAt(); ok {
		_spec.SetField(unit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := uc.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := uc.mutation.CreatedBy(); ok {
		_spec.SetField(unit.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := uc.mutation.UpdatedBy(); ok {
		_spec.SetField(unit.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := uc.mutation.UnitNumber(); ok {
		_spec.SetField(unit.FieldUnitNumber, field.TypeString, value)
		_node.UnitNumber = value
	}
	if value, ok := uc.mutation.MonthlyRent(); ok {
		_spec.SetField(unit.FieldMonthlyRent, field.TypeOther, value)
		_node.MonthlyRent = value
	}
	if nodes := uc.mutation.PropertyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   unit.PropertyTable,
			Columns: []string{unit.PropertyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(property.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PropertyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := uc.mutation.TenantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unit.TenantsTable,
			Columns: []string{unit.TenantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
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
//	client.Unit.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (uc *UnitCreate) OnConflict(opts ...sql.ConflictOption) *UnitUpsertOne {
	uc.conflict = opts
	return &UnitUpsertOne{
		create: uc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (uc *UnitCreate) OnConflictColumns(columns ...string) *UnitUpsertOne {
	uc.conflict = append(uc.conflict, sql.ConflictColumns(columns...))
	return &UnitUpsertOne{
		create: uc,
	}
}

type (
	// UnitUpsertOne is the builder for "upsert"-ing
	//  one Unit node.
	UnitUpsertOne struct {
		create *UnitCreate
	}

	// UnitUpsert is the "OnConflict" setter.
	UnitUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *UnitUpsert) SetStatus(v string) *UnitUpsert {
	u.Set(unit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UnitUpsert) UpdateStatus() *UnitUpsert {
	u.SetExcluded(unit.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitUpsert) SetUpdatedAt(v time.Time) *UnitUpsert {
	u.Set(unit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitUpsert) UpdateUpdatedAt() *UnitUpsert {
	u.SetExcluded(unit.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *UnitUpsert) SetUpdatedBy(v string) *UnitUpsert {
	u.Set(unit.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *UnitUpsert) UpdateUpdatedBy() *UnitUpsert {
	u.SetExcluded(unit.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *UnitUpsert) ClearUpdatedBy() *UnitUpsert {
	u.SetNull(unit.FieldUpdatedBy)
	return u
}

// SetPropertyID sets the "property_id" field.
func (u *UnitUpsert) SetPropertyID(v string) *UnitUpsert {
	u.Set(unit.FieldPropertyID, v)
	return u
}

// UpdatePropertyID sets the "property_id" field to the value that was provided on create.
func (u *UnitUpsert) UpdatePropertyID() *UnitUpsert {
	u.SetExcluded(unit.FieldPropertyID)
	return u
}

// SetUnitNumber sets the "unit_number" field.
func (u *UnitUpsert) SetUnitNumber(v string) *UnitUpsert {
	u.Set(unit.FieldUnitNumber, v)
	return u
}

// UpdateUnitNumber sets the "unit_number" field to the value that was provided on create.
func (u *UnitUpsert) UpdateUnitNumber() *UnitUpsert {
	u.SetExcluded(unit.FieldUnitNumber)
	return u
}

// SetMonthlyRent sets the "monthly_rent" field.
func (u *UnitUpsert) SetMonthlyRent(v decimal.Decimal) *UnitUpsert {
	u.Set(unit.FieldMonthlyRent, v)
	return u
}

// UpdateMonthlyRent sets the "monthly_rent" field to the value that was provided on create.
func (u *UnitUpsert) UpdateMonthlyRent() *UnitUpsert {
	u.SetExcluded(unit.FieldMonthlyRent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnitUpsertOne) UpdateNewValues() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(unit.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(unit.FieldAccountID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(unit.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(unit.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnitUpsertOne) Ignore() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitUpsertOne) DoNothing() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitCreate.OnConflict
// documentation for more info.
func (u *UnitUpsertOne) Update(set func(*UnitUpsert)) *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *UnitUpsertOne) SetStatus(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateStatus() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitUpsertOne) SetUpdatedAt(v time.Time) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateUpdatedAt() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *UnitUpsertOne) SetUpdatedBy(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateUpdatedBy() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *UnitUpsertOne) ClearUpdatedBy() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetPropertyID sets the "property_id" field.
func (u *UnitUpsertOne) SetPropertyID(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetPropertyID(v)
	})
}

// UpdatePropertyID sets the "property_id" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdatePropertyID() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdatePropertyID()
	})
}

// SetUnitNumber sets the "unit_number" field.
func (u *UnitUpsertOne) SetUnitNumber(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetUnitNumber(v)
	})
}

// UpdateUnitNumber sets the "unit_number" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateUnitNumber() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUnitNumber()
	})
}

// SetMonthlyRent sets the "monthly_rent" field.
func (u *UnitUpsertOne) SetMonthlyRent(v decimal.Decimal) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetMonthlyRent(v)
	})
}

// UpdateMonthlyRent sets the "monthly_rent" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateMonthlyRent() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateMonthlyRent()
	})
}

// Exec executes the query.
func (u *UnitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnitUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UnitUpsertOne.ID is not supported by MySQL driver. Use UnitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnitUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
	conflict []sql.ConflictOption
}

// Save creates the Unit entities in the database.
func (ucb *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if ucb.err != nil {
		return nil, ucb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ucb.builders))
	nodes := make([]*Unit, len(ucb.builders))
	mutators := make([]Mutator, len(ucb.builders))
	for i := range ucb.builders {
		func(i int, root context.Context) {
			builder := ucb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
					_, err = mutators[i+1].Mutate(root, ucb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ucb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ucb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ucb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ucb *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := ucb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ucb *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := ucb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ucb *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := ucb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Unit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (ucb *UnitCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnitUpsertBulk {
	ucb.conflict = opts
	return &UnitUpsertBulk{
		create: ucb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ucb *UnitCreateBulk) OnConflictColumns(columns ...string) *UnitUpsertBulk {
	ucb.conflict = append(ucb.conflict, sql.ConflictColumns(columns...))
	return &UnitUpsertBulk{
		create: ucb,
	}
}

// UnitUpsertBulk is the builder for "upsert"-ing
// a bulk of Unit nodes.
type UnitUpsertBulk struct {
	create *UnitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnitUpsertBulk) UpdateNewValues() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(unit.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(unit.FieldAccountID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(unit.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(unit.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnitUpsertBulk) Ignore() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitUpsertBulk) DoNothing() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitCreateBulk.OnConflict
// documentation for more info.
func (u *UnitUpsertBulk) Update(set func(*UnitUpsert)) *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *UnitUpsertBulk) SetStatus(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateStatus() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnitUpsertBulk) SetUpdatedAt(v time.Time) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateUpdatedAt() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *UnitUpsertBulk) SetUpdatedBy(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateUpdatedBy() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *UnitUpsertBulk) ClearUpdatedBy() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetPropertyID sets the "property_id" field.
func (u *UnitUpsertBulk) SetPropertyID(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetPropertyID(v)
	})
}

// UpdatePropertyID sets the "property_id" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdatePropertyID() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdatePropertyID()
	})
}

// SetUnitNumber sets the "unit_number" field.
func (u *UnitUpsertBulk) SetUnitNumber(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetUnitNumber(v)
	})
}

// UpdateUnitNumber sets the "unit_number" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateUnitNumber() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUnitNumber()
	})
}

// SetMonthlyRent sets the "monthly_rent" field.
func (u *UnitUpsertBulk) SetMonthlyRent(v decimal.Decimal) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetMonthlyRent(v)
	})
}

// UpdateMonthlyRent sets the "monthly_rent" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateMonthlyRent() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateMonthlyRent()
	})
}

// Exec executes the query.
func (u *UnitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
