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
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/ent/property"
	"github.com/rentdesk/rentdesk/ent/tenant"
	"github.com/rentdesk/rentdesk/ent/unit"
	"github.com/shopspring/decimal"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (uu *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	uu.mutation.Where(ps...)
	return uu
}

// SetStatus sets the "status" field.
func (uu *UnitUpdate) SetStatus(s string) *UnitUpdate {
	uu.mutation.SetStatus(s)
	return uu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableStatus(s *string) *UnitUpdate {
	if s != nil {
		uu.SetStatus(*s)
	}
	return uu
}

// SetUpdatedAt sets the "updated_at" field.
func (uu *UnitUpdate) SetUpdatedAt(t time.Time) *UnitUpdate {
	uu.mutation.SetUpdatedAt(t)
	return uu
}

// SetUpdatedBy sets the "updated_by" field.
func (uu *UnitUpdate) SetUpdatedBy(s string) *UnitUpdate {
	uu.mutation.SetUpdatedBy(s)
	return uu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableUpdatedBy(s *string) *UnitUpdate {
	if s != nil {
		uu.SetUpdatedBy(*s)
	}
	return uu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (uu *UnitUpdate) ClearUpdatedBy() *UnitUpdate {
	uu.mutation.ClearUpdatedBy()
	return uu
}

// SetPropertyID sets the "property_id" field.
func (uu *UnitUpdate) SetPropertyID(s string) *UnitUpdate {
	uu.mutation.SetPropertyID(s)
	return uu
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (uu *UnitUpdate) SetNillablePropertyID(s *string) *UnitUpdate {
	if s != nil {
		uu.SetPropertyID(*s)
	}
	return uu
}

// SetUnitNumber sets the "unit_number" field.
func (uu *UnitUpdate) SetUnitNumber(s string) *UnitUpdate {
	uu.mutation.SetUnitNumber(s)
	return uu
}

// SetNillableUnitNumber sets the "unit_number" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableUnitNumber(s *string) *UnitUpdate {
	if s != nil {
		uu.SetUnitNumber(*s)
	}
	return uu
}

// SetMonthlyRent sets the "monthly_rent" field.
func (uu *UnitUpdate) SetMonthlyRent(d decimal.Decimal) *UnitUpdate {
	uu.mutation.SetMonthlyRent(d)
	return uu
}

// SetNillableMonthlyRent sets the "monthly_rent" field if the given value is not nil.
func (uu *UnitUpdate) SetNillableMonthlyRent(d *decimal.Decimal) *UnitUpdate {
	if d != nil {
		uu.SetMonthlyRent(*d)
	}
	return uu
}

// SetProperty sets the "property" edge to the Property entity.
func (uu *UnitUpdate) SetProperty(p *Property) *UnitUpdate {
	return uu.SetPropertyID(p.ID)
}

// AddTenantIDs adds the "tenants" edge to the Tenant entity by IDs.
func (uu *UnitUpdate) AddTenantIDs(ids ...string) *UnitUpdate {
	uu.mutation.AddTenantIDs(ids...)
	return uu
}

// AddTenants adds the "tenants" edges to the Tenant entity.
func (uu *UnitUpdate) AddTenants(t ...*Tenant) *UnitUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return uu.AddTenantIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (uu *UnitUpdate) Mutation() *UnitMutation {
	return uu.mutation
}

// ClearProperty clears the "property" edge to the Property entity.
func (uu *UnitUpdate) ClearProperty() *UnitUpdate {
	uu.mutation.ClearProperty()
	return uu
}

// ClearTenants clears all "tenants" edges to the Tenant entity.
func (uu *UnitUpdate) ClearTenants() *UnitUpdate {
	uu.mutation.ClearTenants()
	return uu
}

// RemoveTenantIDs removes the "tenants" edge to Tenant entities by IDs.
func (uu *UnitUpdate) RemoveTenantIDs(ids ...string) *UnitUpdate {
	uu.mutation.RemoveTenantIDs(ids...)
	return uu
}

// RemoveTenants removes "tenants" edges to Tenant entities.
func (uu *UnitUpdate) RemoveTenants(t ...*Tenant) *UnitUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return uu.RemoveTenantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uu *UnitUpdate) Save(ctx context.Context) (int, error) {
	uu.defaults()
	return withHooks(ctx, uu.sqlSave, uu.mutation, uu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uu *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := uu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uu *UnitUpdate) Exec(ctx context.Context) error {
	_, err := uu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uu *UnitUpdate) ExecX(ctx context.Context) {
	if err := uu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uu *UnitUpdate) defaults() {
	if _, ok := uu.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		uu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uu *UnitUpdate) check() error {
	if v, ok := uu.mutation.PropertyID(); ok {
		if err := unit.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Unit.property_id": %w`, err)}
		}
	}
	if v, ok := uu.mutation.UnitNumber(); ok {
		if err := unit.UnitNumberValidator(v); err != nil {
			return &ValidationError{Name: "unit_number", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_number": %w`, err)}
		}
	}
	if _, ok := uu.mutation.PropertyID(); uu.mutation.PropertyCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "Unit.property"`)
	}
	return nil
}

func (uu *UnitUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	if ps := uu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uu.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeString, value)
	}
	if value, ok := uu.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	if uu.mutation.CreatedByCleared() {
		_spec.ClearField(unit.FieldCreatedBy, field.TypeString)
	}
	if value, ok := uu.mutation.UpdatedBy(); ok {
		_spec.SetField(unit.FieldUpdatedBy, field.TypeString, value)
	}
	if uu.mutation.UpdatedByCleared() {
		_spec.ClearField(unit.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := uu.mutation.UnitNumber(); ok {
		_spec.SetField(unit.FieldUnitNumber, field.TypeString, value)
	}
	if value, ok := uu.mutation.MonthlyRent(); ok {
		_spec.SetField(unit.FieldMonthlyRent, field.TypeOther, value)
	}
	if uu.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uu.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if uu.mutation.TenantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uu.mutation.RemovedTenantsIDs(); len(nodes) > 0 && !uu.mutation.TenantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uu.mutation.TenantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uu.mutation.done = true
	return n, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetStatus sets the "status" field.
func (uuo *UnitUpdateOne) SetStatus(s string) *UnitUpdateOne {
	uuo.mutation.SetStatus(s)
	return uuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableStatus(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetStatus(*s)
	}
	return uuo
}

// SetUpdatedAt sets the "updated_at" field.
func (uuo *UnitUpdateOne) SetUpdatedAt(t time.Time) *UnitUpdateOne {
	uuo.mutation.SetUpdatedAt(t)
	return uuo
}

// SetUpdatedBy sets the "updated_by" field.
func (uuo *UnitUpdateOne) SetUpdatedBy(s string) *UnitUpdateOne {
	uuo.mutation.SetUpdatedBy(s)
	return uuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableUpdatedBy(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetUpdatedBy(*s)
	}
	return uuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (uuo *UnitUpdateOne) ClearUpdatedBy() *UnitUpdateOne {
	uuo.mutation.ClearUpdatedBy()
	return uuo
}

// SetPropertyID sets the "property_id" field.
func (uuo *UnitUpdateOne) SetPropertyID(s string) *UnitUpdateOne {
	uuo.mutation.SetPropertyID(s)
	return uuo
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillablePropertyID(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetPropertyID(*s)
	}
	return uuo
}

// SetUnitNumber sets the "unit_number" field.
func (uuo *UnitUpdateOne) SetUnitNumber(s string) *UnitUpdateOne {
	uuo.mutation.SetUnitNumber(s)
	return uuo
}

// SetNillableUnitNumber sets the "unit_number" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableUnitNumber(s *string) *UnitUpdateOne {
	if s != nil {
		uuo.SetUnitNumber(*s)
	}
	return uuo
}

// SetMonthlyRent sets the "monthly_rent" field.
func (uuo *UnitUpdateOne) SetMonthlyRent(d decimal.Decimal) *UnitUpdateOne {
	uuo.mutation.SetMonthlyRent(d)
	return uuo
}

// SetNillableMonthlyRent sets the "monthly_rent" field if the given value is not nil.
func (uuo *UnitUpdateOne) SetNillableMonthlyRent(d *decimal.Decimal) *UnitUpdateOne {
	if d != nil {
		uuo.SetMonthlyRent(*d)
	}
	return uuo
}

// SetProperty sets the "property" edge to the Property entity.
func (uuo *UnitUpdateOne) SetProperty(p *Property) *UnitUpdateOne {
	return uuo.SetPropertyID(p.ID)
}

// AddTenantIDs adds the "tenants" edge to the Tenant entity by IDs.
func (uuo *UnitUpdateOne) AddTenantIDs(ids ...string) *UnitUpdateOne {
	uuo.mutation.AddTenantIDs(ids...)
	return uuo
}

// AddTenants adds the "tenants" edges to the Tenant entity.
func (uuo *UnitUpdateOne) AddTenants(t ...*Tenant) *UnitUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return uuo.AddTenantIDs(ids...)
}

// Mutation returns the UnitMutation object of the builder.
func (uuo *UnitUpdateOne) Mutation() *UnitMutation {
	return uuo.mutation
}

// ClearProperty clears the "property" edge to the Property entity.
func (uuo *UnitUpdateOne) ClearProperty() *UnitUpdateOne {
	uuo.mutation.ClearProperty()
	return uuo
}

// ClearTenants clears all "tenants" edges to the Tenant entity.
func (uuo *UnitUpdateOne) ClearTenants() *UnitUpdateOne {
	uuo.mutation.ClearTenants()
	return uuo
}

// RemoveTenantIDs removes the "tenants" edge to Tenant entities by IDs.
func (uuo *UnitUpdateOne) RemoveTenantIDs(ids ...string) *UnitUpdateOne {
	uuo.mutation.RemoveTenantIDs(ids...)
	return uuo
}

// RemoveTenants removes "tenants" edges to Tenant entities.
func (uuo *UnitUpdateOne) RemoveTenants(t ...*Tenant) *UnitUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return uuo.RemoveTenantIDs(ids...)
}

// Where appends a list predicates to the UnitUpdate builder.
func (uuo *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	uuo.mutation.Where(ps...)
	return uuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uuo *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	uuo.fields = append([]string{field}, fields...)
	return uuo
}

// Save executes the query and returns the updated Unit entity.
func (uuo *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	uuo.defaults()
	return withHooks(ctx, uuo.sqlSave, uuo.mutation, uuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uuo *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := uuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uuo *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := uuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uuo *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := uuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uuo *UnitUpdateOne) defaults() {
	if _, ok := uuo.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		uuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uuo *UnitUpdateOne) check() error {
	if v, ok := uuo.mutation.PropertyID(); ok {
		if err := unit.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Unit.property_id": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.UnitNumber(); ok {
		if err := unit.UnitNumberValidator(v); err != nil {
			return &ValidationError{Name: "unit_number", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_number": %w`, err)}
		}
	}
	if _, ok := uuo.mutation.PropertyID(); uuo.mutation.PropertyCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "Unit.property"`)
	}
	return nil
}

func (uuo *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := uuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	id, ok := uuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uuo.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeString, value)
	}
	if value, ok := uuo.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	if uuo.mutation.CreatedByCleared() {
		_spec.ClearField(unit.FieldCreatedBy, field.TypeString)
	}
	if value, ok := uuo.mutation.UpdatedBy(); ok {
		_spec.SetField(unit.FieldUpdatedBy, field.TypeString, value)
	}
	if uuo.mutation.UpdatedByCleared() {
		_spec.ClearField(unit.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := uuo.mutation.UnitNumber(); ok {
		_spec.SetField(unit.FieldUnitNumber, field.TypeString, value)
	}
	if value, ok := uuo.mutation.MonthlyRent(); ok {
		_spec.SetField(unit.FieldMonthlyRent, field.TypeOther, value)
	}
	if uuo.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uuo.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if uuo.mutation.TenantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uuo.mutation.RemovedTenantsIDs(); len(nodes) > 0 && !uuo.mutation.TenantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uuo.mutation.TenantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Unit{config: uuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uuo.mutation.done = true
	return _node, nil
}
