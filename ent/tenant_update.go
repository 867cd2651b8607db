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
	"github.com/rentdesk/rentdesk/ent/invoice"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/ent/tenant"
	"github.com/rentdesk/rentdesk/ent/unit"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (tu *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetStatus sets the "status" field.
func (tu *TenantUpdate) SetStatus(s string) *TenantUpdate {
	tu.mutation.SetStatus(s)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableStatus(s *string) *TenantUpdate {
	if s != nil {
		tu.SetStatus(*s)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TenantUpdate) SetUpdatedAt(t time.Time) *TenantUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetUpdatedBy sets the "updated_by" field.
func (tu *TenantUpdate) SetUpdatedBy(s string) *TenantUpdate {
	tu.mutation.SetUpdatedBy(s)
	return tu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableUpdatedBy(s *string) *TenantUpdate {
	if s != nil {
		tu.SetUpdatedBy(*s)
	}
	return tu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (tu *TenantUpdate) ClearUpdatedBy() *TenantUpdate {
	tu.mutation.ClearUpdatedBy()
	return tu
}

// SetUnitID sets the "unit_id" field.
func (tu *TenantUpdate) SetUnitID(s string) *TenantUpdate {
	tu.mutation.SetUnitID(s)
	return tu
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableUnitID(s *string) *TenantUpdate {
	if s != nil {
		tu.SetUnitID(*s)
	}
	return tu
}

// ClearUnitID clears the value of the "unit_id" field.
func (tu *TenantUpdate) ClearUnitID() *TenantUpdate {
	tu.mutation.ClearUnitID()
	return tu
}

// SetName sets the "name" field.
func (tu *TenantUpdate) SetName(s string) *TenantUpdate {
	tu.mutation.SetName(s)
	return tu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableName(s *string) *TenantUpdate {
	if s != nil {
		tu.SetName(*s)
	}
	return tu
}

// SetPhoneNumber sets the "phone_number" field.
func (tu *TenantUpdate) SetPhoneNumber(s string) *TenantUpdate {
	tu.mutation.SetPhoneNumber(s)
	return tu
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (tu *TenantUpdate) SetNillablePhoneNumber(s *string) *TenantUpdate {
	if s != nil {
		tu.SetPhoneNumber(*s)
	}
	return tu
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (tu *TenantUpdate) ClearPhoneNumber() *TenantUpdate {
	tu.mutation.ClearPhoneNumber()
	return tu
}

// SetEmail sets the "email" field.
func (tu *TenantUpdate) SetEmail(s string) *TenantUpdate {
	tu.mutation.SetEmail(s)
	return tu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableEmail(s *string) *TenantUpdate {
	if s != nil {
		tu.SetEmail(*s)
	}
	return tu
}

// ClearEmail clears the value of the "email" field.
func (tu *TenantUpdate) ClearEmail() *TenantUpdate {
	tu.mutation.ClearEmail()
	return tu
}

// SetUnit sets the "unit" edge to the Unit entity.
func (tu *TenantUpdate) SetUnit(u *Unit) *TenantUpdate {
	return tu.SetUnitID(u.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (tu *TenantUpdate) AddInvoiceIDs(ids ...string) *TenantUpdate {
	tu.mutation.AddInvoiceIDs(ids...)
	return tu
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (tu *TenantUpdate) AddInvoices(i ...*Invoice) *TenantUpdate {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tu.AddInvoiceIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (tu *TenantUpdate) Mutation() *TenantMutation {
	return tu.mutation
}

// ClearUnit clears the "unit" edge to the Unit entity.
func (tu *TenantUpdate) ClearUnit() *TenantUpdate {
	tu.mutation.ClearUnit()
	return tu
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (tu *TenantUpdate) ClearInvoices() *TenantUpdate {
	tu.mutation.ClearInvoices()
	return tu
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (tu *TenantUpdate) RemoveInvoiceIDs(ids ...string) *TenantUpdate {
	tu.mutation.RemoveInvoiceIDs(ids...)
	return tu
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (tu *TenantUpdate) RemoveInvoices(i ...*Invoice) *TenantUpdate {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tu.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TenantUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TenantUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TenantUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TenantUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TenantUpdate) check() error {
	if v, ok := tu.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	return nil
}

func (tu *TenantUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(tenant.FieldStatus, field.TypeString, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if tu.mutation.CreatedByCleared() {
		_spec.ClearField(tenant.FieldCreatedBy, field.TypeString)
	}
	if value, ok := tu.mutation.UpdatedBy(); ok {
		_spec.SetField(tenant.FieldUpdatedBy, field.TypeString, value)
	}
	if tu.mutation.UpdatedByCleared() {
		_spec.ClearField(tenant.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := tu.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := tu.mutation.PhoneNumber(); ok {
		_spec.SetField(tenant.FieldPhoneNumber, field.TypeString, value)
	}
	if tu.mutation.PhoneNumberCleared() {
		_spec.ClearField(tenant.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := tu.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if tu.mutation.EmailCleared() {
		_spec.ClearField(tenant.FieldEmail, field.TypeString)
	}
	if tu.mutation.UnitCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tenant.UnitTable,
			Columns: []string{tenant.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.UnitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tenant.UnitTable,
			Columns: []string{tenant.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !tu.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetStatus sets the "status" field.
func (tuo *TenantUpdateOne) SetStatus(s string) *TenantUpdateOne {
	tuo.mutation.SetStatus(s)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableStatus(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetStatus(*s)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TenantUpdateOne) SetUpdatedAt(t time.Time) *TenantUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetUpdatedBy sets the "updated_by" field.
func (tuo *TenantUpdateOne) SetUpdatedBy(s string) *TenantUpdateOne {
	tuo.mutation.SetUpdatedBy(s)
	return tuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableUpdatedBy(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetUpdatedBy(*s)
	}
	return tuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (tuo *TenantUpdateOne) ClearUpdatedBy() *TenantUpdateOne {
	tuo.mutation.ClearUpdatedBy()
	return tuo
}

// SetUnitID sets the "unit_id" field.
func (tuo *TenantUpdateOne) SetUnitID(s string) *TenantUpdateOne {
	tuo.mutation.SetUnitID(s)
	return tuo
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableUnitID(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetUnitID(*s)
	}
	return tuo
}

// ClearUnitID clears the value of the "unit_id" field.
func (tuo *TenantUpdateOne) ClearUnitID() *TenantUpdateOne {
	tuo.mutation.ClearUnitID()
	return tuo
}

// SetName sets the "name" field.
func (tuo *TenantUpdateOne) SetName(s string) *TenantUpdateOne {
	tuo.mutation.SetName(s)
	return tuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableName(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetName(*s)
	}
	return tuo
}

// SetPhoneNumber sets the "phone_number" field.
func (tuo *TenantUpdateOne) SetPhoneNumber(s string) *TenantUpdateOne {
	tuo.mutation.SetPhoneNumber(s)
	return tuo
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillablePhoneNumber(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetPhoneNumber(*s)
	}
	return tuo
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (tuo *TenantUpdateOne) ClearPhoneNumber() *TenantUpdateOne {
	tuo.mutation.ClearPhoneNumber()
	return tuo
}

// SetEmail sets the "email" field.
func (tuo *TenantUpdateOne) SetEmail(s string) *TenantUpdateOne {
	tuo.mutation.SetEmail(s)
	return tuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableEmail(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetEmail(*s)
	}
	return tuo
}

// ClearEmail clears the value of the "email" field.
func (tuo *TenantUpdateOne) ClearEmail() *TenantUpdateOne {
	tuo.mutation.ClearEmail()
	return tuo
}

// SetUnit sets the "unit" edge to the Unit entity.
func (tuo *TenantUpdateOne) SetUnit(u *Unit) *TenantUpdateOne {
	return tuo.SetUnitID(u.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (tuo *TenantUpdateOne) AddInvoiceIDs(ids ...string) *TenantUpdateOne {
	tuo.mutation.AddInvoiceIDs(ids...)
	return tuo
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (tuo *TenantUpdateOne) AddInvoices(i ...*Invoice) *TenantUpdateOne {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tuo.AddInvoiceIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (tuo *TenantUpdateOne) Mutation() *TenantMutation {
	return tuo.mutation
}

// ClearUnit clears the "unit" edge to the Unit entity.
func (tuo *TenantUpdateOne) ClearUnit() *TenantUpdateOne {
	tuo.mutation.ClearUnit()
	return tuo
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (tuo *TenantUpdateOne) ClearInvoices() *TenantUpdateOne {
	tuo.mutation.ClearInvoices()
	return tuo
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (tuo *TenantUpdateOne) RemoveInvoiceIDs(ids ...string) *TenantUpdateOne {
	tuo.mutation.RemoveInvoiceIDs(ids...)
	return tuo
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (tuo *TenantUpdateOne) RemoveInvoices(i ...*Invoice) *TenantUpdateOne {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tuo.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (tuo *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Tenant entity.
func (tuo *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TenantUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TenantUpdateOne) check() error {
	if v, ok := tuo.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	return nil
}

func (tuo *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(tenant.FieldStatus, field.TypeString, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if tuo.mutation.CreatedByCleared() {
		_spec.ClearField(tenant.FieldCreatedBy, field.TypeString)
	}
	if value, ok := tuo.mutation.UpdatedBy(); ok {
		_spec.SetField(tenant.FieldUpdatedBy, field.TypeString, value)
	}
	if tuo.mutation.UpdatedByCleared() {
		_spec.ClearField(tenant.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := tuo.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.PhoneNumber(); ok {
		_spec.SetField(tenant.FieldPhoneNumber, field.TypeString, value)
	}
	if tuo.mutation.PhoneNumberCleared() {
		_spec.ClearField(tenant.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := tuo.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if tuo.mutation.EmailCleared() {
		_spec.ClearField(tenant.FieldEmail, field.TypeString)
	}
	if tuo.mutation.UnitCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tenant.UnitTable,
			Columns: []string{tenant.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.UnitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tenant.UnitTable,
			Columns: []string{tenant.UnitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !tuo.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.InvoicesTable,
			Columns: []string{tenant.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tenant{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
