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
	"github.com/shopspring/decimal"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iu *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetStatus sets the "status" field.
func (iu *InvoiceUpdate) SetStatus(s string) *InvoiceUpdate {
	iu.mutation.SetStatus(s)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetStatus(*s)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InvoiceUpdate) SetUpdatedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// SetUpdatedBy sets the "updated_by" field.
func (iu *InvoiceUpdate) SetUpdatedBy(s string) *InvoiceUpdate {
	iu.mutation.SetUpdatedBy(s)
	return iu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableUpdatedBy(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetUpdatedBy(*s)
	}
	return iu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iu *InvoiceUpdate) ClearUpdatedBy() *InvoiceUpdate {
	iu.mutation.ClearUpdatedBy()
	return iu
}

// SetTenantID sets the "tenant_id" field.
func (iu *InvoiceUpdate) SetTenantID(s string) *InvoiceUpdate {
	iu.mutation.SetTenantID(s)
	return iu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTenantID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetTenantID(*s)
	}
	return iu
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iu *InvoiceUpdate) SetInvoiceNumber(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceNumber(s)
	return iu
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceNumber(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceNumber(*s)
	}
	return iu
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (iu *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	iu.mutation.ClearInvoiceNumber()
	return iu
}

// SetInvoiceStatus sets the "invoice_status" field.
func (iu *InvoiceUpdate) SetInvoiceStatus(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceStatus(s)
	return iu
}

// SetNillableInvoiceStatus sets the "invoice_status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceStatus(*s)
	}
	return iu
}

// SetAmount sets the "amount" field.
func (iu *InvoiceUpdate) SetAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetAmount(d)
	return iu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableAmount(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetAmount(*d)
	}
	return iu
}

// SetAmountPaid sets the "amount_paid" field.
func (iu *InvoiceUpdate) SetAmountPaid(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetAmountPaid(d)
	return iu
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetAmountPaid(*d)
	}
	return iu
}

// SetCurrency sets the "currency" field.
func (iu *InvoiceUpdate) SetCurrency(s string) *InvoiceUpdate {
	iu.mutation.SetCurrency(s)
	return iu
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableCurrency(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetCurrency(*s)
	}
	return iu
}

// SetDueDate sets the "due_date" field.
func (iu *InvoiceUpdate) SetDueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetDueDate(t)
	return iu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetDueDate(*t)
	}
	return iu
}

// ClearDueDate clears the value of the "due_date" field.
func (iu *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	iu.mutation.ClearDueDate()
	return iu
}

// SetPaidAt sets the "paid_at" field.
func (iu *InvoiceUpdate) SetPaidAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetPaidAt(t)
	return iu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaidAt(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetPaidAt(*t)
	}
	return iu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (iu *InvoiceUpdate) ClearPaidAt() *InvoiceUpdate {
	iu.mutation.ClearPaidAt()
	return iu
}

// SetPaymentMethod sets the "payment_method" field.
func (iu *InvoiceUpdate) SetPaymentMethod(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentMethod(s)
	return iu
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentMethod(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentMethod(*s)
	}
	return iu
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (iu *InvoiceUpdate) ClearPaymentMethod() *InvoiceUpdate {
	iu.mutation.ClearPaymentMethod()
	return iu
}

// SetPaymentReference sets the "payment_reference" field.
func (iu *InvoiceUpdate) SetPaymentReference(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentReference(s)
	return iu
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentReference(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentReference(*s)
	}
	return iu
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (iu *InvoiceUpdate) ClearPaymentReference() *InvoiceUpdate {
	iu.mutation.ClearPaymentReference()
	return iu
}

// SetDescription sets the "description" field.
func (iu *InvoiceUpdate) SetDescription(s string) *InvoiceUpdate {
	iu.mutation.SetDescription(s)
	return iu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDescription(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetDescription(*s)
	}
	return iu
}

// ClearDescription clears the value of the "description" field.
func (iu *InvoiceUpdate) ClearDescription() *InvoiceUpdate {
	iu.mutation.ClearDescription()
	return iu
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (iu *InvoiceUpdate) SetTenant(t *Tenant) *InvoiceUpdate {
	return iu.SetTenantID(t.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iu *InvoiceUpdate) Mutation() *InvoiceMutation {
	return iu.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (iu *InvoiceUpdate) ClearTenant() *InvoiceUpdate {
	iu.mutation.ClearTenant()
	return iu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InvoiceUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InvoiceUpdate) check() error {
	if v, ok := iu.mutation.TenantID(); ok {
		if err := invoice.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.tenant_id": %w`, err)}
		}
	}
	if _, ok := iu.mutation.TenantID(); iu.mutation.TenantCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "Invoice.tenant"`)
	}
	return nil
}

func (iu *InvoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iu.mutation.CreatedByCleared() {
		_spec.ClearField(invoice.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iu.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
	}
	if iu.mutation.UpdatedByCleared() {
		_spec.ClearField(invoice.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iu.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if iu.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := iu.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iu.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
	}
	if value, ok := iu.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := iu.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if iu.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := iu.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if iu.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := iu.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if iu.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := iu.mutation.PaymentReference(); ok {
		_spec.SetField(invoice.FieldPaymentReference, field.TypeString, value)
	}
	if iu.mutation.PaymentReferenceCleared() {
		_spec.ClearField(invoice.FieldPaymentReference, field.TypeString)
	}
	if value, ok := iu.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if iu.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if iu.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.TenantTable,
			Columns: []string{invoice.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.TenantTable,
			Columns: []string{invoice.TenantColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetStatus sets the "status" field.
func (iuo *InvoiceUpdateOne) SetStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetStatus(s)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetStatus(*s)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InvoiceUpdateOne) SetUpdatedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// SetUpdatedBy sets the "updated_by" field.
func (iuo *InvoiceUpdateOne) SetUpdatedBy(s string) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedBy(s)
	return iuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableUpdatedBy(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetUpdatedBy(*s)
	}
	return iuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iuo *InvoiceUpdateOne) ClearUpdatedBy() *InvoiceUpdateOne {
	iuo.mutation.ClearUpdatedBy()
	return iuo
}

// SetTenantID sets the "tenant_id" field.
func (iuo *InvoiceUpdateOne) SetTenantID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetTenantID(s)
	return iuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTenantID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetTenantID(*s)
	}
	return iuo
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iuo *InvoiceUpdateOne) SetInvoiceNumber(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceNumber(s)
	return iuo
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceNumber(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceNumber(*s)
	}
	return iuo
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (iuo *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	iuo.mutation.ClearInvoiceNumber()
	return iuo
}

// SetInvoiceStatus sets the "invoice_status" field.
func (iuo *InvoiceUpdateOne) SetInvoiceStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceStatus(s)
	return iuo
}

// SetNillableInvoiceStatus sets the "invoice_status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceStatus(*s)
	}
	return iuo
}

// SetAmount sets the "amount" field.
func (iuo *InvoiceUpdateOne) SetAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetAmount(d)
	return iuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableAmount(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetAmount(*d)
	}
	return iuo
}

// SetAmountPaid sets the "amount_paid" field.
func (iuo *InvoiceUpdateOne) SetAmountPaid(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetAmountPaid(d)
	return iuo
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetAmountPaid(*d)
	}
	return iuo
}

// SetCurrency sets the "currency" field.
func (iuo *InvoiceUpdateOne) SetCurrency(s string) *InvoiceUpdateOne {
	iuo.mutation.SetCurrency(s)
	return iuo
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableCurrency(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetCurrency(*s)
	}
	return iuo
}

// SetDueDate sets the "due_date" field.
func (iuo *InvoiceUpdateOne) SetDueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetDueDate(t)
	return iuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetDueDate(*t)
	}
	return iuo
}

// ClearDueDate clears the value of the "due_date" field.
func (iuo *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	iuo.mutation.ClearDueDate()
	return iuo
}

// SetPaidAt sets the "paid_at" field.
func (iuo *InvoiceUpdateOne) SetPaidAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetPaidAt(t)
	return iuo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaidAt(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetPaidAt(*t)
	}
	return iuo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (iuo *InvoiceUpdateOne) ClearPaidAt() *InvoiceUpdateOne {
	iuo.mutation.ClearPaidAt()
	return iuo
}

// SetPaymentMethod sets the "payment_method" field.
func (iuo *InvoiceUpdateOne) SetPaymentMethod(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentMethod(s)
	return iuo
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentMethod(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentMethod(*s)
	}
	return iuo
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (iuo *InvoiceUpdateOne) ClearPaymentMethod() *InvoiceUpdateOne {
	iuo.mutation.ClearPaymentMethod()
	return iuo
}

// SetPaymentReference sets the "payment_reference" field.
func (iuo *InvoiceUpdateOne) SetPaymentReference(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentReference(s)
	return iuo
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentReference(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentReference(*s)
	}
	return iuo
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (iuo *InvoiceUpdateOne) ClearPaymentReference() *InvoiceUpdateOne {
	iuo.mutation.ClearPaymentReference()
	return iuo
}

// SetDescription sets the "description" field.
func (iuo *InvoiceUpdateOne) SetDescription(s string) *InvoiceUpdateOne {
	iuo.mutation.SetDescription(s)
	return iuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDescription(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetDescription(*s)
	}
	return iuo
}

// ClearDescription clears the value of the "description" field.
func (iuo *InvoiceUpdateOne) ClearDescription() *InvoiceUpdateOne {
	iuo.mutation.ClearDescription()
	return iuo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (iuo *InvoiceUpdateOne) SetTenant(t *Tenant) *InvoiceUpdateOne {
	return iuo.SetTenantID(t.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iuo *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return iuo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (iuo *InvoiceUpdateOne) ClearTenant() *InvoiceUpdateOne {
	iuo.mutation.ClearTenant()
	return iuo
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iuo *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Invoice entity.
func (iuo *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InvoiceUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InvoiceUpdateOne) check() error {
	if v, ok := iuo.mutation.TenantID(); ok {
		if err := invoice.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.tenant_id": %w`, err)}
		}
	}
	if _, ok := iuo.mutation.TenantID(); iuo.mutation.TenantCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "Invoice.tenant"`)
	}
	return nil
}

func (iuo *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iuo.mutation.CreatedByCleared() {
		_spec.ClearField(invoice.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iuo.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
	}
	if iuo.mutation.UpdatedByCleared() {
		_spec.ClearField(invoice.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iuo.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if iuo.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := iuo.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := iuo.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if iuo.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := iuo.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if iuo.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := iuo.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if iuo.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := iuo.mutation.PaymentReference(); ok {
		_spec.SetField(invoice.FieldPaymentReference, field.TypeString, value)
	}
	if iuo.mutation.PaymentReferenceCleared() {
		_spec.ClearField(invoice.FieldPaymentReference, field.TypeString)
	}
	if value, ok := iuo.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if iuo.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if iuo.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.TenantTable,
			Columns: []string{invoice.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.TenantTable,
			Columns: []string{invoice.TenantColumn},
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
	_node = &Invoice{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
