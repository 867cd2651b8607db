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
	"github.com/rentdesk/rentdesk/ent/invoice"
	"github.com/rentdesk/rentdesk/ent/tenant"
	"github.com/shopspring/decimal"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (ic *InvoiceCreate) SetAccountID(s string) *InvoiceCreate {
	ic.mutation.SetAccountID(s)
	return ic
}

// SetStatus sets the "status" field.
func (ic *InvoiceCreate) SetStatus(s string) *InvoiceCreate {
	ic.mutation.SetStatus(s)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableStatus(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetStatus(*s)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InvoiceCreate) SetCreatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InvoiceCreate) SetUpdatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetCreatedBy sets the "created_by" field.
func (ic *InvoiceCreate) SetCreatedBy(s string) *InvoiceCreate {
	ic.mutation.SetCreatedBy(s)
	return ic
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedBy(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetCreatedBy(*s)
	}
	return ic
}

// SetUpdatedBy sets the "updated_by" field.
func (ic *InvoiceCreate) SetUpdatedBy(s string) *InvoiceCreate {
	ic.mutation.SetUpdatedBy(s)
	return ic
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedBy(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetUpdatedBy(*s)
	}
	return ic
}

// SetTenantID sets the "tenant_id" field.
func (ic *InvoiceCreate) SetTenantID(s string) *InvoiceCreate {
	ic.mutation.SetTenantID(s)
	return ic
}

// SetInvoiceNumber sets the "invoice_number" field.
func (ic *InvoiceCreate) SetInvoiceNumber(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceNumber(s)
	return ic
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableInvoiceNumber(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetInvoiceNumber(*s)
	}
	return ic
}

// SetInvoiceStatus sets the "invoice_status" field.
func (ic *InvoiceCreate) SetInvoiceStatus(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceStatus(s)
	return ic
}

// SetNillableInvoiceStatus sets the "invoice_status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableInvoiceStatus(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetInvoiceStatus(*s)
	}
	return ic
}

// SetAmount sets the "amount" field.
func (ic *InvoiceCreate) SetAmount(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetAmount(d)
	return ic
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableAmount(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetAmount(*d)
	}
	return ic
}

// SetAmountPaid sets the "amount_paid" field.
func (ic *InvoiceCreate) SetAmountPaid(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetAmountPaid(d)
	return ic
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetAmountPaid(*d)
	}
	return ic
}

// SetCurrency sets the "currency" field.
func (ic *InvoiceCreate) SetCurrency(s string) *InvoiceCreate {
	ic.mutation.SetCurrency(s)
	return ic
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCurrency(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetCurrency(*s)
	}
	return ic
}

// SetDueDate sets the "due_date" field.
func (ic *InvoiceCreate) SetDueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetDueDate(t)
	return ic
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableDueDate(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetDueDate(*t)
	}
	return ic
}

// SetPaidAt sets the "paid_at" field.
func (ic *InvoiceCreate) SetPaidAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetPaidAt(t)
	return ic
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaidAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetPaidAt(*t)
	}
	return ic
}

// SetPaymentMethod sets the "payment_method" field.
func (ic *InvoiceCreate) SetPaymentMethod(s string) *InvoiceCreate {
	ic.mutation.SetPaymentMethod(s)
	return ic
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentMethod(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetPaymentMethod(*s)
	}
	return ic
}

// SetPaymentReference sets the "payment_reference" field.
func (ic *InvoiceCreate) SetPaymentReference(s string) *InvoiceCreate {
	ic.mutation.SetPaymentReference(s)
	return ic
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentReference(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetPaymentReference(*s)
	}
	return ic
}

// SetDescription sets the "description" field.
func (ic *InvoiceCreate) SetDescription(s string) *InvoiceCreate {
	ic.mutation.SetDescription(s)
	return ic
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableDescription(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetDescription(*s)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InvoiceCreate) SetID(s string) *InvoiceCreate {
	ic.mutation.SetID(s)
	return ic
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (ic *InvoiceCreate) SetTenant(t *Tenant) *InvoiceCreate {
	return ic.SetTenantID(t.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (ic *InvoiceCreate) Mutation() *InvoiceMutation {
	return ic.mutation
}

// Save creates the Invoice in the database.
func (ic *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InvoiceCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InvoiceCreate) defaults() {
	if _, ok := ic.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.InvoiceStatus(); !ok {
		v := invoice.DefaultInvoiceStatus
		ic.mutation.SetInvoiceStatus(v)
	}
	if _, ok := ic.mutation.Amount(); !ok {
		v := invoice.DefaultAmount
		ic.mutation.SetAmount(v)
	}
	if _, ok := ic.mutation.AmountPaid(); !ok {
		v := invoice.DefaultAmountPaid
		ic.mutation.SetAmountPaid(v)
	}
	if _, ok := ic.mutation.Currency(); !ok {
		v := invoice.DefaultCurrency
		ic.mutation.SetCurrency(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InvoiceCreate) check() error {
	if _, ok := ic.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Invoice.account_id"`)}
	}
	if v, ok := ic.mutation.AccountID(); ok {
		if err := invoice.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.account_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if _, ok := ic.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Invoice.tenant_id"`)}
	}
	if v, ok := ic.mutation.TenantID(); ok {
		if err := invoice.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.tenant_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.InvoiceStatus(); !ok {
		return &ValidationError{Name: "invoice_status", err: errors.New(`ent: missing required field "Invoice.invoice_status"`)}
	}
	if _, ok := ic.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Invoice.amount"`)}
	}
	if _, ok := ic.mutation.AmountPaid(); !ok {
		return &ValidationError{Name: "amount_paid", err: errors.New(`ent: missing required field "Invoice.amount_paid"`)}
	}
	if _, ok := ic.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Invoice.currency"`)}
	}
	if _, ok := ic.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Invoice.tenant"`)}
	}
	return nil
}

func (ic *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Invoice.ID type: %T", _spec.ID.Value)
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	)
	_spec.OnConflict = ic.conflict
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ic.mutation.AccountID(); ok {
		_spec.SetField(invoice.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ic.mutation.CreatedBy(); ok {
		_spec.SetField(invoice.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := ic.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := ic.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := ic.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
		_node.InvoiceStatus = value
	}
	if value, ok := ic.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := ic.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
		_node.AmountPaid = value
	}
	if value, ok := ic.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := ic.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := ic.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := ic.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := ic.mutation.PaymentReference(); ok {
		_spec.SetField(invoice.FieldPaymentReference, field.TypeString, value)
		_node.PaymentReference = value
	}
	if value, ok := ic.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := ic.mutation.TenantIDs(); len(nodes) > 0 {
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
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (ic *InvoiceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertOne {
	ic.conflict = opts
	return &InvoiceUpsertOne{
		create: ic,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ic *InvoiceCreate) OnConflictColumns(columns ...string) *InvoiceUpsertOne {
	ic.conflict = append(ic.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertOne{
		create: ic,
	}
}

type (
	// InvoiceUpsertOne is the builder for "upsert"-ing
	//  one Invoice node.
	InvoiceUpsertOne struct {
		create *InvoiceCreate
	}

	// InvoiceUpsert is the "OnConflict" setter.
	InvoiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *InvoiceUpsert) SetStatus(v string) *InvoiceUpsert {
	u.Set(invoice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsert) SetUpdatedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *InvoiceUpsert) SetUpdatedBy(v string) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedBy() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *InvoiceUpsert) ClearUpdatedBy() *InvoiceUpsert {
	u.SetNull(invoice.FieldUpdatedBy)
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *InvoiceUpsert) SetTenantID(v string) *InvoiceUpsert {
	u.Set(invoice.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTenantID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTenantID)
	return u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsert) SetInvoiceNumber(v string) *InvoiceUpsert {
	u.Set(invoice.FieldInvoiceNumber, v)
	return u
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateInvoiceNumber() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldInvoiceNumber)
	return u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsert) ClearInvoiceNumber() *InvoiceUpsert {
	u.SetNull(invoice.FieldInvoiceNumber)
	return u
}

// SetInvoiceStatus sets the "invoice_status" field.
func (u *InvoiceUpsert) SetInvoiceStatus(v string) *InvoiceUpsert {
	u.Set(invoice.FieldInvoiceStatus, v)
	return u
}

// UpdateInvoiceStatus sets the "invoice_status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateInvoiceStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldInvoiceStatus)
	return u
}

// SetAmount sets the "amount" field.
func (u *InvoiceUpsert) SetAmount(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateAmount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldAmount)
	return u
}

// SetAmountPaid sets the "amount_paid" field.
func (u *InvoiceUpsert) SetAmountPaid(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldAmountPaid, v)
	return u
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateAmountPaid() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldAmountPaid)
	return u
}

// SetCurrency sets the "currency" field.
func (u *InvoiceUpsert) SetCurrency(v string) *InvoiceUpsert {
	u.Set(invoice.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateCurrency() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldCurrency)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsert) SetDueDate(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDueDate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsert) ClearDueDate() *InvoiceUpsert {
	u.SetNull(invoice.FieldDueDate)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *InvoiceUpsert) SetPaidAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaidAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *InvoiceUpsert) ClearPaidAt() *InvoiceUpsert {
	u.SetNull(invoice.FieldPaidAt)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsert) SetPaymentMethod(v string) *InvoiceUpsert {
	u.Set(invoice.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaymentMethod() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaymentMethod)
	return u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsert) ClearPaymentMethod() *InvoiceUpsert {
	u.SetNull(invoice.FieldPaymentMethod)
	return u
}

// SetPaymentReference sets the "payment_reference" field.
func (u *InvoiceUpsert) SetPaymentReference(v string) *InvoiceUpsert {
	u.Set(invoice.FieldPaymentReference, v)
	return u
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaymentReference() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaymentReference)
	return u
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *InvoiceUpsert) ClearPaymentReference() *InvoiceUpsert {
	u.SetNull(invoice.FieldPaymentReference)
	return u
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsert) SetDescription(v string) *InvoiceUpsert {
	u.Set(invoice.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDescription() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsert) ClearDescription() *InvoiceUpsert {
	u.SetNull(invoice.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertOne) UpdateNewValues() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoice.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(invoice.FieldAccountID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(invoice.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(invoice.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceUpsertOne) Ignore() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertOne) DoNothing() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreate.OnConflict
// documentation for more info.
func (u *InvoiceUpsertOne) Update(set func(*InvoiceUpsert)) *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertOne) SetStatus(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertOne) SetUpdatedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *InvoiceUpsertOne) SetUpdatedBy(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedBy() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *InvoiceUpsertOne) ClearUpdatedBy() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *InvoiceUpsertOne) SetTenantID(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTenantID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTenantID()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertOne) SetInvoiceNumber(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateInvoiceNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsertOne) ClearInvoiceNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetInvoiceStatus sets the "invoice_status" field.
func (u *InvoiceUpsertOne) SetInvoiceStatus(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceStatus(v)
	})
}

// UpdateInvoiceStatus sets the "invoice_status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateInvoiceStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceStatus()
	})
}

// SetAmount sets the "amount" field.
func (u *InvoiceUpsertOne) SetAmount(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *InvoiceUpsertOne) SetAmountPaid(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateAmountPaid() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetCurrency sets the "currency" field.
func (u *InvoiceUpsertOne) SetCurrency(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateCurrency() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCurrency()
	})
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsertOne) SetDueDate(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDueDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsertOne) ClearDueDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDueDate()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *InvoiceUpsertOne) SetPaidAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaidAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *InvoiceUpsertOne) ClearPaidAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaidAt()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsertOne) SetPaymentMethod(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaymentMethod() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsertOne) ClearPaymentMethod() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *InvoiceUpsertOne) SetPaymentReference(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaymentReference() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentReference()
	})
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *InvoiceUpsertOne) ClearPaymentReference() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentReference()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsertOne) SetDescription(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDescription() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsertOne) ClearDescription() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InvoiceUpsertOne.ID is not supported by MySQL driver. Use InvoiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Invoice entities in the database.
func (icb *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Invoice, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = icb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (icb *InvoiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertBulk {
	icb.conflict = opts
	return &InvoiceUpsertBulk{
		create: icb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (icb *InvoiceCreateBulk) OnConflictColumns(columns ...string) *InvoiceUpsertBulk {
	icb.conflict = append(icb.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertBulk{
		create: icb,
	}
}

// InvoiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Invoice nodes.
type InvoiceUpsertBulk struct {
	create *InvoiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) UpdateNewValues() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoice.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(invoice.FieldAccountID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(invoice.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(invoice.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) Ignore() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertBulk) DoNothing() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceUpsertBulk) Update(set func(*InvoiceUpsert)) *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertBulk) SetStatus(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertBulk) SetUpdatedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *InvoiceUpsertBulk) SetUpdatedBy(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedBy() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *InvoiceUpsertBulk) ClearUpdatedBy() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *InvoiceUpsertBulk) SetTenantID(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTenantID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTenantID()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertBulk) SetInvoiceNumber(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateInvoiceNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (u *InvoiceUpsertBulk) ClearInvoiceNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearInvoiceNumber()
	})
}

// SetInvoiceStatus sets the "invoice_status" field.
func (u *InvoiceUpsertBulk) SetInvoiceStatus(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceStatus(v)
	})
}

// UpdateInvoiceStatus sets the "invoice_status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateInvoiceStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceStatus()
	})
}

// SetAmount sets the "amount" field.
func (u *InvoiceUpsertBulk) SetAmount(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *InvoiceUpsertBulk) SetAmountPaid(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateAmountPaid() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetCurrency sets the "currency" field.
func (u *InvoiceUpsertBulk) SetCurrency(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateCurrency() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCurrency()
	})
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsertBulk) SetDueDate(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDueDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsertBulk) ClearDueDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDueDate()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *InvoiceUpsertBulk) SetPaidAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaidAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *InvoiceUpsertBulk) ClearPaidAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaidAt()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsertBulk) SetPaymentMethod(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaymentMethod() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsertBulk) ClearPaymentMethod() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *InvoiceUpsertBulk) SetPaymentReference(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaymentReference() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentReference()
	})
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *InvoiceUpsertBulk) ClearPaymentReference() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentReference()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsertBulk) SetDescription(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDescription() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsertBulk) ClearDescription() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InvoiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
