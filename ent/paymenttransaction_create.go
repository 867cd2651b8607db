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
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// PaymentTransactionCreate is the builder for creating a PaymentTransaction entity.
type PaymentTransactionCreate struct {
	config
	mutation *PaymentTransactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (ptc *PaymentTransactionCreate) SetAccountID(s string) *PaymentTransactionCreate {
	ptc.mutation.SetAccountID(s)
	return ptc
}

// SetStatus sets the "status" field.
func (ptc *PaymentTransactionCreate) SetStatus(s string) *PaymentTransactionCreate {
	ptc.mutation.SetStatus(s)
	return ptc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableStatus(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetStatus(*s)
	}
	return ptc
}

// SetCreatedAt sets the "created_at" field.
func (ptc *PaymentTransactionCreate) SetCreatedAt(t time.Time) *PaymentTransactionCreate {
	ptc.mutation.SetCreatedAt(t)
	return ptc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableCreatedAt(t *time.Time) *PaymentTransactionCreate {
	if t != nil {
		ptc.SetCreatedAt(*t)
	}
	return ptc
}

// SetUpdatedAt sets the "updated_at" field.
func (ptc *PaymentTransactionCreate) SetUpdatedAt(t time.Time) *PaymentTransactionCreate {
	ptc.mutation.SetUpdatedAt(t)
	return ptc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableUpdatedAt(t *time.Time) *PaymentTransactionCreate {
	if t != nil {
		ptc.SetUpdatedAt(*t)
	}
	return ptc
}

// SetCreatedBy sets the "created_by" field.
func (ptc *PaymentTransactionCreate) SetCreatedBy(s string) *PaymentTransactionCreate {
	ptc.mutation.SetCreatedBy(s)
	return ptc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableCreatedBy(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetCreatedBy(*s)
	}
	return ptc
}

// SetUpdatedBy sets the "updated_by" field.
func (ptc *PaymentTransactionCreate) SetUpdatedBy(s string) *PaymentTransactionCreate {
	ptc.mutation.SetUpdatedBy(s)
	return ptc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableUpdatedBy(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetUpdatedBy(*s)
	}
	return ptc
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (ptc *PaymentTransactionCreate) SetIdempotencyKey(s string) *PaymentTransactionCreate {
	ptc.mutation.SetIdempotencyKey(s)
	return ptc
}

// SetExternalID sets the "external_id" field.
func (ptc *PaymentTransactionCreate) SetExternalID(s string) *PaymentTransactionCreate {
	ptc.mutation.SetExternalID(s)
	return ptc
}

// SetInvoiceID sets the "invoice_id" field.
func (ptc *PaymentTransactionCreate) SetInvoiceID(s string) *PaymentTransactionCreate {
	ptc.mutation.SetInvoiceID(s)
	return ptc
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableInvoiceID(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetInvoiceID(*s)
	}
	return ptc
}

// SetPaymentMethod sets the "payment_method" field.
func (ptc *PaymentTransactionCreate) SetPaymentMethod(s string) *PaymentTransactionCreate {
	ptc.mutation.SetPaymentMethod(s)
	return ptc
}

// SetTransactionStatus sets the "transaction_status" field.
func (ptc *PaymentTransactionCreate) SetTransactionStatus(s string) *PaymentTransactionCreate {
	ptc.mutation.SetTransactionStatus(s)
	return ptc
}

// SetNillableTransactionStatus sets the "transaction_status" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableTransactionStatus(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetTransactionStatus(*s)
	}
	return ptc
}

// SetAmount sets the "amount" field.
func (ptc *PaymentTransactionCreate) SetAmount(d decimal.Decimal) *PaymentTransactionCreate {
	ptc.mutation.SetAmount(d)
	return ptc
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableAmount(d *decimal.Decimal) *PaymentTransactionCreate {
	if d != nil {
		ptc.SetAmount(*d)
	}
	return ptc
}

// SetCurrency sets the "currency" field.
func (ptc *PaymentTransactionCreate) SetCurrency(s string) *PaymentTransactionCreate {
	ptc.mutation.SetCurrency(s)
	return ptc
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillableCurrency(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetCurrency(*s)
	}
	return ptc
}

// SetPayerPhone sets the "payer_phone" field.
func (ptc *PaymentTransactionCreate) SetPayerPhone(s string) *PaymentTransactionCreate {
	ptc.mutation.SetPayerPhone(s)
	return ptc
}

// SetNillablePayerPhone sets the "payer_phone" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillablePayerPhone(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetPayerPhone(*s)
	}
	return ptc
}

// SetPayerName sets the "payer_name" field.
func (ptc *PaymentTransactionCreate) SetPayerName(s string) *PaymentTransactionCreate {
	ptc.mutation.SetPayerName(s)
	return ptc
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillablePayerName(s *string) *PaymentTransactionCreate {
	if s != nil {
		ptc.SetPayerName(*s)
	}
	return ptc
}

// SetPaidAt sets the "paid_at" field.
func (ptc *PaymentTransactionCreate) SetPaidAt(t time.Time) *PaymentTransactionCreate {
	ptc.mutation.SetPaidAt(t)
	return ptc
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (ptc *PaymentTransactionCreate) SetNillablePaidAt(t *time.Time) *PaymentTransactionCreate {
	if t != nil {
		ptc.SetPaidAt(*t)
	}
	return ptc
}

// SetMetadata sets the "metadata" field.
func (ptc *PaymentTransactionCreate) SetMetadata(t types.Metadata) *PaymentTransactionCreate {
	ptc.mutation.SetMetadata(t)
	return ptc
}

// SetID sets the "id" field.
func (ptc *PaymentTransactionCreate) SetID(s string) *PaymentTransactionCreate {
	ptc.mutation.SetID(s)
	return ptc
}

// Mutation returns the PaymentTransactionMutation object of the builder.
func (ptc *PaymentTransactionCreate) Mutation() *PaymentTransactionMutation {
	return ptc.mutation
}

// Save creates the PaymentTransaction in the database.
func (ptc *PaymentTransactionCreate) Save(ctx context.Context) (*PaymentTransaction, error) {
	ptc.defaults()
	return withHooks(ctx, ptc.sqlSave, ptc.mutation, ptc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ptc *PaymentTransactionCreate) SaveX(ctx context.Context) *PaymentTransaction {
	v, err := ptc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ptc *PaymentTransactionCreate) Exec(ctx context.Context) error {
	_, err := ptc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ptc *PaymentTransactionCreate) ExecX(ctx context.Context) {
	if err := ptc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ptc *PaymentTransactionCreate) defaults() {
	if _, ok := ptc.mutation.Status(); !ok {
		v := paymenttransaction.DefaultStatus
		ptc.mutation.SetStatus(v)
	}
	if _, ok := ptc.mutation.CreatedAt(); !ok {
		v := paymenttransaction.DefaultCreatedAt()
		ptc.mutation.SetCreatedAt(v)
	}
	if _, ok := ptc.mutation.UpdatedAt(); !ok {
		v := paymenttransaction.DefaultUpdatedAt()
		ptc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ptc.mutation.TransactionStatus(); !ok {
		v := paymenttransaction.DefaultTransactionStatus
		ptc.mutation.SetTransactionStatus(v)
	}
	if _, ok := ptc.mutation.Amount(); !ok {
		v := paymenttransaction.DefaultAmount
		ptc.mutation.SetAmount(v)
	}
	if _, ok := ptc.mutation.Currency(); !ok {
		v := paymenttransaction.DefaultCurrency
		ptc.mutation.SetCurrency(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ptc *PaymentTransactionCreate) check() error {
	if _, ok := ptc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "PaymentTransaction.account_id"`)}
	}
	if v, ok := ptc.mutation.AccountID(); ok {
		if err := paymenttransaction.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.account_id": %w`, err)}
		}
	}
	if _, ok := ptc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PaymentTransaction.status"`)}
	}
	if _, ok := ptc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentTransaction.created_at"`)}
	}
	if _, ok := ptc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentTransaction.updated_at"`)}
	}
	if _, ok := ptc.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "PaymentTransaction.idempotency_key"`)}
	}
	if v, ok := ptc.mutation.IdempotencyKey(); ok {
		if err := paymenttransaction.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.idempotency_key": %w`, err)}
		}
	}
	if _, ok := ptc.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "PaymentTransaction.external_id"`)}
	}
	if v, ok := ptc.mutation.ExternalID(); ok {
		if err := paymenttransaction.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.external_id": %w`, err)}
		}
	}
	if _, ok := ptc.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "PaymentTransaction.payment_method"`)}
	}
	if v, ok := ptc.mutation.PaymentMethod(); ok {
		if err := paymenttransaction.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.payment_method": %w`, err)}
		}
	}
	if _, ok := ptc.mutation.TransactionStatus(); !ok {
		return &ValidationError{Name: "transaction_status", err: errors.New(`ent: missing required field "PaymentTransaction.transaction_status"`)}
	}
	if _, ok := ptc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PaymentTransaction.amount"`)}
	}
	if _, ok := ptc.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "PaymentTransaction.currency"`)}
	}
	return nil
}

func (ptc *PaymentTransactionCreate) sqlSave(ctx context.Context) (*PaymentTransaction, error) {
	if err := ptc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ptc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ptc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PaymentTransaction.ID type: %T", _spec.ID.Value)
		}
	}
	ptc.mutation.id = &_node.ID
	ptc.mutation.done = true
	return _node, nil
}

func (ptc *PaymentTransactionCreate) createSpec() (*PaymentTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentTransaction{config: ptc.config}
		_spec = sqlgraph.NewCreateSpec(paymenttransaction.Table, sqlgraph.NewFieldSpec(paymenttransaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = ptc.conflict
	if id, ok := ptc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ptc.mutation.AccountID(); ok {
		_spec.SetField(paymenttransaction.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := ptc.mutation.Status(); ok {
		_spec.SetField(paymenttransaction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ptc.mutation.CreatedAt(); ok {
		_spec.SetField(paymenttransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ptc.mutation.UpdatedAt(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ptc.mutation.CreatedBy(); ok {
		_spec.SetField(paymenttransaction.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := ptc.mutation.UpdatedBy(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := ptc.mutation.IdempotencyKey(); ok {
		_spec.SetField(paymenttransaction.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := ptc.mutation.ExternalID(); ok {
		_spec.SetField(paymenttransaction.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := ptc.mutation.InvoiceID(); ok {
		_spec.SetField(paymenttransaction.FieldInvoiceID, field.TypeString, value)
		_node.InvoiceID = &value
	}
	if value, ok := ptc.mutation.PaymentMethod(); ok {
		_spec.SetField(paymenttransaction.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := ptc.mutation.TransactionStatus(); ok {
		_spec.SetField(paymenttransaction.FieldTransactionStatus, field.TypeString, value)
		_node.TransactionStatus = value
	}
	if value, ok := ptc.mutation.Amount(); ok {
		_spec.SetField(paymenttransaction.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := ptc.mutation.Currency(); ok {
		_spec.SetField(paymenttransaction.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := ptc.mutation.PayerPhone(); ok {
		_spec.SetField(paymenttransaction.FieldPayerPhone, field.TypeString, value)
		_node.PayerPhone = value
	}
	if value, ok := ptc.mutation.PayerName(); ok {
		_spec.SetField(paymenttransaction.FieldPayerName, field.TypeString, value)
		_node.PayerName = value
	}
	if value, ok := ptc.mutation.PaidAt(); ok {
		_spec.SetField(paymenttransaction.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := ptc.mutation.Metadata(); ok {
		_spec.SetField(paymenttransaction.FieldMetadata, field.TypeOther, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentTransaction.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentTransactionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (ptc *PaymentTransactionCreate) OnConflict(opts ...sql.ConflictOption) *PaymentTransactionUpsertOne {
	ptc.conflict = opts
	return &PaymentTransactionUpsertOne{
		create: ptc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ptc *PaymentTransactionCreate) OnConflictColumns(columns ...string) *PaymentTransactionUpsertOne {
	ptc.conflict = append(ptc.conflict, sql.ConflictColumns(columns...))
	return &PaymentTransactionUpsertOne{
		create: ptc,
	}
}

type (
	// PaymentTransactionUpsertOne is the builder for "upsert"-ing
	//  one PaymentTransaction node.
	PaymentTransactionUpsertOne struct {
		create *PaymentTransactionCreate
	}

	// PaymentTransactionUpsert is the "OnConflict" setter.
	PaymentTransactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PaymentTransactionUpsert) SetStatus(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateStatus() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentTransactionUpsert) SetUpdatedAt(v time.Time) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateUpdatedAt() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PaymentTransactionUpsert) SetUpdatedBy(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateUpdatedBy() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PaymentTransactionUpsert) ClearUpdatedBy() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldUpdatedBy)
	return u
}

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentTransactionUpsert) SetInvoiceID(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldInvoiceID, v)
	return u
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateInvoiceID() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldInvoiceID)
	return u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (u *PaymentTransactionUpsert) ClearInvoiceID() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldInvoiceID)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *PaymentTransactionUpsert) SetPaymentMethod(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdatePaymentMethod() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldPaymentMethod)
	return u
}

// SetTransactionStatus sets the "transaction_status" field.
func (u *PaymentTransactionUpsert) SetTransactionStatus(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldTransactionStatus, v)
	return u
}

// UpdateTransactionStatus sets the "transaction_status" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateTransactionStatus() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldTransactionStatus)
	return u
}

// SetAmount sets the "amount" field.
func (u *PaymentTransactionUpsert) SetAmount(v decimal.Decimal) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateAmount() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldAmount)
	return u
}

// SetCurrency sets the "currency" field.
func (u *PaymentTransactionUpsert) SetCurrency(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateCurrency() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldCurrency)
	return u
}

// SetPayerPhone sets the "payer_phone" field.
func (u *PaymentTransactionUpsert) SetPayerPhone(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldPayerPhone, v)
	return u
}

// UpdatePayerPhone sets the "payer_phone" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdatePayerPhone() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldPayerPhone)
	return u
}

// ClearPayerPhone clears the value of the "payer_phone" field.
func (u *PaymentTransactionUpsert) ClearPayerPhone() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldPayerPhone)
	return u
}

// SetPayerName sets the "payer_name" field.
func (u *PaymentTransactionUpsert) SetPayerName(v string) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldPayerName, v)
	return u
}

// UpdatePayerName sets the "payer_name" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdatePayerName() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldPayerName)
	return u
}

// ClearPayerName clears the value of the "payer_name" field.
func (u *PaymentTransactionUpsert) ClearPayerName() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldPayerName)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentTransactionUpsert) SetPaidAt(v time.Time) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdatePaidAt() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PaymentTransactionUpsert) ClearPaidAt() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldPaidAt)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *PaymentTransactionUpsert) SetMetadata(v types.Metadata) *PaymentTransactionUpsert {
	u.Set(paymenttransaction.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PaymentTransactionUpsert) UpdateMetadata() *PaymentTransactionUpsert {
	u.SetExcluded(paymenttransaction.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PaymentTransactionUpsert) ClearMetadata() *PaymentTransactionUpsert {
	u.SetNull(paymenttransaction.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymenttransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentTransactionUpsertOne) UpdateNewValues() *PaymentTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymenttransaction.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(paymenttransaction.FieldAccountID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paymenttransaction.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(paymenttransaction.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.IdempotencyKey(); exists {
			s.SetIgnore(paymenttransaction.FieldIdempotencyKey)
		}
		if _, exists := u.create.mutation.ExternalID(); exists {
			s.SetIgnore(paymenttransaction.FieldExternalID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentTransactionUpsertOne) Ignore() *PaymentTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentTransactionUpsertOne) DoNothing() *PaymentTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentTransactionCreate.OnConflict
// documentation for more info.
func (u *PaymentTransactionUpsertOne) Update(set func(*PaymentTransactionUpsert)) *PaymentTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PaymentTransactionUpsertOne) SetStatus(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateStatus() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentTransactionUpsertOne) SetUpdatedAt(v time.Time) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateUpdatedAt() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PaymentTransactionUpsertOne) SetUpdatedBy(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateUpdatedBy() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PaymentTransactionUpsertOne) ClearUpdatedBy() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentTransactionUpsertOne) SetInvoiceID(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateInvoiceID() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateInvoiceID()
	})
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (u *PaymentTransactionUpsertOne) ClearInvoiceID() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearInvoiceID()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *PaymentTransactionUpsertOne) SetPaymentMethod(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdatePaymentMethod() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetTransactionStatus sets the "transaction_status" field.
func (u *PaymentTransactionUpsertOne) SetTransactionStatus(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetTransactionStatus(v)
	})
}

// UpdateTransactionStatus sets the "transaction_status" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateTransactionStatus() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateTransactionStatus()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentTransactionUpsertOne) SetAmount(v decimal.Decimal) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateAmount() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *PaymentTransactionUpsertOne) SetCurrency(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateCurrency() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateCurrency()
	})
}

// SetPayerPhone sets the "payer_phone" field.
func (u *PaymentTransactionUpsertOne) SetPayerPhone(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPayerPhone(v)
	})
}

// UpdatePayerPhone sets the "payer_phone" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdatePayerPhone() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePayerPhone()
	})
}

// ClearPayerPhone clears the value of the "payer_phone" field.
func (u *PaymentTransactionUpsertOne) ClearPayerPhone() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPayerPhone()
	})
}

// SetPayerName sets the "payer_name" field.
func (u *PaymentTransactionUpsertOne) SetPayerName(v string) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPayerName(v)
	})
}

// UpdatePayerName sets the "payer_name" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdatePayerName() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePayerName()
	})
}

// ClearPayerName clears the value of the "payer_name" field.
func (u *PaymentTransactionUpsertOne) ClearPayerName() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPayerName()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentTransactionUpsertOne) SetPaidAt(v time.Time) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdatePaidAt() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PaymentTransactionUpsertOne) ClearPaidAt() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPaidAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PaymentTransactionUpsertOne) SetMetadata(v types.Metadata) *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PaymentTransactionUpsertOne) UpdateMetadata() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PaymentTransactionUpsertOne) ClearMetadata() *PaymentTransactionUpsertOne {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *PaymentTransactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentTransactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentTransactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentTransactionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentTransactionUpsertOne.ID is not supported by MySQL driver. Use PaymentTransactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentTransactionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentTransactionCreateBulk is the builder for creating many PaymentTransaction entities in bulk.
type PaymentTransactionCreateBulk struct {
	config
	err      error
	builders []*PaymentTransactionCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentTransaction entities in the database.
func (ptcb *PaymentTransactionCreateBulk) Save(ctx context.Context) ([]*PaymentTransaction, error) {
	if ptcb.err != nil {
		return nil, ptcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ptcb.builders))
	nodes := make([]*PaymentTransaction, len(ptcb.builders))
	mutators := make([]Mutator, len(ptcb.builders))
	for i := range ptcb.builders {
		func(i int, root context.Context) {
			builder := ptcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentTransactionMutation)
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
					_, err = mutators[i+1].Mutate(root, ptcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ptcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ptcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ptcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ptcb *PaymentTransactionCreateBulk) SaveX(ctx context.Context) []*PaymentTransaction {
	v, err := ptcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ptcb *PaymentTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := ptcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ptcb *PaymentTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := ptcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentTransaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentTransactionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (ptcb *PaymentTransactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentTransactionUpsertBulk {
	ptcb.conflict = opts
	return &PaymentTransactionUpsertBulk{
		create: ptcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ptcb *PaymentTransactionCreateBulk) OnConflictColumns(columns ...string) *PaymentTransactionUpsertBulk {
	ptcb.conflict = append(ptcb.conflict, sql.ConflictColumns(columns...))
	return &PaymentTransactionUpsertBulk{
		create: ptcb,
	}
}

// PaymentTransactionUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentTransaction nodes.
type PaymentTransactionUpsertBulk struct {
	create *PaymentTransactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymenttransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentTransactionUpsertBulk) UpdateNewValues() *PaymentTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymenttransaction.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(paymenttransaction.FieldAccountID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paymenttransaction.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(paymenttransaction.FieldCreatedBy)
			}
			if _, exists := b.mutation.IdempotencyKey(); exists {
				s.SetIgnore(paymenttransaction.FieldIdempotencyKey)
			}
			if _, exists := b.mutation.ExternalID(); exists {
				s.SetIgnore(paymenttransaction.FieldExternalID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentTransaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentTransactionUpsertBulk) Ignore() *PaymentTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentTransactionUpsertBulk) DoNothing() *PaymentTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentTransactionCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentTransactionUpsertBulk) Update(set func(*PaymentTransactionUpsert)) *PaymentTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PaymentTransactionUpsertBulk) SetStatus(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateStatus() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentTransactionUpsertBulk) SetUpdatedAt(v time.Time) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateUpdatedAt() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PaymentTransactionUpsertBulk) SetUpdatedBy(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateUpdatedBy() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PaymentTransactionUpsertBulk) ClearUpdatedBy() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetInvoiceID sets the "invoice_id" field.
func (u *PaymentTransactionUpsertBulk) SetInvoiceID(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetInvoiceID(v)
	})
}

// UpdateInvoiceID sets the "invoice_id" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateInvoiceID() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateInvoiceID()
	})
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (u *PaymentTransactionUpsertBulk) ClearInvoiceID() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearInvoiceID()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *PaymentTransactionUpsertBulk) SetPaymentMethod(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdatePaymentMethod() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetTransactionStatus sets the "transaction_status" field.
func (u *PaymentTransactionUpsertBulk) SetTransactionStatus(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetTransactionStatus(v)
	})
}

// UpdateTransactionStatus sets the "transaction_status" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateTransactionStatus() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateTransactionStatus()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentTransactionUpsertBulk) SetAmount(v decimal.Decimal) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateAmount() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *PaymentTransactionUpsertBulk) SetCurrency(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateCurrency() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateCurrency()
	})
}

// SetPayerPhone sets the "payer_phone" field.
func (u *PaymentTransactionUpsertBulk) SetPayerPhone(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPayerPhone(v)
	})
}

// UpdatePayerPhone sets the "payer_phone" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdatePayerPhone() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePayerPhone()
	})
}

// ClearPayerPhone clears the value of the "payer_phone" field.
func (u *PaymentTransactionUpsertBulk) ClearPayerPhone() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPayerPhone()
	})
}

// SetPayerName sets the "payer_name" field.
func (u *PaymentTransactionUpsertBulk) SetPayerName(v string) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPayerName(v)
	})
}

// UpdatePayerName sets the "payer_name" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdatePayerName() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePayerName()
	})
}

// ClearPayerName clears the value of the "payer_name" field.
func (u *PaymentTransactionUpsertBulk) ClearPayerName() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPayerName()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentTransactionUpsertBulk) SetPaidAt(v time.Time) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdatePaidAt() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PaymentTransactionUpsertBulk) ClearPaidAt() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearPaidAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PaymentTransactionUpsertBulk) SetMetadata(v types.Metadata) *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PaymentTransactionUpsertBulk) UpdateMetadata() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PaymentTransactionUpsertBulk) ClearMetadata() *PaymentTransactionUpsertBulk {
	return u.Update(func(s *PaymentTransactionUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *PaymentTransactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentTransactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentTransactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentTransactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
