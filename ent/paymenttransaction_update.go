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
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// PaymentTransactionUpdate is the builder for updating PaymentTransaction entities.
type PaymentTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentTransactionMutation
}

// Where appends a list predicates to the PaymentTransactionUpdate builder.
func (ptu *PaymentTransactionUpdate) Where(ps ...predicate.PaymentTransaction) *PaymentTransactionUpdate {
	ptu.mutation.Where(ps...)
	return ptu
}

// SetStatus sets the "status" field.
func (ptu *PaymentTransactionUpdate) SetStatus(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetStatus(s)
	return ptu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableStatus(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetStatus(*s)
	}
	return ptu
}

// SetUpdatedAt sets the "updated_at" field.
func (ptu *PaymentTransactionUpdate) SetUpdatedAt(t time.Time) *PaymentTransactionUpdate {
	ptu.mutation.SetUpdatedAt(t)
	return ptu
}

// SetUpdatedBy sets the "updated_by" field.
func (ptu *PaymentTransactionUpdate) SetUpdatedBy(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetUpdatedBy(s)
	return ptu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableUpdatedBy(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetUpdatedBy(*s)
	}
	return ptu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ptu *PaymentTransactionUpdate) ClearUpdatedBy() *PaymentTransactionUpdate {
	ptu.mutation.ClearUpdatedBy()
	return ptu
}

// SetInvoiceID sets the "invoice_id" field.
func (ptu *PaymentTransactionUpdate) SetInvoiceID(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetInvoiceID(s)
	return ptu
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableInvoiceID(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetInvoiceID(*s)
	}
	return ptu
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (ptu *PaymentTransactionUpdate) ClearInvoiceID() *PaymentTransactionUpdate {
	ptu.mutation.ClearInvoiceID()
	return ptu
}

// SetPaymentMethod sets the "payment_method" field.
func (ptu *PaymentTransactionUpdate) SetPaymentMethod(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetPaymentMethod(s)
	return ptu
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillablePaymentMethod(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetPaymentMethod(*s)
	}
	return ptu
}

// SetTransactionStatus sets the "transaction_status" field.
func (ptu *PaymentTransactionUpdate) SetTransactionStatus(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetTransactionStatus(s)
	return ptu
}

// SetNillableTransactionStatus sets the "transaction_status" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableTransactionStatus(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetTransactionStatus(*s)
	}
	return ptu
}

// SetAmount sets the "amount" field.
func (ptu *PaymentTransactionUpdate) SetAmount(d decimal.Decimal) *PaymentTransactionUpdate {
	ptu.mutation.SetAmount(d)
	return ptu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableAmount(d *decimal.Decimal) *PaymentTransactionUpdate {
	if d != nil {
		ptu.SetAmount(*d)
	}
	return ptu
}

// SetCurrency sets the "currency" field.
func (ptu *PaymentTransactionUpdate) SetCurrency(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetCurrency(s)
	return ptu
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillableCurrency(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetCurrency(*s)
	}
	return ptu
}

// SetPayerPhone sets the "payer_phone" field.
func (ptu *PaymentTransactionUpdate) SetPayerPhone(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetPayerPhone(s)
	return ptu
}

// SetNillablePayerPhone sets the "payer_phone" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillablePayerPhone(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetPayerPhone(*s)
	}
	return ptu
}

// ClearPayerPhone clears the value of the "payer_phone" field.
func (ptu *PaymentTransactionUpdate) ClearPayerPhone() *PaymentTransactionUpdate {
	ptu.mutation.ClearPayerPhone()
	return ptu
}

// SetPayerName sets the "payer_name" field.
func (ptu *PaymentTransactionUpdate) SetPayerName(s string) *PaymentTransactionUpdate {
	ptu.mutation.SetPayerName(s)
	return ptu
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillablePayerName(s *string) *PaymentTransactionUpdate {
	if s != nil {
		ptu.SetPayerName(*s)
	}
	return ptu
}

// ClearPayerName clears the value of the "payer_name" field.
func (ptu *PaymentTransactionUpdate) ClearPayerName() *PaymentTransactionUpdate {
	ptu.mutation.ClearPayerName()
	return ptu
}

// SetPaidAt sets the "paid_at" field.
func (ptu *PaymentTransactionUpdate) SetPaidAt(t time.Time) *PaymentTransactionUpdate {
	ptu.mutation.SetPaidAt(t)
	return ptu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (ptu *PaymentTransactionUpdate) SetNillablePaidAt(t *time.Time) *PaymentTransactionUpdate {
	if t != nil {
		ptu.SetPaidAt(*t)
	}
	return ptu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (ptu *PaymentTransactionUpdate) ClearPaidAt() *PaymentTransactionUpdate {
	ptu.mutation.ClearPaidAt()
	return ptu
}

// SetMetadata sets the "metadata" field.
func (ptu *PaymentTransactionUpdate) SetMetadata(t types.Metadata) *PaymentTransactionUpdate {
	ptu.mutation.SetMetadata(t)
	return ptu
}

// ClearMetadata clears the value of the "metadata" field.
func (ptu *PaymentTransactionUpdate) ClearMetadata() *PaymentTransactionUpdate {
	ptu.mutation.ClearMetadata()
	return ptu
}

// Mutation returns the PaymentTransactionMutation object of the builder.
func (ptu *PaymentTransactionUpdate) Mutation() *PaymentTransactionMutation {
	return ptu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ptu *PaymentTransactionUpdate) Save(ctx context.Context) (int, error) {
	ptu.defaults()
	return withHooks(ctx, ptu.sqlSave, ptu.mutation, ptu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ptu *PaymentTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := ptu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ptu *PaymentTransactionUpdate) Exec(ctx context.Context) error {
	_, err := ptu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ptu *PaymentTransactionUpdate) ExecX(ctx context.Context) {
	if err := ptu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ptu *PaymentTransactionUpdate) defaults() {
	if _, ok := ptu.mutation.UpdatedAt(); !ok {
		v := paymenttransaction.UpdateDefaultUpdatedAt()
		ptu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ptu *PaymentTransactionUpdate) check() error {
	if v, ok := ptu.mutation.PaymentMethod(); ok {
		if err := paymenttransaction.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.payment_method": %w`, err)}
		}
	}
	return nil
}

func (ptu *PaymentTransactionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ptu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymenttransaction.Table, paymenttransaction.Columns, sqlgraph.NewFieldSpec(paymenttransaction.FieldID, field.TypeString))
	if ps := ptu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ptu.mutation.Status(); ok {
		_spec.SetField(paymenttransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := ptu.mutation.UpdatedAt(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if ptu.mutation.CreatedByCleared() {
		_spec.ClearField(paymenttransaction.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ptu.mutation.UpdatedBy(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedBy, field.TypeString, value)
	}
	if ptu.mutation.UpdatedByCleared() {
		_spec.ClearField(paymenttransaction.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ptu.mutation.InvoiceID(); ok {
		_spec.SetField(paymenttransaction.FieldInvoiceID, field.TypeString, value)
	}
	if ptu.mutation.InvoiceIDCleared() {
		_spec.ClearField(paymenttransaction.FieldInvoiceID, field.TypeString)
	}
	if value, ok := ptu.mutation.PaymentMethod(); ok {
		_spec.SetField(paymenttransaction.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := ptu.mutation.TransactionStatus(); ok {
		_spec.SetField(paymenttransaction.FieldTransactionStatus, field.TypeString, value)
	}
	if value, ok := ptu.mutation.Amount(); ok {
		_spec.SetField(paymenttransaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := ptu.mutation.Currency(); ok {
		_spec.SetField(paymenttransaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := ptu.mutation.PayerPhone(); ok {
		_spec.SetField(paymenttransaction.FieldPayerPhone, field.TypeString, value)
	}
	if ptu.mutation.PayerPhoneCleared() {
		_spec.ClearField(paymenttransaction.FieldPayerPhone, field.TypeString)
	}
	if value, ok := ptu.mutation.PayerName(); ok {
		_spec.SetField(paymenttransaction.FieldPayerName, field.TypeString, value)
	}
	if ptu.mutation.PayerNameCleared() {
		_spec.ClearField(paymenttransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := ptu.mutation.PaidAt(); ok {
		_spec.SetField(paymenttransaction.FieldPaidAt, field.TypeTime, value)
	}
	if ptu.mutation.PaidAtCleared() {
		_spec.ClearField(paymenttransaction.FieldPaidAt, field.TypeTime)
	}
	if value, ok := ptu.mutation.Metadata(); ok {
		_spec.SetField(paymenttransaction.FieldMetadata, field.TypeOther, value)
	}
	if ptu.mutation.MetadataCleared() {
		_spec.ClearField(paymenttransaction.FieldMetadata, field.TypeOther)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ptu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymenttransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ptu.mutation.done = true
	return n, nil
}

// PaymentTransactionUpdateOne is the builder for updating a single PaymentTransaction entity.
type PaymentTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentTransactionMutation
}

// SetStatus sets the "status" field.
func (ptuo *PaymentTransactionUpdateOne) SetStatus(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetStatus(s)
	return ptuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableStatus(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetStatus(*s)
	}
	return ptuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ptuo *PaymentTransactionUpdateOne) SetUpdatedAt(t time.Time) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetUpdatedAt(t)
	return ptuo
}

// SetUpdatedBy sets the "updated_by" field.
func (ptuo *PaymentTransactionUpdateOne) SetUpdatedBy(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetUpdatedBy(s)
	return ptuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableUpdatedBy(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetUpdatedBy(*s)
	}
	return ptuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ptuo *PaymentTransactionUpdateOne) ClearUpdatedBy() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearUpdatedBy()
	return ptuo
}

// SetInvoiceID sets the "invoice_id" field.
func (ptuo *PaymentTransactionUpdateOne) SetInvoiceID(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetInvoiceID(s)
	return ptuo
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableInvoiceID(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetInvoiceID(*s)
	}
	return ptuo
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (ptuo *PaymentTransactionUpdateOne) ClearInvoiceID() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearInvoiceID()
	return ptuo
}

// SetPaymentMethod sets the "payment_method" field.
func (ptuo *PaymentTransactionUpdateOne) SetPaymentMethod(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetPaymentMethod(s)
	return ptuo
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillablePaymentMethod(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetPaymentMethod(*s)
	}
	return ptuo
}

// SetTransactionStatus sets the "transaction_status" field.
func (ptuo *PaymentTransactionUpdateOne) SetTransactionStatus(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetTransactionStatus(s)
	return ptuo
}

// SetNillableTransactionStatus sets the "transaction_status" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableTransactionStatus(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetTransactionStatus(*s)
	}
	return ptuo
}

// SetAmount sets the "amount" field.
func (ptuo *PaymentTransactionUpdateOne) SetAmount(d decimal.Decimal) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetAmount(d)
	return ptuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableAmount(d *decimal.Decimal) *PaymentTransactionUpdateOne {
	if d != nil {
		ptuo.SetAmount(*d)
	}
	return ptuo
}

// SetCurrency sets the "currency" field.
func (ptuo *PaymentTransactionUpdateOne) SetCurrency(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetCurrency(s)
	return ptuo
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillableCurrency(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetCurrency(*s)
	}
	return ptuo
}

// SetPayerPhone sets the "payer_phone" field.
func (ptuo *PaymentTransactionUpdateOne) SetPayerPhone(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetPayerPhone(s)
	return ptuo
}

// SetNillablePayerPhone sets the "payer_phone" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillablePayerPhone(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetPayerPhone(*s)
	}
	return ptuo
}

// ClearPayerPhone clears the value of the "payer_phone" field.
func (ptuo *PaymentTransactionUpdateOne) ClearPayerPhone() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearPayerPhone()
	return ptuo
}

// SetPayerName sets the "payer_name" field.
func (ptuo *PaymentTransactionUpdateOne) SetPayerName(s string) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetPayerName(s)
	return ptuo
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillablePayerName(s *string) *PaymentTransactionUpdateOne {
	if s != nil {
		ptuo.SetPayerName(*s)
	}
	return ptuo
}

// ClearPayerName clears the value of the "payer_name" field.
func (ptuo *PaymentTransactionUpdateOne) ClearPayerName() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearPayerName()
	return ptuo
}

// SetPaidAt sets the "paid_at" field.
func (ptuo *PaymentTransactionUpdateOne) SetPaidAt(t time.Time) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetPaidAt(t)
	return ptuo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (ptuo *PaymentTransactionUpdateOne) SetNillablePaidAt(t *time.Time) *PaymentTransactionUpdateOne {
	if t != nil {
		ptuo.SetPaidAt(*t)
	}
	return ptuo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (ptuo *PaymentTransactionUpdateOne) ClearPaidAt() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearPaidAt()
	return ptuo
}

// SetMetadata sets the "metadata" field.
func (ptuo *PaymentTransactionUpdateOne) SetMetadata(t types.Metadata) *PaymentTransactionUpdateOne {
	ptuo.mutation.SetMetadata(t)
	return ptuo
}

// ClearMetadata clears the value of the "metadata" field.
func (ptuo *PaymentTransactionUpdateOne) ClearMetadata() *PaymentTransactionUpdateOne {
	ptuo.mutation.ClearMetadata()
	return ptuo
}

// Mutation returns the PaymentTransactionMutation object of the builder.
func (ptuo *PaymentTransactionUpdateOne) Mutation() *PaymentTransactionMutation {
	return ptuo.mutation
}

// Where appends a list predicates to the PaymentTransactionUpdate builder.
func (ptuo *PaymentTransactionUpdateOne) Where(ps ...predicate.PaymentTransaction) *PaymentTransactionUpdateOne {
	ptuo.mutation.Where(ps...)
	return ptuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ptuo *PaymentTransactionUpdateOne) Select(field string, fields ...string) *PaymentTransactionUpdateOne {
	ptuo.fields = append([]string{field}, fields...)
	return ptuo
}

// Save executes the query and returns the updated PaymentTransaction entity.
func (ptuo *PaymentTransactionUpdateOne) Save(ctx context.Context) (*PaymentTransaction, error) {
	ptuo.defaults()
	return withHooks(ctx, ptuo.sqlSave, ptuo.mutation, ptuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ptuo *PaymentTransactionUpdateOne) SaveX(ctx context.Context) *PaymentTransaction {
	node, err := ptuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ptuo *PaymentTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := ptuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ptuo *PaymentTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := ptuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ptuo *PaymentTransactionUpdateOne) defaults() {
	if _, ok := ptuo.mutation.UpdatedAt(); !ok {
		v := paymenttransaction.UpdateDefaultUpdatedAt()
		ptuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ptuo *PaymentTransactionUpdateOne) check() error {
	if v, ok := ptuo.mutation.PaymentMethod(); ok {
		if err := paymenttransaction.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "PaymentTransaction.payment_method": %w`, err)}
		}
	}
	return nil
}

func (ptuo *PaymentTransactionUpdateOne) sqlSave(ctx context.Context) (_node *PaymentTransaction, err error) {
	if err := ptuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymenttransaction.Table, paymenttransaction.Columns, sqlgraph.NewFieldSpec(paymenttransaction.FieldID, field.TypeString))
	id, ok := ptuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ptuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymenttransaction.FieldID)
		for _, f := range fields {
			if !paymenttransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymenttransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ptuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ptuo.mutation.Status(); ok {
		_spec.SetField(paymenttransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := ptuo.mutation.UpdatedAt(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if ptuo.mutation.CreatedByCleared() {
		_spec.ClearField(paymenttransaction.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ptuo.mutation.UpdatedBy(); ok {
		_spec.SetField(paymenttransaction.FieldUpdatedBy, field.TypeString, value)
	}
	if ptuo.mutation.UpdatedByCleared() {
		_spec.ClearField(paymenttransaction.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ptuo.mutation.InvoiceID(); ok {
		_spec.SetField(paymenttransaction.FieldInvoiceID, field.TypeString, value)
	}
	if ptuo.mutation.InvoiceIDCleared() {
		_spec.ClearField(paymenttransaction.FieldInvoiceID, field.TypeString)
	}
	if value, ok := ptuo.mutation.PaymentMethod(); ok {
		_spec.SetField(paymenttransaction.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := ptuo.mutation.TransactionStatus(); ok {
		_spec.SetField(paymenttransaction.FieldTransactionStatus, field.TypeString, value)
	}
	if value, ok := ptuo.mutation.Amount(); ok {
		_spec.SetField(paymenttransaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := ptuo.mutation.Currency(); ok {
		_spec.SetField(paymenttransaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := ptuo.mutation.PayerPhone(); ok {
		_spec.SetField(paymenttransaction.FieldPayerPhone, field.TypeString, value)
	}
	if ptuo.mutation.PayerPhoneCleared() {
		_spec.ClearField(paymenttransaction.FieldPayerPhone, field.TypeString)
	}
	if value, ok := ptuo.mutation.PayerName(); ok {
		_spec.SetField(paymenttransaction.FieldPayerName, field.TypeString, value)
	}
	if ptuo.mutation.PayerNameCleared() {
		_spec.ClearField(paymenttransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := ptuo.mutation.PaidAt(); ok {
		_spec.SetField(paymenttransaction.FieldPaidAt, field.TypeTime, value)
	}
	if ptuo.mutation.PaidAtCleared() {
		_spec.ClearField(paymenttransaction.FieldPaidAt, field.TypeTime)
	}
	if value, ok := ptuo.mutation.Metadata(); ok {
		_spec.SetField(paymenttransaction.FieldMetadata, field.TypeOther, value)
	}
	if ptuo.mutation.MetadataCleared() {
		_spec.ClearField(paymenttransaction.FieldMetadata, field.TypeOther)
	}
	_node = &PaymentTransaction{config: ptuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ptuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymenttransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ptuo.mutation.done = true
	return _node, nil
}
