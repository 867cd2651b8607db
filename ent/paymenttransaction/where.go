// Code generated by ent, DO NOT EDIT.

package paymenttransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldAccountID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldUpdatedBy, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldIdempotencyKey, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldExternalID, v))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldInvoiceID, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPaymentMethod, v))
}

// TransactionStatus applies equality check predicate on the "transaction_status" field. It's identical to TransactionStatusEQ.
func TransactionStatus(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldTransactionStatus, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCurrency, v))
}

// PayerPhone applies equality check predicate on the "payer_phone" field. It's identical to PayerPhoneEQ.
func PayerPhone(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPayerPhone, v))
}

// PayerName applies equality check predicate on the "payer_name" field. It's identical to PayerNameEQ.
func PayerName(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPaidAt, v))
}

// Metadata applies equality check predicate on the "metadata" field. It's identical to MetadataEQ.
func Metadata(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldMetadata, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldAccountID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldExternalID, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// InvoiceIDGT applies the GT predicate on the "invoice_id" field.
func InvoiceIDGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldInvoiceID, v))
}

// InvoiceIDGTE applies the GTE predicate on the "invoice_id" field.
func InvoiceIDGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldInvoiceID, v))
}

// InvoiceIDLT applies the LT predicate on the "invoice_id" field.
func InvoiceIDLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldInvoiceID, v))
}

// InvoiceIDLTE applies the LTE predicate on the "invoice_id" field.
func InvoiceIDLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldInvoiceID, v))
}

// InvoiceIDContains applies the Contains predicate on the "invoice_id" field.
func InvoiceIDContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldInvoiceID, v))
}

// InvoiceIDHasPrefix applies the HasPrefix predicate on the "invoice_id" field.
func InvoiceIDHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldInvoiceID, v))
}

// InvoiceIDHasSuffix applies the HasSuffix predicate on the "invoice_id" field.
func InvoiceIDHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldInvoiceID, v))
}

// InvoiceIDIsNil applies the IsNil predicate on the "invoice_id" field.
func InvoiceIDIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldInvoiceID))
}

// InvoiceIDNotNil applies the NotNil predicate on the "invoice_id" field.
func InvoiceIDNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldInvoiceID))
}

// InvoiceIDEqualFold applies the EqualFold predicate on the "invoice_id" field.
func InvoiceIDEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldInvoiceID, v))
}

// InvoiceIDContainsFold applies the ContainsFold predicate on the "invoice_id" field.
func InvoiceIDContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldInvoiceID, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// TransactionStatusEQ applies the EQ predicate on the "transaction_status" field.
func TransactionStatusEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldTransactionStatus, v))
}

// TransactionStatusNEQ applies the NEQ predicate on the "transaction_status" field.
func TransactionStatusNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldTransactionStatus, v))
}

// TransactionStatusIn applies the In predicate on the "transaction_status" field.
func TransactionStatusIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldTransactionStatus, vs...))
}

// TransactionStatusNotIn applies the NotIn predicate on the "transaction_status" field.
func TransactionStatusNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldTransactionStatus, vs...))
}

// TransactionStatusGT applies the GT predicate on the "transaction_status" field.
func TransactionStatusGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldTransactionStatus, v))
}

// TransactionStatusGTE applies the GTE predicate on the "transaction_status" field.
func TransactionStatusGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldTransactionStatus, v))
}

// TransactionStatusLT applies the LT predicate on the "transaction_status" field.
func TransactionStatusLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldTransactionStatus, v))
}

// TransactionStatusLTE applies the LTE predicate on the "transaction_status" field.
func TransactionStatusLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldTransactionStatus, v))
}

// TransactionStatusContains applies the Contains predicate on the "transaction_status" field.
func TransactionStatusContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldTransactionStatus, v))
}

// TransactionStatusHasPrefix applies the HasPrefix predicate on the "transaction_status" field.
func TransactionStatusHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldTransactionStatus, v))
}

// TransactionStatusHasSuffix applies the HasSuffix predicate on the "transaction_status" field.
func TransactionStatusHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldTransactionStatus, v))
}

// TransactionStatusEqualFold applies the EqualFold predicate on the "transaction_status" field.
func TransactionStatusEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldTransactionStatus, v))
}

// TransactionStatusContainsFold applies the ContainsFold predicate on the "transaction_status" field.
func TransactionStatusContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldTransactionStatus, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldCurrency, v))
}

// PayerPhoneEQ applies the EQ predicate on the "payer_phone" field.
func PayerPhoneEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPayerPhone, v))
}

// PayerPhoneNEQ applies the NEQ predicate on the "payer_phone" field.
func PayerPhoneNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldPayerPhone, v))
}

// PayerPhoneIn applies the In predicate on the "payer_phone" field.
func PayerPhoneIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldPayerPhone, vs...))
}

// PayerPhoneNotIn applies the NotIn predicate on the "payer_phone" field.
func PayerPhoneNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldPayerPhone, vs...))
}

// PayerPhoneGT applies the GT predicate on the "payer_phone" field.
func PayerPhoneGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldPayerPhone, v))
}

// PayerPhoneGTE applies the GTE predicate on the "payer_phone" field.
func PayerPhoneGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldPayerPhone, v))
}

// PayerPhoneLT applies the LT predicate on the "payer_phone" field.
func PayerPhoneLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldPayerPhone, v))
}

// PayerPhoneLTE applies the LTE predicate on the "payer_phone" field.
func PayerPhoneLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldPayerPhone, v))
}

// PayerPhoneContains applies the Contains predicate on the "payer_phone" field.
func PayerPhoneContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldPayerPhone, v))
}

// PayerPhoneHasPrefix applies the HasPrefix predicate on the "payer_phone" field.
func PayerPhoneHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldPayerPhone, v))
}

// PayerPhoneHasSuffix applies the HasSuffix predicate on the "payer_phone" field.
func PayerPhoneHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldPayerPhone, v))
}

// PayerPhoneIsNil applies the IsNil predicate on the "payer_phone" field.
func PayerPhoneIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldPayerPhone))
}

// PayerPhoneNotNil applies the NotNil predicate on the "payer_phone" field.
func PayerPhoneNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldPayerPhone))
}

// PayerPhoneEqualFold applies the EqualFold predicate on the "payer_phone" field.
func PayerPhoneEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldPayerPhone, v))
}

// PayerPhoneContainsFold applies the ContainsFold predicate on the "payer_phone" field.
func PayerPhoneContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldPayerPhone, v))
}

// PayerNameEQ applies the EQ predicate on the "payer_name" field.
func PayerNameEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PayerNameNEQ applies the NEQ predicate on the "payer_name" field.
func PayerNameNEQ(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldPayerName, v))
}

// PayerNameIn applies the In predicate on the "payer_name" field.
func PayerNameIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldPayerName, vs...))
}

// PayerNameNotIn applies the NotIn predicate on the "payer_name" field.
func PayerNameNotIn(vs ...string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldPayerName, vs...))
}

// PayerNameGT applies the GT predicate on the "payer_name" field.
func PayerNameGT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldPayerName, v))
}

// PayerNameGTE applies the GTE predicate on the "payer_name" field.
func PayerNameGTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldPayerName, v))
}

// PayerNameLT applies the LT predicate on the "payer_name" field.
func PayerNameLT(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldPayerName, v))
}

// PayerNameLTE applies the LTE predicate on the "payer_name" field.
func PayerNameLTE(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldPayerName, v))
}

// PayerNameContains applies the Contains predicate on the "payer_name" field.
func PayerNameContains(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContains(FieldPayerName, v))
}

// PayerNameHasPrefix applies the HasPrefix predicate on the "payer_name" field.
func PayerNameHasPrefix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasPrefix(FieldPayerName, v))
}

// PayerNameHasSuffix applies the HasSuffix predicate on the "payer_name" field.
func PayerNameHasSuffix(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldHasSuffix(FieldPayerName, v))
}

// PayerNameIsNil applies the IsNil predicate on the "payer_name" field.
func PayerNameIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldPayerName))
}

// PayerNameNotNil applies the NotNil predicate on the "payer_name" field.
func PayerNameNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldPayerName))
}

// PayerNameEqualFold applies the EqualFold predicate on the "payer_name" field.
func PayerNameEqualFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEqualFold(FieldPayerName, v))
}

// PayerNameContainsFold applies the ContainsFold predicate on the "payer_name" field.
func PayerNameContainsFold(v string) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldContainsFold(FieldPayerName, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldPaidAt))
}

// MetadataEQ applies the EQ predicate on the "metadata" field.
func MetadataEQ(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldEQ(FieldMetadata, v))
}

// MetadataNEQ applies the NEQ predicate on the "metadata" field.
func MetadataNEQ(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNEQ(FieldMetadata, v))
}

// MetadataIn applies the In predicate on the "metadata" field.
func MetadataIn(vs ...types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIn(FieldMetadata, vs...))
}

// MetadataNotIn applies the NotIn predicate on the "metadata" field.
func MetadataNotIn(vs ...types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotIn(FieldMetadata, vs...))
}

// MetadataGT applies the GT predicate on the "metadata" field.
func MetadataGT(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGT(FieldMetadata, v))
}

// MetadataGTE applies the GTE predicate on the "metadata" field.
func MetadataGTE(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldGTE(FieldMetadata, v))
}

// MetadataLT applies the LT predicate on the "metadata" field.
func MetadataLT(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLT(FieldMetadata, v))
}

// MetadataLTE applies the LTE predicate on the "metadata" field.
func MetadataLTE(v types.Metadata) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldLTE(FieldMetadata, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentTransaction) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentTransaction) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentTransaction) predicate.PaymentTransaction {
	return predicate.PaymentTransaction(sql.NotPredicates(p))
}
