// Code generated by ent, DO NOT EDIT.

package smsnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rentdesk/rentdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldAccountID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldUpdatedBy, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldTenantID, v))
}

// SmsType applies equality check predicate on the "sms_type" field. It's identical to SmsTypeEQ.
func SmsType(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldSmsType, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldPhoneNumber, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldMessage, v))
}

// DeliveryStatus applies equality check predicate on the "delivery_status" field. It's identical to DeliveryStatusEQ.
func DeliveryStatus(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldDeliveryStatus, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldFailureReason, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldAccountID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDIsNil applies the IsNil predicate on the "tenant_id" field.
func TenantIDIsNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIsNull(FieldTenantID))
}

// TenantIDNotNil applies the NotNil predicate on the "tenant_id" field.
func TenantIDNotNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotNull(FieldTenantID))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldTenantID, v))
}

// SmsTypeEQ applies the EQ predicate on the "sms_type" field.
func SmsTypeEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldSmsType, v))
}

// SmsTypeNEQ applies the NEQ predicate on the "sms_type" field.
func SmsTypeNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldSmsType, v))
}

// SmsTypeIn applies the In predicate on the "sms_type" field.
func SmsTypeIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldSmsType, vs...))
}

// SmsTypeNotIn applies the NotIn predicate on the "sms_type" field.
func SmsTypeNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldSmsType, vs...))
}

// SmsTypeGT applies the GT predicate on the "sms_type" field.
func SmsTypeGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldSmsType, v))
}

// SmsTypeGTE applies the GTE predicate on the "sms_type" field.
func SmsTypeGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldSmsType, v))
}

// SmsTypeLT applies the LT predicate on the "sms_type" field.
func SmsTypeLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldSmsType, v))
}

// SmsTypeLTE applies the LTE predicate on the "sms_type" field.
func SmsTypeLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldSmsType, v))
}

// SmsTypeContains applies the Contains predicate on the "sms_type" field.
func SmsTypeContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldSmsType, v))
}

// SmsTypeHasPrefix applies the HasPrefix predicate on the "sms_type" field.
func SmsTypeHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldSmsType, v))
}

// SmsTypeHasSuffix applies the HasSuffix predicate on the "sms_type" field.
func SmsTypeHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldSmsType, v))
}

// SmsTypeEqualFold applies the EqualFold predicate on the "sms_type" field.
func SmsTypeEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldSmsType, v))
}

// SmsTypeContainsFold applies the ContainsFold predicate on the "sms_type" field.
func SmsTypeContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldSmsType, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldMessage, v))
}

// DeliveryStatusEQ applies the EQ predicate on the "delivery_status" field.
func DeliveryStatusEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusNEQ applies the NEQ predicate on the "delivery_status" field.
func DeliveryStatusNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusIn applies the In predicate on the "delivery_status" field.
func DeliveryStatusIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldDeliveryStatus, vs...))
}

// DeliveryStatusNotIn applies the NotIn predicate on the "delivery_status" field.
func DeliveryStatusNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldDeliveryStatus, vs...))
}

// DeliveryStatusGT applies the GT predicate on the "delivery_status" field.
func DeliveryStatusGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldDeliveryStatus, v))
}

// DeliveryStatusGTE applies the GTE predicate on the "delivery_status" field.
func DeliveryStatusGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldDeliveryStatus, v))
}

// DeliveryStatusLT applies the LT predicate on the "delivery_status" field.
func DeliveryStatusLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldDeliveryStatus, v))
}

// DeliveryStatusLTE applies the LTE predicate on the "delivery_status" field.
func DeliveryStatusLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldDeliveryStatus, v))
}

// DeliveryStatusContains applies the Contains predicate on the "delivery_status" field.
func DeliveryStatusContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldDeliveryStatus, v))
}

// DeliveryStatusHasPrefix applies the HasPrefix predicate on the "delivery_status" field.
func DeliveryStatusHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldDeliveryStatus, v))
}

// DeliveryStatusHasSuffix applies the HasSuffix predicate on the "delivery_status" field.
func DeliveryStatusHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldDeliveryStatus, v))
}

// DeliveryStatusEqualFold applies the EqualFold predicate on the "delivery_status" field.
func DeliveryStatusEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldDeliveryStatus, v))
}

// DeliveryStatusContainsFold applies the ContainsFold predicate on the "delivery_status" field.
func DeliveryStatusContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldDeliveryStatus, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.SmsNotification {
	return predicate.SmsNotification(sql.FieldContainsFold(FieldFailureReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SmsNotification) predicate.SmsNotification {
	return predicate.SmsNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SmsNotification) predicate.SmsNotification {
	return predicate.SmsNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SmsNotification) predicate.SmsNotification {
	return predicate.SmsNotification(sql.NotPredicates(p))
}
