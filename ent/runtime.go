// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rentdesk/rentdesk/ent/account"
	"github.com/rentdesk/rentdesk/ent/invoice"
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/ent/property"
	"github.com/rentdesk/rentdesk/ent/schema"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
	"github.com/rentdesk/rentdesk/ent/tenant"
	"github.com/rentdesk/rentdesk/ent/unit"
	"github.com/rentdesk/rentdesk/ent/user"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[1].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescActive is the schema descriptor for active field.
	accountDescActive := accountFields[2].Descriptor()
	// account.DefaultActive holds the default value on creation for the active field.
	account.DefaultActive = accountDescActive.Default.(bool)
	// accountDescDemo is the schema descriptor for demo field.
	accountDescDemo := accountFields[3].Descriptor()
	// account.DefaultDemo holds the default value on creation for the demo field.
	account.DefaultDemo = accountDescDemo.Default.(bool)
	// accountDescStatus is the schema descriptor for status field.
	accountDescStatus := accountFields[4].Descriptor()
	// account.DefaultStatus holds the default value on creation for the status field.
	account.DefaultStatus = accountDescStatus.Default.(string)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[5].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[6].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescAccountID is the schema descriptor for account_id field.
	invoiceDescAccountID := invoiceMixinFields0[0].Descriptor()
	// invoice.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	invoice.AccountIDValidator = invoiceDescAccountID.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceMixinFields0[1].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields0[2].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields0[3].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescTenantID is the schema descriptor for tenant_id field.
	invoiceDescTenantID := invoiceFields[1].Descriptor()
	// invoice.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoice.TenantIDValidator = invoiceDescTenantID.Validators[0].(func(string) error)
	// invoiceDescInvoiceStatus is the schema descriptor for invoice_status field.
	invoiceDescInvoiceStatus := invoiceFields[3].Descriptor()
	// invoice.DefaultInvoiceStatus holds the default value on creation for the invoice_status field.
	invoice.DefaultInvoiceStatus = invoiceDescInvoiceStatus.Default.(string)
	// invoiceDescAmount is the schema descriptor for amount field.
	invoiceDescAmount := invoiceFields[4].Descriptor()
	// invoice.DefaultAmount holds the default value on creation for the amount field.
	invoice.DefaultAmount = invoiceDescAmount.Default.(decimal.Decimal)
	// invoiceDescAmountPaid is the schema descriptor for amount_paid field.
	invoiceDescAmountPaid := invoiceFields[5].Descriptor()
	// invoice.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	invoice.DefaultAmountPaid = invoiceDescAmountPaid.Default.(decimal.Decimal)
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[6].Descriptor()
	// invoice.DefaultCurrency holds the default value on creation for the currency field.
	invoice.DefaultCurrency = invoiceDescCurrency.Default.(string)
	paymenttransactionMixin := schema.PaymentTransaction{}.Mixin()
	paymenttransactionMixinFields0 := paymenttransactionMixin[0].Fields()
	_ = paymenttransactionMixinFields0
	paymenttransactionFields := schema.PaymentTransaction{}.Fields()
	_ = paymenttransactionFields
	// paymenttransactionDescAccountID is the schema descriptor for account_id field.
	paymenttransactionDescAccountID := paymenttransactionMixinFields0[0].Descriptor()
	// paymenttransaction.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	paymenttransaction.AccountIDValidator = paymenttransactionDescAccountID.Validators[0].(func(string) error)
	// paymenttransactionDescStatus is the schema descriptor for status field.
	paymenttransactionDescStatus := paymenttransactionMixinFields0[1].Descriptor()
	// paymenttransaction.DefaultStatus holds the default value on creation for the status field.
	paymenttransaction.DefaultStatus = paymenttransactionDescStatus.Default.(string)
	// paymenttransactionDescCreatedAt is the schema descriptor for created_at field.
	paymenttransactionDescCreatedAt := paymenttransactionMixinFields0[2].Descriptor()
	// paymenttransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymenttransaction.DefaultCreatedAt = paymenttransactionDescCreatedAt.Default.(func() time.Time)
	// paymenttransactionDescUpdatedAt is the schema descriptor for updated_at field.
	paymenttransactionDescUpdatedAt := paymenttransactionMixinFields0[3].Descriptor()
	// paymenttransaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymenttransaction.DefaultUpdatedAt = paymenttransactionDescUpdatedAt.Default.(func() time.Time)
	// paymenttransaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymenttransaction.UpdateDefaultUpdatedAt = paymenttransactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymenttransactionDescIdempotencyKey is the schema descriptor for idempotency_key field.
	paymenttransactionDescIdempotencyKey := paymenttransactionFields[1].Descriptor()
	// paymenttransaction.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	paymenttransaction.IdempotencyKeyValidator = paymenttransactionDescIdempotencyKey.Validators[0].(func(string) error)
	// paymenttransactionDescExternalID is the schema descriptor for external_id field.
	paymenttransactionDescExternalID := paymenttransactionFields[2].Descriptor()
	// paymenttransaction.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	paymenttransaction.ExternalIDValidator = paymenttransactionDescExternalID.Validators[0].(func(string) error)
	// paymenttransactionDescPaymentMethod is the schema descriptor for payment_method field.
	paymenttransactionDescPaymentMethod := paymenttransactionFields[4].Descriptor()
	// paymenttransaction.PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	paymenttransaction.PaymentMethodValidator = paymenttransactionDescPaymentMethod.Validators[0].(func(string) error)
	// paymenttransactionDescTransactionStatus is the schema descriptor for transaction_status field.
	paymenttransactionDescTransactionStatus := paymenttransactionFields[5].Descriptor()
	// paymenttransaction.DefaultTransactionStatus holds the default value on creation for the transaction_status field.
	paymenttransaction.DefaultTransactionStatus = paymenttransactionDescTransactionStatus.Default.(string)
	// paymenttransactionDescAmount is the schema descriptor for amount field.
	paymenttransactionDescAmount := paymenttransactionFields[6].Descriptor()
	// paymenttransaction.DefaultAmount holds the default value on creation for the amount field.
	paymenttransaction.DefaultAmount = paymenttransactionDescAmount.Default.(decimal.Decimal)
	// paymenttransactionDescCurrency is the schema descriptor for currency field.
	paymenttransactionDescCurrency := paymenttransactionFields[7].Descriptor()
	// paymenttransaction.DefaultCurrency holds the default value on creation for the currency field.
	paymenttransaction.DefaultCurrency = paymenttransactionDescCurrency.Default.(string)
	propertyMixin := schema.Property{}.Mixin()
	propertyMixinFields0 := propertyMixin[0].Fields()
	_ = propertyMixinFields0
	propertyFields := schema.Property{}.Fields()
	_ = propertyFields
	// propertyDescAccountID is the schema descriptor for account_id field.
	propertyDescAccountID := propertyMixinFields0[0].Descriptor()
	// property.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	property.AccountIDValidator = propertyDescAccountID.Validators[0].(func(string) error)
	// propertyDescStatus is the schema descriptor for status field.
	propertyDescStatus := propertyMixinFields0[1].Descriptor()
	// property.DefaultStatus holds the default value on creation for the status field.
	property.DefaultStatus = propertyDescStatus.Default.(string)
	// propertyDescCreatedAt is the schema descriptor for created_at field.
	propertyDescCreatedAt := propertyMixinFields0[2].Descriptor()
	// property.DefaultCreatedAt holds the default value on creation for the created_at field.
	property.DefaultCreatedAt = propertyDescCreatedAt.Default.(func() time.Time)
	// propertyDescUpdatedAt is the schema descriptor for updated_at field.
	propertyDescUpdatedAt := propertyMixinFields0[3].Descriptor()
	// property.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	property.DefaultUpdatedAt = propertyDescUpdatedAt.Default.(func() time.Time)
	// property.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	property.UpdateDefaultUpdatedAt = propertyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// propertyDescName is the schema descriptor for name field.
	propertyDescName := propertyFields[1].Descriptor()
	// property.NameValidator is a validator for the "name" field. It is called by the builders before save.
	property.NameValidator = propertyDescName.Validators[0].(func(string) error)
	smsnotificationMixin := schema.SmsNotification{}.Mixin()
	smsnotificationMixinFields0 := smsnotificationMixin[0].Fields()
	_ = smsnotificationMixinFields0
	smsnotificationFields := schema.SmsNotification{}.Fields()
	_ = smsnotificationFields
	// smsnotificationDescAccountID is the schema descriptor for account_id field.
	smsnotificationDescAccountID := smsnotificationMixinFields0[0].Descriptor()
	// smsnotification.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	smsnotification.AccountIDValidator = smsnotificationDescAccountID.Validators[0].(func(string) error)
	// smsnotificationDescStatus is the schema descriptor for status field.
	smsnotificationDescStatus := smsnotificationMixinFields0[1].Descriptor()
	// smsnotification.DefaultStatus holds the default value on creation for the status field.
	smsnotification.DefaultStatus = smsnotificationDescStatus.Default.(string)
	// smsnotificationDescCreatedAt is the schema descriptor for created_at field.
	smsnotificationDescCreatedAt := smsnotificationMixinFields0[2].Descriptor()
	// smsnotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	smsnotification.DefaultCreatedAt = smsnotificationDescCreatedAt.Default.(func() time.Time)
	// smsnotificationDescUpdatedAt is the schema descriptor for updated_at field.
	smsnotificationDescUpdatedAt := smsnotificationMixinFields0[3].Descriptor()
	// smsnotification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	smsnotification.DefaultUpdatedAt = smsnotificationDescUpdatedAt.Default.(func() time.Time)
	// smsnotification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	smsnotification.UpdateDefaultUpdatedAt = smsnotificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// smsnotificationDescSmsType is the schema descriptor for sms_type field.
	smsnotificationDescSmsType := smsnotificationFields[2].Descriptor()
	// smsnotification.SmsTypeValidator is a validator for the "sms_type" field. It is called by the builders before save.
	smsnotification.SmsTypeValidator = smsnotificationDescSmsType.Validators[0].(func(string) error)
	// smsnotificationDescMessage is the schema descriptor for message field.
	smsnotificationDescMessage := smsnotificationFields[4].Descriptor()
	// smsnotification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	smsnotification.MessageValidator = smsnotificationDescMessage.Validators[0].(func(string) error)
	// smsnotificationDescDeliveryStatus is the schema descriptor for delivery_status field.
	smsnotificationDescDeliveryStatus := smsnotificationFields[5].Descriptor()
	// smsnotification.DefaultDeliveryStatus holds the default value on creation for the delivery_status field.
	smsnotification.DefaultDeliveryStatus = smsnotificationDescDeliveryStatus.Default.(string)
	tenantMixin := schema.Tenant{}.Mixin()
	tenantMixinFields0 := tenantMixin[0].Fields()
	_ = tenantMixinFields0
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescAccountID is the schema descriptor for account_id field.
	tenantDescAccountID := tenantMixinFields0[0].Descriptor()
	// tenant.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	tenant.AccountIDValidator = tenantDescAccountID.Validators[0].(func(string) error)
	// tenantDescStatus is the schema descriptor for status field.
	tenantDescStatus := tenantMixinFields0[1].Descriptor()
	// tenant.DefaultStatus holds the default value on creation for the status field.
	tenant.DefaultStatus = tenantDescStatus.Default.(string)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantMixinFields0[2].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantMixinFields0[3].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[2].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = tenantDescName.Validators[0].(func(string) error)
	unitMixin := schema.Unit{}.Mixin()
	unitMixinFields0 := unitMixin[0].Fields()
	_ = unitMixinFields0
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescAccountID is the schema descriptor for account_id field.
	unitDescAccountID := unitMixinFields0[0].Descriptor()
	// unit.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	unit.AccountIDValidator = unitDescAccountID.Validators[0].(func(string) error)
	// unitDescStatus is the schema descriptor for status field.
	unitDescStatus := unitMixinFields0[1].Descriptor()
	// unit.DefaultStatus holds the default value on creation for the status field.
	unit.DefaultStatus = unitDescStatus.Default.(string)
	// unitDescCreatedAt is the schema descriptor for created_at field.
	unitDescCreatedAt := unitMixinFields0[2].Descriptor()
	// unit.DefaultCreatedAt holds the default value on creation for the created_at field.
	unit.DefaultCreatedAt = unitDescCreatedAt.Default.(func() time.Time)
	// unitDescUpdatedAt is the schema descriptor for updated_at field.
	unitDescUpdatedAt := unitMixinFields0[3].Descriptor()
	// unit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	unit.DefaultUpdatedAt = unitDescUpdatedAt.Default.(func() time.Time)
	// unit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	unit.UpdateDefaultUpdatedAt = unitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// unitDescPropertyID is the schema descriptor for property_id field.
	unitDescPropertyID := unitFields[1].Descriptor()
	// unit.PropertyIDValidator is a validator for the "property_id" field. It is called by the builders before save.
	unit.PropertyIDValidator = unitDescPropertyID.Validators[0].(func(string) error)
	// unitDescUnitNumber is the schema descriptor for unit_number field.
	unitDescUnitNumber := unitFields[2].Descriptor()
	// unit.UnitNumberValidator is a validator for the "unit_number" field. It is called by the builders before save.
	unit.UnitNumberValidator = unitDescUnitNumber.Validators[0].(func(string) error)
	// unitDescMonthlyRent is the schema descriptor for monthly_rent field.
	unitDescMonthlyRent := unitFields[3].Descriptor()
	// unit.DefaultMonthlyRent holds the default value on creation for the monthly_rent field.
	unit.DefaultMonthlyRent = unitDescMonthlyRent.Default.(decimal.Decimal)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescAccountID is the schema descriptor for account_id field.
	userDescAccountID := userMixinFields0[0].Descriptor()
	// user.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	user.AccountIDValidator = userDescAccountID.Validators[0].(func(string) error)
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userMixinFields0[1].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[3].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
}
