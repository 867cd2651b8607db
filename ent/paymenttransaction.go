// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// PaymentTransaction is the model entity for the PaymentTransaction schema.
type PaymentTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID *string `json:"invoice_id,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod string `json:"payment_method,omitempty"`
	// TransactionStatus holds the value of the "transaction_status" field.
	TransactionStatus string `json:"transaction_status,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// PayerPhone holds the value of the "payer_phone" field.
	PayerPhone string `json:"payer_phone,omitempty"`
	// PayerName holds the value of the "payer_name" field.
	PayerName string `json:"payer_name,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     types.Metadata `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymenttransaction.FieldAmount:
			values[i] = new(decimal.Decimal)
		case paymenttransaction.FieldID, paymenttransaction.FieldAccountID, paymenttransaction.FieldStatus, paymenttransaction.FieldCreatedBy, paymenttransaction.FieldUpdatedBy, paymenttransaction.FieldIdempotencyKey, paymenttransaction.FieldExternalID, paymenttransaction.FieldInvoiceID, paymenttransaction.FieldPaymentMethod, paymenttransaction.FieldTransactionStatus, paymenttransaction.FieldCurrency, paymenttransaction.FieldPayerPhone, paymenttransaction.FieldPayerName:
			values[i] = new(sql.NullString)
		case paymenttransaction.FieldCreatedAt, paymenttransaction.FieldUpdatedAt, paymenttransaction.FieldPaidAt:
			values[i] = new(sql.NullTime)
		case paymenttransaction.FieldMetadata:
			values[i] = new(types.Metadata)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentTransaction fields.
func (pt *PaymentTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymenttransaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				pt.ID = value.String
			}
		case paymenttransaction.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				pt.AccountID = value.String
			}
		case paymenttransaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				pt.Status = value.String
			}
		case paymenttransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pt.CreatedAt = value.Time
			}
		case paymenttransaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pt.UpdatedAt = value.Time
			}
		case paymenttransaction.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				pt.CreatedBy = value.String
			}
		case paymenttransaction.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				pt.UpdatedBy = value.String
			}
		case paymenttransaction.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				pt.IdempotencyKey = value.String
			}
		case paymenttransaction.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				pt.ExternalID = value.String
			}
		case paymenttransaction.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				pt.InvoiceID = new(string)
				*pt.InvoiceID = value.String
			}
		case paymenttransaction.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				pt.PaymentMethod = value.String
			}
		case paymenttransaction.FieldTransactionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_status", values[i])
			} else if value.Valid {
				pt.TransactionStatus = value.String
			}
		case paymenttransaction.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				pt.Amount = *value
			}
		case paymenttransaction.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				pt.Currency = value.String
			}
		case paymenttransaction.FieldPayerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payer_phone", values[i])
			} else if value.Valid {
				pt.PayerPhone = value.String
			}
		case paymenttransaction.FieldPayerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payer_name", values[i])
			} else if value.Valid {
				pt.PayerName = value.String
			}
		case paymenttransaction.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				pt.PaidAt = new(time.Time)
				*pt.PaidAt = value.Time
			}
		case paymenttransaction.FieldMetadata:
			if value, ok := values[i].(*types.Metadata); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil {
				pt.Metadata = *value
			}
		default:
			pt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentTransaction.
// This includes values selected through modifiers, order, etc.
func (pt *PaymentTransaction) Value(name string) (ent.Value, error) {
	return pt.selectValues.Get(name)
}

// Update returns a builder for updating this PaymentTransaction.
// Note that you need to call PaymentTransaction.Unwrap() before calling this method if this PaymentTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (pt *PaymentTransaction) Update() *PaymentTransactionUpdateOne {
	return NewPaymentTransactionClient(pt.config).UpdateOne(pt)
}

// Unwrap unwraps the PaymentTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pt *PaymentTransaction) Unwrap() *PaymentTransaction {
	_tx, ok := pt.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentTransaction is not a transactional entity")
	}
	pt.config.driver = _tx.drv
	return pt
}

// String implements the fmt.Stringer.
func (pt *PaymentTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pt.ID))
	builder.WriteString("account_id=")
	builder.WriteString(pt.AccountID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(pt.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pt.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pt.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(pt.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(pt.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(pt.IdempotencyKey)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(pt.ExternalID)
	builder.WriteString(", ")
	if v := pt.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(pt.PaymentMethod)
	builder.WriteString(", ")
	builder.WriteString("transaction_status=")
	builder.WriteString(pt.TransactionStatus)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", pt.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(pt.Currency)
	builder.WriteString(", ")
	builder.WriteString("payer_phone=")
	builder.WriteString(pt.PayerPhone)
	builder.WriteString(", ")
	builder.WriteString("payer_name=")
	builder.WriteString(pt.PayerName)
	builder.WriteString(", ")
	if v := pt.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", pt.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// PaymentTransactions is a parsable slice of PaymentTransaction.
type PaymentTransactions []*PaymentTransaction
