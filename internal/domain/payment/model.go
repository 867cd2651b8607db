package payment

import (
	"time"

	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// Transaction represents an observed payment event. One row is written per
// distinct external event; the idempotency key keeps redelivery from creating
// duplicates.
type Transaction struct {
	ID string `json:"id"`
	// Unique key derived from the external reference, used to detect replays
	IdempotencyKey string `json:"idempotency_key"`
	// The external_id is the payment network's stable reference for the event
	ExternalID string `json:"external_id"`
	// The invoice_id links the transaction to a matched invoice (optional)
	InvoiceID         *string                 `json:"invoice_id,omitempty"`
	PaymentMethod     types.PaymentMethod     `json:"payment_method"`
	TransactionStatus types.TransactionStatus `json:"transaction_status"`
	Amount            decimal.Decimal         `json:"amount"`
	Currency          string                  `json:"currency"`
	PayerPhone        string                  `json:"payer_phone,omitempty"`
	PayerName         string                  `json:"payer_name,omitempty"`
	PaidAt            *time.Time              `json:"paid_at,omitempty"`
	Metadata          types.Metadata          `json:"metadata,omitempty"`

	types.BaseModel
}

// Validate validates the transaction
func (t *Transaction) Validate() error {
	if t.ExternalID == "" {
		return ierr.NewError("invalid external id").
			WithHint("External id is required").
			Mark(ierr.ErrValidation)
	}
	if t.Amount.IsZero() || t.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if err := t.PaymentMethod.Validate(); err != nil {
		return err
	}
	if t.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsLinked reports whether the transaction has been matched to an invoice
func (t *Transaction) IsLinked() bool {
	return t.InvoiceID != nil && *t.InvoiceID != ""
}

// FromEnt converts an Ent payment transaction to a domain transaction
func FromEnt(t *ent.PaymentTransaction) *Transaction {
	if t == nil {
		return nil
	}
	return &Transaction{
		ID:                t.ID,
		IdempotencyKey:    t.IdempotencyKey,
		ExternalID:        t.ExternalID,
		InvoiceID:         t.InvoiceID,
		PaymentMethod:     types.PaymentMethod(t.PaymentMethod),
		TransactionStatus: types.TransactionStatus(t.TransactionStatus),
		Amount:            t.Amount,
		Currency:          t.Currency,
		PayerPhone:        t.PayerPhone,
		PayerName:         t.PayerName,
		PaidAt:            t.PaidAt,
		Metadata:          t.Metadata,
		BaseModel: types.BaseModel{
			AccountID: t.AccountID,
			Status:    types.Status(t.Status),
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
			CreatedBy: t.CreatedBy,
			UpdatedBy: t.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent payment transactions to domain transactions
func FromEntList(transactions []*ent.PaymentTransaction) []*Transaction {
	result := make([]*Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = FromEnt(t)
	}
	return result
}
