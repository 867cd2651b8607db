package invoice

import (
	"time"

	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents a rent invoice issued to a tenant
type Invoice struct {
	ID            string              `json:"id"`
	TenantID      string              `json:"tenant_id"`
	InvoiceNumber string              `json:"invoice_number,omitempty"`
	InvoiceStatus types.InvoiceStatus `json:"invoice_status"`
	Amount        decimal.Decimal     `json:"amount"`
	AmountPaid    decimal.Decimal     `json:"amount_paid"`
	Currency      string              `json:"currency"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	PaymentRef    string              `json:"payment_reference,omitempty"`
	Description   string              `json:"description,omitempty"`

	types.BaseModel
}

// Validate validates the invoice
func (i *Invoice) Validate() error {
	if i.TenantID == "" {
		return ierr.NewError("invalid tenant id").
			WithHint("Tenant id is required").
			Mark(ierr.ErrValidation)
	}
	if i.Amount.IsZero() || i.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if i.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if err := i.InvoiceStatus.Validate(); err != nil {
		return err
	}
	return nil
}

// IsMatchable reports whether the invoice is open for payment matching
func (i *Invoice) IsMatchable() bool {
	return i.InvoiceStatus == types.InvoiceStatusSent ||
		i.InvoiceStatus == types.InvoiceStatusOverdue
}

// FromEnt converts an Ent invoice to a domain invoice
func FromEnt(i *ent.Invoice) *Invoice {
	if i == nil {
		return nil
	}
	return &Invoice{
		ID:            i.ID,
		TenantID:      i.TenantID,
		InvoiceNumber: i.InvoiceNumber,
		InvoiceStatus: types.InvoiceStatus(i.InvoiceStatus),
		Amount:        i.Amount,
		AmountPaid:    i.AmountPaid,
		Currency:      i.Currency,
		DueDate:       i.DueDate,
		PaidAt:        i.PaidAt,
		PaymentMethod: i.PaymentMethod,
		PaymentRef:    i.PaymentReference,
		Description:   i.Description,
		BaseModel: types.BaseModel{
			AccountID: i.AccountID,
			Status:    types.Status(i.Status),
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
			CreatedBy: i.CreatedBy,
			UpdatedBy: i.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent invoices to domain invoices
func FromEntList(invoices []*ent.Invoice) []*Invoice {
	result := make([]*Invoice, len(invoices))
	for i, inv := range invoices {
		result[i] = FromEnt(inv)
	}
	return result
}
