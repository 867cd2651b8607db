package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice repository
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	copied := *inv
	return &copied
}

// Create stores a new invoice
func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv))
}

// Get retrieves an invoice by ID within the caller's account
func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, inv.AccountID) {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

// Update updates an existing invoice
func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}
	existing, err := s.Get(ctx, inv.ID)
	if err != nil {
		return err
	}
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, inv.ID, copyInvoice(inv))
}

// Delete soft deletes an invoice
func (s *InMemoryInvoiceStore) Delete(ctx context.Context, id string) error {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	inv.Status = types.StatusDeleted
	inv.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, inv)
}

func invoiceFilterFn(ctx context.Context, inv *invoice.Invoice, f interface{}) bool {
	filter, ok := f.(*types.InvoiceFilter)
	if !ok {
		return true
	}
	if inv == nil {
		return false
	}

	if !CheckAccountFilter(ctx, inv.AccountID) {
		return false
	}

	if filter.GetStatus() != "" && inv.Status != filter.GetStatus() {
		return false
	}

	if len(filter.InvoiceIDs) > 0 && !lo.Contains(filter.InvoiceIDs, inv.ID) {
		return false
	}

	if filter.TenantID != "" && inv.TenantID != filter.TenantID {
		return false
	}

	if len(filter.InvoiceStatus) > 0 && !lo.Contains(filter.InvoiceStatus, inv.InvoiceStatus) {
		return false
	}

	if filter.Amount != nil && !inv.Amount.Equal(*filter.Amount) {
		return false
	}

	if filter.DueBefore != nil && (inv.DueDate == nil || !inv.DueDate.Before(*filter.DueBefore)) {
		return false
	}

	if filter.DueAfter != nil && (inv.DueDate == nil || !inv.DueDate.After(*filter.DueAfter)) {
		return false
	}

	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil && inv.CreatedAt.Before(*filter.StartTime) {
			return false
		}
		if filter.EndTime != nil && inv.CreatedAt.After(*filter.EndTime) {
			return false
		}
	}

	return true
}

func invoiceSortFn(i, j *invoice.Invoice) bool {
	// Most recent first
	return i.CreatedAt.After(j.CreatedAt)
}

// List retrieves invoices matching the filter
func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	items, err := s.InMemoryStore.List(ctx, filter, invoiceFilterFn, invoiceSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*invoice.Invoice, len(items))
	for i, inv := range items {
		result[i] = copyInvoice(inv)
	}
	return result, nil
}

// Count returns the number of invoices matching the filter
func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, invoiceFilterFn)
}

// MarkPaid transitions the invoice to paid only when it is still open,
// mirroring the conditional update the SQL store issues
func (s *InMemoryInvoiceStore) MarkPaid(ctx context.Context, id string, paid invoice.PaidDetails) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, exists := s.items[id]
	if !exists || !CheckAccountFilter(ctx, inv.AccountID) {
		return 0, nil
	}
	if !inv.IsMatchable() {
		return 0, nil
	}

	inv.InvoiceStatus = types.InvoiceStatusPaid
	inv.AmountPaid = paid.AmountPaid
	inv.PaidAt = lo.ToPtr(paid.PaidAt)
	inv.PaymentMethod = paid.PaymentMethod
	inv.PaymentRef = paid.PaymentRef
	inv.UpdatedAt = time.Now().UTC()
	return 1, nil
}

// MarkOverdue flips sent invoices past their due date to overdue
func (s *InMemoryInvoiceStore) MarkOverdue(ctx context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, inv := range s.items {
		if !CheckAccountFilter(ctx, inv.AccountID) || inv.Status == types.StatusDeleted {
			continue
		}
		if inv.InvoiceStatus != types.InvoiceStatusSent {
			continue
		}
		if inv.DueDate == nil || !inv.DueDate.Before(before) {
			continue
		}
		inv.InvoiceStatus = types.InvoiceStatusOverdue
		inv.UpdatedAt = time.Now().UTC()
		count++
	}
	return count, nil
}
