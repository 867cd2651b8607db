package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/payment"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Transaction]
}

// NewInMemoryPaymentStore creates a new in-memory payment transaction repository
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Transaction](),
	}
}

func copyTransaction(t *payment.Transaction) *payment.Transaction {
	if t == nil {
		return nil
	}
	copied := *t
	if t.InvoiceID != nil {
		copied.InvoiceID = lo.ToPtr(*t.InvoiceID)
	}
	return &copied
}

// Create stores a new transaction, enforcing the unique idempotency key the
// way the database constraint does
func (s *InMemoryPaymentStore) Create(ctx context.Context, txn *payment.Transaction) error {
	if txn == nil {
		return ierr.NewError("transaction cannot be nil").
			WithHint("Transaction cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.IdempotencyKey == txn.IdempotencyKey {
			return ierr.NewError("transaction already exists").
				WithHint("A transaction with the same idempotency key already exists").
				Mark(ierr.ErrAlreadyExists)
		}
	}

	s.items[txn.ID] = copyTransaction(txn)
	return nil
}

// Get retrieves a transaction by ID within the caller's account
func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Transaction, error) {
	txn, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Payment transaction with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, txn.AccountID) {
		return nil, ierr.NewError("transaction not found").
			WithHintf("Payment transaction with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyTransaction(txn), nil
}

// Update updates an existing transaction
func (s *InMemoryPaymentStore) Update(ctx context.Context, txn *payment.Transaction) error {
	if txn == nil {
		return ierr.NewError("transaction cannot be nil").
			WithHint("Transaction cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if _, err := s.Get(ctx, txn.ID); err != nil {
		return err
	}
	txn.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, txn.ID, copyTransaction(txn))
}

func transactionFilterFn(ctx context.Context, txn *payment.Transaction, f interface{}) bool {
	filter, ok := f.(*types.TransactionFilter)
	if !ok {
		return true
	}
	if txn == nil {
		return false
	}

	if !CheckAccountFilter(ctx, txn.AccountID) {
		return false
	}

	if len(filter.TransactionIDs) > 0 && !lo.Contains(filter.TransactionIDs, txn.ID) {
		return false
	}

	if filter.InvoiceID != nil && (txn.InvoiceID == nil || *txn.InvoiceID != *filter.InvoiceID) {
		return false
	}

	if filter.PaymentMethod != nil && txn.PaymentMethod != *filter.PaymentMethod {
		return false
	}

	if filter.TransactionStatus != nil && txn.TransactionStatus != *filter.TransactionStatus {
		return false
	}

	if filter.Unlinked != nil {
		if *filter.Unlinked == txn.IsLinked() {
			return false
		}
	}

	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil && txn.CreatedAt.Before(*filter.StartTime) {
			return false
		}
		if filter.EndTime != nil && txn.CreatedAt.After(*filter.EndTime) {
			return false
		}
	}

	return true
}

func transactionSortFn(i, j *payment.Transaction) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

// List retrieves transactions matching the filter
func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.TransactionFilter) ([]*payment.Transaction, error) {
	items, err := s.InMemoryStore.List(ctx, filter, transactionFilterFn, transactionSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*payment.Transaction, len(items))
	for i, txn := range items {
		result[i] = copyTransaction(txn)
	}
	return result, nil
}

// Count returns the number of transactions matching the filter
func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.TransactionFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, transactionFilterFn)
}

// GetByIdempotencyKey retrieves a transaction by its idempotency key within
// the caller's account
func (s *InMemoryPaymentStore) GetByIdempotencyKey(ctx context.Context, key string) (*payment.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, txn := range s.items {
		if txn.IdempotencyKey == key && CheckAccountFilter(ctx, txn.AccountID) {
			return copyTransaction(txn), nil
		}
	}

	return nil, ierr.NewError("transaction not found").
		WithHint("No payment transaction found for the given idempotency key").
		Mark(ierr.ErrNotFound)
}
