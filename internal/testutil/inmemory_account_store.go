package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/account"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
)

// InMemoryAccountStore implements account.Repository. Accounts are the scope
// boundary itself, so lookups are not account filtered.
type InMemoryAccountStore struct {
	*InMemoryStore[*account.Account]
}

// NewInMemoryAccountStore creates a new in-memory account repository
func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{
		InMemoryStore: NewInMemoryStore[*account.Account](),
	}
}

func copyAccount(a *account.Account) *account.Account {
	if a == nil {
		return nil
	}
	copied := *a
	return &copied
}

// Create stores a new account
func (s *InMemoryAccountStore) Create(ctx context.Context, a *account.Account) error {
	if a == nil {
		return ierr.NewError("account cannot be nil").
			WithHint("Account cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, a.ID, copyAccount(a))
}

// Get retrieves an account by ID
func (s *InMemoryAccountStore) Get(ctx context.Context, id string) (*account.Account, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Account with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyAccount(a), nil
}

// Update updates an existing account
func (s *InMemoryAccountStore) Update(ctx context.Context, a *account.Account) error {
	if a == nil {
		return ierr.NewError("account cannot be nil").
			WithHint("Account cannot be nil").
			Mark(ierr.ErrValidation)
	}
	a.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, a.ID, copyAccount(a))
}

// List retrieves all accounts
func (s *InMemoryAccountStore) List(ctx context.Context) ([]*account.Account, error) {
	items, err := s.InMemoryStore.List(ctx, nil, nil, func(i, j *account.Account) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	result := make([]*account.Account, len(items))
	for i, a := range items {
		result[i] = copyAccount(a)
	}
	return result, nil
}

// Exists reports whether an account with the given ID exists
func (s *InMemoryAccountStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.InMemoryStore.Get(ctx, id)
	return err == nil, nil
}
