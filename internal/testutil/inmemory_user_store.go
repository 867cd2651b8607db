package testutil

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/domain/user"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
)

// InMemoryUserStore implements user.Repository
type InMemoryUserStore struct {
	*InMemoryStore[*user.User]
}

// NewInMemoryUserStore creates a new in-memory user repository
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func copyUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

// Create stores a new user
func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.AccountID == u.AccountID && existing.Email == u.Email {
			return ierr.NewError("user already exists").
				WithHint("A user with this email already exists").
				Mark(ierr.ErrAlreadyExists)
		}
	}

	s.items[u.ID] = copyUser(u)
	return nil
}

// Get retrieves a user by ID within the caller's account
func (s *InMemoryUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("User with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, u.AccountID) {
		return nil, ierr.NewError("user not found").
			WithHintf("User with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyUser(u), nil
}

// GetByEmail retrieves a user by email within the caller's account
func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.Email == email && CheckAccountFilter(ctx, u.AccountID) {
			return copyUser(u), nil
		}
	}

	return nil, ierr.NewError("user not found").
		WithHintf("User with email %s was not found", email).
		Mark(ierr.ErrNotFound)
}
