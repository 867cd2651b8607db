package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/unit"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// InMemoryUnitStore implements unit.Repository
type InMemoryUnitStore struct {
	*InMemoryStore[*unit.Unit]
}

// NewInMemoryUnitStore creates a new in-memory unit repository
func NewInMemoryUnitStore() *InMemoryUnitStore {
	return &InMemoryUnitStore{
		InMemoryStore: NewInMemoryStore[*unit.Unit](),
	}
}

func copyUnit(u *unit.Unit) *unit.Unit {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

// Create stores a new unit
func (s *InMemoryUnitStore) Create(ctx context.Context, u *unit.Unit) error {
	if u == nil {
		return ierr.NewError("unit cannot be nil").
			WithHint("Unit cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, u.ID, copyUnit(u))
}

// Get retrieves a unit by ID within the caller's account
func (s *InMemoryUnitStore) Get(ctx context.Context, id string) (*unit.Unit, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Unit with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, u.AccountID) {
		return nil, ierr.NewError("unit not found").
			WithHintf("Unit with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyUnit(u), nil
}

// Update updates an existing unit
func (s *InMemoryUnitStore) Update(ctx context.Context, u *unit.Unit) error {
	if u == nil {
		return ierr.NewError("unit cannot be nil").
			WithHint("Unit cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if _, err := s.Get(ctx, u.ID); err != nil {
		return err
	}
	u.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, u.ID, copyUnit(u))
}

// Delete soft deletes a unit
func (s *InMemoryUnitStore) Delete(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Status = types.StatusDeleted
	u.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, u)
}

// ListByProperty retrieves units belonging to a property within the caller's
// account
func (s *InMemoryUnitStore) ListByProperty(ctx context.Context, propertyID string, filter *types.QueryFilter) ([]*unit.Unit, error) {
	filterFn := func(ctx context.Context, u *unit.Unit, f interface{}) bool {
		if u == nil || u.PropertyID != propertyID {
			return false
		}
		if !CheckAccountFilter(ctx, u.AccountID) {
			return false
		}
		if qf, ok := f.(*types.QueryFilter); ok {
			if u.Status != qf.GetStatus() {
				return false
			}
		}
		return true
	}

	items, err := s.InMemoryStore.List(ctx, filter, filterFn, func(i, j *unit.Unit) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	result := make([]*unit.Unit, len(items))
	for i, u := range items {
		result[i] = copyUnit(u)
	}
	return result, nil
}
