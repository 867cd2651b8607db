package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/property"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// InMemoryPropertyStore implements property.Repository
type InMemoryPropertyStore struct {
	*InMemoryStore[*property.Property]
}

// NewInMemoryPropertyStore creates a new in-memory property repository
func NewInMemoryPropertyStore() *InMemoryPropertyStore {
	return &InMemoryPropertyStore{
		InMemoryStore: NewInMemoryStore[*property.Property](),
	}
}

func copyProperty(p *property.Property) *property.Property {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

// Create stores a new property
func (s *InMemoryPropertyStore) Create(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			WithHint("Property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, copyProperty(p))
}

// Get retrieves a property by ID within the caller's account
func (s *InMemoryPropertyStore) Get(ctx context.Context, id string) (*property.Property, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Property with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, p.AccountID) {
		return nil, ierr.NewError("property not found").
			WithHintf("Property with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyProperty(p), nil
}

// Update updates an existing property
func (s *InMemoryPropertyStore) Update(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			WithHint("Property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, p.ID, copyProperty(p))
}

// Delete soft deletes a property
func (s *InMemoryPropertyStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	p.Status = types.StatusDeleted
	p.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, p)
}

func propertyFilterFn(ctx context.Context, p *property.Property, f interface{}) bool {
	if p == nil {
		return false
	}
	if !CheckAccountFilter(ctx, p.AccountID) {
		return false
	}
	if filter, ok := f.(*types.QueryFilter); ok {
		if p.Status != filter.GetStatus() {
			return false
		}
	}
	return true
}

func propertySortFn(i, j *property.Property) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

// List retrieves properties matching the filter
func (s *InMemoryPropertyStore) List(ctx context.Context, filter *types.QueryFilter) ([]*property.Property, error) {
	items, err := s.InMemoryStore.List(ctx, filter, propertyFilterFn, propertySortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*property.Property, len(items))
	for i, p := range items {
		result[i] = copyProperty(p)
	}
	return result, nil
}

// Count returns the number of properties matching the filter
func (s *InMemoryPropertyStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, propertyFilterFn)
}
