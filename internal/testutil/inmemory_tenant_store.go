package testutil

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// InMemoryTenantStore implements tenant.Repository
type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]
}

// NewInMemoryTenantStore creates a new in-memory tenant repository
func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore: NewInMemoryStore[*tenant.Tenant](),
	}
}

func copyTenant(t *tenant.Tenant) *tenant.Tenant {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

// Create stores a new tenant
func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, t.ID, copyTenant(t))
}

// Get retrieves a tenant by ID within the caller's account
func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Tenant with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, t.AccountID) {
		return nil, ierr.NewError("tenant not found").
			WithHintf("Tenant with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyTenant(t), nil
}

// Update updates an existing tenant
func (s *InMemoryTenantStore) Update(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if _, err := s.Get(ctx, t.ID); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, t.ID, copyTenant(t))
}

// Delete soft deletes a tenant
func (s *InMemoryTenantStore) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = types.StatusDeleted
	t.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, id, t)
}

func tenantFilterFn(ctx context.Context, t *tenant.Tenant, f interface{}) bool {
	if t == nil {
		return false
	}
	if !CheckAccountFilter(ctx, t.AccountID) {
		return false
	}
	if filter, ok := f.(*types.QueryFilter); ok {
		if t.Status != filter.GetStatus() {
			return false
		}
	}
	return true
}

func tenantSortFn(i, j *tenant.Tenant) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

// List retrieves tenants matching the filter
func (s *InMemoryTenantStore) List(ctx context.Context, filter *types.QueryFilter) ([]*tenant.Tenant, error) {
	items, err := s.InMemoryStore.List(ctx, filter, tenantFilterFn, tenantSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*tenant.Tenant, len(items))
	for i, t := range items {
		result[i] = copyTenant(t)
	}
	return result, nil
}

// Count returns the number of tenants matching the filter
func (s *InMemoryTenantStore) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, tenantFilterFn)
}
