package tenant

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/types"
)

// Repository defines the interface for tenant persistence
type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	Get(ctx context.Context, id string) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Tenant, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
