package property

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/types"
)

// Repository defines the interface for property persistence
type Repository interface {
	Create(ctx context.Context, property *Property) error
	Get(ctx context.Context, id string) (*Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Property, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
