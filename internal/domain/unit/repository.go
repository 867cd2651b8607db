package unit

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/types"
)

// Repository defines the interface for unit persistence
type Repository interface {
	Create(ctx context.Context, unit *Unit) error
	Get(ctx context.Context, id string) (*Unit, error)
	Update(ctx context.Context, unit *Unit) error
	Delete(ctx context.Context, id string) error
	ListByProperty(ctx context.Context, propertyID string, filter *types.QueryFilter) ([]*Unit, error)
}
