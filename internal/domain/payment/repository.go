package payment

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/types"
)

// Repository defines the interface for payment transaction persistence
type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Get(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	List(ctx context.Context, filter *types.TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, filter *types.TransactionFilter) (int, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Transaction, error)
}
