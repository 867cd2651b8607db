package account

import "context"

// Repository defines the interface for account persistence
type Repository interface {
	Create(ctx context.Context, account *Account) error
	Get(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]*Account, error)
	Exists(ctx context.Context, id string) (bool, error)
}
