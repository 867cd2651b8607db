package service

import (
	"context"

	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// AccountScopeService resolves the caller's account and produces a context
// every repository read and write is constrained by. Resolution fails closed:
// a caller whose account cannot be verified gets an error, never an unscoped
// context.
type AccountScopeService interface {
	// Resolve verifies the account exists and is active, returning a context
	// carrying the account scope
	Resolve(ctx context.Context, accountID string) (context.Context, error)

	// Verify checks that the context carries a usable account scope
	Verify(ctx context.Context) error
}

type accountScopeService struct {
	ServiceParams
}

// NewAccountScopeService creates a new account scope service
func NewAccountScopeService(params ServiceParams) AccountScopeService {
	return &accountScopeService{
		ServiceParams: params,
	}
}

func (s *accountScopeService) Resolve(ctx context.Context, accountID string) (context.Context, error) {
	if accountID == "" {
		return nil, ierr.NewError("missing account id").
			WithHint("Caller account could not be resolved").
			Mark(ierr.ErrPermissionDenied)
	}

	// Account lookups are unscoped by definition; everything downstream of
	// this check is not.
	acc, err := s.AccountRepo.Get(ctx, accountID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Caller account could not be resolved").
				Mark(ierr.ErrPermissionDenied)
		}
		return nil, err
	}

	if !acc.Active || acc.Status != types.StatusPublished {
		return nil, ierr.NewError("account is not active").
			WithHint("This account has been deactivated").
			WithReportableDetails(map[string]interface{}{
				"account_id": accountID,
			}).
			Mark(ierr.ErrPermissionDenied)
	}

	return types.SetAccountID(ctx, accountID), nil
}

func (s *accountScopeService) Verify(ctx context.Context) error {
	return types.ValidateAccountContext(ctx)
}
