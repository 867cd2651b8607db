package dto

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/account"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// CreateAccountRequest provisions a new account
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
	Demo bool   `json:"demo"`
}

// Validate validates the request
func (r *CreateAccountRequest) Validate() error {
	if r.Name == "" {
		return ierr.NewError("invalid account name").
			WithHint("Account name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToAccount converts the request to a domain account
func (r *CreateAccountRequest) ToAccount() *account.Account {
	now := time.Now().UTC()
	return &account.Account{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACCOUNT),
		Name:      r.Name,
		Active:    true,
		Demo:      r.Demo,
		Status:    types.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	*account.Account
}
