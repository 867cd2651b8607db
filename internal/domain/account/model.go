package account

import (
	"time"

	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// Account represents an organization using the platform. It is the tenancy
// boundary for every other record.
type Account struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Active    bool         `json:"active"`
	Demo      bool         `json:"demo"`
	Status    types.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Validate validates the account
func (a *Account) Validate() error {
	if a.Name == "" {
		return ierr.NewError("invalid account name").
			WithHint("Account name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FromEnt converts an Ent account to a domain account
func FromEnt(a *ent.Account) *Account {
	if a == nil {
		return nil
	}
	return &Account{
		ID:        a.ID,
		Name:      a.Name,
		Active:    a.Active,
		Demo:      a.Demo,
		Status:    types.Status(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromEntList converts a list of Ent accounts to domain accounts
func FromEntList(accounts []*ent.Account) []*Account {
	result := make([]*Account, len(accounts))
	for i, a := range accounts {
		result[i] = FromEnt(a)
	}
	return result
}
