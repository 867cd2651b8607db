package tenant

import (
	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// Tenant represents a renter occupying a unit. Distinct from the account that
// owns the record.
type Tenant struct {
	ID          string `json:"id"`
	UnitID      string `json:"unit_id,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`

	types.BaseModel
}

// Validate validates the tenant
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return ierr.NewError("invalid tenant name").
			WithHint("Tenant name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FromEnt converts an Ent tenant to a domain tenant
func FromEnt(t *ent.Tenant) *Tenant {
	if t == nil {
		return nil
	}
	return &Tenant{
		ID:          t.ID,
		UnitID:      t.UnitID,
		Name:        t.Name,
		PhoneNumber: t.PhoneNumber,
		Email:       t.Email,
		BaseModel: types.BaseModel{
			AccountID: t.AccountID,
			Status:    types.Status(t.Status),
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
			CreatedBy: t.CreatedBy,
			UpdatedBy: t.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent tenants to domain tenants
func FromEntList(tenants []*ent.Tenant) []*Tenant {
	result := make([]*Tenant, len(tenants))
	for i, t := range tenants {
		result[i] = FromEnt(t)
	}
	return result
}
