package dto

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// CreateTenantRequest registers a renter against a unit
type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required"`
	UnitID      string `json:"unit_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// Validate validates the request
func (r *CreateTenantRequest) Validate() error {
	if r.Name == "" {
		return ierr.NewError("invalid tenant name").
			WithHint("Tenant name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToTenant converts the request to a domain tenant
func (r *CreateTenantRequest) ToTenant(ctx context.Context) *tenant.Tenant {
	return &tenant.Tenant{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		UnitID:      r.UnitID,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateTenantRequest updates mutable tenant fields
type UpdateTenantRequest struct {
	Name        *string `json:"name,omitempty"`
	UnitID      *string `json:"unit_id,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	*tenant.Tenant
}

// ListTenantsResponse represents a paginated list of tenants
type ListTenantsResponse = types.ListResponse[*TenantResponse]
