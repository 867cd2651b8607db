package dto

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/domain/property"
	"github.com/rentdesk/rentdesk/internal/domain/unit"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest registers a property under the caller's account
type CreatePropertyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address,omitempty"`
}

// Validate validates the request
func (r *CreatePropertyRequest) Validate() error {
	if r.Name == "" {
		return ierr.NewError("invalid property name").
			WithHint("Property name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToProperty converts the request to a domain property
func (r *CreatePropertyRequest) ToProperty(ctx context.Context) *property.Property {
	return &property.Property{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROPERTY),
		Name:      r.Name,
		Address:   r.Address,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	*property.Property
}

// ListPropertiesResponse represents a paginated list of properties
type ListPropertiesResponse = types.ListResponse[*PropertyResponse]

// CreateUnitRequest adds a rentable unit to a property
type CreateUnitRequest struct {
	UnitNumber  string          `json:"unit_number" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// Validate validates the request
func (r *CreateUnitRequest) Validate() error {
	if r.UnitNumber == "" {
		return ierr.NewError("invalid unit number").
			WithHint("Unit number is required").
			Mark(ierr.ErrValidation)
	}
	if r.MonthlyRent.IsNegative() {
		return ierr.NewError("invalid monthly rent").
			WithHint("Monthly rent must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToUnit converts the request to a domain unit
func (r *CreateUnitRequest) ToUnit(ctx context.Context, propertyID string) *unit.Unit {
	return &unit.Unit{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_UNIT),
		PropertyID:  propertyID,
		UnitNumber:  r.UnitNumber,
		MonthlyRent: r.MonthlyRent,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	*unit.Unit
}

// ListUnitsResponse represents a list of units
type ListUnitsResponse = types.ListResponse[*UnitResponse]
