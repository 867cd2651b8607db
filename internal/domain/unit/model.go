package unit

import (
	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// Unit represents a rentable unit inside a property
type Unit struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	UnitNumber  string          `json:"unit_number"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`

	types.BaseModel
}

// Validate validates the unit
func (u *Unit) Validate() error {
	if u.PropertyID == "" {
		return ierr.NewError("invalid property id").
			WithHint("Property id is required").
			Mark(ierr.ErrValidation)
	}
	if u.UnitNumber == "" {
		return ierr.NewError("invalid unit number").
			WithHint("Unit number is required").
			Mark(ierr.ErrValidation)
	}
	if u.MonthlyRent.IsNegative() {
		return ierr.NewError("invalid monthly rent").
			WithHint("Monthly rent must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FromEnt converts an Ent unit to a domain unit
func FromEnt(u *ent.Unit) *Unit {
	if u == nil {
		return nil
	}
	return &Unit{
		ID:          u.ID,
		PropertyID:  u.PropertyID,
		UnitNumber:  u.UnitNumber,
		MonthlyRent: u.MonthlyRent,
		BaseModel: types.BaseModel{
			AccountID: u.AccountID,
			Status:    types.Status(u.Status),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			CreatedBy: u.CreatedBy,
			UpdatedBy: u.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent units to domain units
func FromEntList(units []*ent.Unit) []*Unit {
	result := make([]*Unit, len(units))
	for i, u := range units {
		result[i] = FromEnt(u)
	}
	return result
}
