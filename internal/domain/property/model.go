package property

import (
	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// Property represents a building or estate managed on the platform
type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`

	types.BaseModel
}

// Validate validates the property
func (p *Property) Validate() error {
	if p.Name == "" {
		return ierr.NewError("invalid property name").
			WithHint("Property name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FromEnt converts an Ent property to a domain property
func FromEnt(p *ent.Property) *Property {
	if p == nil {
		return nil
	}
	return &Property{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		BaseModel: types.BaseModel{
			AccountID: p.AccountID,
			Status:    types.Status(p.Status),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent properties to domain properties
func FromEntList(properties []*ent.Property) []*Property {
	result := make([]*Property, len(properties))
	for i, p := range properties {
		result[i] = FromEnt(p)
	}
	return result
}
