// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rentdesk/rentdesk/ent/property"
	"github.com/rentdesk/rentdesk/ent/unit"
	"github.com/shopspring/decimal"
)

// Unit is the model entity for the Unit schema.
type Unit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// PropertyID holds the value of the "property_id" field.
	PropertyID string `json:"property_id,omitempty"`
	// UnitNumber holds the value of the "unit_number" field.
	UnitNumber string `json:"unit_number,omitempty"`
	// MonthlyRent holds the value of the "monthly_rent" field.
	MonthlyRent decimal.Decimal `json:"monthly_rent,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UnitQuery when eager-loading is set.
	Edges        UnitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UnitEdges holds the relations/edges for other nodes in the graph.
type UnitEdges struct {
	// Property holds the value of the property edge.
	Property *Property `json:"property,omitempty"`
	// Tenants holds the value of the tenants edge.
	Tenants []*Tenant `json:"tenants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PropertyOrErr returns the Property value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UnitEdges) PropertyOrErr() (*Property, error) {
	if e.Property != nil {
		return e.Property, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: property.Label}
	}
	return nil, &NotLoadedError{edge: "property"}
}

// TenantsOrErr returns the Tenants value or an error if the edge
// was not loaded in eager-loading.
func (e UnitEdges) TenantsOrErr() ([]*Tenant, error) {
	if e.loadedTypes[1] {
		return e.Tenants, nil
	}
	return nil, &NotLoadedError{edge: "tenants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Unit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unit.FieldMonthlyRent:
			values[i] = new(decimal.Decimal)
		case unit.FieldID, unit.FieldAccountID, unit.FieldStatus, unit.FieldCreatedBy, unit.FieldUpdatedBy, unit.FieldPropertyID, unit.FieldUnitNumber:
			values[i] = new(sql.NullString)
		case unit.FieldCreatedAt, unit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Unit fields.
func (u *Unit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				u.ID = value.String
			}
		case unit.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				u.AccountID = value.String
			}
		case unit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				u.Status = value.String
			}
		case unit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				u.CreatedAt = value.Time
			}
		case unit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				u.UpdatedAt = value.Time
			}
		case unit.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				u.CreatedBy = value.String
			}
		case unit.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				u.UpdatedBy = value.String
			}
		case unit.FieldPropertyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value.Valid {
				u.PropertyID = value.String
			}
		case unit.FieldUnitNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_number", values[i])
			} else if value.Valid {
				u.UnitNumber = value.String
			}
		case unit.FieldMonthlyRent:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_rent", values[i])
			} else if value != nil {
				u.MonthlyRent = *value
			}
		default:
			u.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Unit.
// This includes values selected through modifiers, order, etc.
func (u *Unit) Value(name string) (ent.Value, error) {
	return u.selectValues.Get(name)
}

// QueryProperty queries the "property" edge of the Unit entity.
func (u *Unit) QueryProperty() *PropertyQuery {
	return NewUnitClient(u.config).QueryProperty(u)
}

// QueryTenants queries the "tenants" edge of the Unit entity.
func (u *Unit) QueryTenants() *TenantQuery {
	return NewUnitClient(u.config).QueryTenants(u)
}

// Update returns a builder for updating this Unit.
// Note that you need to call Unit.Unwrap() before calling this method if this Unit
// was returned from a transaction, and the transaction was committed or rolled back.
func (u *Unit) Update() *UnitUpdateOne {
	return NewUnitClient(u.config).UpdateOne(u)
}

// Unwrap unwraps the Unit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (u *Unit) Unwrap() *Unit {
	_tx, ok := u.config.driver.(*txDriver)
	if !ok {
		panic("ent: Unit is not a transactional entity")
	}
	u.config.driver = _tx.drv
	return u
}

// String implements the fmt.Stringer.
func (u *Unit) String() string {
	var builder strings.Builder
	builder.WriteString("Unit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", u.ID))
	builder.WriteString("account_id=")
	builder.WriteString(u.AccountID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(u.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(u.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(u.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(u.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(u.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("property_id=")
	builder.WriteString(u.PropertyID)
	builder.WriteString(", ")
	builder.WriteString("unit_number=")
	builder.WriteString(u.UnitNumber)
	builder.WriteString(", ")
	builder.WriteString("monthly_rent=")
	builder.WriteString(fmt.Sprintf("%v", u.MonthlyRent))
	builder.WriteByte(')')
	return builder.String()
}

// Units is a parsable slice of Unit.
type Units []*Unit
