// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
)

// SmsNotification is the model entity for the SmsNotification schema.
type SmsNotification struct {
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
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// SmsType holds the value of the "sms_type" field.
	SmsType string `json:"sms_type,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber string `json:"phone_number,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// DeliveryStatus holds the value of the "delivery_status" field.
	DeliveryStatus string `json:"delivery_status,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason string `json:"failure_reason,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SmsNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case smsnotification.FieldID, smsnotification.FieldAccountID, smsnotification.FieldStatus, smsnotification.FieldCreatedBy, smsnotification.FieldUpdatedBy, smsnotification.FieldTenantID, smsnotification.FieldSmsType, smsnotification.FieldPhoneNumber, smsnotification.FieldMessage, smsnotification.FieldDeliveryStatus, smsnotification.FieldFailureReason:
			values[i] = new(sql.NullString)
		case smsnotification.FieldCreatedAt, smsnotification.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SmsNotification fields.
func (sn *SmsNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case smsnotification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				sn.ID = value.String
			}
		case smsnotification.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				sn.AccountID = value.String
			}
		case smsnotification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				sn.Status = value.String
			}
		case smsnotification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sn.CreatedAt = value.Time
			}
		case smsnotification.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				sn.UpdatedAt = value.Time
			}
		case smsnotification.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				sn.CreatedBy = value.String
			}
		case smsnotification.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				sn.UpdatedBy = value.String
			}
		case smsnotification.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				sn.TenantID = value.String
			}
		case smsnotification.FieldSmsType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sms_type", values[i])
			} else if value.Valid {
				sn.SmsType = value.String
			}
		case smsnotification.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				sn.PhoneNumber = value.String
			}
		case smsnotification.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				sn.Message = value.String
			}
		case smsnotification.FieldDeliveryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_status", values[i])
			} else if value.Valid {
				sn.DeliveryStatus = value.String
			}
		case smsnotification.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				sn.FailureReason = value.String
			}
		default:
			sn.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SmsNotification.
// This includes values selected through modifiers, order, etc.
func (sn *SmsNotification) Value(name string) (ent.Value, error) {
	return sn.selectValues.Get(name)
}

// Update returns a builder for updating this SmsNotification.
// Note that you need to call SmsNotification.Unwrap() before calling this method if this SmsNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (sn *SmsNotification) Update() *SmsNotificationUpdateOne {
	return NewSmsNotificationClient(sn.config).UpdateOne(sn)
}

// Unwrap unwraps the SmsNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sn *SmsNotification) Unwrap() *SmsNotification {
	_tx, ok := sn.config.driver.(*txDriver)
	if !ok {
		panic("ent: SmsNotification is not a transactional entity")
	}
	sn.config.driver = _tx.drv
	return sn
}

// String implements the fmt.Stringer.
func (sn *SmsNotification) String() string {
	var builder strings.Builder
	builder.WriteString("SmsNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sn.ID))
	builder.WriteString("account_id=")
	builder.WriteString(sn.AccountID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(sn.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(sn.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(sn.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(sn.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(sn.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(sn.TenantID)
	builder.WriteString(", ")
	builder.WriteString("sms_type=")
	builder.WriteString(sn.SmsType)
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(sn.PhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(sn.Message)
	builder.WriteString(", ")
	builder.WriteString("delivery_status=")
	builder.WriteString(sn.DeliveryStatus)
	builder.WriteString(", ")
	builder.WriteString("failure_reason=")
	builder.WriteString(sn.FailureReason)
	builder.WriteByte(')')
	return builder.String()
}

// SmsNotifications is a parsable slice of SmsNotification.
type SmsNotifications []*SmsNotification
