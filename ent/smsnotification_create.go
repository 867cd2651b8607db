// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
)

// SmsNotificationCreate is the builder for creating a SmsNotification entity.
type SmsNotificationCreate struct {
	config
	mutation *SmsNotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (snc *SmsNotificationCreate) SetAccountID(s string) *SmsNotificationCreate {
	snc.mutation.SetAccountID(s)
	return snc
}

// SetStatus sets the "status" field.
func (snc *SmsNotificationCreate) SetStatus(s string) *SmsNotificationCreate {
	snc.mutation.SetStatus(s)
	return snc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableStatus(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetStatus(*s)
	}
	return snc
}

// SetCreatedAt sets the "created_at" field.
func (snc *SmsNotificationCreate) SetCreatedAt(t time.Time) *SmsNotificationCreate {
	snc.mutation.SetCreatedAt(t)
	return snc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableCreatedAt(t *time.Time) *SmsNotificationCreate {
	if t != nil {
		snc.SetCreatedAt(*t)
	}
	return snc
}

// SetUpdatedAt sets the "updated_at" field.
func (snc *SmsNotificationCreate) SetUpdatedAt(t time.Time) *SmsNotificationCreate {
	snc.mutation.SetUpdatedAt(t)
	return snc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableUpdatedAt(t *time.Time) *SmsNotificationCreate {
	if t != nil {
		snc.SetUpdatedAt(*t)
	}
	return snc
}

// SetCreatedBy sets the "created_by" field.
func (snc *SmsNotificationCreate) SetCreatedBy(s string) *SmsNotificationCreate {
	snc.mutation.SetCreatedBy(s)
	return snc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableCreatedBy(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetCreatedBy(*s)
	}
	return snc
}

// SetUpdatedBy sets the "updated_by" field.
func (snc *SmsNotificationCreate) SetUpdatedBy(s string) *SmsNotificationCreate {
	snc.mutation.SetUpdatedBy(s)
	return snc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableUpdatedBy(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetUpdatedBy(*s)
	}
	return snc
}

// SetTenantID sets the "tenant_id" field.
func (snc *SmsNotificationCreate) SetTenantID(s string) *SmsNotificationCreate {
	snc.mutation.SetTenantID(s)
	return snc
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableTenantID(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetTenantID(*s)
	}
	return snc
}

// SetSmsType sets the "sms_type" field.
func (snc *SmsNotificationCreate) SetSmsType(s string) *SmsNotificationCreate {
	snc.mutation.SetSmsType(s)
	return snc
}

// SetPhoneNumber sets the "phone_number" field.
func (snc *SmsNotificationCreate) SetPhoneNumber(s string) *SmsNotificationCreate {
	snc.mutation.SetPhoneNumber(s)
	return snc
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillablePhoneNumber(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetPhoneNumber(*s)
	}
	return snc
}

// SetMessage sets the "message" field.
func (snc *SmsNotificationCreate) SetMessage(s string) *SmsNotificationCreate {
	snc.mutation.SetMessage(s)
	return snc
}

// SetDeliveryStatus sets the "delivery_status" field.
func (snc *SmsNotificationCreate) SetDeliveryStatus(s string) *SmsNotificationCreate {
	snc.mutation.SetDeliveryStatus(s)
	return snc
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableDeliveryStatus(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetDeliveryStatus(*s)
	}
	return snc
}

// SetFailureReason sets the "failure_reason" field.
func (snc *SmsNotificationCreate) SetFailureReason(s string) *SmsNotificationCreate {
	snc.mutation.SetFailureReason(s)
	return snc
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (snc *SmsNotificationCreate) SetNillableFailureReason(s *string) *SmsNotificationCreate {
	if s != nil {
		snc.SetFailureReason(*s)
	}
	return snc
}

// SetID sets the "id" field.
func (snc *SmsNotificationCreate) SetID(s string) *SmsNotificationCreate {
	snc.mutation.SetID(s)
	return snc
}

// Mutation returns the SmsNotificationMutation object of the builder.
func (snc *SmsNotificationCreate) Mutation() *SmsNotificationMutation {
	return snc.mutation
}

// Save creates the SmsNotification in the database.
func (snc *SmsNotificationCreate) Save(ctx context.Context) (*SmsNotification, error) {
	snc.defaults()
	return withHooks(ctx, snc.sqlSave, snc.mutation, snc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (snc *SmsNotificationCreate) SaveX(ctx context.Context) *SmsNotification {
	v, err := snc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (snc *SmsNotificationCreate) Exec(ctx context.Context) error {
	_, err := snc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (snc *SmsNotificationCreate) ExecX(ctx context.Context) {
	if err := snc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (snc *SmsNotificationCreate) defaults() {
	if _, ok := snc.mutation.Status(); !ok {
		v := smsnotification.DefaultStatus
		snc.mutation.SetStatus(v)
	}
	if _, ok := snc.mutation.CreatedAt(); !ok {
		v := smsnotification.DefaultCreatedAt()
		snc.mutation.SetCreatedAt(v)
	}
	if _, ok := snc.mutation.UpdatedAt(); !ok {
		v := smsnotification.DefaultUpdatedAt()
		snc.mutation.SetUpdatedAt(v)
	}
	if _, ok := snc.mutation.DeliveryStatus(); !ok {
		v := smsnotification.DefaultDeliveryStatus
		snc.mutation.SetDeliveryStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (snc *SmsNotificationCreate) check() error {
	if _, ok := snc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "SmsNotification.account_id"`)}
	}
	if v, ok := snc.mutation.AccountID(); ok {
		if err := smsnotification.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.account_id": %w`, err)}
		}
	}
	if _, ok := snc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SmsNotification.status"`)}
	}
	if _, ok := snc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SmsNotification.created_at"`)}
	}
	if _, ok := snc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SmsNotification.updated_at"`)}
	}
	if _, ok := snc.mutation.SmsType(); !ok {
		return &ValidationError{Name: "sms_type", err: errors.New(`ent: missing required field "SmsNotification.sms_type"`)}
	}
	if v, ok := snc.mutation.SmsType(); ok {
		if err := smsnotification.SmsTypeValidator(v); err != nil {
			return &ValidationError{Name: "sms_type", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.sms_type": %w`, err)}
		}
	}
	if _, ok := snc.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SmsNotification.message"`)}
	}
	if v, ok := snc.mutation.Message(); ok {
		if err := smsnotification.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.message": %w`, err)}
		}
	}
	if _, ok := snc.mutation.DeliveryStatus(); !ok {
		return &ValidationError{Name: "delivery_status", err: errors.New(`ent: missing required field "SmsNotification.delivery_status"`)}
	}
	return nil
}

func (snc *SmsNotificationCreate) sqlSave(ctx context.Context) (*SmsNotification, error) {
	if err := snc.check(); err != nil {
		return nil, err
	}
	_node, _spec := snc.createSpec()
	if err := sqlgraph.CreateNode(ctx, snc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SmsNotification.ID type: %T", _spec.ID.Value)
		}
	}
	snc.mutation.id = &_node.ID
	snc.mutation.done = true
	return _node, nil
}

func (snc *SmsNotificationCreate) createSpec() (*SmsNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &SmsNotification{config: snc.config}
		_spec = sqlgraph.NewCreateSpec(smsnotification.Table, sqlgraph.NewFieldSpec(smsnotification.FieldID, field.TypeString))
	)
	_spec.OnConflict = snc.conflict
	if id, ok := snc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := snc.mutation.AccountID(); ok {
		_spec.SetField(smsnotification.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := snc.mutation.Status(); ok {
		_spec.SetField(smsnotification.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := snc.mutation.CreatedAt(); ok {
		_spec.SetField(smsnotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := snc.mutation.UpdatedAt(); ok {
		_spec.SetField(smsnotification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := snc.mutation.CreatedBy(); ok {
		_spec.SetField(smsnotification.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := snc.mutation.UpdatedBy(); ok {
		_spec.SetField(smsnotification.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := snc.mutation.TenantID(); ok {
		_spec.SetField(smsnotification.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := snc.mutation.SmsType(); ok {
		_spec.SetField(smsnotification.FieldSmsType, field.TypeString, value)
		_node.SmsType = value
	}
	if value, ok := snc.mutation.PhoneNumber(); ok {
		_spec.SetField(smsnotification.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := snc.mutation.Message(); ok {
		_spec.SetField(smsnotification.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := snc.mutation.DeliveryStatus(); ok {
		_spec.SetField(smsnotification.FieldDeliveryStatus, field.TypeString, value)
		_node.DeliveryStatus = value
	}
	if value, ok := snc.mutation.FailureReason(); ok {
		_spec.SetField(smsnotification.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmsNotification.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmsNotificationUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (snc *SmsNotificationCreate) OnConflict(opts ...sql.ConflictOption) *SmsNotificationUpsertOne {
	snc.conflict = opts
	return &SmsNotificationUpsertOne{
		create: snc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (snc *SmsNotificationCreate) OnConflictColumns(columns ...string) *SmsNotificationUpsertOne {
	snc.conflict = append(snc.conflict, sql.ConflictColumns(columns...))
	return &SmsNotificationUpsertOne{
		create: snc,
	}
}

type (
	// SmsNotificationUpsertOne is the builder for "upsert"-ing
	//  one SmsNotification node.
	SmsNotificationUpsertOne struct {
		create *SmsNotificationCreate
	}

	// SmsNotificationUpsert is the "OnConflict" setter.
	SmsNotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SmsNotificationUpsert) SetStatus(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateStatus() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SmsNotificationUpsert) SetUpdatedAt(v time.Time) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateUpdatedAt() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SmsNotificationUpsert) SetUpdatedBy(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateUpdatedBy() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SmsNotificationUpsert) ClearUpdatedBy() *SmsNotificationUpsert {
	u.SetNull(smsnotification.FieldUpdatedBy)
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *SmsNotificationUpsert) SetTenantID(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateTenantID() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldTenantID)
	return u
}

// ClearTenantID clears the value of the "tenant_id" field.
func (u *SmsNotificationUpsert) ClearTenantID() *SmsNotificationUpsert {
	u.SetNull(smsnotification.FieldTenantID)
	return u
}

// SetSmsType sets the "sms_type" field.
func (u *SmsNotificationUpsert) SetSmsType(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldSmsType, v)
	return u
}

// UpdateSmsType sets the "sms_type" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateSmsType() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldSmsType)
	return u
}

// SetPhoneNumber sets the "phone_number" field.
func (u *SmsNotificationUpsert) SetPhoneNumber(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldPhoneNumber, v)
	return u
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdatePhoneNumber() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldPhoneNumber)
	return u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *SmsNotificationUpsert) ClearPhoneNumber() *SmsNotificationUpsert {
	u.SetNull(smsnotification.FieldPhoneNumber)
	return u
}

// SetMessage sets the "message" field.
func (u *SmsNotificationUpsert) SetMessage(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateMessage() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldMessage)
	return u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SmsNotificationUpsert) SetDeliveryStatus(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldDeliveryStatus, v)
	return u
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateDeliveryStatus() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldDeliveryStatus)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *SmsNotificationUpsert) SetFailureReason(v string) *SmsNotificationUpsert {
	u.Set(smsnotification.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SmsNotificationUpsert) UpdateFailureReason() *SmsNotificationUpsert {
	u.SetExcluded(smsnotification.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SmsNotificationUpsert) ClearFailureReason() *SmsNotificationUpsert {
	u.SetNull(smsnotification.FieldFailureReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmsNotificationUpsertOne) UpdateNewValues() *SmsNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(smsnotification.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(smsnotification.FieldAccountID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(smsnotification.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(smsnotification.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SmsNotificationUpsertOne) Ignore() *SmsNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmsNotificationUpsertOne) DoNothing() *SmsNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmsNotificationCreate.OnConflict
// documentation for more info.
func (u *SmsNotificationUpsertOne) Update(set func(*SmsNotificationUpsert)) *SmsNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmsNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SmsNotificationUpsertOne) SetStatus(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateStatus() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SmsNotificationUpsertOne) SetUpdatedAt(v time.Time) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateUpdatedAt() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SmsNotificationUpsertOne) SetUpdatedBy(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateUpdatedBy() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SmsNotificationUpsertOne) ClearUpdatedBy() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *SmsNotificationUpsertOne) SetTenantID(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateTenantID() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateTenantID()
	})
}

// ClearTenantID clears the value of the "tenant_id" field.
func (u *SmsNotificationUpsertOne) ClearTenantID() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearTenantID()
	})
}

// SetSmsType sets the "sms_type" field.
func (u *SmsNotificationUpsertOne) SetSmsType(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetSmsType(v)
	})
}

// UpdateSmsType sets the "sms_type" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateSmsType() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateSmsType()
	})
}

// SetPhoneNumber sets the "phone_number" field.
func (u *SmsNotificationUpsertOne) SetPhoneNumber(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetPhoneNumber(v)
	})
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdatePhoneNumber() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdatePhoneNumber()
	})
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *SmsNotificationUpsertOne) ClearPhoneNumber() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearPhoneNumber()
	})
}

// SetMessage sets the "message" field.
func (u *SmsNotificationUpsertOne) SetMessage(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateMessage() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateMessage()
	})
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SmsNotificationUpsertOne) SetDeliveryStatus(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetDeliveryStatus(v)
	})
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateDeliveryStatus() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateDeliveryStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SmsNotificationUpsertOne) SetFailureReason(v string) *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SmsNotificationUpsertOne) UpdateFailureReason() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SmsNotificationUpsertOne) ClearFailureReason() *SmsNotificationUpsertOne {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearFailureReason()
	})
}

// Exec executes the query.
func (u *SmsNotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SmsNotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmsNotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SmsNotificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SmsNotificationUpsertOne.ID is not supported by MySQL driver. Use SmsNotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SmsNotificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SmsNotificationCreateBulk is the builder for creating many SmsNotification entities in bulk.
type SmsNotificationCreateBulk struct {
	config
	err      error
	builders []*SmsNotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the SmsNotification entities in the database.
func (sncb *SmsNotificationCreateBulk) Save(ctx context.Context) ([]*SmsNotification, error) {
	if sncb.err != nil {
		return nil, sncb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sncb.builders))
	nodes := make([]*SmsNotification, len(sncb.builders))
	mutators := make([]Mutator, len(sncb.builders))
	for i := range sncb.builders {
		func(i int, root context.Context) {
			builder := sncb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SmsNotificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, sncb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = sncb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sncb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, sncb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sncb *SmsNotificationCreateBulk) SaveX(ctx context.Context) []*SmsNotification {
	v, err := sncb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sncb *SmsNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := sncb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sncb *SmsNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := sncb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmsNotification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmsNotificationUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (sncb *SmsNotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *SmsNotificationUpsertBulk {
	sncb.conflict = opts
	return &SmsNotificationUpsertBulk{
		create: sncb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sncb *SmsNotificationCreateBulk) OnConflictColumns(columns ...string) *SmsNotificationUpsertBulk {
	sncb.conflict = append(sncb.conflict, sql.ConflictColumns(columns...))
	return &SmsNotificationUpsertBulk{
		create: sncb,
	}
}

// SmsNotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of SmsNotification nodes.
type SmsNotificationUpsertBulk struct {
	create *SmsNotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmsNotificationUpsertBulk) UpdateNewValues() *SmsNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(smsnotification.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(smsnotification.FieldAccountID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(smsnotification.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(smsnotification.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmsNotification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SmsNotificationUpsertBulk) Ignore() *SmsNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmsNotificationUpsertBulk) DoNothing() *SmsNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmsNotificationCreateBulk.OnConflict
// documentation for more info.
func (u *SmsNotificationUpsertBulk) Update(set func(*SmsNotificationUpsert)) *SmsNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmsNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SmsNotificationUpsertBulk) SetStatus(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateStatus() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SmsNotificationUpsertBulk) SetUpdatedAt(v time.Time) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateUpdatedAt() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SmsNotificationUpsertBulk) SetUpdatedBy(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateUpdatedBy() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SmsNotificationUpsertBulk) ClearUpdatedBy() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *SmsNotificationUpsertBulk) SetTenantID(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateTenantID() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateTenantID()
	})
}

// ClearTenantID clears the value of the "tenant_id" field.
func (u *SmsNotificationUpsertBulk) ClearTenantID() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearTenantID()
	})
}

// SetSmsType sets the "sms_type" field.
func (u *SmsNotificationUpsertBulk) SetSmsType(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetSmsType(v)
	})
}

// UpdateSmsType sets the "sms_type" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateSmsType() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateSmsType()
	})
}

// SetPhoneNumber sets the "phone_number" field.
func (u *SmsNotificationUpsertBulk) SetPhoneNumber(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetPhoneNumber(v)
	})
}

// UpdatePhoneNumber sets the "phone_number" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdatePhoneNumber() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdatePhoneNumber()
	})
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (u *SmsNotificationUpsertBulk) ClearPhoneNumber() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearPhoneNumber()
	})
}

// SetMessage sets the "message" field.
func (u *SmsNotificationUpsertBulk) SetMessage(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateMessage() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateMessage()
	})
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SmsNotificationUpsertBulk) SetDeliveryStatus(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetDeliveryStatus(v)
	})
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateDeliveryStatus() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateDeliveryStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SmsNotificationUpsertBulk) SetFailureReason(v string) *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SmsNotificationUpsertBulk) UpdateFailureReason() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SmsNotificationUpsertBulk) ClearFailureReason() *SmsNotificationUpsertBulk {
	return u.Update(func(s *SmsNotificationUpsert) {
		s.ClearFailureReason()
	})
}

// Exec executes the query.
func (u *SmsNotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SmsNotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SmsNotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmsNotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
