// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
)

// SmsNotificationUpdate is the builder for updating SmsNotification entities.
type SmsNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *SmsNotificationMutation
}

// Where appends a list predicates to the SmsNotificationUpdate builder.
func (snu *SmsNotificationUpdate) Where(ps ...predicate.SmsNotification) *SmsNotificationUpdate {
	snu.mutation.Where(ps...)
	return snu
}

// SetStatus sets the "status" field.
func (snu *SmsNotificationUpdate) SetStatus(s string) *SmsNotificationUpdate {
	snu.mutation.SetStatus(s)
	return snu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableStatus(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetStatus(*s)
	}
	return snu
}

// SetUpdatedAt sets the "updated_at" field.
func (snu *SmsNotificationUpdate) SetUpdatedAt(t time.Time) *SmsNotificationUpdate {
	snu.mutation.SetUpdatedAt(t)
	return snu
}

// SetUpdatedBy sets the "updated_by" field.
func (snu *SmsNotificationUpdate) SetUpdatedBy(s string) *SmsNotificationUpdate {
	snu.mutation.SetUpdatedBy(s)
	return snu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableUpdatedBy(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetUpdatedBy(*s)
	}
	return snu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (snu *SmsNotificationUpdate) ClearUpdatedBy() *SmsNotificationUpdate {
	snu.mutation.ClearUpdatedBy()
	return snu
}

// SetTenantID sets the "tenant_id" field.
func (snu *SmsNotificationUpdate) SetTenantID(s string) *SmsNotificationUpdate {
	snu.mutation.SetTenantID(s)
	return snu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableTenantID(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetTenantID(*s)
	}
	return snu
}

// ClearTenantID clears the value of the "tenant_id" field.
func (snu *SmsNotificationUpdate) ClearTenantID() *SmsNotificationUpdate {
	snu.mutation.ClearTenantID()
	return snu
}

// SetSmsType sets the "sms_type" field.
func (snu *SmsNotificationUpdate) SetSmsType(s string) *SmsNotificationUpdate {
	snu.mutation.SetSmsType(s)
	return snu
}

// SetNillableSmsType sets the "sms_type" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableSmsType(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetSmsType(*s)
	}
	return snu
}

// SetPhoneNumber sets the "phone_number" field.
func (snu *SmsNotificationUpdate) SetPhoneNumber(s string) *SmsNotificationUpdate {
	snu.mutation.SetPhoneNumber(s)
	return snu
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillablePhoneNumber(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetPhoneNumber(*s)
	}
	return snu
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (snu *SmsNotificationUpdate) ClearPhoneNumber() *SmsNotificationUpdate {
	snu.mutation.ClearPhoneNumber()
	return snu
}

// SetMessage sets the "message" field.
func (snu *SmsNotificationUpdate) SetMessage(s string) *SmsNotificationUpdate {
	snu.mutation.SetMessage(s)
	return snu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableMessage(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetMessage(*s)
	}
	return snu
}

// SetDeliveryStatus sets the "delivery_status" field.
func (snu *SmsNotificationUpdate) SetDeliveryStatus(s string) *SmsNotificationUpdate {
	snu.mutation.SetDeliveryStatus(s)
	return snu
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableDeliveryStatus(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetDeliveryStatus(*s)
	}
	return snu
}

// SetFailureReason sets the "failure_reason" field.
func (snu *SmsNotificationUpdate) SetFailureReason(s string) *SmsNotificationUpdate {
	snu.mutation.SetFailureReason(s)
	return snu
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (snu *SmsNotificationUpdate) SetNillableFailureReason(s *string) *SmsNotificationUpdate {
	if s != nil {
		snu.SetFailureReason(*s)
	}
	return snu
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (snu *SmsNotificationUpdate) ClearFailureReason() *SmsNotificationUpdate {
	snu.mutation.ClearFailureReason()
	return snu
}

// Mutation returns the SmsNotificationMutation object of the builder.
func (snu *SmsNotificationUpdate) Mutation() *SmsNotificationMutation {
	return snu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (snu *SmsNotificationUpdate) Save(ctx context.Context) (int, error) {
	snu.defaults()
	return withHooks(ctx, snu.sqlSave, snu.mutation, snu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (snu *SmsNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := snu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (snu *SmsNotificationUpdate) Exec(ctx context.Context) error {
	_, err := snu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (snu *SmsNotificationUpdate) ExecX(ctx context.Context) {
	if err := snu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (snu *SmsNotificationUpdate) defaults() {
	if _, ok := snu.mutation.UpdatedAt(); !ok {
		v := smsnotification.UpdateDefaultUpdatedAt()
		snu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (snu *SmsNotificationUpdate) check() error {
	if v, ok := snu.mutation.SmsType(); ok {
		if err := smsnotification.SmsTypeValidator(v); err != nil {
			return &ValidationError{Name: "sms_type", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.sms_type": %w`, err)}
		}
	}
	if v, ok := snu.mutation.Message(); ok {
		if err := smsnotification.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.message": %w`, err)}
		}
	}
	return nil
}

func (snu *SmsNotificationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := snu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsnotification.Table, smsnotification.Columns, sqlgraph.NewFieldSpec(smsnotification.FieldID, field.TypeString))
	if ps := snu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := snu.mutation.Status(); ok {
		_spec.SetField(smsnotification.FieldStatus, field.TypeString, value)
	}
	if value, ok := snu.mutation.UpdatedAt(); ok {
		_spec.SetField(smsnotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if snu.mutation.CreatedByCleared() {
		_spec.ClearField(smsnotification.FieldCreatedBy, field.TypeString)
	}
	if value, ok := snu.mutation.UpdatedBy(); ok {
		_spec.SetField(smsnotification.FieldUpdatedBy, field.TypeString, value)
	}
	if snu.mutation.UpdatedByCleared() {
		_spec.ClearField(smsnotification.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := snu.mutation.TenantID(); ok {
		_spec.SetField(smsnotification.FieldTenantID, field.TypeString, value)
	}
	if snu.mutation.TenantIDCleared() {
		_spec.ClearField(smsnotification.FieldTenantID, field.TypeString)
	}
	if value, ok := snu.mutation.SmsType(); ok {
		_spec.SetField(smsnotification.FieldSmsType, field.TypeString, value)
	}
	if value, ok := snu.mutation.PhoneNumber(); ok {
		_spec.SetField(smsnotification.FieldPhoneNumber, field.TypeString, value)
	}
	if snu.mutation.PhoneNumberCleared() {
		_spec.ClearField(smsnotification.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := snu.mutation.Message(); ok {
		_spec.SetField(smsnotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := snu.mutation.DeliveryStatus(); ok {
		_spec.SetField(smsnotification.FieldDeliveryStatus, field.TypeString, value)
	}
	if value, ok := snu.mutation.FailureReason(); ok {
		_spec.SetField(smsnotification.FieldFailureReason, field.TypeString, value)
	}
	if snu.mutation.FailureReasonCleared() {
		_spec.ClearField(smsnotification.FieldFailureReason, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, snu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	snu.mutation.done = true
	return n, nil
}

// SmsNotificationUpdateOne is the builder for updating a single SmsNotification entity.
type SmsNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SmsNotificationMutation
}

// SetStatus sets the "status" field.
func (snuo *SmsNotificationUpdateOne) SetStatus(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetStatus(s)
	return snuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableStatus(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetStatus(*s)
	}
	return snuo
}

// SetUpdatedAt sets the "updated_at" field.
func (snuo *SmsNotificationUpdateOne) SetUpdatedAt(t time.Time) *SmsNotificationUpdateOne {
	snuo.mutation.SetUpdatedAt(t)
	return snuo
}

// SetUpdatedBy sets the "updated_by" field.
func (snuo *SmsNotificationUpdateOne) SetUpdatedBy(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetUpdatedBy(s)
	return snuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableUpdatedBy(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetUpdatedBy(*s)
	}
	return snuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (snuo *SmsNotificationUpdateOne) ClearUpdatedBy() *SmsNotificationUpdateOne {
	snuo.mutation.ClearUpdatedBy()
	return snuo
}

// SetTenantID sets the "tenant_id" field.
func (snuo *SmsNotificationUpdateOne) SetTenantID(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetTenantID(s)
	return snuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableTenantID(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetTenantID(*s)
	}
	return snuo
}

// ClearTenantID clears the value of the "tenant_id" field.
func (snuo *SmsNotificationUpdateOne) ClearTenantID() *SmsNotificationUpdateOne {
	snuo.mutation.ClearTenantID()
	return snuo
}

// SetSmsType sets the "sms_type" field.
func (snuo *SmsNotificationUpdateOne) SetSmsType(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetSmsType(s)
	return snuo
}

// SetNillableSmsType sets the "sms_type" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableSmsType(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetSmsType(*s)
	}
	return snuo
}

// SetPhoneNumber sets the "phone_number" field.
func (snuo *SmsNotificationUpdateOne) SetPhoneNumber(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetPhoneNumber(s)
	return snuo
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillablePhoneNumber(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetPhoneNumber(*s)
	}
	return snuo
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (snuo *SmsNotificationUpdateOne) ClearPhoneNumber() *SmsNotificationUpdateOne {
	snuo.mutation.ClearPhoneNumber()
	return snuo
}

// SetMessage sets the "message" field.
func (snuo *SmsNotificationUpdateOne) SetMessage(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetMessage(s)
	return snuo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableMessage(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetMessage(*s)
	}
	return snuo
}

// SetDeliveryStatus sets the "delivery_status" field.
func (snuo *SmsNotificationUpdateOne) SetDeliveryStatus(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetDeliveryStatus(s)
	return snuo
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableDeliveryStatus(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetDeliveryStatus(*s)
	}
	return snuo
}

// SetFailureReason sets the "failure_reason" field.
func (snuo *SmsNotificationUpdateOne) SetFailureReason(s string) *SmsNotificationUpdateOne {
	snuo.mutation.SetFailureReason(s)
	return snuo
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (snuo *SmsNotificationUpdateOne) SetNillableFailureReason(s *string) *SmsNotificationUpdateOne {
	if s != nil {
		snuo.SetFailureReason(*s)
	}
	return snuo
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (snuo *SmsNotificationUpdateOne) ClearFailureReason() *SmsNotificationUpdateOne {
	snuo.mutation.ClearFailureReason()
	return snuo
}

// Mutation returns the SmsNotificationMutation object of the builder.
func (snuo *SmsNotificationUpdateOne) Mutation() *SmsNotificationMutation {
	return snuo.mutation
}

// Where appends a list predicates to the SmsNotificationUpdate builder.
func (snuo *SmsNotificationUpdateOne) Where(ps ...predicate.SmsNotification) *SmsNotificationUpdateOne {
	snuo.mutation.Where(ps...)
	return snuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (snuo *SmsNotificationUpdateOne) Select(field string, fields ...string) *SmsNotificationUpdateOne {
	snuo.fields = append([]string{field}, fields...)
	return snuo
}

// Save executes the query and returns the updated SmsNotification entity.
func (snuo *SmsNotificationUpdateOne) Save(ctx context.Context) (*SmsNotification, error) {
	snuo.defaults()
	return withHooks(ctx, snuo.sqlSave, snuo.mutation, snuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (snuo *SmsNotificationUpdateOne) SaveX(ctx context.Context) *SmsNotification {
	node, err := snuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (snuo *SmsNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := snuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (snuo *SmsNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := snuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (snuo *SmsNotificationUpdateOne) defaults() {
	if _, ok := snuo.mutation.UpdatedAt(); !ok {
		v := smsnotification.UpdateDefaultUpdatedAt()
		snuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (snuo *SmsNotificationUpdateOne) check() error {
	if v, ok := snuo.mutation.SmsType(); ok {
		if err := smsnotification.SmsTypeValidator(v); err != nil {
			return &ValidationError{Name: "sms_type", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.sms_type": %w`, err)}
		}
	}
	if v, ok := snuo.mutation.Message(); ok {
		if err := smsnotification.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "SmsNotification.message": %w`, err)}
		}
	}
	return nil
}

func (snuo *SmsNotificationUpdateOne) sqlSave(ctx context.Context) (_node *SmsNotification, err error) {
	if err := snuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsnotification.Table, smsnotification.Columns, sqlgraph.NewFieldSpec(smsnotification.FieldID, field.TypeString))
	id, ok := snuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SmsNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := snuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smsnotification.FieldID)
		for _, f := range fields {
			if !smsnotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != smsnotification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := snuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := snuo.mutation.Status(); ok {
		_spec.SetField(smsnotification.FieldStatus, field.TypeString, value)
	}
	if value, ok := snuo.mutation.UpdatedAt(); ok {
		_spec.SetField(smsnotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if snuo.mutation.CreatedByCleared() {
		_spec.ClearField(smsnotification.FieldCreatedBy, field.TypeString)
	}
	if value, ok := snuo.mutation.UpdatedBy(); ok {
		_spec.SetField(smsnotification.FieldUpdatedBy, field.TypeString, value)
	}
	if snuo.mutation.UpdatedByCleared() {
		_spec.ClearField(smsnotification.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := snuo.mutation.TenantID(); ok {
		_spec.SetField(smsnotification.FieldTenantID, field.TypeString, value)
	}
	if snuo.mutation.TenantIDCleared() {
		_spec.ClearField(smsnotification.FieldTenantID, field.TypeString)
	}
	if value, ok := snuo.mutation.SmsType(); ok {
		_spec.SetField(smsnotification.FieldSmsType, field.TypeString, value)
	}
	if value, ok := snuo.mutation.PhoneNumber(); ok {
		_spec.SetField(smsnotification.FieldPhoneNumber, field.TypeString, value)
	}
	if snuo.mutation.PhoneNumberCleared() {
		_spec.ClearField(smsnotification.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := snuo.mutation.Message(); ok {
		_spec.SetField(smsnotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := snuo.mutation.DeliveryStatus(); ok {
		_spec.SetField(smsnotification.FieldDeliveryStatus, field.TypeString, value)
	}
	if value, ok := snuo.mutation.FailureReason(); ok {
		_spec.SetField(smsnotification.FieldFailureReason, field.TypeString, value)
	}
	if snuo.mutation.FailureReasonCleared() {
		_spec.ClearField(smsnotification.FieldFailureReason, field.TypeString)
	}
	_node = &SmsNotification{config: snuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, snuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	snuo.mutation.done = true
	return _node, nil
}
