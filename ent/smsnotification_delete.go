// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
)

// SmsNotificationDelete is the builder for deleting a SmsNotification entity.
type SmsNotificationDelete struct {
	config
	hooks    []Hook
	mutation *SmsNotificationMutation
}

// Where appends a list predicates to the SmsNotificationDelete builder.
func (snd *SmsNotificationDelete) Where(ps ...predicate.SmsNotification) *SmsNotificationDelete {
	snd.mutation.Where(ps...)
	return snd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (snd *SmsNotificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, snd.sqlExec, snd.mutation, snd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (snd *SmsNotificationDelete) ExecX(ctx context.Context) int {
	n, err := snd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (snd *SmsNotificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(smsnotification.Table, sqlgraph.NewFieldSpec(smsnotification.FieldID, field.TypeString))
	if ps := snd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, snd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	snd.mutation.done = true
	return affected, err
}

// SmsNotificationDeleteOne is the builder for deleting a single SmsNotification entity.
type SmsNotificationDeleteOne struct {
	snd *SmsNotificationDelete
}

// Where appends a list predicates to the SmsNotificationDelete builder.
func (sndo *SmsNotificationDeleteOne) Where(ps ...predicate.SmsNotification) *SmsNotificationDeleteOne {
	sndo.snd.mutation.Where(ps...)
	return sndo
}

// Exec executes the deletion query.
func (sndo *SmsNotificationDeleteOne) Exec(ctx context.Context) error {
	n, err := sndo.snd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{smsnotification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sndo *SmsNotificationDeleteOne) ExecX(ctx context.Context) {
	if err := sndo.Exec(ctx); err != nil {
		panic(err)
	}
}
