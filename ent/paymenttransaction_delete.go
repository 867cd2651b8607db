// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/ent/predicate"
)

// PaymentTransactionDelete is the builder for deleting a PaymentTransaction entity.
type PaymentTransactionDelete struct {
	config
	hooks    []Hook
	mutation *PaymentTransactionMutation
}

// Where appends a list predicates to the PaymentTransactionDelete builder.
func (ptd *PaymentTransactionDelete) Where(ps ...predicate.PaymentTransaction) *PaymentTransactionDelete {
	ptd.mutation.Where(ps...)
	return ptd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ptd *PaymentTransactionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ptd.sqlExec, ptd.mutation, ptd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ptd *PaymentTransactionDelete) ExecX(ctx context.Context) int {
	n, err := ptd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ptd *PaymentTransactionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(paymenttransaction.Table, sqlgraph.NewFieldSpec(paymenttransaction.FieldID, field.TypeString))
	if ps := ptd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ptd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ptd.mutation.done = true
	return affected, err
}

// PaymentTransactionDeleteOne is the builder for deleting a single PaymentTransaction entity.
type PaymentTransactionDeleteOne struct {
	ptd *PaymentTransactionDelete
}

// Where appends a list predicates to the PaymentTransactionDelete builder.
func (ptdo *PaymentTransactionDeleteOne) Where(ps ...predicate.PaymentTransaction) *PaymentTransactionDeleteOne {
	ptdo.ptd.mutation.Where(ps...)
	return ptdo
}

// Exec executes the deletion query.
func (ptdo *PaymentTransactionDeleteOne) Exec(ctx context.Context) error {
	n, err := ptdo.ptd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{paymenttransaction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ptdo *PaymentTransactionDeleteOne) ExecX(ctx context.Context) {
	if err := ptdo.Exec(ctx); err != nil {
		panic(err)
	}
}
