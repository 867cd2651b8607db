// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	"github.com/rentdesk/rentdesk/ent/predicate"
)

// PaymentTransactionQuery is the builder for querying PaymentTransaction entities.
type PaymentTransactionQuery struct {
	config
	ctx        *QueryContext
	order      []paymenttransaction.OrderOption
	inters     []Interceptor
	predicates []predicate.PaymentTransaction
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaymentTransactionQuery builder.
func (ptq *PaymentTransactionQuery) Where(ps ...predicate.PaymentTransaction) *PaymentTransactionQuery {
	ptq.predicates = append(ptq.predicates, ps...)
	return ptq
}

// Limit the number of records to be returned by this query.
func (ptq *PaymentTransactionQuery) Limit(limit int) *PaymentTransactionQuery {
	ptq.ctx.Limit = &limit
	return ptq
}

// Offset to start from.
func (ptq *PaymentTransactionQuery) Offset(offset int) *PaymentTransactionQuery {
	ptq.ctx.Offset = &offset
	return ptq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ptq *PaymentTransactionQuery) Unique(unique bool) *PaymentTransactionQuery {
	ptq.ctx.Unique = &unique
	return ptq
}

// Order specifies how the records should be ordered.
func (ptq *PaymentTransactionQuery) Order(o ...paymenttransaction.OrderOption) *PaymentTransactionQuery {
	ptq.order = append(ptq.order, o...)
	return ptq
}

// First returns the first PaymentTransaction entity from the query.
// Returns a *NotFoundError when no PaymentTransaction was found.
func (ptq *PaymentTransactionQuery) First(ctx context.Context) (*PaymentTransaction, error) {
	nodes, err := ptq.Limit(1).All(setContextOp(ctx, ptq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paymenttransaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) FirstX(ctx context.Context) *PaymentTransaction {
	node, err := ptq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaymentTransaction ID from the query.
// Returns a *NotFoundError when no PaymentTransaction ID was found.
func (ptq *PaymentTransactionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ptq.Limit(1).IDs(setContextOp(ctx, ptq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paymenttransaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) FirstIDX(ctx context.Context) string {
	id, err := ptq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaymentTransaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaymentTransaction entity is found.
// Returns a *NotFoundError when no PaymentTransaction entities are found.
func (ptq *PaymentTransactionQuery) Only(ctx context.Context) (*PaymentTransaction, error) {
	nodes, err := ptq.Limit(2).All(setContextOp(ctx, ptq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paymenttransaction.Label}
	default:
		return nil, &NotSingularError{paymenttransaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) OnlyX(ctx context.Context) *PaymentTransaction {
	node, err := ptq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaymentTransaction ID in the query.
// Returns a *NotSingularError when more than one PaymentTransaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (ptq *PaymentTransactionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ptq.Limit(2).IDs(setContextOp(ctx, ptq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paymenttransaction.Label}
	default:
		err = &NotSingularError{paymenttransaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) OnlyIDX(ctx context.Context) string {
	id, err := ptq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaymentTransactions.
func (ptq *PaymentTransactionQuery) All(ctx context.Context) ([]*PaymentTransaction, error) {
	ctx = setContextOp(ctx, ptq.ctx, "All")
	if err := ptq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaymentTransaction, *PaymentTransactionQuery]()
	return withInterceptors[[]*PaymentTransaction](ctx, ptq, qr, ptq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) AllX(ctx context.Context) []*PaymentTransaction {
	nodes, err := ptq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaymentTransaction IDs.
func (ptq *PaymentTransactionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if ptq.ctx.Unique == nil && ptq.path != nil {
		ptq.Unique(true)
	}
	ctx = setContextOp(ctx, ptq.ctx, "IDs")
	if err = ptq.Select(paymenttransaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) IDsX(ctx context.Context) []string {
	ids, err := ptq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ptq *PaymentTransactionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ptq.ctx, "Count")
	if err := ptq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ptq, querierCount[*PaymentTransactionQuery](), ptq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) CountX(ctx context.Context) int {
	count, err := ptq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ptq *PaymentTransactionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ptq.ctx, "Exist")
	switch _, err := ptq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ptq *PaymentTransactionQuery) ExistX(ctx context.Context) bool {
	exist, err := ptq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaymentTransactionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ptq *PaymentTransactionQuery) Clone() *PaymentTransactionQuery {
	if ptq == nil {
		return nil
	}
	return &PaymentTransactionQuery{
		config:     ptq.config,
		ctx:        ptq.ctx.Clone(),
		order:      append([]paymenttransaction.OrderOption{}, ptq.order...),
		inters:     append([]Interceptor{}, ptq.inters...),
		predicates: append([]predicate.PaymentTransaction{}, ptq.predicates...),
		// clone intermediate query.
		sql:  ptq.sql.Clone(),
		path: ptq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AccountID string `json:"account_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PaymentTransaction.Query().
//		GroupBy(paymenttransaction.FieldAccountID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ptq *PaymentTransactionQuery) GroupBy(field string, fields ...string) *PaymentTransactionGroupBy {
	ptq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaymentTransactionGroupBy{build: ptq}
	grbuild.flds = &ptq.ctx.Fields
	grbuild.label = paymenttransaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AccountID string `json:"account_id,omitempty"`
//	}
//
//	client.PaymentTransaction.Query().
//		Select(paymenttransaction.FieldAccountID).
//		Scan(ctx, &v)
func (ptq *PaymentTransactionQuery) Select(fields ...string) *PaymentTransactionSelect {
	ptq.ctx.Fields = append(ptq.ctx.Fields, fields...)
	sbuild := &PaymentTransactionSelect{PaymentTransactionQuery: ptq}
	sbuild.label = paymenttransaction.Label
	sbuild.flds, sbuild.scan = &ptq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaymentTransactionSelect configured with the given aggregations.
func (ptq *PaymentTransactionQuery) Aggregate(fns ...AggregateFunc) *PaymentTransactionSelect {
	return ptq.Select().Aggregate(fns...)
}

func (ptq *PaymentTransactionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ptq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ptq); err != nil {
				return err
			}
		}
	}
	for _, f := range ptq.ctx.Fields {
		if !paymenttransaction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ptq.path != nil {
		prev, err := ptq.path(ctx)
		if err != nil {
			return err
		}
		ptq.sql = prev
	}
	return nil
}

func (ptq *PaymentTransactionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaymentTransaction, error) {
	var (
		nodes = []*PaymentTransaction{}
		_spec = ptq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaymentTransaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaymentTransaction{config: ptq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ptq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ptq *PaymentTransactionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ptq.querySpec()
	_spec.Node.Columns = ptq.ctx.Fields
	if len(ptq.ctx.Fields) > 0 {
		_spec.Unique = ptq.ctx.Unique != nil && *ptq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ptq.driver, _spec)
}

func (ptq *PaymentTransactionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paymenttransaction.Table, paymenttransaction.Columns, sqlgraph.NewFieldSpec(paymenttransaction.FieldID, field.TypeString))
	_spec.From = ptq.sql
	if unique := ptq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ptq.path != nil {
		_spec.Unique = true
	}
	if fields := ptq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymenttransaction.FieldID)
		for i := range fields {
			if fields[i] != paymenttransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ptq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ptq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ptq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ptq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ptq *PaymentTransactionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ptq.driver.Dialect())
	t1 := builder.Table(paymenttransaction.Table)
	columns := ptq.ctx.Fields
	if len(columns) == 0 {
		columns = paymenttransaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ptq.sql != nil {
		selector = ptq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ptq.ctx.Unique != nil && *ptq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ptq.predicates {
		p(selector)
	}
	for _, p := range ptq.order {
		p(selector)
	}
	if offset := ptq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ptq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PaymentTransactionGroupBy is the group-by builder for PaymentTransaction entities.
type PaymentTransactionGroupBy struct {
	selector
	build *PaymentTransactionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ptgb *PaymentTransactionGroupBy) Aggregate(fns ...AggregateFunc) *PaymentTransactionGroupBy {
	ptgb.fns = append(ptgb.fns, fns...)
	return ptgb
}

// Scan applies the selector query and scans the result into the given value.
func (ptgb *PaymentTransactionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ptgb.build.ctx, "GroupBy")
	if err := ptgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentTransactionQuery, *PaymentTransactionGroupBy](ctx, ptgb.build, ptgb, ptgb.build.inters, v)
}

func (ptgb *PaymentTransactionGroupBy) sqlScan(ctx context.Context, root *PaymentTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ptgb.fns))
	for _, fn := range ptgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ptgb.flds)+len(ptgb.fns))
		for _, f := range *ptgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ptgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ptgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PaymentTransactionSelect is the builder for selecting fields of PaymentTransaction entities.
type PaymentTransactionSelect struct {
	*PaymentTransactionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pts *PaymentTransactionSelect) Aggregate(fns ...AggregateFunc) *PaymentTransactionSelect {
	pts.fns = append(pts.fns, fns...)
	return pts
}

// Scan applies the selector query and scans the result into the given value.
func (pts *PaymentTransactionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pts.ctx, "Select")
	if err := pts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentTransactionQuery, *PaymentTransactionSelect](ctx, pts.PaymentTransactionQuery, pts, pts.inters, v)
}

func (pts *PaymentTransactionSelect) sqlScan(ctx context.Context, root *PaymentTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pts.fns))
	for _, fn := range pts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
