// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rentdesk/rentdesk/ent/predicate"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
)

// SmsNotificationQuery is the builder for querying SmsNotification entities.
type SmsNotificationQuery struct {
	config
	ctx        *QueryContext
	order      []smsnotification.OrderOption
	inters     []Interceptor
	predicates []predicate.SmsNotification
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SmsNotificationQuery builder.
func (snq *SmsNotificationQuery) Where(ps ...predicate.SmsNotification) *SmsNotificationQuery {
	snq.predicates = append(snq.predicates, ps...)
	return snq
}

// Limit the number of records to be returned by this query.
func (snq *SmsNotificationQuery) Limit(limit int) *SmsNotificationQuery {
	snq.ctx.Limit = &limit
	return snq
}

// Offset to start from.
func (snq *SmsNotificationQuery) Offset(offset int) *SmsNotificationQuery {
	snq.ctx.Offset = &offset
	return snq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (snq *SmsNotificationQuery) Unique(unique bool) *SmsNotificationQuery {
	snq.ctx.Unique = &unique
	return snq
}

// Order specifies how the records should be ordered.
func (snq *SmsNotificationQuery) Order(o ...smsnotification.OrderOption) *SmsNotificationQuery {
	snq.order = append(snq.order, o...)
	return snq
}

// First returns the first SmsNotification entity from the query.
// Returns a *NotFoundError when no SmsNotification was found.
func (snq *SmsNotificationQuery) First(ctx context.Context) (*SmsNotification, error) {
	nodes, err := snq.Limit(1).All(setContextOp(ctx, snq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{smsnotification.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (snq *SmsNotificationQuery) FirstX(ctx context.Context) *SmsNotification {
	node, err := snq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SmsNotification ID from the query.
// Returns a *NotFoundError when no SmsNotification ID was found.
func (snq *SmsNotificationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = snq.Limit(1).IDs(setContextOp(ctx, snq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{smsnotification.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (snq *SmsNotificationQuery) FirstIDX(ctx context.Context) string {
	id, err := snq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SmsNotification entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SmsNotification entity is found.
// Returns a *NotFoundError when no SmsNotification entities are found.
func (snq *SmsNotificationQuery) Only(ctx context.Context) (*SmsNotification, error) {
	nodes, err := snq.Limit(2).All(setContextOp(ctx, snq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{smsnotification.Label}
	default:
		return nil, &NotSingularError{smsnotification.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (snq *SmsNotificationQuery) OnlyX(ctx context.Context) *SmsNotification {
	node, err := snq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SmsNotification ID in the query.
// Returns a *NotSingularError when more than one SmsNotification ID is found.
// Returns a *NotFoundError when no entities are found.
func (snq *SmsNotificationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = snq.Limit(2).IDs(setContextOp(ctx, snq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{smsnotification.Label}
	default:
		err = &NotSingularError{smsnotification.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (snq *SmsNotificationQuery) OnlyIDX(ctx context.Context) string {
	id, err := snq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SmsNotifications.
func (snq *SmsNotificationQuery) All(ctx context.Context) ([]*SmsNotification, error) {
	ctx = setContextOp(ctx, snq.ctx, "All")
	if err := snq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SmsNotification, *SmsNotificationQuery]()
	return withInterceptors[[]*SmsNotification](ctx, snq, qr, snq.inters)
}

// AllX is like All, but panics if an error occurs.
func (snq *SmsNotificationQuery) AllX(ctx context.Context) []*SmsNotification {
	nodes, err := snq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SmsNotification IDs.
func (snq *SmsNotificationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if snq.ctx.Unique == nil && snq.path != nil {
		snq.Unique(true)
	}
	ctx = setContextOp(ctx, snq.ctx, "IDs")
	if err = snq.Select(smsnotification.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (snq *SmsNotificationQuery) IDsX(ctx context.Context) []string {
	ids, err := snq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (snq *SmsNotificationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, snq.ctx, "Count")
	if err := snq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, snq, querierCount[*SmsNotificationQuery](), snq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (snq *SmsNotificationQuery) CountX(ctx context.Context) int {
	count, err := snq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (snq *SmsNotificationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, snq.ctx, "Exist")
	switch _, err := snq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (snq *SmsNotificationQuery) ExistX(ctx context.Context) bool {
	exist, err := snq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SmsNotificationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (snq *SmsNotificationQuery) Clone() *SmsNotificationQuery {
	if snq == nil {
		return nil
	}
	return &SmsNotificationQuery{
		config:     snq.config,
		ctx:        snq.ctx.Clone(),
		order:      append([]smsnotification.OrderOption{}, snq.order...),
		inters:     append([]Interceptor{}, snq.inters...),
		predicates: append([]predicate.SmsNotification{}, snq.predicates...),
		// clone intermediate query.
		sql:  snq.sql.Clone(),
		path: snq.path,
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
//	client.SmsNotification.Query().
//		GroupBy(smsnotification.FieldAccountID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (snq *SmsNotificationQuery) GroupBy(field string, fields ...string) *SmsNotificationGroupBy {
	snq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SmsNotificationGroupBy{build: snq}
	grbuild.flds = &snq.ctx.Fields
	grbuild.label = smsnotification.Label
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
//	client.SmsNotification.Query().
//		Select(smsnotification.FieldAccountID).
//		Scan(ctx, &v)
func (snq *SmsNotificationQuery) Select(fields ...string) *SmsNotificationSelect {
	snq.ctx.Fields = append(snq.ctx.Fields, fields...)
	sbuild := &SmsNotificationSelect{SmsNotificationQuery: snq}
	sbuild.label = smsnotification.Label
	sbuild.flds, sbuild.scan = &snq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SmsNotificationSelect configured with the given aggregations.
func (snq *SmsNotificationQuery) Aggregate(fns ...AggregateFunc) *SmsNotificationSelect {
	return snq.Select().Aggregate(fns...)
}

func (snq *SmsNotificationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range snq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, snq); err != nil {
				return err
			}
		}
	}
	for _, f := range snq.ctx.Fields {
		if !smsnotification.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if snq.path != nil {
		prev, err := snq.path(ctx)
		if err != nil {
			return err
		}
		snq.sql = prev
	}
	return nil
}

func (snq *SmsNotificationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SmsNotification, error) {
	var (
		nodes = []*SmsNotification{}
		_spec = snq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SmsNotification).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SmsNotification{config: snq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, snq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (snq *SmsNotificationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := snq.querySpec()
	_spec.Node.Columns = snq.ctx.Fields
	if len(snq.ctx.Fields) > 0 {
		_spec.Unique = snq.ctx.Unique != nil && *snq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, snq.driver, _spec)
}

func (snq *SmsNotificationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(smsnotification.Table, smsnotification.Columns, sqlgraph.NewFieldSpec(smsnotification.FieldID, field.TypeString))
	_spec.From = snq.sql
	if unique := snq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if snq.path != nil {
		_spec.Unique = true
	}
	if fields := snq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smsnotification.FieldID)
		for i := range fields {
			if fields[i] != smsnotification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := snq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := snq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := snq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := snq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (snq *SmsNotificationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(snq.driver.Dialect())
	t1 := builder.Table(smsnotification.Table)
	columns := snq.ctx.Fields
	if len(columns) == 0 {
		columns = smsnotification.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if snq.sql != nil {
		selector = snq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if snq.ctx.Unique != nil && *snq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range snq.predicates {
		p(selector)
	}
	for _, p := range snq.order {
		p(selector)
	}
	if offset := snq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := snq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SmsNotificationGroupBy is the group-by builder for SmsNotification entities.
type SmsNotificationGroupBy struct {
	selector
	build *SmsNotificationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sngb *SmsNotificationGroupBy) Aggregate(fns ...AggregateFunc) *SmsNotificationGroupBy {
	sngb.fns = append(sngb.fns, fns...)
	return sngb
}

// Scan applies the selector query and scans the result into the given value.
func (sngb *SmsNotificationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sngb.build.ctx, "GroupBy")
	if err := sngb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SmsNotificationQuery, *SmsNotificationGroupBy](ctx, sngb.build, sngb, sngb.build.inters, v)
}

func (sngb *SmsNotificationGroupBy) sqlScan(ctx context.Context, root *SmsNotificationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sngb.fns))
	for _, fn := range sngb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sngb.flds)+len(sngb.fns))
		for _, f := range *sngb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sngb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sngb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SmsNotificationSelect is the builder for selecting fields of SmsNotification entities.
type SmsNotificationSelect struct {
	*SmsNotificationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sns *SmsNotificationSelect) Aggregate(fns ...AggregateFunc) *SmsNotificationSelect {
	sns.fns = append(sns.fns, fns...)
	return sns
}

// Scan applies the selector query and scans the result into the given value.
func (sns *SmsNotificationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sns.ctx, "Select")
	if err := sns.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SmsNotificationQuery, *SmsNotificationSelect](ctx, sns.SmsNotificationQuery, sns, sns.inters, v)
}

func (sns *SmsNotificationSelect) sqlScan(ctx context.Context, root *SmsNotificationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sns.fns))
	for _, fn := range sns.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sns.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sns.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
