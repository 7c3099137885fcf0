// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ComplianceDeadlineQuery is the builder for querying ComplianceDeadline entities.
type ComplianceDeadlineQuery struct {
	config
	ctx        *QueryContext
	order      []compliancedeadline.OrderOption
	inters     []Interceptor
	predicates []predicate.ComplianceDeadline
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ComplianceDeadlineQuery builder.
func (_q *ComplianceDeadlineQuery) Where(ps ...predicate.ComplianceDeadline) *ComplianceDeadlineQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ComplianceDeadlineQuery) Limit(limit int) *ComplianceDeadlineQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ComplianceDeadlineQuery) Offset(offset int) *ComplianceDeadlineQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ComplianceDeadlineQuery) Unique(unique bool) *ComplianceDeadlineQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ComplianceDeadlineQuery) Order(o ...compliancedeadline.OrderOption) *ComplianceDeadlineQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first ComplianceDeadline entity from the query.
// Returns a *NotFoundError when no ComplianceDeadline was found.
func (_q *ComplianceDeadlineQuery) First(ctx context.Context) (*ComplianceDeadline, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{compliancedeadline.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) FirstX(ctx context.Context) *ComplianceDeadline {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ComplianceDeadline ID from the query.
// Returns a *NotFoundError when no ComplianceDeadline ID was found.
func (_q *ComplianceDeadlineQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{compliancedeadline.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ComplianceDeadline entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ComplianceDeadline entity is found.
// Returns a *NotFoundError when no ComplianceDeadline entities are found.
func (_q *ComplianceDeadlineQuery) Only(ctx context.Context) (*ComplianceDeadline, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{compliancedeadline.Label}
	default:
		return nil, &NotSingularError{compliancedeadline.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) OnlyX(ctx context.Context) *ComplianceDeadline {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ComplianceDeadline ID in the query.
// Returns a *NotSingularError when more than one ComplianceDeadline ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ComplianceDeadlineQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{compliancedeadline.Label}
	default:
		err = &NotSingularError{compliancedeadline.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ComplianceDeadlines.
func (_q *ComplianceDeadlineQuery) All(ctx context.Context) ([]*ComplianceDeadline, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ComplianceDeadline, *ComplianceDeadlineQuery]()
	return withInterceptors[[]*ComplianceDeadline](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) AllX(ctx context.Context) []*ComplianceDeadline {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ComplianceDeadline IDs.
func (_q *ComplianceDeadlineQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(compliancedeadline.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ComplianceDeadlineQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ComplianceDeadlineQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ComplianceDeadlineQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ComplianceDeadlineQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ComplianceDeadlineQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ComplianceDeadlineQuery) Clone() *ComplianceDeadlineQuery {
	if _q == nil {
		return nil
	}
	return &ComplianceDeadlineQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]compliancedeadline.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ComplianceDeadline{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DeadlineID string `json:"deadline_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ComplianceDeadline.Query().
//		GroupBy(compliancedeadline.FieldDeadlineID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ComplianceDeadlineQuery) GroupBy(field string, fields ...string) *ComplianceDeadlineGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ComplianceDeadlineGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = compliancedeadline.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DeadlineID string `json:"deadline_id,omitempty"`
//	}
//
//	client.ComplianceDeadline.Query().
//		Select(compliancedeadline.FieldDeadlineID).
//		Scan(ctx, &v)
func (_q *ComplianceDeadlineQuery) Select(fields ...string) *ComplianceDeadlineSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ComplianceDeadlineSelect{ComplianceDeadlineQuery: _q}
	sbuild.label = compliancedeadline.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ComplianceDeadlineSelect configured with the given aggregations.
func (_q *ComplianceDeadlineQuery) Aggregate(fns ...AggregateFunc) *ComplianceDeadlineSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ComplianceDeadlineQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !compliancedeadline.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ComplianceDeadlineQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ComplianceDeadline, error) {
	var (
		nodes = []*ComplianceDeadline{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ComplianceDeadline).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ComplianceDeadline{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *ComplianceDeadlineQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ComplianceDeadlineQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(compliancedeadline.Table, compliancedeadline.Columns, sqlgraph.NewFieldSpec(compliancedeadline.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compliancedeadline.FieldID)
		for i := range fields {
			if fields[i] != compliancedeadline.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ComplianceDeadlineQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(compliancedeadline.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = compliancedeadline.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ComplianceDeadlineGroupBy is the group-by builder for ComplianceDeadline entities.
type ComplianceDeadlineGroupBy struct {
	selector
	build *ComplianceDeadlineQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ComplianceDeadlineGroupBy) Aggregate(fns ...AggregateFunc) *ComplianceDeadlineGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ComplianceDeadlineGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComplianceDeadlineQuery, *ComplianceDeadlineGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ComplianceDeadlineGroupBy) sqlScan(ctx context.Context, root *ComplianceDeadlineQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ComplianceDeadlineSelect is the builder for selecting fields of ComplianceDeadline entities.
type ComplianceDeadlineSelect struct {
	*ComplianceDeadlineQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ComplianceDeadlineSelect) Aggregate(fns ...AggregateFunc) *ComplianceDeadlineSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ComplianceDeadlineSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComplianceDeadlineQuery, *ComplianceDeadlineSelect](ctx, _s.ComplianceDeadlineQuery, _s, _s.inters, v)
}

func (_s *ComplianceDeadlineSelect) sqlScan(ctx context.Context, root *ComplianceDeadlineQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
