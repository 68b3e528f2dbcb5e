// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// ModuleQuery is the builder for querying Module entities.
type ModuleQuery struct {
	config
	ctx            *QueryContext
	order          []module.OrderOption
	inters         []Interceptor
	predicates     []predicate.Module
	withStage      *StageQuery
	withSubmodules *SubmoduleQuery
	withFKs        bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ModuleQuery builder.
func (_q *ModuleQuery) Where(ps ...predicate.Module) *ModuleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ModuleQuery) Limit(limit int) *ModuleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ModuleQuery) Offset(offset int) *ModuleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ModuleQuery) Unique(unique bool) *ModuleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ModuleQuery) Order(o ...module.OrderOption) *ModuleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStage chains the current query on the "stage" edge.
func (_q *ModuleQuery) QueryStage() *StageQuery {
	query := (&StageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(module.Table, module.FieldID, selector),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, module.StageTable, module.StageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubmodules chains the current query on the "submodules" edge.
func (_q *ModuleQuery) QuerySubmodules() *SubmoduleQuery {
	query := (&SubmoduleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(module.Table, module.FieldID, selector),
			sqlgraph.To(submodule.Table, submodule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, module.SubmodulesTable, module.SubmodulesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Module entity from the query.
// Returns a *NotFoundError when no Module was found.
func (_q *ModuleQuery) First(ctx context.Context) (*Module, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{module.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ModuleQuery) FirstX(ctx context.Context) *Module {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Module ID from the query.
// Returns a *NotFoundError when no Module ID was found.
func (_q *ModuleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{module.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ModuleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Module entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Module entity is found.
// Returns a *NotFoundError when no Module entities are found.
func (_q *ModuleQuery) Only(ctx context.Context) (*Module, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{module.Label}
	default:
		return nil, &NotSingularError{module.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ModuleQuery) OnlyX(ctx context.Context) *Module {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Module ID in the query.
// Returns a *NotSingularError when more than one Module ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ModuleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{module.Label}
	default:
		err = &NotSingularError{module.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ModuleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Modules.
func (_q *ModuleQuery) All(ctx context.Context) ([]*Module, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Module, *ModuleQuery]()
	return withInterceptors[[]*Module](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ModuleQuery) AllX(ctx context.Context) []*Module {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Module IDs.
func (_q *ModuleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(module.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ModuleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ModuleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ModuleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ModuleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ModuleQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ModuleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ModuleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ModuleQuery) Clone() *ModuleQuery {
	if _q == nil {
		return nil
	}
	return &ModuleQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]module.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Module{}, _q.predicates...),
		withStage:      _q.withStage.Clone(),
		withSubmodules: _q.withSubmodules.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStage tells the query-builder to eager-load the nodes that are connected to
// the "stage" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ModuleQuery) WithStage(opts ...func(*StageQuery)) *ModuleQuery {
	query := (&StageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStage = query
	return _q
}

// WithSubmodules tells the query-builder to eager-load the nodes that are connected to
// the "submodules" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ModuleQuery) WithSubmodules(opts ...func(*SubmoduleQuery)) *ModuleQuery {
	query := (&SubmoduleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubmodules = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Module.Query().
//		GroupBy(module.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ModuleQuery) GroupBy(field string, fields ...string) *ModuleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ModuleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = module.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Module.Query().
//		Select(module.FieldName).
//		Scan(ctx, &v)
func (_q *ModuleQuery) Select(fields ...string) *ModuleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ModuleSelect{ModuleQuery: _q}
	sbuild.label = module.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ModuleSelect configured with the given aggregations.
func (_q *ModuleQuery) Aggregate(fns ...AggregateFunc) *ModuleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ModuleQuery) prepareQuery(ctx context.Context) error {
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
		if !module.ValidColumn(f) {
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

func (_q *ModuleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Module, error) {
	var (
		nodes       = []*Module{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withStage != nil,
			_q.withSubmodules != nil,
		}
	)
	if _q.withStage != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, module.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Module).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Module{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withStage; query != nil {
		if err := _q.loadStage(ctx, query, nodes, nil,
			func(n *Module, e *Stage) { n.Edges.Stage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubmodules; query != nil {
		if err := _q.loadSubmodules(ctx, query, nodes,
			func(n *Module) { n.Edges.Submodules = []*Submodule{} },
			func(n *Module, e *Submodule) { n.Edges.Submodules = append(n.Edges.Submodules, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ModuleQuery) loadStage(ctx context.Context, query *StageQuery, nodes []*Module, init func(*Module), assign func(*Module, *Stage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Module)
	for i := range nodes {
		if nodes[i].stage_modules == nil {
			continue
		}
		fk := *nodes[i].stage_modules
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "stage_modules" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ModuleQuery) loadSubmodules(ctx context.Context, query *SubmoduleQuery, nodes []*Module, init func(*Module), assign func(*Module, *Submodule)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Module)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Submodule(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(module.SubmodulesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.module_submodules
		if fk == nil {
			return fmt.Errorf(`foreign-key "module_submodules" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "module_submodules" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ModuleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ModuleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, module.FieldID)
		for i := range fields {
			if fields[i] != module.FieldID {
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

func (_q *ModuleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(module.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = module.Columns
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

// ModuleGroupBy is the group-by builder for Module entities.
type ModuleGroupBy struct {
	selector
	build *ModuleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ModuleGroupBy) Aggregate(fns ...AggregateFunc) *ModuleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ModuleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ModuleQuery, *ModuleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ModuleGroupBy) sqlScan(ctx context.Context, root *ModuleQuery, v any) error {
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

// ModuleSelect is the builder for selecting fields of Module entities.
type ModuleSelect struct {
	*ModuleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ModuleSelect) Aggregate(fns ...AggregateFunc) *ModuleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ModuleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ModuleQuery, *ModuleSelect](ctx, _s.ModuleQuery, _s, _s.inters, v)
}

func (_s *ModuleSelect) sqlScan(ctx context.Context, root *ModuleQuery, v any) error {
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
