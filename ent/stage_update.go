// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// StageUpdate is the builder for updating Stage entities.
type StageUpdate struct {
	config
	hooks    []Hook
	mutation *StageMutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdate) Where(ps ...predicate.Stage) *StageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNumber sets the "number" field.
func (_u *StageUpdate) SetNumber(v int) *StageUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *StageUpdate) SetNillableNumber(v *int) *StageUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *StageUpdate) AddNumber(v int) *StageUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StageUpdate) SetTitle(v string) *StageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StageUpdate) SetNillableTitle(v *string) *StageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPlanID sets the "plan" edge to the TrainingPlan entity by ID.
func (_u *StageUpdate) SetPlanID(id uuid.UUID) *StageUpdate {
	_u.mutation.SetPlanID(id)
	return _u
}

// SetPlan sets the "plan" edge to the TrainingPlan entity.
func (_u *StageUpdate) SetPlan(v *TrainingPlan) *StageUpdate {
	return _u.SetPlanID(v.ID)
}

// AddModuleIDs adds the "modules" edge to the Module entity by IDs.
func (_u *StageUpdate) AddModuleIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.AddModuleIDs(ids...)
	return _u
}

// AddModules adds the "modules" edges to the Module entity.
func (_u *StageUpdate) AddModules(v ...*Module) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModuleIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdate) Mutation() *StageMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the TrainingPlan entity.
func (_u *StageUpdate) ClearPlan() *StageUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// ClearModules clears all "modules" edges to the Module entity.
func (_u *StageUpdate) ClearModules() *StageUpdate {
	_u.mutation.ClearModules()
	return _u
}

// RemoveModuleIDs removes the "modules" edge to Module entities by IDs.
func (_u *StageUpdate) RemoveModuleIDs(ids ...uuid.UUID) *StageUpdate {
	_u.mutation.RemoveModuleIDs(ids...)
	return _u
}

// RemoveModules removes "modules" edges to Module entities.
func (_u *StageUpdate) RemoveModules(v ...*Module) *StageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModuleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := stage.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Stage.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := stage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Stage.title": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.plan"`)
	}
	return nil
}

func (_u *StageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(stage.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(stage.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.PlanTable,
			Columns: []string{stage.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.PlanTable,
			Columns: []string{stage.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModulesIDs(); len(nodes) > 0 && !_u.mutation.ModulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageUpdateOne is the builder for updating a single Stage entity.
type StageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMutation
}

// SetNumber sets the "number" field.
func (_u *StageUpdateOne) SetNumber(v int) *StageUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableNumber(v *int) *StageUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *StageUpdateOne) AddNumber(v int) *StageUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StageUpdateOne) SetTitle(v string) *StageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableTitle(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPlanID sets the "plan" edge to the TrainingPlan entity by ID.
func (_u *StageUpdateOne) SetPlanID(id uuid.UUID) *StageUpdateOne {
	_u.mutation.SetPlanID(id)
	return _u
}

// SetPlan sets the "plan" edge to the TrainingPlan entity.
func (_u *StageUpdateOne) SetPlan(v *TrainingPlan) *StageUpdateOne {
	return _u.SetPlanID(v.ID)
}

// AddModuleIDs adds the "modules" edge to the Module entity by IDs.
func (_u *StageUpdateOne) AddModuleIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.AddModuleIDs(ids...)
	return _u
}

// AddModules adds the "modules" edges to the Module entity.
func (_u *StageUpdateOne) AddModules(v ...*Module) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModuleIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdateOne) Mutation() *StageMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the TrainingPlan entity.
func (_u *StageUpdateOne) ClearPlan() *StageUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// ClearModules clears all "modules" edges to the Module entity.
func (_u *StageUpdateOne) ClearModules() *StageUpdateOne {
	_u.mutation.ClearModules()
	return _u
}

// RemoveModuleIDs removes the "modules" edge to Module entities by IDs.
func (_u *StageUpdateOne) RemoveModuleIDs(ids ...uuid.UUID) *StageUpdateOne {
	_u.mutation.RemoveModuleIDs(ids...)
	return _u
}

// RemoveModules removes "modules" edges to Module entities.
func (_u *StageUpdateOne) RemoveModules(v ...*Module) *StageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModuleIDs(ids...)
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdateOne) Where(ps ...predicate.Stage) *StageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageUpdateOne) Select(field string, fields ...string) *StageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stage entity.
func (_u *StageUpdateOne) Save(ctx context.Context) (*Stage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdateOne) SaveX(ctx context.Context) *Stage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := stage.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Stage.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := stage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Stage.title": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.plan"`)
	}
	return nil
}

func (_u *StageUpdateOne) sqlSave(ctx context.Context) (_node *Stage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stage.FieldID)
		for _, f := range fields {
			if !stage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(stage.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(stage.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.PlanTable,
			Columns: []string{stage.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.PlanTable,
			Columns: []string{stage.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModulesIDs(); len(nodes) > 0 && !_u.mutation.ModulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.ModulesTable,
			Columns: []string{stage.ModulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
