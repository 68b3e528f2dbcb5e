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
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// ModuleUpdate is the builder for updating Module entities.
type ModuleUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleMutation
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdate) Where(ps ...predicate.Module) *ModuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModuleUpdate) SetName(v string) *ModuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableName(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ModuleUpdate) SetPosition(v int) *ModuleUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillablePosition(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ModuleUpdate) AddPosition(v int) *ModuleUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStageID sets the "stage" edge to the Stage entity by ID.
func (_u *ModuleUpdate) SetStageID(id uuid.UUID) *ModuleUpdate {
	_u.mutation.SetStageID(id)
	return _u
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *ModuleUpdate) SetStage(v *Stage) *ModuleUpdate {
	return _u.SetStageID(v.ID)
}

// AddSubmoduleIDs adds the "submodules" edge to the Submodule entity by IDs.
func (_u *ModuleUpdate) AddSubmoduleIDs(ids ...uuid.UUID) *ModuleUpdate {
	_u.mutation.AddSubmoduleIDs(ids...)
	return _u
}

// AddSubmodules adds the "submodules" edges to the Submodule entity.
func (_u *ModuleUpdate) AddSubmodules(v ...*Submodule) *ModuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmoduleIDs(ids...)
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdate) Mutation() *ModuleMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *ModuleUpdate) ClearStage() *ModuleUpdate {
	_u.mutation.ClearStage()
	return _u
}

// ClearSubmodules clears all "submodules" edges to the Submodule entity.
func (_u *ModuleUpdate) ClearSubmodules() *ModuleUpdate {
	_u.mutation.ClearSubmodules()
	return _u
}

// RemoveSubmoduleIDs removes the "submodules" edge to Submodule entities by IDs.
func (_u *ModuleUpdate) RemoveSubmoduleIDs(ids ...uuid.UUID) *ModuleUpdate {
	_u.mutation.RemoveSubmoduleIDs(ids...)
	return _u
}

// RemoveSubmodules removes "submodules" edges to Submodule entities.
func (_u *ModuleUpdate) RemoveSubmodules(v ...*Submodule) *ModuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmoduleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := module.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Module.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := module.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Module.position": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Module.stage"`)
	}
	return nil
}

func (_u *ModuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(module.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(module.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(module.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.StageTable,
			Columns: []string{module.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.StageTable,
			Columns: []string{module.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmodulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmodulesIDs(); len(nodes) > 0 && !_u.mutation.SubmodulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmodulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleUpdateOne is the builder for updating a single Module entity.
type ModuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleMutation
}

// SetName sets the "name" field.
func (_u *ModuleUpdateOne) SetName(v string) *ModuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableName(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ModuleUpdateOne) SetPosition(v int) *ModuleUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillablePosition(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ModuleUpdateOne) AddPosition(v int) *ModuleUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStageID sets the "stage" edge to the Stage entity by ID.
func (_u *ModuleUpdateOne) SetStageID(id uuid.UUID) *ModuleUpdateOne {
	_u.mutation.SetStageID(id)
	return _u
}

// SetStage sets the "stage" edge to the Stage entity.
func (_u *ModuleUpdateOne) SetStage(v *Stage) *ModuleUpdateOne {
	return _u.SetStageID(v.ID)
}

// AddSubmoduleIDs adds the "submodules" edge to the Submodule entity by IDs.
func (_u *ModuleUpdateOne) AddSubmoduleIDs(ids ...uuid.UUID) *ModuleUpdateOne {
	_u.mutation.AddSubmoduleIDs(ids...)
	return _u
}

// AddSubmodules adds the "submodules" edges to the Submodule entity.
func (_u *ModuleUpdateOne) AddSubmodules(v ...*Submodule) *ModuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmoduleIDs(ids...)
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdateOne) Mutation() *ModuleMutation {
	return _u.mutation
}

// ClearStage clears the "stage" edge to the Stage entity.
func (_u *ModuleUpdateOne) ClearStage() *ModuleUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// ClearSubmodules clears all "submodules" edges to the Submodule entity.
func (_u *ModuleUpdateOne) ClearSubmodules() *ModuleUpdateOne {
	_u.mutation.ClearSubmodules()
	return _u
}

// RemoveSubmoduleIDs removes the "submodules" edge to Submodule entities by IDs.
func (_u *ModuleUpdateOne) RemoveSubmoduleIDs(ids ...uuid.UUID) *ModuleUpdateOne {
	_u.mutation.RemoveSubmoduleIDs(ids...)
	return _u
}

// RemoveSubmodules removes "submodules" edges to Submodule entities.
func (_u *ModuleUpdateOne) RemoveSubmodules(v ...*Submodule) *ModuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmoduleIDs(ids...)
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdateOne) Where(ps ...predicate.Module) *ModuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleUpdateOne) Select(field string, fields ...string) *ModuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Module entity.
func (_u *ModuleUpdateOne) Save(ctx context.Context) (*Module, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdateOne) SaveX(ctx context.Context) *Module {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := module.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Module.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := module.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Module.position": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Module.stage"`)
	}
	return nil
}

func (_u *ModuleUpdateOne) sqlSave(ctx context.Context) (_node *Module, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Module.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, module.FieldID)
		for _, f := range fields {
			if !module.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != module.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(module.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(module.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(module.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.StageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.StageTable,
			Columns: []string{module.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   module.StageTable,
			Columns: []string{module.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmodulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmodulesIDs(); len(nodes) > 0 && !_u.mutation.SubmodulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmodulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   module.SubmodulesTable,
			Columns: []string{module.SubmodulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Module{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
