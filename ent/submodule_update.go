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
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// SubmoduleUpdate is the builder for updating Submodule entities.
type SubmoduleUpdate struct {
	config
	hooks    []Hook
	mutation *SubmoduleMutation
}

// Where appends a list predicates to the SubmoduleUpdate builder.
func (_u *SubmoduleUpdate) Where(ps ...predicate.Submodule) *SubmoduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SubmoduleUpdate) SetName(v string) *SubmoduleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubmoduleUpdate) SetNillableName(v *string) *SubmoduleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SubmoduleUpdate) SetPosition(v int) *SubmoduleUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SubmoduleUpdate) SetNillablePosition(v *int) *SubmoduleUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SubmoduleUpdate) AddPosition(v int) *SubmoduleUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSlideCount sets the "slide_count" field.
func (_u *SubmoduleUpdate) SetSlideCount(v int) *SubmoduleUpdate {
	_u.mutation.ResetSlideCount()
	_u.mutation.SetSlideCount(v)
	return _u
}

// SetNillableSlideCount sets the "slide_count" field if the given value is not nil.
func (_u *SubmoduleUpdate) SetNillableSlideCount(v *int) *SubmoduleUpdate {
	if v != nil {
		_u.SetSlideCount(*v)
	}
	return _u
}

// AddSlideCount adds value to the "slide_count" field.
func (_u *SubmoduleUpdate) AddSlideCount(v int) *SubmoduleUpdate {
	_u.mutation.AddSlideCount(v)
	return _u
}

// SetModuleID sets the "module" edge to the Module entity by ID.
func (_u *SubmoduleUpdate) SetModuleID(id uuid.UUID) *SubmoduleUpdate {
	_u.mutation.SetModuleID(id)
	return _u
}

// SetModule sets the "module" edge to the Module entity.
func (_u *SubmoduleUpdate) SetModule(v *Module) *SubmoduleUpdate {
	return _u.SetModuleID(v.ID)
}

// AddSlideIDs adds the "slides" edge to the Slide entity by IDs.
func (_u *SubmoduleUpdate) AddSlideIDs(ids ...uuid.UUID) *SubmoduleUpdate {
	_u.mutation.AddSlideIDs(ids...)
	return _u
}

// AddSlides adds the "slides" edges to the Slide entity.
func (_u *SubmoduleUpdate) AddSlides(v ...*Slide) *SubmoduleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlideIDs(ids...)
}

// Mutation returns the SubmoduleMutation object of the builder.
func (_u *SubmoduleUpdate) Mutation() *SubmoduleMutation {
	return _u.mutation
}

// ClearModule clears the "module" edge to the Module entity.
func (_u *SubmoduleUpdate) ClearModule() *SubmoduleUpdate {
	_u.mutation.ClearModule()
	return _u
}

// ClearSlides clears all "slides" edges to the Slide entity.
func (_u *SubmoduleUpdate) ClearSlides() *SubmoduleUpdate {
	_u.mutation.ClearSlides()
	return _u
}

// RemoveSlideIDs removes the "slides" edge to Slide entities by IDs.
func (_u *SubmoduleUpdate) RemoveSlideIDs(ids ...uuid.UUID) *SubmoduleUpdate {
	_u.mutation.RemoveSlideIDs(ids...)
	return _u
}

// RemoveSlides removes "slides" edges to Slide entities.
func (_u *SubmoduleUpdate) RemoveSlides(v ...*Slide) *SubmoduleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlideIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmoduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmoduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmoduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmoduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmoduleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := submodule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Submodule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := submodule.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Submodule.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlideCount(); ok {
		if err := submodule.SlideCountValidator(v); err != nil {
			return &ValidationError{Name: "slide_count", err: fmt.Errorf(`ent: validator failed for field "Submodule.slide_count": %w`, err)}
		}
	}
	if _u.mutation.ModuleCleared() && len(_u.mutation.ModuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submodule.module"`)
	}
	return nil
}

func (_u *SubmoduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submodule.Table, submodule.Columns, sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(submodule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(submodule.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(submodule.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlideCount(); ok {
		_spec.SetField(submodule.FieldSlideCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlideCount(); ok {
		_spec.AddField(submodule.FieldSlideCount, field.TypeInt, value)
	}
	if _u.mutation.ModuleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submodule.ModuleTable,
			Columns: []string{submodule.ModuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submodule.ModuleTable,
			Columns: []string{submodule.ModuleColumn},
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
	if _u.mutation.SlidesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlidesIDs(); len(nodes) > 0 && !_u.mutation.SlidesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlidesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmoduleUpdateOne is the builder for updating a single Submodule entity.
type SubmoduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmoduleMutation
}

// SetName sets the "name" field.
func (_u *SubmoduleUpdateOne) SetName(v string) *SubmoduleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubmoduleUpdateOne) SetNillableName(v *string) *SubmoduleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SubmoduleUpdateOne) SetPosition(v int) *SubmoduleUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SubmoduleUpdateOne) SetNillablePosition(v *int) *SubmoduleUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SubmoduleUpdateOne) AddPosition(v int) *SubmoduleUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetSlideCount sets the "slide_count" field.
func (_u *SubmoduleUpdateOne) SetSlideCount(v int) *SubmoduleUpdateOne {
	_u.mutation.ResetSlideCount()
	_u.mutation.SetSlideCount(v)
	return _u
}

// SetNillableSlideCount sets the "slide_count" field if the given value is not nil.
func (_u *SubmoduleUpdateOne) SetNillableSlideCount(v *int) *SubmoduleUpdateOne {
	if v != nil {
		_u.SetSlideCount(*v)
	}
	return _u
}

// AddSlideCount adds value to the "slide_count" field.
func (_u *SubmoduleUpdateOne) AddSlideCount(v int) *SubmoduleUpdateOne {
	_u.mutation.AddSlideCount(v)
	return _u
}

// SetModuleID sets the "module" edge to the Module entity by ID.
func (_u *SubmoduleUpdateOne) SetModuleID(id uuid.UUID) *SubmoduleUpdateOne {
	_u.mutation.SetModuleID(id)
	return _u
}

// SetModule sets the "module" edge to the Module entity.
func (_u *SubmoduleUpdateOne) SetModule(v *Module) *SubmoduleUpdateOne {
	return _u.SetModuleID(v.ID)
}

// AddSlideIDs adds the "slides" edge to the Slide entity by IDs.
func (_u *SubmoduleUpdateOne) AddSlideIDs(ids ...uuid.UUID) *SubmoduleUpdateOne {
	_u.mutation.AddSlideIDs(ids...)
	return _u
}

// AddSlides adds the "slides" edges to the Slide entity.
func (_u *SubmoduleUpdateOne) AddSlides(v ...*Slide) *SubmoduleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSlideIDs(ids...)
}

// Mutation returns the SubmoduleMutation object of the builder.
func (_u *SubmoduleUpdateOne) Mutation() *SubmoduleMutation {
	return _u.mutation
}

// ClearModule clears the "module" edge to the Module entity.
func (_u *SubmoduleUpdateOne) ClearModule() *SubmoduleUpdateOne {
	_u.mutation.ClearModule()
	return _u
}

// ClearSlides clears all "slides" edges to the Slide entity.
func (_u *SubmoduleUpdateOne) ClearSlides() *SubmoduleUpdateOne {
	_u.mutation.ClearSlides()
	return _u
}

// RemoveSlideIDs removes the "slides" edge to Slide entities by IDs.
func (_u *SubmoduleUpdateOne) RemoveSlideIDs(ids ...uuid.UUID) *SubmoduleUpdateOne {
	_u.mutation.RemoveSlideIDs(ids...)
	return _u
}

// RemoveSlides removes "slides" edges to Slide entities.
func (_u *SubmoduleUpdateOne) RemoveSlides(v ...*Slide) *SubmoduleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSlideIDs(ids...)
}

// Where appends a list predicates to the SubmoduleUpdate builder.
func (_u *SubmoduleUpdateOne) Where(ps ...predicate.Submodule) *SubmoduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmoduleUpdateOne) Select(field string, fields ...string) *SubmoduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submodule entity.
func (_u *SubmoduleUpdateOne) Save(ctx context.Context) (*Submodule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmoduleUpdateOne) SaveX(ctx context.Context) *Submodule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmoduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmoduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmoduleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := submodule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Submodule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := submodule.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Submodule.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlideCount(); ok {
		if err := submodule.SlideCountValidator(v); err != nil {
			return &ValidationError{Name: "slide_count", err: fmt.Errorf(`ent: validator failed for field "Submodule.slide_count": %w`, err)}
		}
	}
	if _u.mutation.ModuleCleared() && len(_u.mutation.ModuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submodule.module"`)
	}
	return nil
}

func (_u *SubmoduleUpdateOne) sqlSave(ctx context.Context) (_node *Submodule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submodule.Table, submodule.Columns, sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submodule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submodule.FieldID)
		for _, f := range fields {
			if !submodule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submodule.FieldID {
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
		_spec.SetField(submodule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(submodule.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(submodule.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlideCount(); ok {
		_spec.SetField(submodule.FieldSlideCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlideCount(); ok {
		_spec.AddField(submodule.FieldSlideCount, field.TypeInt, value)
	}
	if _u.mutation.ModuleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submodule.ModuleTable,
			Columns: []string{submodule.ModuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submodule.ModuleTable,
			Columns: []string{submodule.ModuleColumn},
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
	if _u.mutation.SlidesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSlidesIDs(); len(nodes) > 0 && !_u.mutation.SlidesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SlidesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submodule.SlidesTable,
			Columns: []string{submodule.SlidesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submodule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
