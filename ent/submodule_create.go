// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// SubmoduleCreate is the builder for creating a Submodule entity.
type SubmoduleCreate struct {
	config
	mutation *SubmoduleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SubmoduleCreate) SetName(v string) *SubmoduleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SubmoduleCreate) SetPosition(v int) *SubmoduleCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSlideCount sets the "slide_count" field.
func (_c *SubmoduleCreate) SetSlideCount(v int) *SubmoduleCreate {
	_c.mutation.SetSlideCount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SubmoduleCreate) SetID(v uuid.UUID) *SubmoduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmoduleCreate) SetNillableID(v *uuid.UUID) *SubmoduleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetModuleID sets the "module" edge to the Module entity by ID.
func (_c *SubmoduleCreate) SetModuleID(id uuid.UUID) *SubmoduleCreate {
	_c.mutation.SetModuleID(id)
	return _c
}

// SetModule sets the "module" edge to the Module entity.
func (_c *SubmoduleCreate) SetModule(v *Module) *SubmoduleCreate {
	return _c.SetModuleID(v.ID)
}

// AddSlideIDs adds the "slides" edge to the Slide entity by IDs.
func (_c *SubmoduleCreate) AddSlideIDs(ids ...uuid.UUID) *SubmoduleCreate {
	_c.mutation.AddSlideIDs(ids...)
	return _c
}

// AddSlides adds the "slides" edges to the Slide entity.
func (_c *SubmoduleCreate) AddSlides(v ...*Slide) *SubmoduleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSlideIDs(ids...)
}

// Mutation returns the SubmoduleMutation object of the builder.
func (_c *SubmoduleCreate) Mutation() *SubmoduleMutation {
	return _c.mutation
}

// Save creates the Submodule in the database.
func (_c *SubmoduleCreate) Save(ctx context.Context) (*Submodule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmoduleCreate) SaveX(ctx context.Context) *Submodule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmoduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmoduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmoduleCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := submodule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmoduleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Submodule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := submodule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Submodule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Submodule.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := submodule.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Submodule.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlideCount(); !ok {
		return &ValidationError{Name: "slide_count", err: errors.New(`ent: missing required field "Submodule.slide_count"`)}
	}
	if v, ok := _c.mutation.SlideCount(); ok {
		if err := submodule.SlideCountValidator(v); err != nil {
			return &ValidationError{Name: "slide_count", err: fmt.Errorf(`ent: validator failed for field "Submodule.slide_count": %w`, err)}
		}
	}
	if len(_c.mutation.ModuleIDs()) == 0 {
		return &ValidationError{Name: "module", err: errors.New(`ent: missing required edge "Submodule.module"`)}
	}
	return nil
}

func (_c *SubmoduleCreate) sqlSave(ctx context.Context) (*Submodule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmoduleCreate) createSpec() (*Submodule, *sqlgraph.CreateSpec) {
	var (
		_node = &Submodule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submodule.Table, sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(submodule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(submodule.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.SlideCount(); ok {
		_spec.SetField(submodule.FieldSlideCount, field.TypeInt, value)
		_node.SlideCount = value
	}
	if nodes := _c.mutation.ModuleIDs(); len(nodes) > 0 {
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
		_node.module_submodules = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SlidesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmoduleCreateBulk is the builder for creating many Submodule entities in bulk.
type SubmoduleCreateBulk struct {
	config
	err      error
	builders []*SubmoduleCreate
}

// Save creates the Submodule entities in the database.
func (_c *SubmoduleCreateBulk) Save(ctx context.Context) ([]*Submodule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submodule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmoduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmoduleCreateBulk) SaveX(ctx context.Context) []*Submodule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmoduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmoduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
