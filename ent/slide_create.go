// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// SlideCreate is the builder for creating a Slide entity.
type SlideCreate struct {
	config
	mutation *SlideMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *SlideCreate) SetTitle(v string) *SlideCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlideType sets the "slide_type" field.
func (_c *SlideCreate) SetSlideType(v slide.SlideType) *SlideCreate {
	_c.mutation.SetSlideType(v)
	return _c
}

// SetQuizScope sets the "quiz_scope" field.
func (_c *SlideCreate) SetQuizScope(v slide.QuizScope) *SlideCreate {
	_c.mutation.SetQuizScope(v)
	return _c
}

// SetNillableQuizScope sets the "quiz_scope" field if the given value is not nil.
func (_c *SlideCreate) SetNillableQuizScope(v *slide.QuizScope) *SlideCreate {
	if v != nil {
		_c.SetQuizScope(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *SlideCreate) SetPosition(v int) *SlideCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetGlobalPosition sets the "global_position" field.
func (_c *SlideCreate) SetGlobalPosition(v int) *SlideCreate {
	_c.mutation.SetGlobalPosition(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SlideCreate) SetContent(v string) *SlideCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *SlideCreate) SetNillableContent(v *string) *SlideCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *SlideCreate) SetGeneratedAt(v time.Time) *SlideCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *SlideCreate) SetNillableGeneratedAt(v *time.Time) *SlideCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlideCreate) SetID(v uuid.UUID) *SlideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SlideCreate) SetNillableID(v *uuid.UUID) *SlideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubmoduleID sets the "submodule" edge to the Submodule entity by ID.
func (_c *SlideCreate) SetSubmoduleID(id uuid.UUID) *SlideCreate {
	_c.mutation.SetSubmoduleID(id)
	return _c
}

// SetSubmodule sets the "submodule" edge to the Submodule entity.
func (_c *SlideCreate) SetSubmodule(v *Submodule) *SlideCreate {
	return _c.SetSubmoduleID(v.ID)
}

// Mutation returns the SlideMutation object of the builder.
func (_c *SlideCreate) Mutation() *SlideMutation {
	return _c.mutation
}

// Save creates the Slide in the database.
func (_c *SlideCreate) Save(ctx context.Context) (*Slide, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlideCreate) SaveX(ctx context.Context) *Slide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlideCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := slide.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlideCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Slide.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := slide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Slide.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlideType(); !ok {
		return &ValidationError{Name: "slide_type", err: errors.New(`ent: missing required field "Slide.slide_type"`)}
	}
	if v, ok := _c.mutation.SlideType(); ok {
		if err := slide.SlideTypeValidator(v); err != nil {
			return &ValidationError{Name: "slide_type", err: fmt.Errorf(`ent: validator failed for field "Slide.slide_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.QuizScope(); ok {
		if err := slide.QuizScopeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_scope", err: fmt.Errorf(`ent: validator failed for field "Slide.quiz_scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Slide.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := slide.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Slide.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GlobalPosition(); !ok {
		return &ValidationError{Name: "global_position", err: errors.New(`ent: missing required field "Slide.global_position"`)}
	}
	if v, ok := _c.mutation.GlobalPosition(); ok {
		if err := slide.GlobalPositionValidator(v); err != nil {
			return &ValidationError{Name: "global_position", err: fmt.Errorf(`ent: validator failed for field "Slide.global_position": %w`, err)}
		}
	}
	if len(_c.mutation.SubmoduleIDs()) == 0 {
		return &ValidationError{Name: "submodule", err: errors.New(`ent: missing required edge "Slide.submodule"`)}
	}
	return nil
}

func (_c *SlideCreate) sqlSave(ctx context.Context) (*Slide, error) {
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

func (_c *SlideCreate) createSpec() (*Slide, *sqlgraph.CreateSpec) {
	var (
		_node = &Slide{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slide.Table, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(slide.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SlideType(); ok {
		_spec.SetField(slide.FieldSlideType, field.TypeEnum, value)
		_node.SlideType = value
	}
	if value, ok := _c.mutation.QuizScope(); ok {
		_spec.SetField(slide.FieldQuizScope, field.TypeEnum, value)
		_node.QuizScope = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(slide.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.GlobalPosition(); ok {
		_spec.SetField(slide.FieldGlobalPosition, field.TypeInt, value)
		_node.GlobalPosition = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(slide.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(slide.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = &value
	}
	if nodes := _c.mutation.SubmoduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slide.SubmoduleTable,
			Columns: []string{slide.SubmoduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submodule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.submodule_slides = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SlideCreateBulk is the builder for creating many Slide entities in bulk.
type SlideCreateBulk struct {
	config
	err      error
	builders []*SlideCreate
}

// Save creates the Slide entities in the database.
func (_c *SlideCreateBulk) Save(ctx context.Context) ([]*Slide, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Slide, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlideMutation)
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
func (_c *SlideCreateBulk) SaveX(ctx context.Context) []*Slide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
