// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/google/uuid"
)

// LearnerSessionCreate is the builder for creating a LearnerSession entity.
type LearnerSessionCreate struct {
	config
	mutation *LearnerSessionMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerSessionCreate) SetLearnerID(v string) *LearnerSessionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *LearnerSessionCreate) SetPlanID(v uuid.UUID) *LearnerSessionCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_c *LearnerSessionCreate) SetNillablePlanID(v *uuid.UUID) *LearnerSessionCreate {
	if v != nil {
		_c.SetPlanID(*v)
	}
	return _c
}

// SetCurrentSlideNumber sets the "current_slide_number" field.
func (_c *LearnerSessionCreate) SetCurrentSlideNumber(v int) *LearnerSessionCreate {
	_c.mutation.SetCurrentSlideNumber(v)
	return _c
}

// SetNillableCurrentSlideNumber sets the "current_slide_number" field if the given value is not nil.
func (_c *LearnerSessionCreate) SetNillableCurrentSlideNumber(v *int) *LearnerSessionCreate {
	if v != nil {
		_c.SetCurrentSlideNumber(*v)
	}
	return _c
}

// SetProfile sets the "profile" field.
func (_c *LearnerSessionCreate) SetProfile(v map[string]interface{}) *LearnerSessionCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerSessionCreate) SetCreatedAt(v time.Time) *LearnerSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerSessionCreate) SetNillableCreatedAt(v *time.Time) *LearnerSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerSessionCreate) SetUpdatedAt(v time.Time) *LearnerSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerSessionCreate) SetNillableUpdatedAt(v *time.Time) *LearnerSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnerSessionCreate) SetID(v uuid.UUID) *LearnerSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearnerSessionCreate) SetNillableID(v *uuid.UUID) *LearnerSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LearnerSessionMutation object of the builder.
func (_c *LearnerSessionCreate) Mutation() *LearnerSessionMutation {
	return _c.mutation
}

// Save creates the LearnerSession in the database.
func (_c *LearnerSessionCreate) Save(ctx context.Context) (*LearnerSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerSessionCreate) SaveX(ctx context.Context) *LearnerSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentSlideNumber(); !ok {
		v := learnersession.DefaultCurrentSlideNumber
		_c.mutation.SetCurrentSlideNumber(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnersession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnersession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learnersession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerSessionCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerSession.learner_id"`)}
	}
	if _, ok := _c.mutation.CurrentSlideNumber(); !ok {
		return &ValidationError{Name: "current_slide_number", err: errors.New(`ent: missing required field "LearnerSession.current_slide_number"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "LearnerSession.profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerSession.updated_at"`)}
	}
	return nil
}

func (_c *LearnerSessionCreate) sqlSave(ctx context.Context) (*LearnerSession, error) {
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

func (_c *LearnerSessionCreate) createSpec() (*LearnerSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnersession.Table, sqlgraph.NewFieldSpec(learnersession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnersession.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(learnersession.FieldPlanID, field.TypeUUID, value)
		_node.PlanID = &value
	}
	if value, ok := _c.mutation.CurrentSlideNumber(); ok {
		_spec.SetField(learnersession.FieldCurrentSlideNumber, field.TypeInt, value)
		_node.CurrentSlideNumber = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(learnersession.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnersession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerSessionCreateBulk is the builder for creating many LearnerSession entities in bulk.
type LearnerSessionCreateBulk struct {
	config
	err      error
	builders []*LearnerSessionCreate
}

// Save creates the LearnerSession entities in the database.
func (_c *LearnerSessionCreateBulk) Save(ctx context.Context) ([]*LearnerSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerSessionMutation)
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
func (_c *LearnerSessionCreateBulk) SaveX(ctx context.Context) []*LearnerSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
