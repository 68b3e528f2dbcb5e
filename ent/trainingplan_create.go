// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// TrainingPlanCreate is the builder for creating a TrainingPlan entity.
type TrainingPlanCreate struct {
	config
	mutation *TrainingPlanMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *TrainingPlanCreate) SetLearnerID(v string) *TrainingPlanCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTrainingID sets the "training_id" field.
func (_c *TrainingPlanCreate) SetTrainingID(v string) *TrainingPlanCreate {
	_c.mutation.SetTrainingID(v)
	return _c
}

// SetDocumentKey sets the "document_key" field.
func (_c *TrainingPlanCreate) SetDocumentKey(v string) *TrainingPlanCreate {
	_c.mutation.SetDocumentKey(v)
	return _c
}

// SetNillableDocumentKey sets the "document_key" field if the given value is not nil.
func (_c *TrainingPlanCreate) SetNillableDocumentKey(v *string) *TrainingPlanCreate {
	if v != nil {
		_c.SetDocumentKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingPlanCreate) SetCreatedAt(v time.Time) *TrainingPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingPlanCreate) SetNillableCreatedAt(v *time.Time) *TrainingPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrainingPlanCreate) SetID(v uuid.UUID) *TrainingPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrainingPlanCreate) SetNillableID(v *uuid.UUID) *TrainingPlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_c *TrainingPlanCreate) AddStageIDs(ids ...uuid.UUID) *TrainingPlanCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the Stage entity.
func (_c *TrainingPlanCreate) AddStages(v ...*Stage) *TrainingPlanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// Mutation returns the TrainingPlanMutation object of the builder.
func (_c *TrainingPlanCreate) Mutation() *TrainingPlanMutation {
	return _c.mutation
}

// Save creates the TrainingPlan in the database.
func (_c *TrainingPlanCreate) Save(ctx context.Context) (*TrainingPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingPlanCreate) SaveX(ctx context.Context) *TrainingPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingPlanCreate) defaults() {
	if _, ok := _c.mutation.DocumentKey(); !ok {
		v := trainingplan.DefaultDocumentKey
		_c.mutation.SetDocumentKey(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trainingplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingPlanCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TrainingPlan.learner_id"`)}
	}
	if _, ok := _c.mutation.TrainingID(); !ok {
		return &ValidationError{Name: "training_id", err: errors.New(`ent: missing required field "TrainingPlan.training_id"`)}
	}
	if _, ok := _c.mutation.DocumentKey(); !ok {
		return &ValidationError{Name: "document_key", err: errors.New(`ent: missing required field "TrainingPlan.document_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingPlan.created_at"`)}
	}
	return nil
}

func (_c *TrainingPlanCreate) sqlSave(ctx context.Context) (*TrainingPlan, error) {
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

func (_c *TrainingPlanCreate) createSpec() (*TrainingPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingplan.Table, sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(trainingplan.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.TrainingID(); ok {
		_spec.SetField(trainingplan.FieldTrainingID, field.TypeString, value)
		_node.TrainingID = value
	}
	if value, ok := _c.mutation.DocumentKey(); ok {
		_spec.SetField(trainingplan.FieldDocumentKey, field.TypeString, value)
		_node.DocumentKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trainingplan.StagesTable,
			Columns: []string{trainingplan.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrainingPlanCreateBulk is the builder for creating many TrainingPlan entities in bulk.
type TrainingPlanCreateBulk struct {
	config
	err      error
	builders []*TrainingPlanCreate
}

// Save creates the TrainingPlan entities in the database.
func (_c *TrainingPlanCreateBulk) Save(ctx context.Context) ([]*TrainingPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingPlanMutation)
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
func (_c *TrainingPlanCreateBulk) SaveX(ctx context.Context) []*TrainingPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
