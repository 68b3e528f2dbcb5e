// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// TrainingPlanUpdate is the builder for updating TrainingPlan entities.
type TrainingPlanUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingPlanMutation
}

// Where appends a list predicates to the TrainingPlanUpdate builder.
func (_u *TrainingPlanUpdate) Where(ps ...predicate.TrainingPlan) *TrainingPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TrainingPlanUpdate) SetLearnerID(v string) *TrainingPlanUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TrainingPlanUpdate) SetNillableLearnerID(v *string) *TrainingPlanUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTrainingID sets the "training_id" field.
func (_u *TrainingPlanUpdate) SetTrainingID(v string) *TrainingPlanUpdate {
	_u.mutation.SetTrainingID(v)
	return _u
}

// SetNillableTrainingID sets the "training_id" field if the given value is not nil.
func (_u *TrainingPlanUpdate) SetNillableTrainingID(v *string) *TrainingPlanUpdate {
	if v != nil {
		_u.SetTrainingID(*v)
	}
	return _u
}

// SetDocumentKey sets the "document_key" field.
func (_u *TrainingPlanUpdate) SetDocumentKey(v string) *TrainingPlanUpdate {
	_u.mutation.SetDocumentKey(v)
	return _u
}

// SetNillableDocumentKey sets the "document_key" field if the given value is not nil.
func (_u *TrainingPlanUpdate) SetNillableDocumentKey(v *string) *TrainingPlanUpdate {
	if v != nil {
		_u.SetDocumentKey(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *TrainingPlanUpdate) AddStageIDs(ids ...uuid.UUID) *TrainingPlanUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *TrainingPlanUpdate) AddStages(v ...*Stage) *TrainingPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the TrainingPlanMutation object of the builder.
func (_u *TrainingPlanUpdate) Mutation() *TrainingPlanMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *TrainingPlanUpdate) ClearStages() *TrainingPlanUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *TrainingPlanUpdate) RemoveStageIDs(ids ...uuid.UUID) *TrainingPlanUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *TrainingPlanUpdate) RemoveStages(v ...*Stage) *TrainingPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrainingPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trainingplan.Table, trainingplan.Columns, sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(trainingplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainingID(); ok {
		_spec.SetField(trainingplan.FieldTrainingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentKey(); ok {
		_spec.SetField(trainingplan.FieldDocumentKey, field.TypeString, value)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingPlanUpdateOne is the builder for updating a single TrainingPlan entity.
type TrainingPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingPlanMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *TrainingPlanUpdateOne) SetLearnerID(v string) *TrainingPlanUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TrainingPlanUpdateOne) SetNillableLearnerID(v *string) *TrainingPlanUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTrainingID sets the "training_id" field.
func (_u *TrainingPlanUpdateOne) SetTrainingID(v string) *TrainingPlanUpdateOne {
	_u.mutation.SetTrainingID(v)
	return _u
}

// SetNillableTrainingID sets the "training_id" field if the given value is not nil.
func (_u *TrainingPlanUpdateOne) SetNillableTrainingID(v *string) *TrainingPlanUpdateOne {
	if v != nil {
		_u.SetTrainingID(*v)
	}
	return _u
}

// SetDocumentKey sets the "document_key" field.
func (_u *TrainingPlanUpdateOne) SetDocumentKey(v string) *TrainingPlanUpdateOne {
	_u.mutation.SetDocumentKey(v)
	return _u
}

// SetNillableDocumentKey sets the "document_key" field if the given value is not nil.
func (_u *TrainingPlanUpdateOne) SetNillableDocumentKey(v *string) *TrainingPlanUpdateOne {
	if v != nil {
		_u.SetDocumentKey(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *TrainingPlanUpdateOne) AddStageIDs(ids ...uuid.UUID) *TrainingPlanUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *TrainingPlanUpdateOne) AddStages(v ...*Stage) *TrainingPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the TrainingPlanMutation object of the builder.
func (_u *TrainingPlanUpdateOne) Mutation() *TrainingPlanMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *TrainingPlanUpdateOne) ClearStages() *TrainingPlanUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *TrainingPlanUpdateOne) RemoveStageIDs(ids ...uuid.UUID) *TrainingPlanUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *TrainingPlanUpdateOne) RemoveStages(v ...*Stage) *TrainingPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Where appends a list predicates to the TrainingPlanUpdate builder.
func (_u *TrainingPlanUpdateOne) Where(ps ...predicate.TrainingPlan) *TrainingPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingPlanUpdateOne) Select(field string, fields ...string) *TrainingPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingPlan entity.
func (_u *TrainingPlanUpdateOne) Save(ctx context.Context) (*TrainingPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingPlanUpdateOne) SaveX(ctx context.Context) *TrainingPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrainingPlanUpdateOne) sqlSave(ctx context.Context) (_node *TrainingPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(trainingplan.Table, trainingplan.Columns, sqlgraph.NewFieldSpec(trainingplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingplan.FieldID)
		for _, f := range fields {
			if !trainingplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingplan.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(trainingplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainingID(); ok {
		_spec.SetField(trainingplan.FieldTrainingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentKey(); ok {
		_spec.SetField(trainingplan.FieldDocumentKey, field.TypeString, value)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrainingPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
