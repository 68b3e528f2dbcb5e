// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/google/uuid"
)

// LearnerSessionUpdate is the builder for updating LearnerSession entities.
type LearnerSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerSessionMutation
}

// Where appends a list predicates to the LearnerSessionUpdate builder.
func (_u *LearnerSessionUpdate) Where(ps ...predicate.LearnerSession) *LearnerSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerSessionUpdate) SetLearnerID(v string) *LearnerSessionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerSessionUpdate) SetNillableLearnerID(v *string) *LearnerSessionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *LearnerSessionUpdate) SetPlanID(v uuid.UUID) *LearnerSessionUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *LearnerSessionUpdate) SetNillablePlanID(v *uuid.UUID) *LearnerSessionUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// ClearPlanID clears the value of the "plan_id" field.
func (_u *LearnerSessionUpdate) ClearPlanID() *LearnerSessionUpdate {
	_u.mutation.ClearPlanID()
	return _u
}

// SetCurrentSlideNumber sets the "current_slide_number" field.
func (_u *LearnerSessionUpdate) SetCurrentSlideNumber(v int) *LearnerSessionUpdate {
	_u.mutation.ResetCurrentSlideNumber()
	_u.mutation.SetCurrentSlideNumber(v)
	return _u
}

// SetNillableCurrentSlideNumber sets the "current_slide_number" field if the given value is not nil.
func (_u *LearnerSessionUpdate) SetNillableCurrentSlideNumber(v *int) *LearnerSessionUpdate {
	if v != nil {
		_u.SetCurrentSlideNumber(*v)
	}
	return _u
}

// AddCurrentSlideNumber adds value to the "current_slide_number" field.
func (_u *LearnerSessionUpdate) AddCurrentSlideNumber(v int) *LearnerSessionUpdate {
	_u.mutation.AddCurrentSlideNumber(v)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *LearnerSessionUpdate) SetProfile(v map[string]interface{}) *LearnerSessionUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerSessionUpdate) SetUpdatedAt(v time.Time) *LearnerSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerSessionMutation object of the builder.
func (_u *LearnerSessionUpdate) Mutation() *LearnerSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnersession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersession.Table, learnersession.Columns, sqlgraph.NewFieldSpec(learnersession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learnersession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(learnersession.FieldPlanID, field.TypeUUID, value)
	}
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(learnersession.FieldPlanID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CurrentSlideNumber(); ok {
		_spec.SetField(learnersession.FieldCurrentSlideNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentSlideNumber(); ok {
		_spec.AddField(learnersession.FieldCurrentSlideNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(learnersession.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerSessionUpdateOne is the builder for updating a single LearnerSession entity.
type LearnerSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerSessionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerSessionUpdateOne) SetLearnerID(v string) *LearnerSessionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerSessionUpdateOne) SetNillableLearnerID(v *string) *LearnerSessionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *LearnerSessionUpdateOne) SetPlanID(v uuid.UUID) *LearnerSessionUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *LearnerSessionUpdateOne) SetNillablePlanID(v *uuid.UUID) *LearnerSessionUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// ClearPlanID clears the value of the "plan_id" field.
func (_u *LearnerSessionUpdateOne) ClearPlanID() *LearnerSessionUpdateOne {
	_u.mutation.ClearPlanID()
	return _u
}

// SetCurrentSlideNumber sets the "current_slide_number" field.
func (_u *LearnerSessionUpdateOne) SetCurrentSlideNumber(v int) *LearnerSessionUpdateOne {
	_u.mutation.ResetCurrentSlideNumber()
	_u.mutation.SetCurrentSlideNumber(v)
	return _u
}

// SetNillableCurrentSlideNumber sets the "current_slide_number" field if the given value is not nil.
func (_u *LearnerSessionUpdateOne) SetNillableCurrentSlideNumber(v *int) *LearnerSessionUpdateOne {
	if v != nil {
		_u.SetCurrentSlideNumber(*v)
	}
	return _u
}

// AddCurrentSlideNumber adds value to the "current_slide_number" field.
func (_u *LearnerSessionUpdateOne) AddCurrentSlideNumber(v int) *LearnerSessionUpdateOne {
	_u.mutation.AddCurrentSlideNumber(v)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *LearnerSessionUpdateOne) SetProfile(v map[string]interface{}) *LearnerSessionUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerSessionUpdateOne) SetUpdatedAt(v time.Time) *LearnerSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerSessionMutation object of the builder.
func (_u *LearnerSessionUpdateOne) Mutation() *LearnerSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerSessionUpdate builder.
func (_u *LearnerSessionUpdateOne) Where(ps ...predicate.LearnerSession) *LearnerSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerSessionUpdateOne) Select(field string, fields ...string) *LearnerSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerSession entity.
func (_u *LearnerSessionUpdateOne) Save(ctx context.Context) (*LearnerSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSessionUpdateOne) SaveX(ctx context.Context) *LearnerSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnersession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearnerSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersession.Table, learnersession.Columns, sqlgraph.NewFieldSpec(learnersession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnersession.FieldID)
		for _, f := range fields {
			if !learnersession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnersession.FieldID {
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
		_spec.SetField(learnersession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(learnersession.FieldPlanID, field.TypeUUID, value)
	}
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(learnersession.FieldPlanID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CurrentSlideNumber(); ok {
		_spec.SetField(learnersession.FieldCurrentSlideNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentSlideNumber(); ok {
		_spec.AddField(learnersession.FieldCurrentSlideNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(learnersession.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
