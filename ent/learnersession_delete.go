// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
)

// LearnerSessionDelete is the builder for deleting a LearnerSession entity.
type LearnerSessionDelete struct {
	config
	hooks    []Hook
	mutation *LearnerSessionMutation
}

// Where appends a list predicates to the LearnerSessionDelete builder.
func (_d *LearnerSessionDelete) Where(ps ...predicate.LearnerSession) *LearnerSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearnerSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearnerSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learnersession.Table, sqlgraph.NewFieldSpec(learnersession.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearnerSessionDeleteOne is the builder for deleting a single LearnerSession entity.
type LearnerSessionDeleteOne struct {
	_d *LearnerSessionDelete
}

// Where appends a list predicates to the LearnerSessionDelete builder.
func (_d *LearnerSessionDeleteOne) Where(ps ...predicate.LearnerSession) *LearnerSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearnerSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learnersession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
