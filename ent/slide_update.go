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
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/google/uuid"
)

// SlideUpdate is the builder for updating Slide entities.
type SlideUpdate struct {
	config
	hooks    []Hook
	mutation *SlideMutation
}

// Where appends a list predicates to the SlideUpdate builder.
func (_u *SlideUpdate) Where(ps ...predicate.Slide) *SlideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SlideUpdate) SetTitle(v string) *SlideUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableTitle(v *string) *SlideUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlideType sets the "slide_type" field.
func (_u *SlideUpdate) SetSlideType(v slide.SlideType) *SlideUpdate {
	_u.mutation.SetSlideType(v)
	return _u
}

// SetNillableSlideType sets the "slide_type" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableSlideType(v *slide.SlideType) *SlideUpdate {
	if v != nil {
		_u.SetSlideType(*v)
	}
	return _u
}

// SetQuizScope sets the "quiz_scope" field.
func (_u *SlideUpdate) SetQuizScope(v slide.QuizScope) *SlideUpdate {
	_u.mutation.SetQuizScope(v)
	return _u
}

// SetNillableQuizScope sets the "quiz_scope" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableQuizScope(v *slide.QuizScope) *SlideUpdate {
	if v != nil {
		_u.SetQuizScope(*v)
	}
	return _u
}

// ClearQuizScope clears the value of the "quiz_scope" field.
func (_u *SlideUpdate) ClearQuizScope() *SlideUpdate {
	_u.mutation.ClearQuizScope()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SlideUpdate) SetPosition(v int) *SlideUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SlideUpdate) SetNillablePosition(v *int) *SlideUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SlideUpdate) AddPosition(v int) *SlideUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetGlobalPosition sets the "global_position" field.
func (_u *SlideUpdate) SetGlobalPosition(v int) *SlideUpdate {
	_u.mutation.ResetGlobalPosition()
	_u.mutation.SetGlobalPosition(v)
	return _u
}

// SetNillableGlobalPosition sets the "global_position" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableGlobalPosition(v *int) *SlideUpdate {
	if v != nil {
		_u.SetGlobalPosition(*v)
	}
	return _u
}

// AddGlobalPosition adds value to the "global_position" field.
func (_u *SlideUpdate) AddGlobalPosition(v int) *SlideUpdate {
	_u.mutation.AddGlobalPosition(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *SlideUpdate) SetContent(v string) *SlideUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableContent(v *string) *SlideUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SlideUpdate) ClearContent() *SlideUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *SlideUpdate) SetGeneratedAt(v time.Time) *SlideUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableGeneratedAt(v *time.Time) *SlideUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *SlideUpdate) ClearGeneratedAt() *SlideUpdate {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetSubmoduleID sets the "submodule" edge to the Submodule entity by ID.
func (_u *SlideUpdate) SetSubmoduleID(id uuid.UUID) *SlideUpdate {
	_u.mutation.SetSubmoduleID(id)
	return _u
}

// SetSubmodule sets the "submodule" edge to the Submodule entity.
func (_u *SlideUpdate) SetSubmodule(v *Submodule) *SlideUpdate {
	return _u.SetSubmoduleID(v.ID)
}

// Mutation returns the SlideMutation object of the builder.
func (_u *SlideUpdate) Mutation() *SlideMutation {
	return _u.mutation
}

// ClearSubmodule clears the "submodule" edge to the Submodule entity.
func (_u *SlideUpdate) ClearSubmodule() *SlideUpdate {
	_u.mutation.ClearSubmodule()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlideUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlideUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := slide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Slide.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlideType(); ok {
		if err := slide.SlideTypeValidator(v); err != nil {
			return &ValidationError{Name: "slide_type", err: fmt.Errorf(`ent: validator failed for field "Slide.slide_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizScope(); ok {
		if err := slide.QuizScopeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_scope", err: fmt.Errorf(`ent: validator failed for field "Slide.quiz_scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := slide.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Slide.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalPosition(); ok {
		if err := slide.GlobalPositionValidator(v); err != nil {
			return &ValidationError{Name: "global_position", err: fmt.Errorf(`ent: validator failed for field "Slide.global_position": %w`, err)}
		}
	}
	if _u.mutation.SubmoduleCleared() && len(_u.mutation.SubmoduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slide.submodule"`)
	}
	return nil
}

func (_u *SlideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slide.Table, slide.Columns, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(slide.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlideType(); ok {
		_spec.SetField(slide.FieldSlideType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuizScope(); ok {
		_spec.SetField(slide.FieldQuizScope, field.TypeEnum, value)
	}
	if _u.mutation.QuizScopeCleared() {
		_spec.ClearField(slide.FieldQuizScope, field.TypeEnum)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(slide.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(slide.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalPosition(); ok {
		_spec.SetField(slide.FieldGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGlobalPosition(); ok {
		_spec.AddField(slide.FieldGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(slide.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(slide.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(slide.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(slide.FieldGeneratedAt, field.TypeTime)
	}
	if _u.mutation.SubmoduleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmoduleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlideUpdateOne is the builder for updating a single Slide entity.
type SlideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlideMutation
}

// SetTitle sets the "title" field.
func (_u *SlideUpdateOne) SetTitle(v string) *SlideUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableTitle(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlideType sets the "slide_type" field.
func (_u *SlideUpdateOne) SetSlideType(v slide.SlideType) *SlideUpdateOne {
	_u.mutation.SetSlideType(v)
	return _u
}

// SetNillableSlideType sets the "slide_type" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableSlideType(v *slide.SlideType) *SlideUpdateOne {
	if v != nil {
		_u.SetSlideType(*v)
	}
	return _u
}

// SetQuizScope sets the "quiz_scope" field.
func (_u *SlideUpdateOne) SetQuizScope(v slide.QuizScope) *SlideUpdateOne {
	_u.mutation.SetQuizScope(v)
	return _u
}

// SetNillableQuizScope sets the "quiz_scope" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableQuizScope(v *slide.QuizScope) *SlideUpdateOne {
	if v != nil {
		_u.SetQuizScope(*v)
	}
	return _u
}

// ClearQuizScope clears the value of the "quiz_scope" field.
func (_u *SlideUpdateOne) ClearQuizScope() *SlideUpdateOne {
	_u.mutation.ClearQuizScope()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SlideUpdateOne) SetPosition(v int) *SlideUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillablePosition(v *int) *SlideUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SlideUpdateOne) AddPosition(v int) *SlideUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetGlobalPosition sets the "global_position" field.
func (_u *SlideUpdateOne) SetGlobalPosition(v int) *SlideUpdateOne {
	_u.mutation.ResetGlobalPosition()
	_u.mutation.SetGlobalPosition(v)
	return _u
}

// SetNillableGlobalPosition sets the "global_position" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableGlobalPosition(v *int) *SlideUpdateOne {
	if v != nil {
		_u.SetGlobalPosition(*v)
	}
	return _u
}

// AddGlobalPosition adds value to the "global_position" field.
func (_u *SlideUpdateOne) AddGlobalPosition(v int) *SlideUpdateOne {
	_u.mutation.AddGlobalPosition(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *SlideUpdateOne) SetContent(v string) *SlideUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableContent(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SlideUpdateOne) ClearContent() *SlideUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *SlideUpdateOne) SetGeneratedAt(v time.Time) *SlideUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableGeneratedAt(v *time.Time) *SlideUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *SlideUpdateOne) ClearGeneratedAt() *SlideUpdateOne {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetSubmoduleID sets the "submodule" edge to the Submodule entity by ID.
func (_u *SlideUpdateOne) SetSubmoduleID(id uuid.UUID) *SlideUpdateOne {
	_u.mutation.SetSubmoduleID(id)
	return _u
}

// SetSubmodule sets the "submodule" edge to the Submodule entity.
func (_u *SlideUpdateOne) SetSubmodule(v *Submodule) *SlideUpdateOne {
	return _u.SetSubmoduleID(v.ID)
}

// Mutation returns the SlideMutation object of the builder.
func (_u *SlideUpdateOne) Mutation() *SlideMutation {
	return _u.mutation
}

// ClearSubmodule clears the "submodule" edge to the Submodule entity.
func (_u *SlideUpdateOne) ClearSubmodule() *SlideUpdateOne {
	_u.mutation.ClearSubmodule()
	return _u
}

// Where appends a list predicates to the SlideUpdate builder.
func (_u *SlideUpdateOne) Where(ps ...predicate.Slide) *SlideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlideUpdateOne) Select(field string, fields ...string) *SlideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Slide entity.
func (_u *SlideUpdateOne) Save(ctx context.Context) (*Slide, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideUpdateOne) SaveX(ctx context.Context) *Slide {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlideUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := slide.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Slide.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlideType(); ok {
		if err := slide.SlideTypeValidator(v); err != nil {
			return &ValidationError{Name: "slide_type", err: fmt.Errorf(`ent: validator failed for field "Slide.slide_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizScope(); ok {
		if err := slide.QuizScopeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_scope", err: fmt.Errorf(`ent: validator failed for field "Slide.quiz_scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := slide.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Slide.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalPosition(); ok {
		if err := slide.GlobalPositionValidator(v); err != nil {
			return &ValidationError{Name: "global_position", err: fmt.Errorf(`ent: validator failed for field "Slide.global_position": %w`, err)}
		}
	}
	if _u.mutation.SubmoduleCleared() && len(_u.mutation.SubmoduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Slide.submodule"`)
	}
	return nil
}

func (_u *SlideUpdateOne) sqlSave(ctx context.Context) (_node *Slide, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slide.Table, slide.Columns, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Slide.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slide.FieldID)
		for _, f := range fields {
			if !slide.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slide.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(slide.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlideType(); ok {
		_spec.SetField(slide.FieldSlideType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuizScope(); ok {
		_spec.SetField(slide.FieldQuizScope, field.TypeEnum, value)
	}
	if _u.mutation.QuizScopeCleared() {
		_spec.ClearField(slide.FieldQuizScope, field.TypeEnum)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(slide.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(slide.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalPosition(); ok {
		_spec.SetField(slide.FieldGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGlobalPosition(); ok {
		_spec.AddField(slide.FieldGlobalPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(slide.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(slide.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(slide.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(slide.FieldGeneratedAt, field.TypeTime)
	}
	if _u.mutation.SubmoduleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmoduleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Slide{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
