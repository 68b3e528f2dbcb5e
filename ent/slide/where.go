// Code generated by ent, DO NOT EDIT.

package slide

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldTitle, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldPosition, v))
}

// GlobalPosition applies equality check predicate on the "global_position" field. It's identical to GlobalPositionEQ.
func GlobalPosition(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldGlobalPosition, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldContent, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldGeneratedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldTitle, v))
}

// SlideTypeEQ applies the EQ predicate on the "slide_type" field.
func SlideTypeEQ(v SlideType) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldSlideType, v))
}

// SlideTypeNEQ applies the NEQ predicate on the "slide_type" field.
func SlideTypeNEQ(v SlideType) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldSlideType, v))
}

// SlideTypeIn applies the In predicate on the "slide_type" field.
func SlideTypeIn(vs ...SlideType) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldSlideType, vs...))
}

// SlideTypeNotIn applies the NotIn predicate on the "slide_type" field.
func SlideTypeNotIn(vs ...SlideType) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldSlideType, vs...))
}

// QuizScopeEQ applies the EQ predicate on the "quiz_scope" field.
func QuizScopeEQ(v QuizScope) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldQuizScope, v))
}

// QuizScopeNEQ applies the NEQ predicate on the "quiz_scope" field.
func QuizScopeNEQ(v QuizScope) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldQuizScope, v))
}

// QuizScopeIn applies the In predicate on the "quiz_scope" field.
func QuizScopeIn(vs ...QuizScope) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldQuizScope, vs...))
}

// QuizScopeNotIn applies the NotIn predicate on the "quiz_scope" field.
func QuizScopeNotIn(vs ...QuizScope) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldQuizScope, vs...))
}

// QuizScopeIsNil applies the IsNil predicate on the "quiz_scope" field.
func QuizScopeIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldQuizScope))
}

// QuizScopeNotNil applies the NotNil predicate on the "quiz_scope" field.
func QuizScopeNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldQuizScope))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldPosition, v))
}

// GlobalPositionEQ applies the EQ predicate on the "global_position" field.
func GlobalPositionEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldGlobalPosition, v))
}

// GlobalPositionNEQ applies the NEQ predicate on the "global_position" field.
func GlobalPositionNEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldGlobalPosition, v))
}

// GlobalPositionIn applies the In predicate on the "global_position" field.
func GlobalPositionIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldGlobalPosition, vs...))
}

// GlobalPositionNotIn applies the NotIn predicate on the "global_position" field.
func GlobalPositionNotIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldGlobalPosition, vs...))
}

// GlobalPositionGT applies the GT predicate on the "global_position" field.
func GlobalPositionGT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldGlobalPosition, v))
}

// GlobalPositionGTE applies the GTE predicate on the "global_position" field.
func GlobalPositionGTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldGlobalPosition, v))
}

// GlobalPositionLT applies the LT predicate on the "global_position" field.
func GlobalPositionLT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldGlobalPosition, v))
}

// GlobalPositionLTE applies the LTE predicate on the "global_position" field.
func GlobalPositionLTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldGlobalPosition, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldContent, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldGeneratedAt, v))
}

// GeneratedAtIsNil applies the IsNil predicate on the "generated_at" field.
func GeneratedAtIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldGeneratedAt))
}

// GeneratedAtNotNil applies the NotNil predicate on the "generated_at" field.
func GeneratedAtNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldGeneratedAt))
}

// HasSubmodule applies the HasEdge predicate on the "submodule" edge.
func HasSubmodule() predicate.Slide {
	return predicate.Slide(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmoduleTable, SubmoduleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmoduleWith applies the HasEdge predicate on the "submodule" edge with a given conditions (other predicates).
func HasSubmoduleWith(preds ...predicate.Submodule) predicate.Slide {
	return predicate.Slide(func(s *sql.Selector) {
		step := newSubmoduleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.NotPredicates(p))
}
