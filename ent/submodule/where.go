// Code generated by ent, DO NOT EDIT.

package submodule

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submodule {
	return predicate.Submodule(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldPosition, v))
}

// SlideCount applies equality check predicate on the "slide_count" field. It's identical to SlideCountEQ.
func SlideCount(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldSlideCount, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Submodule {
	return predicate.Submodule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Submodule {
	return predicate.Submodule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Submodule {
	return predicate.Submodule(sql.FieldContainsFold(FieldName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Submodule {
	return predicate.Submodule(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Submodule {
	return predicate.Submodule(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldLTE(FieldPosition, v))
}

// SlideCountEQ applies the EQ predicate on the "slide_count" field.
func SlideCountEQ(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldEQ(FieldSlideCount, v))
}

// SlideCountNEQ applies the NEQ predicate on the "slide_count" field.
func SlideCountNEQ(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldNEQ(FieldSlideCount, v))
}

// SlideCountIn applies the In predicate on the "slide_count" field.
func SlideCountIn(vs ...int) predicate.Submodule {
	return predicate.Submodule(sql.FieldIn(FieldSlideCount, vs...))
}

// SlideCountNotIn applies the NotIn predicate on the "slide_count" field.
func SlideCountNotIn(vs ...int) predicate.Submodule {
	return predicate.Submodule(sql.FieldNotIn(FieldSlideCount, vs...))
}

// SlideCountGT applies the GT predicate on the "slide_count" field.
func SlideCountGT(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldGT(FieldSlideCount, v))
}

// SlideCountGTE applies the GTE predicate on the "slide_count" field.
func SlideCountGTE(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldGTE(FieldSlideCount, v))
}

// SlideCountLT applies the LT predicate on the "slide_count" field.
func SlideCountLT(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldLT(FieldSlideCount, v))
}

// SlideCountLTE applies the LTE predicate on the "slide_count" field.
func SlideCountLTE(v int) predicate.Submodule {
	return predicate.Submodule(sql.FieldLTE(FieldSlideCount, v))
}

// HasModule applies the HasEdge predicate on the "module" edge.
func HasModule() predicate.Submodule {
	return predicate.Submodule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ModuleTable, ModuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModuleWith applies the HasEdge predicate on the "module" edge with a given conditions (other predicates).
func HasModuleWith(preds ...predicate.Module) predicate.Submodule {
	return predicate.Submodule(func(s *sql.Selector) {
		step := newModuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSlides applies the HasEdge predicate on the "slides" edge.
func HasSlides() predicate.Submodule {
	return predicate.Submodule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SlidesTable, SlidesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSlidesWith applies the HasEdge predicate on the "slides" edge with a given conditions (other predicates).
func HasSlidesWith(preds ...predicate.Slide) predicate.Submodule {
	return predicate.Submodule(func(s *sql.Selector) {
		step := newSlidesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submodule) predicate.Submodule {
	return predicate.Submodule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submodule) predicate.Submodule {
	return predicate.Submodule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submodule) predicate.Submodule {
	return predicate.Submodule(sql.NotPredicates(p))
}
