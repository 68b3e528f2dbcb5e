// Code generated by ent, DO NOT EDIT.

package learnersession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldLearnerID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldPlanID, v))
}

// CurrentSlideNumber applies equality check predicate on the "current_slide_number" field. It's identical to CurrentSlideNumberEQ.
func CurrentSlideNumber(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldCurrentSlideNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldContainsFold(FieldLearnerID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v uuid.UUID) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDIsNil applies the IsNil predicate on the "plan_id" field.
func PlanIDIsNil() predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIsNull(FieldPlanID))
}

// PlanIDNotNil applies the NotNil predicate on the "plan_id" field.
func PlanIDNotNil() predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotNull(FieldPlanID))
}

// CurrentSlideNumberEQ applies the EQ predicate on the "current_slide_number" field.
func CurrentSlideNumberEQ(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldCurrentSlideNumber, v))
}

// CurrentSlideNumberNEQ applies the NEQ predicate on the "current_slide_number" field.
func CurrentSlideNumberNEQ(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldCurrentSlideNumber, v))
}

// CurrentSlideNumberIn applies the In predicate on the "current_slide_number" field.
func CurrentSlideNumberIn(vs ...int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldCurrentSlideNumber, vs...))
}

// CurrentSlideNumberNotIn applies the NotIn predicate on the "current_slide_number" field.
func CurrentSlideNumberNotIn(vs ...int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldCurrentSlideNumber, vs...))
}

// CurrentSlideNumberGT applies the GT predicate on the "current_slide_number" field.
func CurrentSlideNumberGT(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldCurrentSlideNumber, v))
}

// CurrentSlideNumberGTE applies the GTE predicate on the "current_slide_number" field.
func CurrentSlideNumberGTE(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldCurrentSlideNumber, v))
}

// CurrentSlideNumberLT applies the LT predicate on the "current_slide_number" field.
func CurrentSlideNumberLT(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldCurrentSlideNumber, v))
}

// CurrentSlideNumberLTE applies the LTE predicate on the "current_slide_number" field.
func CurrentSlideNumberLTE(v int) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldCurrentSlideNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerSession {
	return predicate.LearnerSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerSession) predicate.LearnerSession {
	return predicate.LearnerSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerSession) predicate.LearnerSession {
	return predicate.LearnerSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerSession) predicate.LearnerSession {
	return predicate.LearnerSession(sql.NotPredicates(p))
}
