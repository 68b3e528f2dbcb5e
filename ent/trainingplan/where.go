// Code generated by ent, DO NOT EDIT.

package trainingplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldLearnerID, v))
}

// TrainingID applies equality check predicate on the "training_id" field. It's identical to TrainingIDEQ.
func TrainingID(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldTrainingID, v))
}

// DocumentKey applies equality check predicate on the "document_key" field. It's identical to DocumentKeyEQ.
func DocumentKey(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldDocumentKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContainsFold(FieldLearnerID, v))
}

// TrainingIDEQ applies the EQ predicate on the "training_id" field.
func TrainingIDEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldTrainingID, v))
}

// TrainingIDNEQ applies the NEQ predicate on the "training_id" field.
func TrainingIDNEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNEQ(FieldTrainingID, v))
}

// TrainingIDIn applies the In predicate on the "training_id" field.
func TrainingIDIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldIn(FieldTrainingID, vs...))
}

// TrainingIDNotIn applies the NotIn predicate on the "training_id" field.
func TrainingIDNotIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNotIn(FieldTrainingID, vs...))
}

// TrainingIDGT applies the GT predicate on the "training_id" field.
func TrainingIDGT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGT(FieldTrainingID, v))
}

// TrainingIDGTE applies the GTE predicate on the "training_id" field.
func TrainingIDGTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGTE(FieldTrainingID, v))
}

// TrainingIDLT applies the LT predicate on the "training_id" field.
func TrainingIDLT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLT(FieldTrainingID, v))
}

// TrainingIDLTE applies the LTE predicate on the "training_id" field.
func TrainingIDLTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLTE(FieldTrainingID, v))
}

// TrainingIDContains applies the Contains predicate on the "training_id" field.
func TrainingIDContains(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContains(FieldTrainingID, v))
}

// TrainingIDHasPrefix applies the HasPrefix predicate on the "training_id" field.
func TrainingIDHasPrefix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasPrefix(FieldTrainingID, v))
}

// TrainingIDHasSuffix applies the HasSuffix predicate on the "training_id" field.
func TrainingIDHasSuffix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasSuffix(FieldTrainingID, v))
}

// TrainingIDEqualFold applies the EqualFold predicate on the "training_id" field.
func TrainingIDEqualFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEqualFold(FieldTrainingID, v))
}

// TrainingIDContainsFold applies the ContainsFold predicate on the "training_id" field.
func TrainingIDContainsFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContainsFold(FieldTrainingID, v))
}

// DocumentKeyEQ applies the EQ predicate on the "document_key" field.
func DocumentKeyEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldDocumentKey, v))
}

// DocumentKeyNEQ applies the NEQ predicate on the "document_key" field.
func DocumentKeyNEQ(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNEQ(FieldDocumentKey, v))
}

// DocumentKeyIn applies the In predicate on the "document_key" field.
func DocumentKeyIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldIn(FieldDocumentKey, vs...))
}

// DocumentKeyNotIn applies the NotIn predicate on the "document_key" field.
func DocumentKeyNotIn(vs ...string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNotIn(FieldDocumentKey, vs...))
}

// DocumentKeyGT applies the GT predicate on the "document_key" field.
func DocumentKeyGT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGT(FieldDocumentKey, v))
}

// DocumentKeyGTE applies the GTE predicate on the "document_key" field.
func DocumentKeyGTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGTE(FieldDocumentKey, v))
}

// DocumentKeyLT applies the LT predicate on the "document_key" field.
func DocumentKeyLT(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLT(FieldDocumentKey, v))
}

// DocumentKeyLTE applies the LTE predicate on the "document_key" field.
func DocumentKeyLTE(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLTE(FieldDocumentKey, v))
}

// DocumentKeyContains applies the Contains predicate on the "document_key" field.
func DocumentKeyContains(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContains(FieldDocumentKey, v))
}

// DocumentKeyHasPrefix applies the HasPrefix predicate on the "document_key" field.
func DocumentKeyHasPrefix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasPrefix(FieldDocumentKey, v))
}

// DocumentKeyHasSuffix applies the HasSuffix predicate on the "document_key" field.
func DocumentKeyHasSuffix(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldHasSuffix(FieldDocumentKey, v))
}

// DocumentKeyEqualFold applies the EqualFold predicate on the "document_key" field.
func DocumentKeyEqualFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEqualFold(FieldDocumentKey, v))
}

// DocumentKeyContainsFold applies the ContainsFold predicate on the "document_key" field.
func DocumentKeyContainsFold(v string) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldContainsFold(FieldDocumentKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStages applies the HasEdge predicate on the "stages" edge.
func HasStages() predicate.TrainingPlan {
	return predicate.TrainingPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStagesWith applies the HasEdge predicate on the "stages" edge with a given conditions (other predicates).
func HasStagesWith(preds ...predicate.Stage) predicate.TrainingPlan {
	return predicate.TrainingPlan(func(s *sql.Selector) {
		step := newStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingPlan) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingPlan) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingPlan) predicate.TrainingPlan {
	return predicate.TrainingPlan(sql.NotPredicates(p))
}
