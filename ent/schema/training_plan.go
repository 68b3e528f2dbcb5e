package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TrainingPlan is the root of a personalized curriculum: exactly five
// stages generated once per (learner, training) pair. Regeneration creates
// a new plan record; plans are never mutated once slides exist.
type TrainingPlan struct {
	ent.Schema
}

func (TrainingPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("learner_id").
			Comment("Owning learner (external identity)"),
		field.String("training_id").
			Comment("Source training document identity"),
		field.String("document_key").
			Default("").
			Comment("SHA-256 identity of the source document, shared with the context cache"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TrainingPlan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", Stage.Type),
	}
}

func (TrainingPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "training_id"),
	}
}
