package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LearnerSession tracks a learner's resume point in a plan and owns the
// profile read by the generation pipeline.
type LearnerSession struct {
	ent.Schema
}

func (LearnerSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("learner_id"),
		field.UUID("plan_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int("current_slide_number").
			Default(0).
			Comment("Global index of the last served slide; 0 before the first"),
		field.JSON("profile", map[string]any{}).
			Comment("LearnerProfile snapshot, including the enriched record"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
