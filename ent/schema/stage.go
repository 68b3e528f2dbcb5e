package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Stage is one of the five fixed curriculum stages. Its number determines
// its canonical title; both are validated before persistence.
type Stage struct {
	ent.Schema
}

func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int("number").
			Min(1).
			Max(5).
			Comment("Stage number 1..5, unique within a plan"),
		field.String("title").
			NotEmpty(),
	}
}

func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", TrainingPlan.Type).
			Ref("stages").
			Unique().
			Required(),
		edge.To("modules", Module.Type),
	}
}
