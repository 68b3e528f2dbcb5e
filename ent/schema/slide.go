package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Slide is a single curriculum page. Created empty at plan materialization
// and filled lazily: a nil content is the "not yet generated" state.
type Slide struct {
	ent.Schema
}

func (Slide) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("title").
			NotEmpty(),
		field.Enum("slide_type").
			Values("plan", "stage", "module", "content", "quiz"),
		field.Enum("quiz_scope").
			Values("submodule", "module", "stage").
			Optional().
			Comment("Set at materialization for quiz slides; empty otherwise"),
		field.Int("position").
			Min(1).
			Comment("Order within the submodule"),
		field.Int("global_position").
			Min(1).
			Comment("Order across the whole plan, used for slide N of M"),
		field.Text("content").
			Optional().
			Nillable(),
		field.Time("generated_at").
			Optional().
			Nillable(),
	}
}

func (Slide) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submodule", Submodule.Type).
			Ref("slides").
			Unique().
			Required(),
	}
}

func (Slide) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("global_position"),
	}
}
