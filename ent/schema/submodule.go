package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Submodule is the unit slides hang off; 1-4 per module, each declaring a
// target slide count in [2,8].
type Submodule struct {
	ent.Schema
}

func (Submodule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Min(1).
			Comment("Order within the module"),
		field.Int("slide_count").
			Min(2).
			Max(8),
	}
}

func (Submodule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("module", Module.Type).
			Ref("submodules").
			Unique().
			Required(),
		edge.To("slides", Slide.Type),
	}
}
