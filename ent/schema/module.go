package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Module is a thematic unit inside a stage; 1-3 per stage.
type Module struct {
	ent.Schema
}

func (Module) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Min(1).
			Comment("Order within the stage"),
	}
}

func (Module) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", Stage.Type).
			Ref("modules").
			Unique().
			Required(),
		edge.To("submodules", Submodule.Type),
	}
}
