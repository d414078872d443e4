package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Problem is a practice problem. Its name selects the generator that
// renders a fresh question each time it is presented.
type Problem struct {
	ent.Schema
}

func (Problem) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedMixin{}}
}

func (Problem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Generator kind, e.g. bytes2bits"),
		field.Bool("suspended").
			Default(false).
			Comment("Suspended problems are never presented"),
		field.String("suspend_reason").
			Optional().
			Nillable(),
	}
}

func (Problem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reviews", Review.Type),
		edge.To("due", Due.Type).
			Unique(),
	}
}

func (Problem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("suspended"),
	}
}
