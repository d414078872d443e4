package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Review records a single answer attempt. Reviews are append-only.
type Review struct {
	ent.Schema
}

func (Review) Mixin() []ent.Mixin {
	return []ent.Mixin{CreatedMixin{}}
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.Int("problem_id").
			Immutable().
			Comment("Owning problem"),
		field.Bool("correct").
			Immutable().
			Comment("Whether the answer was correct"),
	}
}

func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("problem", Problem.Type).
			Ref("reviews").
			Field("problem_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id"),
	}
}
