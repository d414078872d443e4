package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Due holds the next due date of a problem. There is at most one row per
// problem; it is overwritten after every review.
type Due struct {
	ent.Schema
}

func (Due) Fields() []ent.Field {
	return []ent.Field{
		field.Int("problem_id").
			Unique().
			Immutable(),
		field.Time("due_date").
			Comment("When the problem should next be presented"),
	}
}

func (Due) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("problem", Problem.Type).
			Ref("due").
			Field("problem_id").
			Unique().
			Required().
			Immutable(),
	}
}
