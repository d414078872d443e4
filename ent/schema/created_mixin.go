package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// CreatedMixin provides the creation timestamp shared by problems and
// reviews. The value defaults to now but may be set explicitly so reviews
// can be backdated when seeding.
type CreatedMixin struct {
	mixin.Schema
}

func (CreatedMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_date").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the record was created"),
	}
}

func (CreatedMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_date"),
	}
}
