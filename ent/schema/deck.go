package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deck is a named collection of flashcards.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.String("deck_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Public UUID of the deck"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (Deck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id"),
	}
}
