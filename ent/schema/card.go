package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single flashcard. Schedule fields are nullable: a card that
// was never reviewed has no schedule yet.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Public UUID of the card"),
		field.String("deck_id").
			NotEmpty().
			Comment("Links to Deck"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown to the learner"),
		field.String("answer").
			NotEmpty().
			Comment("The canonical expected answer"),
		field.JSON("keypoints", []string{}).
			Optional().
			Comment("Facts the answer must cover"),
		field.JSON("alternative_answers", []string{}).
			Optional().
			Comment("Other phrasings accepted as fully correct"),
		field.Bool("archived").
			Default(false).
			Comment("Archived cards are excluded from study"),
		field.Time("due_at").
			Optional().
			Nillable().
			Comment("Next review time; nil means never reviewed"),
		field.Int("interval").
			Default(0).
			Comment("Current review interval in days"),
		field.Float("ease").
			Default(0).
			Comment("Ease factor"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive successful reviews"),
		field.Int("last_quality").
			Optional().
			Nillable().
			Comment("Quality grade of the most recent review"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("deck_id"),
		index.Fields("archived"),
	}
}
