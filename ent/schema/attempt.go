package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one scored answer. It echoes the card's prompt and
// expected answer so history stays readable after the card is edited.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Public UUID of the attempt"),
		field.String("card_id").
			NotEmpty().
			Comment("Links to Card"),
		field.String("user_answer").
			NotEmpty().
			Comment("What the learner entered"),
		field.String("verdict").
			NotEmpty().
			Comment("incorrect, missing, almost, or correct"),
		field.Float("score").
			Comment("Blended similarity score, 0-1"),
		field.Float("cosine").
			Default(0).
			Comment("Embedding cosine similarity, 0-1"),
		field.Float("coverage").
			Default(0).
			Comment("Share of keypoints covered, 0-1"),
		field.JSON("missing_keypoints", []string{}).
			Optional().
			Comment("Keypoints the answer failed to cover"),
		field.String("feedback").
			Optional().
			Default("").
			Comment("One or two sentences for the learner"),
		field.String("prompt").
			Optional().
			Default("").
			Comment("Card prompt at the time of the attempt"),
		field.String("expected_answer").
			Optional().
			Default("").
			Comment("Card answer at the time of the attempt"),
		field.JSON("keypoints", []string{}).
			Optional().
			Comment("Card keypoints at the time of the attempt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("created_at"),
	}
}
