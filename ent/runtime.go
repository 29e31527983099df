// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arvindh/recallo/ent/attempt"
	"github.com/arvindh/recallo/ent/card"
	"github.com/arvindh/recallo/ent/deck"
	"github.com/arvindh/recallo/ent/llmcallevent"
	"github.com/arvindh/recallo/ent/schema"
	"github.com/arvindh/recallo/ent/sessionblob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescAttemptID is the schema descriptor for attempt_id field.
	attemptDescAttemptID := attemptFields[0].Descriptor()
	// attempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attempt.AttemptIDValidator = attemptDescAttemptID.Validators[0].(func(string) error)
	// attemptDescCardID is the schema descriptor for card_id field.
	attemptDescCardID := attemptFields[1].Descriptor()
	// attempt.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	attempt.CardIDValidator = attemptDescCardID.Validators[0].(func(string) error)
	// attemptDescUserAnswer is the schema descriptor for user_answer field.
	attemptDescUserAnswer := attemptFields[2].Descriptor()
	// attempt.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	attempt.UserAnswerValidator = attemptDescUserAnswer.Validators[0].(func(string) error)
	// attemptDescVerdict is the schema descriptor for verdict field.
	attemptDescVerdict := attemptFields[3].Descriptor()
	// attempt.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	attempt.VerdictValidator = attemptDescVerdict.Validators[0].(func(string) error)
	// attemptDescCosine is the schema descriptor for cosine field.
	attemptDescCosine := attemptFields[5].Descriptor()
	// attempt.DefaultCosine holds the default value on creation for the cosine field.
	attempt.DefaultCosine = attemptDescCosine.Default.(float64)
	// attemptDescCoverage is the schema descriptor for coverage field.
	attemptDescCoverage := attemptFields[6].Descriptor()
	// attempt.DefaultCoverage holds the default value on creation for the coverage field.
	attempt.DefaultCoverage = attemptDescCoverage.Default.(float64)
	// attemptDescFeedback is the schema descriptor for feedback field.
	attemptDescFeedback := attemptFields[8].Descriptor()
	// attempt.DefaultFeedback holds the default value on creation for the feedback field.
	attempt.DefaultFeedback = attemptDescFeedback.Default.(string)
	// attemptDescPrompt is the schema descriptor for prompt field.
	attemptDescPrompt := attemptFields[9].Descriptor()
	// attempt.DefaultPrompt holds the default value on creation for the prompt field.
	attempt.DefaultPrompt = attemptDescPrompt.Default.(string)
	// attemptDescExpectedAnswer is the schema descriptor for expected_answer field.
	attemptDescExpectedAnswer := attemptFields[10].Descriptor()
	// attempt.DefaultExpectedAnswer holds the default value on creation for the expected_answer field.
	attempt.DefaultExpectedAnswer = attemptDescExpectedAnswer.Default.(string)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[12].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescCardID is the schema descriptor for card_id field.
	cardDescCardID := cardFields[0].Descriptor()
	// card.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	card.CardIDValidator = cardDescCardID.Validators[0].(func(string) error)
	// cardDescDeckID is the schema descriptor for deck_id field.
	cardDescDeckID := cardFields[1].Descriptor()
	// card.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	card.DeckIDValidator = cardDescDeckID.Validators[0].(func(string) error)
	// cardDescPrompt is the schema descriptor for prompt field.
	cardDescPrompt := cardFields[2].Descriptor()
	// card.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	card.PromptValidator = cardDescPrompt.Validators[0].(func(string) error)
	// cardDescAnswer is the schema descriptor for answer field.
	cardDescAnswer := cardFields[3].Descriptor()
	// card.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	card.AnswerValidator = cardDescAnswer.Validators[0].(func(string) error)
	// cardDescArchived is the schema descriptor for archived field.
	cardDescArchived := cardFields[6].Descriptor()
	// card.DefaultArchived holds the default value on creation for the archived field.
	card.DefaultArchived = cardDescArchived.Default.(bool)
	// cardDescInterval is the schema descriptor for interval field.
	cardDescInterval := cardFields[8].Descriptor()
	// card.DefaultInterval holds the default value on creation for the interval field.
	card.DefaultInterval = cardDescInterval.Default.(int)
	// cardDescEase is the schema descriptor for ease field.
	cardDescEase := cardFields[9].Descriptor()
	// card.DefaultEase holds the default value on creation for the ease field.
	card.DefaultEase = cardDescEase.Default.(float64)
	// cardDescStreak is the schema descriptor for streak field.
	cardDescStreak := cardFields[10].Descriptor()
	// card.DefaultStreak holds the default value on creation for the streak field.
	card.DefaultStreak = cardDescStreak.Default.(int)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[12].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[13].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	deckFields := schema.Deck{}.Fields()
	_ = deckFields
	// deckDescDeckID is the schema descriptor for deck_id field.
	deckDescDeckID := deckFields[0].Descriptor()
	// deck.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	deck.DeckIDValidator = deckDescDeckID.Validators[0].(func(string) error)
	// deckDescTitle is the schema descriptor for title field.
	deckDescTitle := deckFields[1].Descriptor()
	// deck.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	deck.TitleValidator = deckDescTitle.Validators[0].(func(string) error)
	// deckDescDescription is the schema descriptor for description field.
	deckDescDescription := deckFields[2].Descriptor()
	// deck.DefaultDescription holds the default value on creation for the description field.
	deck.DefaultDescription = deckDescDescription.Default.(string)
	// deckDescCreatedAt is the schema descriptor for created_at field.
	deckDescCreatedAt := deckFields[3].Descriptor()
	// deck.DefaultCreatedAt holds the default value on creation for the created_at field.
	deck.DefaultCreatedAt = deckDescCreatedAt.Default.(func() time.Time)
	// deckDescUpdatedAt is the schema descriptor for updated_at field.
	deckDescUpdatedAt := deckFields[4].Descriptor()
	// deck.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deck.DefaultUpdatedAt = deckDescUpdatedAt.Default.(func() time.Time)
	llmcalleventFields := schema.LLMCallEvent{}.Fields()
	_ = llmcalleventFields
	// llmcalleventDescInputTokens is the schema descriptor for input_tokens field.
	llmcalleventDescInputTokens := llmcalleventFields[3].Descriptor()
	// llmcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcallevent.DefaultInputTokens = llmcalleventDescInputTokens.Default.(int)
	// llmcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	llmcalleventDescOutputTokens := llmcalleventFields[4].Descriptor()
	// llmcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcallevent.DefaultOutputTokens = llmcalleventDescOutputTokens.Default.(int)
	// llmcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	llmcalleventDescLatencyMs := llmcalleventFields[5].Descriptor()
	// llmcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcallevent.DefaultLatencyMs = llmcalleventDescLatencyMs.Default.(int64)
	// llmcalleventDescErrorMessage is the schema descriptor for error_message field.
	llmcalleventDescErrorMessage := llmcalleventFields[7].Descriptor()
	// llmcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcallevent.DefaultErrorMessage = llmcalleventDescErrorMessage.Default.(string)
	// llmcalleventDescCreatedAt is the schema descriptor for created_at field.
	llmcalleventDescCreatedAt := llmcalleventFields[8].Descriptor()
	// llmcallevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcallevent.DefaultCreatedAt = llmcalleventDescCreatedAt.Default.(func() time.Time)
	sessionblobFields := schema.SessionBlob{}.Fields()
	_ = sessionblobFields
	// sessionblobDescKey is the schema descriptor for key field.
	sessionblobDescKey := sessionblobFields[0].Descriptor()
	// sessionblob.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sessionblob.KeyValidator = sessionblobDescKey.Validators[0].(func(string) error)
	// sessionblobDescVersion is the schema descriptor for version field.
	sessionblobDescVersion := sessionblobFields[1].Descriptor()
	// sessionblob.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	sessionblob.VersionValidator = sessionblobDescVersion.Validators[0].(func(string) error)
	// sessionblobDescUpdatedAt is the schema descriptor for updated_at field.
	sessionblobDescUpdatedAt := sessionblobFields[3].Descriptor()
	// sessionblob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionblob.DefaultUpdatedAt = sessionblobDescUpdatedAt.Default.(func() time.Time)
}
