// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// Deck is the predicate function for deck builders.
type Deck func(*sql.Selector)

// LLMCallEvent is the predicate function for llmcallevent builders.
type LLMCallEvent func(*sql.Selector)

// SessionBlob is the predicate function for sessionblob builders.
type SessionBlob func(*sql.Selector)
