package store

import (
	"context"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	"github.com/arvindh/recallo/internal/session"
)

// BulkOp is a batch operation applied to a set of cards.
type BulkOp string

const (
	// BulkMarkLearned pushes due_at far into the future so the cards
	// drop out of the due queue.
	BulkMarkLearned BulkOp = "mark-learned"

	// BulkResetSchedule clears the cards' spaced-repetition state.
	BulkResetSchedule BulkOp = "reset-schedule"

	BulkArchive   BulkOp = "archive"
	BulkUnarchive BulkOp = "unarchive"
)

// DeckRepo manages decks and their cards.
type DeckRepo interface {
	// CreateDeck stores a new deck and its cards. Missing card IDs are
	// assigned fresh UUIDs.
	CreateDeck(ctx context.Context, d *deck.Deck) error

	// Decks lists all decks with their cards, newest first.
	Decks(ctx context.Context) ([]deck.Deck, error)

	// DeckByID loads one deck with all of its cards. Returns an error
	// containing "not found" when no such deck exists.
	DeckByID(ctx context.Context, deckID string) (*deck.Deck, error)

	// DeleteDeck removes a deck, its cards and their attempts.
	DeleteDeck(ctx context.Context, deckID string) error

	// StudyCards returns the deck's non-archived cards in stored order.
	StudyCards(ctx context.Context, deckID string) ([]deck.CardSummary, error)

	// SyncCard overwrites a card's content and schedule from a full
	// card payload.
	SyncCard(ctx context.Context, card deck.CardSummary) error

	// BulkUpdateCards applies op to the given cards and returns how
	// many rows changed.
	BulkUpdateCards(ctx context.Context, cardIDs []string, op BulkOp) (int, error)
}

// AttemptRepo persists scored attempts and serves per-card history.
// It implements scoring.AttemptSaver and scoring.History.
type AttemptRepo interface {
	scoring.AttemptSaver

	// Attempts returns up to limit attempts for a card, newest first.
	// Returns an error containing "not found" when the card does not
	// exist.
	Attempts(ctx context.Context, cardID string, limit int) ([]scoring.AttemptRecord, error)
}

// SessionRepo is the durable home of the study session blob.
// It implements session.Persister.
type SessionRepo interface {
	session.Persister
}
