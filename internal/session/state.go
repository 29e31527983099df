package session

import (
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

// Phase is the session-level state.
type Phase string

const (
	PhaseEmpty    Phase = "empty"    // no cards at all
	PhasePrompt   Phase = "prompt"   // awaiting an answer
	PhaseReview   Phase = "review"   // verdict shown
	PhaseComplete Phase = "complete" // queue exhausted after studying
)

// ReviewAction tags how a card left the active slot.
type ReviewAction string

const (
	ActionNext        ReviewAction = "next"
	ActionMarkLearned ReviewAction = "markLearned"
	ActionBackOfPile  ReviewAction = "backOfPile"
)

// CompletedEntry is one review event. The completed log is append-only
// history: after a backOfPile the same card is both logged here and still
// waiting in the queue, so the log must never be read as a membership set.
type CompletedEntry struct {
	Card        deck.CardSummary `json:"card"`
	Action      ReviewAction     `json:"action"`
	CompletedAt time.Time        `json:"completedAt"`
	Verdict     scoring.Verdict  `json:"verdict,omitempty"`
}

// State is the scheduler's entire state. Transition treats it as
// immutable and returns a fresh value; slices are never mutated in place.
type State struct {
	DeckID     string             `json:"deckId,omitempty"`
	Active     *deck.CardSummary  `json:"active,omitempty"`
	Queue      []deck.CardSummary `json:"queue"`
	Completed  []CompletedEntry   `json:"completed"`
	Phase      Phase              `json:"phase"`
	LastAction string             `json:"lastAction,omitempty"`

	// Total is the card count fixed at bootstrap, for progress display.
	// It does not shrink as cards complete.
	Total int `json:"total"`
}

// EmptyState returns the canonical empty state.
func EmptyState() State {
	return State{Phase: PhaseEmpty}
}

// clone copies s with fresh slice headers so transitions can append
// without aliasing the previous state.
func (s State) clone() State {
	out := s
	if s.Active != nil {
		active := *s.Active
		out.Active = &active
	}
	out.Queue = make([]deck.CardSummary, len(s.Queue))
	copy(out.Queue, s.Queue)
	out.Completed = make([]CompletedEntry, len(s.Completed))
	copy(out.Completed, s.Completed)
	return out
}

// ActiveID returns the id of the active card, or "".
func (s State) ActiveID() string {
	if s.Active == nil {
		return ""
	}
	return s.Active.ID
}
