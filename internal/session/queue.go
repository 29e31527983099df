package session

import (
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

// now is stubbed in tests.
var now = time.Now

// Event is a structural session event applied by Transition.
type Event interface {
	eventName() string
}

// Bootstrap initializes a session from a card list. Archived cards are
// dropped; the caller is responsible for any due-date sorting.
type Bootstrap struct {
	DeckID string
	Cards  []deck.CardSummary
}

// SetActive selects a card by id. An empty id parks the current active
// card at the front of the queue.
type SetActive struct {
	CardID string
}

// Check moves the session from prompt to review once a verdict is in.
type Check struct{}

// Next completes the active card and advances the queue.
type Next struct {
	Verdict scoring.Verdict
}

// MarkLearned completes the active card like Next, tagged as learned.
// It does not remove the card from future sessions; that policy lives
// with the deck repository.
type MarkLearned struct {
	Verdict scoring.Verdict
}

// BackOfPile defers the active card to the end of the queue while still
// logging this pass as a review event.
type BackOfPile struct {
	Verdict scoring.Verdict
}

// SyncCard refreshes card data wherever the id occurs in the session.
type SyncCard struct {
	Card deck.CardSummary
}

// Reset returns the session to the canonical empty state.
type Reset struct{}

func (Bootstrap) eventName() string   { return "bootstrap" }
func (SetActive) eventName() string   { return "setActive" }
func (Check) eventName() string       { return "check" }
func (Next) eventName() string        { return "next" }
func (MarkLearned) eventName() string { return "markLearned" }
func (BackOfPile) eventName() string  { return "backOfPile" }
func (SyncCard) eventName() string    { return "syncCard" }
func (Reset) eventName() string       { return "reset" }

// Transition computes the next state for an event. It is pure: no I/O,
// no mutation of s. Events with unmet preconditions return s unchanged.
func Transition(s State, ev Event) State {
	switch ev := ev.(type) {
	case Bootstrap:
		return applyBootstrap(ev)
	case SetActive:
		return applySetActive(s, ev)
	case Check:
		if s.Active == nil {
			return s
		}
		next := s.clone()
		next.Phase = PhaseReview
		next.LastAction = ev.eventName()
		return next
	case Next:
		return applyAdvance(s, ActionNext, ev.Verdict, ev.eventName())
	case MarkLearned:
		return applyAdvance(s, ActionMarkLearned, ev.Verdict, ev.eventName())
	case BackOfPile:
		return applyBackOfPile(s, ev)
	case SyncCard:
		return applySyncCard(s, ev)
	case Reset:
		next := EmptyState()
		next.LastAction = ev.eventName()
		return next
	}
	return s
}

func applyBootstrap(ev Bootstrap) State {
	kept := make([]deck.CardSummary, 0, len(ev.Cards))
	for _, c := range ev.Cards {
		if !c.Archived {
			kept = append(kept, c)
		}
	}

	next := State{
		DeckID:     ev.DeckID,
		Queue:      []deck.CardSummary{},
		Completed:  []CompletedEntry{},
		Phase:      PhaseEmpty,
		LastAction: "bootstrap",
		Total:      len(kept),
	}
	if len(kept) > 0 {
		active := kept[0]
		next.Active = &active
		next.Queue = append(next.Queue, kept[1:]...)
		next.Phase = PhasePrompt
	}
	return next
}

func applySetActive(s State, ev SetActive) State {
	// Park the active card at the front of the queue.
	if ev.CardID == "" {
		if s.Active == nil {
			next := s.clone()
			next.Phase = recomputePhase(next.Active, len(next.Queue), s.Phase)
			next.LastAction = ev.eventName()
			return next
		}
		next := s.clone()
		next.Queue = prepend(next.Queue, *s.Active)
		next.Active = nil
		next.Phase = recomputePhase(nil, len(next.Queue), s.Phase)
		next.LastAction = ev.eventName()
		return next
	}

	// Selecting the already-active card only normalizes the phase.
	if s.Active != nil && s.Active.ID == ev.CardID {
		next := s.clone()
		next.Phase = PhasePrompt
		next.LastAction = ev.eventName()
		return next
	}

	// Queue first: remove the card and promote it.
	for i, c := range s.Queue {
		if c.ID != ev.CardID {
			continue
		}
		next := s.clone()
		next.Queue = append(next.Queue[:i:i], next.Queue[i+1:]...)
		if s.Active != nil {
			next.Queue = prepend(next.Queue, *s.Active)
		}
		active := c
		next.Active = &active
		next.Phase = PhasePrompt
		next.LastAction = ev.eventName()
		return next
	}

	// Then the completed log: clone the card back into play without
	// touching the history.
	for _, e := range s.Completed {
		if e.Card.ID != ev.CardID {
			continue
		}
		next := s.clone()
		if s.Active != nil {
			next.Queue = prepend(next.Queue, *s.Active)
		}
		active := e.Card
		next.Active = &active
		next.Phase = PhasePrompt
		next.LastAction = ev.eventName()
		return next
	}

	// Unknown id: state unchanged.
	return s
}

func applyAdvance(s State, action ReviewAction, verdict scoring.Verdict, name string) State {
	if s.Active == nil {
		return s
	}

	next := s.clone()
	next.Completed = append(next.Completed, CompletedEntry{
		Card:        *s.Active,
		Action:      action,
		CompletedAt: now().UTC(),
		Verdict:     verdict,
	})

	if len(next.Queue) > 0 {
		active := next.Queue[0]
		next.Active = &active
		next.Queue = next.Queue[1:]
		next.Phase = PhasePrompt
	} else {
		next.Active = nil
		next.Phase = PhaseComplete
	}
	next.LastAction = name
	return next
}

func applyBackOfPile(s State, ev BackOfPile) State {
	if s.Active == nil {
		return s
	}

	next := s.clone()
	next.Completed = append(next.Completed, CompletedEntry{
		Card:        *s.Active,
		Action:      ActionBackOfPile,
		CompletedAt: now().UTC(),
		Verdict:     ev.Verdict,
	})

	// Append the active card, then pop the front of the extended queue.
	// With an empty queue the same card comes straight back.
	q := append(next.Queue, *s.Active)
	active := q[0]
	next.Active = &active
	next.Queue = q[1:]
	next.Phase = PhasePrompt
	next.LastAction = ev.eventName()
	return next
}

func applySyncCard(s State, ev SyncCard) State {
	matched := s.Active != nil && s.Active.ID == ev.Card.ID
	if !matched {
		for _, c := range s.Queue {
			if c.ID == ev.Card.ID {
				matched = true
				break
			}
		}
	}
	if !matched {
		for _, e := range s.Completed {
			if e.Card.ID == ev.Card.ID {
				matched = true
				break
			}
		}
	}
	if !matched {
		return s
	}

	next := s.clone()
	if next.Active != nil && next.Active.ID == ev.Card.ID {
		merged := next.Active.Merge(ev.Card)
		next.Active = &merged
	}
	for i := range next.Queue {
		if next.Queue[i].ID == ev.Card.ID {
			next.Queue[i] = next.Queue[i].Merge(ev.Card)
		}
	}
	for i := range next.Completed {
		if next.Completed[i].Card.ID == ev.Card.ID {
			next.Completed[i].Card = next.Completed[i].Card.Merge(ev.Card)
		}
	}
	next.LastAction = ev.eventName()
	return next
}

// recomputePhase derives the phase for events that do not advance the
// queue. Complete is sticky: it is distinguishable from empty only by the
// transition history, not by the snapshot fields.
func recomputePhase(active *deck.CardSummary, queueLen int, prev Phase) Phase {
	if active != nil || queueLen > 0 {
		return PhasePrompt
	}
	if prev == PhaseComplete {
		return PhaseComplete
	}
	return PhaseEmpty
}

func prepend(queue []deck.CardSummary, card deck.CardSummary) []deck.CardSummary {
	out := make([]deck.CardSummary, 0, len(queue)+1)
	out = append(out, card)
	return append(out, queue...)
}
