package decks

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
)

// stubDeckRepo implements store.DeckRepo with a fixed deck list.
type stubDeckRepo struct {
	decks []deck.Deck
	err   error
}

var _ store.DeckRepo = (*stubDeckRepo)(nil)

func (r *stubDeckRepo) CreateDeck(context.Context, *deck.Deck) error { return nil }
func (r *stubDeckRepo) Decks(context.Context) ([]deck.Deck, error)  { return r.decks, r.err }
func (r *stubDeckRepo) DeckByID(context.Context, string) (*deck.Deck, error) {
	return nil, nil
}
func (r *stubDeckRepo) DeleteDeck(context.Context, string) error { return nil }
func (r *stubDeckRepo) StudyCards(context.Context, string) ([]deck.CardSummary, error) {
	return nil, nil
}
func (r *stubDeckRepo) SyncCard(context.Context, deck.CardSummary) error { return nil }
func (r *stubDeckRepo) BulkUpdateCards(context.Context, []string, store.BulkOp) (int, error) {
	return 0, nil
}

func newTestScreen(repo *stubDeckRepo) *DecksScreen {
	st := sess.NewStore(scoring.NewMockScorer(), scoring.NewMockHistory())
	return New(repo, st)
}

func TestDecksScreen_LoadBuildsMenu(t *testing.T) {
	repo := &stubDeckRepo{decks: []deck.Deck{
		{ID: "d1", Title: "Biology", Cards: []deck.CardSummary{{ID: "c1"}, {ID: "c2"}}},
		{ID: "d2", Title: "History", Cards: []deck.CardSummary{{ID: "c3"}}},
	}}
	s := newTestScreen(repo)

	msg := s.loadDecks()()
	updated, _ := s.Update(msg)
	s = updated.(*DecksScreen)

	// Two decks plus the quit entry.
	if len(s.menu.Items) != 3 {
		t.Fatalf("menu items = %d, want 3", len(s.menu.Items))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Biology") || !strings.Contains(view, "History") {
		t.Error("expected deck titles in view")
	}
	if !strings.Contains(view, "2 cards") {
		t.Error("expected card counts in view")
	}
}

func TestDecksScreen_EnterPushesStudy(t *testing.T) {
	repo := &stubDeckRepo{decks: []deck.Deck{{ID: "d1", Title: "Biology"}}}
	s := newTestScreen(repo)

	msg := s.loadDecks()()
	updated, _ := s.Update(msg)
	s = updated.(*DecksScreen)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command on enter")
	}
}

func TestDecksScreen_EmptyShowsImportHint(t *testing.T) {
	s := newTestScreen(&stubDeckRepo{})

	msg := s.loadDecks()()
	updated, _ := s.Update(msg)
	s = updated.(*DecksScreen)

	if !strings.Contains(s.View(80, 24), "recallo import") {
		t.Error("expected import hint when no decks exist")
	}
}

func TestDecksScreen_LoadErrorShown(t *testing.T) {
	s := newTestScreen(&stubDeckRepo{err: errors.New("disk on fire")})

	msg := s.loadDecks()()
	updated, _ := s.Update(msg)
	s = updated.(*DecksScreen)

	if !strings.Contains(s.View(80, 24), "disk on fire") {
		t.Error("expected the load error in view")
	}
}
