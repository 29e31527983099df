package study

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
)

// stubDeckRepo implements store.DeckRepo with a fixed card list and
// records the write calls it receives.
type stubDeckRepo struct {
	cards []deck.CardSummary
	err   error

	synced []deck.CardSummary
	bulk   []bulkCall
}

type bulkCall struct {
	IDs []string
	Op  store.BulkOp
}

var _ store.DeckRepo = (*stubDeckRepo)(nil)

func (r *stubDeckRepo) CreateDeck(context.Context, *deck.Deck) error  { return nil }
func (r *stubDeckRepo) Decks(context.Context) ([]deck.Deck, error)   { return nil, nil }
func (r *stubDeckRepo) DeckByID(context.Context, string) (*deck.Deck, error) {
	return nil, nil
}
func (r *stubDeckRepo) DeleteDeck(context.Context, string) error { return nil }
func (r *stubDeckRepo) StudyCards(context.Context, string) ([]deck.CardSummary, error) {
	return r.cards, r.err
}
func (r *stubDeckRepo) SyncCard(_ context.Context, card deck.CardSummary) error {
	r.synced = append(r.synced, card)
	return nil
}
func (r *stubDeckRepo) BulkUpdateCards(_ context.Context, ids []string, op store.BulkOp) (int, error) {
	r.bulk = append(r.bulk, bulkCall{IDs: ids, Op: op})
	return len(ids), nil
}

func testCards() []deck.CardSummary {
	return []deck.CardSummary{
		{ID: "c1", Prompt: "What is ATP?", Answer: "Cellular energy currency"},
		{ID: "c2", Prompt: "What is DNA?", Answer: "Genetic blueprint"},
	}
}

// newTestScreen builds a ready study screen over a bootstrapped session.
func newTestScreen(t *testing.T) *StudyScreen {
	t.Helper()
	repo := &stubDeckRepo{cards: testCards()}
	st := sess.NewStore(scoring.NewMockScorer(), scoring.NewMockHistory())

	s := New(repo, st, "d1", "Biology")
	msg := s.initSession()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok || ready.Err != nil {
		t.Fatalf("init session: %v", msg)
	}
	updated, _ := s.Update(ready)
	return updated.(*StudyScreen)
}

func TestStudyScreen_Title(t *testing.T) {
	s := newTestScreen(t)
	if s.Title() != "Biology" {
		t.Errorf("Title = %q, want %q", s.Title(), "Biology")
	}
}

func TestStudyScreen_StartsInPrompt(t *testing.T) {
	s := newTestScreen(t)
	if s.view.Session.Phase != sess.PhasePrompt {
		t.Fatalf("phase = %q, want prompt", s.view.Session.Phase)
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty prompt view")
	}
}

func TestStudyScreen_ResumesExistingSession(t *testing.T) {
	repo := &stubDeckRepo{cards: testCards()}
	st := sess.NewStore(scoring.NewMockScorer(), scoring.NewMockHistory())
	st.StartSession(context.Background(), "d1", testCards())
	st.Dispatch(context.Background(), sess.Next{})

	s := New(repo, st, "d1", "Biology")
	msg := s.initSession()()
	ready := msg.(sessionReadyMsg)
	if !ready.Resumed {
		t.Fatal("expected the in-progress session to be resumed")
	}

	updated, _ := s.Update(ready)
	s = updated.(*StudyScreen)
	if got := s.view.Session.ActiveID(); got != "c2" {
		t.Errorf("active after resume = %q, want c2", got)
	}
}

func TestStudyScreen_SkipAdvancesWithoutScoring(t *testing.T) {
	s := newTestScreen(t)
	updated, _ := s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	s = updated.(*StudyScreen)

	if got := s.view.Session.ActiveID(); got != "c2" {
		t.Errorf("active after skip = %q, want c2", got)
	}
	if s.view.Session.Phase != sess.PhasePrompt {
		t.Errorf("phase after skip = %q, want prompt", s.view.Session.Phase)
	}
}

func TestStudyScreen_ScoredAnswerShowsReview(t *testing.T) {
	s := newTestScreen(t)

	rec, err := s.store.SubmitAnswer(context.Background(), "energy molecule")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	updated, _ := s.Update(scoredMsg{Rec: rec})
	s = updated.(*StudyScreen)

	if s.view.Session.Phase != sess.PhaseReview {
		t.Fatalf("phase = %q, want review", s.view.Session.Phase)
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty review view")
	}
}

func TestStudyScreen_ReviewKeysAdvance(t *testing.T) {
	s := newTestScreen(t)
	if _, err := s.store.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.refresh()

	updated, _ := s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	s = updated.(*StudyScreen)

	if len(s.view.Session.Completed) != 1 {
		t.Fatalf("completed = %d, want 1", len(s.view.Session.Completed))
	}
	if s.view.Session.Completed[0].Action != sess.ActionMarkLearned {
		t.Errorf("action = %q, want markLearned", s.view.Session.Completed[0].Action)
	}
}

func TestStudyScreen_MarkLearnedUpdatesDeck(t *testing.T) {
	s := newTestScreen(t)
	if _, err := s.store.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.refresh()

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	s = updated.(*StudyScreen)
	if cmd == nil {
		t.Fatal("expected a deck write command after l")
	}
	cmd()

	// The learned card's schedule is pushed out in the deck store, so it
	// stops coming back in future sessions.
	repo := s.repo.(*stubDeckRepo)
	if len(repo.bulk) != 1 {
		t.Fatalf("bulk calls = %d, want 1", len(repo.bulk))
	}
	call := repo.bulk[0]
	if call.Op != store.BulkMarkLearned || len(call.IDs) != 1 || call.IDs[0] != "c1" {
		t.Errorf("bulk call = %+v, want mark-learned for c1", call)
	}
}

func TestStudyScreen_ScoredScheduleWrittenBack(t *testing.T) {
	s := newTestScreen(t)

	rec := &scoring.AttemptRecord{
		CardID:  "c1",
		Verdict: scoring.VerdictCorrect,
		Schedule: &deck.Schedule{
			DueAt:    time.Now().Add(72 * time.Hour),
			Interval: 3,
			Ease:     2.6,
			Streak:   2,
		},
	}
	updated, cmd := s.Update(scoredMsg{Rec: rec})
	s = updated.(*StudyScreen)
	if cmd == nil {
		t.Fatal("expected a sync command for the scored schedule")
	}
	cmd()

	repo := s.repo.(*stubDeckRepo)
	if len(repo.synced) != 1 || repo.synced[0].ID != "c1" {
		t.Fatalf("synced = %+v, want one write for c1", repo.synced)
	}
	if got := repo.synced[0].Schedule; got == nil || got.Interval != 3 {
		t.Errorf("synced schedule = %+v, want interval 3", got)
	}

	// The running session's copy carries the new schedule too.
	s.refresh()
	active := s.view.Session.Active
	if active == nil || active.Schedule == nil || active.Schedule.Streak != 2 {
		t.Errorf("active card = %+v, want schedule with streak 2", active)
	}
}

func TestStudyScreen_EscAsksForConfirmation(t *testing.T) {
	s := newTestScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*StudyScreen)
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	// N cancels.
	updated, _ = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	s = updated.(*StudyScreen)
	if s.confirmQuit {
		t.Fatal("expected confirmation dismissed after n")
	}

	// Y pops.
	s.confirmQuit = true
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Error("expected a pop command after y")
	}
}

func TestStudyScreen_PickerParksActiveCard(t *testing.T) {
	s := newTestScreen(t)
	if _, err := s.store.SubmitAnswer(context.Background(), "answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.refresh()

	updated, _ := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	s = updated.(*StudyScreen)
	if !s.pickerOpen {
		t.Fatal("expected picker open after p")
	}

	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*StudyScreen)
	if s.pickerOpen {
		t.Fatal("expected picker closed after enter")
	}
	if got := s.view.Session.ActiveID(); got != "c2" {
		t.Errorf("active after park = %q, want c2", got)
	}
	// The parked card went back to the queue, not the completed log.
	if len(s.view.Session.Completed) != 0 {
		t.Errorf("completed = %d, want 0", len(s.view.Session.Completed))
	}
}

func TestStudyScreen_CompleteOffersSummary(t *testing.T) {
	s := newTestScreen(t)
	ctx := context.Background()
	s.store.Dispatch(ctx, sess.Next{})
	s.store.Dispatch(ctx, sess.Next{})
	s.refresh()

	if s.view.Session.Phase != sess.PhaseComplete {
		t.Fatalf("phase = %q, want complete", s.view.Session.Phase)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a replace command for the summary screen")
	}
}

func TestStudyScreen_EmptyDeck(t *testing.T) {
	repo := &stubDeckRepo{}
	st := sess.NewStore(scoring.NewMockScorer(), scoring.NewMockHistory())

	s := New(repo, st, "d1", "Biology")
	msg := s.initSession()()
	updated, _ := s.Update(msg)
	s = updated.(*StudyScreen)

	if s.view.Session.Phase != sess.PhaseEmpty {
		t.Fatalf("phase = %q, want empty", s.view.Session.Phase)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a pop command from the empty state")
	}
}
