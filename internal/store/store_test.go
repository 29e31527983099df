package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDeck() *deck.Deck {
	return &deck.Deck{
		Title:       "Geography",
		Description: "Capitals and rivers",
		Cards: []deck.CardSummary{
			{Prompt: "Capital of France?", Answer: "Paris", Keypoints: []string{"Paris"}},
			{Prompt: "Longest river?", Answer: "The Nile"},
			{Prompt: "Capital of Italy?", Answer: "Rome", Archived: true},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDeckCreateAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.Decks()
	ctx := context.Background()

	d := testDeck()
	if err := repo.CreateDeck(ctx, d); err != nil {
		t.Fatalf("create deck: %v", err)
	}
	if d.ID == "" {
		t.Fatal("expected deck to be assigned an ID")
	}
	for _, c := range d.Cards {
		if c.ID == "" {
			t.Fatal("expected every card to be assigned an ID")
		}
	}

	got, err := repo.DeckByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	if got.Title != "Geography" || len(got.Cards) != 3 {
		t.Fatalf("loaded deck = %q with %d cards", got.Title, len(got.Cards))
	}
	if got.CardCount() != 2 {
		t.Errorf("card count = %d, want 2 non-archived", got.CardCount())
	}
	if got.Cards[0].Keypoints[0] != "Paris" {
		t.Errorf("keypoints lost in round trip: %v", got.Cards[0].Keypoints)
	}
}

func TestDeckByID_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Decks().DeckByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should mention not found", err)
	}
}

func TestDeckDelete_RemovesCardsAndAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	d := testDeck()
	if err := s.Decks().CreateDeck(ctx, d); err != nil {
		t.Fatalf("create deck: %v", err)
	}

	cardID := d.Cards[0].ID
	err := s.Attempts().SaveAttempt(ctx, scoring.AttemptRecord{
		CardID:     cardID,
		UserAnswer: "Paris",
		Verdict:    scoring.VerdictCorrect,
		Score:      1,
	})
	if err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	if err := s.Decks().DeleteDeck(ctx, d.ID); err != nil {
		t.Fatalf("delete deck: %v", err)
	}

	if _, err := s.Decks().DeckByID(ctx, d.ID); err == nil {
		t.Error("deck still loadable after delete")
	}
	if _, err := s.Attempts().Attempts(ctx, cardID, 10); err == nil {
		t.Error("attempts still loadable after deck delete")
	}
}

func TestStudyCards_ExcludesArchived(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	d := testDeck()
	if err := s.Decks().CreateDeck(ctx, d); err != nil {
		t.Fatalf("create deck: %v", err)
	}

	cards, err := s.Decks().StudyCards(ctx, d.ID)
	if err != nil {
		t.Fatalf("study cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	for _, c := range cards {
		if c.Archived {
			t.Errorf("archived card %s leaked into study set", c.ID)
		}
	}
}

func TestSyncCard_OverwritesContentAndSchedule(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	d := testDeck()
	if err := s.Decks().CreateDeck(ctx, d); err != nil {
		t.Fatalf("create deck: %v", err)
	}

	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	quality := 4
	updated := d.Cards[0]
	updated.Prompt = "Capital city of France?"
	updated.Schedule = &deck.Schedule{
		DueAt:       due,
		Interval:    2,
		Ease:        2.6,
		Streak:      3,
		LastQuality: &quality,
	}
	if err := s.Decks().SyncCard(ctx, updated); err != nil {
		t.Fatalf("sync card: %v", err)
	}

	got, err := s.Decks().DeckByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	var card *deck.CardSummary
	for i := range got.Cards {
		if got.Cards[i].ID == updated.ID {
			card = &got.Cards[i]
		}
	}
	if card == nil {
		t.Fatal("card vanished")
	}
	if card.Prompt != "Capital city of France?" {
		t.Errorf("prompt = %q", card.Prompt)
	}
	if card.Schedule == nil || card.Schedule.Streak != 3 || card.Schedule.Ease != 2.6 {
		t.Errorf("schedule = %+v", card.Schedule)
	}
	if card.Schedule.LastQuality == nil || *card.Schedule.LastQuality != 4 {
		t.Errorf("lastQuality = %v", card.Schedule.LastQuality)
	}
}

func TestSyncCard_UnknownCard(t *testing.T) {
	s := openTestStore(t)
	err := s.Decks().SyncCard(context.Background(), deck.CardSummary{
		ID: "missing", Prompt: "p", Answer: "a",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestBulkUpdateCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	d := testDeck()
	if err := s.Decks().CreateDeck(ctx, d); err != nil {
		t.Fatalf("create deck: %v", err)
	}
	ids := []string{d.Cards[0].ID, d.Cards[1].ID}

	n, err := s.Decks().BulkUpdateCards(ctx, ids, BulkMarkLearned)
	if err != nil {
		t.Fatalf("mark learned: %v", err)
	}
	if n != 2 {
		t.Fatalf("updated %d rows, want 2", n)
	}

	got, _ := s.Decks().DeckByID(ctx, d.ID)
	for _, c := range got.Cards[:2] {
		if c.Schedule == nil || c.Schedule.Interval != 180 || c.Schedule.Streak != 10 {
			t.Errorf("card %s schedule after mark-learned = %+v", c.ID, c.Schedule)
		}
	}

	if _, err := s.Decks().BulkUpdateCards(ctx, ids, BulkResetSchedule); err != nil {
		t.Fatalf("reset schedule: %v", err)
	}
	got, _ = s.Decks().DeckByID(ctx, d.ID)
	for _, c := range got.Cards[:2] {
		if c.Schedule == nil || c.Schedule.Interval != 1 || c.Schedule.Streak != 0 {
			t.Errorf("card %s schedule after reset = %+v", c.ID, c.Schedule)
		}
	}

	if _, err := s.Decks().BulkUpdateCards(ctx, ids, BulkArchive); err != nil {
		t.Fatalf("archive: %v", err)
	}
	cards, _ := s.Decks().StudyCards(ctx, d.ID)
	if len(cards) != 0 {
		t.Errorf("study cards after archive = %d, want 0", len(cards))
	}

	if _, err := s.Decks().BulkUpdateCards(ctx, ids, BulkUnarchive); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	cards, _ = s.Decks().StudyCards(ctx, d.ID)
	if len(cards) != 2 {
		t.Errorf("study cards after unarchive = %d, want 2", len(cards))
	}
}

func TestBulkUpdateCards_UnknownOp(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Decks().BulkUpdateCards(context.Background(), []string{"x"}, BulkOp("zap"))
	if err == nil {
		t.Fatal("expected error for unknown op")
	}
}

func TestBulkUpdateCards_EmptyIDs(t *testing.T) {
	s := openTestStore(t)
	n, err := s.Decks().BulkUpdateCards(context.Background(), nil, BulkArchive)
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v, want 0/nil", n, err)
	}
}
