package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	"github.com/arvindh/recallo/internal/session"
)

func seedCard(t *testing.T, s *Store) string {
	t.Helper()
	d := &deck.Deck{
		Title: "Seed",
		Cards: []deck.CardSummary{{Prompt: "p", Answer: "a"}},
	}
	if err := s.Decks().CreateDeck(context.Background(), d); err != nil {
		t.Fatalf("seed deck: %v", err)
	}
	return d.Cards[0].ID
}

func TestAttempts_SaveAndFetchNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cardID := seedCard(t, s)
	repo := s.Attempts()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := repo.SaveAttempt(ctx, scoring.AttemptRecord{
			CardID:     cardID,
			UserAnswer: fmt.Sprintf("answer %d", i),
			Verdict:    scoring.VerdictAlmost,
			Score:      0.5,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save attempt %d: %v", i, err)
		}
	}

	recs, err := repo.Attempts(ctx, cardID, 10)
	if err != nil {
		t.Fatalf("fetch attempts: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d attempts, want 3", len(recs))
	}
	if recs[0].UserAnswer != "answer 2" || recs[2].UserAnswer != "answer 0" {
		t.Errorf("not newest first: %q ... %q", recs[0].UserAnswer, recs[2].UserAnswer)
	}
}

func TestAttempts_LimitApplied(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cardID := seedCard(t, s)

	for i := 0; i < 5; i++ {
		if err := s.Attempts().SaveAttempt(ctx, scoring.AttemptRecord{
			CardID:     cardID,
			UserAnswer: "x",
			Verdict:    scoring.VerdictCorrect,
			Score:      1,
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	recs, err := s.Attempts().Attempts(ctx, cardID, 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d, want 2", len(recs))
	}
}

func TestAttempts_UnknownCardNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Attempts().Attempts(context.Background(), "ghost", 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should carry the not-found marker", err)
	}
	if !scoring.IsNotFound(err) {
		t.Error("error should classify as not-found")
	}
}

func TestAttempts_PrunedAtCap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cardID := seedCard(t, s)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < session.MaxAttemptsPerCard+5; i++ {
		if err := s.Attempts().SaveAttempt(ctx, scoring.AttemptRecord{
			CardID:     cardID,
			UserAnswer: fmt.Sprintf("a%d", i),
			Verdict:    scoring.VerdictCorrect,
			Score:      1,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	recs, err := s.Attempts().Attempts(ctx, cardID, 0)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(recs) != session.MaxAttemptsPerCard {
		t.Fatalf("got %d rows, want cap %d", len(recs), session.MaxAttemptsPerCard)
	}
	// The oldest rows were the ones pruned.
	if recs[0].UserAnswer != fmt.Sprintf("a%d", session.MaxAttemptsPerCard+4) {
		t.Errorf("newest = %q", recs[0].UserAnswer)
	}
}

func TestSaveAttempt_AppliesScheduleToCard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := &deck.Deck{Title: "Sched", Cards: []deck.CardSummary{{Prompt: "p", Answer: "a"}}}
	if err := s.Decks().CreateDeck(ctx, d); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cardID := d.Cards[0].ID

	due := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	quality := 5
	err := s.Attempts().SaveAttempt(ctx, scoring.AttemptRecord{
		CardID:     cardID,
		UserAnswer: "a",
		Verdict:    scoring.VerdictCorrect,
		Score:      1,
		Schedule: &deck.Schedule{
			DueAt:       due,
			Interval:    3,
			Ease:        2.7,
			Streak:      4,
			LastQuality: &quality,
		},
	})
	if err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	got, err := s.Decks().DeckByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	sched := got.Cards[0].Schedule
	if sched == nil || sched.Interval != 3 || sched.Streak != 4 {
		t.Fatalf("card schedule = %+v", sched)
	}
	if sched.LastQuality == nil || *sched.LastQuality != 5 {
		t.Errorf("lastQuality = %v", sched.LastQuality)
	}
}
