package store

import (
	"context"
	"testing"
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	"github.com/arvindh/recallo/internal/session"
)

func sampleSnapshot() session.Snapshot {
	active := deck.CardSummary{ID: "c1", Prompt: "p1", Answer: "a1"}
	return session.Snapshot{
		Version: session.SnapshotVersion,
		Session: session.State{
			DeckID: "d1",
			Active: &active,
			Queue:  []deck.CardSummary{{ID: "c2", Prompt: "p2", Answer: "a2"}},
			Phase:  session.PhasePrompt,
			Total:  2,
		},
		ActiveCardID: "c1",
		AttemptsByCard: map[string][]scoring.AttemptRecord{
			"c1": {{ID: "att1", CardID: "c1", Verdict: scoring.VerdictCorrect, Score: 1}},
		},
		SessionStartedAt: time.Now().UnixMilli(),
	}
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	snap := sampleSnapshot()
	if err := repo.SaveSession(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot")
	}
	if got.ActiveCardID != "c1" || got.Session.DeckID != "d1" || got.Session.Total != 2 {
		t.Errorf("snapshot = %+v", got)
	}
	if got.Session.Active == nil || got.Session.Active.ID != "c1" {
		t.Errorf("active = %+v", got.Session.Active)
	}
	if len(got.AttemptsByCard["c1"]) != 1 {
		t.Errorf("attempts = %+v", got.AttemptsByCard)
	}
	if got.SessionStartedAt != snap.SessionStartedAt {
		t.Errorf("startedAt = %d, want %d", got.SessionStartedAt, snap.SessionStartedAt)
	}
}

func TestSession_SaveReplacesPreviousBlob(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	first := sampleSnapshot()
	if err := repo.SaveSession(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := sampleSnapshot()
	second.ActiveCardID = "c2"
	if err := repo.SaveSession(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ActiveCardID != "c2" {
		t.Errorf("active = %q, want the replacement", got.ActiveCardID)
	}

	n, err := s.Client().SessionBlob.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("blob rows = %d, want 1", n)
	}
}

func TestSession_LoadNothingSaved(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Sessions().LoadSession(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatalf("snapshot = %+v, want nil", got)
	}
}

func TestSession_StaleBlobDiscardedOnLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	if err := repo.SaveSession(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Age the session past the 24h window.
	old := sampleSnapshot()
	old.SessionStartedAt = time.Now().Add(-25 * time.Hour).UnixMilli()
	if err := repo.SaveSession(ctx, old); err != nil {
		t.Fatalf("save stale: %v", err)
	}

	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatal("stale session must be discarded, not restored")
	}

	n, _ := s.Client().SessionBlob.Query().Count(ctx)
	if n != 0 {
		t.Errorf("blob rows = %d, want stale row deleted", n)
	}
}

func TestSession_AlmostStaleBlobRestored(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	snap := sampleSnapshot()
	snap.SessionStartedAt = time.Now().Add(-23 * time.Hour).UnixMilli()
	if err := repo.SaveSession(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("a 23h-old session is still inside the window")
	}
	if got.ActiveCardID != "c1" {
		t.Errorf("active = %q, want c1", got.ActiveCardID)
	}
}

func TestSession_ClearSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	if err := repo.SaveSession(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after clear")
	}
	// Clearing an empty table is fine too.
	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSession_V1BlobMigratedOnLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A blob as the v1 format wrote it: attempt cache under "attempts",
	// no session start time.
	v1 := map[string]any{
		"version": "v1",
		"session": map[string]any{
			"deckId": "d1",
			"phase":  "prompt",
			"total":  float64(1),
			"active": map[string]any{"id": "c1", "prompt": "p", "answer": "a"},
		},
		"activeCardId": "c1",
		"attempts": map[string]any{
			"c1": []any{map[string]any{"id": "att1", "cardId": "c1", "verdict": "correct", "score": float64(1)}},
		},
	}
	_, err := s.Client().SessionBlob.Create().
		SetKey(sessionKey).
		SetVersion("v1").
		SetData(v1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed v1 blob: %v", err)
	}

	got, err := s.Sessions().LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected migrated snapshot")
	}
	if got.Version != session.SnapshotVersion {
		t.Errorf("version = %q, want current", got.Version)
	}
	if len(got.AttemptsByCard["c1"]) != 1 {
		t.Errorf("migrated attempts = %+v", got.AttemptsByCard)
	}
	// The start time is stamped at migration, keeping the blob inside
	// the staleness window.
	age := time.Since(time.UnixMilli(got.SessionStartedAt))
	if age < 0 || age > time.Minute {
		t.Errorf("startedAt = %d, want stamped at migration", got.SessionStartedAt)
	}
}

func TestSession_UnknownVersionDiscarded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().SessionBlob.Create().
		SetKey(sessionKey).
		SetVersion("v9").
		SetData(map[string]any{"version": "v9"}).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := s.Sessions().LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatal("a blob from a newer build must be discarded")
	}
}
