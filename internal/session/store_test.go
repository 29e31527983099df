package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

func newTestStore(scorer scoring.Scorer, history scoring.History) *Store {
	if history == nil {
		history = scoring.NewMockHistory()
	}
	return NewStore(scorer, history)
}

func startThreeCards(t *testing.T, s *Store) {
	t.Helper()
	s.StartSession(context.Background(), "d1",
		[]deck.CardSummary{card("A"), card("B"), card("C")})
	if got := s.View().ActiveCardID; got != "A" {
		t.Fatalf("active = %q, want A", got)
	}
}

func TestSubmitAnswer_AdvancesToReviewWithLastAttempt(t *testing.T) {
	scorer := scoring.NewMockScorer(scoring.MockResult{Record: &scoring.AttemptRecord{
		ID:      "att-1",
		Verdict: scoring.VerdictAlmost,
		Score:   0.7,
	}})
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	rec, err := s.SubmitAnswer(context.Background(), "my answer")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if rec.Verdict != scoring.VerdictAlmost {
		t.Errorf("verdict = %q, want almost", rec.Verdict)
	}

	v := s.View()
	if v.Session.Phase != PhaseReview {
		t.Errorf("phase = %q, want review", v.Session.Phase)
	}
	if v.Status != StatusIdle {
		t.Errorf("status = %q, want idle", v.Status)
	}
	if v.LastAttempt == nil || v.LastAttempt.ID != "att-1" {
		t.Errorf("lastAttempt = %+v, want att-1", v.LastAttempt)
	}
	if len(scorer.Calls) != 1 || scorer.Calls[0].CardID != "A" {
		t.Errorf("calls = %+v, want one request tagged A", scorer.Calls)
	}
}

func TestSubmitAnswer_RejectsBlankWithoutScoring(t *testing.T) {
	scorer := scoring.NewMockScorer()
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	for _, answer := range []string{"", "   ", "\n\t"} {
		if _, err := s.SubmitAnswer(context.Background(), answer); !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("SubmitAnswer(%q) = %v, want ErrEmptyAnswer", answer, err)
		}
	}
	if len(scorer.Calls) != 0 {
		t.Errorf("scorer called %d times for blank answers", len(scorer.Calls))
	}
}

func TestSubmitAnswer_NoActiveCard(t *testing.T) {
	s := newTestStore(scoring.NewMockScorer(), nil)
	if _, err := s.SubmitAnswer(context.Background(), "hi"); !errors.Is(err, ErrNoActiveCard) {
		t.Errorf("err = %v, want ErrNoActiveCard", err)
	}
}

func TestSubmitAnswer_TransportErrorShowsFriendlyMessage(t *testing.T) {
	scorer := scoring.NewMockScorer(scoring.MockResult{
		Err: errors.New("dial tcp 127.0.0.1:8756: connection refused"),
	})
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	_, err := s.SubmitAnswer(context.Background(), "an answer")
	if err == nil {
		t.Fatal("expected error")
	}

	v := s.View()
	if v.Status != StatusError {
		t.Errorf("status = %q, want error", v.Status)
	}
	if v.Err != scoring.UnreachableMessage {
		t.Errorf("err message = %q, want friendly unreachable text", v.Err)
	}
	// A failed score leaves the session exactly where it was.
	if v.Session.Phase != PhasePrompt || v.ActiveCardID != "A" {
		t.Errorf("phase=%q active=%q, want prompt/A", v.Session.Phase, v.ActiveCardID)
	}
	if v.LastAttempt != nil {
		t.Error("lastAttempt must stay nil after a failed score")
	}
}

func TestSubmitAnswer_NonTransportErrorPassesThrough(t *testing.T) {
	scorer := scoring.NewMockScorer(scoring.MockResult{
		Err: errors.New("scoring failed: invalid model output"),
	})
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	_, err := s.SubmitAnswer(context.Background(), "an answer")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := s.View().Err; got != "scoring failed: invalid model output" {
		t.Errorf("err message = %q, want raw error text", got)
	}
}

func TestDispatch_BareNextCarriesLastVerdict(t *testing.T) {
	scorer := scoring.NewMockScorer(scoring.MockResult{Record: &scoring.AttemptRecord{
		ID:      "att-1",
		Verdict: scoring.VerdictCorrect,
	}})
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	if _, err := s.SubmitAnswer(context.Background(), "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	s.Dispatch(context.Background(), Next{})

	v := s.View()
	if len(v.Session.Completed) != 1 {
		t.Fatalf("completed = %d, want 1", len(v.Session.Completed))
	}
	if got := v.Session.Completed[0].Verdict; got != scoring.VerdictCorrect {
		t.Errorf("completed verdict = %q, want correct", got)
	}
	if v.LastAttempt != nil {
		t.Error("lastAttempt must clear when the active card changes")
	}
	if v.ActiveCardID != "B" {
		t.Errorf("active = %q, want B", v.ActiveCardID)
	}
}

func TestDispatch_VerdictNotBorrowedAcrossCards(t *testing.T) {
	scorer := scoring.NewMockScorer(scoring.MockResult{Record: &scoring.AttemptRecord{
		Verdict: scoring.VerdictCorrect,
	}})
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	if _, err := s.SubmitAnswer(context.Background(), "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	s.Dispatch(context.Background(), Next{}) // A done, B active
	s.Dispatch(context.Background(), Next{}) // B done without answering

	v := s.View()
	if got := v.Session.Completed[1].Verdict; got != "" {
		t.Errorf("unanswered card's verdict = %q, want empty", got)
	}
}

func TestSubmitAnswer_CachesAttemptNewestFirstCapped(t *testing.T) {
	scorer := scoring.NewMockScorer()
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	seed := make([]scoring.AttemptRecord, MaxAttemptsPerCard)
	for i := range seed {
		seed[i] = scoring.AttemptRecord{ID: "old", CardID: "A"}
	}
	s.mu.Lock()
	s.attempts["A"] = seed
	s.mu.Unlock()

	if _, err := s.SubmitAnswer(context.Background(), "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	recs := s.Attempts("A")
	if len(recs) != MaxAttemptsPerCard {
		t.Errorf("cache length = %d, want cap %d", len(recs), MaxAttemptsPerCard)
	}
	if recs[0].ID != "mock-attempt" {
		t.Errorf("cache[0].ID = %q, want the fresh attempt first", recs[0].ID)
	}
}

func TestFetchAttempts_NotFoundCachesEmptySilently(t *testing.T) {
	history := scoring.NewMockHistory()
	history.Errs["A"] = errors.New("card not found")
	s := NewStore(scoring.NewMockScorer(), history)

	recs := s.FetchAttempts(context.Background(), "A", FetchOptions{})
	if len(recs) != 0 {
		t.Errorf("recs = %v, want empty", recs)
	}
	v := s.View()
	if v.Err != "" || v.Status == StatusError {
		t.Errorf("not-found must stay silent, got err=%q status=%q", v.Err, v.Status)
	}

	// The empty result is cached: a second fetch stays local.
	delete(history.Errs, "A")
	history.ByCard["A"] = []scoring.AttemptRecord{{ID: "late"}}
	if got := s.FetchAttempts(context.Background(), "A", FetchOptions{}); len(got) != 0 {
		t.Errorf("second fetch = %v, want cached empty list", got)
	}
	if n := history.LookupCount("A"); n != 1 {
		t.Errorf("lookups = %d, want 1", n)
	}
}

func TestFetchAttempts_OtherErrorSurfacesWithoutCaching(t *testing.T) {
	history := scoring.NewMockHistory()
	history.Errs["A"] = errors.New("internal server error")
	s := NewStore(scoring.NewMockScorer(), history)

	recs := s.FetchAttempts(context.Background(), "A", FetchOptions{})
	if len(recs) != 0 {
		t.Errorf("recs = %v, want empty", recs)
	}
	if v := s.View(); v.Status != StatusError || v.Err == "" {
		t.Errorf("status=%q err=%q, want visible error", v.Status, v.Err)
	}

	// Failure is not cached: once the backend recovers the retry hits it.
	delete(history.Errs, "A")
	history.ByCard["A"] = []scoring.AttemptRecord{{ID: "a1"}}
	recs = s.FetchAttempts(context.Background(), "A", FetchOptions{})
	if len(recs) != 1 || recs[0].ID != "a1" {
		t.Errorf("retry = %v, want the recovered record", recs)
	}
}

func TestFetchAttempts_CacheHitSkipsHistory(t *testing.T) {
	history := scoring.NewMockHistory()
	history.ByCard["A"] = []scoring.AttemptRecord{{ID: "a1"}}
	s := NewStore(scoring.NewMockScorer(), history)

	first := s.FetchAttempts(context.Background(), "A", FetchOptions{})
	second := s.FetchAttempts(context.Background(), "A", FetchOptions{})
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("first=%v second=%v", first, second)
	}
	if n := history.LookupCount("A"); n != 1 {
		t.Errorf("lookups = %d, want 1 (second served from cache)", n)
	}

	s.FetchAttempts(context.Background(), "A", FetchOptions{Force: true})
	if n := history.LookupCount("A"); n != 2 {
		t.Errorf("lookups = %d, want 2 after Force", n)
	}
}

func TestFetchAttempts_CapsOversizedResponse(t *testing.T) {
	history := scoring.NewMockHistory()
	over := make([]scoring.AttemptRecord, MaxAttemptsPerCard+10)
	for i := range over {
		over[i] = scoring.AttemptRecord{ID: "r", CardID: "A"}
	}
	history.ByCard["A"] = over
	s := NewStore(scoring.NewMockScorer(), history)

	recs := s.FetchAttempts(context.Background(), "A", FetchOptions{Limit: len(over)})
	if len(recs) != MaxAttemptsPerCard {
		t.Errorf("len = %d, want cap %d", len(recs), MaxAttemptsPerCard)
	}
}

func TestResetSession_KeepsAttemptCache(t *testing.T) {
	history := scoring.NewMockHistory()
	history.ByCard["A"] = []scoring.AttemptRecord{{ID: "a1"}}
	s := NewStore(scoring.NewMockScorer(), history)
	startThreeCards(t, s)
	s.FetchAttempts(context.Background(), "A", FetchOptions{Force: true})

	s.ResetSession(context.Background())

	v := s.View()
	if v.Session.Phase != PhaseEmpty || v.ActiveCardID != "" || v.StartedAt != 0 {
		t.Errorf("reset view = %+v, want empty", v)
	}
	if got := s.Attempts("A"); len(got) != 1 {
		t.Errorf("attempt cache = %v, must survive reset", got)
	}
}

// blockingScorer blocks Score until released, for stale-response tests.
type blockingScorer struct {
	release chan struct{}
	record  scoring.AttemptRecord
}

func (b *blockingScorer) Score(ctx context.Context, req scoring.Request) (*scoring.AttemptRecord, error) {
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	rec := b.record
	rec.CardID = req.CardID
	return &rec, nil
}

func TestSubmitAnswer_StaleResponseCachedButNotApplied(t *testing.T) {
	scorer := &blockingScorer{
		release: make(chan struct{}),
		record:  scoring.AttemptRecord{ID: "slow", Verdict: scoring.VerdictCorrect},
	}
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := s.SubmitAnswer(context.Background(), "answer for A"); err != nil {
			t.Errorf("SubmitAnswer: %v", err)
		}
	}()

	// Navigate away while the score for A is in flight.
	waitForStatus(t, s, StatusScoring)
	s.Dispatch(context.Background(), SetActive{CardID: "C"})
	close(scorer.release)
	wg.Wait()

	v := s.View()
	if v.ActiveCardID != "C" {
		t.Fatalf("active = %q, want C", v.ActiveCardID)
	}
	if v.Session.Phase != PhasePrompt {
		t.Errorf("phase = %q, the stale response must not dispatch check", v.Session.Phase)
	}
	if v.LastAttempt != nil {
		t.Errorf("lastAttempt = %+v, must not adopt a stale response", v.LastAttempt)
	}
	if recs := s.Attempts("A"); len(recs) != 1 || recs[0].ID != "slow" {
		t.Errorf("attempts[A] = %v, stale response must still be cached", recs)
	}
}

func TestSubmitAnswer_ResponseAfterResetNotApplied(t *testing.T) {
	// Distinct startedAt per session even when both start inside the
	// same millisecond.
	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var tickMu sync.Mutex
	now = func() time.Time {
		tickMu.Lock()
		defer tickMu.Unlock()
		tick = tick.Add(time.Millisecond)
		return tick
	}
	defer func() { now = time.Now }()

	scorer := &blockingScorer{
		release: make(chan struct{}),
		record:  scoring.AttemptRecord{ID: "slow", Verdict: scoring.VerdictCorrect},
	}
	s := newTestStore(scorer, nil)
	startThreeCards(t, s)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.SubmitAnswer(context.Background(), "answer for A")
	}()

	waitForStatus(t, s, StatusScoring)
	s.ResetSession(context.Background())
	s.StartSession(context.Background(), "d1", []deck.CardSummary{card("A")})
	close(scorer.release)
	wg.Wait()

	// Same card id is active again, but it belongs to a new session.
	v := s.View()
	if v.Session.Phase != PhasePrompt || v.LastAttempt != nil {
		t.Errorf("phase=%q lastAttempt=%+v, response from the old session must not apply",
			v.Session.Phase, v.LastAttempt)
	}
}

func waitForStatus(t *testing.T, s *Store, want Status) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if s.View().Status == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for status %q", want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSelectCard_FetchesWhenUncached(t *testing.T) {
	history := scoring.NewMockHistory()
	history.ByCard["C"] = []scoring.AttemptRecord{{ID: "c1"}}
	s := NewStore(scoring.NewMockScorer(), history)
	startThreeCards(t, s)

	s.SelectCard(context.Background(), "C")

	waitFor(t, func() bool { return len(s.Attempts("C")) == 1 })
	if got := s.View().ActiveCardID; got != "C" {
		t.Errorf("active = %q, want C", got)
	}
}

func TestRestore_RoundTripsSnapshot(t *testing.T) {
	p := &memPersister{}
	s1 := NewStore(scoring.NewMockScorer(), scoring.NewMockHistory(), WithPersister(p))
	startThreeCards(t, s1)
	if _, err := s1.SubmitAnswer(context.Background(), "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	waitFor(t, func() bool {
		snap := p.load()
		return snap != nil && snap.LastAttempt != nil
	})

	s2 := NewStore(scoring.NewMockScorer(), scoring.NewMockHistory(), WithPersister(p))
	if err := s2.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	v := s2.View()
	if v.ActiveCardID != "A" || v.Session.Phase != PhaseReview {
		t.Errorf("restored active=%q phase=%q, want A/review", v.ActiveCardID, v.Session.Phase)
	}
	if v.LastAttempt == nil || v.LastAttempt.CardID != "A" {
		t.Errorf("restored lastAttempt = %+v", v.LastAttempt)
	}
	if len(s2.Attempts("A")) != 1 {
		t.Errorf("restored attempts[A] = %v, want 1", s2.Attempts("A"))
	}
}

func TestRestore_NilSnapshotIsFreshStart(t *testing.T) {
	s := NewStore(scoring.NewMockScorer(), scoring.NewMockHistory(), WithPersister(&memPersister{}))
	if err := s.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if v := s.View(); v.Session.Phase != PhaseEmpty {
		t.Errorf("phase = %q, want empty", v.Session.Phase)
	}
}

func TestPersist_SlowSaveCannotClobberNewerSnapshot(t *testing.T) {
	p := &gatedPersister{gate: make(chan struct{})}
	s := NewStore(scoring.NewMockScorer(), scoring.NewMockHistory(), WithPersister(p))
	startThreeCards(t, s)

	// The bootstrap-time save is stuck in flight while the learner
	// answers A and moves on to B.
	if _, err := s.SubmitAnswer(context.Background(), "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	s.Dispatch(context.Background(), Next{})

	close(p.gate)

	waitFor(t, func() bool {
		last := p.last()
		return last != nil && last.ActiveCardID == "B"
	})

	last := p.last()
	if len(last.Session.Completed) != 1 {
		t.Errorf("durable completed = %d, want 1", len(last.Session.Completed))
	}

	// Intermediate snapshots may coalesce, but the durable state must
	// never move backwards.
	p.mu.Lock()
	defer p.mu.Unlock()
	prev := 0
	for i, snap := range p.saves {
		if n := len(snap.Session.Completed); n < prev {
			t.Errorf("save %d regressed: completed %d after %d", i, n, prev)
		} else {
			prev = n
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("condition not met in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// gatedPersister records every save in arrival order. The first save
// blocks until gate closes.
type gatedPersister struct {
	mu    sync.Mutex
	saves []Snapshot
	gate  chan struct{}
}

func (g *gatedPersister) SaveSession(_ context.Context, snap Snapshot) error {
	g.mu.Lock()
	first := len(g.saves) == 0
	g.mu.Unlock()
	if first {
		<-g.gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves = append(g.saves, snap)
	return nil
}

func (g *gatedPersister) LoadSession(_ context.Context) (*Snapshot, error) { return nil, nil }
func (g *gatedPersister) ClearSession(_ context.Context) error            { return nil }

func (g *gatedPersister) last() *Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.saves) == 0 {
		return nil
	}
	snap := g.saves[len(g.saves)-1]
	return &snap
}

// memPersister keeps the latest snapshot in memory.
type memPersister struct {
	mu   sync.Mutex
	snap *Snapshot
}

func (m *memPersister) SaveSession(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &snap
	return nil
}

func (m *memPersister) LoadSession(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, nil
}

func (m *memPersister) ClearSession(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}

func (m *memPersister) load() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}
