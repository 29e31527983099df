package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

// Status is the store-level activity indicator.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusScoring Status = "scoring"
	StatusError   Status = "error"
)

const (
	// MaxAttemptsPerCard caps the per-card attempt cache.
	MaxAttemptsPerCard = 50

	// DefaultHistoryLimit is requested from the history collaborator
	// when the caller does not specify one.
	DefaultHistoryLimit = 50
)

// ErrEmptyAnswer is returned by SubmitAnswer before any network call.
var ErrEmptyAnswer = errors.New("answer cannot be empty")

// ErrNoActiveCard is returned by SubmitAnswer when nothing is presented.
var ErrNoActiveCard = errors.New("no active card to answer")

// Snapshot is the serialized form of the store, persisted under a single
// namespaced key. SessionStartedAt is epoch milliseconds.
type Snapshot struct {
	Version          string                             `json:"version"`
	Session          State                              `json:"session"`
	ActiveCardID     string                             `json:"activeCardId,omitempty"`
	LastAttempt      *scoring.AttemptRecord             `json:"lastAttempt,omitempty"`
	AttemptsByCard   map[string][]scoring.AttemptRecord `json:"attemptsByCard"`
	SessionStartedAt int64                              `json:"sessionStartedAt"`
}

// SnapshotVersion tags snapshots written by this build. v1 blobs stored
// the attempt cache under "attempts" and had no session start time; the
// persistence layer migrates them on load.
const SnapshotVersion = "v2"

// Persister stores and restores the serialized session store.
// Implementations live in internal/store.
type Persister interface {
	SaveSession(ctx context.Context, snap Snapshot) error
	LoadSession(ctx context.Context) (*Snapshot, error)
	ClearSession(ctx context.Context) error
}

// Store orchestrates a study session: it owns the queue state, drives
// Transition, calls the scoring and history collaborators, and persists
// itself across restarts.
//
// All state lives behind one mutex; every mutation is an atomic
// apply-and-publish step. Asynchronous work (scoring, history prefetch)
// holds no lock while on the network and merges best-effort on return.
type Store struct {
	scorer    scoring.Scorer
	history   scoring.History
	persister Persister

	mu          sync.Mutex
	state       State
	activeCard  string
	status      Status
	errMsg      string
	lastAttempt *scoring.AttemptRecord
	attempts    map[string][]scoring.AttemptRecord
	startedAt   int64 // epoch millis, 0 when no session

	updates chan struct{}

	// Save serialization. savePending holds the newest unsaved snapshot;
	// saveBusy means a drainSaves goroutine is running. Both are guarded
	// by mu.
	savePending *pendingSave
	saveBusy    bool
}

// pendingSave pairs a snapshot with the context of the mutation that
// produced it.
type pendingSave struct {
	ctx  context.Context
	snap Snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithPersister attaches durable storage for the session.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// NewStore creates a session store. history may equal scorer when one
// collaborator serves both contracts (the sidecar does).
func NewStore(scorer scoring.Scorer, history scoring.History, opts ...Option) *Store {
	s := &Store{
		scorer:   scorer,
		history:  history,
		state:    EmptyState(),
		status:   StatusIdle,
		attempts: make(map[string][]scoring.AttemptRecord),
		updates:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Updates exposes a coalescing change signal. Receive once per published
// mutation batch; the UI uses it to repaint after background merges.
func (s *Store) Updates() <-chan struct{} {
	return s.updates
}

// View is a read-only copy of the store's UI-facing fields.
type View struct {
	Session      State
	ActiveCardID string
	Status       Status
	Err          string
	LastAttempt  *scoring.AttemptRecord
	StartedAt    int64
}

// Snapshot returns a copy of the current view. Safe for concurrent use.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Store) viewLocked() View {
	v := View{
		Session:      s.state.clone(),
		ActiveCardID: s.activeCard,
		Status:       s.status,
		Err:          s.errMsg,
		StartedAt:    s.startedAt,
	}
	if s.lastAttempt != nil {
		att := *s.lastAttempt
		v.LastAttempt = &att
	}
	return v
}

// Attempts returns the cached attempt list for a card, newest first.
func (s *Store) Attempts(cardID string) []scoring.AttemptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.attempts[cardID]
	out := make([]scoring.AttemptRecord, len(recs))
	copy(out, recs)
	return out
}

// StartSession bootstraps a new session from a card list and prefetches
// history for the first card. Prefetch failures are swallowed here.
func (s *Store) StartSession(ctx context.Context, deckID string, cards []deck.CardSummary) {
	s.mu.Lock()
	s.state = Transition(s.state, Bootstrap{DeckID: deckID, Cards: cards})
	s.activeCard = s.state.ActiveID()
	s.lastAttempt = nil
	s.errMsg = ""
	s.status = StatusIdle
	s.startedAt = now().UnixMilli()
	active := s.activeCard
	s.publishLocked(ctx)
	s.mu.Unlock()

	if active != "" {
		go s.prefetch(ctx, active)
	}
}

// Dispatch applies a structural event and re-derives the UI-facing
// fields. A change of active card clears LastAttempt and triggers a
// background history prefetch, except for Check and SyncCard events.
func (s *Store) Dispatch(ctx context.Context, ev Event) {
	s.mu.Lock()
	prevActive := s.activeCard
	ev = s.fillVerdictLocked(ev)
	s.state = Transition(s.state, ev)
	s.activeCard = s.state.ActiveID()
	if s.activeCard != prevActive {
		s.lastAttempt = nil
	}
	changed := s.activeCard != "" && s.activeCard != prevActive
	active := s.activeCard
	s.publishLocked(ctx)
	s.mu.Unlock()

	switch ev.(type) {
	case Check, SyncCard:
		return
	}
	if changed {
		go s.prefetch(ctx, active)
	}
}

// SelectCard makes a specific card active. If the target has no cached
// attempts yet, its history is refetched even when the card was already
// active.
func (s *Store) SelectCard(ctx context.Context, cardID string) {
	s.Dispatch(ctx, SetActive{CardID: cardID})

	s.mu.Lock()
	_, cached := s.attempts[cardID]
	isActive := s.activeCard == cardID
	s.mu.Unlock()

	if isActive && !cached {
		go func() {
			s.FetchAttempts(ctx, cardID, FetchOptions{Force: true})
		}()
	}
}

// SubmitAnswer scores the active card's answer. On success the attempt is
// cached, the session advances to review, and the attempt is returned.
// Empty answers are rejected before any network call. A response that
// arrives after the active card changed (or the session was reset) is
// still cached under its own card id but leaves the session untouched.
func (s *Store) SubmitAnswer(ctx context.Context, answer string) (*scoring.AttemptRecord, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrEmptyAnswer
	}

	s.mu.Lock()
	if s.state.Active == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveCard
	}
	card := *s.state.Active
	startedAt := s.startedAt
	s.status = StatusScoring
	s.errMsg = ""
	s.publishLocked(ctx)
	s.mu.Unlock()

	rec, err := s.scorer.Score(ctx, scoring.Request{
		CardID:             card.ID,
		Prompt:             card.Prompt,
		ExpectedAnswer:     card.Answer,
		Keypoints:          card.Keypoints,
		UserAnswer:         answer,
		AlternativeAnswers: card.AlternativeAnswers,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = StatusError
		s.errMsg = scoring.UserMessage(err)
		s.publishLocked(ctx)
		return nil, err
	}

	s.cacheAttemptLocked(*rec)

	// The learner may have navigated away while we were scoring. Tagging
	// the request with its card id lets us drop the stale part of the
	// merge instead of attaching the attempt to the wrong card.
	if s.activeCard == card.ID && s.startedAt == startedAt {
		s.state = Transition(s.state, Check{})
		att := *rec
		s.lastAttempt = &att
	}
	s.status = StatusIdle
	s.publishLocked(ctx)
	return rec, nil
}

// FetchOptions controls FetchAttempts.
type FetchOptions struct {
	Limit int
	Force bool
}

// FetchAttempts returns attempt history for a card, from cache when warm.
// A not-found failure means the card was deleted concurrently: an empty
// list is cached and no error surfaces. Other failures set the visible
// error and return an empty list without caching, so a retry is not
// short-circuited.
func (s *Store) FetchAttempts(ctx context.Context, cardID string, opts FetchOptions) []scoring.AttemptRecord {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.Lock()
	if cached, ok := s.attempts[cardID]; ok && !opts.Force {
		out := make([]scoring.AttemptRecord, len(cached))
		copy(out, cached)
		s.mu.Unlock()
		return out
	}
	s.mu.Unlock()

	recs, err := s.history.Attempts(ctx, cardID, limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if scoring.IsNotFound(err) {
			s.attempts[cardID] = []scoring.AttemptRecord{}
			s.publishLocked(ctx)
			return []scoring.AttemptRecord{}
		}
		s.errMsg = scoring.UserMessage(err)
		s.status = StatusError
		s.publishLocked(ctx)
		return []scoring.AttemptRecord{}
	}

	if len(recs) > MaxAttemptsPerCard {
		recs = recs[:MaxAttemptsPerCard]
	}
	// Two concurrent fetches for the same card race here; last write
	// wins, which is fine because both represent the same logical read.
	s.attempts[cardID] = recs
	s.publishLocked(ctx)

	out := make([]scoring.AttemptRecord, len(recs))
	copy(out, recs)
	return out
}

// ResetSession discards the session and its derived fields. The attempt
// cache survives; it is a read cache, not session state.
func (s *Store) ResetSession(ctx context.Context) {
	s.mu.Lock()
	s.state = Transition(s.state, Reset{})
	s.activeCard = ""
	s.lastAttempt = nil
	s.errMsg = ""
	s.status = StatusIdle
	s.startedAt = 0
	s.notifyLocked()
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.ClearSession(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to clear session: %v\n", err)
		}
	}
}

// Restore rehydrates the store from durable storage. Stale sessions were
// already discarded by the persister; a nil snapshot leaves the store in
// its reset shape.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snap, err := s.persister.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if snap == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = snap.Session
	s.activeCard = snap.ActiveCardID
	s.lastAttempt = snap.LastAttempt
	s.startedAt = snap.SessionStartedAt
	s.attempts = snap.AttemptsByCard
	if s.attempts == nil {
		s.attempts = make(map[string][]scoring.AttemptRecord)
	}
	s.status = StatusIdle
	s.errMsg = ""
	s.notifyLocked()
	return nil
}

// prefetch warms the attempt cache for a card. Failures stay invisible:
// this is the fire-and-forget path, not a user-initiated fetch.
func (s *Store) prefetch(ctx context.Context, cardID string) {
	s.mu.Lock()
	_, cached := s.attempts[cardID]
	s.mu.Unlock()
	if cached {
		return
	}

	recs, err := s.history.Attempts(ctx, cardID, DefaultHistoryLimit)
	if err != nil {
		if scoring.IsNotFound(err) {
			s.mu.Lock()
			s.attempts[cardID] = []scoring.AttemptRecord{}
			s.notifyLocked()
			s.mu.Unlock()
		}
		return
	}

	s.mu.Lock()
	if len(recs) > MaxAttemptsPerCard {
		recs = recs[:MaxAttemptsPerCard]
	}
	s.attempts[cardID] = recs
	s.notifyLocked()
	s.mu.Unlock()
}

// fillVerdictLocked copies the last attempt's verdict into a completing
// event that carries none, so a bare "next" records the verdict the
// learner just saw.
func (s *Store) fillVerdictLocked(ev Event) Event {
	la := s.lastAttempt
	if la == nil || la.CardID != s.activeCard {
		return ev
	}
	switch e := ev.(type) {
	case Next:
		if e.Verdict == "" {
			e.Verdict = la.Verdict
			return e
		}
	case MarkLearned:
		if e.Verdict == "" {
			e.Verdict = la.Verdict
			return e
		}
	case BackOfPile:
		if e.Verdict == "" {
			e.Verdict = la.Verdict
			return e
		}
	}
	return ev
}

// cacheAttemptLocked prepends a fresh attempt, newest first, capped.
func (s *Store) cacheAttemptLocked(rec scoring.AttemptRecord) {
	recs := append([]scoring.AttemptRecord{rec}, s.attempts[rec.CardID]...)
	if len(recs) > MaxAttemptsPerCard {
		recs = recs[:MaxAttemptsPerCard]
	}
	s.attempts[rec.CardID] = recs
}

// publishLocked persists the current state best-effort and signals
// subscribers. Callers hold the lock.
//
// Saves go through a single drainer that always writes the newest
// snapshot: at most one SaveSession is in flight, and a slow write can
// never land after (and clobber) a newer one. Intermediate snapshots
// are coalesced away, same as the updates channel.
func (s *Store) publishLocked(ctx context.Context) {
	s.notifyLocked()
	if s.persister == nil {
		return
	}
	s.savePending = &pendingSave{ctx: ctx, snap: s.snapshotLocked()}
	if s.saveBusy {
		return
	}
	s.saveBusy = true
	go s.drainSaves()
}

// drainSaves writes pending snapshots until none is left, then exits.
func (s *Store) drainSaves() {
	for {
		s.mu.Lock()
		p := s.savePending
		s.savePending = nil
		if p == nil {
			s.saveBusy = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		if err := s.persister.SaveSession(p.ctx, p.snap); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to persist session: %v\n", err)
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	attempts := make(map[string][]scoring.AttemptRecord, len(s.attempts))
	for id, recs := range s.attempts {
		cp := make([]scoring.AttemptRecord, len(recs))
		copy(cp, recs)
		attempts[id] = cp
	}
	snap := Snapshot{
		Version:          SnapshotVersion,
		Session:          s.state.clone(),
		ActiveCardID:     s.activeCard,
		AttemptsByCard:   attempts,
		SessionStartedAt: s.startedAt,
	}
	if s.lastAttempt != nil {
		att := *s.lastAttempt
		snap.LastAttempt = &att
	}
	return snap
}

func (s *Store) notifyLocked() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
