package study

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/router"
	"github.com/arvindh/recallo/internal/screen"
	"github.com/arvindh/recallo/internal/screens/summary"
	"github.com/arvindh/recallo/internal/scoring"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
	"github.com/arvindh/recallo/internal/ui/components"
	"github.com/arvindh/recallo/internal/ui/layout"
)

// StudyScreen drives one deck's study session.
type StudyScreen struct {
	deckID    string
	deckTitle string
	repo      store.DeckRepo
	store     *sess.Store

	input       components.AnswerInput
	view        sess.View
	ready       bool
	scoring     bool
	showHistory bool
	confirmQuit bool
	pickerOpen  bool
	pickerIndex int
	errMsg      string
	inputErr    string
	lastPhase   sess.Phase
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen with injected dependencies.
func New(repo store.DeckRepo, st *sess.Store, deckID, deckTitle string) *StudyScreen {
	return &StudyScreen{
		deckID:    deckID,
		deckTitle: deckTitle,
		repo:      repo,
		store:     st,
		input:     components.NewAnswerInput("Type your answer...", 240),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.waitForChange(),
		s.input.Init(),
	)
}

func (s *StudyScreen) Title() string {
	return s.deckTitle
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if !s.ready || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.pickerOpen {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Pick card"},
			{Key: "Enter", Description: "Switch"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	switch s.view.Session.Phase {
	case sess.PhasePrompt:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+N", Description: "Skip"},
			{Key: "Ctrl+P", Description: "Park"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.PhaseReview:
		return []layout.KeyHint{
			{Key: "N/Enter", Description: "Next"},
			{Key: "L", Description: "Learned"},
			{Key: "B", Description: "Back of pile"},
			{Key: "P", Description: "Park"},
			{Key: "H", Description: "History"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.PhaseComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "R", Description: "Study again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.ready {
		return renderLoading(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.pickerOpen {
		return s.renderPicker(width)
	}
	switch s.view.Session.Phase {
	case sess.PhaseEmpty:
		return renderEmpty(width)
	case sess.PhaseReview:
		return s.renderReview(width, height)
	case sess.PhaseComplete:
		return s.renderComplete(width)
	default:
		return s.renderPrompt(width)
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case storeChangedMsg:
		s.refresh()
		return s, s.waitForChange()

	case scoredMsg:
		return s.handleScored(msg)

	case historyMsg:
		// Cache is warm now; a refresh re-renders the panel.
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the input while answering.
	if s.ready && s.view.Session.Phase == sess.PhasePrompt && !s.scoring {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession bootstraps the queue from the deck's study cards, unless a
// restored session for the same deck is already in progress.
func (s *StudyScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		v := s.store.View()
		if v.Session.DeckID == s.deckID && v.Session.Phase != sess.PhaseEmpty {
			return sessionReadyMsg{Resumed: true}
		}

		cards, err := s.repo.StudyCards(ctx, s.deckID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		s.store.StartSession(ctx, s.deckID, cards)
		return sessionReadyMsg{}
	}
}

// waitForChange blocks on the store's update signal. Re-armed once per
// received storeChangedMsg so there is always exactly one waiter.
func (s *StudyScreen) waitForChange() tea.Cmd {
	updates := s.store.Updates()
	return func() tea.Msg {
		<-updates
		return storeChangedMsg{}
	}
}

func (s *StudyScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.ready = true
	s.refresh()
	return s, nil
}

func (s *StudyScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	s.scoring = false
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, sess.ErrEmptyAnswer):
			s.inputErr = "Type an answer first"
		case errors.Is(msg.Err, sess.ErrNoActiveCard):
			// Session moved on underneath us; the refresh below picks
			// up whatever phase we are in now.
		default:
			// The store already classified the failure into view.Err.
		}
		s.refresh()
		return s, nil
	}
	s.refresh()
	if msg.Rec != nil && msg.Rec.Schedule != nil {
		return s, s.syncSchedule(msg.Rec)
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.ready {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	ctx := context.Background()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			// The session snapshot is already persisted; backing out
			// leaves it resumable.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.pickerOpen {
		return s.handlePickerKey(ctx, key)
	}

	switch s.view.Session.Phase {
	case sess.PhaseEmpty:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case sess.PhasePrompt:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			return s.submit()
		case "ctrl+n":
			if s.scoring {
				return s, nil
			}
			s.store.Dispatch(ctx, sess.Next{})
			s.refresh()
			return s, nil
		case "ctrl+p":
			s.openPicker()
			return s, nil
		}
		if s.scoring {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case sess.PhaseReview:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "p":
			s.openPicker()
			return s, nil
		case "n", "enter":
			s.store.Dispatch(ctx, sess.Next{})
			s.refresh()
			return s, nil
		case "l":
			learned := s.view.ActiveCardID
			s.store.Dispatch(ctx, sess.MarkLearned{})
			s.refresh()
			return s, s.persistLearned(learned)
		case "b":
			s.store.Dispatch(ctx, sess.BackOfPile{})
			s.refresh()
			return s, nil
		case "h":
			s.showHistory = !s.showHistory
			if s.showHistory {
				return s, s.fetchHistory(s.view.ActiveCardID)
			}
			return s, nil
		}
		return s, nil

	case sess.PhaseComplete:
		switch key {
		case "enter":
			v := s.store.View()
			title := s.deckTitle
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(title, v)}
			}
		case "r":
			s.ready = false
			s.showHistory = false
			s.store.ResetSession(ctx)
			return s, s.initSession()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

// openPicker shows the queued cards so the learner can park the active
// one and jump elsewhere. No-op when nothing else is waiting.
func (s *StudyScreen) openPicker() {
	if s.scoring || len(s.view.Session.Queue) == 0 {
		return
	}
	s.pickerOpen = true
	s.pickerIndex = 0
}

func (s *StudyScreen) handlePickerKey(ctx context.Context, key string) (screen.Screen, tea.Cmd) {
	queue := s.view.Session.Queue
	switch key {
	case "esc", "p", "ctrl+p":
		s.pickerOpen = false
	case "up", "k":
		if s.pickerIndex > 0 {
			s.pickerIndex--
		}
	case "down", "j":
		if s.pickerIndex < len(queue)-1 {
			s.pickerIndex++
		}
	case "enter":
		s.pickerOpen = false
		if s.pickerIndex >= 0 && s.pickerIndex < len(queue) {
			s.store.SelectCard(ctx, queue[s.pickerIndex].ID)
			s.refresh()
		}
	}
	return s, nil
}

func (s *StudyScreen) submit() (screen.Screen, tea.Cmd) {
	if s.scoring {
		return s, nil
	}
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		s.inputErr = "Type an answer first"
		return s, nil
	}
	s.inputErr = ""
	s.scoring = true

	st := s.store
	return s, func() tea.Msg {
		rec, err := st.SubmitAnswer(context.Background(), answer)
		return scoredMsg{Rec: rec, Err: err}
	}
}

// persistLearned pushes the card's schedule far out in the deck store so
// it drops from future study queues. The session advance never waits on
// the write.
func (s *StudyScreen) persistLearned(cardID string) tea.Cmd {
	if cardID == "" {
		return nil
	}
	repo := s.repo
	return func() tea.Msg {
		if _, err := repo.BulkUpdateCards(context.Background(), []string{cardID}, store.BulkMarkLearned); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to mark card learned:", err)
		}
		return nil
	}
}

// syncSchedule writes the schedule the scorer computed back to the card
// row, then folds the updated card into the running session.
func (s *StudyScreen) syncSchedule(rec *scoring.AttemptRecord) tea.Cmd {
	repo := s.repo
	st := s.store
	return func() tea.Msg {
		card, ok := findCard(st.View().Session, rec.CardID)
		if !ok {
			return nil
		}
		card.Schedule = rec.Schedule
		if err := repo.SyncCard(context.Background(), card); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to save card schedule:", err)
			return nil
		}
		st.Dispatch(context.Background(), sess.SyncCard{Card: card})
		return nil
	}
}

// findCard locates a card anywhere in the session: active slot, queue,
// or the completed log.
func findCard(st sess.State, cardID string) (deck.CardSummary, bool) {
	if st.Active != nil && st.Active.ID == cardID {
		return *st.Active, true
	}
	for _, c := range st.Queue {
		if c.ID == cardID {
			return c, true
		}
	}
	for _, e := range st.Completed {
		if e.Card.ID == cardID {
			return e.Card, true
		}
	}
	return deck.CardSummary{}, false
}

func (s *StudyScreen) fetchHistory(cardID string) tea.Cmd {
	st := s.store
	return func() tea.Msg {
		atts := st.FetchAttempts(context.Background(), cardID, sess.FetchOptions{})
		return historyMsg{CardID: cardID, Attempts: atts}
	}
}

// refresh re-reads the store view and keeps the input in step with the
// session phase: focused and empty when a new prompt appears, blurred
// during review so single-key bindings are not swallowed.
func (s *StudyScreen) refresh() {
	s.view = s.store.View()
	phase := s.view.Session.Phase

	if phase != s.lastPhase {
		switch phase {
		case sess.PhasePrompt:
			s.input.Reset()
			s.input.Focus()
			s.inputErr = ""
		default:
			s.input.Blur()
		}
		if phase != sess.PhaseReview {
			s.showHistory = false
		}
		s.lastPhase = phase
	}
}
