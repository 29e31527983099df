package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
	sess "github.com/arvindh/recallo/internal/session"
)

func testView() sess.View {
	entry := func(id string, action sess.ReviewAction, verdict scoring.Verdict) sess.CompletedEntry {
		return sess.CompletedEntry{
			Card:        deck.CardSummary{ID: id, Prompt: "prompt " + id},
			Action:      action,
			CompletedAt: time.Now(),
			Verdict:     verdict,
		}
	}
	return sess.View{
		Session: sess.State{
			DeckID: "d1",
			Phase:  sess.PhaseComplete,
			Completed: []sess.CompletedEntry{
				entry("c1", sess.ActionNext, "correct"),
				entry("c2", sess.ActionMarkLearned, "correct"),
				entry("c3", sess.ActionNext, "almost"),
				entry("c4", sess.ActionBackOfPile, "incorrect"),
				entry("c4", sess.ActionNext, "correct"),
			},
			Total: 4,
		},
		StartedAt: time.Now().Add(-5 * time.Minute).UnixMilli(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("Biology", testView())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("Biology", testView())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Biology") {
		t.Error("expected deck title in summary view")
	}
	if !strings.Contains(view, "Reviewed: 5") {
		t.Error("expected reviewed count in summary view")
	}
	if !strings.Contains(view, "Learned: 1") {
		t.Error("expected learned count in summary view")
	}
}

func TestSummaryScreen_NoScoredAnswers(t *testing.T) {
	v := testView()
	for i := range v.Session.Completed {
		v.Session.Completed[i].Verdict = ""
	}
	s := New("Biology", v)
	if !strings.Contains(s.View(80, 24), "no scored answers") {
		t.Error("expected placeholder when nothing was scored")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New("Biology", testView())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New("Biology", testView())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("Biology", testView())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
