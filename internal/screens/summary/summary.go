package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arvindh/recallo/internal/router"
	"github.com/arvindh/recallo/internal/screen"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/ui/layout"
	"github.com/arvindh/recallo/internal/ui/theme"
)

// SummaryScreen displays the finished session's results.
type SummaryScreen struct {
	deckTitle string
	view      sess.View
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen from a completed session view.
func New(deckTitle string, v sess.View) *SummaryScreen {
	return &SummaryScreen{deckTitle: deckTitle, view: v}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back to decks"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.view.Session

	verdicts := map[string]int{}
	learned := 0
	for _, e := range st.Completed {
		if e.Verdict != "" {
			verdicts[string(e.Verdict)]++
		}
		if e.Action == sess.ActionMarkLearned {
			learned++
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.deckTitle))
	b.WriteString("\n\n")

	if s.view.StartedAt > 0 {
		dur := time.Since(time.UnixMilli(s.view.StartedAt))
		mins := int(dur.Minutes())
		secs := int(dur.Seconds()) % 60
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
		b.WriteString("\n\n")
	}

	statsLine := fmt.Sprintf("Reviewed: %d        Learned: %d", len(st.Completed), learned)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Verdicts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, v := range []string{"correct", "almost", "missing", "incorrect"} {
		n := verdicts[v]
		if n == 0 {
			continue
		}
		line := theme.VerdictStyle(v).Render(fmt.Sprintf("%-10s", v)) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%d", n))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	if len(verdicts) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("no scored answers")))
		b.WriteString("\n")
	}

	return b.String()
}
