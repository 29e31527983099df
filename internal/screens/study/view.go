package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/ui/components"
	"github.com/arvindh/recallo/internal/ui/theme"
)

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Loading deck...")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n" + msg + "\n\nPress any key to go back")
}

func renderEmpty(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\nThis deck has no cards to study.\n\nPress any key to go back")
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nLeave this session?\n\nYour progress is saved and resumes for 24 hours.\n\n[Y]es   [N]o")
}

// renderPicker lists the queued cards for parking the active one.
func (s *StudyScreen) renderPicker(width int) string {
	queue := s.view.Session.Queue

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Jump to a waiting card"))
	b.WriteString("\n\n")

	for i, c := range queue {
		line := truncate(c.Prompt, 60)
		if i == s.pickerIndex {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

// progressLine renders "done/total" with a bar, plus the scoring status.
func (s *StudyScreen) progressLine(width int) string {
	st := s.view.Session

	remaining := len(st.Queue)
	if st.Active != nil {
		remaining++
	}
	done := st.Total - remaining
	if done < 0 {
		done = 0
	}

	percent := 0.0
	if st.Total > 0 {
		percent = float64(done) / float64(st.Total)
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("  %d/%d", done, st.Total),
		percent, false, min(width-20, 50),
	).View()

	if s.view.Status == sess.StatusScoring || s.scoring {
		bar += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("scoring...")
	}
	return bar
}

func (s *StudyScreen) renderPrompt(width int) string {
	card := s.view.Session.Active
	if card == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.progressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(card.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"Answer: "+s.input.View()))
	b.WriteString("\n")

	if s.inputErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.inputErr))
		b.WriteString("\n")
	}

	if s.view.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.view.Err))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *StudyScreen) renderReview(width, height int) string {
	card := s.view.Session.Active
	att := s.view.LastAttempt

	var b strings.Builder
	b.WriteString(s.progressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if card != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(card.Prompt))
		b.WriteString("\n\n")
	}

	if att != nil {
		verdict := theme.VerdictStyle(string(att.Verdict)).
			Render(strings.ToUpper(string(att.Verdict)))
		score := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  score %.0f%%", att.Score*100))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict+score))
		b.WriteString("\n\n")

		if att.Feedback != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(att.Feedback))
			b.WriteString("\n\n")
		}

		if len(att.MissingKeypoints) > 0 {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Warning).
				Render("Missing: " + strings.Join(att.MissingKeypoints, ", ")))
			b.WriteString("\n\n")
		}
	} else if card != nil {
		// Advanced without scoring; show the expected answer instead.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Expected: " + card.Answer))
		b.WriteString("\n\n")
	}

	if att != nil && card != nil && att.Verdict != "correct" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Expected: " + card.Answer))
		b.WriteString("\n")
	}

	if s.showHistory && card != nil {
		b.WriteString("\n")
		b.WriteString(s.renderHistory(card.ID, width))
	}

	return b.String()
}

// renderHistory shows the most recent attempts for a card.
func (s *StudyScreen) renderHistory(cardID string, width int) string {
	atts := s.store.Attempts(cardID)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Past attempts")))
	b.WriteString("\n")

	if len(atts) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("none yet")))
		b.WriteString("\n")
		return b.String()
	}

	shown := atts
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, a := range shown {
		line := theme.VerdictStyle(string(a.Verdict)).Render(fmt.Sprintf("%-9s", a.Verdict)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf(" %s  %s", a.CreatedAt.Format("Jan 02 15:04"), truncate(a.UserAnswer, 40)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StudyScreen) renderComplete(width int) string {
	st := s.view.Session

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Deck complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d cards reviewed", len(st.Completed))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter for the summary, R to study again"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
