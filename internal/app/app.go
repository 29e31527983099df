package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arvindh/recallo/internal/router"
	"github.com/arvindh/recallo/internal/screen"
	"github.com/arvindh/recallo/internal/screens/decks"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
	"github.com/arvindh/recallo/internal/ui/layout"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	Decks   store.DeckRepo
	Session *sess.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *sess.Store
	width   int
	height  int
}

// newAppModel creates a new AppModel with the deck list as entry screen.
func newAppModel(opts Options) AppModel {
	entry := decks.New(opts.Decks, opts.Session)
	return AppModel{
		router:  router.New(entry),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// headerStatus summarizes the running session for the header's right edge.
func (m AppModel) headerStatus() string {
	if m.session == nil {
		return ""
	}
	v := m.session.View()
	st := v.Session

	switch st.Phase {
	case sess.PhasePrompt, sess.PhaseReview:
		remaining := len(st.Queue)
		if st.Active != nil {
			remaining++
		}
		done := st.Total - remaining
		if done < 0 {
			done = 0
		}
		return fmt.Sprintf("%d/%d", done, st.Total)
	case sess.PhaseComplete:
		return "done"
	}
	return ""
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
