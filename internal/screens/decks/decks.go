package decks

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/router"
	"github.com/arvindh/recallo/internal/screen"
	"github.com/arvindh/recallo/internal/screens/study"
	sess "github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
	"github.com/arvindh/recallo/internal/ui/components"
	"github.com/arvindh/recallo/internal/ui/layout"
	"github.com/arvindh/recallo/internal/ui/theme"
)

// deckListMsg is sent when the deck listing has been loaded.
type deckListMsg struct {
	Decks []deck.Deck
	Err   error
}

// DecksScreen is the application's entry screen: pick a deck to study.
type DecksScreen struct {
	repo    store.DeckRepo
	session *sess.Store
	menu    components.Menu
	decks   []deck.Deck
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates a new DecksScreen.
func New(repo store.DeckRepo, session *sess.Store) *DecksScreen {
	return &DecksScreen{repo: repo, session: session}
}

func (s *DecksScreen) Init() tea.Cmd {
	return s.loadDecks()
}

func (s *DecksScreen) Title() string {
	return "Decks"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "R", Description: "Refresh"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *DecksScreen) loadDecks() tea.Cmd {
	return func() tea.Msg {
		list, err := s.repo.Decks(context.Background())
		return deckListMsg{Decks: list, Err: err}
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckListMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.loaded = true
		s.decks = msg.Decks
		s.menu = components.NewMenu(s.menuItems(msg.Decks))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.loadDecks()
		case "q":
			return s, tea.Quit
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *DecksScreen) menuItems(list []deck.Deck) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(list)+1)
	for _, d := range list {
		d := d
		items = append(items, components.MenuItem{
			Label:  d.Title,
			Detail: fmt.Sprintf("%d cards", d.CardCount()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: study.New(s.repo, s.session, d.ID, d.Title),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return items
}

func (s *DecksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nPress R to retry")
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading decks...")
	}

	var header string
	if len(s.decks) == 0 {
		header = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo decks yet.\n\nImport one with: recallo import deck.json\n")
	} else {
		header = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nPick a deck to study\n")
	}

	return header + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
}
