package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for free-text study answers.
type AnswerInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewAnswerInput creates a new styled answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the answer input.
func (t AnswerInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input for the next card.
func (t *AnswerInput) Reset() {
	t.Model.SetValue("")
}

// Focus gives the input keyboard focus.
func (t *AnswerInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus so review-phase keys are not swallowed.
func (t *AnswerInput) Blur() {
	t.Model.Blur()
}
