// Package wizardui renders the questionnaire as an interactive
// terminal wizard. It is a thin Bubble Tea shell over the pure wizard
// state: every keypress maps to one engine transition, and the model
// simply stores the latest state value.
package wizardui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/complykit/complykit/internal/questionnaire"
)

// Model drives one wizard session.
type Model struct {
	engine  *questionnaire.Engine
	state   questionnaire.WizardState
	cursor  int
	aborted bool
	keys    keyMap
	styles  styles
}

// Options configures the wizard model.
type Options struct {
	NoColor bool
}

// NewModel constructs a wizard model starting at the first question.
func NewModel(engine *questionnaire.Engine, opts Options) Model {
	return Model{
		engine: engine,
		state:  engine.Start(),
		keys:   defaultKeyMap(),
		styles: newStyles(opts.NoColor),
	}
}

// keyMap holds the wizard keybindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("left", "esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q")),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key events and applies engine transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -1, m.optionCount())
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, +1, m.optionCount())
		return m, nil

	case key.Matches(keyMsg, m.keys.Back):
		if m.state.StepIndex == 0 {
			m.aborted = true
			return m, tea.Quit
		}
		m.state = m.engine.Retreat(m.state)
		m.cursor = prefillCursor(m.engine, m.state)
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		q, err := m.engine.CurrentQuestion(m.state)
		if err != nil {
			return m, tea.Quit
		}
		next, err := m.engine.SelectAnswer(m.state, q.ID, q.Options[m.cursor].Value)
		if err != nil {
			return m, nil
		}
		next, err = m.engine.Advance(next)
		if err != nil {
			return m, nil
		}
		m.state = next
		if m.engine.IsComplete(m.state) {
			return m, tea.Quit
		}
		m.cursor = prefillCursor(m.engine, m.state)
		return m, nil
	}

	return m, nil
}

// View renders the current step.
func (m Model) View() string {
	if m.aborted || m.engine.IsComplete(m.state) {
		return ""
	}
	q, err := m.engine.CurrentQuestion(m.state)
	if err != nil {
		return ""
	}

	s := m.styles
	out := s.progress.Render(fmt.Sprintf("Step %d of %d", m.state.StepIndex+1, m.engine.Len())) + "\n\n"
	out += s.prompt.Render(q.Prompt) + "\n\n"
	for i, opt := range q.Options {
		line := "  " + opt.Label
		if i == m.cursor {
			line = s.cursor.Render("> " + opt.Label)
		}
		out += line + "\n"
	}
	out += "\n" + s.help.Render("up/down select · enter confirm · left back · q quit") + "\n"
	return out
}

// Aborted reports whether the session ended before completion.
func (m Model) Aborted() bool {
	return m.aborted
}

// State returns the wizard state at the time the program ended.
func (m Model) State() questionnaire.WizardState {
	return m.state
}

func (m Model) optionCount() int {
	q, err := m.engine.CurrentQuestion(m.state)
	if err != nil {
		return 0
	}
	return len(q.Options)
}

// moveCursor shifts the cursor by delta, clamped to [0, count).
func moveCursor(cursor, delta, count int) int {
	if count == 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 {
		return 0
	}
	if next >= count {
		return count - 1
	}
	return next
}

// prefillCursor returns the option index of the answer already
// recorded for the current step, or 0 when the step is unanswered.
// Re-entering a step therefore pre-fills the prior choice.
func prefillCursor(engine *questionnaire.Engine, s questionnaire.WizardState) int {
	q, err := engine.CurrentQuestion(s)
	if err != nil {
		return 0
	}
	value, ok := s.Answers[q.ID]
	if !ok {
		return 0
	}
	for i, opt := range q.Options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}
