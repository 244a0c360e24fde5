// Package tui provides an interactive terminal wizard over a step controller.
//
// The [Model] binds key presses to controller transitions and re-renders only
// when a transition reports that it moved. Number keys 1-9 jump straight to
// that one-based step.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stepper/internal/render"
	"stepper/internal/steps"
)

// Model is the bubbletea model for the wizard.
type Model struct {
	ctrl     *steps.Controller
	renderer *render.Renderer

	// UI state
	keys     KeyMap
	help     help.Model
	showHelp bool
	blocked  bool // last key asked for a move that did not happen
	moves    int
	width    int
}

// New creates a wizard model over c.
func New(c *steps.Controller, r *render.Renderer) Model {
	return Model{
		ctrl:     c,
		renderer: r,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the controller driven by the model.
func (m Model) Controller() *steps.Controller {
	return m.ctrl
}

// Moves returns how many key presses moved the active step.
func (m Model) Moves() int {
	return m.moves
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Next):
			return m.record(m.ctrl.TransitionToNext()), nil

		case key.Matches(msg, m.keys.Previous):
			return m.record(m.ctrl.TransitionToPrevious()), nil

		case key.Matches(msg, m.keys.First):
			return m.record(m.jumpTo(0)), nil

		case key.Matches(msg, m.keys.Last):
			return m.record(m.jumpTo(m.ctrl.Length() - 1)), nil

		// Number keys for direct step access
		case len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9":
			n := int(msg.String()[0] - '0')
			return m.record(m.jumpTo(n - 1)), nil
		}
	}

	return m, nil
}

// jumpTo transitions to the step at zero-based index i.
func (m Model) jumpTo(i int) bool {
	target, err := m.ctrl.StepAt(i)
	if err != nil {
		return false
	}
	return m.ctrl.TransitionTo(target)
}

func (m Model) record(moved bool) Model {
	m.blocked = !moved
	if moved {
		m.moves++
	}
	return m
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderer.Sequence(m.ctrl))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Status(m.ctrl))
	if m.blocked {
		b.WriteString("  (can't move)")
	}
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")

	return b.String()
}

// Run starts the wizard on the terminal and blocks until the user quits or
// ctx is cancelled. It returns the final model.
func Run(ctx context.Context, c *steps.Controller, r *render.Renderer, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(c, r), opts...)

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("wizard: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("wizard: unexpected model %T", final)
	}
	return m, nil
}
