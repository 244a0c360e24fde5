package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepper/internal/render"
	"stepper/internal/steps"
)

func newModel(t *testing.T, circular bool, names ...string) Model {
	t.Helper()
	c, err := steps.New(steps.Names(names...), steps.WithCircular(circular))
	require.NoError(t, err)
	return New(c, render.New(&bytes.Buffer{}, render.Options{}))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestUpdate_NextAndPrevious(t *testing.T) {
	m := newModel(t, false, "a", "b", "c")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "b", m.Controller().CurrentStep())

	m = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "c", m.Controller().CurrentStep())
	assert.True(t, m.blocked, "enter at the last step cannot move")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	assert.Equal(t, "a", m.Controller().CurrentStep())
	assert.False(t, m.blocked)
	assert.Equal(t, 4, m.Moves())
}

func TestUpdate_CircularWraps(t *testing.T) {
	m := newModel(t, true, "a", "b")

	m = press(t, m, runes("p"))
	assert.Equal(t, "b", m.Controller().CurrentStep())
	m = press(t, m, runes("n"))
	assert.Equal(t, "a", m.Controller().CurrentStep())
}

func TestUpdate_FirstLastAndNumbers(t *testing.T) {
	m := newModel(t, false, "a", "b", "c", "d")

	m = press(t, m, runes("G"))
	assert.Equal(t, "d", m.Controller().CurrentStep())

	m = press(t, m, runes("g"))
	assert.Equal(t, "a", m.Controller().CurrentStep())

	m = press(t, m, runes("3"))
	assert.Equal(t, "c", m.Controller().CurrentStep())

	m = press(t, m, runes("9"))
	assert.Equal(t, "c", m.Controller().CurrentStep(), "out of range jump is ignored")
	assert.True(t, m.blocked)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newModel(t, false, "a", "b")

	m = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "first")

	m = press(t, m, runes("?"))
	assert.False(t, m.showHelp)
}

func TestUpdate_Quit(t *testing.T) {
	m := newModel(t, false, "a")

	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newModel(t, false, "a")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
}

func TestView(t *testing.T) {
	m := newModel(t, false, "a", "b")

	view := m.View()
	assert.Contains(t, view, "[1 a]")
	assert.Contains(t, view, "Step 1 of 2: a")
	assert.NotContains(t, view, "can't move")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "can't move")
}

func TestInit(t *testing.T) {
	assert.Nil(t, newModel(t, false, "a").Init())
}
