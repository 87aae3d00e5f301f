package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/ui"
)

func demoThemes(t *testing.T) []theme.Theme {
	t.Helper()
	reg := theme.NewRegistry()
	var themes []theme.Theme
	for _, name := range []string{"heat", "ocean"} {
		th, err := reg.Get(name)
		require.NoError(t, err)
		themes = append(themes, th)
	}
	return themes
}

func TestTickAdvancesProgress(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)

	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	assert.Greater(t, m.Progress(), 0.0)
	assert.NotNil(t, cmd, "tick must schedule the next tick")
}

func TestSweepWrapsAround(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)

	// One second sweep at 50ms ticks: 21 ticks pushes past 1.0 and wraps.
	for i := 0; i < 21; i++ {
		updated, _ := m.Update(tickMsg(time.Now()))
		m = updated.(Model)
	}
	assert.Less(t, m.Progress(), 1.0)
}

func TestPauseStopsProgress(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(Model)
	before := m.Progress()

	updated, _ = m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	assert.Equal(t, before, m.Progress())
}

func TestRestartResetsProgress(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.Greater(t, m.Progress(), 0.0)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	assert.Equal(t, 0.0, m.Progress())
}

func TestQuitKey(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	assert.NotNil(t, cmd, "quit should return tea.Quit")
	assert.Empty(t, m.View(), "quitting model renders nothing")
}

func TestBlendToggle(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = updated.(Model)
	assert.Contains(t, m.View(), "hcl")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = updated.(Model)
	assert.Contains(t, m.View(), "rgb")
}

func TestViewListsThemes(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 20, time.Second)
	view := m.View()

	assert.Contains(t, view, "heat")
	assert.Contains(t, view, "ocean")
	assert.Contains(t, view, "q quit")
}

func TestDefaultsApplied(t *testing.T) {
	m := NewModel(demoThemes(t), ui.BlendRGB, 0, 0)
	assert.Equal(t, 40, m.barWidth)
	assert.Greater(t, m.step, 0.0)
}
