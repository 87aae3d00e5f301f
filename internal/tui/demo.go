// Package tui hosts the interactive demo: an animated sweep of progress
// bars, one per theme, rendered with Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/ui"
)

// tickInterval drives the demo animation.
const tickInterval = 50 * time.Millisecond

// defaultSweep is how long one 0→100% sweep takes.
const defaultSweep = 5 * time.Second

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// keyMap defines the demo key bindings.
type keyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Blend   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Blend: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle blend"),
		),
	}
}

// Model is the Bubble Tea model for the demo.
type Model struct {
	themes   []theme.Theme
	keys     keyMap
	progress float64 // 0..1
	step     float64 // progress added per tick
	blend    ui.BlendMode
	barWidth int
	width    int
	paused   bool
	quitting bool
}

// NewModel builds a demo over the given themes, sweeping 0→100% in sweep
// (or defaultSweep when zero).
func NewModel(themes []theme.Theme, blend ui.BlendMode, barWidth int, sweep time.Duration) Model {
	if sweep <= 0 {
		sweep = defaultSweep
	}
	if barWidth <= 0 {
		barWidth = 40
	}
	return Model{
		themes:   themes,
		keys:     defaultKeyMap(),
		step:     float64(tickInterval) / float64(sweep),
		blend:    blend,
		barWidth: barWidth,
	}
}

// Progress exposes the current sweep position for tests.
func (m Model) Progress() float64 { return m.progress }

// Init starts the animation.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles ticks, resizes, and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.progress += m.step
			if m.progress > 1 {
				m.progress = 0
			}
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Restart):
			m.progress = 0
		case key.Matches(msg, m.keys.Blend):
			if m.blend == ui.BlendHCL {
				m.blend = ui.BlendRGB
			} else {
				m.blend = ui.BlendHCL
			}
		}
	}
	return m, nil
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b4b4d0"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b6b8d"))
)

// View renders one labeled bar per theme plus a help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	labelWidth := 0
	for _, th := range m.themes {
		if len(th.Name) > labelWidth {
			labelWidth = len(th.Name)
		}
	}

	percent := m.progress * 100
	cfg := ui.BarConfig{
		Width:       m.barWidth,
		Brackets:    true,
		ShowPercent: true,
		Blend:       m.blend,
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, th := range m.themes {
		label := fmt.Sprintf("%-*s", labelWidth, th.Name)
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(ui.RenderBar(percent, th, cfg))
		b.WriteString("\n")
	}

	state := "running"
	if m.paused {
		state = "paused"
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"  blend: %s · %s · space pause · r restart · b blend · q quit", m.blend, state)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the demo program and blocks until it exits.
func Run(themes []theme.Theme, blend ui.BlendMode, barWidth int, sweep time.Duration) error {
	p := tea.NewProgram(NewModel(themes, blend, barWidth, sweep))
	_, err := p.Run()
	return err
}
