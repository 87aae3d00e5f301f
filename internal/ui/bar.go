package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/pkg/gradient"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ColorEmpty is the foreground for the unfilled portion of a bar.
const ColorEmpty = lipgloss.Color("#3a3a4a")

// BlendMode selects how colors between gradient stops are mixed across
// bar cells.
type BlendMode string

const (
	// BlendRGB mixes channel-wise in RGB space, matching the engine's own
	// interpolation.
	BlendRGB BlendMode = "rgb"

	// BlendHCL mixes in HCL space for perceptually even transitions.
	BlendHCL BlendMode = "hcl"
)

// ParseBlendMode validates a blend mode name from flags or config.
func ParseBlendMode(s string) (BlendMode, bool) {
	switch BlendMode(s) {
	case BlendRGB, BlendHCL:
		return BlendMode(s), true
	case "":
		return BlendRGB, true
	}
	return "", false
}

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width       int       // Width of the bar in characters
	Brackets    bool      // Whether to wrap bar in [ ]
	ShowPercent bool      // Whether to append percentage
	Blend       BlendMode // How to mix colors between stops
	NoColor     bool      // Render without ANSI styling
}

// DefaultBarConfig returns the standard render configuration.
func DefaultBarConfig(width int) BarConfig {
	return BarConfig{
		Width:       width,
		Brackets:    true,
		ShowPercent: true,
		Blend:       BlendRGB,
	}
}

// ClampPercent clamps a percentage to the 0-100 range. The gradient engine
// never clamps; this is the caller-side guard applied before resolving.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty characters for a bar.
// Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// RenderBar renders a themed progress bar. Percent should be 0-100; values
// outside the range are clamped. The filled portion is painted as a linear
// gradient over the theme's resolved stops; the empty portion is dimmed.
func RenderBar(percent float64, th theme.Theme, cfg BarConfig) string {
	if cfg.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, cfg.Width)
	stops := th.Stops(percent / 100.0)

	var sb strings.Builder

	if cfg.Brackets {
		sb.WriteRune('[')
	}

	if cfg.NoColor {
		for i := 0; i < filled; i++ {
			sb.WriteRune(BarFilled)
		}
		for i := 0; i < empty; i++ {
			sb.WriteRune(BarEmpty)
		}
	} else {
		cells := Ramp(stops, filled, cfg.Blend)
		writeCells(&sb, cells)

		if empty > 0 {
			emptyStyle := lipgloss.NewStyle().Foreground(ColorEmpty)
			sb.WriteString(emptyStyle.Render(strings.Repeat(string(BarEmpty), empty)))
		}
	}

	if cfg.Brackets {
		sb.WriteRune(']')
	}

	if cfg.ShowPercent {
		sb.WriteString(fmt.Sprintf(" %3.0f%%", percent))
	}

	return sb.String()
}

// writeCells renders filled cells, batching adjacent same-colored cells into
// a single styled run to keep escape sequences down.
func writeCells(sb *strings.Builder, cells []gradient.Color) {
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(cells[i]))
		sb.WriteString(style.Render(strings.Repeat(string(BarFilled), j-i)))
		i = j
	}
}
