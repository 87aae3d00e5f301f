package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.2.0")
	Tagline string // Optional tagline
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// Header accent colors, borrowed from the synthwave theme.
const (
	colorTitle   = lipgloss.Color("#ff2e97")
	colorVersion = lipgloss.Color("#00ffff")
	colorTagline = lipgloss.Color("#b4b4d0")
	colorDivider = lipgloss.Color("#2a2a4a")
)

// RenderHeader renders a clean branded header: title, version, tagline,
// divider. No ASCII art.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(colorTitle).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(colorVersion)

	taglineStyle := lipgloss.NewStyle().
		Foreground(colorTagline)

	dividerStyle := lipgloss.NewStyle().
		Foreground(colorDivider)

	var output strings.Builder

	output.WriteString(titleStyle.Render("gradbar"))
	output.WriteString(" ")
	output.WriteString(versionStyle.Render(info.Version))
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
