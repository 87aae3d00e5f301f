package ui

import (
	"strings"

	"github.com/gradbar/gradbar/internal/theme"
)

// SwatchWidth is the cell count of a theme preview swatch.
const SwatchWidth = 16

// RenderSwatch renders a small full-progress gradient strip for a theme,
// used by the themes listing.
func RenderSwatch(th theme.Theme, blend BlendMode) string {
	cells := Ramp(th.Stops(1.0), SwatchWidth, blend)

	var sb strings.Builder
	writeCells(&sb, cells)
	return sb.String()
}
