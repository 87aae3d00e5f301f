package ui

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gradbar/gradbar/pkg/gradient"
)

// Ramp samples a stop list across n cells, producing one color per cell.
// Cell i sits at position i/(n-1) along the gradient; the position is scaled
// over the stop spans and the two surrounding stops are blended by the
// fractional remainder.
func Ramp(stops []gradient.Color, n int, blend BlendMode) []gradient.Color {
	if n <= 0 {
		return nil
	}

	out := make([]gradient.Color, n)
	if len(stops) == 0 {
		for i := range out {
			out[i] = gradient.Black
		}
		return out
	}
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[len(stops)-1]
		}
		return out
	}

	for i := range out {
		pos := float64(i) / float64(n-1) * float64(len(stops)-1)
		idx := int(math.Floor(pos))
		if idx >= len(stops)-1 {
			out[i] = stops[len(stops)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = blendPair(stops[idx], stops[idx+1], frac, blend)
	}
	return out
}

func blendPair(from, to gradient.Color, t float64, blend BlendMode) gradient.Color {
	if blend != BlendHCL {
		return gradient.Interpolate(from, to, t)
	}

	fr, fg, fb, _ := from.RGBA()
	tr, tg, tb, _ := to.RGBA()
	a := colorful.Color{R: fr, G: fg, B: fb}
	b := colorful.Color{R: tr, G: tg, B: tb}
	mixed := a.BlendHcl(b, t).Clamped()
	return gradient.FromRGBA(mixed.R, mixed.G, mixed.B, 1)
}
