package gradient

import "sort"

// ResolveStops returns the ordered color stops to paint for the given
// progress.
//
// With segmented disabled, or with no anchors, the fallback colors are
// returned verbatim. Otherwise the anchors are walked in ascending key
// order: every anchor whose key has been reached contributes its color, and
// the first unreached anchor contributes one color interpolated from the
// previous anchor at t = (progress-prev)/(key-prev), after which the walk
// stops. The effect is a gradient that extends smoothly into the next
// segment as progress grows instead of snapping between flat colors.
//
// The result always has at least one stop; a singleton is duplicated so the
// caller can paint a two-stop gradient unconditionally. When progress sits
// exactly on a non-final anchor key the next iteration interpolates at t=0
// against the same color, leaving a duplicate stop — harmless, and kept for
// stable output.
//
// Progress is not clamped here; callers clamp to [0,1] before calling.
// Anchor keys are unique by construction (map keys), so the interpolation
// ratio cannot divide by zero.
func ResolveStops(progress float64, colors []Color, anchors map[float64]Color, segmented bool) []Color {
	if !segmented || len(anchors) == 0 {
		return colors
	}

	keys := make([]float64, 0, len(anchors))
	for k := range anchors {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var stops []Color
	for i, k := range keys {
		if k <= progress {
			stops = append(stops, anchors[k])
			continue
		}
		if i > 0 {
			prev := keys[i-1]
			t := (progress - prev) / (k - prev)
			stops = append(stops, Interpolate(anchors[prev], anchors[k], t))
		}
		break
	}

	// Progress below the first anchor: show that anchor flat.
	if len(stops) == 0 {
		stops = append(stops, anchors[keys[0]])
	}
	if len(stops) == 1 {
		stops = append(stops, stops[0])
	}
	return stops
}
