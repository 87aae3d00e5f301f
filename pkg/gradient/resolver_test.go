package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	blue   = Color("#2563eb")
	green  = Color("#16a34a")
	red    = Color("#dc2626")
	purple = Color("#bf40ff")
)

func testAnchors() map[float64]Color {
	return map[float64]Color{
		0.4: blue,
		0.6: green,
		1.0: red,
	}
}

func TestResolveStopsFallbackPath(t *testing.T) {
	colors := []Color{purple, red}

	// Segmented disabled: fallback colors pass through untouched, anchors or not.
	assert.Equal(t, colors, ResolveStops(0.5, colors, testAnchors(), false))
	assert.Equal(t, colors, ResolveStops(0.0, colors, nil, false))

	// Segmented requested but no anchors to walk.
	assert.Equal(t, colors, ResolveStops(0.5, colors, nil, true))
	assert.Equal(t, colors, ResolveStops(0.5, colors, map[float64]Color{}, true))
}

func TestResolveStopsBelowFirstAnchor(t *testing.T) {
	// Nothing reached yet: the first anchor color, duplicated so a
	// two-stop gradient can always be painted.
	stops := ResolveStops(0.0, nil, testAnchors(), true)
	assert.Equal(t, []Color{blue, blue}, stops)
}

func TestResolveStopsInterpolatesIntoNextSegment(t *testing.T) {
	// Progress 0.5 is halfway between the 0.4 and 0.6 anchors.
	stops := ResolveStops(0.5, nil, testAnchors(), true)

	require.Len(t, stops, 2)
	assert.Equal(t, blue, stops[0])
	assert.Equal(t, Interpolate(blue, green, 0.5), stops[1])
}

func TestResolveStopsExactAnchorBoundary(t *testing.T) {
	// Landing exactly on a non-final anchor appends that anchor and then a
	// t=0 interpolation of the same color. The duplicate is intentional.
	stops := ResolveStops(0.6, nil, testAnchors(), true)
	assert.Equal(t, []Color{blue, green, green}, stops)
}

func TestResolveStopsAllAnchorsReached(t *testing.T) {
	stops := ResolveStops(1.0, nil, testAnchors(), true)
	assert.Equal(t, []Color{blue, green, red}, stops)
}

func TestResolveStopsSingleAnchor(t *testing.T) {
	anchors := map[float64]Color{0.5: purple}

	stops := ResolveStops(0.0, nil, anchors, true)
	assert.Equal(t, []Color{purple, purple}, stops, "below the only anchor")

	stops = ResolveStops(0.9, nil, anchors, true)
	assert.Equal(t, []Color{purple, purple}, stops, "past the only anchor")
}

func TestResolveStopsDeterministicOrder(t *testing.T) {
	// Map iteration order varies; the walk must not.
	for i := 0; i < 50; i++ {
		stops := ResolveStops(1.0, nil, testAnchors(), true)
		assert.Equal(t, []Color{blue, green, red}, stops)
	}
}

func TestResolveStopsDoesNotMutateAnchors(t *testing.T) {
	anchors := testAnchors()
	ResolveStops(0.5, nil, anchors, true)
	assert.Equal(t, testAnchors(), anchors)
}
