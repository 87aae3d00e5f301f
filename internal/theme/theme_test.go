package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradbar/gradbar/internal/errors"
	"github.com/gradbar/gradbar/pkg/gradient"
)

func TestNewPlainTheme(t *testing.T) {
	th, err := New("dusk", false, []string{"#1e1b4b", "#7c3aed"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "dusk", th.Name)
	assert.False(t, th.Segmented)
	assert.Equal(t, []gradient.Color{"#1e1b4b", "#7c3aed"}, th.Colors)
	assert.Nil(t, th.Anchors)
}

func TestNewSegmentedTheme(t *testing.T) {
	th, err := New("custom", true, nil, []Anchor{
		{At: 0.4, Color: "#2563eb"},
		{At: 0.6, Color: "#16a34a"},
		{At: 1.0, Color: "#dc2626"},
	})
	require.NoError(t, err)

	assert.True(t, th.Segmented)
	require.Len(t, th.Anchors, 3)
	assert.Equal(t, gradient.Color("#2563eb"), th.Anchors[0.4])
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		segmented bool
		colors    []string
		anchors   []Anchor
	}{
		{"invalid color", false, []string{"chartreuse"}, nil},
		{"invalid anchor color", true, nil, []Anchor{{At: 0.5, Color: "#12345"}}},
		{"duplicate anchor fraction", true, nil, []Anchor{
			{At: 0.5, Color: "#ff0000"},
			{At: 0.5, Color: "#00ff00"},
		}},
		{"no colors at all", false, nil, nil},
		{"segmented without anchors", true, []string{"#ff0000"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", tt.segmented, tt.colors, tt.anchors)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrTheme))
		})
	}
}

func TestStopsDelegatesToResolver(t *testing.T) {
	th, err := New("custom", true, nil, []Anchor{
		{At: 0.4, Color: "#2563eb"},
		{At: 0.6, Color: "#16a34a"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]gradient.Color{"#2563eb", "#2563eb"},
		th.Stops(0.0), "below first anchor duplicates it")
	assert.Equal(t,
		[]gradient.Color{"#2563eb", "#16a34a"},
		th.Stops(0.7), "all anchors reached")
}

func TestStopsPlainThemePassthrough(t *testing.T) {
	th, err := New("dusk", false, []string{"#1e1b4b", "#7c3aed"}, nil)
	require.NoError(t, err)

	assert.Equal(t, th.Colors, th.Stops(0.0))
	assert.Equal(t, th.Colors, th.Stops(1.0))
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"heat", "synthwave", "ocean", "forest", "mono"} {
		th, err := r.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, th.Name)
	}

	_, err := r.Get(DefaultName)
	assert.NoError(t, err, "default theme must be registered")
}

func TestRegistryUnknownTheme(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("lava")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTheme))
}

func TestRegistryUserThemeShadowsBuiltin(t *testing.T) {
	r := NewRegistry()
	custom, err := New("heat", false, []string{"#ffffff"}, nil)
	require.NoError(t, err)

	r.Register(custom)
	got, err := r.Get("heat")
	require.NoError(t, err)
	assert.False(t, got.Segmented)
	assert.Equal(t, []gradient.Color{"#ffffff"}, got.Colors)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()

	assert.Len(t, names, r.Len())
	assert.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i], "names should be sorted")
	}
}

func TestBuiltinThemesAreValid(t *testing.T) {
	// Every builtin color must decode to something other than fallback
	// black (unless it literally is black).
	r := NewRegistry()
	for _, name := range r.Names() {
		th, err := r.Get(name)
		require.NoError(t, err)

		for _, c := range th.Colors {
			assert.True(t, c.Valid(), "theme %s color %s", name, c)
		}
		for at, c := range th.Anchors {
			assert.True(t, c.Valid(), "theme %s anchor %g color %s", name, at, c)
		}
		if th.Segmented {
			assert.NotEmpty(t, th.Anchors, "segmented theme %s needs anchors", name)
		} else {
			assert.NotEmpty(t, th.Colors, "plain theme %s needs colors", name)
		}
	}
}
