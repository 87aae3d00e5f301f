// Package theme defines named gradient themes for progress bars.
//
// A theme is either a plain gradient (an ordered color list painted
// edge-to-edge) or a segmented gradient (colors anchored at progress
// fractions, resolved per-update by the gradient engine). Builtin themes
// cover the common cases; user themes come from the config file.
package theme

import (
	"fmt"
	"sort"

	"github.com/gradbar/gradbar/internal/errors"
	"github.com/gradbar/gradbar/pkg/gradient"
)

// Theme is a named color scheme for a progress bar fill.
type Theme struct {
	// Name identifies the theme in config and CLI flags.
	Name string

	// Colors is the fallback stop list, painted verbatim when the theme
	// is not segmented.
	Colors []gradient.Color

	// Anchors maps progress fractions to committed colors. Only used when
	// Segmented is true.
	Anchors map[float64]gradient.Color

	// Segmented selects the anchor-walk resolver over the plain color list.
	Segmented bool
}

// Stops returns the gradient stops to paint at the given progress.
// Progress should already be clamped to [0,1] by the caller.
func (t Theme) Stops(progress float64) []gradient.Color {
	return gradient.ResolveStops(progress, t.Colors, t.Anchors, t.Segmented)
}

// Anchor pairs a progress fraction with a color, as written in config.
type Anchor struct {
	At    float64
	Color string
}

// New builds a validated theme. It rejects undecodable colors, duplicate
// anchor fractions, and themes with no colors at all. Duplicate fractions
// are a configuration error: the resolver treats anchor keys as a true set,
// so a collision must fail here rather than silently drop a color.
func New(name string, segmented bool, colors []string, anchors []Anchor) (Theme, error) {
	t := Theme{Name: name, Segmented: segmented}

	for _, c := range colors {
		col := gradient.Color(c)
		if !col.Valid() {
			return Theme{}, errors.New(errors.ErrTheme,
				fmt.Sprintf("Theme '%s' has invalid color '%s'", name, c),
				"Colors must be hex: #rgb, #rgba, #rrggbb, or #rrggbbaa")
		}
		t.Colors = append(t.Colors, col)
	}

	if len(anchors) > 0 {
		t.Anchors = make(map[float64]gradient.Color, len(anchors))
		for _, a := range anchors {
			col := gradient.Color(a.Color)
			if !col.Valid() {
				return Theme{}, errors.New(errors.ErrTheme,
					fmt.Sprintf("Theme '%s' has invalid anchor color '%s' at %g", name, a.Color, a.At),
					"Colors must be hex: #rgb, #rgba, #rrggbb, or #rrggbbaa")
			}
			if _, dup := t.Anchors[a.At]; dup {
				return Theme{}, errors.New(errors.ErrTheme,
					fmt.Sprintf("Theme '%s' has two anchors at fraction %g", name, a.At),
					"Anchor fractions must be unique within a theme")
			}
			t.Anchors[a.At] = col
		}
	}

	if len(t.Colors) == 0 && len(t.Anchors) == 0 {
		return Theme{}, errors.New(errors.ErrTheme,
			fmt.Sprintf("Theme '%s' has no colors", name),
			"Define at least one entry under 'colors' or 'anchors'")
	}

	if segmented && len(t.Anchors) == 0 {
		return Theme{}, errors.New(errors.ErrTheme,
			fmt.Sprintf("Theme '%s' is segmented but defines no anchors", name),
			"Add anchors, or set 'segmented: false' to use the plain color list")
	}

	return t, nil
}

// Registry holds themes by name.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry returns a registry seeded with the builtin themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme, len(builtins))}
	for _, t := range builtins {
		r.themes[t.Name] = t
	}
	return r
}

// Register adds or replaces a theme. User themes may shadow builtins.
func (r *Registry) Register(t Theme) {
	r.themes[t.Name] = t
}

// Get looks up a theme by name.
func (r *Registry) Get(name string) (Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrTheme,
			fmt.Sprintf("Unknown theme '%s'", name),
			"Run 'gradbar themes' to list available themes")
	}
	return t, nil
}

// Names returns all registered theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.themes)
}
