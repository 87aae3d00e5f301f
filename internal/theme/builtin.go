package theme

import "github.com/gradbar/gradbar/pkg/gradient"

// DefaultName is the theme used when neither flag nor config names one.
const DefaultName = "heat"

// Builtin themes. The heat anchors follow the usual resource-monitor
// severity split (healthy below 70%, warning to 90%, critical above);
// synthwave reuses the neon dashboard accents.
var builtins = []Theme{
	{
		Name:      "heat",
		Segmented: true,
		Anchors: map[float64]gradient.Color{
			0.0: "#39ff14", // neon green
			0.7: "#ffaa00", // electric amber
			0.9: "#ff0055", // hot red-pink
		},
	},
	{
		Name:   "synthwave",
		Colors: []gradient.Color{"#ff2e97", "#bf40ff", "#00ffff"},
	},
	{
		Name:   "ocean",
		Colors: []gradient.Color{"#0c4a6e", "#2563eb", "#06b6d4", "#67e8f9"},
	},
	{
		Name:      "forest",
		Segmented: true,
		Anchors: map[float64]gradient.Color{
			0.25: "#14532d",
			0.50: "#16a34a",
			0.75: "#4ade80",
			1.00: "#bbf7d0",
		},
	},
	{
		Name:   "mono",
		Colors: []gradient.Color{"#d4d4d4", "#d4d4d4"},
	},
}
