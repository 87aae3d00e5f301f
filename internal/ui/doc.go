// Package ui renders gradbar's terminal output.
//
// # Components Overview
//
//	RenderBar     - Themed progress bar with a gradient fill
//	Ramp          - Samples a gradient stop list across bar cells
//	RenderSwatch  - Small full-progress preview strip for theme listings
//	RenderHeader  - Branded CLI header
//	PickTheme     - Interactive theme selector (Huh form)
//
// # Rendering model
//
// A bar render clamps the percentage, resolves the theme's gradient stops
// for that progress, and spreads the stops across the filled cells. Between
// stops, cell colors are mixed either channel-wise in RGB (matching the
// gradient engine) or in HCL space for perceptually even transitions.
// Adjacent same-colored cells are batched into one styled run.
//
// Colors degrade with the terminal profile through Lip Gloss; pass
// BarConfig.NoColor to drop styling entirely (for --no-color or piped
// output).
package ui
