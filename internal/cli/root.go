package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradbar/gradbar/internal/config"
	"github.com/gradbar/gradbar/internal/errors"
	"github.com/gradbar/gradbar/internal/ui"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd is the base command for gradbar.
var rootCmd = &cobra.Command{
	Use:   "gradbar",
	Short: "Gradient progress bars for the terminal",
	Long: `gradbar renders horizontal progress bars whose fill color varies
with progress: plain multi-color gradients, or "segmented" themes where
colors are anchored at progress fractions and smoothly interpolated
between anchors.

Examples:
  gradbar render --percent 64
  gradbar render --percent 80 --theme synthwave --width 50
  seq 0 5 100 | gradbar watch --theme heat
  gradbar demo`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable ANSI colors")
}

// loadConfig resolves and loads the effective config.
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(configFlag)
}

// noColor reports whether styled output should be suppressed, from the
// --no-color flag or the NO_COLOR convention.
func noColor() bool {
	return noColorFlag || os.Getenv("NO_COLOR") != ""
}

// resolveBlend picks the blend mode from flag then config.
func resolveBlend(flag string, cfg *config.Config) (ui.BlendMode, error) {
	name := flag
	if name == "" {
		name = cfg.Blend
	}
	mode, ok := ui.ParseBlendMode(name)
	if !ok {
		return "", errors.New(errors.ErrRender,
			fmt.Sprintf("Unknown blend mode '%s'", name),
			"Use 'rgb' or 'hcl'")
	}
	return mode, nil
}

// resolveWidth picks the bar width from flag then config.
func resolveWidth(flag int, cfg *config.Config) int {
	if flag > 0 {
		return flag
	}
	if cfg.Width > 0 {
		return cfg.Width
	}
	return 30
}
