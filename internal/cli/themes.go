package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/ui"
)

var themesVerbose bool

// themesCmd lists registered themes with a gradient swatch each.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List builtin and config-defined themes. Each theme shows a
full-progress gradient swatch; --verbose adds the color definitions.

Examples:
  gradbar themes
  gradbar themes --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !noColor() {
			fmt.Fprint(out, ui.RenderHeader(ui.HeaderInfo{
				Version: formatVersion(version),
				Tagline: "Gradient progress bars",
			}))
		}
		defaultName := cfg.ThemeName("")

		for _, name := range reg.Names() {
			th, err := reg.Get(name)
			if err != nil {
				return err
			}

			marker := " "
			if name == defaultName {
				marker = "*"
			}

			swatch := ""
			if !noColor() {
				swatch = "  " + ui.RenderSwatch(th, ui.BlendRGB)
			}
			fmt.Fprintf(out, "%s %-12s%s\n", marker, name, swatch)

			if themesVerbose {
				printThemeDetail(out, th)
			}
		}
		return nil
	},
}

func printThemeDetail(out io.Writer, th theme.Theme) {
	if th.Segmented {
		fractions := make([]float64, 0, len(th.Anchors))
		for at := range th.Anchors {
			fractions = append(fractions, at)
		}
		sort.Float64s(fractions)
		for _, at := range fractions {
			fmt.Fprintf(out, "    %4.0f%%  %s\n", at*100, th.Anchors[at])
		}
	} else {
		for _, c := range th.Colors {
			fmt.Fprintf(out, "    %s\n", c)
		}
	}
}

func init() {
	themesCmd.Flags().BoolVarP(&themesVerbose, "verbose", "v", false, "show color definitions")

	rootCmd.AddCommand(themesCmd)
}
