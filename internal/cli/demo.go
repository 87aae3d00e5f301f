package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/tui"
	"github.com/gradbar/gradbar/internal/ui"
)

var (
	demoTheme    string
	demoWidth    int
	demoBlend    string
	demoDuration time.Duration
)

// demoCmd runs the animated theme demo.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Animate progress bars across themes",
	Long: `Run an animated sweep of progress bars, one per theme.

With --theme, only that theme animates. With --theme all (or no flag on a
non-interactive terminal) every registered theme is shown. On an
interactive terminal with no flag, a picker is offered first.

Keyboard shortcuts:
  space / p  Pause
  r          Restart the sweep
  b          Toggle rgb/hcl blending
  q / Esc    Quit

Examples:
  gradbar demo
  gradbar demo --theme synthwave --duration 3s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		blend, err := resolveBlend(demoBlend, cfg)
		if err != nil {
			return err
		}

		name := demoTheme
		if name == "" {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				picked, err := ui.PickTheme(append([]string{"all"}, reg.Names()...))
				if err != nil {
					return err
				}
				name = picked
			} else {
				name = "all"
			}
		}

		themes, err := demoThemeSet(reg, name)
		if err != nil {
			return err
		}

		return tui.Run(themes, blend, resolveWidth(demoWidth, cfg), demoDuration)
	},
}

// demoThemeSet expands "all" to every registered theme in name order.
func demoThemeSet(reg *theme.Registry, name string) ([]theme.Theme, error) {
	if name == "all" {
		themes := make([]theme.Theme, 0, reg.Len())
		for _, n := range reg.Names() {
			th, err := reg.Get(n)
			if err != nil {
				return nil, err
			}
			themes = append(themes, th)
		}
		return themes, nil
	}

	th, err := reg.Get(name)
	if err != nil {
		return nil, err
	}
	return []theme.Theme{th}, nil
}

func init() {
	demoCmd.Flags().StringVarP(&demoTheme, "theme", "t", "", "theme name, or 'all'")
	demoCmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "bar width in characters")
	demoCmd.Flags().StringVar(&demoBlend, "blend", "", "blend mode: rgb or hcl")
	demoCmd.Flags().DurationVar(&demoDuration, "duration", 5*time.Second, "time for one 0-100% sweep")

	rootCmd.AddCommand(demoCmd)
}
