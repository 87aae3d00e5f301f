package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradbar/gradbar/internal/ui"
)

var (
	renderPercent float64
	renderWidth   int
	renderTheme   string
	renderBlend   string
	renderBare    bool
)

// renderCmd renders a single progress bar to stdout.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a progress bar at a fixed percentage",
	Long: `Render one themed progress bar and exit.

Percent is clamped to 0-100. The bar fill is a linear gradient over the
theme's color stops; segmented themes resolve their stops from the
current progress before painting.

Examples:
  gradbar render --percent 64
  gradbar render --percent 80 --theme synthwave --width 50 --blend hcl
  gradbar render --percent 45 --bare --no-color`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		th, err := reg.Get(cfg.ThemeName(renderTheme))
		if err != nil {
			return err
		}

		blend, err := resolveBlend(renderBlend, cfg)
		if err != nil {
			return err
		}

		barCfg := ui.BarConfig{
			Width:       resolveWidth(renderWidth, cfg),
			Brackets:    !renderBare,
			ShowPercent: !renderBare,
			Blend:       blend,
			NoColor:     noColor(),
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderBar(renderPercent, th, barCfg))
		return nil
	},
}

func init() {
	renderCmd.Flags().Float64VarP(&renderPercent, "percent", "p", 0, "progress percentage (0-100)")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "bar width in characters")
	renderCmd.Flags().StringVarP(&renderTheme, "theme", "t", "", "theme name")
	renderCmd.Flags().StringVar(&renderBlend, "blend", "", "blend mode: rgb or hcl")
	renderCmd.Flags().BoolVar(&renderBare, "bare", false, "bar only, no brackets or percentage")
	_ = renderCmd.MarkFlagRequired("percent")

	rootCmd.AddCommand(renderCmd)
}
