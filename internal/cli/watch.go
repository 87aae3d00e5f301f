package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gradbar/gradbar/internal/errors"
	"github.com/gradbar/gradbar/internal/logger"
	"github.com/gradbar/gradbar/internal/theme"
	"github.com/gradbar/gradbar/internal/ui"
)

var (
	watchWidth int
	watchTheme string
	watchBlend string
)

var watchLog = logger.NewEnvLogger("[watch]")

// watchCmd redraws a progress bar from percentages read on stdin.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw a progress bar from percentages on stdin",
	Long: `Read progress percentages (0-100, one per line) from stdin and
redraw the bar in place as they arrive. Blank lines are skipped;
unparseable lines are ignored with a debug log. A final newline is
printed on EOF so the last state stays visible.

Examples:
  seq 0 5 100 | gradbar watch
  my-build --progress | gradbar watch --theme heat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		th, err := reg.Get(cfg.ThemeName(watchTheme))
		if err != nil {
			return err
		}

		blend, err := resolveBlend(watchBlend, cfg)
		if err != nil {
			return err
		}

		barCfg := ui.BarConfig{
			Width:       watchBarWidth(cfg.Width),
			Brackets:    true,
			ShowPercent: true,
			Blend:       blend,
			NoColor:     noColor(),
		}

		return runWatch(cmd.InOrStdin(), cmd.OutOrStdout(), th, barCfg)
	},
}

// watchBarWidth prefers the flag, then the terminal width (minus chrome),
// then the config width.
func watchBarWidth(configWidth int) int {
	if watchWidth > 0 {
		return watchWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 12 {
		// brackets + " 100%" + margin
		return w - 10
	}
	if configWidth > 0 {
		return configWidth
	}
	return 30
}

func runWatch(in io.Reader, out io.Writer, th theme.Theme, cfg ui.BarConfig) error {
	scanner := bufio.NewScanner(in)
	rendered := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		percent, err := strconv.ParseFloat(line, 64)
		if err != nil {
			watchLog.Debug("skipping unparseable line %q", line)
			continue
		}

		fmt.Fprintf(out, "\r%s", ui.RenderBar(ui.ClampPercent(percent), th, cfg))
		rendered = true
	}

	if err := scanner.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed reading progress from stdin", "")
	}

	if rendered {
		fmt.Fprintln(out)
	}
	return nil
}

func init() {
	watchCmd.Flags().IntVarP(&watchWidth, "width", "w", 0, "bar width in characters")
	watchCmd.Flags().StringVarP(&watchTheme, "theme", "t", "", "theme name")
	watchCmd.Flags().StringVar(&watchBlend, "blend", "", "blend mode: rgb or hcl")

	rootCmd.AddCommand(watchCmd)
}
