package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gradbar/gradbar/internal/config"
	"github.com/gradbar/gradbar/internal/errors"
)

var initForce bool

// initCmd creates a starter .gradbar.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .gradbar.yaml configuration",
	Long: `Write a starter configuration to the current directory, including
a sample segmented theme showing the anchor syntax.

Examples:
  gradbar init
  gradbar init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot determine current directory",
				"Check directory permissions")
		}

		path := filepath.Join(cwd, config.ConfigFileName)
		if err := config.WriteStarter(path, initForce); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(initCmd)
}
