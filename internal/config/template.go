package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradbar/gradbar/internal/errors"
)

// starterConfig is what 'gradbar init' writes: defaults plus one sample
// segmented theme showing the anchor syntax.
func starterConfig() *Config {
	cfg := Default()
	cfg.DefaultTheme = "heat"
	cfg.Themes = map[string]ThemeConfig{
		"deploy": {
			Segmented: true,
			Anchors: []AnchorConfig{
				{At: 0.4, Color: "#2563eb"},
				{At: 0.6, Color: "#16a34a"},
				{At: 1.0, Color: "#dc2626"},
			},
		},
	}
	return cfg
}

// WriteStarter writes the starter config to path. Refuses to overwrite an
// existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite it")
		}
	}

	data, err := yaml.Marshal(starterConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize starter config", "")
	}

	header := []byte("# gradbar configuration\n# Themes: plain gradients use 'colors'; segmented themes anchor\n# colors at progress fractions and interpolate between them.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
