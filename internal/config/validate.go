package config

import (
	"fmt"

	"github.com/gradbar/gradbar/internal/errors"
	"github.com/gradbar/gradbar/internal/theme"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but gradbar only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest gradbar release")
	}

	if cfg.Width < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Width %d is negative", cfg.Width),
			"Set 'width' to a positive bar width in characters")
	}

	if _, ok := parseBlend(cfg.Blend); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown blend mode '%s'", cfg.Blend),
			"Use 'rgb' or 'hcl'")
	}

	// Theme definitions are validated by building them.
	if _, err := cfg.Registry(); err != nil {
		return err
	}

	if cfg.DefaultTheme != "" {
		reg, _ := cfg.Registry()
		if _, err := reg.Get(cfg.DefaultTheme); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Default theme '%s' is not defined", cfg.DefaultTheme),
				"Set 'default_theme' to a builtin or a theme from the 'themes' section")
		}
	}

	return nil
}

// parseBlend mirrors the ui blend-mode names without importing the ui
// package from config.
func parseBlend(s string) (string, bool) {
	switch s {
	case "", "rgb":
		return "rgb", true
	case "hcl":
		return "hcl", true
	}
	return "", false
}

// Registry builds a theme registry from the builtins plus this config's
// theme definitions. User themes may shadow builtins by name.
func (c *Config) Registry() (*theme.Registry, error) {
	reg := theme.NewRegistry()

	for name, tc := range c.Themes {
		anchors := make([]theme.Anchor, 0, len(tc.Anchors))
		for _, a := range tc.Anchors {
			anchors = append(anchors, theme.Anchor{At: a.At, Color: a.Color})
		}

		th, err := theme.New(name, tc.Segmented, tc.Colors, anchors)
		if err != nil {
			return nil, err
		}
		reg.Register(th)
	}

	return reg, nil
}

// ThemeName resolves the theme to use: flag value first, then the config's
// default, then the builtin default.
func (c *Config) ThemeName(flag string) string {
	if flag != "" {
		return flag
	}
	if c.DefaultTheme != "" {
		return c.DefaultTheme
	}
	return theme.DefaultName
}
