package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .gradbar.yaml configuration file.
type Config struct {
	Version      int                    `yaml:"version" mapstructure:"version"`
	DefaultTheme string                 `yaml:"default_theme" mapstructure:"default_theme"`
	Width        int                    `yaml:"width" mapstructure:"width"`
	Blend        string                 `yaml:"blend" mapstructure:"blend"`
	Themes       map[string]ThemeConfig `yaml:"themes" mapstructure:"themes"`
}

// ThemeConfig defines a user theme.
type ThemeConfig struct {
	// Segmented selects anchor-based resolution over the plain color list.
	Segmented bool `yaml:"segmented" mapstructure:"segmented"`

	// Colors is the fallback gradient stop list, first to last.
	Colors []string `yaml:"colors" mapstructure:"colors"`

	// Anchors pin colors to progress fractions. Only used when segmented.
	Anchors []AnchorConfig `yaml:"anchors" mapstructure:"anchors"`
}

// AnchorConfig is one (fraction, color) pair in a segmented theme.
type AnchorConfig struct {
	At    float64 `yaml:"at" mapstructure:"at"`
	Color string  `yaml:"color" mapstructure:"color"`
}

// Default returns the config used when no file is found.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Width:   30,
		Blend:   "rgb",
	}
}
