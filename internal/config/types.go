// Package config provides configuration loading and management for stepper.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The defaults work without any configuration file.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [SequenceConfig] locates or inlines the step sequence
//   - [OutputConfig] controls terminal rendering
//
// Configuration priority (highest to lowest):
//  1. Environment variables (STEPPER_ prefix, e.g. STEPPER_OUTPUT_COLOR)
//  2. Config file specified by STEPPER_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/stepper/config.yaml
//     - macOS: ~/Library/Application Support/stepper/config.yaml
//     - Windows: %APPDATA%\stepper\config.yaml
//  4. ./stepper.yaml
//  5. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
type Config struct {
	// Sequence locates the step sequence, or lists it inline.
	Sequence SequenceConfig `mapstructure:"sequence"`

	// Output contains terminal output formatting configuration.
	Output OutputConfig `mapstructure:"output"`

	// Log contains logging configuration.
	Log LogConfig `mapstructure:"log"`
}

// SequenceConfig describes where the step sequence comes from.
//
// A sequence file named by Path wins over inline Steps. Circular and Initial
// apply when the sequence file does not set them.
type SequenceConfig struct {
	// Path is a YAML or CSV sequence file. Empty means auto-discovery.
	Path string `mapstructure:"path"`

	// Steps is an inline list of bare step names.
	Steps []string `mapstructure:"steps"`

	// Circular enables wrap-around navigation.
	Circular bool `mapstructure:"circular"`

	// Initial is the step to start on. Empty means the first step.
	Initial string `mapstructure:"initial"`
}

// OutputConfig contains terminal output formatting configuration.
type OutputConfig struct {
	// Color enables ANSI colors and text styles.
	// Default: true
	Color bool `mapstructure:"color"`

	// Layout is "bar" (all steps on one line) or "list" (one step per line).
	// Default: "bar"
	Layout string `mapstructure:"layout"`

	// ActiveMarker prefixes the active step in the list layout.
	// Default: ">"
	ActiveMarker string `mapstructure:"active_marker"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	// Default: "WARN"
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color:        true,
			Layout:       "bar",
			ActiveMarker: ">",
		},
		Log: LogConfig{
			Level: "WARN",
		},
	}
}
