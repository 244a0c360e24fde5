package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// appName names the user config directory.
	appName = "stepper"

	// envPrefix is prepended to every environment override.
	envPrefix = "STEPPER"

	// ConfigPathEnv names the environment variable holding an explicit config file.
	ConfigPathEnv = "STEPPER_CONFIG_PATH"

	// configFileName is the file looked up in the user config directory.
	configFileName = "config.yaml"

	// localConfigFile is the fallback looked up in the working directory.
	localConfigFile = "stepper.yaml"
)

// Loader handles Viper-based configuration loading.
//
// Use [NewLoader] to create one and [Loader.Load] to resolve configuration
// from the standard locations, or [Loader.LoadFromFile] for an explicit file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a [Loader] with defaults and environment bindings applied.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	return &Loader{v: v}
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("sequence.path", cfg.Sequence.Path)
	v.SetDefault("sequence.steps", cfg.Sequence.Steps)
	v.SetDefault("sequence.circular", cfg.Sequence.Circular)
	v.SetDefault("sequence.initial", cfg.Sequence.Initial)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("output.layout", cfg.Output.Layout)
	v.SetDefault("output.active_marker", cfg.Output.ActiveMarker)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Load resolves configuration from the standard locations.
//
// The first existing file among STEPPER_CONFIG_PATH, [DefaultConfigPath] and
// ./stepper.yaml is read. When none exists, defaults plus environment
// overrides are returned. A file named by STEPPER_CONFIG_PATH that cannot be
// read is an error.
func (l *Loader) Load() (*Config, error) {
	if explicit := os.Getenv(ConfigPathEnv); explicit != "" {
		return l.LoadFromFile(explicit)
	}

	for _, candidate := range []string{DefaultConfigPath(), localConfigFile} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return l.LoadFromFile(candidate)
		}
	}

	return l.unmarshal()
}

// LoadFromFile reads configuration from path, layered over defaults and under
// environment overrides.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
func MustLoad() *Config {
	cfg, err := NewLoader().Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// ConfigDir returns the platform-standard stepper config directory, or an
// empty string when the user config directory cannot be determined.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, appName)
}

// DefaultConfigPath returns the config file path inside [ConfigDir].
func DefaultConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, configFileName)
}
