// Package config provides configuration management for promptpress using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/promptpress/promptpress/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "promptpress"

// Defaults applied when no config file or flag overrides them.
const (
	// DefaultRatio is the target compression multiple.
	DefaultRatio = 10.0

	// DefaultTolerance is the accepted relative deviation from the target
	// ratio when the forced-keep set does not exhaust the budget.
	DefaultTolerance = 0.10

	// DefaultMaxFileSize caps how much of a source document is read.
	DefaultMaxFileSize = 1 << 20 // 1 MiB
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// Ratio is the default target compression multiple (>= 1.0).
	Ratio float64 `mapstructure:"ratio" yaml:"ratio"`

	// Tolerance is the accepted relative deviation from the target ratio.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`

	// PreserveCode controls whether code-fence and heading markers are
	// added to the forced-keep marker list.
	PreserveCode bool `mapstructure:"preserve_code" yaml:"preserve_code"`

	// MarkersFile optionally points at a TOML marker profile that
	// replaces the builtin forced-keep list.
	MarkersFile string `mapstructure:"markers_file" yaml:"markers_file"`

	// MaxFileSize caps how many bytes of a source document are read.
	MaxFileSize int64 `mapstructure:"max_file_size" yaml:"max_file_size"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("PROMPTPRESS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("ratio", DefaultRatio)
	viper.SetDefault("tolerance", DefaultTolerance)
	viper.SetDefault("preserve_code", true)
	viper.SetDefault("max_file_size", DefaultMaxFileSize)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with the builtin defaults.
func Default() *Config {
	return &Config{
		Version:      1,
		Ratio:        DefaultRatio,
		Tolerance:    DefaultTolerance,
		PreserveCode: true,
		MaxFileSize:  DefaultMaxFileSize,
	}
}
