// =============================================================================
// CSV Normalizer - Configuration Module
// =============================================================================
//
// This package loads the application configuration from a YAML file and
// applies defaults and validation. Batch mode needs the directory settings;
// single-file mode runs fine on Default() when no config file exists.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS (batch mode)
	// =========================================================================

	// InputDir is the directory scanned for input files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where normalized files are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where successfully processed input files are moved.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ReportDir is where per-run failure reports are written.
	// Default: "./reports"
	ReportDir string `yaml:"report_dir"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxErrors is the error budget: the number of per-line or per-field
	// failures tolerated before the run halts with a fatal error.
	// Default: 100
	MaxErrors int `yaml:"max_errors"`

	// Delimiter is the field separator of the input files. Must be a
	// single character.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration file at path, then applies
// defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./reports"
	}
	if cfg.MaxErrors == 0 {
		cfg.MaxErrors = 100
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ","
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate rejects configurations the processor cannot run with.
func validate(cfg *Config) error {
	if cfg.MaxErrors < 0 {
		return fmt.Errorf("max_errors must be positive, got %d", cfg.MaxErrors)
	}
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
