// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     config
// Description: Application configuration (TOML/YAML files, env overrides)
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mCalc/internal/calculator"
	"github.com/msto63/mCalc/pkg/core/logging"
)

// ErrConfigNotFound is returned by Load when the file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	TUI     TUIConfig     `toml:"tui" yaml:"tui"`

	// path of the file the config was loaded from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment" env:"ENVIRONMENT"`
	LogLevel    string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat   string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
	LogFile     string `toml:"log_file" yaml:"log_file" env:"LOG_FILE"`
}

// DisplayConfig holds the display formatter limits
type DisplayConfig struct {
	MaxLength      int     `toml:"max_length" yaml:"max_length" env:"MAX_LENGTH"`
	MaxMagnitude   float64 `toml:"max_magnitude" yaml:"max_magnitude" env:"MAX_MAGNITUDE"`
	Precision      int     `toml:"precision" yaml:"precision" env:"PRECISION"`
	// nil means unset; 0 is a valid setting ("1e+9")
	ExponentDigits *int    `toml:"exponent_digits" yaml:"exponent_digits" env:"EXPONENT_DIGITS"`
}

// ThemeConfig holds the keypad colors
type ThemeConfig struct {
	Background       string `toml:"background" yaml:"background"`
	DisplayFg        string `toml:"display_fg" yaml:"display_fg"`
	NumberBg         string `toml:"number_bg" yaml:"number_bg"`
	NumberFg         string `toml:"number_fg" yaml:"number_fg"`
	FunctionBg       string `toml:"function_bg" yaml:"function_bg"`
	FunctionFg       string `toml:"function_fg" yaml:"function_fg"`
	OperatorBg       string `toml:"operator_bg" yaml:"operator_bg"`
	OperatorFg       string `toml:"operator_fg" yaml:"operator_fg"`
	ActiveOperatorBg string `toml:"active_operator_bg" yaml:"active_operator_bg"`
	ActiveOperatorFg string `toml:"active_operator_fg" yaml:"active_operator_fg"`
	Focus            string `toml:"focus" yaml:"focus"`
}

// TUIConfig holds terminal UI settings
type TUIConfig struct {
	Mouse bool `toml:"mouse" yaml:"mouse" env:"MOUSE"`
	Watch bool `toml:"watch" yaml:"watch" env:"WATCH"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{TUI: TUIConfig{Mouse: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	cfg.path = path

	return cfg, nil
}

// Parse decodes content in the given format and applies defaults
func Parse(content []byte, format Format) (*Config, error) {
	// mouse support is on unless a file turns it off
	cfg := &Config{TUI: TUIConfig{Mouse: true}}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return cfg, nil
}

// LoadFromEnv resolves the config file the way the CLI does: explicit path,
// MCALC_CONFIG, then the default locations. Without any file the defaults
// are used. Environment overrides (MCALC_*) are applied last.
func LoadFromEnv(explicitPath string) (*Config, error) {
	// Ignore errors - the .env file is optional
	_ = godotenv.Load()

	path := explicitPath
	if path == "" {
		path = os.Getenv("MCALC_CONFIG")
	}
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched for a config file
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mcalc", "config.toml"))
	}
	return paths
}

// ApplyEnv overrides settings from MCALC_* environment variables
func (c *Config) ApplyEnv() error {
	opts := env.Options{Prefix: "MCALC_"}
	for _, target := range []interface{}{&c.General, &c.Display, &c.TUI} {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return fmt.Errorf("failed to apply environment: %w", err)
		}
	}
	c.applyDefaults()
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Formatter returns the display formatter described by the config
func (c *Config) Formatter() calculator.Formatter {
	digits := calculator.DefaultExponentDigits
	if c.Display.ExponentDigits != nil {
		digits = *c.Display.ExponentDigits
	}
	return calculator.Formatter{
		MaxLength:      c.Display.MaxLength,
		MaxMagnitude:   c.Display.MaxMagnitude,
		Precision:      c.Display.Precision,
		ExponentDigits: digits,
	}
}

// LoggerConfig returns the logger settings for service
func (c *Config) LoggerConfig(service string) logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig(service)
	cfg.Level = c.General.LogLevel
	cfg.Format = c.General.LogFormat
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "mCalc"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = logging.FormatJSON
	}

	// Display
	def := calculator.DefaultFormatter()
	if c.Display.MaxLength == 0 {
		c.Display.MaxLength = def.MaxLength
	}
	if c.Display.MaxMagnitude == 0 {
		c.Display.MaxMagnitude = def.MaxMagnitude
	}
	if c.Display.Precision == 0 {
		c.Display.Precision = def.Precision
	}
	if c.Display.ExponentDigits == nil {
		digits := def.ExponentDigits
		c.Display.ExponentDigits = &digits
	}

	// Theme
	if c.Theme.Background == "" {
		c.Theme.Background = "#000000"
	}
	if c.Theme.DisplayFg == "" {
		c.Theme.DisplayFg = "#FFFFFF"
	}
	if c.Theme.NumberBg == "" {
		c.Theme.NumberBg = "#333333"
	}
	if c.Theme.NumberFg == "" {
		c.Theme.NumberFg = "#FFFFFF"
	}
	if c.Theme.FunctionBg == "" {
		c.Theme.FunctionBg = "#A5A5A5"
	}
	if c.Theme.FunctionFg == "" {
		c.Theme.FunctionFg = "#000000"
	}
	if c.Theme.OperatorBg == "" {
		c.Theme.OperatorBg = "#FF9500"
	}
	if c.Theme.OperatorFg == "" {
		c.Theme.OperatorFg = "#FFFFFF"
	}
	if c.Theme.ActiveOperatorBg == "" {
		c.Theme.ActiveOperatorBg = "#FFFFFF"
	}
	if c.Theme.ActiveOperatorFg == "" {
		c.Theme.ActiveOperatorFg = "#FF9500"
	}
	if c.Theme.Focus == "" {
		c.Theme.Focus = "#06B6D4"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// ValidationError lists every invalid setting of a configuration
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	var problems []string

	if _, ok := logging.ParseLevel(c.General.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("general.log_level: unknown level %q", c.General.LogLevel))
	}
	if c.General.LogFormat != logging.FormatJSON && c.General.LogFormat != logging.FormatText {
		problems = append(problems, fmt.Sprintf("general.log_format: must be %q or %q", logging.FormatJSON, logging.FormatText))
	}

	if c.Display.MaxLength <= 0 {
		problems = append(problems, "display.max_length: must be positive")
	}
	if c.Display.MaxMagnitude <= 0 {
		problems = append(problems, "display.max_magnitude: must be positive")
	}
	if c.Display.Precision <= 0 || c.Display.Precision > calculator.MaxPrecision {
		problems = append(problems, fmt.Sprintf("display.precision: must be between 1 and %d", calculator.MaxPrecision))
	}
	if d := c.Display.ExponentDigits; d == nil || *d < 0 || *d > calculator.MaxExponentDigits {
		problems = append(problems, fmt.Sprintf("display.exponent_digits: must be between 0 and %d", calculator.MaxExponentDigits))
	}

	for name, color := range c.Theme.colors() {
		if !hexColor.MatchString(color) {
			problems = append(problems, fmt.Sprintf("theme.%s: %q is not a hex color", name, color))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (t ThemeConfig) colors() map[string]string {
	return map[string]string{
		"background":         t.Background,
		"display_fg":         t.DisplayFg,
		"number_bg":          t.NumberBg,
		"number_fg":          t.NumberFg,
		"function_bg":        t.FunctionBg,
		"function_fg":        t.FunctionFg,
		"operator_bg":        t.OperatorBg,
		"operator_fg":        t.OperatorFg,
		"active_operator_bg": t.ActiveOperatorBg,
		"active_operator_fg": t.ActiveOperatorFg,
		"focus":              t.Focus,
	}
}

// Encode writes the configuration in the given format
func (c *Config) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
	}

	return buf.Bytes(), nil
}
