// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/slide-redesigner/internal/imagery"
	"github.com/jonathan/slide-redesigner/internal/layout"
	"github.com/jonathan/slide-redesigner/internal/typography"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SLIDE_WORKERS.
const EnvPrefix = "SLIDE"

// Config represents the CLI configuration loaded from a JSON or YAML file and the environment.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	TemplatesDir string `json:"templates_dir,omitempty" mapstructure:"templates_dir"` // Extra layout templates (.json/.yaml)
	AssetsDir    string `json:"assets_dir,omitempty" mapstructure:"assets_dir"`       // Deck asset root holding images_final/
	MetricsFile  string `json:"metrics_file,omitempty" mapstructure:"metrics_file"`   // Prometheus textfile output

	// Behavior
	Workers      int    `json:"workers,omitempty" mapstructure:"workers" validate:"gte=1,lte=256"`
	LogLevel     string `json:"log_level,omitempty" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string `json:"log_format,omitempty" mapstructure:"log_format" validate:"oneof=json console"`
	Verbose      bool   `json:"verbose,omitempty" mapstructure:"verbose"`
	Distribution string `json:"distribution,omitempty" mapstructure:"distribution" validate:"oneof=round_robin sequential"`

	// Rule sets
	Resolver   layout.ResolverRules `json:"resolver" mapstructure:"resolver"`
	Typography typography.Rules     `json:"typography" mapstructure:"typography"`
	Images     imagery.Rules        `json:"images" mapstructure:"images"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Workers:      4,
		LogLevel:     "info",
		LogFormat:    "console",
		Distribution: "round_robin",
		Resolver:     layout.DefaultResolverRules(),
		Typography:   typography.DefaultRules(),
		Images:       imagery.DefaultRules(),
	}
}

// envKeys are the keys that may be overridden from the environment.
var envKeys = []string{
	"templates_dir", "assets_dir", "metrics_file",
	"workers", "log_level", "log_format", "verbose", "distribution",
	"resolver.min_confidence", "resolver.min_margin", "resolver.grid_min_images",
	"typography.min_font_size", "typography.min_area",
}

// zeroableKeys are settings where an explicit 0 differs from "unset".
var zeroableKeys = []struct {
	name  string
	apply func(dst, src *Config)
}{
	{"resolver.min_confidence", func(dst, src *Config) { dst.Resolver.MinConfidence = src.Resolver.MinConfidence }},
	{"resolver.min_margin", func(dst, src *Config) { dst.Resolver.MinMargin = src.Resolver.MinMargin }},
}

// LoadConfig loads configuration from an optional file plus SLIDE_* environment
// variables, then fills anything unset from Defaults. An empty path reads the
// environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	merged := cfg.MergeWithDefaults(Defaults())
	// A zero gate threshold disables that check, so an explicit 0 survives the merge.
	for _, key := range zeroableKeys {
		if v.IsSet(key.name) {
			key.apply(&merged, &cfg)
		}
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Typography.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Images.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.TemplatesDir != "" {
		if info, err := os.Stat(c.TemplatesDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.AssetsDir == "" {
		result.AssetsDir = defaults.AssetsDir
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Distribution == "" {
		result.Distribution = defaults.Distribution
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	result.Resolver = mergeResolver(result.Resolver, defaults.Resolver)
	result.Typography = mergeTypography(result.Typography, defaults.Typography)
	result.Images = mergeImages(result.Images, defaults.Images)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func mergeResolver(r, d layout.ResolverRules) layout.ResolverRules {
	if r.MinConfidence == 0 {
		r.MinConfidence = d.MinConfidence
	}
	if r.MinMargin == 0 {
		r.MinMargin = d.MinMargin
	}
	if r.GridMinImages == 0 {
		r.GridMinImages = d.GridMinImages
	}
	if r.TableLayout == "" {
		r.TableLayout = d.TableLayout
	}
	if r.GridLayout == "" {
		r.GridLayout = d.GridLayout
	}
	if r.ImageFallback == "" {
		r.ImageFallback = d.ImageFallback
	}
	if r.TextFallback == "" {
		r.TextFallback = d.TextFallback
	}
	return r
}

func mergeTypography(r, d typography.Rules) typography.Rules {
	if len(r.Thresholds) == 0 {
		r.Thresholds = d.Thresholds
	}
	if r.MinFontSize == 0 {
		r.MinFontSize = d.MinFontSize
	}
	if len(r.Spacing) == 0 {
		r.Spacing = d.Spacing
	}
	if r.DefaultSpacing == 0 {
		r.DefaultSpacing = d.DefaultSpacing
	}
	if r.MinArea == 0 {
		r.MinArea = d.MinArea
	}
	return r
}

func mergeImages(r, d imagery.Rules) imagery.Rules {
	if len(r.ScaleTiers) == 0 {
		r.ScaleTiers = d.ScaleTiers
	}
	if r.DefaultScale == 0 {
		r.DefaultScale = d.DefaultScale
	}
	if len(r.CoverLayouts) == 0 {
		r.CoverLayouts = d.CoverLayouts
	}
	if r.BackgroundLayout == "" {
		r.BackgroundLayout = d.BackgroundLayout
	}
	if r.Overlay.Color == "" {
		r.Overlay = d.Overlay
	}
	return r
}
