package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrecision = 2
	defaultSteps     = 10
	defaultLogLevel  = "warn"
	maxPrecision     = 10

	envPrefix = "MOVLOAD_"
)

// Config aggregates the inputs of one analysis resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// Problem inputs
	Span    float64 // L (m)
	W1      float64 // leading load (kN)
	W2      float64 // trailing load (kN)
	Spacing float64 // x (m)

	// Output
	Precision int // decimal places in text reports
	Steps     int // influence table intervals

	Strict   bool   // reject spacing >= span
	LogLevel string // debug, info, warn, error
}

// yamlConfig represents the YAML configuration file structure.
// Pointers tell an absent key apart from an explicit zero.
type yamlConfig struct {
	Problem  yamlProblem `yaml:"problem"`
	Output   yamlOutput  `yaml:"output"`
	Strict   *bool       `yaml:"strict"`
	LogLevel string      `yaml:"log_level"`
}

type yamlProblem struct {
	Span    *float64 `yaml:"span"`
	W1      *float64 `yaml:"w1"`
	W2      *float64 `yaml:"w2"`
	Spacing *float64 `yaml:"spacing"`
}

type yamlOutput struct {
	Precision *int `yaml:"precision"`
	Steps     *int `yaml:"steps"`
}

// CLIOverrides holds command-line flag overrides. Nil fields were not set.
type CLIOverrides struct {
	ConfigFile string
	Span       *float64
	W1         *float64
	W2         *float64
	Spacing    *float64
	Precision  *int
	Steps      *int
	Strict     *bool
	LogLevel   *string
}

// Load resolves configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values. Problem inputs have no
// default and stay zero until a source provides them.
func defaultConfig() Config {
	return Config{
		Precision: defaultPrecision,
		Steps:     defaultSteps,
		LogLevel:  defaultLogLevel,
	}
}

func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	setFloat(&cfg.Span, yamlCfg.Problem.Span)
	setFloat(&cfg.W1, yamlCfg.Problem.W1)
	setFloat(&cfg.W2, yamlCfg.Problem.W2)
	setFloat(&cfg.Spacing, yamlCfg.Problem.Spacing)

	if yamlCfg.Output.Precision != nil {
		cfg.Precision = *yamlCfg.Output.Precision
	}
	if yamlCfg.Output.Steps != nil {
		cfg.Steps = *yamlCfg.Output.Steps
	}
	if yamlCfg.Strict != nil {
		cfg.Strict = *yamlCfg.Strict
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

// applyEnvConfig reads MOVLOAD_* variables. Unlike YAML keys, a malformed
// variable is an error so a typo in a shell profile does not go unnoticed.
func applyEnvConfig(cfg *Config) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"SPAN", &cfg.Span},
		{"W1", &cfg.W1},
		{"W2", &cfg.W2},
		{"SPACING", &cfg.Spacing},
	}
	for _, f := range floats {
		raw := lookupEnv(f.key)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s%s: invalid number %q", envPrefix, f.key, raw)
		}
		*f.dst = value
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PRECISION", &cfg.Precision},
		{"STEPS", &cfg.Steps},
	}
	for _, i := range ints {
		raw := lookupEnv(i.key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s: invalid integer %q", envPrefix, i.key, raw)
		}
		*i.dst = value
	}

	if raw := lookupEnv("STRICT"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%sSTRICT: invalid boolean %q", envPrefix, raw)
		}
		cfg.Strict = value
	}

	if level := lookupEnv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	setFloat(&cfg.Span, overrides.Span)
	setFloat(&cfg.W1, overrides.W1)
	setFloat(&cfg.W2, overrides.W2)
	setFloat(&cfg.Spacing, overrides.Spacing)

	if overrides.Precision != nil {
		cfg.Precision = *overrides.Precision
	}
	if overrides.Steps != nil {
		cfg.Steps = *overrides.Steps
	}
	if overrides.Strict != nil {
		cfg.Strict = *overrides.Strict
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig checks output and logging settings. Problem inputs are
// validated when the problem is built.
func validateConfig(cfg Config) error {
	if cfg.Precision < 0 || cfg.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, cfg.Precision)
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", cfg.Steps)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
