// Package config provides configuration management for the flight data cleaner.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingRouteSeparator    = errors.New("pipeline.route_separator is required")
	ErrInvalidCodeStep          = errors.New("pipeline.code_step must be at least 1")
	ErrMissingOutputPath        = errors.New("output.path is required")
	ErrInvalidOutputFormat      = errors.New("output.format must be 'csv'")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat         = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Source     SourceConfig     `yaml:"source"`
	Retry      RetryPolicy      `yaml:"retry"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SourceConfig selects where the raw flight table comes from. When both URL
// and File are empty the embedded sample dataset is used.
type SourceConfig struct {
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

// IsLocalFile returns true if this source reads a local file.
func (s *SourceConfig) IsLocalFile() bool {
	return s.File != ""
}

// IsRemote returns true if this source fetches over HTTP.
func (s *SourceConfig) IsRemote() bool {
	return s.File == "" && s.URL != ""
}

// UseSample returns true if no external source is configured.
func (s *SourceConfig) UseSample() bool {
	return s.File == "" && s.URL == ""
}

// RetryPolicy defines retry behavior for remote sources.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the HTTP timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// PipelineConfig tunes the cleaning rules.
type PipelineConfig struct {
	// RouteSeparator splits the combined To_From field into its two halves.
	RouteSeparator string `yaml:"route_separator"`
	// CodeStep is the common difference of the flight-code progression.
	// Codes are assumed, not verified, to increment by this step per row.
	CodeStep int `yaml:"code_step"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Path          string `yaml:"path"`
	Format        string `yaml:"format"`
	ShowPreview   bool   `yaml:"show_preview"`
	WriteManifest bool   `yaml:"write_manifest"`
}

// ValidationConfig controls the post-clean invariant checks.
type ValidationConfig struct {
	Enabled bool `yaml:"enabled"`
	// Strict turns validation findings into a pipeline failure instead of a
	// manifest flag.
	Strict bool `yaml:"strict"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		Pipeline: PipelineConfig{
			RouteSeparator: "_",
			CodeStep:       10,
		},
		Output: OutputConfig{
			Path:          "Cleaned_Airline_Data.csv",
			Format:        "csv",
			ShowPreview:   true,
			WriteManifest: true,
		},
		Validation: ValidationConfig{
			Enabled: true,
			Strict:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Validate retry policy
	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	// Validate pipeline config
	if c.Pipeline.RouteSeparator == "" {
		return ErrMissingRouteSeparator
	}

	if c.Pipeline.CodeStep < 1 {
		return ErrInvalidCodeStep
	}

	// Validate output config
	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Output.Format != "csv" {
		return ErrInvalidOutputFormat
	}

	// Validate logging config
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}
