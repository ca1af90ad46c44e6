// Package config provides configuration types, defaults, and persistence for signup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/signup/internal/i18n"
)

// DefaultPath is where a default config file is written when none is found.
const DefaultPath = ".signup/config.yaml"

// Exporter names accepted by tracing.exporter.
const (
	ExporterNone   = "none"
	ExporterFile   = "file"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all signup configuration.
type Config struct {
	Locale  string        `mapstructure:"locale"`
	Debug   bool          `mapstructure:"debug"`
	Form    FormConfig    `mapstructure:"form"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// FormConfig controls the registration form behavior.
type FormConfig struct {
	// SubmitDelay is how long the simulated registrar takes to answer.
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
	// BannerDuration is how long the success banner stays visible.
	BannerDuration time.Duration `mapstructure:"banner_duration"`
	// SimulateFailure makes the simulated registrar reject every call.
	SimulateFailure bool `mapstructure:"simulate_failure"`
}

// TracingConfig configures OpenTelemetry export of registration spans.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`
	FilePath     string  `mapstructure:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Locale: i18n.DefaultLocale,
		Form: FormConfig{
			SubmitDelay:    time.Second,
			BannerDuration: 5 * time.Second,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     ExporterFile,
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if _, err := i18n.Lookup(cfg.Locale); err != nil {
		return fmt.Errorf("%w: locale: %w", ErrInvalidConfig, err)
	}
	if cfg.Form.SubmitDelay <= 0 {
		return fmt.Errorf("%w: form.submit_delay must be positive, got %s", ErrInvalidConfig, cfg.Form.SubmitDelay)
	}
	if cfg.Form.BannerDuration <= 0 {
		return fmt.Errorf("%w: form.banner_duration must be positive, got %s", ErrInvalidConfig, cfg.Form.BannerDuration)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks the tracing section. A disabled section is always valid.
func ValidateTracing(t TracingConfig) error {
	if !t.Enabled {
		return nil
	}
	switch t.Exporter {
	case ExporterNone, ExporterFile, ExporterStdout, ExporterOTLP, "":
	default:
		return fmt.Errorf("%w: tracing.exporter must be %q, %q, %q, or %q, got %q",
			ErrInvalidConfig, ExporterNone, ExporterFile, ExporterStdout, ExporterOTLP, t.Exporter)
	}
	if t.SampleRate <= 0 || t.SampleRate > 1 {
		return fmt.Errorf("%w: tracing.sample_rate must be in (0, 1], got %g", ErrInvalidConfig, t.SampleRate)
	}
	return nil
}

// DefaultTraceFilePath returns the trace file used when tracing.file_path is empty.
func DefaultTraceFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".signup", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "signup", "traces", "traces.jsonl")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# signup configuration

# Interface language: en or pt-BR
locale: en

form:
  submit_delay: 1s         # Simulated registration latency
  banner_duration: 5s      # How long the success banner stays visible
  simulate_failure: false  # Make every registration attempt fail

# Registration spans (OpenTelemetry)
tracing:
  enabled: false
  exporter: file           # none, file, stdout, or otlp
  # file_path: ~/.config/signup/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
