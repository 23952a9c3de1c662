// Package config defines engine configuration and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains engine configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// JudgeEnabled turns the semantic judgment collaborator on.
	JudgeEnabled bool `koanf:"judge_enabled"`

	// GeminiAPIKey and GeminiModel configure the judge backend.
	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`

	// JudgeTimeoutMS bounds one semantic judge call.
	JudgeTimeoutMS int `koanf:"judge_timeout_ms"`

	// ScoringWidth bounds how many applications are scored concurrently
	// within one ranking request.
	ScoringWidth int `koanf:"scoring_width"`

	// AboveThreshold is the percentage at which an application counts as
	// a strong fit.
	AboveThreshold int `koanf:"above_threshold"`

	// RecencyYears is the default recency window for ranking, 0..5 where
	// 0 means unrestricted.
	RecencyYears int `koanf:"recency_years"`

	// MetricsAddr is the listen address of the Prometheus endpoint.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		JudgeEnabled:   false,
		GeminiModel:    "gemini-2.5-flash",
		JudgeTimeoutMS: 15_000,
		ScoringWidth:   runtime.NumCPU() * 2,
		AboveThreshold: 75,
		RecencyYears:   0,
		MetricsAddr:    ":9090",
	}
}
