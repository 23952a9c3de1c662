package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if FITRANK_CONFIG is set
//  3. env (prefix FITRANK_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FITRANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FITRANK_LOG_LEVEL, FITRANK_SCORING_WIDTH, ...
	// Map env keys like FITRANK_SCORING_WIDTH -> scoring_width (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FITRANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fitrank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ScoringWidth <= 0 {
		return fmt.Errorf("%w: scoring_width must be positive", ErrInvalidConfig)
	}
	if c.AboveThreshold < 0 || c.AboveThreshold > 100 {
		return fmt.Errorf("%w: above_threshold must be within 0..100", ErrInvalidConfig)
	}
	if c.RecencyYears < 0 || c.RecencyYears > 5 {
		return fmt.Errorf("%w: recency_years must be within 0..5", ErrInvalidConfig)
	}
	if c.JudgeEnabled && strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("%w: gemini_api_key is required when the judge is enabled", ErrInvalidConfig)
	}
	return nil
}
