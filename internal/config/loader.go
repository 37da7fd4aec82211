package config

import (
	"context"
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
//  2. file (YAML) if FACEOFF_CONFIG is set
//  3. env (prefix FACEOFF_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FACEOFF_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FACEOFF_ADDR, FACEOFF_MAX_UPLOAD_BYTES, ...
	// Map env keys like FACEOFF_MAX_UPLOAD_BYTES -> max_upload_bytes (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FACEOFF_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "faceoff_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	}
	if cfg.MaxGroupSize <= 0 {
		return nil, fmt.Errorf("%w: max_group_size must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
