package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Sentinel errors callers match with errors.Is.
var (
	// ErrInvalidConfig marks a loaded discovery config that fails validation.
	ErrInvalidConfig = errors.New("invalid discovery config")

	// ErrLoadConfig marks a failure reading or parsing config sources.
	ErrLoadConfig = errors.New("load discovery config")
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if EVENTMAP_CONFIG is set
//  3. env (prefix EVENTMAP_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("EVENTMAP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: EVENTMAP_ADDR, EVENTMAP_MAX_RESULTS, ...
	// Map env keys like EVENTMAP_MAX_RESULTS -> max_results (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("EVENTMAP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "eventmap_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MaxResults < 0 {
		return nil, fmt.Errorf("%w: max_results must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
