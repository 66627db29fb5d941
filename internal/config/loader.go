package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Precedence, low to high:
//  1. defaults (New())
//  2. file (YAML) if TOUCHLINE_CONFIG is set
//  3. env (prefix TOUCHLINE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TOUCHLINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// TOUCHLINE_DB_PATH -> db_path, TOUCHLINE_SAVE_EVERY -> save_every, ...
	envProvider := env.Provider("TOUCHLINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "touchline_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Weeks <= 0 {
		return nil, errors.New("weeks must be positive")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if cfg.SaveEvery <= 0 {
		return nil, errors.New("save_every must be positive")
	}
	return &cfg, nil
}
