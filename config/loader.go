package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "LPCLIQUE_"
	// configEnvVar names a YAML file when no explicit path is given.
	configEnvVar = envPrefix + "CONFIG"
)

// Loader assembles a Config from its sources.
type Loader struct {
	k           *koanf.Koanf
	path        string
	searchPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile loads path, which must exist.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithSearchPaths replaces the optional file locations tried when no explicit
// file is set.
func WithSearchPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.searchPaths = paths }
}

// WithEnvPrefix changes the environment prefix (default "LPCLIQUE_").
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader with default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		searchPaths: []string{"lpclique.yaml", "config/lpclique.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges, in increasing priority:
//  1. defaults
//  2. the YAML file (explicit, $LPCLIQUE_CONFIG, or first existing search path)
//  3. environment variables
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"search.time_limit":  time.Hour,
		"search.workers":     1,
		"search.greedy_seed": false,
		"search.epsilon":     0.0,

		"solver.tolerance": 1e-9,

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled": false,
		"metrics.addr":    ":9090",
		"metrics.path":    "/metrics",
	}
}

func (l *Loader) loadFile() error {
	path := l.path
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config: %s: %w", path, err)
		}
		return nil
	}

	for _, p := range l.searchPaths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: %s: %w", p, err)
		}
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("config: %s: %w", p, err)
		}
		return nil
	}

	return nil
}

// envKeys maps lower-cased, prefix-stripped variable names onto keys whose
// leaf contains an underscore.
var envKeys = map[string]string{
	"search_time_limit":  "search.time_limit",
	"search_greedy_seed": "search.greedy_seed",
	"log_file_path":      "log.file_path",
	"log_max_size":       "log.max_size",
	"log_max_backups":    "log.max_backups",
	"log_max_age":        "log.max_age",
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		if mapped, ok := envKeys[key]; ok {
			return mapped, value
		}
		return strings.Replace(key, "_", ".", 1), value
	}), nil)
}
