// Package config loads the optional solver-tuning file. Everything has a
// safe default; a missing path is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvasily/flowforge/factory"
	"github.com/rvasily/flowforge/maxflow"
)

// ErrBadAlgorithm is returned when the configured max-flow algorithm is unknown.
var ErrBadAlgorithm = fmt.Errorf("config: %w", errBadAlgorithm)
var errBadAlgorithm = fmt.Errorf("unknown max-flow algorithm")

// Config tunes the solvers. Zero values select solver defaults.
type Config struct {
	// Algorithm picks the max-flow routine: "dinic" or "edmonds-karp".
	Algorithm string `yaml:"algorithm"`

	// LevelRebuildInterval forwards to Dinic; 0 keeps the default schedule.
	LevelRebuildInterval int `yaml:"level_rebuild_interval"`

	// LPTolerance forwards to the simplex pivot tolerance; 0 keeps the
	// solver default.
	LPTolerance float64 `yaml:"lp_tolerance"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Algorithm: string(maxflow.AlgorithmDinic)}
}

// Load reads a YAML config from path. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	switch maxflow.Algorithm(cfg.Algorithm) {
	case maxflow.AlgorithmDinic, maxflow.AlgorithmEdmondsKarp, "":
	default:
		return cfg, fmt.Errorf("%w: %q", ErrBadAlgorithm, cfg.Algorithm)
	}

	return cfg, nil
}

// FlowOptions maps the config onto max-flow solver options.
func (c Config) FlowOptions() maxflow.Options {
	opts := maxflow.DefaultOptions()
	if c.Algorithm != "" {
		opts.Algorithm = maxflow.Algorithm(c.Algorithm)
	}
	opts.LevelRebuildInterval = c.LevelRebuildInterval

	return opts
}

// FactoryOptions maps the config onto LP solver options.
func (c Config) FactoryOptions() factory.Options {
	opts := factory.DefaultOptions()
	opts.LPTolerance = c.LPTolerance

	return opts
}
