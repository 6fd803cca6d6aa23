// Package config loads run settings for the sssp command.
//
// Precedence, lowest first: Defaults, the optional TOML file, SSSP_*
// environment variables, then explicit command-line flags (applied by the
// cli package).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/parsssp/dijkstra"
	"github.com/katalvlaran/parsssp/matrix"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "SSSP"

// DefaultMaxVertices bounds the generated graph (32768² int64 cells = 8 GiB).
const DefaultMaxVertices = 32768

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of a run.
type Config struct {
	Source      int     `toml:"source" envconfig:"SOURCE"`
	Seed        int64   `toml:"seed" envconfig:"SEED"`
	MaxWeight   int64   `toml:"max_weight" envconfig:"MAX_WEIGHT"`
	Density     float64 `toml:"density" envconfig:"DENSITY"`
	ChunkSize   int     `toml:"chunk_size" envconfig:"CHUNK_SIZE"`
	MaxVertices int     `toml:"max_vertices" envconfig:"MAX_VERTICES"`
	LogLevel    string  `toml:"log_level" envconfig:"LOG_LEVEL"`
	MetricsFile string  `toml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Defaults returns the built-in settings. Seed 0 means "seed from the clock".
func Defaults() Config {
	return Config{
		Source:      0,
		Seed:        0,
		MaxWeight:   matrix.DefaultMaxWeight,
		Density:     matrix.DefaultDensity,
		ChunkSize:   dijkstra.DefaultChunkSize,
		MaxVertices: DefaultMaxVertices,
		LogLevel:    "info",
	}
}

// Load builds a Config from Defaults, then path (skipped when empty), then
// the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges that do not depend on the graph size.
func (c Config) Validate() error {
	switch {
	case c.Source < 0:
		return fmt.Errorf("%w: source %d < 0", ErrInvalidConfig, c.Source)
	case c.MaxWeight < 1:
		return fmt.Errorf("%w: max_weight %d < 1", ErrInvalidConfig, c.MaxWeight)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g not in [0,1]", ErrInvalidConfig, c.Density)
	case c.ChunkSize < 1:
		return fmt.Errorf("%w: chunk_size %d < 1", ErrInvalidConfig, c.ChunkSize)
	case c.MaxVertices < 0:
		return fmt.Errorf("%w: max_vertices %d < 0", ErrInvalidConfig, c.MaxVertices)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}
