// SPDX-License-Identifier: MIT
// Package matrix: seeded generator of symmetric weighted adjacency matrices.

package matrix

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultMaxWeight is the largest weight drawn when WithMaxWeight is not given.
	// Weights are uniform in [1, DefaultMaxWeight].
	DefaultMaxWeight int64 = 9

	// DefaultDensity is the probability that an off-diagonal pair is connected.
	DefaultDensity = 0.9
)

// randomConfig holds generator parameters; built from RandomOption values.
type randomConfig struct {
	seed      int64
	maxWeight int64
	density   float64
}

// RandomOption configures Random.
type RandomOption func(*randomConfig)

// WithSeed fixes the RNG seed; identical seeds yield identical matrices.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.seed = seed
	}
}

// WithMaxWeight sets the inclusive upper bound of drawn weights (>= 1).
func WithMaxWeight(max int64) RandomOption {
	return func(c *randomConfig) {
		c.maxWeight = max
	}
}

// WithDensity sets the edge probability for each unordered pair, in [0,1].
// Density 0 yields a fully disconnected graph.
func WithDensity(p float64) RandomOption {
	return func(c *randomConfig) {
		c.density = p
	}
}

// Random generates an n×n symmetric matrix with zero diagonal.
// Stage 1 (Validate): order, max weight, density.
// Stage 2 (Execute): walk the upper triangle in row-major order, mirror each draw.
// Stage 3 (Finalize): wrap without re-validation (symmetric by construction).
// Complexity: O(n²) time and memory.
func Random(n int, opts ...RandomOption) (*Adjacency, error) {
	cfg := randomConfig{seed: 1, maxWeight: DefaultMaxWeight, density: DefaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate
	if err := checkOrder(n); err != nil {
		return nil, fmt.Errorf("Random(%d): %w", n, err)
	}
	if cfg.maxWeight < 1 {
		return nil, fmt.Errorf("Random: max=%d: %w", cfg.maxWeight, ErrBadMaxWeight)
	}
	if cfg.density < 0 || cfg.density > 1 || cfg.density != cfg.density {
		return nil, fmt.Errorf("Random: density=%g: %w", cfg.density, ErrBadDensity)
	}

	// Execute. A fixed draw order keeps output deterministic per seed.
	rng := rand.New(rand.NewSource(cfg.seed))
	data := make([]int64, n*n)
	var i, j int
	var w int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() >= cfg.density {
				continue // pair stays disconnected
			}
			w = 1 + rng.Int63n(cfg.maxWeight)
			data[i*n+j] = w
			data[j*n+i] = w
		}
	}

	return newUnchecked(n, data), nil
}
