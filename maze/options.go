// SPDX-License-Identifier: MIT
// Package: pathviz/maze
//
// options.go: functional options for the maze generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package maze

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultWallProbability is the share of cells the random maze walls off.
	DefaultWallProbability = 0.3
	// DefaultStripeWidth makes every second column a wall column.
	DefaultStripeWidth = 2

	minStripeWidth = 2
)

// config is shared by every generator; each one reads the fields it needs.
type config struct {
	rng         *rand.Rand // nil means “no randomness”
	probability float64    // random: wall probability per cell
	stripeWidth int        // stripes: columns per stripe, the last one is wall
}

// Option customizes a generator.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
// The generator does not lock it; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProbability sets the per-cell wall probability of the random maze.
// Panics if p is outside [0,1].
func WithProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("maze: WithProbability(%g) not in [0,1]", p))
	}
	return func(c *config) {
		c.probability = p
	}
}

// WithStripeWidth sets how many columns one stripe spans; the last column of
// each stripe is the wall column. Panics if w < 2.
func WithStripeWidth(w int) Option {
	if w < minStripeWidth {
		panic(fmt.Sprintf("maze: WithStripeWidth(%d) < %d", w, minStripeWidth))
	}
	return func(c *config) {
		c.stripeWidth = w
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:         nil,
		probability: DefaultWallProbability,
		stripeWidth: DefaultStripeWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
