// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// options.go: functional options for the row engine.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     sources, nil loggers). The engine itself never panics.
//   • Determinism is explicit: WithSeed, WithRand or WithCoin. Without any
//     of them the coin is seeded from the wall clock and Builder.Seed
//     reports the seed so a run can be replayed.

package maze

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Option customizes a Builder before the first row is generated.
type Option func(*builderConfig)

// builderConfig aggregates the knobs resolved by New.
type builderConfig struct {
	coin   Coin
	seed   int64
	logger logrus.FieldLogger
}

// WithCoin injects the boolean source used for every random decision.
// Panics on nil. Builder.Seed reports 0 when this option is used.
func WithCoin(c Coin) Option {
	if c == nil {
		panic("maze: WithCoin(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.coin = c
		cfg.seed = 0
	}
}

// WithRand draws decisions from rng. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("maze: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.coin = RandomCoin(rng)
		cfg.seed = 0
	}
}

// WithSeed draws decisions from a math/rand source seeded with seed.
// The same seed, width and iterations always yield the same maze.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.coin = RandomCoin(rand.New(rand.NewSource(seed)))
		cfg.seed = seed
	}
}

// WithLogger routes engine diagnostics (Debug level, one entry per row) to l.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.logger = l
	}
}

// newBuilderConfig applies opts over the defaults: a clock-seeded coin and a
// logger that discards everything.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.coin == nil {
		cfg.seed = time.Now().UnixNano()
		cfg.coin = RandomCoin(rand.New(rand.NewSource(cfg.seed)))
	}
	if cfg.logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		cfg.logger = silent
	}
	return cfg
}
