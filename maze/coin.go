// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// coin.go: the binary decision source. true means "build the wall".

package maze

import "math/rand"

// Coin is the source of the engine's random decisions. Every wall choice in
// the vertical and bottom passes is one Flip.
//
// In the vertical pass true means "build the wall", false means "open a
// passage and merge". In the bottom pass true means "candidate Bottom wall".
type Coin interface {
	Flip() bool
}

// CoinFunc adapts a plain function to the Coin interface.
type CoinFunc func() bool

// Flip calls f.
func (f CoinFunc) Flip() bool { return f() }

// randCoin draws fair booleans from a math/rand source.
type randCoin struct {
	rng *rand.Rand
}

// RandomCoin returns a fair Coin backed by rng. Panics on nil.
func RandomCoin(rng *rand.Rand) Coin {
	if rng == nil {
		panic("maze: RandomCoin(nil)")
	}
	return &randCoin{rng: rng}
}

func (c *randCoin) Flip() bool {
	return c.rng.Intn(2) == 1
}

// ScriptedCoin replays a fixed sequence of outcomes, wrapping around when
// it reaches the end. An empty script always yields false.
// Use it to make tests deterministic down to single decisions.
type ScriptedCoin struct {
	seq   []bool
	flips int
}

// NewScriptedCoin returns a ScriptedCoin replaying seq.
func NewScriptedCoin(seq ...bool) *ScriptedCoin {
	cp := make([]bool, len(seq))
	copy(cp, seq)
	return &ScriptedCoin{seq: cp}
}

// Flip returns the next scripted outcome.
func (c *ScriptedCoin) Flip() bool {
	defer func() { c.flips++ }()
	if len(c.seq) == 0 {
		return false
	}
	return c.seq[c.flips%len(c.seq)]
}

// Flips returns how many outcomes have been drawn so far.
func (c *ScriptedCoin) Flips() int {
	return c.flips
}
