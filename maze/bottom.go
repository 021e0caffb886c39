// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// bottom.go: Bottom walls of a non-final row.
//
// Contract:
//   • Edge cells never get a Bottom wall here.
//   • Every set leaves the row with at least one open Bottom.

package maze

import (
	"fmt"

	"github.com/katalvlaran/ellers/dsu"
)

// bottomPass decides the Bottom walls of the current row.
//
// Edge cells never receive a candidate wall. Every interior cell flips one
// coin; afterwards, any interior cell whose set has no member without a
// Bottom wall gets its wall removed again, so each set keeps at least one
// down-passage into the next row.
func (b *Builder) bottomPass() error {
	for x := 1; x < b.width-1; x++ {
		if b.coin.Flip() {
			b.cellAt(x).Walls.Add(Bottom)
		}
	}

	// After retirement every member of a set lies in this row.
	open := make(map[dsu.SetID]bool, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cellAt(x)
		open[c.Set] = open[c.Set] || !c.Walls.Has(Bottom)
	}
	for x := 1; x < b.width-1; x++ {
		c := b.cellAt(x)
		if !open[c.Set] {
			c.Walls.Remove(Bottom)
			open[c.Set] = true
		}
	}

	return b.checkDownPassages()
}

// hasDownPassage reports whether some member of set lacks a Bottom wall.
func (b *Builder) hasDownPassage(set dsu.SetID) (bool, error) {
	members, err := b.registry.Members(set)
	if err != nil {
		return false, invariant(err)
	}
	for _, l := range members {
		c, ok := b.cells[l]
		if !ok {
			return false, fmt.Errorf("%w: set %d holds retired label %d", ErrInvariantViolation, set, l)
		}
		if !c.Walls.Has(Bottom) {
			return true, nil
		}
	}
	return false, nil
}

// checkDownPassages verifies every set represented in the row can extend
// downwards.
func (b *Builder) checkDownPassages() error {
	seen := make(map[dsu.SetID]bool, b.width)
	for x := 0; x < b.width; x++ {
		set := b.cellAt(x).Set
		if seen[set] {
			continue
		}
		seen[set] = true
		open, err := b.hasDownPassage(set)
		if err != nil {
			return err
		}
		if !open {
			return fmt.Errorf("%w: set %d has no down-passage in row %d", ErrInvariantViolation, set, b.rowIndex)
		}
	}
	return nil
}
