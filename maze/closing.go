// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// closing.go: the final row.

package maze

import "fmt"

// Close emits the final row: one ordinary transition, a closed floor, then a
// single left-to-right sweep that opens every boundary between different
// sets and merges them. After Close the whole maze is one set and the
// Builder rejects further calls with ErrClosed.
//
// A single sweep suffices: once the boundary at x has been handled, cells
// 0..x+1 share one set.
func (b *Builder) Close() ([]Cell, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if err := b.transition(); err != nil {
		return nil, fmt.Errorf("maze: Close row %d: %w", b.rowIndex, err)
	}

	for x := 0; x < b.width; x++ {
		b.cellAt(x).Walls.Add(Bottom)
	}

	for x := 0; x < b.width-1; x++ {
		cur, nxt := b.cellAt(x), b.cellAt(x+1)
		if cur.Set == nxt.Set {
			continue
		}
		cur.Walls.Remove(Right)
		nxt.Walls.Remove(Left)
		if err := b.mergeSets(nxt.Set, cur.Set); err != nil {
			return nil, fmt.Errorf("maze: Close row %d: %w", b.rowIndex, err)
		}
	}

	if n := b.registry.Len(); n != 1 {
		return nil, fmt.Errorf("maze: Close row %d: %w: %d sets remain", b.rowIndex, ErrInvariantViolation, n)
	}
	b.closed = true
	b.logRow("closing row generated")

	return b.Row(), nil
}
