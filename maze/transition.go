// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// transition.go: deriving row n+1 from row n.
//
// Contract:
//   • Carry-down keeps a set only across an open Bottom.
//   • Two cells of one set are never joined again in the same row.
//   • The superseded row is retired before Next returns, so at most two rows
//     are live at once.
//   • Next stops at iterations-2; the last row belongs to Close.

package maze

import (
	"fmt"

	"github.com/katalvlaran/ellers/dsu"
)

// Next derives the following row from the current one and returns it.
//
// Steps:
//  1. Carry-down: every cell gets a successor with a fresh label in the
//     predecessor's set. A predecessor Bottom wall becomes the successor's
//     Top wall and moves the successor into a new singleton set.
//  2. Vertical pass: adjacent cells already in one set are always walled
//     off; other boundaries are a coin flip between a wall and a merge.
//  3. Retirement: the superseded row leaves the cell map and its sets.
//  4. Bottom pass.
//
// Errors:
//   - ErrClosed after Close.
//   - ErrExhausted once iterations-1 rows exist; the last row must come
//     from Close.
//   - ErrInvariantViolation on internal inconsistency.
//
// Complexity: O(width · log width).
func (b *Builder) Next() ([]Cell, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if b.rowIndex >= b.iterations-2 {
		return nil, fmt.Errorf("%w: row %d of %d is the closing row", ErrExhausted, b.rowIndex+1, b.iterations)
	}
	if err := b.transition(); err != nil {
		return nil, fmt.Errorf("maze: Next row %d: %w", b.rowIndex, err)
	}
	b.logRow("row generated")

	return b.Row(), nil
}

// transition runs the four transition steps and advances rowIndex.
func (b *Builder) transition() error {
	prev := b.row
	b.row = make([]dsu.Label, 0, b.width)
	b.rowIndex++

	if err := b.carryDown(prev); err != nil {
		return err
	}
	if err := b.verticalPass(); err != nil {
		return err
	}
	if err := b.retire(prev); err != nil {
		return err
	}

	return b.bottomPass()
}

// carryDown appends one successor per predecessor label in prev.
func (b *Builder) carryDown(prev []dsu.Label) error {
	for _, pl := range prev {
		pred, ok := b.cells[pl]
		if !ok {
			return fmt.Errorf("%w: predecessor label %d is not live", ErrInvariantViolation, pl)
		}

		c := &Cell{Label: b.allocLabel(), Set: pred.Set}
		if pred.Walls.Has(Bottom) {
			c.Walls.Add(Top)
			c.Set = b.registry.Create()
		}
		if err := b.registry.Add(c.Set, c.Label); err != nil {
			return invariant(err)
		}
		b.cells[c.Label] = c
		b.row = append(b.row, c.Label)
	}
	b.trackLive()

	return nil
}

// verticalPass decides the walls between horizontally adjacent cells of
// the current row, then forces the outer boundary.
func (b *Builder) verticalPass() error {
	for x := 0; x < b.width-1; x++ {
		cur, nxt := b.cellAt(x), b.cellAt(x+1)

		// Already connected from above: an opening here would close a cycle.
		if cur.Set == nxt.Set {
			cur.Walls.Add(Right)
			nxt.Walls.Add(Left)
			continue
		}
		if b.coin.Flip() {
			cur.Walls.Add(Right)
			nxt.Walls.Add(Left)
			continue
		}
		if err := b.mergeSets(nxt.Set, cur.Set); err != nil {
			return err
		}
	}

	b.cellAt(0).Walls.Add(Left)
	b.cellAt(b.width - 1).Walls.Add(Right)

	return nil
}

// retire drops the superseded row from the cell map and from the member
// lists of its sets, then discards sets left without members.
func (b *Builder) retire(prev []dsu.Label) error {
	for _, l := range prev {
		c, ok := b.cells[l]
		if !ok {
			return fmt.Errorf("%w: retired label %d is not live", ErrInvariantViolation, l)
		}
		if err := b.registry.Remove(c.Set, l); err != nil {
			return invariant(err)
		}
		delete(b.cells, l)
	}
	b.registry.Sweep()

	return nil
}
