// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// builder.go: Builder construction, dimension checks and read-only views.
//
// Contract:
//   • 1 ≤ width ≤ MaxWidth and iterations ≥ 2, checked before allocation.
//   • Row 0 has a closed roof, closed outer sides and a down-passage per set.
//   • Accessors return copies; the caller cannot reach live cells.

package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ellers/dsu"
	"github.com/sirupsen/logrus"
)

// Builder generates a perfect maze one row at a time with Eller's algorithm.
//
// Only the current row is held in memory: cells of a superseded row are
// dropped from the cell map and pruned from their sets as soon as the next
// row has been derived. A Builder has a single owner and is not safe for
// concurrent use.
type Builder struct {
	width      int
	iterations int

	registry  *dsu.Registry
	cells     map[dsu.Label]*Cell // live cells: current row (+ previous row mid-transition)
	row       []dsu.Label         // current row, left to right
	nextLabel dsu.Label

	coin Coin
	seed int64
	log  logrus.FieldLogger

	rowIndex int // 0 for the first row
	peakLive int
	closed   bool
}

// New validates the dimensions, builds the first row and applies the
// initial vertical and bottom passes. The returned Builder's Row is ready
// to be printed.
//
// Errors:
//   - ErrInvalidArgument if width < 1, width > MaxWidth, iterations < 2 or
//     width*iterations does not fit in an int.
//   - ErrInvariantViolation if the engine detects an internal inconsistency.
//
// Complexity: O(width) time and memory.
func New(width, iterations int, opts ...Option) (*Builder, error) {
	if err := validateDimensions(width, iterations); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	b := &Builder{
		width:      width,
		iterations: iterations,
		registry:   dsu.NewRegistry(dsu.WithCapacity(2 * width)),
		cells:      make(map[dsu.Label]*Cell, 2*width),
		row:        make([]dsu.Label, 0, width),
		coin:       cfg.coin,
		seed:       cfg.seed,
		log:        cfg.logger,
	}
	if err := b.initialize(); err != nil {
		return nil, fmt.Errorf("maze: New(%d, %d): %w", width, iterations, err)
	}
	b.logRow("initial row generated")

	return b, nil
}

// MaxWidth is the widest row New accepts. Two rows coexist during a
// transition, so live memory peaks at 2·MaxWidth cells.
const MaxWidth = 1 << 24

// validateDimensions enforces 1 ≤ width ≤ MaxWidth, iterations ≥ 2 and that
// the cell count width*iterations (used to size rendered columns) cannot
// overflow.
func validateDimensions(width, iterations int) error {
	if width < 1 {
		return fmt.Errorf("%w: width must be ≥ 1, got %d", ErrInvalidArgument, width)
	}
	if width > MaxWidth {
		return fmt.Errorf("%w: width must be ≤ %d, got %d", ErrInvalidArgument, MaxWidth, width)
	}
	if iterations < 2 {
		return fmt.Errorf("%w: iterations must be ≥ 2, got %d", ErrInvalidArgument, iterations)
	}
	if width > math.MaxInt/iterations {
		return fmt.Errorf("%w: %d×%d cells overflow int", ErrInvalidArgument, width, iterations)
	}
	return nil
}

// initialize builds row 0: one singleton set per cell, a closed roof, the
// outer side walls, then the vertical and bottom passes.
func (b *Builder) initialize() error {
	// 1. Cells with sequential labels, each in its own set, each with a Top wall.
	for x := 0; x < b.width; x++ {
		c := &Cell{Label: b.allocLabel(), Set: b.registry.Create()}
		c.Walls.Add(Top)
		if err := b.registry.Add(c.Set, c.Label); err != nil {
			return invariant(err)
		}
		b.cells[c.Label] = c
		b.row = append(b.row, c.Label)
	}
	b.trackLive()

	// 2. Outer boundary.
	b.cellAt(0).Walls.Add(Left)
	b.cellAt(b.width - 1).Walls.Add(Right)

	// 3. Vertical pass. Every cell starts in its own set, so no pair can
	//    already be connected and each boundary is a free coin flip.
	for x := 0; x < b.width-1; x++ {
		cur, nxt := b.cellAt(x), b.cellAt(x+1)
		if b.coin.Flip() {
			cur.Walls.Add(Right)
			nxt.Walls.Add(Left)
			continue
		}
		if err := b.mergeSets(nxt.Set, cur.Set); err != nil {
			return err
		}
	}

	// 4. Every set needs a way down.
	return b.bottomPass()
}

// Width returns the number of cells per row.
func (b *Builder) Width() int { return b.width }

// Iterations returns the total number of rows the maze was sized for.
func (b *Builder) Iterations() int { return b.iterations }

// RowIndex returns the zero-based index of the current row.
func (b *Builder) RowIndex() int { return b.rowIndex }

// Closed reports whether Close has completed.
func (b *Builder) Closed() bool { return b.closed }

// Seed returns the seed of the built-in random source, or 0 when the caller
// supplied the source with WithRand or WithCoin.
func (b *Builder) Seed() int64 { return b.seed }

// LiveCells returns the number of cells currently held in memory.
func (b *Builder) LiveCells() int { return len(b.cells) }

// PeakLiveCells returns the largest LiveCells value observed so far,
// including the moment mid-transition when two rows coexist.
func (b *Builder) PeakLiveCells() int { return b.peakLive }

// Sets returns the number of sets currently registered.
func (b *Builder) Sets() int { return b.registry.Len() }

// Row returns a copy of the current row, left to right.
func (b *Builder) Row() []Cell {
	out := make([]Cell, len(b.row))
	for i, l := range b.row {
		out[i] = *b.cells[l]
	}
	return out
}

// Members returns the labels of the given set, sorted ascending.
// It is a read-only view intended for diagnostics and tests.
func (b *Builder) Members(set dsu.SetID) ([]dsu.Label, error) {
	ls, err := b.registry.Members(set)
	if err != nil {
		return nil, invariant(err)
	}
	return ls, nil
}

// allocLabel hands out the next cell identity.
func (b *Builder) allocLabel() dsu.Label {
	l := b.nextLabel
	b.nextLabel++
	return l
}

// cellAt returns the live cell at column x of the current row.
func (b *Builder) cellAt(x int) *Cell {
	return b.cells[b.row[x]]
}

// mergeSets unions from into to and rewrites the set id of every moved cell.
// A moved label with no live cell means the registry and the cell map have
// diverged.
func (b *Builder) mergeSets(from, to dsu.SetID) error {
	moved, err := b.registry.Merge(from, to)
	if err != nil {
		return invariant(err)
	}
	for _, l := range moved {
		c, ok := b.cells[l]
		if !ok {
			return fmt.Errorf("%w: set %d holds retired label %d", ErrInvariantViolation, from, l)
		}
		c.Set = to
	}
	return nil
}

// trackLive records the high-water mark of live cells.
func (b *Builder) trackLive() {
	if n := len(b.cells); n > b.peakLive {
		b.peakLive = n
	}
}

// logRow emits one Debug entry describing the current row.
func (b *Builder) logRow(msg string) {
	b.log.WithFields(logrus.Fields{
		"row":        b.rowIndex,
		"sets":       b.registry.Len(),
		"live_cells": len(b.cells),
	}).Debug(msg)
}

// invariant classifies err as an engine bug while keeping the cause
// reachable through errors.Is.
func invariant(err error) error {
	return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
}
