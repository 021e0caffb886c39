// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// types.go: walls, cells and sentinel errors for the row engine.
//
// Error policy:
//   • Bad dimensions return ErrInvalidArgument before anything is built.
//   • Internal inconsistencies return ErrInvariantViolation wrapping the
//     cause, so errors.Is reaches both (e.g. dsu.ErrUnknownSet).
//   • Calls past the end return ErrClosed or ErrExhausted and change nothing.

package maze

import (
	"errors"
	"strings"

	"github.com/katalvlaran/ellers/dsu"
)

// Sentinel errors for row engine operations.
var (
	// ErrInvalidArgument indicates width or iterations are out of range.
	// Nothing is constructed when it is returned.
	ErrInvalidArgument = errors.New("maze: invalid argument")

	// ErrInvariantViolation indicates the engine detected a state that can
	// only arise from a bug in the engine itself. Treat it as fatal.
	ErrInvariantViolation = errors.New("maze: invariant violation")

	// ErrClosed indicates Next or Close was called after Close.
	ErrClosed = errors.New("maze: builder already closed")

	// ErrExhausted indicates Next was called with only the closing row left.
	// The Builder stays usable: call Close.
	ErrExhausted = errors.New("maze: iteration budget exhausted")
)

// Wall is one side of a cell.
type Wall uint8

const (
	// Left is the western side of a cell.
	Left Wall = 1 << iota
	// Right is the eastern side of a cell.
	Right
	// Top is the northern side of a cell.
	Top
	// Bottom is the southern side of a cell.
	Bottom
)

// String returns the wall name.
func (w Wall) String() string {
	switch w {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return "Wall(?)"
}

// Walls is the set of walls present on a cell.
type Walls uint8

// NewWalls returns a wall set holding ws.
func NewWalls(ws ...Wall) Walls {
	var out Walls
	for _, w := range ws {
		out.Add(w)
	}
	return out
}

// Has reports whether w is present.
func (s Walls) Has(w Wall) bool {
	return s&Walls(w) != 0
}

// Add puts w into the set.
func (s *Walls) Add(w Wall) {
	*s |= Walls(w)
}

// Remove takes w out of the set and reports whether it was present.
func (s *Walls) Remove(w Wall) bool {
	had := s.Has(w)
	*s &^= Walls(w)
	return had
}

// String lists present walls in L,R,T,B order, '-' for absent ones.
// Example: a cell closed on the left and on top prints "L-T-".
func (s Walls) String() string {
	var b strings.Builder
	for _, w := range []struct {
		wall Wall
		mark byte
	}{{Left, 'L'}, {Right, 'R'}, {Top, 'T'}, {Bottom, 'B'}} {
		if s.Has(w.wall) {
			b.WriteByte(w.mark)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Cell is one maze cell: its identity, its walls and the set it belongs to.
// Cells returned by the Builder are copies; mutating them has no effect on
// the engine.
type Cell struct {
	Label dsu.Label // process-unique identity
	Walls Walls     // walls present on this cell
	Set   dsu.SetID // disjoint set the cell belongs to
}
