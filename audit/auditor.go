// SPDX-License-Identifier: MIT
// Package: ellers/audit
//
// auditor.go: row-by-row perfection check with O(width) state.

package audit

import (
	"fmt"

	"github.com/katalvlaran/ellers/dsu"
	"github.com/katalvlaran/ellers/maze"
)

// Auditor checks a maze one row at a time. Create it with New, feed every
// published row to Observe in order and call Finish after the last one.
// An Auditor is not safe for concurrent use.
type Auditor struct {
	width    int
	rows     int
	passages int

	// Frontier of the previous row: the Bottom wall of each column, and for
	// each column the smallest column of the same component.
	prevBottom []bool
	prevComp   []int

	finished bool
}

// New returns an Auditor for rows of the given width.
func New(width int) (*Auditor, error) {
	if width < 1 || width > maze.MaxWidth {
		return nil, fmt.Errorf("%w: width must be in [1, %d], got %d", ErrWidthMismatch, maze.MaxWidth, width)
	}
	return &Auditor{
		width:      width,
		prevBottom: make([]bool, width),
		prevComp:   make([]int, width),
	}, nil
}

// Observe checks row against everything seen so far.
//
// Steps:
//  1. Shape and wall agreement with the neighbours and the row above.
//  2. Union-find over the previous frontier and the new row; every open
//     passage must join two different components.
//  3. Every component of the previous row must continue downwards.
//  4. Set ids must match components.
//  5. Compact the components onto the new row's columns.
//
// Complexity: O(width · α(width)) time, O(width) memory.
func (a *Auditor) Observe(row []maze.Cell) error {
	if a.finished {
		return ErrFinished
	}
	w := a.width
	if len(row) != w {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrWidthMismatch, a.rows, len(row), w)
	}

	// 1. Walls.
	if err := a.checkWalls(row); err != nil {
		return err
	}

	// 2. Nodes 0..w-1 are the previous row, w..2w-1 the new one. The previous
	//    row enters already compacted: each column points at its root.
	parent := make(map[int]int, 2*w)
	rank := make(map[int]int, 2*w)
	if a.rows > 0 {
		for x := 0; x < w; x++ {
			parent[x] = a.prevComp[x]
		}
	}
	for x := 0; x < w; x++ {
		parent[w+x] = w + x
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}
	open := func(u, v int, where string, x int) error {
		if find(u) == find(v) {
			return fmt.Errorf("%w: row %d, %s passage at column %d", ErrCycle, a.rows, where, x)
		}
		union(u, v)
		a.passages++
		return nil
	}

	for x := 0; x < w-1; x++ {
		if !row[x].Walls.Has(maze.Right) {
			if err := open(w+x, w+x+1, "horizontal", x); err != nil {
				return err
			}
		}
	}
	if a.rows > 0 {
		for x := 0; x < w; x++ {
			if !row[x].Walls.Has(maze.Top) {
				if err := open(x, w+x, "vertical", x); err != nil {
					return err
				}
			}
		}
	}

	// 3. A component of the previous row that reaches no cell of the new row
	//    is sealed off for good.
	live := make(map[int]bool, w)
	for x := 0; x < w; x++ {
		live[find(w+x)] = true
	}
	if a.rows > 0 {
		for x := 0; x < w; x++ {
			if !live[find(x)] {
				return fmt.Errorf("%w: row %d seals off column %d of the row above", ErrDisconnected, a.rows, x)
			}
		}
	}

	// 4. One set per component and one component per set.
	setOf := make(map[int]dsu.SetID, w)
	rootOf := make(map[dsu.SetID]int, w)
	for x := 0; x < w; x++ {
		r, s := find(w+x), row[x].Set
		if prev, ok := setOf[r]; ok && prev != s {
			return fmt.Errorf("%w: row %d, column %d in set %d but connected to set %d", ErrSetMismatch, a.rows, x, s, prev)
		}
		if prev, ok := rootOf[s]; ok && prev != r {
			return fmt.Errorf("%w: row %d, set %d spans unconnected cells (column %d)", ErrSetMismatch, a.rows, s, x)
		}
		setOf[r], rootOf[s] = s, r
	}

	// 5. Compact.
	first := make(map[int]int, w)
	for x := 0; x < w; x++ {
		r := find(w + x)
		c, ok := first[r]
		if !ok {
			c = x
			first[r] = x
		}
		a.prevComp[x] = c
		a.prevBottom[x] = row[x].Walls.Has(maze.Bottom)
	}
	a.rows++

	return nil
}

// checkWalls verifies the outer sides, the agreement between neighbours and
// the agreement with the row above (or the closed roof for the first row).
func (a *Auditor) checkWalls(row []maze.Cell) error {
	w := a.width
	if !row[0].Walls.Has(maze.Left) {
		return fmt.Errorf("%w: row %d, left side open", ErrBoundary, a.rows)
	}
	if !row[w-1].Walls.Has(maze.Right) {
		return fmt.Errorf("%w: row %d, right side open", ErrBoundary, a.rows)
	}
	for x := 0; x < w-1; x++ {
		if row[x].Walls.Has(maze.Right) != row[x+1].Walls.Has(maze.Left) {
			return fmt.Errorf("%w: row %d, columns %d|%d", ErrWallMismatch, a.rows, x, x+1)
		}
	}
	for x := 0; x < w; x++ {
		top := row[x].Walls.Has(maze.Top)
		switch {
		case a.rows == 0 && !top:
			return fmt.Errorf("%w: row 0, roof open at column %d", ErrBoundary, x)
		case a.rows > 0 && top != a.prevBottom[x]:
			return fmt.Errorf("%w: row %d, column %d disagrees with the row above", ErrWallMismatch, a.rows, x)
		}
	}
	return nil
}

// Finish checks the closed floor and global connectivity, and returns the
// summary. The Auditor cannot be used afterwards.
func (a *Auditor) Finish() (Report, error) {
	if a.finished {
		return Report{}, ErrFinished
	}
	a.finished = true

	if a.rows == 0 {
		return Report{}, fmt.Errorf("%w: no rows observed", ErrDisconnected)
	}
	for x, closed := range a.prevBottom {
		if !closed {
			return Report{}, fmt.Errorf("%w: floor open at column %d", ErrBoundary, x)
		}
	}

	rep := Report{
		Width:    a.width,
		Rows:     a.rows,
		Cells:    a.width * a.rows,
		Passages: a.passages,
	}
	// Acyclic by construction, so components = cells - passages.
	if n := rep.Cells - rep.Passages; n != 1 {
		return rep, fmt.Errorf("%w: %d components", ErrDisconnected, n)
	}

	return rep, nil
}

// Rows returns the number of rows observed so far.
func (a *Auditor) Rows() int { return a.rows }
