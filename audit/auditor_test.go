package audit_test

import (
	"testing"

	"github.com/katalvlaran/ellers/audit"
	"github.com/katalvlaran/ellers/dsu"
	"github.com/katalvlaran/ellers/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cell builds a cell from an "LRTB" mask where '-' marks an absent wall.
func cell(mask string, set dsu.SetID) maze.Cell {
	var ws maze.Walls
	for i, w := range []maze.Wall{maze.Left, maze.Right, maze.Top, maze.Bottom} {
		if mask[i] != '-' {
			ws.Add(w)
		}
	}
	return maze.Cell{Walls: ws, Set: set}
}

// feed observes rows in order and returns the first error.
func feed(t *testing.T, a *audit.Auditor, rows ...[]maze.Cell) error {
	t.Helper()
	for _, r := range rows {
		if err := a.Observe(r); err != nil {
			return err
		}
	}
	return nil
}

// TestObserve_PerfectTwoByTwo verifies a hand-built perfect maze passes and
// the report counts cells-1 passages.
//
//	+---+---+
//	|       |
//	+   +---+
//	|       |
//	+---+---+
func TestObserve_PerfectTwoByTwo(t *testing.T) {
	a, err := audit.New(2)
	require.NoError(t, err)

	require.NoError(t, feed(t, a,
		[]maze.Cell{cell("L-T-", 1), cell("-RTB", 1)},
		[]maze.Cell{cell("L--B", 1), cell("-RTB", 1)},
	))
	rep, err := a.Finish()
	require.NoError(t, err)
	assert.Equal(t, audit.Report{Width: 2, Rows: 2, Cells: 4, Passages: 3}, rep)
}

func TestObserve_Cycle(t *testing.T) {
	a, _ := audit.New(2)
	err := feed(t, a,
		[]maze.Cell{cell("L-T-", 1), cell("-RT-", 1)},
		[]maze.Cell{cell("L--B", 1), cell("-R-B", 1)},
	)
	assert.ErrorIs(t, err, audit.ErrCycle)
}

func TestObserve_SealedRegion(t *testing.T) {
	a, _ := audit.New(2)
	err := feed(t, a,
		[]maze.Cell{cell("LRT-", 1), cell("LRTB", 2)},
		[]maze.Cell{cell("LR-B", 1), cell("LRTB", 3)},
	)
	assert.ErrorIs(t, err, audit.ErrDisconnected)
}

func TestObserve_SetMismatch(t *testing.T) {
	t.Run("one set, two components", func(t *testing.T) {
		a, _ := audit.New(2)
		err := a.Observe([]maze.Cell{cell("LRT-", 1), cell("LRT-", 1)})
		assert.ErrorIs(t, err, audit.ErrSetMismatch)
	})
	t.Run("one component, two sets", func(t *testing.T) {
		a, _ := audit.New(2)
		err := a.Observe([]maze.Cell{cell("L-T-", 1), cell("-RT-", 2)})
		assert.ErrorIs(t, err, audit.ErrSetMismatch)
	})
}

func TestObserve_Walls(t *testing.T) {
	cases := []struct {
		name string
		rows [][]maze.Cell
		want error
	}{
		{"left side open", [][]maze.Cell{{cell("--T-", 1), cell("-RT-", 1)}}, audit.ErrBoundary},
		{"right side open", [][]maze.Cell{{cell("L-T-", 1), cell("--T-", 1)}}, audit.ErrBoundary},
		{"roof open", [][]maze.Cell{{cell("L---", 1), cell("-RT-", 1)}}, audit.ErrBoundary},
		{"one-sided wall", [][]maze.Cell{{cell("L-T-", 1), cell("LRT-", 1)}}, audit.ErrWallMismatch},
		{"top disagrees with bottom above", [][]maze.Cell{
			{cell("L-T-", 1), cell("-RT-", 1)},
			{cell("L-TB", 1), cell("-R-B", 1)},
		}, audit.ErrWallMismatch},
		{"width", [][]maze.Cell{{cell("LRT-", 1)}}, audit.ErrWidthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := audit.New(2)
			assert.ErrorIs(t, feed(t, a, tc.rows...), tc.want)
		})
	}
}

func TestFinish(t *testing.T) {
	t.Run("floor open", func(t *testing.T) {
		a, _ := audit.New(1)
		require.NoError(t, a.Observe([]maze.Cell{cell("LRT-", 1)}))
		_, err := a.Finish()
		assert.ErrorIs(t, err, audit.ErrBoundary)
	})
	t.Run("no rows", func(t *testing.T) {
		a, _ := audit.New(1)
		_, err := a.Finish()
		assert.ErrorIs(t, err, audit.ErrDisconnected)
	})
	t.Run("disconnected floor row", func(t *testing.T) {
		a, _ := audit.New(2)
		require.NoError(t, a.Observe([]maze.Cell{cell("LRTB", 1), cell("LRTB", 2)}))
		_, err := a.Finish()
		assert.ErrorIs(t, err, audit.ErrDisconnected)
	})
	t.Run("use after finish", func(t *testing.T) {
		a, _ := audit.New(1)
		require.NoError(t, a.Observe([]maze.Cell{cell("LRTB", 1)}))
		_, err := a.Finish()
		require.NoError(t, err)
		assert.ErrorIs(t, a.Observe([]maze.Cell{cell("LRTB", 1)}), audit.ErrFinished)
		_, err = a.Finish()
		assert.ErrorIs(t, err, audit.ErrFinished)
	})
}

func TestNew_InvalidWidth(t *testing.T) {
	_, err := audit.New(0)
	assert.ErrorIs(t, err, audit.ErrWidthMismatch)
	_, err = audit.New(maze.MaxWidth + 1)
	assert.ErrorIs(t, err, audit.ErrWidthMismatch)
}

// TestGeneratedMazesArePerfect drives the engine over a grid of sizes and
// seeds and verifies every maze end to end.
func TestGeneratedMazesArePerfect(t *testing.T) {
	for _, width := range []int{1, 2, 3, 7, 32} {
		for _, iterations := range []int{2, 3, 10} {
			for seed := int64(1); seed <= 10; seed++ {
				b, err := maze.New(width, iterations, maze.WithSeed(seed))
				require.NoError(t, err)
				a, err := audit.New(width)
				require.NoError(t, err)

				require.NoError(t, b.Run(func(row []maze.Cell, _ bool) error {
					return a.Observe(row)
				}), "width=%d iterations=%d seed=%d", width, iterations, seed)

				rep, err := a.Finish()
				require.NoError(t, err, "width=%d iterations=%d seed=%d", width, iterations, seed)
				assert.Equal(t, iterations, rep.Rows)
				assert.Equal(t, rep.Cells-1, rep.Passages)
			}
		}
	}
}
