package maze_test

import (
	"testing"

	"github.com/katalvlaran/ellers/maze"
	"github.com/stretchr/testify/assert"
)

func TestWalls(t *testing.T) {
	var ws maze.Walls
	assert.Equal(t, "----", ws.String())

	ws.Add(maze.Left)
	ws.Add(maze.Top)
	ws.Add(maze.Top)
	assert.True(t, ws.Has(maze.Left))
	assert.True(t, ws.Has(maze.Top))
	assert.False(t, ws.Has(maze.Right))
	assert.Equal(t, "L-T-", ws.String())

	assert.True(t, ws.Remove(maze.Top))
	assert.False(t, ws.Remove(maze.Top), "second removal reports absence")
	assert.Equal(t, maze.NewWalls(maze.Left), ws)
	assert.Equal(t, "LRTB", maze.NewWalls(maze.Bottom, maze.Top, maze.Right, maze.Left).String())
}

func TestWall_String(t *testing.T) {
	assert.Equal(t, "Left", maze.Left.String())
	assert.Equal(t, "Right", maze.Right.String())
	assert.Equal(t, "Top", maze.Top.String())
	assert.Equal(t, "Bottom", maze.Bottom.String())
	assert.Equal(t, "Wall(?)", maze.Wall(0).String())
}

func TestScriptedCoin(t *testing.T) {
	t.Run("replays cyclically", func(t *testing.T) {
		c := maze.NewScriptedCoin(true, false, false)
		var got []bool
		for i := 0; i < 7; i++ {
			got = append(got, c.Flip())
		}
		assert.Equal(t, []bool{true, false, false, true, false, false, true}, got)
		assert.Equal(t, 7, c.Flips())
	})

	t.Run("empty script yields false", func(t *testing.T) {
		c := maze.NewScriptedCoin()
		assert.False(t, c.Flip())
		assert.False(t, c.Flip())
		assert.Equal(t, 2, c.Flips())
	})

	t.Run("script is copied", func(t *testing.T) {
		seq := []bool{true}
		c := maze.NewScriptedCoin(seq...)
		seq[0] = false
		assert.True(t, c.Flip())
	})
}

func TestCoinFunc(t *testing.T) {
	n := 0
	c := maze.CoinFunc(func() bool { n++; return n%2 == 0 })
	assert.False(t, c.Flip())
	assert.True(t, c.Flip())
}
