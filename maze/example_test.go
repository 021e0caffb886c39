package maze_test

import (
	"fmt"

	"github.com/katalvlaran/ellers/maze"
)

// ExampleNew shows how a scripted coin pins the first row. true builds a
// wall, false opens a passage and merges the two sets.
func ExampleNew() {
	b, err := maze.New(5, 2, maze.WithCoin(maze.NewScriptedCoin(false, true, false, true)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range b.Row() {
		fmt.Printf("%d %s set=%d\n", c.Label, c.Walls, c.Set)
	}
	// Output:
	// 0 L-T- set=1
	// 1 -RT- set=1
	// 2 L-TB set=3
	// 3 -RT- set=3
	// 4 LRT- set=5
}

// ExampleBuilder_Run streams a whole maze and reports the shape of the
// closing row.
func ExampleBuilder_Run() {
	b, _ := maze.New(6, 4, maze.WithSeed(2024))

	rows := 0
	_ = b.Run(func(row []maze.Cell, last bool) error {
		rows++
		if last {
			fmt.Println("closing row sets:", row[0].Set == row[len(row)-1].Set)
		}
		return nil
	})
	fmt.Println("rows:", rows, "sets:", b.Sets())
	// Output:
	// closing row sets: true
	// rows: 4 sets: 1
}
