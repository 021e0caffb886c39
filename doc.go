// Package ellers is a streaming perfect-maze generator built on Eller's
// algorithm.
//
// What is ellers?
//
//	A small library and command that produce mazes of any height while
//	holding a single row in memory:
//		• dsu    - disjoint-set registry: which cells are already connected
//		• maze   - the row engine: first row, transitions, closing row
//		• audit  - streaming verifier: the rows form a perfect maze
//		• render - text output: set-id rows or a "+---+" grid
//		• config - settings from the environment and .env files
//
// A perfect maze has exactly one route between any two cells: it is
// connected and has no cycles.
//
// Quick start:
//
//	b, err := maze.New(16, 10, maze.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	r, _ := render.New(os.Stdout, 16, 10, render.WithStyle(render.StyleBox))
//	return b.Run(r.WriteRow)
//
// Command line:
//
//	go run ./cmd/ellers 16 10 --style box --verify
//
// Memory is O(width) whatever the number of rows; see package maze for the
// per-row rules.
package ellers
