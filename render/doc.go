// Package render projects maze rows onto text, one row at a time.
//
// A Renderer never looks at more than the row it is given and never mutates
// it, so it can sit directly behind maze.Builder.Run:
//
//	r, _ := render.New(os.Stdout, width, iterations)
//	err := b.Run(r.WriteRow)
//
// Styles:
//
//	StyleSets (default) prints three lines per row: a ceiling, a line with
//	side walls and the set id of every cell, and a floor. Every column is
//	sized for the largest set id the maze can produce (Digits of
//	width·iterations) and followed by one space.
//
//	StyleBox draws the familiar "+---+" grid: a ceiling and a cell line per
//	row, and the floor after the last row.
package render
