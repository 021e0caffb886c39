// SPDX-License-Identifier: MIT
// Package: ellers/render
//
// renderer.go: the row printer for both output styles.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ellers/maze"
)

// Renderer writes maze rows to an io.Writer. It is not safe for concurrent
// use.
type Renderer struct {
	w      io.Writer
	width  int
	digits int // set id column width
	style  Style
	rows   int // rows written so far
}

// New returns a Renderer for a maze of the given dimensions. Dimensions
// follow maze.New: width ≥ 1 and iterations ≥ 2, else maze.ErrInvalidArgument.
// Panics on a nil writer.
func New(w io.Writer, width, iterations int, opts ...Option) (*Renderer, error) {
	if w == nil {
		panic("render: New(nil writer)")
	}
	if width < 1 || iterations < 2 {
		return nil, fmt.Errorf("render: New(%d, %d): %w", width, iterations, maze.ErrInvalidArgument)
	}
	r := &Renderer{
		w:      w,
		width:  width,
		digits: Digits(width * iterations),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Style returns the layout in use.
func (r *Renderer) Style() Style { return r.style }

// Rows returns the number of rows written so far.
func (r *Renderer) Rows() int { return r.rows }

// WriteRow renders one row. last marks the closing row, after which the box
// style also draws the floor. The signature matches maze.EmitFunc.
// Write errors are returned wrapped and never retried.
func (r *Renderer) WriteRow(row []maze.Cell, last bool) error {
	if len(row) != r.width {
		return fmt.Errorf("%w: got %d cells, want %d", ErrWidthMismatch, len(row), r.width)
	}

	var sb strings.Builder
	switch r.style {
	case StyleBox:
		r.box(&sb, row, last)
	default:
		r.sets(&sb, row)
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("render: write row %d: %w", r.rows, err)
	}
	r.rows++

	return nil
}

// sets writes the ceiling, wall/label and floor lines.
func (r *Renderer) sets(sb *strings.Builder, row []maze.Cell) {
	span := r.digits + 2
	solid, open := strings.Repeat("-", span), strings.Repeat(" ", span)

	for _, c := range row {
		sb.WriteString(pick(c.Walls.Has(maze.Top), solid, open))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for _, c := range row {
		fmt.Fprintf(sb, "%s%*d%s ",
			pick(c.Walls.Has(maze.Left), "|", " "), r.digits, int(c.Set), pick(c.Walls.Has(maze.Right), "|", " "))
	}
	sb.WriteByte('\n')

	for _, c := range row {
		sb.WriteString(pick(c.Walls.Has(maze.Bottom), solid, open))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
}

// box writes the ceiling and cell lines, plus the floor for the last row.
func (r *Renderer) box(sb *strings.Builder, row []maze.Cell, last bool) {
	line := func(w maze.Wall) {
		sb.WriteByte('+')
		for _, c := range row {
			sb.WriteString(pick(c.Walls.Has(w), "---", "   "))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}

	line(maze.Top)

	sb.WriteString(pick(row[0].Walls.Has(maze.Left), "|", " "))
	for _, c := range row {
		sb.WriteString("   ")
		sb.WriteString(pick(c.Walls.Has(maze.Right), "|", " "))
	}
	sb.WriteByte('\n')

	if last {
		line(maze.Bottom)
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
