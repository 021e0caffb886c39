// SPDX-License-Identifier: MIT
// Package: ellers/maze
//
// run.go: driving a Builder from the first row to the closing one.

package maze

import "fmt"

// EmitFunc receives each published row in order. last is true only for the
// closing row. Returning an error stops generation.
type EmitFunc func(row []Cell, last bool) error

// Run publishes the remaining rows of the maze: the current row, then
// transitions until iterations-1 rows exist, then the closing row.
// It is normally called on a freshly constructed Builder.
func (b *Builder) Run(emit EmitFunc) error {
	if b.closed {
		return ErrClosed
	}
	if err := b.emit(emit, b.Row(), false); err != nil {
		return err
	}

	for b.rowIndex < b.iterations-2 {
		row, err := b.Next()
		if err != nil {
			return err
		}
		if err = b.emit(emit, row, false); err != nil {
			return err
		}
	}

	row, err := b.Close()
	if err != nil {
		return err
	}
	return b.emit(emit, row, true)
}

func (b *Builder) emit(emit EmitFunc, row []Cell, last bool) error {
	if err := emit(row, last); err != nil {
		return fmt.Errorf("maze: emit row %d: %w", b.rowIndex, err)
	}
	return nil
}
