package audit

import "errors"

// Sentinel errors reported by the Auditor.
var (
	// ErrWidthMismatch indicates a row whose length differs from the width.
	ErrWidthMismatch = errors.New("audit: row width mismatch")

	// ErrBoundary indicates an open outer wall: side, roof or floor.
	ErrBoundary = errors.New("audit: open outer boundary")

	// ErrWallMismatch indicates two neighbouring cells disagree about the
	// wall between them.
	ErrWallMismatch = errors.New("audit: wall mismatch")

	// ErrCycle indicates an open passage between cells that were already
	// connected.
	ErrCycle = errors.New("audit: cycle")

	// ErrDisconnected indicates a region that can no longer be reached from
	// the rest of the maze.
	ErrDisconnected = errors.New("audit: disconnected")

	// ErrSetMismatch indicates set ids that disagree with connectivity.
	ErrSetMismatch = errors.New("audit: set id mismatch")

	// ErrFinished indicates use of an Auditor after Finish.
	ErrFinished = errors.New("audit: already finished")
)

// Report summarizes a verified maze.
type Report struct {
	Width    int // cells per row
	Rows     int // rows observed
	Cells    int // Width * Rows
	Passages int // open internal boundaries; Cells-1 for a perfect maze
}
