// Package maze is the row engine of a streaming perfect-maze generator based
// on Eller's algorithm.
//
// What:
//
//	A Builder publishes a maze of a fixed width one row at a time. The first
//	row comes from New, each following row from Next, and the last one from
//	Close. All published rows together form a perfect maze: every two cells
//	are joined by exactly one route and no route forms a cycle.
//
// How:
//
//	Connectivity is tracked with a dsu.Registry. Two cells share a set when
//	they are known to be reachable from each other through the rows already
//	published. Per row:
//	  1. Carry-down: each cell gets a successor; a Bottom wall above turns
//	     into the successor's Top wall and puts it into a new singleton set.
//	  2. Vertical pass: neighbours in one set are always separated (anti-cycle
//	     rule); other boundaries are walled or merged at random.
//	  3. Retirement: the superseded row is dropped.
//	  4. Bottom pass: interior cells draw Bottom walls at random, and every set
//	     keeps at least one cell without one (down-passage).
//	Close finishes with a closed floor and merges every remaining set.
//
// Memory:
//
//	O(width). Only the current row is held, and during a transition the
//	previous one; PeakLiveCells never exceeds 2·width.
//
// Determinism:
//
//	Every random decision is one Coin flip. WithSeed makes runs reproducible,
//	WithCoin with a ScriptedCoin pins individual decisions in tests.
//
// Errors:
//
//	ErrInvalidArgument  - width outside [1, MaxWidth], iterations < 2, or too many cells.
//	ErrInvariantViolation - the engine found an inconsistency; treat as fatal.
//	ErrClosed           - Next or Close after Close.
//	ErrExhausted        - Next when only the closing row is left.
package maze
