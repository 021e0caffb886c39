// Package dsu implements the disjoint-set registry used by the row engine
// of package maze to track which cells of the current row are known to be
// mutually reachable.
//
// What:
//
//   - Registry maps a SetID to the collection of cell Labels it contains.
//   - Sets are created empty, filled with Add, pruned with Remove and
//     combined with Merge. Identifiers come from a monotonic counter and are
//     never reused, even after a set is merged away or swept.
//   - Members have set semantics (unique, unordered); read access returns a
//     sorted copy so callers see deterministic output.
//
// Why not a parent-pointer union-find?
//
//	Eller's algorithm retires a whole row of labels at every step. A forest of
//	parent pointers cannot forget a label without rebuilding its subtree,
//	whereas an explicit member collection lets the owner prune retired labels
//	and relabel the members of a merged set in O(|from|).
//
// Contract:
//
//   - Create never fails.
//   - Add is idempotent; Remove is a no-op for absent labels and keeps the
//     set alive even when it becomes empty.
//   - Merge(from, to) moves every member of from into to and discards from;
//     it returns the moved labels so the owner can update the set id it
//     records on each cell. Merge(x, x) is a no-op.
//   - Any operation naming an unknown SetID returns an error wrapping
//     ErrUnknownSet. Such an id always indicates a bug in the caller.
//
// Complexity:
//
//   - Create, Add, Remove, Has, Contains, Size: O(1) expected.
//   - Merge: O(|from|).
//   - Members: O(k log k) for a set of k labels (sorted copy).
//   - Sweep: O(S) over live sets.
//
// Concurrency:
//
//	A Registry is not safe for concurrent use; it has exactly one owner.
package dsu
