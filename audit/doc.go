// Package audit verifies, row by row, that a stream of maze rows forms a
// perfect maze.
//
// What:
//
//	An Auditor consumes the rows a maze.Builder publishes and checks that
//	  • every row has the declared width and a closed outer boundary;
//	  • walls agree on both sides of every boundary (Right of x is Left of
//	    x+1, Top of a cell is the Bottom of the cell above);
//	  • the first row has a closed roof and the last a closed floor;
//	  • no open passage ever closes a cycle;
//	  • every cell is reachable from every other one;
//	  • cells of one row share a set id exactly when they are connected.
//
// How:
//
//	Kruskal-style union-find (parent/rank maps, path compression, union by
//	rank) over two rows at a time. After each row the components are
//	compacted onto the row's columns, so memory stays O(width) however many
//	rows are observed. Global connectivity follows from counting: a forest
//	with n cells and k passages has n-k components.
//
// Errors:
//
//	ErrWidthMismatch, ErrBoundary, ErrWallMismatch, ErrCycle,
//	ErrDisconnected, ErrSetMismatch, ErrFinished.
package audit
