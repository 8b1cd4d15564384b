// Package maze treats a rectangular grid of tagged cells as a graph of
// walkable coordinates, ready for shortest-path search.
//
// What:
//
//   - Grid wraps a validated [][]Tag with exactly one Source and one Destination.
//   - BuildAdjacency derives the orthogonal (4-neighbor) adjacency between
//     every pair of traversable cells.
//   - Render marks a solved path on a display copy of the grid.
//
// Why:
//
//   - Keeps parsing, graph construction and drawing as separate staged calls,
//     so each stage can be tested on its own and failures surface early.
//
// Vocabulary:
//
//	O  Open         traversable
//	D  Blocked      never part of the adjacency
//	S  Source       traversable, exactly one per grid
//	X  Destination  traversable, exactly one per grid
//	*  Trail        display only, produced by Render
//
// Complexity:
//
//   - New / ParseRows:  O(R×C) time and memory.
//   - BuildAdjacency:   O(R×C×4) time, O(R×C) memory.
//   - Render:           O(R×C + P) time, P = path length.
//
// Errors:
//
//   - ErrInvalidMaze: umbrella for every validation failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTag: a cell is not one of O, D, S, X.
//   - ErrMissingEndpoint: no Source or no Destination cell.
//   - ErrDuplicateEndpoint: more than one Source or Destination cell.
package maze
