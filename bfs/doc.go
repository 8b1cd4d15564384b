// Package bfs provides a generic breadth-first search over any Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Stops early once a target is visited (WithTarget).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Graph
//
//	Any type with Has(N) bool and Neighbors(N) []N satisfies Graph[N];
//	maze.Adjacency is the main implementation in this module.
//
// Determinism
//
//	BFS enqueues neighbors in the order Graph.Neighbors returns them, so a
//	graph with stable neighbor order yields a fully reproducible visit
//	sequence and parent tree.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS[maze.Coord](adj, src,
//	    bfs.WithContext[maze.Coord](ctx),
//	    bfs.WithTarget(dst),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // a context error, or a wrapped OnVisit error
//	}
//	path, err := res.PathTo(dst) // ErrNoPath if dst was never reached
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo when the destination is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
