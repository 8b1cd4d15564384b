// Package bfs provides tunable options and error definitions
// for breadth-first search over any Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only view BFS needs: membership and neighbor listing.
// Neighbors must return the same order for the same vertex on every call
// for the traversal to be deterministic.
type Graph[N comparable] interface {
	Has(id N) bool
	Neighbors(id N) []N
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N comparable] func(*BFSOptions[N])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[N comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id N, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id N, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor N) bool

	// Target, when HasTarget is set, stops the search as soon as
	// Target has been visited.
	Target    N
	HasTarget bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no target (full traversal of the start component)
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[N comparable]() BFSOptions[N] {
	return BFSOptions[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *BFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the search once dest is dequeued and visited.
func WithTarget[N comparable](dest N) Option[N] {
	return func(o *BFSOptions[N]) {
		o.Target = dest
		o.HasTarget = true
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(id N, depth int)) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(id N, depth int)) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *BFSOptions[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the vertex the search began at.
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start,
//     for every discovered vertex.
//   - Parent: map from vertex to its predecessor in the BFS tree.
//     The start vertex has no entry.
type BFSResult[N comparable] struct {
	Start  N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether v was discovered by the search.
func (r *BFSResult[N]) Reached(v N) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest by walking
// Parent links backwards. Returns ErrNoPath if dest was not reached or the
// parent chain is broken before reaching the start.
func (r *BFSResult[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []N{dest}
	for cur := dest; cur != r.Start; {
		prev, ok := r.Parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w to %v: no predecessor for %v", ErrNoPath, dest, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
