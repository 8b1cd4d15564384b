// Package bfs provides breadth-first search over any Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, early stop at a target, depth limiting, and
// neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   Graph[N]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   []queueItem[N]
	head    int
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, any user-supplied hook error,
// or the context error on cancellation. On error the partial result
// gathered so far is still returned.
func BFS[N comparable](g Graph[N], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[N]bool),
		res: &BFSResult[N]{
			Start:  start,
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue,
// and adds it to the queue. Parent links are recorded by the caller.
func (w *walker[N]) enqueue(id N, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker[N]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.HasTarget && item.id == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, records the parent,
// and enqueues each unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, nextDepth)
		}
	}
}
