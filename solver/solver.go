// Package solver finds shortest paths through a maze.Grid with
// breadth-first search and reports them as a tagged Solution.
//
// The pipeline is staged and each stage runs once per maze:
//
//	g, err := maze.ParseRows(rows)   // validate
//	adj := g.BuildAdjacency()        // graph
//	sol, err := solver.Solve(ctx, adj, g.Source(), g.Destination())
//	fmt.Print(maze.Render(g, sol.Path))
//
// Solve only returns an error for cancellation or a failing hook;
// an unreachable destination is reported as NotFound.
package solver

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/maze"
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunable parts of a solve.
type Options struct {
	// Logger receives debug traces of the search. Defaults to a discarding logger.
	Logger *slog.Logger
	// OnVisit is forwarded to the BFS engine; returning an error aborts the solve.
	OnVisit func(c maze.Coord, depth int) error
}

// DefaultOptions returns Options with a discarding logger and no hook.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a hook called for every cell the search visits.
func WithOnVisit(fn func(c maze.Coord, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Solve runs BFS over adj from src, stopping once dst is dequeued, and
// reconstructs the shortest path by walking predecessor links.
//
//   - src == dst (and present): Found with the single-cell path.
//   - src or dst missing from adj: NotFound.
//   - dst unreachable: NotFound.
//
// Time: O(V + E), Memory: O(V).
func Solve(ctx context.Context, adj maze.Adjacency, src, dst maze.Coord, opts ...Option) (Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With(slog.String("source", src.String()), slog.String("destination", dst.String()))

	if !adj.Has(src) || !adj.Has(dst) {
		log.Debug("endpoint not traversable")
		return NotFound(), nil
	}
	if src == dst {
		return Found([]maze.Coord{src}), nil
	}

	bopts := []bfs.Option[maze.Coord]{
		bfs.WithContext[maze.Coord](ctx),
		bfs.WithTarget(dst),
		bfs.WithOnDequeue(func(c maze.Coord, depth int) {
			log.Debug("dequeue", slog.String("cell", c.String()), slog.Int("depth", depth))
		}),
	}
	if o.OnVisit != nil {
		bopts = append(bopts, bfs.WithOnVisit(o.OnVisit))
	}

	res, err := bfs.BFS[maze.Coord](adj, src, bopts...)
	if err != nil {
		return Solution{}, err
	}

	// PathTo only fails with bfs.ErrNoPath.
	path, err := res.PathTo(dst)
	if err != nil {
		log.Debug("destination unreachable", slog.Int("visited", len(res.Order)))
		return NotFound(), nil
	}
	log.Debug("path found", slog.Int("steps", len(path)-1), slog.Int("visited", len(res.Order)))
	return Found(path), nil
}

// SolveGrid builds the adjacency of g and solves from its Source to its
// Destination.
func SolveGrid(ctx context.Context, g *maze.Grid, opts ...Option) (Solution, error) {
	return Solve(ctx, g.BuildAdjacency(), g.Source(), g.Destination(), opts...)
}
