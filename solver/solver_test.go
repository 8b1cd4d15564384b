package solver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/solver"
)

// SolverSuite exercises Solve on the classic sample mazes and on
// hand-built edge cases.
type SolverSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolverSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// c is shorthand for a coordinate literal.
func c(r, col int) maze.Coord { return maze.Coord{Row: r, Col: col} }

// TestCorridorMaze: the 4×4 sample has a unique 5-step path.
func (s *SolverSuite) TestCorridorMaze() {
	g := maze.MustParseRows(
		"S O O O",
		"D O D O",
		"O O O O",
		"X D D O",
	)
	sol, err := solver.SolveGrid(s.ctx, g)
	require.NoError(s.T(), err)
	require.True(s.T(), sol.Found())
	require.Equal(s.T(), 5, sol.Steps())
	require.Equal(s.T(), []maze.Coord{c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0), c(3, 0)}, sol.Path)
	require.Equal(s.T(), "[(0, 0) (0, 1) (1, 1) (2, 1) (2, 0) (3, 0)]", sol.String())

	require.Equal(s.T(),
		"S * O O\n"+
			"D * D O\n"+
			"* * O O\n"+
			"X D D O\n",
		maze.Render(g, sol.Path).String())
}

// TestWindingMaze: the 5×5 sample under orthogonal moves needs 11 steps
// around the right-hand side; the left column is only reachable through X.
func (s *SolverSuite) TestWindingMaze() {
	g := maze.MustParseRows(
		"O O O O O",
		"D S D D O",
		"O D D O O",
		"O D D O D",
		"O X O O D",
	)
	sol, err := solver.SolveGrid(s.ctx, g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 11, sol.Steps())
	require.Equal(s.T(), []maze.Coord{
		c(1, 1), c(0, 1), c(0, 2), c(0, 3), c(0, 4), c(1, 4),
		c(2, 4), c(2, 3), c(3, 3), c(4, 3), c(4, 2), c(4, 1),
	}, sol.Path)
	require.Equal(s.T(),
		"O * * * *\n"+
			"D S D D *\n"+
			"O D D * *\n"+
			"O D D * D\n"+
			"O X * * D\n",
		maze.Render(g, sol.Path).String())
}

// TestWalledOffMaze: the third sample has no route; NotFound, no error.
func (s *SolverSuite) TestWalledOffMaze() {
	g := maze.MustParseRows(
		"S O O O O",
		"D O D D O",
		"O D D O O",
		"O D D D D",
		"O X O O D",
	)
	sol, err := solver.SolveGrid(s.ctx, g)
	require.NoError(s.T(), err)
	require.False(s.T(), sol.Found())
	require.Equal(s.T(), solver.StatusNotFound, sol.Status)
	require.Equal(s.T(), -1, sol.Steps())
	require.Nil(s.T(), sol.Path)
	require.Equal(s.T(), solver.NoSolutionMarker, sol.String())
	require.Equal(s.T(), g.String(), maze.Render(g, sol.Path).String())
}

// TestSourceEqualsDestination: a single-cell path with zero steps.
func (s *SolverSuite) TestSourceEqualsDestination() {
	adj := maze.MustParseRows("S O X").BuildAdjacency()
	sol, err := solver.Solve(s.ctx, adj, c(0, 1), c(0, 1))
	require.NoError(s.T(), err)
	require.True(s.T(), sol.Found())
	require.Equal(s.T(), []maze.Coord{c(0, 1)}, sol.Path)
	require.Equal(s.T(), 0, sol.Steps())
}

// TestEndpointNotTraversable: a blocked or out-of-range endpoint is NotFound.
func (s *SolverSuite) TestEndpointNotTraversable() {
	adj := maze.MustParseRows("S D X").BuildAdjacency()
	for _, tc := range []struct{ src, dst maze.Coord }{
		{c(0, 1), c(0, 2)},
		{c(0, 0), c(0, 1)},
		{c(0, 0), c(7, 7)},
	} {
		sol, err := solver.Solve(s.ctx, adj, tc.src, tc.dst)
		require.NoError(s.T(), err)
		require.False(s.T(), sol.Found(), "%v→%v", tc.src, tc.dst)
	}
}

// TestDeterminism: solving the same maze twice yields the identical path.
func (s *SolverSuite) TestDeterminism() {
	g := maze.MustParseRows(
		"S O O O O",
		"O O O O O",
		"O O D O O",
		"O O O O X",
	)
	first, err := solver.SolveGrid(s.ctx, g)
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := solver.SolveGrid(s.ctx, g)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// TestCancellation: a cancelled context surfaces as an error, not NotFound.
func (s *SolverSuite) TestCancellation() {
	g := maze.MustParseRows("S O O O X")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := solver.SolveGrid(ctx, g)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestOnVisitError: a hook error aborts the solve.
func (s *SolverSuite) TestOnVisitError() {
	g := maze.MustParseRows("S O O O X")
	stop := errors.New("stop")
	var seen []maze.Coord
	_, err := solver.SolveGrid(s.ctx, g, solver.WithOnVisit(func(cell maze.Coord, depth int) error {
		seen = append(seen, cell)
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(s.T(), err, stop)
	require.Equal(s.T(), []maze.Coord{c(0, 0), c(0, 1), c(0, 2)}, seen)
}

// TestLogger: debug traces reach the supplied logger.
func (s *SolverSuite) TestLogger() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := solver.SolveGrid(s.ctx, maze.MustParseRows("S O X"), solver.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "path found")
	require.Contains(s.T(), buf.String(), "steps=2")
}

// TestPathProperties checks, for every ordered pair of traversable cells,
// that a found path starts and ends at the endpoints, walks only adjacency
// edges, and has exactly the all-pairs shortest distance computed
// independently with Floyd–Warshall.
func (s *SolverSuite) TestPathProperties() {
	g := maze.MustParseRows(
		"S O O D O",
		"D O D O O",
		"O O O O D",
		"O D D O O",
		"O O D D X",
	)
	adj := g.BuildAdjacency()
	coords := g.Coords()
	dist := floydWarshall(adj, coords)

	for i, u := range coords {
		for j, v := range coords {
			sol, err := solver.Solve(s.ctx, adj, u, v)
			require.NoError(s.T(), err)

			if math.IsInf(dist[i][j], 1) {
				require.False(s.T(), sol.Found(), "%v→%v should be unreachable", u, v)
				continue
			}
			require.True(s.T(), sol.Found(), "%v→%v should be reachable", u, v)
			require.Equal(s.T(), int(dist[i][j]), sol.Steps(), "%v→%v", u, v)
			require.Equal(s.T(), u, sol.Path[0])
			require.Equal(s.T(), v, sol.Path[len(sol.Path)-1])
			for k := 1; k < len(sol.Path); k++ {
				require.True(s.T(), adj.HasEdge(sol.Path[k-1], sol.Path[k]),
					"%v→%v is not an edge", sol.Path[k-1], sol.Path[k])
			}
		}
	}
}

// floydWarshall computes all-pairs hop distances over adj, +Inf when unreachable.
// Complexity: O(n³).
func floydWarshall(adj maze.Adjacency, coords []maze.Coord) [][]float64 {
	n := len(coords)
	index := make(map[maze.Coord]int, n)
	for i, cell := range coords {
		index[cell] = i
	}
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
		for _, nb := range adj.Neighbors(coords[i]) {
			d[i][index[nb]] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

// TestConcurrentIndependentSolves: independent mazes share nothing and may
// be solved in parallel.
func TestConcurrentIndependentSolves(t *testing.T) {
	rows := []string{
		"S O O O",
		"D O D O",
		"O O O O",
		"X D D O",
	}
	const workers = 16
	var wg sync.WaitGroup
	steps := make([]int, workers)
	errs := make([]error, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			g, err := maze.ParseRows(rows)
			if err != nil {
				errs[i] = err
				return
			}
			sol, err := solver.SolveGrid(context.Background(), g)
			steps[i], errs[i] = sol.Steps(), err
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, 5, steps[i])
	}
}

// TestStatusString covers the Stringer.
func TestStatusString(t *testing.T) {
	require.Equal(t, "found", solver.StatusFound.String())
	require.Equal(t, "not found", solver.StatusNotFound.String())
}
