// Package mazepath finds shortest paths through 2D grid mazes with
// breadth-first search.
//
// A maze is a rectangular grid of tagged cells:
//
//	S O O O      S  source        O  open
//	D O D O      X  destination   D  blocked
//	O O O O
//	X D D O
//
// Movement is orthogonal only (up, down, left, right), every step costs one,
// and the shortest path is the one BFS discovers first.
//
// Under the hood, everything is organized under small subpackages:
//
//	maze/           — Grid parsing & validation, 4-neighbor Adjacency, Render
//	bfs/            — generic breadth-first search with hooks & early stop
//	solver/         — Solve / SolveGrid, tagged Found / NotFound Solution
//	catalog/        — built-in sample mazes embedded from YAML
//	cmd/mazesolver/ — demo CLI printing every sample's solution
//
// Quick start:
//
//	g, err := maze.ParseRows([]string{"S O", "D X"})
//	sol, err := solver.SolveGrid(ctx, g)
//	fmt.Print(maze.Render(g, sol.Path))
//
//	go run github.com/katalvlaran/mazepath/cmd/mazesolver
package mazepath
