package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/catalog"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/solver"
)

// logLevelEnv selects the stderr log level: debug, info, warn or error.
const logLevelEnv = "MAZESOLVER_LOG_LEVEL"

// result pairs a solved grid with its solution.
type result struct {
	grid     *maze.Grid
	solution solver.Solution
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mazesolver",
		Short: "Solve the built-in sample mazes with breadth-first search",
		Long: "Solves every built-in sample maze and prints the step count, the maze\n" +
			"with its path marked by '*', and the raw coordinate path.\n\n" +
			"Logs go to stderr; set " + logLevelEnv + " to debug, info, warn or error.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), os.Getenv(logLevelEnv))
			results, err := solveAll(cmd.Context(), logger)
			if err != nil {
				return err
			}
			for _, r := range results {
				printResult(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// newLogger builds a text slog logger at the level named by level,
// falling back to warn for empty or unknown values.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// solveAll loads the catalogue and solves every maze concurrently.
// Each goroutine owns its grid, adjacency and solution; results come back
// in catalogue order.
func solveAll(ctx context.Context, logger *slog.Logger) ([]result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	samples, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("catalogue loaded", slog.Int("mazes", len(samples)))

	results := make([]result, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range samples {
		g.Go(func() error {
			grid, err := s.Grid()
			if err != nil {
				return err
			}
			log := logger.With(slog.String("maze", s.Name))
			sol, err := solver.SolveGrid(gctx, grid, solver.WithLogger(log))
			if err != nil {
				return fmt.Errorf("solve %q: %w", s.Name, err)
			}
			log.Info("solved", slog.String("status", sol.Status.String()), slog.Int("steps", sol.Steps()))
			results[i] = result{grid: grid, solution: sol}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printResult writes the step line, the rendered maze and the raw path.
func printResult(w io.Writer, r result) {
	if r.solution.Found() {
		fmt.Fprintf(w, "The maze can be solved in %d steps.\n", r.solution.Steps())
	} else {
		fmt.Fprintln(w, "The maze has no solution.")
	}
	fmt.Fprint(w, maze.Render(r.grid, r.solution.Path))
	fmt.Fprintf(w, "Solution: %s\n\n", r.solution)
}
