package solver

import (
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// NoSolutionMarker is printed in place of a path when none exists.
const NoSolutionMarker = "No solution"

// Status tags a Solution as found or not found.
type Status int

const (
	// StatusNotFound means the destination is unreachable from the source.
	StatusNotFound Status = iota
	// StatusFound means Path holds a shortest source→destination path.
	StatusFound
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "not found"
}

// Solution is the outcome of Solve: either Found with a path, or NotFound.
// An unreachable destination is a normal outcome, never an error.
type Solution struct {
	Status Status
	// Path runs from source to destination inclusive; nil unless Found.
	Path []maze.Coord
}

// Found builds a StatusFound solution.
func Found(path []maze.Coord) Solution {
	return Solution{Status: StatusFound, Path: path}
}

// NotFound builds a StatusNotFound solution.
func NotFound() Solution {
	return Solution{Status: StatusNotFound}
}

// Found reports whether a path exists.
func (s Solution) Found() bool { return s.Status == StatusFound }

// Steps returns the number of moves on the path, or -1 if not found.
func (s Solution) Steps() int {
	if !s.Found() {
		return -1
	}
	return len(s.Path) - 1
}

// String renders the path as "[(r, c) (r, c) ...]" or NoSolutionMarker.
func (s Solution) String() string {
	if !s.Found() {
		return NoSolutionMarker
	}
	parts := make([]string, len(s.Path))
	for i, c := range s.Path {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
