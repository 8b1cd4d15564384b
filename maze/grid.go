package maze

import (
	"fmt"
	"unicode"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of tags.
// It deep-copies the input to ensure immutability.
// Returns an error wrapping ErrInvalidMaze together with one of
// ErrEmptyGrid, ErrNonRectangular, ErrUnknownTag, ErrMissingEndpoint or
// ErrDuplicateEndpoint.
// Algorithmic complexity: O(R×C) time and memory.
func New(tags [][]Tag) (*Grid, error) {
	if len(tags) == 0 || len(tags[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, ErrEmptyGrid)
	}
	h, w := len(tags), len(tags[0])
	for r, row := range tags {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrInvalidMaze, ErrNonRectangular, r, len(row), w)
		}
	}

	g := &Grid{rows: h, cols: w, cells: make([][]Tag, h)}
	var sources, destinations int
	for r := 0; r < h; r++ {
		g.cells[r] = make([]Tag, w)
		for c := 0; c < w; c++ {
			t, err := ParseTag(rune(tags[r][c]))
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Coord{r, c})
			}
			g.cells[r][c] = t
			switch t {
			case Source:
				sources++
				g.source = Coord{r, c}
			case Destination:
				destinations++
				g.destination = Coord{r, c}
			}
			if t.Traversable() {
				g.coords = append(g.coords, Coord{r, c})
			}
		}
	}

	switch {
	case sources == 0:
		return nil, fmt.Errorf("%w: %w: no source cell", ErrInvalidMaze, ErrMissingEndpoint)
	case destinations == 0:
		return nil, fmt.Errorf("%w: %w: no destination cell", ErrInvalidMaze, ErrMissingEndpoint)
	case sources > 1:
		return nil, fmt.Errorf("%w: %w: %d source cells", ErrInvalidMaze, ErrDuplicateEndpoint, sources)
	case destinations > 1:
		return nil, fmt.Errorf("%w: %w: %d destination cells", ErrInvalidMaze, ErrDuplicateEndpoint, destinations)
	}

	return g, nil
}

// ParseRows builds a Grid from text rows such as "S O D" or "SOD".
// Whitespace inside a row is ignored; every other rune is one cell.
func ParseRows(rows []string) (*Grid, error) {
	tags := make([][]Tag, 0, len(rows))
	for r, line := range rows {
		row := make([]Tag, 0, len(line))
		col := 0
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}
			t, err := ParseTag(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Coord{r, col})
			}
			row = append(row, t)
			col++
		}
		tags = append(tags, row)
	}
	return New(tags)
}

// MustParseRows is like ParseRows but panics on error.
// Intended for package-level fixtures and tests.
func MustParseRows(rows ...string) *Grid {
	g, err := ParseRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Source returns the coordinate of the single Source cell.
func (g *Grid) Source() Coord { return g.source }

// Destination returns the coordinate of the single Destination cell.
func (g *Grid) Destination() Coord { return g.destination }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tag at c, or Blocked if c is out of bounds.
func (g *Grid) At(c Coord) Tag {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[c.Row][c.Col]
}

// Traversable reports whether c is in bounds and not Blocked.
func (g *Grid) Traversable(c Coord) bool {
	return g.At(c).Traversable()
}

// Coords returns the traversable coordinates in row-major order.
// The returned slice is a copy.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, len(g.coords))
	copy(out, g.coords)
	return out
}

// Clone returns a deep copy of the cell tags as a Display.
func (g *Grid) Clone() Display {
	d := make(Display, g.rows)
	for r := range g.cells {
		d[r] = make([]Tag, g.cols)
		copy(d[r], g.cells[r])
	}
	return d
}

// String formats the unsolved grid, one row per line.
func (g *Grid) String() string {
	return g.Clone().String()
}
