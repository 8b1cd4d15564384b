package maze

import (
	"fmt"
	"strings"
)

// Tag is the semantic label of a single grid cell.
type Tag byte

const (
	// Open is a free, traversable cell.
	Open Tag = 'O'
	// Blocked is a wall; it never appears in an Adjacency.
	Blocked Tag = 'D'
	// Source is the start cell.
	Source Tag = 'S'
	// Destination is the goal cell.
	Destination Tag = 'X'
	// Trail marks path cells in a rendered Display. Not valid on input.
	Trail Tag = '*'
)

// ParseTag converts a single rune into an input Tag.
// Trail and anything outside O/D/S/X yield ErrUnknownTag.
func ParseTag(r rune) (Tag, error) {
	switch r {
	case rune(Open), rune(Blocked), rune(Source), rune(Destination):
		return Tag(r), nil
	default:
		return 0, fmt.Errorf("%w: %w %q", ErrInvalidMaze, ErrUnknownTag, r)
	}
}

// String returns the single-character form of t.
func (t Tag) String() string { return string(rune(t)) }

// Traversable reports whether a cell with tag t can be walked on.
func (t Tag) Traversable() bool { return t != Blocked }

// Coord is a (row, column) position in a grid.
type Coord struct {
	Row, Col int
}

// String renders c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Display is a rendered copy of a grid's tags, safe to modify.
type Display [][]Tag

// String formats d one row per line, cells separated by single spaces.
func (d Display) String() string {
	var sb strings.Builder
	for _, row := range d {
		for x, t := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(t))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Grid is an immutable, validated maze. Build one with New or ParseRows.
// cells[r][c] holds the original tag; coords lists the traversable cells in
// row-major order.
type Grid struct {
	rows, cols  int
	cells       [][]Tag
	coords      []Coord
	source      Coord
	destination Coord
}
