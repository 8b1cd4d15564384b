package maze

// Render returns a display copy of g with every path cell marked Trail,
// except the Source and Destination, which keep their tags.
// Coordinates outside the grid or on Blocked cells are ignored.
// g is never modified; a nil or empty path yields a plain copy.
//
// Complexity: O(R×C + P).
func Render(g *Grid, path []Coord) Display {
	d := g.Clone()
	for _, c := range path {
		if c == g.source || c == g.destination || !g.Traversable(c) {
			continue
		}
		d[c.Row][c.Col] = Trail
	}
	return d
}
