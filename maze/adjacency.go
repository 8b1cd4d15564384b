package maze

// orthogonal lists the candidate neighbor offsets in a fixed order:
// down, up, right, left.
var orthogonal = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Adjacency maps every traversable coordinate to the traversable
// coordinates one orthogonal step away. Blocked cells are neither keys
// nor values. It is built once by BuildAdjacency and never mutated.
type Adjacency map[Coord][]Coord

// BuildAdjacency derives the 4-neighbor adjacency of g.
//
// Stage 1 collects in-bounds candidates for each traversable cell.
// Stage 2 filters those candidates against the traversable set into a
// fresh map; nothing is removed from a list while it is being iterated.
//
// Time:   O(R×C×4).
// Memory: O(R×C).
func (g *Grid) BuildAdjacency() Adjacency {
	candidates := make(map[Coord][]Coord, len(g.coords))
	for _, c := range g.coords {
		list := make([]Coord, 0, len(orthogonal))
		for _, d := range orthogonal {
			n := Coord{c.Row + d.Row, c.Col + d.Col}
			if g.InBounds(n) {
				list = append(list, n)
			}
		}
		candidates[c] = list
	}

	adj := make(Adjacency, len(candidates))
	for c, list := range candidates {
		kept := make([]Coord, 0, len(list))
		for _, n := range list {
			if g.Traversable(n) {
				kept = append(kept, n)
			}
		}
		adj[c] = kept
	}
	return adj
}

// Has reports whether c is a traversable cell of the adjacency.
func (a Adjacency) Has(c Coord) bool {
	_, ok := a[c]
	return ok
}

// Neighbors returns the neighbors of c in down, up, right, left order,
// or nil if c is not a key. The returned slice is a copy.
func (a Adjacency) Neighbors(c Coord) []Coord {
	list, ok := a[c]
	if !ok {
		return nil
	}
	out := make([]Coord, len(list))
	copy(out, list)
	return out
}

// HasEdge reports whether u and v are one step apart in the adjacency.
func (a Adjacency) HasEdge(u, v Coord) bool {
	for _, n := range a[u] {
		if n == v {
			return true
		}
	}
	return false
}

// Len returns the number of traversable cells.
func (a Adjacency) Len() int { return len(a) }

// Edges returns the number of undirected edges.
func (a Adjacency) Edges() int {
	total := 0
	for _, list := range a {
		total += len(list)
	}
	return total / 2
}
