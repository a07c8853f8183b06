package gridgraph

// Reachable returns every cell that can be reached from `from` through a
// sequence of permitted moves, including `from` itself, in row-major order.
// Costs are ignored; only the existence of a move matters.
//
// Returns ErrOutOfBounds when from lies outside the grid.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and the queue.
func (n *Network) Reachable(from Coord) ([]Coord, error) {
	if err := n.grid.Check(from); err != nil {
		return nil, err
	}
	seen := n.flood(n.grid.Index(from))

	var out []Coord
	for idx, ok := range seen {
		if ok {
			out = append(out, n.grid.Coordinate(idx))
		}
	}

	return out, nil
}

// CanReach reports whether to is reachable from from. Both coordinates must
// be in bounds; otherwise it returns false.
func (n *Network) CanReach(from, to Coord) bool {
	if !n.grid.InBounds(from) || !n.grid.InBounds(to) {
		return false
	}

	return n.flood(n.grid.Index(from))[n.grid.Index(to)]
}

// flood runs a BFS over permitted arcs from src.
func (n *Network) flood(src int) []bool {
	seen := make([]bool, n.grid.Len())
	queue := []int{src}
	seen[src] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range n.arcs[u] {
			if !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return seen
}

// Components finds all islands of passable cells, where two neighbours belong
// to the same island when a permitted move exists between them in either
// direction. Islands are listed in order of their first row-major cell and
// each island lists its cells in BFS order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for the undirected link lists and visited flags.
func (n *Network) Components() [][]Coord {
	total := n.grid.Len()
	links := make([][]int, total)
	for u := 0; u < total; u++ {
		if n.grid.terrain[u] == Impassable {
			continue
		}
		for _, a := range n.arcs[u] {
			links[u] = append(links[u], a.To)
			links[a.To] = append(links[a.To], u)
		}
	}

	seen := make([]bool, total)
	var comps [][]Coord
	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || n.grid.terrain[i0] == Impassable {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, n.grid.Coordinate(u))
			for _, v := range links[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
