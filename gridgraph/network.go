package gridgraph

import "fmt"

// Network binds a GridGraph to a CostTable. It precomputes, for every cell,
// the outgoing arcs that obey the traversal rule, so searches never consult
// terrain or the cost map in their inner loop.
type Network struct {
	grid  *GridGraph
	costs *CostTable
	arcs  [][]Arc
}

// NewNetwork validates that every cost record lies inside g and precomputes
// the permitted moves.
//
// Returns ErrNilInput for nil arguments and ErrOutOfBounds when a record
// references a coordinate outside the grid. Records between non-adjacent
// cells are accepted but never used.
// Complexity: O(W×H×4 + C).
func NewNetwork(g *GridGraph, costs *CostTable) (*Network, error) {
	if g == nil || costs == nil {
		return nil, ErrNilInput
	}
	for e := range costs.costs {
		if !g.InBounds(e.From) || !g.InBounds(e.To) {
			return nil, fmt.Errorf("%w: cost record %v→%v in %dx%d grid", ErrOutOfBounds, e.From, e.To, g.Width, g.Height)
		}
	}

	net := &Network{grid: g, costs: costs, arcs: make([][]Arc, g.Len())}
	for u := range g.adj {
		from := g.Coordinate(u)
		var out []Arc
		for _, v := range g.adj[u] {
			if g.terrain[v] == Impassable {
				continue
			}
			c, ok := costs.Cost(from, g.Coordinate(v))
			if !ok || c < 0 {
				continue
			}
			out = append(out, Arc{To: v, Cost: c})
		}
		net.arcs[u] = out
	}

	return net, nil
}

// Grid returns the underlying grid.
func (n *Network) Grid() *GridGraph { return n.grid }

// Costs returns the underlying cost table.
func (n *Network) Costs() *CostTable { return n.costs }

// Arcs returns the permitted moves out of the cell at row-major index idx.
// The returned slice must not be modified.
func (n *Network) Arcs(idx int) []Arc { return n.arcs[idx] }

// CanMove reports whether from → to is a permitted move and returns its cost.
func (n *Network) CanMove(from, to Coord) (float64, bool) {
	if !n.grid.InBounds(from) || !n.grid.InBounds(to) {
		return 0, false
	}
	v := n.grid.Index(to)
	for _, a := range n.arcs[n.grid.Index(from)] {
		if a.To == v {
			return a.Cost, true
		}
	}

	return 0, false
}
