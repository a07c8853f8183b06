package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// Engine answers shortest-path queries over a fixed Network.
type Engine struct {
	net     *gridgraph.Network
	grid    *gridgraph.GridGraph
	options Options
}

// NewEngine binds an engine to net.
// Returns ErrNilNetwork if net is nil.
func NewEngine(net *gridgraph.Network, opts ...Option) (*Engine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{net: net, grid: net.Grid(), options: cfg}, nil
}

// Network returns the network the engine searches.
func (e *Engine) Network() *gridgraph.Network { return e.net }

// ShortestPath returns the minimum-cost path from start to goal, or an empty
// Path when goal cannot be reached. ShortestPath(a, a) is the single-cell
// path [a].
//
// Returns gridgraph.ErrOutOfBounds if either cell lies outside the grid.
//
// Complexity: O((V + E) log V).
func (e *Engine) ShortestPath(start, goal gridgraph.Coord) (gridgraph.Path, error) {
	if err := e.grid.Check(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}
	if err := e.grid.Check(goal); err != nil {
		return nil, fmt.Errorf("dijkstra: goal: %w", err)
	}

	target := e.grid.Index(goal)
	if e.options.FullDrain {
		target = -1
	}
	r := e.run(e.grid.Index(start), target)

	return r.pathTo(e.grid.Index(goal)), nil
}

// Tree is the result of a full single-source run. It answers path and cost
// queries for every destination without further searching.
type Tree struct {
	r *runner
}

// Tree runs Dijkstra from start over the whole reachable region.
// Paths extracted from the tree are identical to ShortestPath results.
//
// Returns gridgraph.ErrOutOfBounds if start lies outside the grid.
func (e *Engine) Tree(start gridgraph.Coord) (*Tree, error) {
	if err := e.grid.Check(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}

	return &Tree{r: e.run(e.grid.Index(start), -1)}, nil
}

// PathTo returns the shortest path from the tree's source to goal, or an
// empty Path if goal is unreachable or out of bounds.
func (t *Tree) PathTo(goal gridgraph.Coord) gridgraph.Path {
	if !t.r.grid.InBounds(goal) {
		return gridgraph.Path{}
	}

	return t.r.pathTo(t.r.grid.Index(goal))
}

// CostTo returns the shortest-path cost to goal and whether it is finite.
func (t *Tree) CostTo(goal gridgraph.Coord) (float64, bool) {
	if !t.r.grid.InBounds(goal) {
		return math.Inf(1), false
	}
	d := t.r.dist[t.r.grid.Index(goal)]

	return d, !math.IsInf(d, 1)
}

// PathCost sums the cost-table entries of every consecutive pair in path.
// Empty and single-cell paths cost 0. If any pair has no entry, PathCost
// returns gridgraph.NoEdge.
//
// Complexity: O(len(path)).
func (e *Engine) PathCost(path gridgraph.Path) float64 {
	costs := e.net.Costs()
	var total float64
	for i := 0; i+1 < len(path); i++ {
		c, ok := costs.Cost(path[i], path[i+1])
		if !ok {
			return gridgraph.NoEdge
		}
		total += c
	}

	return total
}

// StepCosts returns the cost of each move along path: out[i] is the cost of
// path[i] → path[i+1]. It returns ErrMissingEdge wrapped with the first pair
// that has no cost-table entry.
func (e *Engine) StepCosts(path gridgraph.Path) ([]float64, error) {
	if len(path) < 2 {
		return []float64{}, nil
	}
	costs := e.net.Costs()
	out := make([]float64, len(path)-1)
	for i := range out {
		c, ok := costs.Cost(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %v→%v", ErrMissingEdge, path[i], path[i+1])
		}
		out[i] = c
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	grid    *gridgraph.GridGraph // read-only
	src     int                  // source index
	dist    []float64            // best-known cost per index; +Inf when unlabeled
	prev    []int                // predecessor index on the shortest path; -1 if none
	visited []bool               // settled flags
	pq      nodePQ               // lazy min-heap
}

// run executes Dijkstra from src. A non-negative target stops the search as
// soon as target is settled.
func (e *Engine) run(src, target int) *runner {
	n := e.grid.Len()
	r := &runner{
		grid:    e.grid,
		src:     src,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, 16),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx
		// Skip stale entries left behind by the lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == target {
			break
		}
		for _, a := range e.net.Arcs(u) {
			if r.visited[a.To] {
				continue
			}
			nd := r.dist[u] + a.Cost
			if nd >= r.dist[a.To] {
				continue
			}
			r.dist[a.To] = nd
			r.prev[a.To] = u
			heap.Push(&r.pq, nodeItem{idx: a.To, dist: nd})
		}
	}

	return r
}

// pathTo rebuilds the path to goal by walking predecessors back to the source.
func (r *runner) pathTo(goal int) gridgraph.Path {
	if math.IsInf(r.dist[goal], 1) {
		return gridgraph.Path{}
	}
	var rev []int
	for at := goal; at != -1; at = r.prev[at] {
		rev = append(rev, at)
	}
	path := make(gridgraph.Path, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = r.grid.Coordinate(idx)
	}

	return path
}

// nodeItem is a frontier entry: a cell index and the cost it was pushed with.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by row-major index for a deterministic total order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
