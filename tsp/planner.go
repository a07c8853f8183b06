package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridtour/dijkstra"
	"github.com/katalvlaran/gridtour/gridgraph"
)

// Planner builds tours over the network of a dijkstra.Engine.
// A Planner is safe for concurrent use.
type Planner struct {
	engine  *dijkstra.Engine
	grid    *gridgraph.GridGraph
	options Options
}

// NewPlanner binds a planner to engine.
// Returns ErrNilEngine, or ErrInvalidOption for a MaxObjectives outside
// 1…MaxObjectivesLimit.
func NewPlanner(engine *dijkstra.Engine, opts ...Option) (*Planner, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxObjectives < 1 || cfg.MaxObjectives > MaxObjectivesLimit {
		return nil, fmt.Errorf("%w: max objectives %d, want 1..%d", ErrInvalidOption, cfg.MaxObjectives, MaxObjectivesLimit)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	return &Planner{engine: engine, grid: engine.Network().Grid(), options: cfg}, nil
}

// OptimalTour returns the minimum-cost closed tour from origin through every
// objective reachable from origin and back.
//
// The result is an empty Tour, with a nil error, when objectives is empty,
// none are reachable, or no closed tour exists. An objective equal to origin
// is visited at zero cost.
//
// Errors (all reported before any search):
//   - gridgraph.ErrOutOfBounds for an origin or objective outside the grid.
//   - ErrTooManyObjectives when len(objectives) exceeds the configured bound.
//   - ErrDuplicateObjective when a cell is listed twice.
//
// ErrBrokenSegment is returned if reconstruction meets a tour step without a
// cached path.
func (p *Planner) OptimalTour(origin gridgraph.Coord, objectives []gridgraph.Coord) (Tour, error) {
	if err := p.validate(origin, objectives); err != nil {
		return Tour{}, err
	}
	log := p.options.Logger
	if len(objectives) == 0 {
		return Tour{Cells: gridgraph.Path{}}, nil
	}

	// --- 1. Reachability filter ---
	home, err := p.engine.Tree(origin)
	if err != nil {
		return Tour{}, err
	}
	nodes := []gridgraph.Coord{origin}
	var unreachable []gridgraph.Coord
	for _, o := range objectives {
		if home.PathTo(o).Empty() {
			log.Debug("objective unreachable", "objective", o.String())
			unreachable = append(unreachable, o)
			continue
		}
		nodes = append(nodes, o)
	}
	if len(nodes) == 1 {
		log.Debug("no reachable objectives", "origin", origin.String())
		return Tour{Cells: gridgraph.Path{}, Unreachable: unreachable}, nil
	}

	// --- 2. Distance matrix and segment cache ---
	dist, segs, err := p.matrix(nodes, home)
	if err != nil {
		return Tour{}, err
	}
	log.Debug("distance matrix built", "nodes", len(nodes))

	// --- 3. Exact search ---
	res, err := TSPExact(dist, p.options.MaxObjectives+1)
	if errors.Is(err, ErrIncompleteGraph) {
		log.Debug("no closed tour", "nodes", len(nodes))
		return Tour{Cells: gridgraph.Path{}, Unreachable: unreachable}, nil
	}
	if err != nil {
		return Tour{}, err
	}

	// --- 4. Reconstruction ---
	cells, err := stitch(res.Tour, segs)
	if err != nil {
		return Tour{}, err
	}
	steps, err := p.engine.StepCosts(cells)
	if err != nil {
		return Tour{}, fmt.Errorf("tsp: %w", err)
	}
	var total float64
	for _, c := range steps {
		total += c
	}
	stops := make([]gridgraph.Coord, 0, len(nodes)-1)
	for _, idx := range res.Tour[1 : len(res.Tour)-1] {
		stops = append(stops, nodes[idx])
	}
	log.Debug("tour solved", "stops", len(stops), "steps", len(steps), "cost", res.Cost)

	return Tour{
		Cells:       cells,
		Stops:       stops,
		StepCosts:   steps,
		Cost:        round1e9(total),
		Unreachable: unreachable,
	}, nil
}

// validate performs the boundary checks shared by OptimalTour and InOrder.
func (p *Planner) validate(origin gridgraph.Coord, objectives []gridgraph.Coord) error {
	if err := p.grid.Check(origin); err != nil {
		return fmt.Errorf("tsp: origin: %w", err)
	}
	if len(objectives) > p.options.MaxObjectives {
		return fmt.Errorf("%w: %d, limit %d", ErrTooManyObjectives, len(objectives), p.options.MaxObjectives)
	}
	seen := make(map[gridgraph.Coord]struct{}, len(objectives))
	for i, o := range objectives {
		if err := p.grid.Check(o); err != nil {
			return fmt.Errorf("tsp: objective %d: %w", i, err)
		}
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateObjective, o)
		}
		seen[o] = struct{}{}
	}

	return nil
}

// matrix computes the all-pairs cost matrix over nodes and caches the path
// behind every finite entry, keyed by the ordered node-index pair. home is the
// already computed tree of nodes[0].
func (p *Planner) matrix(nodes []gridgraph.Coord, home *dijkstra.Tree) ([][]float64, map[[2]int]gridgraph.Path, error) {
	n := len(nodes)
	dist := make([][]float64, n)
	segs := make(map[[2]int]gridgraph.Path, n*n)
	for i := 0; i < n; i++ {
		tree := home
		if i > 0 {
			var err error
			if tree, err = p.engine.Tree(nodes[i]); err != nil {
				return nil, nil, err
			}
		}
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cost, ok := tree.CostTo(nodes[j])
			dist[i][j] = cost
			if ok {
				segs[[2]int{i, j}] = tree.PathTo(nodes[j])
			}
		}
	}

	return dist, segs, nil
}

// stitch expands an index tour into one cell sequence. Every segment after
// the first drops its first cell, which is the previous segment's last.
func stitch(tour []int, segs map[[2]int]gridgraph.Path) (gridgraph.Path, error) {
	cells := gridgraph.Path{}
	for k := 0; k+1 < len(tour); k++ {
		from, to := tour[k], tour[k+1]
		seg := segs[[2]int{from, to}]
		if seg.Empty() {
			return nil, fmt.Errorf("%w: node %d→%d", ErrBrokenSegment, from, to)
		}
		if k == 0 {
			cells = append(cells, seg...)
			continue
		}
		if seg.Start() != cells.End() {
			return nil, fmt.Errorf("%w: node %d→%d starts at %v, want %v", ErrBrokenSegment, from, to, seg.Start(), cells.End())
		}
		cells = append(cells, seg[1:]...)
	}

	return cells, nil
}
