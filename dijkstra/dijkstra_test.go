package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridtour/dijkstra"
	"github.com/katalvlaran/gridtour/gridgraph"
)

const (
	G = gridgraph.Grass
	S = gridgraph.Sand
	X = gridgraph.Impassable
)

func c(x, y int) gridgraph.Coord { return gridgraph.Coord{X: x, Y: y} }

// mustNetwork builds a network from rows and mirrored uniform costs.
func mustNetwork(t *testing.T, rows [][]gridgraph.Terrain, cost float64) *gridgraph.Network {
	t.Helper()
	gg, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	var recs []gridgraph.CostRecord
	for _, cell := range gg.Cells() {
		for _, n := range gg.Neighbors(cell.Coord) {
			recs = append(recs, gridgraph.CostRecord{From: cell.Coord, To: n, Cost: cost})
		}
	}
	ct, err := gridgraph.NewCostTable(recs)
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)

	return net
}

// randomNetwork builds a w×h network with random terrain and one-way costs;
// about a fifth of the ordered neighbour pairs are missing.
func randomNetwork(t *testing.T, rng *rand.Rand, w, h int) *gridgraph.Network {
	t.Helper()
	rows := make([][]gridgraph.Terrain, h)
	for y := range rows {
		rows[y] = make([]gridgraph.Terrain, w)
		for x := range rows[y] {
			switch r := rng.Intn(10); {
			case r < 2:
				rows[y][x] = X
			case r < 5:
				rows[y][x] = S
			default:
				rows[y][x] = G
			}
		}
	}
	gg, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	var recs []gridgraph.CostRecord
	for _, cell := range gg.Cells() {
		for _, n := range gg.Neighbors(cell.Coord) {
			if rng.Intn(5) == 0 {
				continue
			}
			recs = append(recs, gridgraph.CostRecord{From: cell.Coord, To: n, Cost: float64(rng.Intn(17)) / 4})
		}
	}
	ct, err := gridgraph.NewCostTable(recs)
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)

	return net
}

// bruteForce enumerates every simple path from src and returns the minimum
// cost to dst, or +Inf when no path exists.
func bruteForce(net *gridgraph.Network, src, dst int) float64 {
	best := math.Inf(1)
	onPath := make([]bool, net.Grid().Len())
	var walk func(u int, acc float64)
	walk = func(u int, acc float64) {
		if acc >= best {
			return
		}
		if u == dst {
			best = acc
			return
		}
		onPath[u] = true
		for _, a := range net.Arcs(u) {
			if !onPath[a.To] {
				walk(a.To, acc+a.Cost)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

// assertValidPath checks the shape of a non-empty result: correct endpoints,
// orthogonal steps, and no impassable cell entered.
func assertValidPath(t *testing.T, net *gridgraph.Network, p gridgraph.Path, from, to gridgraph.Coord) {
	t.Helper()
	require.Equal(t, from, p.Start())
	require.Equal(t, to, p.End())
	for i := 1; i < len(p); i++ {
		_, ok := net.CanMove(p[i-1], p[i])
		require.True(t, ok, "step %v→%v is not a permitted move", p[i-1], p[i])
	}
}

//----------------------------------------------------------------------------//
// Construction and boundaries
//----------------------------------------------------------------------------//

func TestNewEngine_NilNetwork(t *testing.T) {
	_, err := dijkstra.NewEngine(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilNetwork)
}

func TestShortestPath_OutOfBounds(t *testing.T) {
	net := mustNetwork(t, [][]gridgraph.Terrain{{G, G}}, 1)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	_, err = e.ShortestPath(c(-1, 0), c(1, 0))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = e.ShortestPath(c(0, 0), c(2, 0))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = e.Tree(c(0, 1))
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestShortestPath_SameCell(t *testing.T) {
	// Even an impassable cell is its own trivial path.
	net := mustNetwork(t, [][]gridgraph.Terrain{{G, X}}, 1)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	for _, a := range []gridgraph.Coord{c(0, 0), c(1, 0)} {
		p, err := e.ShortestPath(a, a)
		require.NoError(t, err)
		require.Equal(t, gridgraph.Path{a}, p)
		require.Equal(t, 0.0, e.PathCost(p))
	}
}

//----------------------------------------------------------------------------//
// Optimality and reachability
//----------------------------------------------------------------------------//

// TestShortestPath_DetourAroundSand prefers three cheap moves over one
// expensive one.
func TestShortestPath_DetourAroundSand(t *testing.T) {
	gg, err := gridgraph.FromRows([][]gridgraph.Terrain{
		{G, S},
		{G, G},
	})
	require.NoError(t, err)
	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{
		{From: c(0, 0), To: c(1, 0), Cost: 10},
		{From: c(0, 0), To: c(0, 1), Cost: 1},
		{From: c(0, 1), To: c(1, 1), Cost: 1},
		{From: c(1, 1), To: c(1, 0), Cost: 1},
	}, gridgraph.WithMirroring())
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	p, err := e.ShortestPath(c(0, 0), c(1, 0))
	require.NoError(t, err)
	require.Equal(t, gridgraph.Path{c(0, 0), c(0, 1), c(1, 1), c(1, 0)}, p)
	require.Equal(t, 3.0, e.PathCost(p))

	steps, err := e.StepCosts(p)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, steps)
}

func TestShortestPath_Unreachable(t *testing.T) {
	net := mustNetwork(t, [][]gridgraph.Terrain{
		{G, X, G},
		{G, X, G},
	}, 1)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	p, err := e.ShortestPath(c(0, 0), c(2, 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, p.Empty())

	// The destination is impassable.
	p, err = e.ShortestPath(c(0, 0), c(1, 0))
	require.NoError(t, err)
	require.True(t, p.Empty())
}

func TestShortestPath_OneWay(t *testing.T) {
	gg, err := gridgraph.FromRows([][]gridgraph.Terrain{{G, G}})
	require.NoError(t, err)
	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{{From: c(0, 0), To: c(1, 0), Cost: 2}})
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	p, err := e.ShortestPath(c(0, 0), c(1, 0))
	require.NoError(t, err)
	require.Len(t, p, 2)
	p, err = e.ShortestPath(c(1, 0), c(0, 0))
	require.NoError(t, err)
	require.True(t, p.Empty())
}

// TestShortestPath_MatchesBruteForce compares every pair on small random
// grids against exhaustive simple-path enumeration.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 15; trial++ {
		net := randomNetwork(t, rng, 3, 3)
		gg := net.Grid()
		e, err := dijkstra.NewEngine(net)
		require.NoError(t, err)
		for s := 0; s < gg.Len(); s++ {
			for d := 0; d < gg.Len(); d++ {
				from, to := gg.Coordinate(s), gg.Coordinate(d)
				p, err := e.ShortestPath(from, to)
				require.NoError(t, err)

				want := bruteForce(net, s, d)
				if math.IsInf(want, 1) {
					require.True(t, p.Empty(), "trial %d %v→%v", trial, from, to)
					continue
				}
				assertValidPath(t, net, p, from, to)
				require.InDelta(t, want, e.PathCost(p), 1e-9, "trial %d %v→%v", trial, from, to)
			}
		}
	}
}

// TestShortestPath_MatchesGonum cross-checks costs and reachability against
// gonum's Dijkstra on larger random grids.
func TestShortestPath_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 8; trial++ {
		net := randomNetwork(t, rng, 8, 6)
		gg := net.Grid()
		g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < gg.Len(); i++ {
			g.AddNode(simple.Node(int64(i)))
		}
		for u := 0; u < gg.Len(); u++ {
			for _, a := range net.Arcs(u) {
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(u)), simple.Node(int64(a.To)), a.Cost))
			}
		}
		e, err := dijkstra.NewEngine(net)
		require.NoError(t, err)

		for s := 0; s < gg.Len(); s += 5 {
			oracle := path.DijkstraFrom(g.Node(int64(s)), g)
			reach, err := net.Reachable(gg.Coordinate(s))
			require.NoError(t, err)
			reachable := make(map[gridgraph.Coord]bool, len(reach))
			for _, r := range reach {
				reachable[r] = true
			}
			for d := 0; d < gg.Len(); d++ {
				from, to := gg.Coordinate(s), gg.Coordinate(d)
				p, err := e.ShortestPath(from, to)
				require.NoError(t, err)
				require.Equal(t, reachable[to], !p.Empty(), "empty iff unreachable: %v→%v", from, to)

				want := oracle.WeightTo(int64(d))
				if math.IsInf(want, 1) {
					require.True(t, p.Empty())
					continue
				}
				assertValidPath(t, net, p, from, to)
				require.InDelta(t, want, e.PathCost(p), 1e-9, "trial %d %v→%v", trial, from, to)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestFullDrainAndTreeAgree verifies that early termination, a full drain and
// a single-source tree produce byte-identical paths.
func TestFullDrainAndTreeAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 6; trial++ {
		net := randomNetwork(t, rng, 7, 7)
		gg := net.Grid()
		early, err := dijkstra.NewEngine(net)
		require.NoError(t, err)
		drain, err := dijkstra.NewEngine(net, dijkstra.WithFullDrain())
		require.NoError(t, err)

		for s := 0; s < gg.Len(); s += 3 {
			from := gg.Coordinate(s)
			tree, err := early.Tree(from)
			require.NoError(t, err)
			for d := 0; d < gg.Len(); d++ {
				to := gg.Coordinate(d)
				p1, err := early.ShortestPath(from, to)
				require.NoError(t, err)
				p2, err := drain.ShortestPath(from, to)
				require.NoError(t, err)
				require.Equal(t, p1, p2)
				require.Equal(t, p1, tree.PathTo(to))

				cost, ok := tree.CostTo(to)
				require.Equal(t, !p1.Empty(), ok)
				if ok {
					require.InDelta(t, cost, early.PathCost(p1), 1e-9)
				}
			}
		}
	}
}

// TestShortestPath_TieBreak pins the chosen path on a uniform grid where
// both L-shaped routes cost the same.
func TestShortestPath_TieBreak(t *testing.T) {
	net := mustNetwork(t, [][]gridgraph.Terrain{
		{G, G},
		{G, G},
	}, 1)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	want := gridgraph.Path{c(0, 0), c(1, 0), c(1, 1)}
	for i := 0; i < 5; i++ {
		p, err := e.ShortestPath(c(0, 0), c(1, 1))
		require.NoError(t, err)
		require.Equal(t, want, p)
	}
}

//----------------------------------------------------------------------------//
// PathCost and StepCosts
//----------------------------------------------------------------------------//

func TestPathCost(t *testing.T) {
	gg, err := gridgraph.FromRows([][]gridgraph.Terrain{{G, G, G}})
	require.NoError(t, err)
	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{
		{From: c(0, 0), To: c(1, 0), Cost: 1.25},
		{From: c(1, 0), To: c(2, 0), Cost: 0.5},
	})
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)
	e, err := dijkstra.NewEngine(net)
	require.NoError(t, err)

	require.Equal(t, 0.0, e.PathCost(nil))
	require.Equal(t, 0.0, e.PathCost(gridgraph.Path{c(2, 0)}))
	require.Equal(t, 1.75, e.PathCost(gridgraph.Path{c(0, 0), c(1, 0), c(2, 0)}))
	require.Equal(t, gridgraph.NoEdge, e.PathCost(gridgraph.Path{c(2, 0), c(1, 0)}))

	_, err = e.StepCosts(gridgraph.Path{c(0, 0), c(1, 0), c(0, 0)})
	require.ErrorIs(t, err, dijkstra.ErrMissingEdge)
	steps, err := e.StepCosts(gridgraph.Path{c(0, 0)})
	require.NoError(t, err)
	require.Empty(t, steps)
}
