package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtour/gridgraph"
)

func c(x, y int) gridgraph.Coord { return gridgraph.Coord{X: x, Y: y} }

// uniform returns mirrored unit costs between every pair of orthogonal neighbours.
func uniform(gg *gridgraph.GridGraph, cost float64) []gridgraph.CostRecord {
	var recs []gridgraph.CostRecord
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, n := range gg.Neighbors(c(x, y)) {
				recs = append(recs, gridgraph.CostRecord{From: c(x, y), To: n, Cost: cost})
			}
		}
	}

	return recs
}

func TestNewCostTable_Validation(t *testing.T) {
	_, err := gridgraph.NewCostTable([]gridgraph.CostRecord{{From: c(0, 0), To: c(1, 0), Cost: -0.5}})
	require.ErrorIs(t, err, gridgraph.ErrNegativeCost)
	_, err = gridgraph.NewCostTable([]gridgraph.CostRecord{{From: c(0, 0), To: c(1, 0), Cost: math.NaN()}})
	require.ErrorIs(t, err, gridgraph.ErrInvalidCost)
	_, err = gridgraph.NewCostTable([]gridgraph.CostRecord{{From: c(0, 0), To: c(1, 0), Cost: math.Inf(1)}})
	require.ErrorIs(t, err, gridgraph.ErrInvalidCost)
}

func TestCostTable_DirectionalAndMirrored(t *testing.T) {
	recs := []gridgraph.CostRecord{
		{From: c(0, 0), To: c(1, 0), Cost: 2.5},
		{From: c(1, 0), To: c(2, 0), Cost: 0},
	}

	directional, err := gridgraph.NewCostTable(recs)
	require.NoError(t, err)
	require.Equal(t, 2, directional.Len())
	cost, ok := directional.Cost(c(0, 0), c(1, 0))
	require.True(t, ok)
	require.Equal(t, 2.5, cost)
	_, ok = directional.Cost(c(1, 0), c(0, 0))
	require.False(t, ok)
	require.Equal(t, gridgraph.NoEdge, directional.Lookup(c(1, 0), c(0, 0)))
	// A zero-cost move is an entry, not a missing one.
	require.Equal(t, 0.0, directional.Lookup(c(1, 0), c(2, 0)))

	mirrored, err := gridgraph.NewCostTable(recs, gridgraph.WithMirroring())
	require.NoError(t, err)
	require.Equal(t, 4, mirrored.Len())
	require.Equal(t, 2.5, mirrored.Lookup(c(1, 0), c(0, 0)))
}

func TestCostTable_LaterRecordsOverride(t *testing.T) {
	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{
		{From: c(0, 0), To: c(1, 0), Cost: 1},
		{From: c(1, 0), To: c(0, 0), Cost: 3},
	}, gridgraph.WithMirroring())
	require.NoError(t, err)
	require.Equal(t, 3.0, ct.Lookup(c(0, 0), c(1, 0)))
	require.Equal(t, 3.0, ct.Lookup(c(1, 0), c(0, 0)))

	recs := ct.Records()
	require.Len(t, recs, 2)
	require.Equal(t, c(0, 0), recs[0].From)
	require.Equal(t, c(1, 0), recs[1].From)
}

func TestNewNetwork_Validation(t *testing.T) {
	gg, err := gridgraph.FromRows([][]gridgraph.Terrain{{G, G}})
	require.NoError(t, err)

	_, err = gridgraph.NewNetwork(nil, nil)
	require.ErrorIs(t, err, gridgraph.ErrNilInput)

	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{{From: c(0, 0), To: c(0, 1), Cost: 1}})
	require.NoError(t, err)
	_, err = gridgraph.NewNetwork(gg, ct)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestNetwork_TraversalRule exercises each clause of the move rule.
func TestNetwork_TraversalRule(t *testing.T) {
	gg, err := gridgraph.FromRows([][]gridgraph.Terrain{
		{G, S, X},
		{G, G, G},
	})
	require.NoError(t, err)
	ct, err := gridgraph.NewCostTable([]gridgraph.CostRecord{
		{From: c(0, 0), To: c(1, 0), Cost: 4},   // grass → sand, permitted
		{From: c(1, 0), To: c(2, 0), Cost: 1},   // into impassable, rejected
		{From: c(0, 0), To: c(0, 1), Cost: 1},   // one-way
		{From: c(0, 0), To: c(1, 1), Cost: 1},   // diagonal, never a neighbour
		{From: c(2, 0), To: c(2, 1), Cost: 1.5}, // leaving impassable is allowed
	})
	require.NoError(t, err)
	net, err := gridgraph.NewNetwork(gg, ct)
	require.NoError(t, err)

	cost, ok := net.CanMove(c(0, 0), c(1, 0))
	require.True(t, ok)
	require.Equal(t, 4.0, cost, "terrain never alters the table cost")

	_, ok = net.CanMove(c(1, 0), c(2, 0))
	require.False(t, ok)
	_, ok = net.CanMove(c(0, 1), c(0, 0))
	require.False(t, ok, "reverse direction has no entry")
	_, ok = net.CanMove(c(0, 0), c(1, 1))
	require.False(t, ok)
	_, ok = net.CanMove(c(2, 0), c(2, 1))
	require.True(t, ok)
	_, ok = net.CanMove(c(9, 9), c(0, 0))
	require.False(t, ok)

	require.Len(t, net.Arcs(gg.Index(c(0, 0))), 2)
	require.Same(t, gg, net.Grid())
	require.Same(t, ct, net.Costs())
}
