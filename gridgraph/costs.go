package gridgraph

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// CostTable is a read-only lookup of directional movement costs.
// Absence of an entry means "no direct move permitted".
type CostTable struct {
	costs map[Edge]float64
}

// CostOption configures NewCostTable.
type CostOption func(*costOptions)

type costOptions struct {
	mirror bool
}

// WithMirroring stores every record in both directions, so a single
// "A B cost" line also permits B→A at the same cost. Explicit records for the
// reverse direction that appear later still override the mirrored value.
func WithMirroring() CostOption {
	return func(o *costOptions) {
		o.mirror = true
	}
}

// NewCostTable builds a CostTable from records. Later records override
// earlier ones for the same ordered pair.
//
// Returns ErrInvalidCost for NaN/±Inf costs and ErrNegativeCost for costs
// below zero, wrapped with the offending pair.
// Complexity: O(C) where C = len(records).
func NewCostTable(records []CostRecord, opts ...CostOption) (*CostTable, error) {
	var cfg costOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	ct := &CostTable{costs: make(map[Edge]float64, len(records)*2)}
	for _, r := range records {
		if math.IsNaN(r.Cost) || math.IsInf(r.Cost, 0) {
			return nil, fmt.Errorf("%w: %v→%v cost=%v", ErrInvalidCost, r.From, r.To, r.Cost)
		}
		if r.Cost < 0 {
			return nil, fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, r.From, r.To, r.Cost)
		}
		ct.costs[Edge{From: r.From, To: r.To}] = r.Cost
		if cfg.mirror {
			ct.costs[Edge{From: r.To, To: r.From}] = r.Cost
		}
	}

	return ct, nil
}

// Cost returns the cost of moving from → to and whether an entry exists.
func (ct *CostTable) Cost(from, to Coord) (float64, bool) {
	c, ok := ct.costs[Edge{From: from, To: to}]
	return c, ok
}

// Lookup returns the cost of moving from → to, or NoEdge when the table has
// no entry for the pair.
func (ct *CostTable) Lookup(from, to Coord) float64 {
	if c, ok := ct.costs[Edge{From: from, To: to}]; ok {
		return c
	}

	return NoEdge
}

// Len returns the number of ordered pairs in the table.
func (ct *CostTable) Len() int { return len(ct.costs) }

// Records returns every entry sorted by (From.Y, From.X, To.Y, To.X).
func (ct *CostTable) Records() []CostRecord {
	out := make([]CostRecord, 0, len(ct.costs))
	for e, c := range ct.costs {
		out = append(out, CostRecord{From: e.From, To: e.To, Cost: c})
	}
	slices.SortFunc(out, func(a, b CostRecord) int {
		return cmp.Or(
			cmp.Compare(a.From.Y, b.From.Y),
			cmp.Compare(a.From.X, b.From.X),
			cmp.Compare(a.To.Y, b.To.Y),
			cmp.Compare(a.To.X, b.To.X),
		)
	})

	return out
}
