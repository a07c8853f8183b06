package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// Scenario is one complete problem instance.
type Scenario struct {
	Grid       *gridgraph.GridGraph
	Costs      *gridgraph.CostTable
	Origin     gridgraph.Coord
	Objectives []gridgraph.Coord
}

// Network binds the grid and cost table.
func (s Scenario) Network() (*gridgraph.Network, error) {
	if s.Grid == nil || s.Costs == nil {
		return nil, ErrIncomplete
	}

	return gridgraph.NewNetwork(s.Grid, s.Costs)
}

// Validate checks that the origin and every objective lie on the grid.
func (s Scenario) Validate() error {
	if s.Grid == nil || s.Costs == nil {
		return ErrIncomplete
	}
	if err := s.Grid.Check(s.Origin); err != nil {
		return fmt.Errorf("scenario: origin: %w", err)
	}
	for i, o := range s.Objectives {
		if err := s.Grid.Check(o); err != nil {
			return fmt.Errorf("scenario: objective %d: %w", i+1, err)
		}
	}

	return nil
}
