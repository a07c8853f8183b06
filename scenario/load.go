package scenario

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// Files names the three text inputs of a scenario.
type Files struct {
	Map        string
	Costs      string
	Objectives string
}

// LoadOptions controls how text inputs are interpreted.
//
// Mirror – store every cost record for both directions.
type LoadOptions struct {
	Mirror bool
}

// Parse builds a Scenario from three readers.
func Parse(mapR, costsR, objectivesR io.Reader, opts LoadOptions) (Scenario, error) {
	grid, err := ReadMap(mapR)
	if err != nil {
		return Scenario{}, fmt.Errorf("map: %w", err)
	}
	recs, err := ReadCosts(costsR)
	if err != nil {
		return Scenario{}, fmt.Errorf("costs: %w", err)
	}
	var copts []gridgraph.CostOption
	if opts.Mirror {
		copts = append(copts, gridgraph.WithMirroring())
	}
	costs, err := gridgraph.NewCostTable(recs, copts...)
	if err != nil {
		return Scenario{}, fmt.Errorf("costs: %w", err)
	}
	origin, objectives, err := ReadObjectives(objectivesR)
	if err != nil {
		return Scenario{}, fmt.Errorf("objectives: %w", err)
	}

	s := Scenario{Grid: grid, Costs: costs, Origin: origin, Objectives: objectives}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// LoadFiles opens and parses the files named by f.
func LoadFiles(ctx context.Context, f Files, opts LoadOptions) (Scenario, error) {
	readers := make([]*os.File, 0, 3)
	defer func() {
		for _, r := range readers {
			_ = r.Close()
		}
	}()
	for _, name := range []string{f.Map, f.Costs, f.Objectives} {
		if err := ctx.Err(); err != nil {
			return Scenario{}, err
		}
		fh, err := os.Open(name)
		if err != nil {
			return Scenario{}, fmt.Errorf("scenario: %w", err)
		}
		readers = append(readers, fh)
	}

	s, err := Parse(readers[0], readers[1], readers[2], opts)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}

	return s, nil
}
