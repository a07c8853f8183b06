package tsp

import (
	"fmt"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// InOrder visits objectives in input order. Each leg starts where the
// previous reached objective was; an unreachable objective is reported as a
// Leg with Reached == false and the position stays unchanged.
//
// It validates its input like OptimalTour.
//
// Complexity: O(K·(V + E) log V) for K objectives.
func (p *Planner) InOrder(origin gridgraph.Coord, objectives []gridgraph.Coord) (Walk, error) {
	if err := p.validate(origin, objectives); err != nil {
		return Walk{}, err
	}

	w := Walk{Origin: origin, Legs: make([]Leg, 0, len(objectives))}
	pos := origin
	for i, target := range objectives {
		path, err := p.engine.ShortestPath(pos, target)
		if err != nil {
			return Walk{}, err
		}
		leg := Leg{Objective: i, Target: target, Path: path}
		if path.Empty() {
			p.options.Logger.Debug("objective unreachable", "objective", target.String(), "from", pos.String())
			w.Legs = append(w.Legs, leg)
			continue
		}
		if leg.StepCosts, err = p.engine.StepCosts(path); err != nil {
			return Walk{}, fmt.Errorf("tsp: %w", err)
		}
		for _, c := range leg.StepCosts {
			leg.Cost += c
		}
		leg.Reached = true
		w.Cost += leg.Cost
		w.Steps += len(leg.StepCosts)
		w.Legs = append(w.Legs, leg)
		pos = target
	}

	return w, nil
}

// Reached returns the number of reached objectives.
func (w Walk) Reached() int {
	n := 0
	for _, l := range w.Legs {
		if l.Reached {
			n++
		}
	}

	return n
}
