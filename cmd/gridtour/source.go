package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridtour/dijkstra"
	"github.com/katalvlaran/gridtour/scenario"
	"github.com/katalvlaran/gridtour/tsp"
)

// loadScenario reads the scenario named by the config: text files when any
// file flag is set, otherwise the store.
func (a *app) loadScenario(ctx context.Context) (sc scenario.Scenario, err error) {
	done := timed(ctx, a.logger, "load")
	defer done(&err)

	switch {
	case a.cfg.hasFiles():
		if !a.cfg.filesComplete() {
			return scenario.Scenario{}, errNoSource
		}
		a.logger.Debug("loading text scenario", "map", a.cfg.Map, "costs", a.cfg.Costs, "objectives", a.cfg.Objectives, "mirror", a.cfg.Mirror)
		return scenario.LoadFiles(ctx, scenario.Files{
			Map:        a.cfg.Map,
			Costs:      a.cfg.Costs,
			Objectives: a.cfg.Objectives,
		}, scenario.LoadOptions{Mirror: a.cfg.Mirror})

	case a.cfg.DB != "" && a.cfg.Name != "":
		a.logger.Debug("loading stored scenario", "db", a.cfg.DB, "name", a.cfg.Name)
		st, err := scenario.OpenStore(ctx, a.cfg.DB)
		if err != nil {
			return scenario.Scenario{}, err
		}
		defer st.Close()
		return st.Load(ctx, a.cfg.Name)

	default:
		return scenario.Scenario{}, errNoSource
	}
}

// planner binds the engine and planner for sc.
func (a *app) planner(sc scenario.Scenario) (*tsp.Planner, error) {
	net, err := sc.Network()
	if err != nil {
		return nil, err
	}
	engine, err := dijkstra.NewEngine(net)
	if err != nil {
		return nil, err
	}
	p, err := tsp.NewPlanner(engine,
		tsp.WithMaxObjectives(a.cfg.MaxObjectives),
		tsp.WithLogger(a.logger.With("component", "tsp")),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return p, nil
}
