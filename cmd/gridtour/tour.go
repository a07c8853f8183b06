package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtour/gridgraph"
	"github.com/katalvlaran/gridtour/render"
	"github.com/katalvlaran/gridtour/report"
)

func newTourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Collect every reachable objective on the cheapest closed tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()
			sc, err := a.loadScenario(ctx)
			if err != nil {
				return err
			}
			p, err := a.planner(sc)
			if err != nil {
				return err
			}

			done := timed(ctx, a.logger, "optimal tour")
			tour, err := p.OptimalTour(sc.Origin, sc.Objectives)
			done(&err)
			if err != nil {
				return err
			}
			for _, u := range tour.Unreachable {
				a.logger.Warn("objective unreachable", "objective", u.String())
			}

			w, closeOut, err := output(cmd, a.cfg.Out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeOut(); err == nil {
					err = cerr
				}
			}()
			sum, err := report.WriteTour(w, tour, sc.Objectives)
			if err != nil {
				return err
			}
			a.logger.Info("tour complete", "steps", sum.Steps, "cost", sum.Cost, "collected", sum.Collected, "objectives", len(sc.Objectives))

			if a.cfg.PNG == "" {
				return nil
			}
			return a.savePNG(sc.Grid, render.Overlay{
				Origin:     &sc.Origin,
				Objectives: sc.Objectives,
				Collected:  collected(sc.Objectives, tour.Stops),
				Marks:      render.MarksForTour(tour, sc.Objectives),
				Path:       tour.Cells,
			})
		},
	}
}

func newWalkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Visit objectives in file order, each leg from the last one reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()
			sc, err := a.loadScenario(ctx)
			if err != nil {
				return err
			}
			p, err := a.planner(sc)
			if err != nil {
				return err
			}

			done := timed(ctx, a.logger, "walk")
			walk, err := p.InOrder(sc.Origin, sc.Objectives)
			done(&err)
			if err != nil {
				return err
			}

			w, closeOut, err := output(cmd, a.cfg.Out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeOut(); err == nil {
					err = cerr
				}
			}()
			sum, err := report.WriteWalk(w, walk)
			if err != nil {
				return err
			}
			a.logger.Info("walk complete", "steps", sum.Steps, "cost", sum.Cost, "collected", sum.Collected, "objectives", len(sc.Objectives))

			if a.cfg.PNG == "" {
				return nil
			}
			var route gridgraph.Path
			for _, leg := range walk.Legs {
				if !leg.Reached {
					continue
				}
				if len(route) > 0 {
					route = append(route, leg.Path[1:]...)
				} else {
					route = append(route, leg.Path...)
				}
			}
			reached := make([]bool, len(sc.Objectives))
			for _, leg := range walk.Legs {
				reached[leg.Objective] = leg.Reached
			}
			return a.savePNG(sc.Grid, render.Overlay{
				Origin:     &sc.Origin,
				Objectives: sc.Objectives,
				Collected:  reached,
				Marks:      render.MarksForWalk(walk),
				Path:       route,
			})
		},
	}
}

func (a *app) savePNG(g *gridgraph.GridGraph, ov render.Overlay) error {
	opts := render.DefaultOptions()
	opts.CellSize = a.cfg.CellSize
	if err := render.SavePNG(a.cfg.PNG, g, opts, ov); err != nil {
		return err
	}
	a.logger.Info("image written", "path", a.cfg.PNG)

	return nil
}

// collected flags every objective that appears among stops.
func collected(objectives []gridgraph.Coord, stops []gridgraph.Coord) []bool {
	at := make(map[gridgraph.Coord]bool, len(stops))
	for _, s := range stops {
		at[s] = true
	}
	out := make([]bool, len(objectives))
	for i, o := range objectives {
		out[i] = at[o]
	}

	return out
}
