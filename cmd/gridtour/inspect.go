package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtour/gridgraph"
	"github.com/katalvlaran/gridtour/scenario"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Describe a scenario, or list the scenarios stored in --db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if !a.cfg.hasFiles() && a.cfg.DB != "" && a.cfg.Name == "" {
				st, err := scenario.OpenStore(ctx, a.cfg.DB)
				if err != nil {
					return err
				}
				defer st.Close()
				list, err := st.List(ctx)
				if err != nil {
					return err
				}
				return writeList(out, list)
			}

			sc, err := a.loadScenario(ctx)
			if err != nil {
				return err
			}
			net, err := sc.Network()
			if err != nil {
				return err
			}
			return writeInspect(out, sc, net)
		},
	}
}

func writeList(w io.Writer, list []scenario.Summary) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no scenarios")
		return err
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(w, "%s\t%dx%d\t%d costs\t%d objectives\t%s\n",
			s.Name, s.Width, s.Height, s.Costs, s.Objectives, s.CreatedAt.Format("2006-01-02 15:04")); err != nil {
			return err
		}
	}

	return nil
}

func writeInspect(w io.Writer, sc scenario.Scenario, net *gridgraph.Network) error {
	counts := map[gridgraph.Terrain]int{}
	for _, c := range sc.Grid.Cells() {
		counts[c.Terrain]++
	}
	reach, err := net.Reachable(sc.Origin)
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("grid: %dx%d", sc.Grid.Width, sc.Grid.Height),
		fmt.Sprintf("terrain: %s=%d %s=%d %s=%d",
			gridgraph.Grass, counts[gridgraph.Grass],
			gridgraph.Sand, counts[gridgraph.Sand],
			gridgraph.Impassable, counts[gridgraph.Impassable]),
		fmt.Sprintf("travel costs: %d", sc.Costs.Len()),
		fmt.Sprintf("origin: %v reaches %d cells", sc.Origin, len(reach)),
		fmt.Sprintf("islands: %d", len(net.Components())),
	}
	for i, o := range sc.Objectives {
		state := "unreachable"
		if net.CanReach(sc.Origin, o) {
			state = "reachable"
		}
		lines = append(lines, fmt.Sprintf("objective %d %v: %s", i+1, o, state))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
