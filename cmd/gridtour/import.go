package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtour/scenario"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Store the text scenario under --name in the --db database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()
			if !a.cfg.filesComplete() {
				return errNeedsFiles
			}
			if a.cfg.DB == "" || a.cfg.Name == "" {
				return errNeedsStore
			}
			sc, err := a.loadScenario(ctx)
			if err != nil {
				return err
			}

			st, err := scenario.OpenStore(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			done := timed(ctx, a.logger, "save")
			err = st.Save(ctx, a.cfg.Name, sc)
			done(&err)
			if err != nil {
				return err
			}
			a.logger.Info("scenario saved", "db", a.cfg.DB, "name", a.cfg.Name)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %dx%d, %d costs, %d objectives\n",
				a.cfg.Name, sc.Grid.Width, sc.Grid.Height, sc.Costs.Len(), len(sc.Objectives))
			return err
		},
	}
}
