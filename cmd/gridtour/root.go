package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg    config
	logger *slog.Logger
	stderr io.Writer
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree with its own flag and environment bindings.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gridtour",
		Short:         "Shortest paths and optimal objective tours on a weighted grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadDotEnv(".env"); err != nil {
				return err
			}
			v, err := newViper(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if a.cfg, err = decodeConfig(v); err != nil {
				return err
			}
			a.stderr = cmd.ErrOrStderr()
			a.logger, err = newLogger(a.stderr, a.cfg.LogLevel)
			return err
		},
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		newTourCmd(a),
		newWalkCmd(a),
		newInspectCmd(a),
		newImportCmd(a),
	)

	return root
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// timed logs the duration of op when the returned func is called, with the
// error errp points to, if any.
func timed(ctx context.Context, logger *slog.Logger, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			logger.ErrorContext(ctx, "stage failed", "op", op, "dur", dur, "err", *errp)
			return
		}
		logger.DebugContext(ctx, "stage done", "op", op, "dur", dur)
	}
}

// output opens the report destination: stdout for "" or "-", otherwise a
// newly created file.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
