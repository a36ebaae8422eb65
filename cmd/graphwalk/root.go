package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root has loaded it.
type app struct {
	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.Default()}

	root := &cobra.Command{
		Use:          "graphwalk",
		Short:        "Walk and export state graphs defined in YAML",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	root.AddCommand(newWalkCmd(a), newExportCmd(a))
	return root
}
