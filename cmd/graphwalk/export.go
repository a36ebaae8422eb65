package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/felixgeelhaar/graphfsm"
	"github.com/felixgeelhaar/graphfsm/export"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	format  string
	pretty  bool
	output  string
	machine string
}

func (o exportOptions) writeOptions() export.WriteOptions {
	opts := export.WriteOptions{Format: o.format, Machine: o.machine}
	if o.pretty {
		opts.Indent = "  "
	}
	return opts
}

func newExportCmd(a *app) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export FILE...",
		Short: "Export machine definitions to XState JSON or DOT",
		Long: `Exports one or more YAML machine definitions. With several files in
XState format the output is a single JSON object keyed by machine id.
Machine ids must be unique across files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(export.Formats, opts.format) {
				return fmt.Errorf("%w %q (want %s or %s)", export.ErrUnknownFormat, opts.format, export.FormatXState, export.FormatDOT)
			}

			defs, err := a.loadDefinitions(args)
			if err != nil {
				return err
			}

			if opts.output == "" {
				return export.WriteDefinitions(cmd.OutOrStdout(), defs, opts.writeOptions())
			}
			err = writeFile(opts.output, func(w io.Writer) error {
				return export.WriteDefinitions(w, defs, opts.writeOptions())
			})
			if err != nil {
				return err
			}
			a.logger.Info("wrote export", "path", opts.output, "format", opts.format)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", export.FormatXState, "output format: xstate or dot")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&opts.machine, "machine", "", "export only the machine with this id")
	return cmd
}

func (a *app) loadDefinitions(paths []string) ([]*graphfsm.Definition[string, string], error) {
	defs := make([]*graphfsm.Definition[string, string], 0, len(paths))
	for _, path := range paths {
		def, err := graphfsm.LoadYAMLFile(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded definition", "path", path, "machine", def.ID)
		defs = append(defs, def)
	}
	return defs, nil
}
