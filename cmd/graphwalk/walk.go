package main

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/graphfsm"
	"github.com/felixgeelhaar/graphfsm/export"
	"github.com/felixgeelhaar/graphfsm/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type walkOptions struct {
	start   string
	strict  bool
	dotPath string
	metrics bool
}

func newWalkCmd(a *app) *cobra.Command {
	var opts walkOptions

	cmd := &cobra.Command{
		Use:   "walk FILE [INPUT...]",
		Short: "Feed inputs to a machine and report the walk",
		Long: `Loads a YAML machine definition and steps it once per INPUT, matching
inputs against transition guards by equality. Every matched step prints
"from -input-> to"; unmatched inputs leave the state unchanged and are logged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = a.cfg.Strict
			}
			return a.runWalk(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start state (default: the definition's initial state)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first input with no transition")
	cmd.Flags().StringVar(&opts.dotPath, "dot", "", "write the walk as a Graphviz DOT file")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print step metrics in Prometheus text format")
	return cmd
}

func (a *app) runWalk(out io.Writer, path string, inputs []string, opts walkOptions) error {
	def, err := graphfsm.LoadYAMLFile(path)
	if err != nil {
		return err
	}

	start := def.Initial
	if opts.start != "" {
		start = opts.start
	}

	ws, err := graphfsm.NewWalkingSelector(def.Graph, start, graphfsm.Equal[string]())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	stepper := metrics.Instrument(def.ID, ws, metrics.NewCollector(reg))
	logger := a.logger.With("machine", def.ID)

	current := start
	for _, input := range inputs {
		_, next, ok := stepper.Step(input)
		if !ok {
			logger.Warn("no transition", "input", input, "state", current)
			if opts.strict {
				return fmt.Errorf("input %q: no transition from %q", input, current)
			}
			continue
		}
		logger.Debug("step", "input", input, "from", current, "to", next)
		fmt.Fprintf(out, "%s -%s-> %s\n", current, input, next)
		current = next
	}
	fmt.Fprintf(out, "final: %s\n", current)

	if opts.dotPath != "" {
		dot := export.NewDOTExporter(def.ID, def.Graph).
			WithCurrent(ws.StateID()).
			WithSelection(ws.Selection())
		if err := writeFile(opts.dotPath, dot.Write); err != nil {
			return err
		}
		logger.Info("wrote dot", "path", opts.dotPath)
	}

	if opts.metrics {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		if err := writeMetrics(out, families); err != nil {
			return err
		}
	}

	return nil
}

// writeFile creates path and fills it with write. The file is closed
// explicitly so a failed flush is reported.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// writeMetrics prints families in the Prometheus text exposition format.
func writeMetrics(out io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
