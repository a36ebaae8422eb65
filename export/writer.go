package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/felixgeelhaar/graphfsm"
)

// Formats accepted by WriteDefinitions.
const (
	FormatXState = "xstate"
	FormatDOT    = "dot"
)

// Formats lists every supported output format.
var Formats = []string{FormatXState, FormatDOT}

var (
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrDuplicateMachine = errors.New("duplicate machine id")
	ErrMachineNotFound  = errors.New("machine not found")
)

// MachineExporter produces an XState machine. XStateExporter implements it.
type MachineExporter interface {
	Export() (*XStateMachine, error)
}

// WriteOptions controls WriteDefinitions.
type WriteOptions struct {
	// Format is FormatXState (the default when empty) or FormatDOT.
	Format string

	// Indent indents JSON output; empty writes compact JSON.
	Indent string

	// Machine restricts output to the definition with this id.
	Machine string
}

// WriteDefinitions writes definitions to w. In XState format a single
// definition is written as one machine object and several as an object
// keyed by machine id. In DOT format each definition becomes one digraph,
// in the order given. Definition ids must be unique.
func WriteDefinitions[NW comparable, EW any](w io.Writer, defs []*graphfsm.Definition[NW, EW], opts WriteOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatXState
	}
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, format, FormatXState, FormatDOT)
	}

	selected, err := selectDefinitions(defs, opts.Machine)
	if err != nil {
		return err
	}

	if format == FormatDOT {
		for _, def := range selected {
			if err := NewDOTExporter(def.ID, def.Graph).Write(w); err != nil {
				return fmt.Errorf("export %q: %w", def.ID, err)
			}
		}
		return nil
	}

	if len(selected) == 1 {
		return WriteMachine(w, NewDefinitionExporter(selected[0]), opts.Indent)
	}
	machines := make(map[string]MachineExporter, len(selected))
	for _, def := range selected {
		machines[def.ID] = NewDefinitionExporter(def)
	}
	return WriteMachines(w, machines, opts.Indent)
}

func selectDefinitions[NW comparable, EW any](defs []*graphfsm.Definition[NW, EW], machine string) ([]*graphfsm.Definition[NW, EW], error) {
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if _, dup := seen[def.ID]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateMachine, def.ID)
		}
		seen[def.ID] = struct{}{}
	}
	if machine == "" {
		return defs, nil
	}
	for _, def := range defs {
		if def.ID == machine {
			return []*graphfsm.Definition[NW, EW]{def}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMachineNotFound, machine)
}

// WriteMachine writes one machine as JSON followed by a newline.
func WriteMachine(w io.Writer, exporter MachineExporter, indent string) error {
	machine, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return writeJSON(w, machine, indent)
}

// WriteMachines writes machines as one JSON object keyed by id. Machines
// are exported in id order and the first failure is returned.
func WriteMachines(w io.Writer, machines map[string]MachineExporter, indent string) error {
	result := make(map[string]*XStateMachine, len(machines))
	for _, id := range slices.Sorted(maps.Keys(machines)) {
		machine, err := machines[id].Export()
		if err != nil {
			return fmt.Errorf("export %q failed: %w", id, err)
		}
		result[id] = machine
	}
	return writeJSON(w, result, indent)
}

func writeJSON(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
