// Package export provides read-only visualization exporters for state
// graphs: XState JSON for the stately.ai tooling and Graphviz DOT with the
// current state and a walk's selection highlighted.
//
// Exporters only read the graph and, where given, the current node and a
// selection. They never touch a running machine.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/graphfsm"
	"github.com/felixgeelhaar/graphfsm/graph"
)

// XStateExporter converts a state graph to XState-compatible JSON format.
// The exported JSON can be used with:
// - XState Visualizer (stately.ai/viz)
// - XState Inspector
// - XState v5 compatible tools
type XStateExporter[N, E, NW comparable, EW any] struct {
	id      string
	graph   graph.Graph[N, E, NW, EW]
	initial NW
}

// NewXStateExporter creates a new exporter for the given graph. Node and
// edge weights are rendered with fmt.
func NewXStateExporter[N, E, NW comparable, EW any](id string, g graph.Graph[N, E, NW, EW], initial NW) *XStateExporter[N, E, NW, EW] {
	return &XStateExporter[N, E, NW, EW]{id: id, graph: g, initial: initial}
}

// NewDefinitionExporter creates an exporter for a compiled definition
func NewDefinitionExporter[NW comparable, EW any](def *graphfsm.Definition[NW, EW]) *XStateExporter[graph.NodeID, graph.EdgeID, NW, EW] {
	return NewXStateExporter[graph.NodeID, graph.EdgeID, NW, EW](def.ID, def.Graph, def.Initial)
}

// XStateMachine represents an XState machine configuration
type XStateMachine struct {
	ID      string                `json:"id"`
	Initial string                `json:"initial,omitempty"`
	States  map[string]XStateNode `json:"states"`
}

// XStateNode represents a single state in XState format
type XStateNode struct {
	Type string                        `json:"type,omitempty"` // "final" for states without transitions
	On   map[string][]XStateTransition `json:"on,omitempty"`   // Guard label to candidates, in match order
}

// XStateTransition represents a transition in XState format
type XStateTransition struct {
	Target string `json:"target"`
}

// Export converts the graph to XState format
func (e *XStateExporter[N, E, NW, EW]) Export() (*XStateMachine, error) {
	keys := stateKeys(e.graph)

	machine := &XStateMachine{
		ID:     e.id,
		States: make(map[string]XStateNode, len(keys)),
	}
	if id, ok := graph.Resolve(e.graph, e.initial); ok {
		machine.Initial = keys[id]
	}

	for id := range e.graph.NodeIDs() {
		node := XStateNode{}
		for edge := range e.graph.OutEdges(id) {
			target, ok := keys[edge.Target]
			if !ok {
				return nil, fmt.Errorf("edge %v: target %v: %w", edge.ID, edge.Target, graph.ErrNodeNotFound)
			}
			if node.On == nil {
				node.On = make(map[string][]XStateTransition)
			}
			guard := fmt.Sprint(edge.Weight)
			node.On[guard] = append(node.On[guard], XStateTransition{Target: target})
		}
		if node.On == nil {
			node.Type = "final"
		}
		machine.States[keys[id]] = node
	}

	return machine, nil
}

// ExportJSON returns the graph as a JSON string
func (e *XStateExporter[N, E, NW, EW]) ExportJSON() (string, error) {
	machine, err := e.Export()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(machine)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ExportJSONIndent returns the graph as a formatted JSON string
func (e *XStateExporter[N, E, NW, EW]) ExportJSONIndent(prefix, indent string) (string, error) {
	machine, err := e.Export()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(machine, prefix, indent)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// stateKeys assigns every node a unique state key. Keys are the formatted
// weight; later nodes sharing a weight get a "#n" suffix.
func stateKeys[N, E, NW comparable, EW any](g graph.Graph[N, E, NW, EW]) map[N]string {
	keys := make(map[N]string)
	seen := make(map[string]int)
	for id := range g.NodeIDs() {
		w, _ := g.NodeWeight(id)
		key := fmt.Sprint(w)
		seen[key]++
		if n := seen[key]; n > 1 {
			key = fmt.Sprintf("%s#%d", key, n)
		}
		keys[id] = key
	}
	return keys
}
