package graphfsm

import (
	"errors"

	"github.com/felixgeelhaar/graphfsm/graph"
)

// Re-export graph types for the public API
type (
	// Graph is the directed-graph capability set a machine runs over
	Graph[N, E, NW comparable, EW any] = graph.Graph[N, E, NW, EW]
	// EdgeRef is a single directed edge of a Graph
	EdgeRef[N, E comparable, EW any] = graph.EdgeRef[N, E, EW]
	// Digraph is the bundled insertion-ordered multigraph
	Digraph[NW comparable, EW any] = graph.Digraph[NW, EW]
	// NodeID identifies a node of a Digraph
	NodeID = graph.NodeID
	// EdgeID identifies an edge of a Digraph
	EdgeID = graph.EdgeID
)

// ErrUnknownState is returned when a state weight resolves to no node.
var ErrUnknownState = errors.New("unknown state")

// MatchFunc decides whether an input satisfies the guard of a transition.
// It returns the action to report and true when the transition should be
// taken. It is called synchronously while the outgoing edges of the current
// state are scanned and must not mutate the graph or the machine.
type MatchFunc[I, EW, A any] func(input I, guard EW) (A, bool)

// Cloner is implemented by node weights that need a deep copy when a state
// snapshot is handed out.
type Cloner[T any] interface {
	Clone() T
}

// snapshot copies a weight, using Clone when the weight provides it.
func snapshot[T any](w T) T {
	if c, ok := any(w).(Cloner[T]); ok {
		return c.Clone()
	}
	return w
}
