package graphfsm

import (
	"fmt"

	"github.com/felixgeelhaar/graphfsm/graph"
)

// Machine walks a subject through the states of a graph. The current state
// is a node identifier; transitions are the outgoing edges of that node.
//
// A Machine never owns or mutates its graph and must not be used from
// several goroutines at once.
type Machine[N, E, NW comparable, EW, I, A any] struct {
	graph Graph[N, E, NW, EW]
	state N
	match MatchFunc[I, EW, A]
}

// New creates a machine positioned on the first node, in the graph's node
// order, whose weight equals start. It returns ErrUnknownState if no node
// carries that weight.
func New[N, E, NW comparable, EW, I, A any](g Graph[N, E, NW, EW], start NW, match MatchFunc[I, EW, A]) (*Machine[N, E, NW, EW, I, A], error) {
	id, ok := graph.Resolve(g, start)
	if !ok {
		return nil, fmt.Errorf("start state %v: %w", start, ErrUnknownState)
	}
	return &Machine[N, E, NW, EW, I, A]{
		graph: g,
		state: id,
		match: match,
	}, nil
}

// Step feeds one input to the machine. The outgoing edges of the current
// state are tried in edge order and the first one the match function
// accepts is taken. On a match the machine moves to the edge target and
// returns the action and a snapshot of the new state. Otherwise the state
// is left unchanged and ok is false.
func (m *Machine[N, E, NW, EW, I, A]) Step(input I) (action A, state NW, ok bool) {
	action, edge, ok := m.StepEdge(input)
	if !ok {
		return action, state, false
	}
	w, found := m.graph.NodeWeight(edge.Target)
	if !found {
		return action, state, false
	}
	return action, snapshot(w), true
}

// StepEdge has the same matching and transition behavior as Step but
// returns the traversed edge, whose Target is the new current state.
func (m *Machine[N, E, NW, EW, I, A]) StepEdge(input I) (A, EdgeRef[N, E, EW], bool) {
	for edge := range m.graph.OutEdges(m.state) {
		if action, ok := m.match(input, edge.Weight); ok {
			m.state = edge.Target
			return action, edge, true
		}
	}
	var zero A
	return zero, EdgeRef[N, E, EW]{}, false
}

// SetState moves the machine to the first node whose weight equals w.
// Unknown weights are ignored; use TrySetState to detect them.
func (m *Machine[N, E, NW, EW, I, A]) SetState(w NW) {
	_ = m.TrySetState(w)
}

// TrySetState moves the machine to the first node whose weight equals w,
// or returns ErrUnknownState and leaves the state unchanged.
func (m *Machine[N, E, NW, EW, I, A]) TrySetState(w NW) error {
	id, ok := graph.Resolve(m.graph, w)
	if !ok {
		return fmt.Errorf("state %v: %w", w, ErrUnknownState)
	}
	m.state = id
	return nil
}

// SetStateID overwrites the current state. The identifier is not checked
// against the graph.
func (m *Machine[N, E, NW, EW, I, A]) SetStateID(id N) {
	m.state = id
}

// StateID returns the current state identifier.
func (m *Machine[N, E, NW, EW, I, A]) StateID() N {
	return m.state
}

// State returns a snapshot of the current state's weight. It reports false
// only when the current identifier was set to a node the graph lacks.
func (m *Machine[N, E, NW, EW, I, A]) State() (NW, bool) {
	w, ok := m.graph.NodeWeight(m.state)
	if !ok {
		return w, false
	}
	return snapshot(w), true
}

// Graph returns the graph the machine runs over.
func (m *Machine[N, E, NW, EW, I, A]) Graph() Graph[N, E, NW, EW] {
	return m.graph
}
