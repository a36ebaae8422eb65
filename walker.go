package graphfsm

// WalkingSelector is a Machine that highlights its own walk: every node it
// enters and every edge it traverses is added to a Selection over the same
// graph.
type WalkingSelector[N, E, NW comparable, EW, I, A any] struct {
	machine   *Machine[N, E, NW, EW, I, A]
	selection *Selection[N, E]
}

// NewWalkingSelector creates a walking selector positioned on start. The
// start node is selected immediately. It returns ErrUnknownState if no node
// carries the start weight.
func NewWalkingSelector[N, E, NW comparable, EW, I, A any](g Graph[N, E, NW, EW], start NW, match MatchFunc[I, EW, A]) (*WalkingSelector[N, E, NW, EW, I, A], error) {
	m, err := New(g, start, match)
	if err != nil {
		return nil, err
	}
	ws := &WalkingSelector[N, E, NW, EW, I, A]{
		machine:   m,
		selection: SelectionFor(g),
	}
	ws.selection.SelectNode(m.StateID())
	return ws, nil
}

// Step behaves like Machine.Step and, on a match, selects the traversed
// edge and the new state. Unmatched inputs leave the selection untouched.
func (w *WalkingSelector[N, E, NW, EW, I, A]) Step(input I) (action A, state NW, ok bool) {
	action, edge, ok := w.machine.StepEdge(input)
	if !ok {
		return action, state, false
	}
	w.selection.SelectEdge(edge.ID)
	w.selection.SelectNode(edge.Target)

	nw, found := w.machine.graph.NodeWeight(edge.Target)
	if !found {
		return action, state, false
	}
	return action, snapshot(nw), true
}

// Selection returns a copy of everything visited since construction.
func (w *WalkingSelector[N, E, NW, EW, I, A]) Selection() *Selection[N, E] {
	return w.selection.Clone()
}

// StateID returns the current state identifier.
func (w *WalkingSelector[N, E, NW, EW, I, A]) StateID() N {
	return w.machine.StateID()
}

// State returns a snapshot of the current state's weight.
func (w *WalkingSelector[N, E, NW, EW, I, A]) State() (NW, bool) {
	return w.machine.State()
}

// Graph returns the graph shared by the machine and the selection.
func (w *WalkingSelector[N, E, NW, EW, I, A]) Graph() Graph[N, E, NW, EW] {
	return w.machine.graph
}
