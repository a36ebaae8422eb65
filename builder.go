package graphfsm

import "github.com/felixgeelhaar/graphfsm/internal/ir"

// Definition is a compiled state graph together with the state a walk
// starts from.
type Definition[NW comparable, EW any] struct {
	ID      string
	Initial NW
	Graph   *Digraph[NW, EW]
}

// GraphBuilder provides a fluent API for constructing state graphs
type GraphBuilder[NW comparable, EW any] struct {
	id         string
	initial    NW
	hasInitial bool
	states     []*StateBuilder[NW, EW]
}

// StateBuilder provides a fluent API for constructing states
type StateBuilder[NW comparable, EW any] struct {
	graph       *GraphBuilder[NW, EW]
	id          NW
	transitions []*TransitionBuilder[NW, EW]
}

// TransitionBuilder provides a fluent API for constructing transitions
type TransitionBuilder[NW comparable, EW any] struct {
	state     *StateBuilder[NW, EW]
	guard     EW
	target    NW
	hasTarget bool
}

// NewGraph creates a new GraphBuilder with the given ID
func NewGraph[NW comparable, EW any](id string) *GraphBuilder[NW, EW] {
	return &GraphBuilder[NW, EW]{id: id}
}

// WithInitial sets the state a walk starts from
func (b *GraphBuilder[NW, EW]) WithInitial(initial NW) *GraphBuilder[NW, EW] {
	b.initial = initial
	b.hasInitial = true
	return b
}

// State starts building a new state. States become graph nodes in the order
// they are declared.
func (b *GraphBuilder[NW, EW]) State(id NW) *StateBuilder[NW, EW] {
	sb := &StateBuilder[NW, EW]{
		graph: b,
		id:    id,
	}
	b.states = append(b.states, sb)
	return sb
}

// Build validates the definition and compiles it into a graph
func (b *GraphBuilder[NW, EW]) Build() (*Definition[NW, EW], error) {
	config := ir.NewGraphConfig[NW, EW](b.id)
	if b.hasInitial {
		config.SetInitial(b.initial)
	}

	for _, sb := range b.states {
		state := config.AddState(sb.id)
		for _, tb := range sb.transitions {
			target := tb.target
			if !tb.hasTarget {
				// No Target call means a self-loop
				target = sb.id
			}
			state.On(tb.guard, target)
		}
	}

	return compile(config)
}

// compile turns a configuration into a Definition
func compile[NW comparable, EW any](config *ir.GraphConfig[NW, EW]) (*Definition[NW, EW], error) {
	g, err := ir.Compile(config)
	if err != nil {
		return nil, err
	}
	return &Definition[NW, EW]{
		ID:      config.ID,
		Initial: config.Initial,
		Graph:   g,
	}, nil
}

// --- StateBuilder methods ---

// On starts building a new transition guarded by the given value.
// Transitions of a state are matched in the order they are declared.
func (b *StateBuilder[NW, EW]) On(guard EW) *TransitionBuilder[NW, EW] {
	tb := &TransitionBuilder[NW, EW]{
		state: b,
		guard: guard,
	}
	b.transitions = append(b.transitions, tb)
	return tb
}

// Done completes the state definition and returns to the graph builder
func (b *StateBuilder[NW, EW]) Done() *GraphBuilder[NW, EW] {
	return b.graph
}

// --- TransitionBuilder methods ---

// Target sets the target state for the transition
func (b *TransitionBuilder[NW, EW]) Target(target NW) *TransitionBuilder[NW, EW] {
	b.target = target
	b.hasTarget = true
	return b
}

// On starts a new transition on the same state (chainable)
func (b *TransitionBuilder[NW, EW]) On(guard EW) *TransitionBuilder[NW, EW] {
	return b.state.On(guard)
}

// Done completes the state definition and returns to the graph builder
func (b *TransitionBuilder[NW, EW]) Done() *GraphBuilder[NW, EW] {
	return b.state.Done()
}
