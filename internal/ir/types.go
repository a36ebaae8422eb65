package ir

// GraphConfig is the format-agnostic description of a state graph. The
// builder, the YAML loader and the reflection DSL all produce one, and
// Compile turns it into a graph.
type GraphConfig[NW comparable, EW any] struct {
	ID         string
	Initial    NW
	HasInitial bool // Initial is meaningful only when set
	States     []*StateConfig[NW, EW]
}

// StateConfig represents a single state node and its outgoing transitions.
type StateConfig[NW comparable, EW any] struct {
	ID          NW
	Transitions []*TransitionConfig[NW, EW] // Declaration order is match order
}

// TransitionConfig represents a single guarded transition
type TransitionConfig[NW comparable, EW any] struct {
	Guard  EW
	Target NW
}
