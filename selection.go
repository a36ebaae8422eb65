package graphfsm

import "slices"

// Selection records the nodes and edges visited during a walk. It only ever
// grows: selecting an identifier twice has no further effect.
type Selection[N, E comparable] struct {
	nodes     map[N]struct{}
	edges     map[E]struct{}
	nodeOrder []N
	edgeOrder []E
}

// NewSelection creates an empty selection.
func NewSelection[N, E comparable]() *Selection[N, E] {
	return &Selection[N, E]{
		nodes: make(map[N]struct{}),
		edges: make(map[E]struct{}),
	}
}

// SelectionFor creates an empty selection over the identifiers of g. The
// graph only fixes the identifier types; it is not retained.
func SelectionFor[N, E, NW comparable, EW any](_ Graph[N, E, NW, EW]) *Selection[N, E] {
	return NewSelection[N, E]()
}

// SelectNode adds a node to the selection.
func (s *Selection[N, E]) SelectNode(id N) {
	if _, ok := s.nodes[id]; ok {
		return
	}
	s.nodes[id] = struct{}{}
	s.nodeOrder = append(s.nodeOrder, id)
}

// SelectEdge adds an edge to the selection.
func (s *Selection[N, E]) SelectEdge(id E) {
	if _, ok := s.edges[id]; ok {
		return
	}
	s.edges[id] = struct{}{}
	s.edgeOrder = append(s.edgeOrder, id)
}

// HasNode reports whether the node is selected.
func (s *Selection[N, E]) HasNode(id N) bool {
	_, ok := s.nodes[id]
	return ok
}

// HasEdge reports whether the edge is selected.
func (s *Selection[N, E]) HasEdge(id E) bool {
	_, ok := s.edges[id]
	return ok
}

// Nodes returns the selected nodes in the order they were first selected.
func (s *Selection[N, E]) Nodes() []N {
	return slices.Clone(s.nodeOrder)
}

// Edges returns the selected edges in the order they were first selected.
func (s *Selection[N, E]) Edges() []E {
	return slices.Clone(s.edgeOrder)
}

// Len returns the number of selected nodes and edges.
func (s *Selection[N, E]) Len() (nodes, edges int) {
	return len(s.nodeOrder), len(s.edgeOrder)
}

// Clone returns an independent copy of the selection.
func (s *Selection[N, E]) Clone() *Selection[N, E] {
	c := &Selection[N, E]{
		nodes:     make(map[N]struct{}, len(s.nodes)),
		edges:     make(map[E]struct{}, len(s.edges)),
		nodeOrder: slices.Clone(s.nodeOrder),
		edgeOrder: slices.Clone(s.edgeOrder),
	}
	for id := range s.nodes {
		c.nodes[id] = struct{}{}
	}
	for id := range s.edges {
		c.edges[id] = struct{}{}
	}
	return c
}
