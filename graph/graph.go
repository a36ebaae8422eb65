// Package graph defines the directed-graph capability set the state machine
// runs over, together with a concrete insertion-ordered multigraph.
//
// Nodes are states and carry a node weight (the state label). Edges are
// transitions and carry an edge weight (the guard value). Identifiers are
// opaque and only meaningful for the graph instance that issued them.
package graph

import "iter"

// EdgeRef is a borrowed view of a single directed edge.
type EdgeRef[N, E comparable, EW any] struct {
	ID     E
	Source N
	Target N
	Weight EW
}

// Graph is the read-only view of a directed graph consumed by the state
// machine and the exporters.
//
// Implementations must return nodes and outgoing edges in a stable order:
// the order of NodeIDs breaks ties when several nodes share a weight, and
// the order of OutEdges decides which transition wins when several match.
type Graph[N, E, NW comparable, EW any] interface {
	// NodeIDs yields every node identifier in the graph's iteration order.
	NodeIDs() iter.Seq[N]
	// NodeWeight returns the weight of the node, or false if id is unknown.
	NodeWeight(id N) (NW, bool)
	// OutEdges yields the edges leaving id in the graph's edge order.
	OutEdges(id N) iter.Seq[EdgeRef[N, E, EW]]
}

// Resolve returns the first node, in node-iteration order, whose weight
// equals w.
func Resolve[N, E, NW comparable, EW any](g Graph[N, E, NW, EW], w NW) (N, bool) {
	for id := range g.NodeIDs() {
		if nw, ok := g.NodeWeight(id); ok && nw == w {
			return id, true
		}
	}
	var zero N
	return zero, false
}
