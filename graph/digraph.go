package graph

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNodeNotFound is returned when an edge references a node the graph
// never issued.
var ErrNodeNotFound = errors.New("node not found")

// NodeID identifies a node of a Digraph.
type NodeID int

// EdgeID identifies an edge of a Digraph.
type EdgeID int

type digraphNode[NW any] struct {
	weight NW
	out    []EdgeID
}

type digraphEdge[EW any] struct {
	source NodeID
	target NodeID
	weight EW
}

// Digraph is a directed multigraph with dense integer identifiers.
//
// Nodes iterate in insertion order, and the outgoing edges of a node iterate
// in the order they were added. Parallel edges, self-loops and several nodes
// with equal weights are all allowed. Nodes and edges cannot be removed, so
// identifiers stay valid for the lifetime of the graph.
type Digraph[NW comparable, EW any] struct {
	nodes []digraphNode[NW]
	edges []digraphEdge[EW]
}

// NewDigraph creates an empty graph.
func NewDigraph[NW comparable, EW any]() *Digraph[NW, EW] {
	return &Digraph[NW, EW]{}
}

// AddNode appends a node and returns its identifier.
func (g *Digraph[NW, EW]) AddNode(w NW) NodeID {
	g.nodes = append(g.nodes, digraphNode[NW]{weight: w})
	return NodeID(len(g.nodes) - 1)
}

// AddEdge appends a directed edge from source to target.
func (g *Digraph[NW, EW]) AddEdge(source, target NodeID, w EW) (EdgeID, error) {
	if !g.hasNode(source) {
		return 0, fmt.Errorf("edge source %d: %w", source, ErrNodeNotFound)
	}
	if !g.hasNode(target) {
		return 0, fmt.Errorf("edge target %d: %w", target, ErrNodeNotFound)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, digraphEdge[EW]{source: source, target: target, weight: w})
	g.nodes[source].out = append(g.nodes[source].out, id)
	return id, nil
}

// NodeIDs yields every node in insertion order.
func (g *Digraph[NW, EW]) NodeIDs() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range g.nodes {
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// NodeWeight returns the weight of the node.
func (g *Digraph[NW, EW]) NodeWeight(id NodeID) (NW, bool) {
	if !g.hasNode(id) {
		var zero NW
		return zero, false
	}
	return g.nodes[id].weight, true
}

// OutEdges yields the edges leaving id in the order they were added.
// Unknown identifiers yield nothing.
func (g *Digraph[NW, EW]) OutEdges(id NodeID) iter.Seq[EdgeRef[NodeID, EdgeID, EW]] {
	return func(yield func(EdgeRef[NodeID, EdgeID, EW]) bool) {
		if !g.hasNode(id) {
			return
		}
		for _, eid := range g.nodes[id].out {
			if !yield(g.edgeRef(eid)) {
				return
			}
		}
	}
}

// Edge returns the edge with the given identifier.
func (g *Digraph[NW, EW]) Edge(id EdgeID) (EdgeRef[NodeID, EdgeID, EW], bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return EdgeRef[NodeID, EdgeID, EW]{}, false
	}
	return g.edgeRef(id), true
}

// NodeCount returns the number of nodes.
func (g *Digraph[NW, EW]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Digraph[NW, EW]) EdgeCount() int {
	return len(g.edges)
}

func (g *Digraph[NW, EW]) hasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Digraph[NW, EW]) edgeRef(id EdgeID) EdgeRef[NodeID, EdgeID, EW] {
	e := g.edges[id]
	return EdgeRef[NodeID, EdgeID, EW]{ID: id, Source: e.source, Target: e.target, Weight: e.weight}
}
