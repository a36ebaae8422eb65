package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/graphfsm/graph"
)

// Highlighter marks nodes and edges to emphasize. *graphfsm.Selection
// implements it.
type Highlighter[N, E comparable] interface {
	HasNode(id N) bool
	HasEdge(id E) bool
}

// DOTExporter renders a state graph in Graphviz DOT. The current state is
// drawn filled red and selected nodes and edges are drawn bold.
type DOTExporter[N, E, NW comparable, EW any] struct {
	name       string
	graph      graph.Graph[N, E, NW, EW]
	current    N
	hasCurrent bool
	selection  Highlighter[N, E]
}

// NewDOTExporter creates a DOT exporter for the graph
func NewDOTExporter[N, E, NW comparable, EW any](name string, g graph.Graph[N, E, NW, EW]) *DOTExporter[N, E, NW, EW] {
	return &DOTExporter[N, E, NW, EW]{name: name, graph: g}
}

// WithCurrent highlights the node a machine is currently in
func (e *DOTExporter[N, E, NW, EW]) WithCurrent(id N) *DOTExporter[N, E, NW, EW] {
	e.current = id
	e.hasCurrent = true
	return e
}

// WithSelection highlights the nodes and edges of a walk
func (e *DOTExporter[N, E, NW, EW]) WithSelection(sel Highlighter[N, E]) *DOTExporter[N, E, NW, EW] {
	e.selection = sel
	return e
}

// Write renders the graph to w
func (e *DOTExporter[N, E, NW, EW]) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	names := make(map[N]string)
	for id := range e.graph.NodeIDs() {
		names[id] = "n" + strconv.Itoa(len(names))
	}

	fmt.Fprintf(bw, "digraph %s {\n", dotQuote(e.name))
	for id := range e.graph.NodeIDs() {
		weight, _ := e.graph.NodeWeight(id)
		attrs := []string{"label=" + dotQuote(fmt.Sprint(weight)), "shape=circle"}
		if e.hasCurrent && id == e.current {
			attrs = append(attrs, "style=filled", "fillcolor=red")
		}
		if e.selection != nil && e.selection.HasNode(id) {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(bw, "  %s [%s];\n", names[id], strings.Join(attrs, ", "))
	}
	for id := range e.graph.NodeIDs() {
		for edge := range e.graph.OutEdges(id) {
			target, ok := names[edge.Target]
			if !ok {
				return fmt.Errorf("edge %v: target %v: %w", edge.ID, edge.Target, graph.ErrNodeNotFound)
			}
			attrs := []string{"label=" + dotQuote(fmt.Sprint(edge.Weight))}
			if e.selection != nil && e.selection.HasEdge(edge.ID) {
				attrs = append(attrs, "style=bold", "color=red")
			}
			fmt.Fprintf(bw, "  %s -> %s [%s];\n", names[id], target, strings.Join(attrs, ", "))
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// String renders the graph as a DOT document. It returns "" when the graph
// cannot be rendered; use Write to get the error.
func (e *DOTExporter[N, E, NW, EW]) String() string {
	var b strings.Builder
	if err := e.Write(&b); err != nil {
		return ""
	}
	return b.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a double-quoted DOT ID. Only quotes and backslashes
// are escaped; every other rune is written as is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
