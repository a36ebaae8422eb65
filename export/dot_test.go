package export

import (
	"bytes"
	"iter"
	"testing"

	"github.com/felixgeelhaar/graphfsm"
	"github.com/felixgeelhaar/graphfsm/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOTExporter_Plain(t *testing.T) {
	def := trafficLight(t)

	out := NewDOTExporter(def.ID, def.Graph).String()

	assert.Contains(t, out, `digraph "traffic_light" {`)
	assert.Contains(t, out, `n0 [label="green", shape=circle];`)
	assert.Contains(t, out, `n0 -> n1 [label="TIMER"];`)
	assert.Contains(t, out, `n2 -> n3 [label="FAULT"];`)
	assert.NotContains(t, out, "fillcolor")
	assert.NotContains(t, out, "bold")
}

func TestDOTExporter_HighlightsWalk(t *testing.T) {
	def := trafficLight(t)

	ws, err := graphfsm.NewWalkingSelector(def.Graph, def.Initial, graphfsm.Equal[string]())
	require.NoError(t, err)
	ws.Step("TIMER")
	ws.Step("TIMER")

	var buf bytes.Buffer
	err = NewDOTExporter(def.ID, def.Graph).
		WithCurrent(ws.StateID()).
		WithSelection(ws.Selection()).
		Write(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `n2 [label="red", shape=circle, style=filled, fillcolor=red, penwidth=2];`)
	assert.Contains(t, out, `n0 [label="green", shape=circle, penwidth=2];`)
	assert.Contains(t, out, `n3 [label="broken", shape=circle];`)
	assert.Contains(t, out, `n0 -> n1 [label="TIMER", style=bold, color=red];`)
	assert.Contains(t, out, `n2 -> n0 [label="TIMER"];`)
}

func TestDOTExporter_QuotesLabels(t *testing.T) {
	def, err := graphfsm.NewGraph[string, string]("q").
		WithInitial(`say "hi"`).
		State(`say "hi"`).On(`a"b`).Done().
		Build()
	require.NoError(t, err)

	out := NewDOTExporter(def.ID, def.Graph).String()
	assert.Contains(t, out, `label="say \"hi\""`)
	assert.Contains(t, out, `label="a\"b"`)
}

func TestDOTExporter_LeavesOtherRunesAlone(t *testing.T) {
	def, err := graphfsm.NewGraph[string, string]("tabs\\and\ttabs").
		WithInitial("caf\u00e9\x01").
		State("caf\u00e9\x01").On("a\tb").Done().
		Build()
	require.NoError(t, err)

	out := NewDOTExporter(def.ID, def.Graph).String()
	assert.Contains(t, out, "digraph \"tabs\\\\and\ttabs\" {")
	assert.Contains(t, out, "label=\"caf\u00e9\x01\"")
	assert.Contains(t, out, "label=\"a\tb\"")
	assert.NotContains(t, out, `\t`)
	assert.NotContains(t, out, `\x01`)
	assert.NotContains(t, out, `\u00e9`)
}

// danglingGraph has one node whose only edge points at a node it lacks.
type danglingGraph struct{}

func (danglingGraph) NodeIDs() iter.Seq[int] {
	return func(yield func(int) bool) { yield(0) }
}

func (danglingGraph) NodeWeight(id int) (string, bool) {
	if id != 0 {
		return "", false
	}
	return "only", true
}

func (danglingGraph) OutEdges(id int) iter.Seq[graph.EdgeRef[int, int, string]] {
	return func(yield func(graph.EdgeRef[int, int, string]) bool) {
		if id == 0 {
			yield(graph.EdgeRef[int, int, string]{ID: 7, Source: 0, Target: 9, Weight: "go"})
		}
	}
}

func TestDOTExporter_DanglingEdge(t *testing.T) {
	exporter := NewDOTExporter[int, int, string, string]("dangling", danglingGraph{})

	err := exporter.Write(&bytes.Buffer{})
	require.ErrorIs(t, err, graph.ErrNodeNotFound)
	assert.Empty(t, exporter.String())
}
