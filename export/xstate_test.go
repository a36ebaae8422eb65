package export

import (
	"encoding/json"
	"testing"

	"github.com/felixgeelhaar/graphfsm"
	"github.com/felixgeelhaar/graphfsm/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trafficLight(t *testing.T) *graphfsm.Definition[string, string] {
	t.Helper()

	def, err := graphfsm.NewGraph[string, string]("traffic_light").
		WithInitial("green").
		State("green").On("TIMER").Target("yellow").Done().
		State("yellow").On("TIMER").Target("red").Done().
		State("red").On("TIMER").Target("green").On("FAULT").Target("broken").Done().
		State("broken").Done().
		Build()
	require.NoError(t, err)
	return def
}

func TestXStateExporter_SimpleMachine(t *testing.T) {
	result, err := NewDefinitionExporter(trafficLight(t)).Export()
	require.NoError(t, err)

	assert.Equal(t, "traffic_light", result.ID)
	assert.Equal(t, "green", result.Initial)
	assert.Len(t, result.States, 4)

	green, ok := result.States["green"]
	require.True(t, ok)
	assert.Equal(t, []XStateTransition{{Target: "yellow"}}, green.On["TIMER"])
	assert.Empty(t, green.Type)
}

func TestXStateExporter_DeadEndIsFinal(t *testing.T) {
	result, err := NewDefinitionExporter(trafficLight(t)).Export()
	require.NoError(t, err)

	broken := result.States["broken"]
	assert.Equal(t, "final", broken.Type)
	assert.Nil(t, broken.On)
}

func TestXStateExporter_ParallelGuardsKeepOrder(t *testing.T) {
	g := graph.NewDigraph[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	_, _ = g.AddEdge(a, c, 1)
	_, _ = g.AddEdge(a, b, 1)

	result, err := NewXStateExporter("fan", g, "a").Export()
	require.NoError(t, err)

	assert.Equal(t, []XStateTransition{{Target: "c"}, {Target: "b"}}, result.States["a"].On["1"])
}

func TestXStateExporter_DuplicateWeights(t *testing.T) {
	g := graph.NewDigraph[string, string]()
	first := g.AddNode("dup")
	second := g.AddNode("dup")
	_, _ = g.AddEdge(first, second, "go")

	result, err := NewXStateExporter("dups", g, "dup").Export()
	require.NoError(t, err)

	assert.Equal(t, "dup", result.Initial)
	assert.Contains(t, result.States, "dup")
	assert.Contains(t, result.States, "dup#2")
	assert.Equal(t, "dup#2", result.States["dup"].On["go"][0].Target)
}

func TestXStateExporter_UnknownInitial(t *testing.T) {
	result, err := NewXStateExporter("x", trafficLight(t).Graph, "purple").Export()
	require.NoError(t, err)
	assert.Empty(t, result.Initial)
}

func TestXStateExporter_JSONOutput(t *testing.T) {
	exporter := NewDefinitionExporter(trafficLight(t))

	compact, err := exporter.ExportJSON()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(compact), &parsed))
	assert.Equal(t, "traffic_light", parsed["id"])
	assert.Equal(t, "green", parsed["initial"])

	states := parsed["states"].(map[string]any)
	red := states["red"].(map[string]any)
	on := red["on"].(map[string]any)
	assert.Contains(t, on, "FAULT")

	pretty, err := exporter.ExportJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  \"id\"")
}
