package graphfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_SetSemantics(t *testing.T) {
	s := NewSelection[int, string]()
	s.SelectNode(3)
	s.SelectNode(1)
	s.SelectNode(3)
	s.SelectEdge("x")
	s.SelectEdge("x")

	assert.Equal(t, []int{3, 1}, s.Nodes())
	assert.Equal(t, []string{"x"}, s.Edges())

	nodes, edges := s.Len()
	assert.Equal(t, 2, nodes)
	assert.Equal(t, 1, edges)

	assert.True(t, s.HasNode(1))
	assert.False(t, s.HasNode(2))
	assert.True(t, s.HasEdge("x"))
	assert.False(t, s.HasEdge("y"))
}

func TestSelection_CloneIsIndependent(t *testing.T) {
	s := NewSelection[int, int]()
	s.SelectNode(1)
	s.SelectEdge(10)

	c := s.Clone()
	c.SelectNode(2)
	c.SelectEdge(20)
	s.SelectNode(3)

	assert.Equal(t, []int{1, 3}, s.Nodes())
	assert.Equal(t, []int{1, 2}, c.Nodes())
	assert.False(t, s.HasEdge(20))
	assert.True(t, c.HasEdge(10))
}

func TestSelection_ReadsAreCopies(t *testing.T) {
	s := NewSelection[int, int]()
	s.SelectNode(1)

	nodes := s.Nodes()
	nodes[0] = 42

	assert.Equal(t, []int{1}, s.Nodes())
}

func TestSelection_Empty(t *testing.T) {
	s := NewSelection[int, int]()
	assert.Empty(t, s.Nodes())
	assert.Empty(t, s.Edges())
	assert.Empty(t, s.Clone().Nodes())
}

func TestSelectionFor_TypedByGraph(t *testing.T) {
	g, ids := scenarioGraph(t)

	s := SelectionFor(g)
	s.SelectNode(ids["a"])
	s.SelectEdge(EdgeID(0))

	assert.True(t, s.HasNode(ids["a"]))
	assert.True(t, s.HasEdge(0))
}
