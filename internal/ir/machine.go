package ir

import (
	"fmt"

	"github.com/felixgeelhaar/graphfsm/graph"
)

// NewGraphConfig creates an empty GraphConfig with no initial state
func NewGraphConfig[NW comparable, EW any](id string) *GraphConfig[NW, EW] {
	return &GraphConfig[NW, EW]{ID: id}
}

// NewStateConfig creates a new StateConfig
func NewStateConfig[NW comparable, EW any](id NW) *StateConfig[NW, EW] {
	return &StateConfig[NW, EW]{
		ID:          id,
		Transitions: nil,
	}
}

// NewTransitionConfig creates a new TransitionConfig
func NewTransitionConfig[NW comparable, EW any](guard EW, target NW) *TransitionConfig[NW, EW] {
	return &TransitionConfig[NW, EW]{
		Guard:  guard,
		Target: target,
	}
}

// SetInitial sets the initial state
func (c *GraphConfig[NW, EW]) SetInitial(id NW) {
	c.Initial = id
	c.HasInitial = true
}

// AddState appends a state and returns it
func (c *GraphConfig[NW, EW]) AddState(id NW) *StateConfig[NW, EW] {
	s := NewStateConfig[NW, EW](id)
	c.States = append(c.States, s)
	return s
}

// GetState returns the first state with the given ID, or nil if not found
func (c *GraphConfig[NW, EW]) GetState(id NW) *StateConfig[NW, EW] {
	for _, s := range c.States {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// On appends a transition to the state
func (s *StateConfig[NW, EW]) On(guard EW, target NW) *TransitionConfig[NW, EW] {
	t := NewTransitionConfig(guard, target)
	s.Transitions = append(s.Transitions, t)
	return t
}

// Compile builds a graph from a validated configuration. States become
// nodes in declaration order and each state's transitions become its
// outgoing edges in declaration order.
func Compile[NW comparable, EW any](c *GraphConfig[NW, EW]) (*graph.Digraph[NW, EW], error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	g := graph.NewDigraph[NW, EW]()
	ids := make(map[NW]graph.NodeID, len(c.States))
	for _, s := range c.States {
		ids[s.ID] = g.AddNode(s.ID)
	}
	for _, s := range c.States {
		for _, t := range s.Transitions {
			if _, err := g.AddEdge(ids[s.ID], ids[t.Target], t.Guard); err != nil {
				return nil, fmt.Errorf("state %v: %w", s.ID, err)
			}
		}
	}
	return g, nil
}
