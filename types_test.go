package graphfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	match := Equal[string]()

	_, ok := match("TIMER", "TIMER")
	assert.True(t, ok)
	_, ok = match("TIMER", "RESET")
	assert.False(t, ok)
}

func TestPredicate(t *testing.T) {
	atLeast := Predicate(func(in, threshold int) bool { return in >= threshold })

	_, ok := atLeast(5, 3)
	assert.True(t, ok)
	_, ok = atLeast(2, 3)
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	assert.Equal(t, "plain", snapshot("plain"))

	name := "orig"
	l := label{name: &name}
	c := snapshot(l)
	assert.Equal(t, "orig", *c.name)
	assert.NotSame(t, l.name, c.name)
}
