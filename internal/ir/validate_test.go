package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *GraphConfig[string, string] {
	c := NewGraphConfig[string, string]("test")
	c.SetInitial("idle")
	c.AddState("idle").On("START", "running")
	c.AddState("running")
	return c
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.Nil(t, Validate(validConfig()))
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GraphConfig[string, string])
		code   string
	}{
		{
			name: "missing initial",
			mutate: func(c *GraphConfig[string, string]) {
				c.HasInitial = false
			},
			code: ErrCodeMissingInitial,
		},
		{
			name: "initial not found",
			mutate: func(c *GraphConfig[string, string]) {
				c.SetInitial("nonexistent")
			},
			code: ErrCodeInitialNotFound,
		},
		{
			name: "no states",
			mutate: func(c *GraphConfig[string, string]) {
				c.States = nil
			},
			code: ErrCodeNoStates,
		},
		{
			name: "invalid target",
			mutate: func(c *GraphConfig[string, string]) {
				c.GetState("running").On("GO", "nowhere")
			},
			code: ErrCodeInvalidTarget,
		},
		{
			name: "duplicate state",
			mutate: func(c *GraphConfig[string, string]) {
				c.AddState("idle")
			},
			code: ErrCodeDuplicateState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := Validate(c)
			require.NotNil(t, err)
			assert.True(t, err.HasCode(tt.code), "expected %s, got: %v", tt.code, err)
		})
	}
}

func TestValidate_NoStatesSkipsInitialLookup(t *testing.T) {
	c := NewGraphConfig[string, string]("test")
	c.SetInitial("idle")

	err := Validate(c)
	require.NotNil(t, err)
	assert.True(t, err.HasCode(ErrCodeNoStates))
	assert.False(t, err.HasCode(ErrCodeInitialNotFound))
}

func TestValidate_IssuePath(t *testing.T) {
	c := validConfig()
	c.GetState("idle").On("STOP", "nowhere")

	err := Validate(c)
	require.NotNil(t, err)
	require.Len(t, err.Issues, 1)
	assert.Equal(t, []string{"states", "idle", "transitions", "1"}, err.Issues[0].Path)
	assert.Contains(t, err.Error(), "(at states.idle.transitions.1)")
}

func TestValidationError_MultipleIssues(t *testing.T) {
	err := &ValidationError{}
	err.AddIssue("CODE1", "first issue")
	err.AddIssue("CODE2", "second issue", "path", "to", "error")

	msg := err.Error()
	assert.Contains(t, msg, "2 issues")
	assert.Contains(t, msg, "CODE1")
	assert.Contains(t, msg, "CODE2")
	assert.Contains(t, msg, "path.to.error")
}

func TestValidationError_Empty(t *testing.T) {
	err := &ValidationError{}
	assert.False(t, err.HasIssues())
	assert.Equal(t, "validation failed", err.Error())
}
