package ir

import (
	"fmt"
	"strings"
)

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Code    string   // e.g., "MISSING_INITIAL", "INVALID_TARGET"
	Message string   // Human-readable description
	Path    []string // e.g., ["states", "green", "transitions", "0"]
}

// String returns a human-readable representation of the issue
func (v ValidationIssue) String() string {
	if len(v.Path) > 0 {
		return fmt.Sprintf("[%s] %s (at %s)", v.Code, v.Message, strings.Join(v.Path, "."))
	}
	return fmt.Sprintf("[%s] %s", v.Code, v.Message)
}

// ValidationError contains all validation issues found during validation
type ValidationError struct {
	Issues []ValidationIssue
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "validation failed with %d issues:\n", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, issue.String())
	}
	return b.String()
}

// AddIssue adds a validation issue to the error
func (e *ValidationError) AddIssue(code, message string, path ...string) {
	e.Issues = append(e.Issues, ValidationIssue{
		Code:    code,
		Message: message,
		Path:    path,
	})
}

// HasIssues returns true if there are any validation issues
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// HasCode reports whether any issue carries the given code
func (e *ValidationError) HasCode(code string) bool {
	for _, issue := range e.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// Validation error codes
const (
	ErrCodeMissingInitial  = "MISSING_INITIAL"
	ErrCodeInitialNotFound = "INITIAL_NOT_FOUND"
	ErrCodeInvalidTarget   = "INVALID_TARGET"
	ErrCodeNoStates        = "NO_STATES"
	ErrCodeDuplicateState  = "DUPLICATE_STATE"
)

// Validate checks the graph configuration for errors.
//
// State IDs must be unique here even though a graph may carry several nodes
// with equal weights: a definition refers to states by ID, so a duplicate
// would make transition targets ambiguous.
func Validate[NW comparable, EW any](c *GraphConfig[NW, EW]) *ValidationError {
	errs := &ValidationError{}

	if !c.HasInitial {
		errs.AddIssue(ErrCodeMissingInitial, "initial state is required")
	}

	if len(c.States) == 0 {
		errs.AddIssue(ErrCodeNoStates, "at least one state is required")
	}

	known := make(map[NW]struct{}, len(c.States))
	for i, state := range c.States {
		if _, dup := known[state.ID]; dup {
			errs.AddIssue(ErrCodeDuplicateState,
				fmt.Sprintf("state '%v' is declared more than once", state.ID),
				"states", fmt.Sprintf("%d", i))
			continue
		}
		known[state.ID] = struct{}{}
	}

	if c.HasInitial && len(c.States) > 0 {
		if _, ok := known[c.Initial]; !ok {
			errs.AddIssue(ErrCodeInitialNotFound,
				fmt.Sprintf("initial state '%v' not found in states", c.Initial))
		}
	}

	for _, state := range c.States {
		statePath := []string{"states", fmt.Sprint(state.ID)}
		for i, trans := range state.Transitions {
			if _, ok := known[trans.Target]; !ok {
				errs.AddIssue(ErrCodeInvalidTarget,
					fmt.Sprintf("transition target '%v' not found", trans.Target),
					append(statePath, "transitions", fmt.Sprintf("%d", i))...)
			}
		}
	}

	if errs.HasIssues() {
		return errs
	}
	return nil
}
