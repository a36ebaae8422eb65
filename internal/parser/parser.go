// Package parser provides reflection-based parsing for struct-defined state graphs.
package parser

import (
	"fmt"
	"reflect"
	"strings"
)

// TransitionSchema represents a parsed transition definition.
type TransitionSchema struct {
	Guard  string
	Target string
}

// StateSchema represents a parsed state definition.
type StateSchema struct {
	Name        string
	Transitions []TransitionSchema
}

// MachineSchema represents the complete parsed machine definition.
type MachineSchema struct {
	ID      string
	Initial string
	States  []*StateSchema
}

// Marker type names for detection.
const (
	MarkerMachineDefinition = "MachineDef"
	MarkerState             = "StateNode"
)

// ParseMachineStruct parses a struct type into a MachineSchema.
// The struct must have an embedded MachineDef marker type. States are
// returned in field order.
func ParseMachineStruct(t reflect.Type) (*MachineSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", t.Kind())
	}

	schema := &MachineSchema{}

	found := false
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if isMarkerType(field.Type, MarkerMachineDefinition) {
			if err := parseMachineTag(field.Tag, schema); err != nil {
				return nil, fmt.Errorf("invalid machine tag: %w", err)
			}
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("struct must embed graphfsm.MachineDef")
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if isMarkerType(field.Type, MarkerMachineDefinition) {
			continue
		}

		state, err := parseStateField(field)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if state != nil {
			schema.States = append(schema.States, state)
		}
	}

	return schema, nil
}

// parseStateField parses a struct field into a StateSchema. Fields that
// are neither a StateNode nor a struct embedding one are skipped.
func parseStateField(field reflect.StructField) (*StateSchema, error) {
	fieldType := field.Type
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	if fieldType.Kind() != reflect.Struct {
		return nil, nil
	}

	if isMarkerType(fieldType, MarkerState) {
		return parseState(field.Name, field.Tag)
	}

	// A struct embedding StateNode carries its tags on the marker, falling
	// back to the field's own tag.
	if markerTag, ok := findEmbeddedMarker(fieldType); ok {
		tag := markerTag
		if tag == "" {
			tag = field.Tag
		}
		return parseState(field.Name, tag)
	}

	return nil, nil
}

// findEmbeddedMarker returns the tag of an embedded StateNode.
func findEmbeddedMarker(t reflect.Type) (reflect.StructTag, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && isMarkerType(field.Type, MarkerState) {
			return field.Tag, true
		}
	}
	return "", false
}

// parseState parses a state from its field name and tag.
// Format: `on:"GUARD->target,GUARD2->target2" name:"custom_name"`
func parseState(fieldName string, tag reflect.StructTag) (*StateSchema, error) {
	name := tag.Get("name")
	if name == "" {
		name = toSnakeCase(fieldName)
	}
	state := &StateSchema{Name: name}

	if on := tag.Get("on"); on != "" {
		transitions, err := parseTransitions(on)
		if err != nil {
			return nil, fmt.Errorf("invalid 'on' tag: %w", err)
		}
		state.Transitions = transitions
	}

	return state, nil
}

// parseMachineTag parses the machine definition tag.
// Format: `id:"machineId" initial:"stateName"`
func parseMachineTag(tag reflect.StructTag, schema *MachineSchema) error {
	schema.ID = tag.Get("id")
	schema.Initial = tag.Get("initial")

	if schema.ID == "" {
		return fmt.Errorf("missing required 'id' tag")
	}
	if schema.Initial == "" {
		return fmt.Errorf("missing required 'initial' tag")
	}

	return nil
}

// parseTransitions parses a comma separated transition list.
func parseTransitions(s string) ([]TransitionSchema, error) {
	var transitions []TransitionSchema

	parts := splitTrim(s, ",")
	for i, part := range parts {
		trans, err := parseTransition(part)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i+1, err)
		}
		transitions = append(transitions, trans)
	}

	return transitions, nil
}

// parseTransition parses a single "GUARD->target" transition.
func parseTransition(s string) (TransitionSchema, error) {
	trans := TransitionSchema{}

	arrowIdx := strings.Index(s, "->")
	if arrowIdx == -1 {
		return trans, fmt.Errorf("missing '->' in transition: %s", s)
	}

	trans.Guard = strings.TrimSpace(s[:arrowIdx])
	trans.Target = strings.TrimSpace(s[arrowIdx+2:])

	if trans.Guard == "" {
		return trans, fmt.Errorf("empty guard in transition: %s", s)
	}
	if trans.Target == "" {
		return trans, fmt.Errorf("empty target in transition: %s", s)
	}

	return trans, nil
}

// isMarkerType checks if a type matches a marker type name.
func isMarkerType(t reflect.Type, markerName string) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name() == markerName
}

// toSnakeCase converts CamelCase to snake_case.
// Handles acronyms properly: HTTPServer -> http_server, APIGateway -> api_gateway.
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder
	result.Grow(len(s) + 5)

	for i, r := range runes {
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			// camelCase boundary, or the last capital of an acronym
			if prevIsLower || nextIsLower {
				result.WriteByte('_')
			}
		}

		if isUpper {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// splitTrim splits a string and trims whitespace from each part.
func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
