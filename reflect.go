package graphfsm

import (
	"fmt"
	"reflect"

	"github.com/felixgeelhaar/graphfsm/internal/ir"
	"github.com/felixgeelhaar/graphfsm/internal/parser"
)

// MachineDef is a marker type that must be embedded in a struct
// to define a state graph using the reflection DSL.
//
// Use struct tags to configure the graph:
//   - id:"graphId" - Required identifier
//   - initial:"stateName" - Required initial state name
//
// Example:
//
//	type Door struct {
//	    graphfsm.MachineDef `id:"door" initial:"closed"`
//	    Closed graphfsm.StateNode `on:"open->opened,lock->locked"`
//	    Opened graphfsm.StateNode `on:"close->closed"`
//	    Locked graphfsm.StateNode `on:"unlock->closed"`
//	}
type MachineDef struct{}

// StateNode is a marker type for defining states in the reflection DSL.
//
// Use struct tags to configure the state:
//   - on:"GUARD->target" - Define a transition (separate several with commas;
//     they are matched in the order written)
//   - name:"state name" - Override the state name, which otherwise is the
//     snake_cased field name
type StateNode struct{}

// FromStruct builds a string-labeled Definition from a struct definition
// using the reflection DSL. States become nodes in field order.
func FromStruct[M any]() (*Definition[string, string], error) {
	var m M
	schema, err := parser.ParseMachineStruct(reflect.TypeOf(m))
	if err != nil {
		return nil, fmt.Errorf("parse struct: %w", err)
	}

	config := ir.NewGraphConfig[string, string](schema.ID)
	config.SetInitial(schema.Initial)
	for _, s := range schema.States {
		state := config.AddState(s.Name)
		for _, t := range s.Transitions {
			state.On(t.Guard, t.Target)
		}
	}

	def, err := compile(config)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return def, nil
}
