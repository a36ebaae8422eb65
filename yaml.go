package graphfsm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/graphfsm/internal/ir"
	"gopkg.in/yaml.v3"
)

// yamlGraph is the on-disk layout of a string-labeled state graph:
//
//	id: traffic_light
//	initial: green
//	states:
//	  - name: green
//	    on:
//	      - guard: TIMER
//	        target: yellow
//	  - name: yellow
//
// Transitions are a list rather than a map so their order, which decides
// which transition wins, survives decoding.
type yamlGraph struct {
	ID      string      `yaml:"id"`
	Initial string      `yaml:"initial"`
	States  []yamlState `yaml:"states"`
}

type yamlState struct {
	Name string           `yaml:"name"`
	On   []yamlTransition `yaml:"on"`
}

type yamlTransition struct {
	Guard  string `yaml:"guard"`
	Target string `yaml:"target"`
}

// FromYAML builds a string-labeled Definition from a YAML document. Unknown
// fields are rejected. A transition without a target loops back to its own
// state.
func FromYAML(data []byte) (*Definition[string, string], error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yamlGraph
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	config := ir.NewGraphConfig[string, string](doc.ID)
	if doc.Initial != "" {
		config.SetInitial(doc.Initial)
	}
	for _, s := range doc.States {
		state := config.AddState(s.Name)
		for _, t := range s.On {
			target := t.Target
			if target == "" {
				target = s.Name
			}
			state.On(t.Guard, target)
		}
	}

	return compile(config)
}

// LoadYAMLFile reads and parses a YAML graph definition from disk.
func LoadYAMLFile(path string) (*Definition[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	def, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
