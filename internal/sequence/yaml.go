package sequence

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"stepper/internal/steps"
)

// document is the mapping form of a YAML sequence file.
type document struct {
	Circular *bool      `yaml:"circular"`
	Initial  string     `yaml:"initial"`
	Steps    []stepNode `yaml:"steps"`
}

// stepNode decodes either a scalar (bare name) or a mapping (record) into a step.
type stepNode struct {
	step steps.Step
}

func (n *stepNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return fmt.Errorf("line %d: %w", node.Line, ErrMissingName)
		}
		n.step = steps.Name(node.Value)
		return nil

	case yaml.MappingNode:
		var name string
		attrs := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == "name" {
				if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
					return fmt.Errorf("line %d: %w", value.Line, ErrMissingName)
				}
				name = value.Value
				continue
			}
			var v any
			if err := value.Decode(&v); err != nil {
				return fmt.Errorf("line %d: step attribute %q: %w", value.Line, key.Value, err)
			}
			attrs[key.Value] = v
		}
		if name == "" {
			return fmt.Errorf("line %d: %w", node.Line, ErrMissingName)
		}
		n.step = steps.Record(name, attrs)
		return nil

	default:
		return fmt.Errorf("line %d: step must be a name or a mapping with a name key", node.Line)
	}
}

// ParseYAML parses a YAML sequence file.
//
// The document is either a mapping with steps, circular and initial keys, or a
// bare list of steps. An empty document yields an empty [Definition].
func ParseYAML(data []byte) (*Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse sequence: %w", err)
	}
	if len(root.Content) == 0 {
		return &Definition{}, nil
	}

	body := root.Content[0]
	switch body.Kind {
	case yaml.SequenceNode:
		var nodes []stepNode
		if err := body.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("failed to parse sequence: %w", err)
		}
		list, err := collect(nodes)
		if err != nil {
			return nil, err
		}
		return &Definition{Steps: list}, nil

	case yaml.MappingNode:
		var doc document
		if err := body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse sequence: %w", err)
		}
		list, err := collect(doc.Steps)
		if err != nil {
			return nil, err
		}
		return &Definition{
			Steps:    list,
			Circular: doc.Circular,
			Initial:  doc.Initial,
		}, nil

	default:
		return nil, fmt.Errorf("failed to parse sequence: line %d: expected a mapping or a list", body.Line)
	}
}

// collect unwraps decoded nodes. Null entries never reach UnmarshalYAML, so
// they are caught here as steps without a name.
func collect(nodes []stepNode) ([]steps.Step, error) {
	out := make([]steps.Step, len(nodes))
	for i, n := range nodes {
		if n.step.Identity() == "" {
			return nil, fmt.Errorf("failed to parse sequence: step %d: %w", i+1, ErrMissingName)
		}
		out[i] = n.step
	}
	return out, nil
}
