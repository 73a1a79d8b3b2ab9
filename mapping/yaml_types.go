package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Constraints YAML methods ---

// UnmarshalYAML accepts either a single constraint name or a list of names.
func (c *Constraints) UnmarshalYAML(node *yaml.Node) error {
	var names []string

	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		if name != "" {
			names = []string{name}
		}

	case yaml.SequenceNode:
		if err := node.Decode(&names); err != nil {
			return err
		}

	default:
		return fmt.Errorf("line %d: expected constraint or list of constraints", node.Line)
	}

	result := ConstraintNone

	for _, name := range names {
		parsed, ok := ParseConstraint(name)
		if !ok {
			return fmt.Errorf("line %d: unknown constraint %q", node.Line, name)
		}

		result |= parsed
	}

	*c = result

	return nil
}

// MarshalYAML outputs a single name if exactly one constraint is set, otherwise a list.
func (c Constraints) MarshalYAML() (any, error) {
	names := c.Names()
	if len(names) == 1 {
		return names[0], nil
	}

	return names, nil
}

// --- Mapping YAML methods ---

// UnmarshalYAML decodes a YAML mapping of binding name to descriptor,
// keeping the declaration order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: bindings must be a mapping", node.Line)
	}

	result := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return err
		}

		if _, dup := result.Get(name); dup {
			return fmt.Errorf("line %d: binding %q declared twice", keyNode.Line, name)
		}

		var d Descriptor
		if err := valueNode.Decode(&d); err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}

		result.Set(name, d)
	}

	*m = *result

	return nil
}

// MarshalYAML encodes the bindings as an ordered YAML mapping.
func (m *Mapping) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}

	for name, d := range m.All() {
		value := &yaml.Node{}
		if err := value.Encode(d); err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}

		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			value,
		)
	}

	return out, nil
}
