package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ParamList is an ordered list of parameter names that can be
// unmarshaled from either YAML form:
//   - Single string: "delivery-id"
//   - Array of strings: [delivery-id, current-status]
type ParamList []string

// UnmarshalYAML implements custom YAML unmarshaling for ParamList.
// Accepts either a single string or an array of strings.
func (p *ParamList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single string value
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*p = ParamList{str}
		} else {
			*p = ParamList{}
		}

		return nil

	case yaml.SequenceNode:
		// Array of strings
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*p = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for ParamList.
// Outputs a single string if length is 1, otherwise an array.
func (p ParamList) MarshalYAML() (any, error) {
	if len(p) == 1 {
		return p[0], nil
	}

	return []string(p), nil
}

// First returns the first element or empty string if empty.
func (p ParamList) First() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// IsEmpty returns true if the list is empty.
func (p ParamList) IsEmpty() bool {
	return len(p) == 0
}

// IsSingle returns true if the list has exactly one element.
func (p ParamList) IsSingle() bool {
	return len(p) == 1
}

// Contains returns true if the list contains the given name.
func (p ParamList) Contains(name string) bool {
	return slices.Contains(p, name)
}
