package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind selects the output shape produced for a mapping.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	// KindAction produces the uniform data-action + data-<param> shape.
	KindAction
	// KindPagination produces data-pagination data-section="..." data-<param>="...".
	KindPagination
	// KindTab produces a single data-<param> attribute with no data-action.
	KindTab
	// KindModalClose produces the close-modal action when given a modal id,
	// or a bare data-modal-close marker for the zero-argument variant.
	KindModalClose
)

// kind names as they appear in YAML mapping files.
const (
	kindNameAction     = "action"
	kindNamePagination = "pagination"
	kindNameTab        = "tab"
	kindNameModalClose = "modal-close"
)

// ParseKind parses a YAML kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case kindNameAction:
		return KindAction, nil
	case kindNamePagination:
		return KindPagination, nil
	case kindNameTab:
		return KindTab, nil
	case kindNameModalClose:
		return KindModalClose, nil
	default:
		return 0, fmt.Errorf("unknown mapping kind %q", s)
	}
}

// Name returns the YAML name of the kind, or empty string if invalid.
func (k Kind) Name() string {
	switch k {
	case KindAction:
		return kindNameAction
	case KindPagination:
		return kindNamePagination
	case KindTab:
		return kindNameTab
	case KindModalClose:
		return kindNameModalClose
	default:
		return ""
	}
}

// IsValid returns true if the kind is a recognized value.
func (k Kind) IsValid() bool {
	return k >= KindAction && k <= KindModalClose
}

// UnmarshalYAML implements custom YAML unmarshaling for Kind.
// An empty or absent node leaves the zero value, which the loader
// defaults to KindAction.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string

	err := node.Decode(&str)
	if err != nil {
		return err
	}

	if str == "" {
		*k = 0
		return nil
	}

	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Kind.
func (k Kind) MarshalYAML() (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", int(k))
	}

	return k.Name(), nil
}
