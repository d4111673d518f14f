package mapping

// File represents the root of a YAML mapping definition file.
// This is the authoritative, human-reviewed conversion configuration.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mappings is the list of legacy-handler conversion entries.
	Mappings []ActionMapping `yaml:"mappings"`
}

// ActionMapping defines how one legacy inline-handler function converts
// to delegated data-* attributes.
type ActionMapping struct {
	// Legacy is the inline handler function name. Unique key within a table.
	Legacy string `yaml:"legacy"`

	// Kind selects the output shape. Defaults to "action".
	Kind Kind `yaml:"kind,omitempty"`

	// Action is the data-action value. Required for kind "action",
	// and for kind "modal-close" (used when a modal id argument is given).
	Action string `yaml:"action,omitempty"`

	// Params names each positional argument, in order. Each name becomes
	// a data-<name> attribute carrying the matching argument value.
	Params ParamList `yaml:"params,omitempty"`

	// Section is the data-section value. Required for kind "pagination".
	Section string `yaml:"section,omitempty"`
}

// Arity returns the number of positional arguments the mapping expects.
// For kind "modal-close" this is the maximum arity; the zero-argument
// variant is also accepted.
func (m ActionMapping) Arity() int {
	return len(m.Params)
}
