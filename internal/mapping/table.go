package mapping

import (
	"errors"
	"fmt"
)

// ErrDuplicateMapping is returned when a legacy function name is
// registered twice. Registration collisions are configuration errors
// and must be fixed before the table is used.
var ErrDuplicateMapping = errors.New("duplicate mapping")

// Table is the registered set of action mappings, keyed by legacy
// function name. Build the table fully before handing it to a rewriter;
// after that it is read-only and safe for concurrent lookups without
// locking.
type Table struct {
	byLegacy map[string]ActionMapping
	order    []string
}

// NewTable builds a table from the given mappings. It fails on the
// first duplicate legacy name.
func NewTable(mappings ...ActionMapping) (*Table, error) {
	t := &Table{byLegacy: make(map[string]ActionMapping, len(mappings))}

	for _, m := range mappings {
		if err := t.Register(m); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Register adds a mapping to the table. It fails if the legacy function
// name is already registered. Call it only during table construction.
func (t *Table) Register(m ActionMapping) error {
	if _, exists := t.byLegacy[m.Legacy]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMapping, m.Legacy)
	}

	t.byLegacy[m.Legacy] = m
	t.order = append(t.order, m.Legacy)

	return nil
}

// Lookup returns the mapping for a legacy function name.
func (t *Table) Lookup(legacy string) (ActionMapping, bool) {
	m, ok := t.byLegacy[legacy]
	return m, ok
}

// Has returns true if a mapping with the given legacy name exists.
func (t *Table) Has(legacy string) bool {
	_, ok := t.byLegacy[legacy]
	return ok
}

// Len returns the number of registered mappings.
func (t *Table) Len() int {
	return len(t.byLegacy)
}

// Names returns the registered legacy function names in registration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// All returns the registered mappings in registration order.
func (t *Table) All() []ActionMapping {
	out := make([]ActionMapping, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byLegacy[name])
	}

	return out
}
