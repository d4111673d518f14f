package mapping

import (
	"fmt"

	"delegate-rewriter/internal/diagnostic"
)

// Validate validates a mapping file structurally. It checks key
// uniqueness, name syntax, and the per-kind shape rules; it does not
// touch markup or arguments.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range f.Mappings {
		m := &f.Mappings[i]

		if m.Legacy == "" {
			res.AddError("missing_legacy", fmt.Sprintf("mapping #%d has no legacy function name", i), "", "")
			continue
		}

		if !isValidIdent(m.Legacy) {
			res.AddError("invalid_legacy_name",
				fmt.Sprintf("legacy function name %q is not a valid identifier", m.Legacy), m.Legacy, "")
		}

		if _, ok := seen[m.Legacy]; ok {
			res.AddError("duplicate_mapping", fmt.Sprintf("duplicate mapping %q", m.Legacy), m.Legacy, "")
			continue
		}

		seen[m.Legacy] = struct{}{}

		validateMapping(res, m)
	}

	return res
}

// validateMapping validates a single mapping entry against the shape
// rules of its kind.
func validateMapping(res *diagnostic.Diagnostics, m *ActionMapping) {
	if !m.Kind.IsValid() {
		res.AddError("invalid_kind", fmt.Sprintf("mapping %q has invalid kind", m.Legacy), m.Legacy, "")
		return
	}

	validateParams(res, m)

	switch m.Kind {
	case KindAction:
		if m.Action == "" {
			res.AddError("missing_action", fmt.Sprintf("mapping %q needs an action name", m.Legacy), m.Legacy, "")
		} else if !isValidAttrWord(m.Action) {
			res.AddError("invalid_action_name",
				fmt.Sprintf("action name %q must be a lowercase-dash word", m.Action), m.Legacy, m.Action)
		}

		if m.Section != "" {
			res.AddWarning("ignored_section",
				fmt.Sprintf("mapping %q sets section but is not a pagination mapping", m.Legacy), m.Legacy, m.Section)
		}

	case KindPagination:
		if m.Section == "" {
			res.AddError("missing_section", fmt.Sprintf("pagination mapping %q needs a section", m.Legacy), m.Legacy, "")
		} else if !isValidAttrWord(m.Section) {
			res.AddError("invalid_section_name",
				fmt.Sprintf("section name %q must be a lowercase-dash word", m.Section), m.Legacy, m.Section)
		}

		if !m.Params.IsSingle() {
			res.AddError("pagination_arity",
				fmt.Sprintf("pagination mapping %q must declare exactly one parameter, got %d", m.Legacy, m.Arity()),
				m.Legacy, "")
		}

		warnIgnoredAction(res, m)

	case KindTab:
		if !m.Params.IsSingle() {
			res.AddError("tab_arity",
				fmt.Sprintf("tab mapping %q must declare exactly one parameter, got %d", m.Legacy, m.Arity()),
				m.Legacy, "")
		}

		warnIgnoredAction(res, m)

	case KindModalClose:
		if m.Arity() > 1 {
			res.AddError("modal_close_arity",
				fmt.Sprintf("modal-close mapping %q may declare at most one parameter, got %d", m.Legacy, m.Arity()),
				m.Legacy, "")
		}

		if m.Arity() == 1 && m.Action == "" {
			res.AddError("missing_action",
				fmt.Sprintf("modal-close mapping %q needs an action name for its one-argument form", m.Legacy),
				m.Legacy, "")
		}
	}
}

// validateParams checks parameter name syntax and uniqueness within a
// single mapping.
func validateParams(res *diagnostic.Diagnostics, m *ActionMapping) {
	seen := map[string]struct{}{}

	for _, p := range m.Params {
		if !isValidAttrWord(p) {
			res.AddError("invalid_param_name",
				fmt.Sprintf("parameter name %q must be a lowercase-dash word", p), m.Legacy, p)
		}

		if _, ok := seen[p]; ok {
			res.AddError("duplicate_param",
				fmt.Sprintf("parameter name %q declared twice", p), m.Legacy, p)
		}

		seen[p] = struct{}{}
	}
}

func warnIgnoredAction(res *diagnostic.Diagnostics, m *ActionMapping) {
	if m.Action != "" {
		res.AddWarning("ignored_action",
			fmt.Sprintf("mapping %q sets an action name that its kind never emits", m.Legacy), m.Legacy, m.Action)
	}
}
