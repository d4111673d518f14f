package rewrite

import "delegate-rewriter/internal/mapping"

// Result is the outcome of rewriting one legacy invocation. The
// concrete type is selected by the mapping kind.
type Result interface {
	// Attrs renders the delegated attributes for this result, in
	// their deterministic output order.
	Attrs() Attrs
	// Kind reports the mapping kind that produced this result.
	Kind() mapping.Kind
}

// Param is one named argument value of an action result.
type Param struct {
	Name  string
	Value string
}

// ActionResult is the uniform data-action + data-<param> output shape.
type ActionResult struct {
	Action string
	Params []Param
}

// Attrs renders data-action first, then the parameters in order.
func (r ActionResult) Attrs() Attrs {
	attrs := make(Attrs, 0, len(r.Params)+1)
	attrs = append(attrs, Attr{Name: "data-action", Value: r.Action})

	for _, p := range r.Params {
		attrs = append(attrs, Attr{Name: "data-" + p.Name, Value: p.Value})
	}

	return attrs
}

func (r ActionResult) Kind() mapping.Kind { return mapping.KindAction }

// PaginationResult is the pagination output shape: a data-pagination
// marker plus the section and page number.
type PaginationResult struct {
	Section string
	// PageParam is the declared parameter name carrying the page
	// value, "page" in the builtin table.
	PageParam string
	Page      string
}

func (r PaginationResult) Attrs() Attrs {
	return Attrs{
		{Name: "data-pagination", Marker: true},
		{Name: "data-section", Value: r.Section},
		{Name: "data-" + r.PageParam, Value: r.Page},
	}
}

func (r PaginationResult) Kind() mapping.Kind { return mapping.KindPagination }

// TabResult is the tab-switch output shape: a single data-<param>
// attribute with no data-action discriminator.
type TabResult struct {
	// Param is the declared parameter name, "client-tab" in the
	// builtin table.
	Param string
	Tab   string
}

func (r TabResult) Attrs() Attrs {
	return Attrs{{Name: "data-" + r.Param, Value: r.Tab}}
}

func (r TabResult) Kind() mapping.Kind { return mapping.KindTab }

// ModalCloseResult is the zero-argument modal-close output shape: a
// bare data-modal-close marker read by the delegation listener, which
// resolves the enclosing modal from the event target.
type ModalCloseResult struct{}

func (r ModalCloseResult) Attrs() Attrs {
	return Attrs{{Name: "data-modal-close", Marker: true}}
}

func (r ModalCloseResult) Kind() mapping.Kind { return mapping.KindModalClose }
