package rewrite

import (
	"errors"
	"fmt"

	"delegate-rewriter/internal/invoke"
	"delegate-rewriter/internal/mapping"
)

var (
	// ErrUnknownFunction is returned when no mapping is registered for
	// the invoked legacy function name.
	ErrUnknownFunction = errors.New("unknown legacy function")

	// ErrArityMismatch is returned when the argument count disagrees
	// with the mapping's declared parameter count. Arguments are never
	// silently dropped or padded.
	ErrArityMismatch = errors.New("arity mismatch")
)

// Rewriter converts legacy invocations into delegated attributes using
// an immutable mapping table. Build the table fully before constructing
// the rewriter; Rewrite is then pure and safe for concurrent use.
type Rewriter struct {
	table *mapping.Table
}

// New creates a rewriter over the given table.
func New(table *mapping.Table) *Rewriter {
	return &Rewriter{table: table}
}

// Table returns the rewriter's mapping table for inspection.
func (r *Rewriter) Table() *mapping.Table {
	return r.table
}

// Rewrite converts one parsed invocation. It fails with
// ErrUnknownFunction if the function name is not registered, and with
// ErrArityMismatch if the argument count disagrees with the mapping.
func (r *Rewriter) Rewrite(inv invoke.Invocation) (Result, error) {
	m, ok := r.table.Lookup(inv.Func)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, inv.Func)
	}

	switch m.Kind {
	case mapping.KindPagination:
		if err := checkArity(m, len(inv.Args)); err != nil {
			return nil, err
		}

		return PaginationResult{
			Section:   m.Section,
			PageParam: m.Params.First(),
			Page:      inv.Args[0],
		}, nil

	case mapping.KindTab:
		if err := checkArity(m, len(inv.Args)); err != nil {
			return nil, err
		}

		return TabResult{Param: m.Params.First(), Tab: inv.Args[0]}, nil

	case mapping.KindModalClose:
		// The zero-argument variant (closeModal(this.closest(...)))
		// degrades to a bare marker; with a modal id it is a plain
		// action conversion.
		if len(inv.Args) == 0 {
			return ModalCloseResult{}, nil
		}

		if err := checkArity(m, len(inv.Args)); err != nil {
			return nil, err
		}

		return actionResult(m, inv.Args), nil

	default:
		if err := checkArity(m, len(inv.Args)); err != nil {
			return nil, err
		}

		return actionResult(m, inv.Args), nil
	}
}

// RewriteString parses a raw call expression and rewrites it in one
// step. Parse errors wrap invoke.ErrMalformedInvocation.
func (r *Rewriter) RewriteString(raw string) (Result, error) {
	inv, err := invoke.Parse(raw)
	if err != nil {
		return nil, err
	}

	return r.Rewrite(inv)
}

func actionResult(m mapping.ActionMapping, args []string) ActionResult {
	params := make([]Param, len(args))
	for i, arg := range args {
		params[i] = Param{Name: m.Params[i], Value: arg}
	}

	return ActionResult{Action: m.Action, Params: params}
}

func checkArity(m mapping.ActionMapping, got int) error {
	if got != m.Arity() {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d",
			ErrArityMismatch, m.Legacy, m.Arity(), got)
	}

	return nil
}
