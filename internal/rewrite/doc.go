// Package rewrite converts parsed legacy inline-handler invocations
// into delegated-event data-* attributes.
//
// The conversion is a pure table-driven mapping: lookup by legacy
// function name, strict arity check, then a kind-specific output shape.
// Results are tagged variants rather than one universal attribute
// shape, because pagination, tab switching, and modal close do not fit
// the uniform data-action + data-<param> form.
package rewrite
