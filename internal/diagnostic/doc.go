// Package diagnostic provides structured errors, warnings, and
// "why this element was skipped" reports for the delegate rewriter.
//
// Key capabilities:
//   - Mapping-config validation errors with stable codes
//   - Per-element skip reports when markup is left untouched
//   - Near-miss suggestions for unknown legacy function names
package diagnostic
