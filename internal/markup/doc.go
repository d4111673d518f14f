// Package markup scans HTML for legacy inline-handler attributes and
// rewrites them to delegated-event data-* attributes in place.
//
// Elements whose handler value cannot be converted are left untouched
// and reported through diagnostics: malformed expressions and unknown
// functions are warnings (the caller may keep the legacy markup), while
// an arity mismatch is an error because it means the mapping table is
// stale.
package markup
