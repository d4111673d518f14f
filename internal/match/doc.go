// Package match suggests close registered handler names for unknown
// legacy functions, so "unknown function" diagnostics can point at the
// likely typo instead of leaving the author guessing.
package match
