// Package mapping provides YAML schema definitions, parsing, validation,
// and the registered conversion table that drives the delegate rewriter.
//
// YAML is a first-class feature: the conversion table ships with a
// builtin seed covering the documented delivery-admin handlers, and
// teams pin additional handlers in a reviewed mapping file.
//
// # Key capabilities
//
//   - Map a legacy handler name to a data-action and named parameters
//   - Special output shapes for pagination, tab switching, and modal close
//   - Scalar-or-sequence shorthand for single-parameter mappings
//   - Structural validation with stable diagnostic codes
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "1"
//	mappings:
//	  - legacy: viewDelivery
//	    action: view-delivery
//	    params: delivery-id
//	  - legacy: updateDeliveryStatus
//	    action: update-delivery-status
//	    params: [delivery-id, current-status]
//	  - legacy: loadDeliveries
//	    kind: pagination
//	    section: deliveries
//	    params: page
//	  - legacy: switchClientTab
//	    kind: tab
//	    params: client-tab
//
// The kind defaults to "action". Parameter names become data-* attribute
// names in declaration order, so they must be lowercase-dash words.
//
// # Table Lifecycle
//
// A Table is built once, before any rewriting starts, and is read-only
// afterwards. Registration failures (duplicate legacy names) are
// configuration errors surfaced at build time, never at rewrite time.
package mapping
