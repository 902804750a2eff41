// Package schema builds valo value-object types from declarative YAML
// documents, pairing goccy/go-yaml parsing with voexpr expression invariants.
//
// What
//
//   - A document declares one or more types: ordered fields with optional
//     defaults, invariant expressions, and an optional base reference to an
//     earlier type in the same document (field and invariant inheritance).
//   - Parse/Load return the declared *vo.Type values in document order; all
//     vo declaration rules apply unchanged and their sentinels pass through
//     (errors.Is works across the boundary).
//
// Document shape
//
//	types:
//	  - name: Money
//	    fields:
//	      - name: amount
//	      - name: currency
//	        default: USD
//	    invariants:
//	      - amount >= 0
//	  - name: Discount
//	    base: Money
//	    fields:
//	      - name: percent
//	        default: 0
//	    invariants:
//	      - percent >= 0 && percent <= 100
//
// Defaults
//
//	A field's default participates in binding only when the default key is
//	present with a non-null value; "default: null" is indistinguishable from
//	an absent default and therefore declares a required field.
//
// Errors
//
//   - ErrSyntax      - the document failed to parse as YAML.
//   - ErrNoTypes     - the document declares no types.
//   - ErrUnknownBase - a base reference names no earlier type in the document.
//   - plus vo.Err* declaration errors and voexpr.ErrCompile, passed through.
package schema
