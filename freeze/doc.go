// Package freeze provides the immutable container types used by the valo
// construction pipeline: a frozen mapping (Map) and a fixed-length immutable
// sequence (Tuple), plus the Freeze dispatcher that converts raw bound values
// into their frozen variants.
//
// What
//
//   - Freeze(v) copies any map value into a *Map and any slice or array value
//     into a *Tuple; every other value (including already-frozen containers)
//     passes through unchanged.
//   - Map rejects all of its mutating operations — Set, Delete, Clear, Update,
//     SetDefault, Pop, PopItem — with ErrImmutable, and changes nothing.
//   - Tuple has no mutating operations at all; reads return copies.
//
// Shallow boundary
//
//	Freezing is intentionally shallow: only the top-level container is
//	converted. Values nested inside a frozen container keep their original
//	types and remain mutable through retained references. Callers who need
//	deep immutability must freeze inner containers themselves before
//	construction.
//
// Determinism
//
//	Map iteration (Keys, Range, String) is ordered by the formatted key, so
//	every read of the same frozen mapping observes the same order and two
//	equal mappings render identical strings.
//
// Errors
//
//   - ErrImmutable   - a mutating operation was attempted on a frozen container.
//   - ErrNotMapping  - NewMap received a non-map value.
//   - ErrNotSequence - NewTuple received a non-slice, non-array value.
//
// Complexity
//
//   - Freezing a container of n entries costs O(n log n) time (sorted key
//     index for Map, plain copy for Tuple) and O(n) space.
//   - All reads are O(1) or O(n) copies; all rejected mutations are O(1).
package freeze
