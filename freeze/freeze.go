// SPDX-License-Identifier: MIT
// Package: valo/freeze
//
// freeze.go — sentinel errors and the Freeze dispatcher.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Mutating methods NEVER panic; they report ErrImmutable and leave the
//     container untouched.

package freeze

import (
	"errors"
	"reflect"
)

// ErrImmutable indicates a mutating operation was attempted on a frozen
// container or on a constructed value object.
// Usage: if errors.Is(err, ErrImmutable) { /* reject the write path */ }.
var ErrImmutable = errors.New("freeze: immutable value cannot be changed")

// ErrNotMapping indicates NewMap was called with a value whose kind is not a map.
// Usage: if errors.Is(err, ErrNotMapping) { /* pass a map value */ }.
var ErrNotMapping = errors.New("freeze: value is not a mapping")

// ErrNotSequence indicates NewTuple was called with a value whose kind is not
// a slice or array.
// Usage: if errors.Is(err, ErrNotSequence) { /* pass a slice or array */ }.
var ErrNotSequence = errors.New("freeze: value is not a sequence")

// Freeze converts v into its frozen variant:
//
//   - map kinds   → *Map (copied, top level only)
//   - slice/array → *Tuple (copied, top level only)
//   - *Map/*Tuple → returned as-is (already frozen)
//   - anything else, including nil → returned unchanged
//
// Freezing is shallow: nested containers inside the copied top level are not
// converted. Complexity: O(n log n) for maps, O(n) for sequences, O(1) otherwise.
func Freeze(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case *Map, *Tuple:
		return v
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		m, _ := NewMap(v) // kind already checked; cannot fail
		return m
	case reflect.Slice, reflect.Array:
		t, _ := NewTuple(v) // kind already checked; cannot fail
		return t
	default:
		return v
	}
}

// IsFrozen reports whether v is one of the frozen container types produced by
// this package. Scalars are not reported as frozen even though they are
// immutable by nature. Complexity: O(1).
func IsFrozen(v any) bool {
	switch v.(type) {
	case *Map, *Tuple:
		return true
	default:
		return false
	}
}
