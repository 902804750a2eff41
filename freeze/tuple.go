// SPDX-License-Identifier: MIT
// Package: valo/freeze
//
// tuple.go — Tuple, the fixed-length immutable sequence variant.
//
// Contract (strict):
//   • The source slice/array is copied once at construction.
//   • No mutating methods exist; reads hand out copies, never internal state.

package freeze

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Tuple is a fixed-length immutable sequence. It is produced by NewTuple (or
// Freeze) from any slice or array value. It exposes no mutating operations,
// so post-construction writes are impossible by type shape.
//
// The zero Tuple is empty and usable.
type Tuple struct {
	items []any
}

// NewTuple copies the top level of src (any slice or array kind) into an
// immutable Tuple. Nested containers inside src are not converted (shallow
// freeze). Returns ErrNotSequence when src is not a slice or array.
// Complexity: O(n) time and space.
func NewTuple(src any) (*Tuple, error) {
	if src == nil {
		return nil, fmt.Errorf("NewTuple(nil): %w", ErrNotSequence)
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("NewTuple(%T): %w", src, ErrNotSequence)
	}

	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}

	return &Tuple{items: items}, nil
}

// Of builds a Tuple directly from the given items. Complexity: O(n).
func Of(items ...any) *Tuple {
	copied := make([]any, len(items))
	copy(copied, items)

	return &Tuple{items: copied}
}

// At returns the item at position i and whether i is in range.
// Complexity: O(1).
func (t *Tuple) At(i int) (any, bool) {
	if i < 0 || i >= len(t.items) {
		return nil, false
	}

	return t.items[i], true
}

// Len returns the number of items. Complexity: O(1).
func (t *Tuple) Len() int { return len(t.items) }

// Slice returns a fresh mutable copy of the items; mutating it does not
// affect the Tuple. Complexity: O(n) time and space.
func (t *Tuple) Slice() []any {
	out := make([]any, len(t.items))
	copy(out, t.items)

	return out
}

// Range calls fn for each item in positional order until fn returns false.
// Complexity: O(n).
func (t *Tuple) Range(fn func(i int, item any) bool) {
	for i, item := range t.items {
		if !fn(i, item) {
			return
		}
	}
}

// Equal reports whether both tuples have the same length and deeply equal
// items position by position. A nil other is never equal.
// Complexity: O(n) DeepEqual comparisons.
func (t *Tuple) Equal(other *Tuple) bool {
	if other == nil || len(t.items) != len(other.items) {
		return false
	}
	for i, item := range t.items {
		if !reflect.DeepEqual(item, other.items[i]) {
			return false
		}
	}

	return true
}

// String renders the sequence as [v1 v2 v3], matching the fmt layout of
// native Go slices so frozen values blend into the value object's string form.
func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range t.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')

	return b.String()
}

// Hash implements hashstructure.Hashable: the digest covers the ordered items.
func (t *Tuple) Hash() (uint64, error) {
	return hashstructure.Hash(t.items, hashstructure.FormatV2, nil)
}
