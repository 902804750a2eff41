// SPDX-License-Identifier: MIT
// Package: valo/vo
//
// identity.go — the Equality/Hash Provider stage.
//
// Identity is structural: Equal, String and Hash all derive from the bound
// fields, with no field excluded. The type name participates in the string
// form but not in equality or the hash — two instances of differently named
// types with identical bound fields compare equal and hash identically
// (inherited limitation, kept deliberately; see DESIGN.md).

package vo

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/katalvlaran/valo/freeze"
)

// Equal reports whether both instances hold equal bound-field mappings:
// the same field names with per-value equality. A nil other is never equal.
// Inequality is the logical negation of Equal; there is no separate
// operation. Complexity: O(F) value comparisons.
func (in *Instance) Equal(other *Instance) bool {
	if other == nil || len(in.values) != len(other.values) {
		return false
	}
	for i, f := range in.typ.fields {
		ov, ok := other.Get(f.Name)
		if !ok || !equalValue(in.values[i], ov) {
			return false
		}
	}

	return true
}

// equalValue compares two bound values: frozen containers through their own
// Equal methods, everything else through reflect.DeepEqual.
func equalValue(a, b any) bool {
	switch av := a.(type) {
	case *freeze.Map:
		bv, ok := b.(*freeze.Map)

		return ok && av.Equal(bv)
	case *freeze.Tuple:
		bv, ok := b.(*freeze.Tuple)

		return ok && av.Equal(bv)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// String renders TypeName(field1=value1, field2=value2, ...) in declaration
// order. Frozen containers render deterministically, so equal instances
// produce identical strings. Complexity: O(F) plus value formatting.
func (in *Instance) String() string {
	return in.typ.name + "(" + in.fieldsForm() + ")"
}

// fieldsForm renders the field1=value1, field2=value2 body of String in
// declaration order.
func (in *Instance) fieldsForm() string {
	var b strings.Builder
	for i, f := range in.typ.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", f.Name, in.values[i])
	}

	return b.String()
}

// canonicalForm renders the bound fields sorted by name, independent of the
// declaration order and of the type name. It is the hash fallback input, so
// the fallback stays consistent with type-agnostic equality.
func (in *Instance) canonicalForm() string {
	names := make([]string, len(in.typ.fields))
	for i, f := range in.typ.fields {
		names[i] = f.Name
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, in.values[in.typ.index[name]])
	}

	return b.String()
}

// Hash returns the instance's structural hash, derived once at construction.
// Equal instances hash identically; collisions between unequal instances are
// permitted by the contract. Complexity: O(1).
func (in *Instance) Hash() uint64 { return in.hash }

// structuralHash digests the bound fields as (name, value) pairs sorted by
// field name, so two equal instances hash identically even when their types
// declare the fields in different orders. Frozen containers contribute
// through their Hashable implementations. Values hashstructure cannot digest
// (functions, channels) force the fallback: hashing the canonical name-sorted
// string form, which preserves the equal⇒equal-hash contract because equal
// instances render the same canonical form.
func structuralHash(in *Instance) uint64 {
	names := make([]string, len(in.typ.fields))
	for i, f := range in.typ.fields {
		names[i] = f.Name
	}
	sort.Strings(names)

	pairs := make([]any, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, name, in.values[in.typ.index[name]])
	}

	h, err := hashstructure.Hash(pairs, hashstructure.FormatV2, nil)
	if err != nil {
		h, _ = hashstructure.Hash(in.canonicalForm(), hashstructure.FormatV2, nil)
	}

	return h
}
