// SPDX-License-Identifier: MIT
// Package: valo/vo
//
// construct.go — the construction pipeline and the Instance type.
//
// Contract (strict):
//   • One synchronous pass: bind → freeze → validate → ready.
//   • Failure at any stage aborts construction; no partially built instance
//     escapes to the caller.
//   • A returned Instance is in StateReady, holds no mutable state (modulo
//     the shallow freeze boundary), and is safe for unsynchronized
//     concurrent reads.

package vo

import (
	"fmt"

	"github.com/katalvlaran/valo/freeze"
)

// Instance is one constructed value object: an ordered, immutable mapping of
// field name → resolved value, identified purely by those values.
//
// Instance has no exported fields and no setters — immutability is a
// property of the type's shape, not an intercepted behavior.
type Instance struct {
	typ    *Type
	values []any // resolved values, field declaration order
	state  State
	hash   uint64
}

// New constructs an instance of t from a construction request: positional
// values in declaration order plus keyword values by field name. Either part
// may be nil.
//
// Pipeline: bind (precedence default < positional < keyword) → freeze every
// container value → evaluate invariants → derive the structural hash →
// StateReady. On any failure New returns (nil, err) with the stage's
// sentinel reachable via errors.Is.
//
// Complexity: O(F + V) plus container freezing and predicate cost.
func (t *Type) New(pos Args, kw KW) (*Instance, error) {
	if t == nil {
		return nil, fmt.Errorf("New: %w", ErrNilType)
	}

	in := &Instance{typ: t, state: StateUninitialized}

	values, err := t.bind(pos, kw)
	if err != nil {
		in.state = StateFailed

		return nil, err
	}
	in.values = values
	in.state = StateBound

	// Immutability Guard: shallow-freeze container values in place.
	for i, v := range in.values {
		in.values[i] = freeze.Freeze(v)
	}
	in.state = StateFrozen

	in.state = StateValidating
	if err = t.validate(in); err != nil {
		in.state = StateFailed

		return nil, err
	}

	// Hash is derived once, while the instance is known frozen.
	in.hash = structuralHash(in)
	in.state = StateReady

	return in, nil
}

// MustNew is the panicking variant of New, for values whose validity is
// known at authoring time (constants, fixtures, examples).
func (t *Type) MustNew(pos Args, kw KW) *Instance {
	in, err := t.New(pos, kw)
	if err != nil {
		panic(err)
	}

	return in
}

// Type returns the declaring type. Complexity: O(1).
func (in *Instance) Type() *Type { return in.typ }

// TypeName returns the declaring type's name. Complexity: O(1).
func (in *Instance) TypeName() string { return in.typ.name }

// State returns the lifecycle stage; on any caller-visible instance this is
// StateReady. Complexity: O(1).
func (in *Instance) State() State { return in.state }

// Len returns the number of bound fields. Complexity: O(1).
func (in *Instance) Len() int { return len(in.values) }

// Get returns the bound value of the named field and whether the field is
// declared. Complexity: O(1).
func (in *Instance) Get(name string) (any, bool) {
	i, ok := in.typ.index[name]
	if !ok {
		return nil, false
	}

	return in.values[i], true
}

// MustGet returns the bound value of the named field, panicking when the
// field is not declared. Intended for invariant bodies and tests where the
// field set is known. Complexity: O(1).
func (in *Instance) MustGet(name string) any {
	v, ok := in.Get(name)
	if !ok {
		panic(fmt.Sprintf("vo: %s has no field %q", in.typ.name, name))
	}

	return v
}

// Fields returns the field names in declaration order, as a fresh slice.
// Complexity: O(F).
func (in *Instance) Fields() []string {
	names := make([]string, len(in.typ.fields))
	for i, f := range in.typ.fields {
		names[i] = f.Name
	}

	return names
}

// Values returns the bound values in declaration order, as a fresh slice.
// Complexity: O(F).
func (in *Instance) Values() []any {
	out := make([]any, len(in.values))
	copy(out, in.values)

	return out
}

// Snapshot returns a fresh name → value map of the bound fields. The map is
// a top-level copy: mutating it does not affect the instance.
// Complexity: O(F).
func (in *Instance) Snapshot() map[string]any {
	out := make(map[string]any, len(in.values))
	for i, f := range in.typ.fields {
		out[f.Name] = in.values[i]
	}

	return out
}

// Set is the unconditional mutation block for dynamic callers: it always
// returns ErrImmutable and changes nothing. There is no thaw operation.
func (in *Instance) Set(name string, value any) error {
	return fmt.Errorf("%s.%s: %w", in.typ.name, name, ErrImmutable)
}
