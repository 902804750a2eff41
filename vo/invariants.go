// SPDX-License-Identifier: MIT
// Package: valo/vo
//
// invariants.go — the Invariant Engine stage.
//
// Invariants are a static contract: values attached at declaration time via
// WithInvariant (own and inherited through WithBase). There is no runtime
// scan over type members. Each invariant sees the fully bound, frozen
// instance; all must hold, evaluation stops at the first failure, and the
// order across invariants is deliberately not part of the contract.

package vo

import "fmt"

// Invariant is one validity predicate of a value-object type.
//
// Eval receives the fully bound, frozen instance and must produce a boolean.
// The result type is deliberately open so that loosely-typed predicate
// sources (expression languages, scripted rules) flow through the engine,
// which converts any non-boolean result into ErrInvariantReturn.
type Invariant interface {
	// Name identifies the invariant in ViolationError and diagnostics.
	Name() string

	// Eval checks the predicate against a constructed instance.
	Eval(in *Instance) any
}

// predicate adapts a plain boolean function to the Invariant interface.
type predicate struct {
	name string
	fn   func(*Instance) bool
}

// Predicate wraps the common strongly-typed case: a named boolean function
// over the instance. Panics on an empty name or nil fn (option-constructor
// validation rule).
func Predicate(name string, fn func(*Instance) bool) Invariant {
	if name == "" {
		panic("vo: Predicate(\"\")")
	}
	if fn == nil {
		panic("vo: Predicate(nil)")
	}

	return &predicate{name: name, fn: fn}
}

func (p *predicate) Name() string { return p.name }

func (p *predicate) Eval(in *Instance) any { return p.fn(in) }

// validate runs every attached invariant against in.
//
// Fails with:
//   - ErrInvariantReturn when an invariant produces a non-boolean result;
//     the result's dynamic type is included in the context.
//   - *ViolationError (unwrapping to ErrInvariantViolated) at the first
//     invariant that evaluates to false, carrying the current field values
//     and the failing invariant's name.
//
// Complexity: O(V) invariant evaluations, short-circuiting on failure.
func (t *Type) validate(in *Instance) error {
	for _, inv := range t.invariants {
		out := inv.Eval(in)
		ok, isBool := out.(bool)
		if !isBool {
			return fmt.Errorf("%s: invariant %q produced %T, want bool: %w",
				t.name, inv.Name(), out, ErrInvariantReturn)
		}
		if !ok {
			return &ViolationError{
				Type:      t.name,
				Invariant: inv.Name(),
				Fields:    in.Snapshot(),
			}
		}
	}

	return nil
}
