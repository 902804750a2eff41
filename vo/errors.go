// SPDX-License-Identifier: MIT
// Package: valo/vo
//
// errors.go — sentinel errors for the value-object pipeline.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed, plus one typed
//     error (ViolationError) carrying structured invariant context.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics;
//     errors.As(err, &ve) extracts invariant details.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     call sites attach context with %w.
//   • The pipeline MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...) and the Must* helpers.

package vo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valo/freeze"
)

// ErrNilType indicates a construction attempt through a nil *Type.
// Usage: if errors.Is(err, ErrNilType) { /* declare the type first */ }.
var ErrNilType = errors.New("vo: nil type")

// ErrEmptyTypeName indicates NewType was called with an empty name.
// Classification: declaration error.
var ErrEmptyTypeName = errors.New("vo: empty type name")

// ErrNoFields indicates a type declaration with zero fields. A value object
// with no fields has no identity, so the declaration is rejected outright.
// Classification: declaration error.
// Usage: if errors.Is(err, ErrNoFields) { /* add at least one WithField */ }.
var ErrNoFields = errors.New("vo: type declares no fields")

// ErrDuplicateField indicates the same field name was declared twice, either
// directly or through a base type collision.
// Classification: declaration error.
var ErrDuplicateField = errors.New("vo: duplicate field name")

// ErrMissingValue indicates a nil positional value, or a declared field left
// without default, positional or keyword value at bind time.
// Usage: if errors.Is(err, ErrMissingValue) { /* supply the value */ }.
var ErrMissingValue = errors.New("vo: missing field value")

// ErrTooManyValues indicates more positional values were supplied than the
// type declares fields.
var ErrTooManyValues = errors.New("vo: more positional values than fields")

// ErrUnknownField indicates a keyword name that is not declared on the type.
var ErrUnknownField = errors.New("vo: unknown field name")

// ErrInvariantViolated indicates an invariant evaluated to false. The
// concrete error is a *ViolationError; this sentinel is its Unwrap target.
// Usage: if errors.Is(err, ErrInvariantViolated) { /* reject the values */ }.
var ErrInvariantViolated = errors.New("vo: invariant violated")

// ErrInvariantReturn indicates an invariant produced a non-boolean result.
// Usage: if errors.Is(err, ErrInvariantReturn) { /* fix the predicate */ }.
var ErrInvariantReturn = errors.New("vo: invariant returned non-boolean")

// ErrImmutable is the post-construction mutation sentinel, shared with the
// freeze containers so one errors.Is branch covers both surfaces.
var ErrImmutable = freeze.ErrImmutable

// ViolationError reports which invariant failed and the field values it was
// evaluated against. It unwraps to ErrInvariantViolated.
type ViolationError struct {
	// Type is the declared name of the value-object type.
	Type string

	// Invariant is the failing invariant's name.
	Invariant string

	// Fields is a copy of the bound field values at evaluation time,
	// keyed by field name.
	Fields map[string]any
}

// Error renders a deterministic description: fmt prints the Fields map in
// sorted key order.
func (e *ViolationError) Error() string {
	return fmt.Sprintf("vo: %s values %v violate invariant %q", e.Type, e.Fields, e.Invariant)
}

// Unwrap links the typed error to the ErrInvariantViolated sentinel.
func (e *ViolationError) Unwrap() error { return ErrInvariantViolated }
