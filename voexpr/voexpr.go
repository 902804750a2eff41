// SPDX-License-Identifier: MIT
// Package: valo/voexpr
//
// voexpr.go — expr-compiled invariants for value-object types.
//
// Contract (strict):
//   • Compilation happens once, in Invariant; evaluation is allocation-light.
//   • Eval never panics and never mutates the instance: frozen containers
//     are thawed into copies for the expression environment.
//   • Runtime evaluation failures are returned as the Eval result so the
//     invariant engine classifies them as vo.ErrInvariantReturn.

package voexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/valo/freeze"
	"github.com/katalvlaran/valo/vo"
)

// ErrEmptySource indicates a blank invariant expression.
var ErrEmptySource = errors.New("voexpr: empty expression source")

// ErrCompile indicates the expression source failed to compile.
// Usage: if errors.Is(err, ErrCompile) { /* fix the expression */ }.
var ErrCompile = errors.New("voexpr: expression compile failed")

// exprInvariant is a vo.Invariant backed by a compiled expr program.
type exprInvariant struct {
	src     string
	program *vm.Program
}

// Invariant compiles src into a vo.Invariant. The expression is evaluated
// with the instance's bound fields as variables; its result flows to the
// invariant engine unconverted, so only boolean expressions pass validation.
//
// The environment is untyped (field sets vary per type), so identifier and
// type mistakes that a typed environment would catch at compile time surface
// at evaluation as vo.ErrInvariantReturn instead.
func Invariant(src string) (vo.Invariant, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("Invariant: %w", ErrEmptySource)
	}

	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("Invariant(%q): %w: %v", src, ErrCompile, err)
	}

	return &exprInvariant{src: src, program: program}, nil
}

// MustInvariant is the panicking variant of Invariant, for expressions whose
// validity is known at authoring time.
func MustInvariant(src string) vo.Invariant {
	inv, err := Invariant(src)
	if err != nil {
		panic(err)
	}

	return inv
}

// Name returns the expression source; it identifies the invariant in
// ViolationError messages.
func (e *exprInvariant) Name() string { return e.src }

// Eval runs the compiled program against the instance's bound fields.
// A runtime error is returned as the result value, which the engine rejects
// as non-boolean.
func (e *exprInvariant) Eval(in *vo.Instance) any {
	env := make(map[string]any, in.Len())
	for name, value := range in.Snapshot() {
		env[name] = thaw(value)
	}

	out, err := expr.Run(e.program, env)
	if err != nil {
		return err
	}

	return out
}

// thaw exposes frozen containers to the expression as plain copies so the
// usual operators (len, in, indexing) apply. Copies keep the instance safe.
func thaw(v any) any {
	switch fv := v.(type) {
	case *freeze.Map:
		return fv.Items()
	case *freeze.Tuple:
		return fv.Slice()
	default:
		return v
	}
}
