// Package voexpr attaches invariants written in the expr expression language
// (github.com/expr-lang/expr) to valo value-object types.
//
// What
//
//   - Invariant(src) compiles src once and returns a vo.Invariant whose
//     evaluation environment is the instance's bound fields: each field name
//     is a variable, so "amount >= 0 && currency in ['USD', 'EUR']" reads
//     naturally against a Money instance.
//   - Frozen containers are exposed to the expression as plain copies
//     (freeze.Map → map, freeze.Tuple → slice), so len(tags), indexing and
//     membership operators work unchanged. The copies keep the instance
//     immutable no matter what the expression does.
//   - The expression result is handed to the invariant engine as-is: a
//     non-boolean result (including a runtime evaluation error) surfaces as
//     vo.ErrInvariantReturn, never as a silent pass.
//
// Why
//
//	Expression invariants keep validation rules declarative and serializable
//	(see package schema), while Go-native predicates via vo.Predicate remain
//	the strongly-typed default.
//
// Usage
//
//	inv, err := voexpr.Invariant("amount >= 0")
//	if err != nil { ... } // errors.Is(err, voexpr.ErrCompile)
//
//	money, err := vo.NewType("Money",
//	    vo.WithField("amount"),
//	    vo.WithDefault("currency", "USD"),
//	    vo.WithInvariant(inv),
//	)
//
// Errors
//
//   - ErrEmptySource - blank expression source.
//   - ErrCompile     - the source failed to compile.
package voexpr
