// Package vo is the heart of valo: immutable value objects constructed
// through a single synchronous pipeline of binding, freezing, invariant
// validation and identity derivation.
//
// What
//
//   - Declare a value-object type once with NewType: ordered fields, optional
//     per-field defaults, invariant predicates. Declaration is explicit data,
//     never runtime signature inspection.
//   - Construct instances with Type.New(pos, kw): positional values in
//     declaration order plus keyword values by field name. Resolution
//     precedence, lowest to highest: declared default → positional → keyword.
//   - Every bound map value is replaced with a freeze.Map and every bound
//     slice/array with a freeze.Tuple before invariants run, so predicates
//     already observe the frozen shape.
//   - Invariants are a static contract: values of the Invariant interface
//     attached at declaration (own plus inherited via WithBase), evaluated
//     against the fully bound instance. All must hold; evaluation stops at
//     the first failure. Order across invariants is unspecified.
//   - A constructed Instance is identified purely by its bound fields:
//     Equal, String and Hash all derive from them. There are no setters and
//     no thaw operation; Instance.Set exists for dynamic callers and always
//     reports ErrImmutable.
//
// Why
//
//   - Value objects make illegal states unrepresentable: no partially built
//     or later-mutated instance can ever be observed.
//   - Once Ready, an Instance holds no mutable state (modulo the shallow
//     freeze boundary documented in package freeze), so it may be read from
//     arbitrarily many goroutines without synchronization.
//
// Lifecycle
//
//	StateUninitialized → StateBound → StateFrozen → StateValidating → StateReady
//
//	StateFailed absorbs from any stage; a failed construction returns a nil
//	Instance and the triggering error — nothing partial escapes.
//
// Usage
//
//	money, err := vo.NewType("Money",
//	    vo.WithField("amount"),
//	    vo.WithDefault("currency", "USD"),
//	    vo.WithInvariant(vo.Predicate("non-negative amount", func(in *vo.Instance) bool {
//	        return in.MustGet("amount").(int) >= 0
//	    })),
//	)
//	if err != nil { ... }
//
//	m, err := money.New(vo.Args{10}, vo.KW{"currency": "EUR"})
//	if err != nil {
//	    // handle one of:
//	    // ErrMissingValue, ErrTooManyValues, ErrUnknownField,
//	    // ErrInvariantViolated (*ViolationError), ErrInvariantReturn
//	}
//	fmt.Println(m) // Money(amount=10, currency=EUR)
//
// Errors
//
//   - ErrNilType           - construction on a nil *Type.
//   - ErrEmptyTypeName     - NewType with an empty name.
//   - ErrNoFields          - type declares zero fields.
//   - ErrDuplicateField    - the same field name declared twice.
//   - ErrMissingValue      - nil positional value, or a field left unresolved.
//   - ErrTooManyValues     - more positional values than declared fields.
//   - ErrUnknownField      - keyword name not declared on the type.
//   - ErrInvariantViolated - an invariant evaluated to false (see ViolationError).
//   - ErrInvariantReturn   - an invariant produced a non-boolean result.
//   - ErrImmutable         - any post-construction mutation attempt.
//
// Complexity
//
//	Construction of an instance with f fields and v invariants costs
//	O(f + v) plus the cost of freezing container values and of the
//	invariant predicates themselves.
package vo
