// Package vo type declarations.
//
// This file declares Field, Type, TypeOption and the NewType constructor.
// A Type is declared once, up front, as explicit data — the pipeline never
// inspects constructor signatures at call time.

package vo

import "fmt"

// Field is one declared constructor parameter of a value-object type.
type Field struct {
	// Name is the field's unique name within its Type.
	Name string

	// Default is the declared fallback value; meaningful only when
	// HasDefault is true.
	Default any

	// HasDefault reports whether Default participates in binding.
	HasDefault bool
}

// Type is the declared constructor shape of one value-object kind: an ordered
// field list, optional defaults, and the invariants every instance must hold.
//
// A Type is immutable after NewType returns and safe for concurrent use.
type Type struct {
	name       string
	fields     []Field
	index      map[string]int // field name → position in fields
	invariants []Invariant
}

// TypeOption customizes a Type declaration before validation.
// Option constructors validate their own arguments and panic on meaningless
// input; cross-option consistency is validated by NewType and reported as an
// error. Complexity: applying N options costs O(N).
type TypeOption func(*Type)

// WithField declares a required field. Fields bind in declaration order.
// Panics on an empty name to surface the programmer error early.
func WithField(name string) TypeOption {
	if name == "" {
		panic("vo: WithField(\"\")")
	}
	return func(t *Type) {
		t.fields = append(t.fields, Field{Name: name})
	}
}

// WithDefault declares a field carrying a default value. The default is the
// lowest-precedence source during binding; positional and keyword values
// override it. Panics on an empty name.
func WithDefault(name string, value any) TypeOption {
	if name == "" {
		panic("vo: WithDefault(\"\")")
	}
	return func(t *Type) {
		t.fields = append(t.fields, Field{Name: name, Default: value, HasDefault: true})
	}
}

// WithInvariant attaches an invariant to the type. Every instance must
// satisfy all attached invariants; see Invariant for the evaluation contract.
// Panics on nil.
func WithInvariant(inv Invariant) TypeOption {
	if inv == nil {
		panic("vo: WithInvariant(nil)")
	}
	return func(t *Type) {
		t.invariants = append(t.invariants, inv)
	}
}

// WithBase makes the declared type extend parent: the parent's fields (with
// their defaults) come first in declaration order and the parent's invariants
// are inherited ahead of the type's own. Panics on nil.
func WithBase(parent *Type) TypeOption {
	if parent == nil {
		panic("vo: WithBase(nil)")
	}
	return func(t *Type) {
		t.fields = append(t.fields, parent.fields...)
		t.invariants = append(t.invariants, parent.invariants...)
	}
}

// NewType declares a value-object type from the given options.
//
// Fails with:
//   - ErrEmptyTypeName when name is empty.
//   - ErrNoFields when no field was declared — a value object with zero
//     fields has no identity.
//   - ErrDuplicateField when a field name repeats (directly or via WithBase).
//
// Complexity: O(F) over declared fields.
func NewType(name string, opts ...TypeOption) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("NewType: %w", ErrEmptyTypeName)
	}

	t := &Type{name: name}
	for _, opt := range opts {
		opt(t)
	}

	if len(t.fields) == 0 {
		return nil, fmt.Errorf("NewType(%s): %w", name, ErrNoFields)
	}

	t.index = make(map[string]int, len(t.fields))
	for i, f := range t.fields {
		if _, dup := t.index[f.Name]; dup {
			return nil, fmt.Errorf("NewType(%s): field %q: %w", name, f.Name, ErrDuplicateField)
		}
		t.index[f.Name] = i
	}

	return t, nil
}

// MustType is the panicking variant of NewType, for declarations whose
// validity is known at authoring time (package-level type variables, tests).
func MustType(name string, opts ...TypeOption) *Type {
	t, err := NewType(name, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Name returns the declared type name. Complexity: O(1).
func (t *Type) Name() string { return t.name }

// NumFields returns the number of declared fields. Complexity: O(1).
func (t *Type) NumFields() int { return len(t.fields) }

// Fields returns a fresh copy of the declared fields in declaration order.
// Complexity: O(F).
func (t *Type) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)

	return out
}

// Invariants returns a fresh copy of the attached invariants, inherited
// first. The evaluation order across invariants is not a contract; only the
// conjunction is. Complexity: O(V).
func (t *Type) Invariants() []Invariant {
	out := make([]Invariant, len(t.invariants))
	copy(out, t.invariants)

	return out
}
