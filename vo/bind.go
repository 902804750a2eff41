// SPDX-License-Identifier: MIT
// Package: valo/vo
//
// bind.go — the Parameter Binder stage.
//
// Resolution precedence, lowest to highest:
//   1. declared default value,
//   2. positional value in declaration order,
//   3. keyword value by name.
// Keyword always overrides positional and default; positional always
// overrides default. The output preserves field declaration order.

package vo

import "fmt"

// Args is the positional part of a construction request: values in field
// declaration order.
type Args []any

// KW is the keyword part of a construction request: values by field name.
type KW map[string]any

// bind resolves a construction request into the ordered value slice for this
// type's fields.
//
// Fails with:
//   - ErrTooManyValues when len(pos) exceeds the declared field count.
//   - ErrMissingValue when a positional value is nil, or when a field ends
//     up with no value from any source.
//   - ErrUnknownField when a keyword name is not declared.
//
// Complexity: O(F + len(kw)).
func (t *Type) bind(pos Args, kw KW) ([]any, error) {
	if len(pos) > len(t.fields) {
		return nil, fmt.Errorf("%s: %d positional values for %d fields: %w",
			t.name, len(pos), len(t.fields), ErrTooManyValues)
	}

	values := make([]any, len(t.fields))
	set := make([]bool, len(t.fields))

	// Lowest precedence: declared defaults.
	for i, f := range t.fields {
		if f.HasDefault {
			values[i] = f.Default
			set[i] = true
		}
	}

	// Positional values override defaults. A nil positional value is the
	// null sentinel and is rejected outright.
	for i, v := range pos {
		if v == nil {
			return nil, fmt.Errorf("%s: positional value for field %q is nil: %w",
				t.name, t.fields[i].Name, ErrMissingValue)
		}
		values[i] = v
		set[i] = true
	}

	// Keyword values override everything.
	for name, v := range kw {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("%s: keyword %q: %w", t.name, name, ErrUnknownField)
		}
		values[i] = v
		set[i] = true
	}

	// Every declared field must have resolved to something.
	for i, ok := range set {
		if !ok {
			return nil, fmt.Errorf("%s: field %q has no value: %w",
				t.name, t.fields[i].Name, ErrMissingValue)
		}
	}

	return values, nil
}
