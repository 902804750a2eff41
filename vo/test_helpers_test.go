// SPDX-License-Identifier: MIT
// Package vo_test shared fixtures.
//
// Purpose:
//   - Centralize the small set of value-object types the suite constructs
//     repeatedly (Money is the canonical one) so tests stay declarative.

package vo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valo/vo"
)

// Shared field and value constants keep failure output compact and stable.
const (
	FieldAmount   = "amount"
	FieldCurrency = "currency"
	CurrencyUSD   = "USD"
	CurrencyEUR   = "EUR"
)

// newMoneyType declares the canonical Money fixture:
// Money(amount, currency="USD") with the non-negative amount invariant.
func newMoneyType(t *testing.T) *vo.Type {
	t.Helper()

	typ, err := vo.NewType("Money",
		vo.WithField(FieldAmount),
		vo.WithDefault(FieldCurrency, CurrencyUSD),
		vo.WithInvariant(vo.Predicate("non-negative amount", func(in *vo.Instance) bool {
			amount, ok := in.MustGet(FieldAmount).(int)

			return ok && amount >= 0
		})),
	)
	require.NoError(t, err)

	return typ
}

// newPointType declares a bare two-field fixture with no defaults and no
// invariants: Point(x, y).
func newPointType(t *testing.T) *vo.Type {
	t.Helper()

	typ, err := vo.NewType("Point", vo.WithField("x"), vo.WithField("y"))
	require.NoError(t, err)

	return typ
}
