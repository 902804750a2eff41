package voexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valo/vo"
	"github.com/katalvlaran/valo/voexpr"
)

// newExprMoney declares Money(amount, currency="USD") guarded by expression
// invariants instead of Go predicates.
func newExprMoney(t *testing.T, invariants ...string) *vo.Type {
	t.Helper()

	opts := []vo.TypeOption{
		vo.WithField("amount"),
		vo.WithDefault("currency", "USD"),
	}
	for _, src := range invariants {
		inv, err := voexpr.Invariant(src)
		require.NoError(t, err)
		opts = append(opts, vo.WithInvariant(inv))
	}

	typ, err := vo.NewType("Money", opts...)
	require.NoError(t, err)

	return typ
}

// TestInvariant_CompileErrors verifies the compile-time sentinel contract.
func TestInvariant_CompileErrors(t *testing.T) {
	_, err := voexpr.Invariant("")
	assert.ErrorIs(t, err, voexpr.ErrEmptySource)

	_, err = voexpr.Invariant("   ")
	assert.ErrorIs(t, err, voexpr.ErrEmptySource)

	_, err = voexpr.Invariant("amount >=")
	assert.ErrorIs(t, err, voexpr.ErrCompile)
}

// TestInvariant_GuardsConstruction verifies a boolean expression accepts and
// rejects instances like a native predicate.
func TestInvariant_GuardsConstruction(t *testing.T) {
	money := newExprMoney(t, "amount >= 0")

	m, err := money.New(vo.Args{10}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Money(amount=10, currency=USD)", m.String())

	in, err := money.New(vo.Args{-5}, nil)
	assert.Nil(t, in)
	require.ErrorIs(t, err, vo.ErrInvariantViolated)

	var ve *vo.ViolationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount >= 0", ve.Invariant, "expression source identifies the invariant")
}

// TestInvariant_MultipleExpressions verifies the conjunction across several
// expression invariants.
func TestInvariant_MultipleExpressions(t *testing.T) {
	money := newExprMoney(t, "amount >= 0", `currency in ["USD", "EUR"]`)

	_, err := money.New(vo.Args{10}, vo.KW{"currency": "EUR"})
	assert.NoError(t, err)

	_, err = money.New(vo.Args{10}, vo.KW{"currency": "XXX"})
	assert.ErrorIs(t, err, vo.ErrInvariantViolated)
}

// TestInvariant_NonBooleanResult verifies a non-boolean expression is
// classified by the engine as ErrInvariantReturn.
func TestInvariant_NonBooleanResult(t *testing.T) {
	money := newExprMoney(t, "amount + 1")

	in, err := money.New(vo.Args{10}, nil)
	assert.Nil(t, in)
	assert.ErrorIs(t, err, vo.ErrInvariantReturn)
}

// TestInvariant_RuntimeErrorIsNonBoolean verifies a failing evaluation (an
// unknown identifier under the untyped environment) aborts construction as
// ErrInvariantReturn rather than passing silently.
func TestInvariant_RuntimeErrorIsNonBoolean(t *testing.T) {
	money := newExprMoney(t, "missing_field > 0")

	in, err := money.New(vo.Args{10}, nil)
	assert.Nil(t, in)
	assert.ErrorIs(t, err, vo.ErrInvariantReturn)
}

// TestInvariant_FrozenContainersThawedForEnv verifies expressions see frozen
// containers as plain values: len over tuples, membership over maps.
func TestInvariant_FrozenContainersThawedForEnv(t *testing.T) {
	inv, err := voexpr.Invariant(`len(tags) > 0 && "sku" in attrs`)
	require.NoError(t, err)

	order, err := vo.NewType("Order",
		vo.WithField("tags"),
		vo.WithField("attrs"),
		vo.WithInvariant(inv),
	)
	require.NoError(t, err)

	_, err = order.New(vo.Args{[]string{"a"}, map[string]any{"sku": "X1"}}, nil)
	assert.NoError(t, err)

	_, err = order.New(vo.Args{[]string{}, map[string]any{"sku": "X1"}}, nil)
	assert.ErrorIs(t, err, vo.ErrInvariantViolated)
}

// TestMustInvariant verifies the panicking helper.
func TestMustInvariant(t *testing.T) {
	assert.NotPanics(t, func() { voexpr.MustInvariant("x > 0") })
	assert.Panics(t, func() { voexpr.MustInvariant("") })
}
