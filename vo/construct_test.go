package vo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valo/freeze"
	"github.com/katalvlaran/valo/vo"
)

// TestNew_ReturnsReadyInstance verifies the happy path ends in StateReady
// with the resolved fields in place.
func TestNew_ReturnsReadyInstance(t *testing.T) {
	money := newMoneyType(t)

	m, err := money.New(vo.Args{10}, nil)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, vo.StateReady, m.State())
	assert.Equal(t, "Money", m.TypeName())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 10, m.MustGet(FieldAmount))
	assert.Equal(t, CurrencyUSD, m.MustGet(FieldCurrency))
}

// TestNew_NilType verifies construction through a nil *Type reports
// ErrNilType instead of panicking.
func TestNew_NilType(t *testing.T) {
	var typ *vo.Type
	_, err := typ.New(vo.Args{1}, nil)
	assert.ErrorIs(t, err, vo.ErrNilType)
}

// TestNew_FreezesContainers verifies the Immutability Guard replaces bound
// map values with freeze.Map and bound slice values with freeze.Tuple.
func TestNew_FreezesContainers(t *testing.T) {
	typ, err := vo.NewType("Order",
		vo.WithField("id"),
		vo.WithField("tags"),
		vo.WithField("attrs"),
	)
	require.NoError(t, err)

	in, err := typ.New(vo.Args{7, []string{"b", "a"}, map[string]int{"x": 1}}, nil)
	require.NoError(t, err)

	tags, ok := in.MustGet("tags").(*freeze.Tuple)
	require.True(t, ok, "slice value must freeze to *freeze.Tuple")
	assert.Equal(t, []any{"b", "a"}, tags.Slice(), "element order is preserved")

	attrs, ok := in.MustGet("attrs").(*freeze.Map)
	require.True(t, ok, "map value must freeze to *freeze.Map")
	got, found := attrs.Get("x")
	assert.True(t, found)
	assert.Equal(t, 1, got)

	assert.ErrorIs(t, attrs.Set("x", 2), vo.ErrImmutable)
}

// TestNew_FreezeDecouplesCaller verifies mutating the caller's container
// after construction is invisible to the instance.
func TestNew_FreezeDecouplesCaller(t *testing.T) {
	typ, err := vo.NewType("Bag", vo.WithField("items"))
	require.NoError(t, err)

	src := []int{1, 2}
	in, err := typ.New(vo.Args{src}, nil)
	require.NoError(t, err)

	src[0] = 99

	items := in.MustGet("items").(*freeze.Tuple)
	first, _ := items.At(0)
	assert.Equal(t, 1, first)
}

// TestInstance_SetAlwaysRejected verifies the unconditional mutation block:
// declared or not, any attribute assignment reports ErrImmutable with no
// observable change.
func TestInstance_SetAlwaysRejected(t *testing.T) {
	money := newMoneyType(t)
	m := money.MustNew(vo.Args{10}, nil)

	assert.ErrorIs(t, m.Set(FieldAmount, 20), vo.ErrImmutable)
	assert.ErrorIs(t, m.Set("undeclared", 1), vo.ErrImmutable)
	assert.Equal(t, 10, m.MustGet(FieldAmount), "value must be unchanged after the attempt")
}

// TestInstance_SnapshotDecoupled verifies Snapshot hands out a copy.
func TestInstance_SnapshotDecoupled(t *testing.T) {
	money := newMoneyType(t)
	m := money.MustNew(vo.Args{10}, nil)

	snap := m.Snapshot()
	snap[FieldAmount] = 999

	assert.Equal(t, 10, m.MustGet(FieldAmount))
}

// TestInstance_GetUnknownField verifies lookups of undeclared names.
func TestInstance_GetUnknownField(t *testing.T) {
	money := newMoneyType(t)
	m := money.MustNew(vo.Args{10}, nil)

	_, ok := m.Get("undeclared")
	assert.False(t, ok)
	assert.Panics(t, func() { m.MustGet("undeclared") })
}

// TestMustNew verifies the panicking constructor variant.
func TestMustNew(t *testing.T) {
	money := newMoneyType(t)

	assert.NotPanics(t, func() { money.MustNew(vo.Args{10}, nil) })
	assert.Panics(t, func() { money.MustNew(vo.Args{-5}, nil) })
}

// TestNew_NoPartialInstanceOnFailure verifies every failing stage returns a
// nil instance: binder, guard-independent validation, invariant engine.
func TestNew_NoPartialInstanceOnFailure(t *testing.T) {
	money := newMoneyType(t)

	tests := []struct {
		name string
		pos  vo.Args
		kw   vo.KW
		want error
	}{
		{"binder failure", vo.Args{nil}, nil, vo.ErrMissingValue},
		{"unknown keyword", vo.Args{10}, vo.KW{"nope": 1}, vo.ErrUnknownField},
		{"invariant failure", vo.Args{-5}, nil, vo.ErrInvariantViolated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := money.New(tc.pos, tc.kw)
			assert.Nil(t, in, "no partially built instance may escape")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
