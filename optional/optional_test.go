package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(42)
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())

	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	none := None[int]()
	assert.True(t, none.Empty())

	val, ok = none.Get()
	assert.False(t, ok)
	assert.Zero(t, val)
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var v Value[string]

	assert.True(t, v.Empty())
	assert.Equal(t, "None", v.String())
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("x"), Of("x", true))
	assert.Equal(t, None[string](), Of("x", false))
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Some(7).GetOrPanic())
	assert.Panics(t, func() { None[int]().GetOrPanic() })
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(2))
	assert.Equal(t, 2, None[int]().GetOrElse(2))
}

func TestAll(t *testing.T) {
	t.Parallel()

	var got []int

	for v := range Some(3).All() {
		got = append(got, v)
	}

	for v := range None[int]().All() {
		got = append(got, v)
	}

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0])
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(20)", Some(20).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("5"), Map(Some(5), strconv.Itoa))
	assert.True(t, Map(None[int](), strconv.Itoa).Empty())
}
