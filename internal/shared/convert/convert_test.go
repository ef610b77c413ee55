package convert

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInt64 accepts integer kinds and integral json numbers only.
func TestInt64(t *testing.T) {
	for _, v := range []any{int(5), int8(5), int16(5), int32(5), int64(5), uint(5), uint8(5), uint16(5), uint32(5), uint64(5), json.Number("5")} {
		n, ok := Int64(v)
		require.True(t, ok, "%T", v)
		require.Equal(t, int64(5), n)
	}

	for _, v := range []any{nil, 5.0, "5", json.Number("5.5"), uint64(math.MaxUint64), true} {
		_, ok := Int64(v)
		require.False(t, ok, "%#v", v)
	}
}

// TestSlice copies slices and arrays without aliasing the input.
func TestSlice(t *testing.T) {
	in := []any{1, 2}
	out, ok := Slice(in)
	require.True(t, ok)
	out[0] = 9
	require.Equal(t, []any{1, 2}, in)

	out, ok = Slice([]string(nil))
	require.True(t, ok)
	require.NotNil(t, out)
	require.Empty(t, out)

	_, ok = Slice("ab")
	require.False(t, ok)
	_, ok = Slice(nil)
	require.False(t, ok)
}

// TestStringMap copies maps keyed by strings only.
func TestStringMap(t *testing.T) {
	type name string

	m, ok := StringMap(map[name]int{"a": 1})
	require.True(t, ok)
	require.Equal(t, map[string]any{"a": 1}, m)

	_, ok = StringMap(map[int]int{1: 1})
	require.False(t, ok)
	_, ok = StringMap(nil)
	require.False(t, ok)
}
