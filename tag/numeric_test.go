package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerWrap(t *testing.T) {
	t.Run("byte wraps modulo 256", func(t *testing.T) {
		require.Equal(t, int8(-126), NewByte(130).Value)
		require.Equal(t, int8(-126), NewByte(130+5*256).Value)
	})

	t.Run("short wraps modulo 65536", func(t *testing.T) {
		require.Equal(t, int16(-32768), NewShort(32768).Value)
	})

	t.Run("int wraps modulo 2^32", func(t *testing.T) {
		require.Equal(t, int32(-1<<31), NewInt(int64(1)<<31).Value)
	})

	t.Run("long wraps modulo 2^64", func(t *testing.T) {
		require.Equal(t, int64(-1<<63), NewLong(uint64(1)<<63).Value)
	})
}

func TestFloatRoundTrip(t *testing.T) {
	f := NewFloat(12.34)
	require.Equal(t, float32(12.34), f.Value)
}

func TestNumericEquality(t *testing.T) {
	require.True(t, NewByte(5).Equal(NewByte(5)))
	require.False(t, NewByte(5).Equal(NewByte(6)))
	require.False(t, NewByte(5).Equal(NewShort(5)))

	// Float/Double equality is exact bit comparison, not epsilon.
	require.True(t, NewDouble(0.1).Equal(NewDouble(0.1)))
	require.False(t, NewDouble(0.1).Equal(NewDouble(0.2)))
}

func TestNumericCopyIsEqual(t *testing.T) {
	b := NewByte(7)
	cp := b.Copy()
	require.True(t, b.Equal(cp))
}
