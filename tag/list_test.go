package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListHomogeneity(t *testing.T) {
	t.Run("constructor rejects mismatched kind", func(t *testing.T) {
		_, err := NewList(KindInt, NewInt(1), NewByte(2))
		require.Error(t, err)
	})

	t.Run("Set rejects mismatched kind", func(t *testing.T) {
		l, err := NewList(KindInt, NewInt(1))
		require.NoError(t, err)
		require.Error(t, l.Set(0, NewByte(2)))
	})

	t.Run("Append rejects mismatched kind", func(t *testing.T) {
		l, err := NewList(KindInt, NewInt(1))
		require.NoError(t, err)
		require.Error(t, l.Append(NewString0(t, "x")))
	})

	t.Run("empty list accepts a declared kind and fixes on first real append", func(t *testing.T) {
		l, err := NewList(KindEnd)
		require.NoError(t, err)
		require.Equal(t, KindEnd, l.ElemKind())
		require.NoError(t, l.Append(NewInt(1)))
		require.Equal(t, KindInt, l.ElemKind())
		require.Error(t, l.Append(NewByte(1)))
	})
}

func TestListEquality(t *testing.T) {
	a, _ := NewList(KindInt, NewInt(1), NewInt(2))
	b, _ := NewList(KindInt, NewInt(1), NewInt(2))
	c, _ := NewList(KindInt, NewInt(1), NewInt(3))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	empty1, _ := NewList(KindInt)
	empty2, _ := NewList(KindByte)
	require.False(t, empty1.Equal(empty2), "equal element kind is required even when both are empty")
}

func TestListCopyIsDeep(t *testing.T) {
	l, _ := NewList(KindInt, NewInt(1))
	cp := l.Copy().(*List)
	require.NoError(t, cp.Set(0, NewInt(2)))
	require.Equal(t, int32(1), l.At(0).(Int).Value)
}

// NewString0 is a tiny test helper: NewString validates UTF-8 and
// returns an error, which would otherwise clutter every call site above.
func NewString0(t *testing.T, v string) Tag {
	t.Helper()
	s, err := NewString(v)
	require.NoError(t, err)
	return s
}
