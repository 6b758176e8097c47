package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompoundInsertionOrder(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Set("b", NewInt(1)))
	require.NoError(t, c.Set("a", NewInt(2)))
	require.NoError(t, c.Set("b", NewInt(3))) // re-set does not move "b"

	require.Equal(t, []string{"b", "a"}, c.Keys())

	v, ok := c.Get("b")
	require.True(t, ok)
	require.Equal(t, int32(3), v.(Int).Value)
}

func TestCompoundDelete(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Set("a", NewInt(1)))
	require.NoError(t, c.Set("b", NewInt(2)))
	require.True(t, c.Delete("a"))
	require.False(t, c.Delete("a"))
	require.Equal(t, []string{"b"}, c.Keys())
}

func TestCompoundEqualityIgnoresOrder(t *testing.T) {
	c1 := NewCompound()
	_ = c1.Set("a", NewInt(1))
	_ = c1.Set("b", NewInt(2))

	c2 := NewCompound()
	_ = c2.Set("b", NewInt(2))
	_ = c2.Set("a", NewInt(1))

	require.True(t, c1.Equal(c2))
}

func TestCompoundRejectsNilValue(t *testing.T) {
	c := NewCompound()
	require.Error(t, c.Set("a", nil))
}

func TestCompoundCopyIsDeep(t *testing.T) {
	c := NewCompound()
	_ = c.Set("a", NewInt(1))
	cp := c.Copy().(*Compound)
	_ = cp.Set("a", NewInt(2))

	v, _ := c.Get("a")
	require.Equal(t, int32(1), v.(Int).Value)
}
