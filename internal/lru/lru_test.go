package lru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEviction(t *testing.T) {
	c := New[string](2)
	c.Put("a", "1")
	c.Put("b", "2")
	_, ok := c.Get("a") // b is now the oldest
	require.True(t, ok)
	c.Put("c", "3")

	_, ok = c.Get("b")
	require.False(t, ok)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", v)
	require.Equal(t, 2, c.Len())
}

func TestReplace(t *testing.T) {
	c := New[int](2)
	c.Put("a", 1)
	c.Put("a", 2)
	v, _ := c.Get("a")
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())

	c.Del("a")
	_, ok := c.Get("a")
	require.False(t, ok)
	c.Del("missing")
}

func TestDisabled(t *testing.T) {
	c := New[int](0)
	c.Put("a", 1)
	_, ok := c.Get("a")
	require.False(t, ok)
}
