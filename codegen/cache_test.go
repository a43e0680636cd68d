package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCache(t *testing.T) {
	c, err := newRenderCache(1)
	require.NoError(t, err)
	c.add("a", []byte("A"))
	c.add("b", []byte("B"))

	_, ok := c.get("a")
	require.False(t, ok, "a was evicted")
	got, ok := c.get("b")
	require.True(t, ok)
	require.Equal(t, "B", string(got))
	require.Equal(t, 1, c.len())

	var disabled *renderCache
	disabled.add("a", []byte("A"))
	_, ok = disabled.get("a")
	require.False(t, ok)
	require.Zero(t, disabled.len())
}

func TestWithCacheSize(t *testing.T) {
	g, err := New(WithCacheSize(0))
	require.NoError(t, err)
	require.Nil(t, g.cache)

	g, err = New(WithCacheSize(-1))
	require.NoError(t, err)
	require.Nil(t, g.cache)

	g, err = New(WithCacheSize(8))
	require.NoError(t, err)
	require.NotNil(t, g.cache)

	g, err = New()
	require.NoError(t, err)
	require.NotNil(t, g.cache)
}
