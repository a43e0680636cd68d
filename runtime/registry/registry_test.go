package registry_test

import (
	"maps"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/autoreg/runtime/registry"
)

type node struct {
	registry.Module
	name string
}

func TestSubmodulesAddRemove(t *testing.T) {
	var s registry.Submodules
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Add("a", 1))
	require.NoError(t, s.Add("b", 2))
	assert.True(t, s.Contains("a"))
	assert.Equal(t, []string{"a", "b"}, s.Names())

	err := s.Add("a", 3)
	require.ErrorIs(t, err, registry.ErrDuplicate)
	require.ErrorIs(t, s.Add("", 3), registry.ErrEmptyName)

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.Names())

	require.NoError(t, s.Add("a", 4))
	assert.Equal(t, []string{"b", "a"}, s.Names())
	assert.Equal(t, map[string]any{"a": 4, "b": 2}, maps.Collect(s.All()))
}

func TestSubmodulesAllStops(t *testing.T) {
	var s registry.Submodules
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, s.Add(n, n))
	}
	var seen []string
	for name := range s.All() {
		seen = append(seen, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestSubmodulesConcurrent(t *testing.T) {
	var s registry.Submodules
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i%26))
			if s.Contains(name) {
				s.Remove(name)
			}
			_ = s.Add(name, i)
			_ = s.Names()
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 26)
}

func TestModuleRegisterModule(t *testing.T) {
	var m registry.Module
	m.RegisterModule("head", 1)
	assert.True(t, m.Submodules().Contains("head"))

	assert.Panics(t, func() { m.RegisterModule("head", 2) })
	assert.Panics(t, func() { m.RegisterModule("", 2) })
}

func TestWalk(t *testing.T) {
	root := &node{name: "root"}
	enc := &node{name: "encoder"}
	att := &node{name: "attention"}
	enc.RegisterModule("attention", att)
	root.RegisterModule("encoder", enc)
	root.RegisterModule("bias", 0.5)
	root.RegisterModule("empty", (*node)(nil))
	// cycles are traversed once
	att.RegisterModule("back", root)

	var paths []string
	for path := range registry.Walk(root) {
		paths = append(paths, path)
	}
	assert.Equal(t, []string{
		"encoder",
		"encoder.attention",
		"encoder.attention.back",
		"bias",
		"empty",
	}, paths)

	var partial []string
	for path := range registry.Walk(root) {
		partial = append(partial, path)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"encoder", "encoder.attention"}, partial)
}
