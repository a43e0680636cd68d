// Package registry provides the child registry autoreg-generated setters
// register values into.
//
// Types hosting marked fields embed Module, which satisfies the default
// registry contract:
//
//	type Network struct {
//		registry.Module
//
//		head *Dense `autoreg:""`
//	}
//
// Generated setters remove any previous entry before registering the new
// value, so RegisterModule never sees a duplicate name for a marked field.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync"
)

type (
	// Submodules is an ordered, string-keyed registry of child values.
	// The zero value is an empty registry ready to use. Submodules is safe
	// for concurrent use.
	Submodules struct {
		mu     sync.RWMutex
		names  []string
		values map[string]any
	}

	// Module is embedded by types that own a child registry. It provides
	// the Submodules and RegisterModule members generated setters call.
	Module struct {
		submodules Submodules
	}

	// Parent is implemented by values owning a child registry, e.g. any
	// type embedding Module.
	Parent interface {
		Submodules() *Submodules
	}
)

var (
	// ErrEmptyName is returned when registering a value without a name.
	ErrEmptyName = errors.New("registry: empty name")
	// ErrDuplicate is returned when registering a name already present.
	ErrDuplicate = errors.New("registry: duplicate name")
)

// Contains reports whether a value is registered under name.
func (s *Submodules) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[name]
	return ok
}

// Add registers v under name. It returns ErrDuplicate if name is already
// registered; callers replacing a value remove it first.
func (s *Submodules) Add(name string, v any) error {
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = v
	s.names = append(s.names, name)
	return nil
}

// Remove deletes the value registered under name and reports whether it was
// present.
func (s *Submodules) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == name })
	return true
}

// Get returns the value registered under name.
func (s *Submodules) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of registered values.
func (s *Submodules) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// Names returns the registered names in registration order.
func (s *Submodules) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.names)
}

// All iterates over the registered values in registration order. The
// iteration works on a snapshot taken when it starts.
func (s *Submodules) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		s.mu.RLock()
		names := slices.Clone(s.names)
		values := make([]any, len(names))
		for i, n := range names {
			values[i] = s.values[n]
		}
		s.mu.RUnlock()
		for i, n := range names {
			if !yield(n, values[i]) {
				return
			}
		}
	}
}

// Submodules returns the child registry of m.
func (m *Module) Submodules() *Submodules {
	return &m.submodules
}

// RegisterModule registers v under name. It panics if name is empty or
// already registered.
func (m *Module) RegisterModule(name string, v any) {
	if err := m.submodules.Add(name, v); err != nil {
		panic(err)
	}
}

// Walk iterates depth-first over the values reachable from root through
// child registries, in registration order. Keys are the dot-separated names
// leading to each value, e.g. "encoder.attention". Registries reached more
// than once are only traversed the first time.
func Walk(root Parent) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		seen := map[*Submodules]bool{}
		var walk func(prefix string, p Parent) bool
		walk = func(prefix string, p Parent) bool {
			subs := p.Submodules()
			if subs == nil || seen[subs] {
				return true
			}
			seen[subs] = true
			for name, v := range subs.All() {
				path := prefix + name
				if !yield(path, v) {
					return false
				}
				if child, ok := v.(Parent); ok && !isNil(child) {
					if !walk(path+".", child) {
						return false
					}
				}
			}
			return true
		}
		walk("", root)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
