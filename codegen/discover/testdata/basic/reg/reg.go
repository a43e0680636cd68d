package reg

// Registry is a minimal child registry.
type Registry struct {
	values map[string]any
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r *Registry) Remove(name string) {
	delete(r.values, name)
}

func (r *Registry) Add(name string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[name] = v
}

// Module satisfies the default contract.
type Module struct {
	reg Registry
}

func (m *Module) Submodules() *Registry { return &m.reg }

func (m *Module) RegisterModule(name string, v any) { m.reg.Add(name, v) }
