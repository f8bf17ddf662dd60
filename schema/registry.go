// Package schema keeps parsed Schemer modules by name and resolves
// references across them.
package schema

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/signadot/schemer/ir"
)

var (
	ErrDuplicate = errors.New("duplicate module")
	ErrNoModule  = errors.New("no such module")
)

// Registry is a set of modules keyed by name, safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*ir.Module
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*ir.Module)}
}

// Register adds m. It is an error to register two modules with the
// same name.
func (r *Registry) Register(m *ir.Module) error {
	if m == nil {
		return fmt.Errorf("cannot register nil module")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[m.Name()]; exists {
		return fmt.Errorf("%w %q", ErrDuplicate, m.Name())
	}
	r.modules[m.Name()] = m
	return nil
}

func (r *Registry) Lookup(name string) (*ir.Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

// All iterates over the registered modules in name order.
func (r *Registry) All() iter.Seq2[string, *ir.Module] {
	r.mu.RLock()
	names := make([]string, 0, len(r.modules))
	for k := range r.modules {
		names = append(names, k)
	}
	mods := make(map[string]*ir.Module, len(r.modules))
	for k, v := range r.modules {
		mods[k] = v
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return func(yield func(string, *ir.Module) bool) {
		for _, n := range names {
			if !yield(n, mods[n]) {
				return
			}
		}
	}
}

// Get resolves a reference whose first step names a module, as in
// "person.address.city". A bare module name is an error, since a
// module is not an element.
func (r *Registry) Get(ref string) (*ir.Element, error) {
	name, path, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	m, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoModule, name)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: reference %q names a module", ir.ErrBadPath, ref)
	}
	return m.Lookup(path)
}
