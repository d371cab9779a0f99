// Package easyblock provides the explicit descriptor registry easyblocks
// are registered into at startup, replacing any runtime type introspection.
package easyblock

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
)

// GenericNamespace is the namespace prefix that marks framework-provided base
// easyblocks. Only descriptors declared under it show up in the generic
// overview.
const GenericNamespace = "generic"

// Descriptor captures everything the documentation generator needs to know
// about one easyblock: its name, the namespace it is declared in, its direct
// base classes, a required description, and the extra easyconfig parameters
// it introduces on top of the framework defaults.
type Descriptor struct {
	Name        string
	Namespace   string
	Bases       []string
	Description string
	Extra       easyconfig.Table
}

// ExtraOptions returns a copy of the easyblock-specific parameter table so
// callers can merge it into a working table without mutating the descriptor.
func (d Descriptor) ExtraOptions() easyconfig.Table {
	if len(d.Extra) == 0 {
		return nil
	}
	return d.Extra.Clone()
}

// Registry stores easyblock descriptors by name. Each easyblock registers
// exactly once, at startup, so documentation runs never depend on runtime
// type introspection.
type Registry struct {
	mu     sync.RWMutex
	blocks map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blocks: make(map[string]Descriptor),
	}
}

// Register adds a descriptor. Descriptors must carry a name and a non-empty
// description; duplicate names return an error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("easyblock: descriptor name is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("easyblock: descriptor %q requires a description", d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blocks[d.Name]; exists {
		return fmt.Errorf("easyblock: descriptor %q already registered", d.Name)
	}

	r.blocks[d.Name] = d
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Resolve looks a descriptor up by name. A miss is not an error; it means
// "no such easyblock" and callers treat it as "no extra parameters".
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.blocks[name]
	return d, ok
}

// Generic returns every descriptor declared under the generic namespace.
// Order is implementation-defined; callers must not rely on it.
func (r *Registry) Generic() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Descriptor
	for _, d := range r.blocks {
		if d.Namespace == GenericNamespace || strings.HasPrefix(d.Namespace, GenericNamespace+"/") {
			out = append(out, d)
		}
	}
	return out
}

// Names returns a sorted list of registered easyblock names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.blocks))
	for name := range r.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
