package mhash

import (
	"fmt"
	"slices"
	"sync"
)

// InvalidEngineError is returned when a [Registry]
// is asked for an engine name that was never registered.
type InvalidEngineError struct {
	Name string
}

func (e InvalidEngineError) Error() string {
	return "invalid engine: " + e.Name
}

// Registry maps engine names to [Hasher] strategies.
// Adding an engine is a call to [*Registry.Register].
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	hashers map[string]Hasher
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hashers: make(map[string]Hasher),
	}
}

// Register adds h under the given name.
// Registering the same name twice is a programming error and panics.
func (r *Registry) Register(name string, h Hasher) {
	if name == "" {
		panic(fmt.Errorf("BUG: engine name must not be empty"))
	}
	if h.Size() <= 0 {
		panic(fmt.Errorf(
			"BUG: engine %q must have a positive digest size (got %d)",
			name, h.Size(),
		))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hashers[name]; ok {
		panic(fmt.Errorf("BUG: engine %q already registered", name))
	}
	r.hashers[name] = h
}

// Hasher returns the Hasher registered under name,
// or an [InvalidEngineError].
func (r *Registry) Hasher(name string) (Hasher, error) {
	r.mu.RLock()
	h, ok := r.hashers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, InvalidEngineError{Name: name}
	}
	return h, nil
}

// Resolve returns the hash function for the named engine.
// See [NewFunc] for the meaning of double.
func (r *Registry) Resolve(name string, double bool) (Func, error) {
	h, err := r.Hasher(name)
	if err != nil {
		return nil, err
	}
	return NewFunc(h, double), nil
}

// Size returns the digest size in bytes of the named engine.
func (r *Registry) Size(name string) (int, error) {
	h, err := r.Hasher(name)
	if err != nil {
		return 0, err
	}
	return h.Size(), nil
}

// IsCorrect reports whether h is a well-formed digest for the named engine.
// Unknown engines never accept anything.
func (r *Registry) IsCorrect(h []byte, name string) bool {
	hr, err := r.Hasher(name)
	if err != nil {
		return false
	}
	return IsCorrect(h, hr)
}

// Names returns the sorted names of every registered engine.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.hashers))
	for n := range r.hashers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
