package parcel

import (
	"sort"
	"sync"
)

// Backend defines the interface for concrete wire formats.
// Implementations include the built-in binary backend and the named
// backends under backends/.
type Backend interface {
	// Encode serializes v into bytes.
	Encode(v any) ([]byte, error)

	// Decode deserializes data and returns the decoded value.
	Decode(data []byte) (any, error)
}

// Registration describes a named backend: how to construct it, and the
// optional quirk pair applied around its calls. Wrap runs on values before
// Encode, Unwrap on values after Decode; a nil func means pass-through.
// Backends that can represent every value natively register neither.
type Registration struct {
	Name   string
	New    func() (Backend, error)
	Wrap   func(v any) any
	Unwrap func(v any) any
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Registration{}
)

// Register makes a backend available under its name. It is intended to be
// called from the init function of a backend package, so importing the
// package is what enables the backend. Register panics if the name is empty
// or already taken, or the factory is nil.
func Register(r Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if r.Name == "" {
		panic("parcel: Register with empty backend name")
	}
	if r.New == nil {
		panic("parcel: Register backend " + r.Name + " with nil factory")
	}
	if _, ok := registry[r.Name]; ok {
		panic("parcel: Register called twice for backend " + r.Name)
	}
	registry[r.Name] = r
}

// Backends returns the sorted names of all registered backends. The built-in
// default backend is always available and is not listed.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[name]
	return r, ok
}
