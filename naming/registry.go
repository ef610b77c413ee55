package naming

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrAlreadyRegistered = errors.New("identifier already registered")
	ErrEmptyIdentifier   = errors.New("empty identifier")
)

type entry struct {
	name string
	ref  any
}

// Registry is owned by a cache instance and maps identifiers to live handles,
// so collaborators are passed a reference instead of resolving global names.
type Registry struct {
	mu      sync.RWMutex
	buckets map[uint64][]entry
}

func NewRegistry() *Registry {
	return &Registry{buckets: make(map[uint64][]entry)}
}

func (r *Registry) Register(id Identifier, ref any) error {
	if id.IsZero() {
		return ErrEmptyIdentifier
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := r.buckets[id.key]
	for _, e := range bucket {
		if e.name == id.name {
			return fmt.Errorf("register %q: %w", id.name, ErrAlreadyRegistered)
		}
	}
	r.buckets[id.key] = append(bucket, entry{name: id.name, ref: ref})
	return nil
}

func (r *Registry) Lookup(id Identifier) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.buckets[id.key] {
		// xxh3 collision guard
		if e.name == id.name {
			return e.ref, true
		}
	}
	return nil, false
}

func (r *Registry) Unregister(id Identifier) (ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := r.buckets[id.key]
	for i, e := range bucket {
		if e.name == id.name {
			bucket = append(bucket[:i], bucket[i+1:]...)
			ok = true
			break
		}
	}
	if len(bucket) == 0 {
		delete(r.buckets, id.key)
	} else {
		r.buckets[id.key] = bucket
	}
	return ok
}

func (r *Registry) Len() (n int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bucket := range r.buckets {
		n += len(bucket)
	}
	return n
}
