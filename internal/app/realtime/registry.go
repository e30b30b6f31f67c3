package realtime

import (
	"sync"

	"github.com/samber/lo"
)

// Registry maps a user identity to its single live connection.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*Client)}
}

// Register maps identity to handle, last writer wins. The replaced handle is returned
// so the caller can close it.
func (r *Registry) Register(identity string, handle *Client) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.conns[identity]
	r.conns[identity] = handle

	if prev == handle {
		return nil
	}
	return prev
}

// Resolve returns the live handles of identities in input order. Offline identities
// are omitted and duplicates resolve once.
func (r *Registry) Resolve(identities []string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.FilterMap(lo.Uniq(identities), func(id string, _ int) (*Client, bool) {
		c, ok := r.conns[id]
		return c, ok
	})
}

// Unregister removes identity's mapping whatever handle it points at.
func (r *Registry) Unregister(identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, identity)
}

// Release removes identity's mapping only if it still points at handle.
// It reports whether the mapping was removed.
func (r *Registry) Release(identity string, handle *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.conns[identity]; !ok || cur != handle {
		return false
	}

	delete(r.conns, identity)
	return true
}

// Lookup returns identity's handle, if any.
func (r *Registry) Lookup(identity string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conns[identity]
	return c, ok
}

// All returns every live handle.
func (r *Registry) All() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Values(r.conns)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
