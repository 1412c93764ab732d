package conversation

import "sync"

// Registry is the in-memory conversation map, keyed by execution id. Callers
// must hold the per-execution lock while reading or writing a conversation:
// two continues on the same execution serialize, different executions run in
// parallel.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	mu  sync.Mutex
	mgr *Manager
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*registryEntry{}}
}

// Lock acquires the per-execution lock and returns the unlock function.
func (r *Registry) Lock(executionID string) func() {
	e := r.entry(executionID)
	e.mu.Lock()
	return e.mu.Unlock
}

// Get returns the cached conversation for an execution, if any.
func (r *Registry) Get(executionID string) (*Manager, bool) {
	e := r.entry(executionID)
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.mgr == nil {
		return nil, false
	}
	return e.mgr, true
}

// Put caches a conversation for an execution.
func (r *Registry) Put(executionID string, mgr *Manager) {
	e := r.entry(executionID)
	r.mu.Lock()
	e.mgr = mgr
	r.mu.Unlock()
}

// Evict drops the cached conversation. The per-execution lock survives
// eviction so an in-flight holder can still release it.
func (r *Registry) Evict(executionID string) {
	r.mu.Lock()
	if e, ok := r.entries[executionID]; ok {
		e.mgr = nil
	}
	r.mu.Unlock()
}

// Len reports how many conversations are currently cached.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.mgr != nil {
			n++
		}
	}
	return n
}

func (r *Registry) entry(executionID string) *registryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[executionID]
	if !ok {
		e = &registryEntry{}
		r.entries[executionID] = e
	}
	return e
}
