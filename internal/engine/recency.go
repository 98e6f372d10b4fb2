package engine

import "sync"

// DefaultRecencyCapacity bounds the recency cache.
const DefaultRecencyCapacity = 30

// RecencyCache is a bounded FIFO of recently selected destination keys.
// It lives for the lifetime of one process instance, is never persisted, and
// is only a soft scoring signal: it must never enforce safety or hard
// constraints, and separate instances are not expected to agree.
type RecencyCache struct {
	mu    sync.Mutex
	cap   int
	order []string
	set   map[string]bool
}

// NewRecencyCache builds a cache holding at most capacity keys; a
// non-positive capacity falls back to the default.
func NewRecencyCache(capacity int) *RecencyCache {
	if capacity <= 0 {
		capacity = DefaultRecencyCapacity
	}
	return &RecencyCache{
		cap: capacity,
		set: make(map[string]bool, capacity),
	}
}

// Contains reports whether the key was recently selected.
func (rc *RecencyCache) Contains(key string) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.set[key]
}

// Add appends keys, evicting oldest-first beyond capacity. Re-adding an
// existing key is a no-op (it keeps its original position).
func (rc *RecencyCache) Add(keys ...string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, k := range keys {
		if rc.set[k] {
			continue
		}
		rc.order = append(rc.order, k)
		rc.set[k] = true
		for len(rc.order) > rc.cap {
			oldest := rc.order[0]
			rc.order = rc.order[1:]
			delete(rc.set, oldest)
		}
	}
}

// Len returns the number of cached keys.
func (rc *RecencyCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.order)
}
