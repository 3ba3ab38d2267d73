// Package status holds in-memory session counters shown in the HUD
// Nothing here outlives the process
package status

import (
	"sync"
	"sync/atomic"
)

// Metric keys used by the game
const (
	MetricRounds       = "session.rounds"
	MetricClears       = "session.clears"
	MetricBestScore    = "session.best_score"
	MetricFastestTenth = "session.fastest_clear_tenths" // 0 until the first full clear
)

// Registry is a set of named integer counters
// Callers cache the pointer returned by Int; updates are lock-free after that
type Registry struct {
	mu   sync.RWMutex
	ints map[string]*atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{ints: make(map[string]*atomic.Int64)}
}

// Int returns the counter for key, creating it on first use
func (r *Registry) Int(key string) *atomic.Int64 {
	r.mu.RLock()
	ptr, ok := r.ints[key]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := r.ints[key]; ok {
		return ptr
	}
	ptr = new(atomic.Int64)
	r.ints[key] = ptr
	return ptr
}

// Get returns the value of key, 0 when unset
func (r *Registry) Get(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ptr, ok := r.ints[key]; ok {
		return ptr.Load()
	}
	return 0
}

// StoreMax raises key to v if v is larger
func (r *Registry) StoreMax(key string, v int64) {
	ptr := r.Int(key)
	for {
		cur := ptr.Load()
		if v <= cur || ptr.CompareAndSwap(cur, v) {
			return
		}
	}
}

// StoreMin lowers key to v if v is smaller or key is still 0
func (r *Registry) StoreMin(key string, v int64) {
	ptr := r.Int(key)
	for {
		cur := ptr.Load()
		if (cur != 0 && v >= cur) || ptr.CompareAndSwap(cur, v) {
			return
		}
	}
}
