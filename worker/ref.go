package worker

import "sync"

// Ref is a handle to a value whose owner may go away before an asynchronous
// result arrives. Consumers must check Get before acting on a delivered result.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	valid bool
}

func NewRef[T any](value T) *Ref[T] {
	return &Ref[T]{value: value, valid: true}
}

// Get returns the value and whether the handle is still valid
func (r *Ref[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.valid {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Clear invalidates the handle and releases the value
func (r *Ref[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	r.value = zero
	r.valid = false
}
