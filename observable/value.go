// Package observable provides a small reactive cell: a stored value that
// notifies subscribers synchronously when it changes, plus a read-only view
// that can be handed to any number of observers without granting write access.
package observable

import (
	"slices"
	"sync"
)

// ReadOnly is the observer side of a Value.
type ReadOnly[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// Value holds a value of type T and the set of subscribers watching it.
// Build it with New.
type Value[T comparable] struct {
	mu   sync.RWMutex
	val  T
	subs map[uint64]func(T)
	next uint64
	view *view[T]
}

var _ ReadOnly[bool] = &Value[bool]{}
var _ ReadOnly[bool] = &view[bool]{}

// New returns a Value seeded with initial.
func New[T comparable](initial T) *Value[T] {
	v := &Value[T]{
		val:  initial,
		subs: map[uint64]func(T){},
	}
	v.view = &view[T]{cell: v}
	return v
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set stores val and notifies subscribers if it differs from the current value.
func (v *Value[T]) Set(val T) {
	if v.Store(val) {
		v.Notify()
	}
}

// Store replaces the value without notifying anyone and reports whether
// it changed. Pair it with Notify when several cells must be updated
// before any observer runs.
func (v *Value[T]) Store(val T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.val == val {
		return false
	}
	v.val = val
	return true
}

// Notify delivers the current value to every subscriber, in subscription
// order, on the calling goroutine.
func (v *Value[T]) Notify() {
	v.mu.RLock()
	val := v.val
	ids := make([]uint64, 0, len(v.subs))
	for id := range v.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, v.subs[id])
	}
	v.mu.RUnlock()

	for _, fn := range fns {
		fn(val)
	}
}

// Subscribe registers fn to be called with the new value after each change.
// The returned function removes the subscription and is safe to call more
// than once.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	v.mu.Lock()
	id := v.next
	v.next++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

// View returns the read-only facade bound to this cell. Every call returns
// the same facade.
func (v *Value[T]) View() ReadOnly[T] {
	return v.view
}

// view forwards reads and subscriptions to its cell and nothing else.
type view[T comparable] struct {
	cell *Value[T]
}

func (r *view[T]) Get() T {
	return r.cell.Get()
}

func (r *view[T]) Subscribe(fn func(T)) func() {
	return r.cell.Subscribe(fn)
}
