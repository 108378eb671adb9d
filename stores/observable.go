// Package stores holds the in-memory state containers of the front desk:
// appointments, customers, staff and the payment tally. Every store keeps one
// snapshot of its collection, replaces it wholesale on each mutation and
// notifies its subscribers synchronously once the new snapshot is in place.
package stores

import (
	"slices"
	"sync"
)

// Change is delivered to subscribers after every mutation that replaced a
// snapshot. Prev and Next are the snapshots on either side of that mutation;
// they are the live values, so listeners must treat them as read-only.
type Change[S any] struct {
	Prev    S
	Next    S
	Version uint64
}

type Listener[S any] func(Change[S])

type subscription[S any] struct {
	id int
	fn Listener[S]
}

// observable guards a single snapshot value. Snapshots are never modified in
// place: replace always installs the value returned by the mutation func.
type observable[S any] struct {
	mu        sync.RWMutex
	state     S
	version   uint64
	listeners []subscription[S]
	nextID    int
}

func newObservable[S any](initial S) *observable[S] {
	return &observable[S]{state: initial}
}

func (o *observable[S]) snapshot() (S, uint64) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state, o.version
}

func (o *observable[S]) subscribe(fn Listener[S]) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners = append(o.listeners, subscription[S]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			o.listeners = slices.DeleteFunc(slices.Clone(o.listeners), func(s subscription[S]) bool {
				return s.id == id
			})
		})
	}
}

// replace computes the next snapshot from the current one. When fn reports no
// change the snapshot, version and subscribers are left alone. Listeners run
// after the lock is released, so they may read any store, this one included.
func (o *observable[S]) replace(fn func(prev S) (S, bool)) (S, bool) {
	o.mu.Lock()
	prev := o.state
	next, changed := fn(prev)
	if !changed {
		o.mu.Unlock()
		return prev, false
	}
	o.state = next
	o.version++
	change := Change[S]{Prev: prev, Next: next, Version: o.version}
	listeners := o.listeners
	o.mu.Unlock()

	for _, l := range listeners {
		l.fn(change)
	}
	return next, true
}
