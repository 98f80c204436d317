package core

import "sort"

// Listenable is anything that can notify listeners of a change.
type Listenable interface {
	// AddListener registers fn and returns a function that removes it.
	AddListener(fn func()) (unsubscribe func())
}

// Observable holds a value and notifies listeners when it changes.
//
// Observable is NOT thread-safe.
type Observable[T any] struct {
	value     T
	equal     func(a, b T) bool
	listeners map[uint64]func(T)
	nextID    uint64
}

// NewObservable creates an observable that skips notifications when the new
// value equals the current one.
func NewObservable[T comparable](initial T) *Observable[T] {
	return NewObservableFunc(initial, func(a, b T) bool { return a == b })
}

// NewObservableFunc creates an observable using equal to detect changes.
// A nil equal notifies on every Set.
func NewObservableFunc[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v and notifies listeners if it differs from the current value.
// Listeners run synchronously in registration order.
func (o *Observable[T]) Set(v T) {
	if o.equal != nil && o.equal(o.value, v) {
		return
	}
	o.value = v
	for _, id := range o.ids() {
		if fn, ok := o.listeners[id]; ok {
			fn(v)
		}
	}
}

// Observe registers fn to receive each new value.
func (o *Observable[T]) Observe(fn func(T)) (unsubscribe func()) {
	if o.listeners == nil {
		o.listeners = make(map[uint64]func(T))
	}
	o.nextID++
	id := o.nextID
	o.listeners[id] = fn
	return func() {
		delete(o.listeners, id)
	}
}

// AddListener registers fn to run after every change.
func (o *Observable[T]) AddListener(fn func()) (unsubscribe func()) {
	return o.Observe(func(T) { fn() })
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	return len(o.listeners)
}

// ids returns listener ids in registration order. Taking a copy lets a
// listener unsubscribe itself while being notified.
func (o *Observable[T]) ids() []uint64 {
	ids := make([]uint64, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Merge fans several listenables into one. A listener added to the result
// runs whenever any source changes.
func Merge(sources ...Listenable) Listenable {
	return merged(sources)
}

type merged []Listenable

func (m merged) AddListener(fn func()) func() {
	unsubs := make([]func(), 0, len(m))
	for _, src := range m {
		if src == nil {
			continue
		}
		unsubs = append(unsubs, src.AddListener(fn))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Subscriptions collects unsubscribe functions so they can be released
// together.
type Subscriptions struct {
	unsubs []func()
}

// Add records an unsubscribe function.
func (s *Subscriptions) Add(unsubscribe func()) {
	if unsubscribe != nil {
		s.unsubs = append(s.unsubs, unsubscribe)
	}
}

// Cancel releases every recorded subscription.
func (s *Subscriptions) Cancel() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}

// Len returns the number of live subscriptions.
func (s *Subscriptions) Len() int {
	return len(s.unsubs)
}
