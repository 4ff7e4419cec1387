package event

import (
	"sync"
)

// Relay forwards one-shot notifications to a single observer. The latest
// notification is kept so an observer attaching after a publish still
// receives it, but only if nobody consumed it first.
type Relay[T any] struct {
	mu       sync.Mutex
	current  *Notification[T]
	observer func(T)
}

// NewRelay creates an empty relay
func NewRelay[T any]() *Relay[T] {
	return &Relay[T]{}
}

// Publish supersedes the pending notification with a fresh one holding v
// and offers it to the attached observer.
func (r *Relay[T]) Publish(v T) {
	n := NewNotification(v)

	r.mu.Lock()
	r.current = n
	observer := r.observer
	r.mu.Unlock()

	deliver(n, observer)
}

// Observe attaches fn, replacing any previous observer, and offers it the
// pending notification.
func (r *Relay[T]) Observe(fn func(T)) {
	r.mu.Lock()
	r.observer = fn
	n := r.current
	r.mu.Unlock()

	deliver(n, fn)
}

// Detach removes the observer. Notifications published while detached stay
// pending until the next Observe.
func (r *Relay[T]) Detach() {
	r.mu.Lock()
	r.observer = nil
	r.mu.Unlock()
}

// Observer callbacks run outside the lock so they may publish again.
func deliver[T any](n *Notification[T], fn func(T)) {
	if n == nil || fn == nil {
		return
	}
	if v, ok := n.Consume(); ok {
		fn(v)
	}
}

// Signal is a relay of content-less events
type Signal = Relay[struct{}]

// NewSignal creates an empty signal relay
func NewSignal() *Signal {
	return NewRelay[struct{}]()
}

// Fire publishes a content-less event on s
func Fire(s *Signal) {
	s.Publish(struct{}{})
}

// State holds the latest value of something a screen renders, such as the
// loading state of a request. Unlike Relay every observer attachment
// receives the current value.
type State[T any] struct {
	mu       sync.Mutex
	value    T
	set      bool
	observer func(T)
}

// NewState creates a state holder without a value
func NewState[T any]() *State[T] {
	return &State[T]{}
}

// Set stores v and passes it to the observer
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.set = true
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(v)
	}
}

// Get returns the current value and whether one was ever set
func (s *State[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// Observe attaches fn and replays the current value to it
func (s *State[T]) Observe(fn func(T)) {
	s.mu.Lock()
	s.observer = fn
	v, set := s.value, s.set
	s.mu.Unlock()

	if set && fn != nil {
		fn(v)
	}
}

// Detach removes the observer
func (s *State[T]) Detach() {
	s.mu.Lock()
	s.observer = nil
	s.mu.Unlock()
}
