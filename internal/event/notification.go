// Package event carries one-shot notifications from view-models to the
// screens observing them.
package event

import (
	"sync/atomic"
)

// Notification wraps a value that may be acted on at most once. Screens
// re-attach to their view-model after every redraw; the gate keeps a
// delivered transition from firing again.
type Notification[T any] struct {
	value    T
	consumed atomic.Bool
}

// NewNotification creates an unconsumed notification holding value
func NewNotification[T any](value T) *Notification[T] {
	return &Notification[T]{value: value}
}

// Consume returns the value and true on the first call, and the zero value
// and false on every later call. A nil notification is always consumed.
func (n *Notification[T]) Consume() (T, bool) {
	if n == nil || !n.consumed.CompareAndSwap(false, true) {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Event is a notification without content
type Event = Notification[struct{}]

// NewEvent creates an unconsumed content-less notification
func NewEvent() *Event {
	return NewNotification(struct{}{})
}
