// Package future provides a single-resolution result for work running on
// another goroutine.
package future

import (
	"context"
	"fmt"
	"sync"
)

// Future resolves exactly once, either with a value or with an error
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// New creates an unresolved future
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn on a new goroutine and resolves the returned future with its
// result. A panic in fn resolves the future with an error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(fmt.Errorf("future: task panicked: %v", r))
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// Resolve completes the future with v. It returns false when the future
// was already resolved.
func (f *Future[T]) Resolve(v T) bool {
	return f.complete(v, nil)
}

// Reject completes the future with err. A nil err is replaced so the
// future never resolves with neither a value nor an error.
func (f *Future[T]) Reject(err error) bool {
	if err == nil {
		err = fmt.Errorf("future: rejected without error")
	}
	var zero T
	return f.complete(zero, err)
}

func (f *Future[T]) complete(v T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		resolved = true
		close(f.done)
	})
	return resolved
}

// Done is closed once the future is resolved
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
