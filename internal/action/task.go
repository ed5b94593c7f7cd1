// Package action runs the simulated admin actions as asynchronous tasks that
// resolve to a result or an error.
package action

import (
	"context"
	"time"
)

// Task is a single in-flight action.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Start runs fn in its own goroutine after waiting delay. Cancelling ctx
// during the delay resolves the task with ctx.Err() without running fn.
func Start[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		if err := Sleep(ctx, delay); err != nil {
			t.err = err
			return
		}
		t.value, t.err = fn(ctx)
	}()
	return t
}

// Done is closed once the task has resolved.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await blocks until the task resolves or ctx is done, whichever comes first.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
