package worker

import "context"

// Future holds the result of a function running on a Worker
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async starts fn on w and returns immediately. If w refuses the task the
// future completes at once with ErrWorkerStopped.
func Async[T any](w *Worker, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	err := w.Submit(func() {
		defer close(f.done)
		f.value, f.err = call(fn)
	})
	if err != nil {
		f.err = err
		close(f.done)
	}

	return f
}

// Await blocks until the result is ready or ctx is done. Cancelling ctx only
// stops the waiting; fn keeps running to completion.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
