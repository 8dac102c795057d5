package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWorker(t *testing.T, size int) *Worker {
	t.Helper()

	w := NewWorker(size, testLogger())
	w.Start()
	t.Cleanup(w.Stop)
	return w
}

func TestWorker_SubmitRunsTasks(t *testing.T) {
	w := startWorker(t, 4)

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		require.NoError(t, w.Submit(func() {
			defer wg.Done()
			count.Add(1)
		}))
	}
	wg.Wait()

	assert.Equal(t, int64(100), count.Load())
}

func TestWorker_Lifecycle(t *testing.T) {
	t.Run("Submit before Start fails", func(t *testing.T) {
		w := NewWorker(1, testLogger())
		assert.ErrorIs(t, w.Submit(func() {}), ErrWorkerStopped)
	})

	t.Run("Stop drains queued tasks", func(t *testing.T) {
		w := NewWorker(1, testLogger())
		w.Start()

		release := make(chan struct{})
		var ran atomic.Int64
		require.NoError(t, w.Submit(func() { <-release }))
		for i := 0; i < 5; i++ {
			require.NoError(t, w.Submit(func() { ran.Add(1) }))
		}

		close(release)
		w.Stop()

		assert.Equal(t, int64(5), ran.Load())
	})

	t.Run("Submit after Stop fails and Start cannot revive", func(t *testing.T) {
		w := NewWorker(1, testLogger())
		w.Start()
		w.Stop()
		w.Start()

		assert.ErrorIs(t, w.Submit(func() {}), ErrWorkerStopped)
		w.Stop()
	})

	t.Run("Panicking task does not kill the worker", func(t *testing.T) {
		w := startWorker(t, 1)

		require.NoError(t, w.Submit(func() { panic("boom") }))

		done := make(chan struct{})
		require.NoError(t, w.Submit(func() { close(done) }))

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker stopped processing after a panic")
		}
	})
}

func TestLooper(t *testing.T) {
	t.Run("Runs callbacks in order on one goroutine", func(t *testing.T) {
		looper := NewLooper(8)

		var got []int
		for i := 0; i < 5; i++ {
			i := i
			require.True(t, looper.Post(func() { got = append(got, i) }))
		}
		require.True(t, looper.Post(looper.Quit))

		err := looper.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})

	t.Run("Post after Quit fails", func(t *testing.T) {
		looper := NewLooper(0)
		looper.Quit()
		looper.Quit()

		assert.False(t, looper.Post(func() {}))
	})

	t.Run("Run returns when context ends", func(t *testing.T) {
		looper := NewLooper(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := looper.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, looper.Post(func() {}))
	})
}

func TestExecute(t *testing.T) {
	t.Run("Delivers result on the looper", func(t *testing.T) {
		w := startWorker(t, 2)
		looper := NewLooper(1)

		var got string
		var gotErr error
		err := Execute(w, looper,
			func() (string, error) { return "done", nil },
			func(result string, err error) {
				got, gotErr = result, err
				looper.Quit()
			},
		)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, looper.Run(ctx))

		assert.Equal(t, "done", got)
		assert.NoError(t, gotErr)
	})

	t.Run("Delivers errors and panics", func(t *testing.T) {
		w := startWorker(t, 2)
		looper := NewLooper(2)

		failure := errors.New("failed")
		var errs []error
		post := func(_ int, err error) {
			errs = append(errs, err)
			if len(errs) == 2 {
				looper.Quit()
			}
		}

		require.NoError(t, Execute(w, looper, func() (int, error) { return 0, failure }, post))
		require.NoError(t, Execute(w, looper, func() (int, error) { panic("boom") }, post))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, looper.Run(ctx))

		require.Len(t, errs, 2)
		var sawFailure, sawPanic bool
		for _, err := range errs {
			sawFailure = sawFailure || errors.Is(err, failure)
			sawPanic = sawPanic || errors.Is(err, ErrTaskPanicked)
		}
		assert.True(t, sawFailure)
		assert.True(t, sawPanic)
	})

	t.Run("Stopped worker refuses the task", func(t *testing.T) {
		w := NewWorker(1, testLogger())
		looper := NewLooper(1)

		err := Execute(w, looper, func() (int, error) { return 1, nil }, func(int, error) {})

		assert.ErrorIs(t, err, ErrWorkerStopped)
	})
}

func TestFuture(t *testing.T) {
	t.Run("Await returns the value", func(t *testing.T) {
		w := startWorker(t, 1)

		f := Async(w, func() (int, error) { return 42, nil })
		v, err := f.Await(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("Await honours context while the task keeps running", func(t *testing.T) {
		w := startWorker(t, 1)

		release := make(chan struct{})
		f := Async(w, func() (int, error) {
			<-release
			return 7, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		v, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("Panic becomes an error", func(t *testing.T) {
		w := startWorker(t, 1)

		f := Async(w, func() (string, error) { panic("boom") })
		<-f.Done()
		_, err := f.Await(context.Background())

		assert.ErrorIs(t, err, ErrTaskPanicked)
	})

	t.Run("Stopped worker completes immediately", func(t *testing.T) {
		w := NewWorker(1, testLogger())

		f := Async(w, func() (int, error) { return 1, nil })
		_, err := f.Await(context.Background())

		assert.ErrorIs(t, err, ErrWorkerStopped)
	})
}

func TestRef(t *testing.T) {
	type screen struct{ name string }

	ref := NewRef(&screen{name: "main"})

	v, ok := ref.Get()
	require.True(t, ok)
	assert.Equal(t, "main", v.name)

	ref.Clear()

	v, ok = ref.Get()
	assert.False(t, ok)
	assert.Nil(t, v)
}
