package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	// ErrWorkerStopped is returned by Submit once the worker is stopped or before it is started
	ErrWorkerStopped = errors.New("worker is not running")

	// ErrTaskPanicked wraps the value recovered from a panicking task
	ErrTaskPanicked = errors.New("task panicked")
)

// Worker runs submitted tasks on a fixed number of background goroutines.
// See also:
// - looper.go: single goroutine that owns result delivery
// - task.go: background task with a callback on a Looper
// - future.go: async/await style results
type Worker struct {
	size     int
	tasks    chan func()
	running  bool
	stopped  bool
	mu       sync.RWMutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewWorker creates a worker with size goroutines and a bounded queue
func NewWorker(size int, logger *slog.Logger) *Worker {
	if size < 1 {
		size = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Worker{
		size:     size,
		tasks:    make(chan func(), size*16),
		stopChan: make(chan struct{}),
		logger:   logger.With("component", "worker"),
	}
}

// Start launches the background goroutines. Calling it more than once, or after Stop, does nothing.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running || w.stopped {
		return
	}
	w.running = true

	w.logger.Info("starting background worker", "size", w.size)

	for i := 0; i < w.size; i++ {
		w.wg.Add(1)
		go w.run()
	}
}

// Stop refuses new tasks, lets queued ones finish and waits for the goroutines to exit
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.stopped = true
		w.mu.Unlock()
		return
	}

	w.logger.Info("stopping background worker")
	w.running = false
	w.stopped = true
	close(w.stopChan)
	w.mu.Unlock()

	w.wg.Wait()
}

// Submit queues task for execution. It blocks while the queue is full.
func (w *Worker) Submit(task func()) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.running {
		return ErrWorkerStopped
	}

	w.tasks <- task
	return nil
}

func (w *Worker) run() {
	defer w.wg.Done()

	for {
		select {
		case task := <-w.tasks:
			w.runTask(task)
		case <-w.stopChan:
			// Drain whatever was queued before Stop
			for {
				select {
				case task := <-w.tasks:
					w.runTask(task)
				default:
					return
				}
			}
		}
	}
}

func (w *Worker) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("task panicked", "panic", r)
		}
	}()

	task()
}

// call runs fn and turns a panic into an error
func call[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return fn()
}
