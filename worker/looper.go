package worker

import (
	"context"
	"sync"
)

// Looper runs posted callbacks one at a time on the goroutine that calls Run.
// It plays the part of a thread that owns presentation state: code running
// elsewhere hands results to it instead of touching that state directly.
type Looper struct {
	queue    chan func()
	quit     chan struct{}
	quitOnce sync.Once
}

func NewLooper(buffer int) *Looper {
	if buffer < 0 {
		buffer = 0
	}
	return &Looper{
		queue: make(chan func(), buffer),
		quit:  make(chan struct{}),
	}
}

// Post hands fn to the looper. It returns false if the looper has quit.
func (l *Looper) Post(fn func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// Run executes posted callbacks until Quit is called or ctx is done.
// Callbacks still queued at that point are dropped.
func (l *Looper) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.quit:
			return nil
		case <-ctx.Done():
			l.Quit()
			return ctx.Err()
		}
	}
}

// Quit stops Run and makes further Posts fail
func (l *Looper) Quit() {
	l.quitOnce.Do(func() {
		close(l.quit)
	})
}
