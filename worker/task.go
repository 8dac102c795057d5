package worker

// Execute runs background on w and then delivers its result to post on looper.
// post never runs on a worker goroutine. If the looper has quit by the time
// background finishes, the result is dropped.
func Execute[T any](w *Worker, looper *Looper, background func() (T, error), post func(T, error)) error {
	return w.Submit(func() {
		result, err := call(background)
		if !looper.Post(func() { post(result, err) }) {
			w.logger.Debug("looper gone, dropping task result")
		}
	})
}
