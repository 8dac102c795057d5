// Package demo reproduces the write-then-list routine under three calling
// conventions: directly on the caller, as a background task whose result is
// handed to a Looper, and as an awaited Future.
package demo

import (
	"context"
	"fmt"
	"log/slog"

	"user-store/worker"
)

// Notifier shows a short message to whoever is watching
type Notifier interface {
	Show(text string)
}

// LogNotifier shows messages through slog
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Show(text string) {
	n.Logger.Info("user list", "text", text)
}

// Writer is the work every demo runs. services.UserService satisfies it.
type Writer interface {
	WriteAndRead() (string, error)
}

// Basic runs the routine on the calling goroutine
func Basic(svc Writer, notifier Notifier) error {
	listing, err := svc.WriteAndRead()
	if err != nil {
		return fmt.Errorf("basic demo: %w", err)
	}

	notifier.Show(listing)
	return nil
}

// Task runs the routine on w and shows the result from looper's goroutine,
// provided target is still valid by then. then, if not nil, runs on the
// looper after the result has been handled.
func Task(w *worker.Worker, looper *worker.Looper, svc Writer, target *worker.Ref[Notifier], logger *slog.Logger, then func()) error {
	return worker.Execute(w, looper, svc.WriteAndRead, func(listing string, err error) {
		if then != nil {
			defer then()
		}

		if err != nil {
			logger.Error("task demo failed", "error", err)
			return
		}

		notifier, ok := target.Get()
		if !ok {
			logger.Debug("notifier gone, dropping task demo result")
			return
		}
		notifier.Show(listing)
	})
}

// Coroutine starts the routine on w and waits for it. ctx bounds the wait only.
func Coroutine(ctx context.Context, w *worker.Worker, svc Writer, notifier Notifier) error {
	listing, err := worker.Async(w, svc.WriteAndRead).Await(ctx)
	if err != nil {
		return fmt.Errorf("coroutine demo: %w", err)
	}

	notifier.Show(listing)
	return nil
}
