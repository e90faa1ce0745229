// Package persist provides the asynchronous write-through boundary
// between in-memory state and durable storage. Gameplay never blocks on
// disk I/O: mutations enqueue a write and move on, while tests (or any
// caller that cares) can await the returned completion channel.
package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

// Writer serializes durable writes on a background goroutine. A failed
// write is retried once, then logged and swallowed; in-memory state is
// never rolled back.
type Writer struct {
	logger    *slog.Logger
	retrier   retry.Retry[struct{}]
	jobs      chan job
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type job struct {
	name string
	do   func() error
	done chan error
}

// NewWriter creates a Writer and starts its background loop.
func NewWriter(logger *slog.Logger) *Writer {
	w := &Writer{
		logger: logger,
		retrier: retry.New[struct{}](retry.Config{
			MaxAttempts:   2,
			InitialDelay:  50 * time.Millisecond,
			MaxDelay:      time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			IsRetryable:   func(err error) bool { return true },
		}),
		jobs: make(chan job, 64),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

func (w *Writer) loop() {
	defer w.wg.Done()
	for j := range w.jobs {
		_, err := w.retrier.Do(context.Background(), func(ctx context.Context) (struct{}, error) {
			return struct{}{}, j.do()
		})
		if err != nil && w.logger != nil {
			w.logger.Warn("durable write failed", "op", j.name, "error", err)
		}
		j.done <- err
		close(j.done)
	}
}

// Enqueue schedules a durable write. The returned channel receives the
// final error (nil on success) and is then closed; callers may await it
// or ignore it.
func (w *Writer) Enqueue(name string, do func() error) <-chan error {
	done := make(chan error, 1)
	w.jobs <- job{name: name, do: do, done: done}
	return done
}

// Close drains pending writes and stops the background loop. Enqueue
// must not be called after Close.
func (w *Writer) Close() {
	w.closeOnce.Do(func() {
		close(w.jobs)
		w.wg.Wait()
	})
}
