package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Writer executes named write operations on a bounded worker pool so request
// handlers can respond without waiting on the database. Every dispatch gets
// a one-shot result channel; callers that drop it still have failures land
// in the log through the error sink.
type Writer struct {
	logger  *zap.Logger
	tasks   chan task
	timeout time.Duration
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

type task struct {
	name string
	fn   func(ctx context.Context) error
	done chan error
}

// Option configures a Writer
type Option func(*Writer)

// WithTimeout caps how long a single dispatched write may run
func WithTimeout(d time.Duration) Option {
	return func(w *Writer) {
		w.timeout = d
	}
}

// NewWriter creates a Writer with the given pool size and queue depth and
// starts its workers
func NewWriter(logger *zap.Logger, workers, queueDepth int, opts ...Option) *Writer {
	if workers < 1 {
		workers = 1
	}
	if queueDepth < 1 {
		queueDepth = 64
	}

	w := &Writer{
		logger:  logger.Named("async-writer"),
		tasks:   make(chan task, queueDepth),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go w.worker()
	}
	return w
}

// Dispatch queues a write and returns its one-shot result channel. When the
// queue is full or the writer is shut down the work runs inline instead of
// being dropped; a slow caller is better than a lost write.
func (w *Writer) Dispatch(name string, fn func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)
	t := task{name: name, fn: fn, done: done}

	// the lock spans the enqueue so Shutdown cannot close the channel
	// between the closed check and the send
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.run(t)
		return done
	}
	select {
	case w.tasks <- t:
		w.mu.Unlock()
	default:
		w.mu.Unlock()
		w.logger.Warn("write queue full, running inline", zap.String("task", name))
		w.run(t)
	}
	return done
}

// Shutdown stops accepting queued work and waits for in-flight writes, up to
// the context deadline
func (w *Writer) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.tasks)
	w.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) worker() {
	defer w.wg.Done()
	for t := range w.tasks {
		w.run(t)
	}
}

// run executes one task, reporting the outcome on its channel and logging
// failures for callers that never read it
func (w *Writer) run(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	err := w.execute(ctx, t)
	if err != nil {
		w.logger.Error("async write failed",
			zap.String("task", t.name),
			zap.Error(err),
		)
	}
	t.done <- err
	close(t.done)
}

func (w *Writer) execute(ctx context.Context, t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("async write panicked: %v", r)
			w.logger.Error("async write panicked",
				zap.String("task", t.name),
				zap.Any("panic", r),
			)
		}
	}()
	return t.fn(ctx)
}
