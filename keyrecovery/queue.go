package keyrecovery

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// processingQueue serializes work items through a single worker, pacing
// consecutive items by a fixed delay so that inbound bursts cannot starve the
// rest of the coordinator.
type processingQueue[T any] struct {
	clock   clockwork.Clock
	delay   time.Duration
	process func(context.Context, T)

	mu     sync.Mutex
	items  []T
	signal chan struct{}
}

func newProcessingQueue[T any](clock clockwork.Clock, delay time.Duration, process func(context.Context, T)) *processingQueue[T] {
	return &processingQueue[T]{
		clock:   clock,
		delay:   delay,
		process: process,
		signal:  make(chan struct{}, 1),
	}
}

// Enqueue appends an item and wakes the worker. Safe for concurrent use.
func (q *processingQueue[T]) Enqueue(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *processingQueue[T]) pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Run drains the queue until the context is cancelled. Intended to be run in
// an errgroup; it always returns the context's error.
func (q *processingQueue[T]) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		item, ok := q.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.signal:
				continue
			}
		}
		q.process(ctx, item)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.clock.After(q.delay):
		}
	}
}
