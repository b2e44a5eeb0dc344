package keyrecovery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestQueueProcessesInOrder(t *testing.T) {
	t.Parallel()
	var (
		mu        sync.Mutex
		processed []int
	)
	q := newProcessingQueue[int](clockwork.NewRealClock(), time.Millisecond, func(_ context.Context, item int) {
		mu.Lock()
		processed = append(processed, item)
		mu.Unlock()
	})
	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	eg.Go(func() error { return q.Run(ctx) })

	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(processed) == 5
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	require.Equal(t, []int{0, 1, 2, 3, 4}, processed)
	mu.Unlock()

	cancel()
	require.ErrorIs(t, eg.Wait(), context.Canceled)
}

func TestQueueStopsWithItemsPending(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	q := newProcessingQueue[int](clk, 10*time.Millisecond, func(context.Context, int) {})
	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	eg.Go(func() error { return q.Run(ctx) })

	q.Enqueue(1)
	q.Enqueue(2)
	// the worker processes item 1 and parks in the pacing delay
	clk.BlockUntil(1)
	cancel()
	require.ErrorIs(t, eg.Wait(), context.Canceled)
}

func TestQueueStartsNothingAfterCancel(t *testing.T) {
	t.Parallel()
	q := newProcessingQueue[int](clockwork.NewRealClock(), time.Millisecond, func(context.Context, int) {
		t.Error("item processed after cancellation")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Enqueue(1)
	require.ErrorIs(t, q.Run(ctx), context.Canceled)
}

func TestQueueWakesOnLateEnqueue(t *testing.T) {
	t.Parallel()
	done := make(chan int, 1)
	q := newProcessingQueue[int](clockwork.NewRealClock(), time.Millisecond, func(_ context.Context, item int) {
		done <- item
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var eg errgroup.Group
	eg.Go(func() error { return q.Run(ctx) })

	// let the worker reach its idle wait first
	time.Sleep(20 * time.Millisecond)
	q.Enqueue(42)
	select {
	case item := <-done:
		require.Equal(t, 42, item)
	case <-time.After(time.Second):
		t.Fatal("queue worker never woke up")
	}
	cancel()
	require.ErrorIs(t, eg.Wait(), context.Canceled)
}
