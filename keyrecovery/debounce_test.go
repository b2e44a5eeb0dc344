package keyrecovery

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

const testWindow = 150 * time.Millisecond

func TestDebouncerCoalescesBursts(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var calls atomic.Int32
	d := newDebouncer(clk, testWindow, func() { calls.Add(1) })

	d.Trigger()
	d.Trigger()
	d.Trigger()
	clk.BlockUntil(1)
	clk.Advance(testWindow)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Stop()
	require.Equal(t, int32(1), calls.Load())
}

func TestDebouncerRearmsWhenTriggeredDuringRun(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var calls atomic.Int32
	var d *debouncer
	d = newDebouncer(clk, testWindow, func() {
		if calls.Add(1) == 1 {
			d.Trigger()
		}
	})

	d.Trigger()
	clk.BlockUntil(1)
	clk.Advance(testWindow)
	// the callback re-triggered, so the goroutine waits out a second window
	clk.BlockUntil(1)
	clk.Advance(testWindow)
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	d.Stop()
	require.Equal(t, int32(2), calls.Load())
}

func TestDebouncerStopSuppressesPending(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var calls atomic.Int32
	d := newDebouncer(clk, testWindow, func() { calls.Add(1) })

	d.Trigger()
	clk.BlockUntil(1)
	d.Stop()
	clk.Advance(testWindow)
	require.Equal(t, int32(0), calls.Load())

	// triggering after stop is a no-op
	d.Trigger()
	clk.Advance(testWindow)
	require.Equal(t, int32(0), calls.Load())
}

func TestDebouncerSubsequentRounds(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var calls atomic.Int32
	d := newDebouncer(clk, testWindow, func() { calls.Add(1) })

	for round := int32(1); round <= 3; round++ {
		d.Trigger()
		clk.BlockUntil(1)
		clk.Advance(testWindow)
		require.Eventually(t, func() bool { return calls.Load() == round }, time.Second, 5*time.Millisecond)
	}
	d.Stop()
}
