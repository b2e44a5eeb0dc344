package keyrecovery

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer coalesces bursts of triggers into a single callback invocation
// after a quiet window. Triggers arriving while the window is pending extend
// nothing; they are absorbed. Triggers arriving while the callback runs mark
// the debouncer dirty and re-arm it, so no trigger is ever lost.
type debouncer struct {
	clock  clockwork.Clock
	window time.Duration
	fn     func()

	mu      sync.Mutex
	armed   bool
	running bool
	again   bool
	stopped bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

func newDebouncer(clock clockwork.Clock, window time.Duration, fn func()) *debouncer {
	return &debouncer{
		clock:  clock,
		window: window,
		fn:     fn,
		stopCh: make(chan struct{}),
	}
}

// Trigger requests a callback run. Safe to call from any goroutine.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.armed {
		if d.running {
			d.again = true
		}
		return
	}
	d.armed = true
	d.wg.Add(1)
	go d.wait()
}

func (d *debouncer) wait() {
	defer d.wg.Done()
	for {
		select {
		case <-d.clock.After(d.window):
		case <-d.stopCh:
			d.mu.Lock()
			d.armed = false
			d.again = false
			d.mu.Unlock()
			return
		}
		d.mu.Lock()
		d.running = true
		d.mu.Unlock()
		d.fn()
		d.mu.Lock()
		d.running = false
		if d.again && !d.stopped {
			d.again = false
			d.mu.Unlock()
			continue
		}
		d.armed = false
		d.mu.Unlock()
		return
	}
}

// Stop prevents further callbacks and waits for an in-progress one to finish.
func (d *debouncer) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.stopCh)
	d.mu.Unlock()
	d.wg.Wait()
}
