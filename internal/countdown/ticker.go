package countdown

import (
	"sync"
	"time"
)

// Ticker delivers a recomputed Result once per second. It is a scoped
// resource: callers must Stop it on every exit path. A ticker for a
// placeholder countdown never starts.
type Ticker struct {
	date string
	tm   string
	fn   func(Result)

	mu      sync.Mutex
	stop    chan struct{}
	running bool
}

// NewTicker prepares a ticker for the given date/time. fn is invoked from a
// single goroutine, once per second, after Start.
func NewTicker(date, tm string, fn func(Result)) *Ticker {
	return &Ticker{date: date, tm: tm, fn: fn}
}

// Start begins ticking and reports whether it did. It refuses to start for
// a placeholder countdown or when already running.
func (t *Ticker) Start() bool {
	if Until(t.date, t.tm).IsPlaceholder {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return false
	}
	t.running = true
	t.stop = make(chan struct{})

	go t.run(t.stop)
	return true
}

func (t *Ticker) run(stop chan struct{}) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			t.fn(Until(t.date, t.tm))
		}
	}
}

// Stop cancels the ticker. Safe to call multiple times and before Start.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	close(t.stop)
}

// Running reports whether the ticker is currently active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
