// Package debounce delays a callback until its input has settled.
//
// The listing view uses it so the free-text order filter does not fire one
// backend request per keystroke.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	stopped bool
}

// New returns a Debouncer with the given settle delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the settle delay, replacing any previously
// scheduled call that has not fired yet. After Stop, calls are ignored.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		fn := d.pending
		d.pending = nil
		stopped := d.stopped
		d.mu.Unlock()
		if fn != nil && !stopped {
			fn()
		}
	})
}

// Flush runs the pending call immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	stopped := d.stopped
	d.mu.Unlock()
	if fn != nil && !stopped {
		fn()
	}
}

// Stop cancels any pending call and disables the debouncer. It is called on
// view teardown so a late timer never mutates disposed state.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}
