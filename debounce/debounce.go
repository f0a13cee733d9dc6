// Package debounce coalesces bursts of triggers into a single call made once the
// triggers have been quiet for a fixed window.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow quiet period used by the converter for amount edits
const DefaultWindow = 500 * time.Millisecond

// ShouldFire reports whether a call last triggered at lastCall may run at now.
func ShouldFire(lastCall, now time.Time, window time.Duration) bool {
	return !now.Before(lastCall.Add(window))
}

// Timer a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Clock source of time and timers. The zero Debouncer uses the wall clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Debouncer runs the most recently triggered function once no trigger has arrived
// for window. It is safe for concurrent use.
type Debouncer struct {
	window time.Duration
	clock  Clock

	mu       sync.Mutex
	lastCall time.Time
	pending  func()
	timer    Timer

	// gen identifies the latest Trigger; timers from older triggers are ignored
	gen uint64
}

// Option configures a Debouncer
type Option func(*Debouncer)

// WithClock replaces the wall clock, mostly for tests
func WithClock(c Clock) Option {
	return func(d *Debouncer) {
		d.clock = c
	}
}

// New constructs a Debouncer. A non-positive window selects DefaultWindow.
func New(window time.Duration, opts ...Option) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Debouncer{
		window: window,
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Window the configured quiet period
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger records a call and (re)schedules fn to run one window from now,
// cancelling whatever was scheduled before.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastCall = d.clock.Now()
	d.pending = fn
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	d.schedule(d.window, d.gen)
}

func (d *Debouncer) schedule(after time.Duration, gen uint64) {
	d.timer = d.clock.AfterFunc(after, func() { d.fire(gen) })
}

// Cancel drops the pending call, if any. It reports whether a call was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	wasPending := d.pending != nil
	d.pending = nil
	d.gen++
	return wasPending
}

// Pending reports whether a call is waiting for its window to elapse
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// fire runs the pending call if gen is still the latest trigger and the quiet
// window has elapsed; an early timer reschedules itself for the remainder.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.pending == nil || gen != d.gen {
		d.mu.Unlock()
		return
	}
	now := d.clock.Now()
	if !ShouldFire(d.lastCall, now, d.window) {
		d.schedule(d.lastCall.Add(d.window).Sub(now), gen)
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}
