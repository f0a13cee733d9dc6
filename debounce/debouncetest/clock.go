// Package debouncetest provides a manually advanced clock for debounce tests.
package debouncetest

import (
	"go-currency-converter/debounce"
	"sort"
	"sync"
	"time"
)

// Clock a debounce.Clock that only moves when Advance is called.
// Timer callbacks run synchronously inside Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer
}

var _ debounce.Clock = (*Clock)(nil)

type timer struct {
	clock   *Clock
	at      time.Time
	f       func()
	stopped bool
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// NewClock returns a Clock starting at start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) debounce.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, running every timer that comes due in
// deadline order. Timers scheduled by callbacks run too if they fall inside d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at.Before(c.timers[j].at) })
		var next *timer
		for i, t := range c.timers {
			if t.stopped {
				continue
			}
			if t.at.After(target) {
				break
			}
			next = t
			c.timers = append(c.timers[:i:i], c.timers[i+1:]...)
			break
		}
		if next == nil {
			c.now = target
			c.timers = active(c.timers)
			c.mu.Unlock()
			return
		}
		next.stopped = true
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

// Timers number of timers scheduled and not yet stopped or fired
func (c *Clock) Timers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(active(c.timers))
}

func active(timers []*timer) []*timer {
	out := timers[:0]
	for _, t := range timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}
