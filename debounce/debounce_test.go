package debounce_test

import (
	"github.com/stretchr/testify/assert"
	"go-currency-converter/debounce"
	"go-currency-converter/debounce/debouncetest"
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestShouldFire(t *testing.T) {
	window := 500 * time.Millisecond
	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"immediately", 0, false},
		{"just before window", 499 * time.Millisecond, false},
		{"exactly at window", 500 * time.Millisecond, true},
		{"after window", 2 * time.Second, true},
		{"clock went backwards", -time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, debounce.ShouldFire(epoch, epoch.Add(tt.elapsed), window))
		})
	}
}

func TestDebouncer_BurstFiresOnceAfterLastTrigger(t *testing.T) {
	clock := debouncetest.NewClock(epoch)
	d := debounce.New(500*time.Millisecond, debounce.WithClock(clock))

	var calls int32
	var firedAt time.Time
	var got int
	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			firedAt = clock.Now()
			got = i
		})
		clock.Advance(100 * time.Millisecond)
	}

	// last trigger at +400ms, so nothing before +900ms
	clock.Advance(399 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.True(t, d.Pending())

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, epoch.Add(900*time.Millisecond), firedAt)
	assert.Equal(t, 5, got, "the latest trigger wins")
	assert.False(t, d.Pending())

	clock.Advance(10 * time.Second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 0, clock.Timers())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	clock := debouncetest.NewClock(epoch)
	d := debounce.New(500*time.Millisecond, debounce.WithClock(clock))

	var calls int32
	fn := func() { atomic.AddInt32(&calls, 1) }

	d.Trigger(fn)
	clock.Advance(600 * time.Millisecond)
	d.Trigger(fn)
	clock.Advance(600 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := debouncetest.NewClock(epoch)
	d := debounce.New(500*time.Millisecond, debounce.WithClock(clock))

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())
	clock.Advance(time.Second)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	d := debounce.New(0)

	assert.Equal(t, debounce.DefaultWindow, d.Window())
}

func TestDebouncer_WallClock(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	done := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		d.Trigger(func() { done <- i })
	}

	select {
	case got := <-done:
		assert.Equal(t, 2, got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	select {
	case extra := <-done:
		t.Fatalf("unexpected extra call %d", extra)
	case <-time.After(100 * time.Millisecond):
	}
}
