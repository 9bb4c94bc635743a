package rate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"owaspkit/internal/testutil"
)

// fakeClock avanza solo cuando el test lo pide.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newWithClock(rate float64, burst int) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(rate, burst)
	l.now = clock.Now
	l.last = clock.Now()
	return l, clock
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		burst     int
		wantRate  float64
		wantBurst int
	}{
		{"valid", 10, 5, 10, 5},
		{"zero rate", 0, 5, 1, 5},
		{"negative burst", 10, -1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.rate, tt.burst)
			testutil.AssertEqual(t, l.Rate(), tt.wantRate, "rate")
			testutil.AssertEqual(t, l.Burst(), tt.wantBurst, "burst")
			testutil.AssertEqual(t, l.Tokens(), float64(tt.wantBurst), "starts full")
		})
	}
}

func TestEvery(t *testing.T) {
	testutil.AssertTrue(t, Every(0) == nil, "zero interval means no limit")
	testutil.AssertTrue(t, Every(-time.Second) == nil, "negative interval means no limit")

	l := Every(200 * time.Millisecond)
	testutil.AssertEqual(t, l.Rate(), 5.0, "five per second")
	testutil.AssertEqual(t, l.Burst(), 1, "no bursts")
}

func TestLimiter_NilIsUnlimited(t *testing.T) {
	var l *Limiter
	testutil.AssertTrue(t, l.Allow(), "nil allows")
	testutil.AssertNoError(t, l.Wait(context.Background()), "nil never waits")
}

func TestLimiter_Allow(t *testing.T) {
	l, clock := newWithClock(2, 2)

	testutil.AssertTrue(t, l.Allow(), "first token")
	testutil.AssertTrue(t, l.Allow(), "second token")
	testutil.AssertFalse(t, l.Allow(), "bucket empty")

	clock.Advance(500 * time.Millisecond)
	testutil.AssertTrue(t, l.Allow(), "one token refilled")
	testutil.AssertFalse(t, l.Allow(), "only one")

	clock.Advance(10 * time.Second)
	testutil.AssertEqual(t, l.Tokens(), 2.0, "capped at burst")
}

func TestLimiter_ReserveReportsWait(t *testing.T) {
	l, _ := newWithClock(4, 1)

	testutil.AssertEqual(t, l.reserve(), time.Duration(0), "token available")
	testutil.AssertEqual(t, l.reserve(), 250*time.Millisecond, "wait for next token")
}

func TestLimiter_Wait(t *testing.T) {
	l := Every(20 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		testutil.RequireNoError(t, l.Wait(context.Background()), "Wait")
	}
	elapsed := time.Since(start)

	testutil.AssertTrue(t, elapsed >= 35*time.Millisecond, "two intervals between three operations")
}

func TestLimiter_WaitCanceled(t *testing.T) {
	l := Every(time.Hour)
	l.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)
	testutil.AssertEqual(t, err, context.DeadlineExceeded, "wait gives up with ctx")
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l, _ := newWithClock(1, 10)

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow() {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, granted.Load(), int32(10), "exactly burst tokens granted with a frozen clock")
}
