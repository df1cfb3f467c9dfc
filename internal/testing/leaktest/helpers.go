// Package leaktest checks that background work started by a test is gone by
// the time the test ends.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker detects goroutines left running after a block of work
type GoroutineChecker struct {
	before  int
	t       testing.TB
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		t:       t,
		timeout: DefaultSettleTimeout,
	}
}

// WithTimeout changes how long Check waits before reporting a leak
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check fails the test if, after waiting up to the settle timeout, more than
// tolerance goroutines remain above the recorded count.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, g.timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until the goroutine count drops to target or timeout passes,
// returning the last count seen.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
