// Package leaktest checks that code under test does not leave goroutines
// running after it returns.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const pollInterval = 10 * time.Millisecond

// GoroutineChecker records the goroutine count at creation and later waits
// for the count to settle back down
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check polls until at most tolerance extra goroutines remain or timeout
// passes, then fails the test if some still do
func (g *GoroutineChecker) Check(tolerance int, timeout time.Duration) {
	g.t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
			return
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, timeout time.Duration, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0, timeout)
}
