// Package leaktest flags goroutines that outlive the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Checker snapshots the goroutine count at creation time.
type Checker struct {
	before int
	t      testing.TB
}

// New records the current goroutine count. Call before starting the code
// under test.
func New(t testing.TB) *Checker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &Checker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines survived.
// Waits briefly first so goroutines mid-exit can finish.
func (c *Checker) Check(tolerance int) {
	c.t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - c.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			c.t.Errorf("goroutine leak: before=%d after=%d (tolerance=%d)",
				c.before, c.before+leaked, tolerance)
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// CheckNone runs fn and fails the test if it leaves any goroutine behind.
func CheckNone(t *testing.T, fn func()) {
	t.Helper()

	c := New(t)
	fn()
	c.Check(0)
}
