// File: cancel.go
// Role: cooperative cancellation, checked only between outer iterations
// (never mid-step). Deliberately not a package-level global: callers
// construct one and pass it to RunMultiThreaded, wiring it to whatever
// signal source they have (an OS interrupt handler, a context, a test).
package driver

import "sync/atomic"

// CancelFlag is a concurrency-safe one-shot cancellation signal.
type CancelFlag struct {
	cancelled atomic.Bool
}

// NewCancelFlag returns a CancelFlag in the not-cancelled state.
func NewCancelFlag() *CancelFlag {
	return &CancelFlag{}
}

// Cancel sets the flag. Safe to call from any goroutine, any number of
// times.
func (f *CancelFlag) Cancel() {
	f.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (f *CancelFlag) Cancelled() bool {
	return f.cancelled.Load()
}
