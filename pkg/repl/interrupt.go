// Package repl runs the interactive read-eval-print loop.
package repl

import "sync/atomic"

// Interrupt is a cooperative cancellation flag. It is constructed per loop
// instance and tripped from a signal handler or a test; the loop polls it
// before blocking on input, after input returns, and between typed-out
// reply units.
type Interrupt struct {
	tripped atomic.Bool
}

// NewInterrupt returns an untripped flag.
func NewInterrupt() *Interrupt {
	return &Interrupt{}
}

// Trip sets the flag. Safe to call from any goroutine.
func (i *Interrupt) Trip() {
	i.tripped.Store(true)
}

// Tripped reports whether the flag has been set.
func (i *Interrupt) Tripped() bool {
	return i.tripped.Load()
}
