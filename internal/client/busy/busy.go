// Package busy holds the process-wide in-flight indicator that views toggle
// around every network call and the UI renders as a blocking overlay.
package busy

import "sync/atomic"

// Indicator is a plain boolean, not a reference count: when two operations
// overlap, the first Hide clears the indicator even though the second is
// still outstanding. That imprecision is inherited deliberately; see the
// open questions in DESIGN.md before changing the semantics.
type Indicator struct {
	busy atomic.Bool
}

func NewIndicator() *Indicator { return &Indicator{} }

// Show marks at least one operation as in flight.
func (i *Indicator) Show() { i.busy.Store(true) }

// Hide clears the indicator unconditionally.
func (i *Indicator) Hide() { i.busy.Store(false) }

// IsBusy reports whether the indicator is currently shown.
func (i *Indicator) IsBusy() bool { return i.busy.Load() }
