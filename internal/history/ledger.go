// Package history provides the capped in-memory ledger of past project
// outcomes used for bias correction and calibration.
package history

import "github.com/jonathan/project-estimator/internal/types"

// DefaultCapacity is the number of historical projects retained before
// oldest-first eviction begins.
const DefaultCapacity = 100

// Ledger is a fixed-capacity ring of historical project records.
// Appending past capacity evicts the oldest entry in O(1). The zero
// value is not usable; construct with NewLedger.
//
// A Ledger assumes a single logical writer. Give each concurrent
// session its own engine (and therefore its own ledger) rather than
// sharing one across goroutines.
type Ledger struct {
	buf   []types.ProjectData
	head  int // index of the oldest entry
	count int
}

// NewLedger creates a ledger with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{buf: make([]types.ProjectData, capacity)}
}

// Append adds a project record, evicting the oldest entry when the
// ledger is full.
func (l *Ledger) Append(p types.ProjectData) {
	if l.count < len(l.buf) {
		l.buf[(l.head+l.count)%len(l.buf)] = p
		l.count++
		return
	}
	// Full: overwrite the oldest slot and advance the head
	l.buf[l.head] = p
	l.head = (l.head + 1) % len(l.buf)
}

// Len returns the number of retained records.
func (l *Ledger) Len() int {
	return l.count
}

// Capacity returns the maximum number of retained records.
func (l *Ledger) Capacity() int {
	return len(l.buf)
}

// Snapshot returns a defensive copy of the retained records in
// oldest-first insertion order.
func (l *Ledger) Snapshot() []types.ProjectData {
	out := make([]types.ProjectData, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.buf[(l.head+i)%len(l.buf)]
	}
	return out
}
