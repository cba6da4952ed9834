package syntax

import (
	"sync/atomic"
	"time"
)

// Metrics tracks highlighting work counters. Counters use atomics so a
// status line or debug overlay may read them from another goroutine while
// the engine runs.
type Metrics struct {
	linesTokenized atomic.Uint64
	slices         atomic.Uint64
	sliceTotalNs   atomic.Int64
	jobsStarted    atomic.Uint64
	jobsCompleted  atomic.Uint64
	jobsConverged  atomic.Uint64
	jobsAborted    atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	LinesTokenized uint64
	Slices         uint64
	SliceTotal     time.Duration
	JobsStarted    uint64
	JobsCompleted  uint64
	JobsConverged  uint64
	JobsAborted    uint64
}

func (m *Metrics) recordSlice(lines int, d time.Duration) {
	m.linesTokenized.Add(uint64(lines))
	m.slices.Add(1)
	m.sliceTotalNs.Add(d.Nanoseconds())
}

// Snapshot returns a copy of the current counters. Safe on a nil receiver.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		LinesTokenized: m.linesTokenized.Load(),
		Slices:         m.slices.Load(),
		SliceTotal:     time.Duration(m.sliceTotalNs.Load()),
		JobsStarted:    m.jobsStarted.Load(),
		JobsCompleted:  m.jobsCompleted.Load(),
		JobsConverged:  m.jobsConverged.Load(),
		JobsAborted:    m.jobsAborted.Load(),
	}
}
