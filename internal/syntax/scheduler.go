package syntax

import "time"

// Batch is the maximum number of lines tokenized per scheduling slice
// before control is yielded back to the host loop.
const Batch = 2000

// DocumentReader is the engine's read-only view of the host document.
// The engine never mutates the document; it only reads lines and reacts
// to edit notifications.
type DocumentReader interface {
	// Line returns the text of the line at index (without line ending).
	Line(index int) string

	// LineCount returns the current number of lines.
	LineCount() int
}

// job is the resume token for an in-flight highlight pass: everything
// needed to continue after a yield.
type job struct {
	next       int          // next line to tokenize
	state      ScannerState // scanner state entering next
	startLine  int          // anchor the job started from
	generation uint64
}

// scheduler drives repeated tokenization over a line range in bounded
// slices. It owns no policy: the engine decides when to schedule and what
// the current generation is; the scheduler fences every slice against it.
type scheduler struct {
	doc         DocumentReader
	spans       *SpanCache
	checkpoints *CheckpointStore
	grammar     *Grammar
	metrics     *Metrics
	job         *job
}

// schedule replaces any in-flight job with a new one starting at the
// anchor checkpoint. The range end is open: the job runs to end of
// document unless it converges first.
func (s *scheduler) schedule(anchor Checkpoint, generation uint64) {
	s.job = &job{
		next:       anchor.Line,
		state:      anchor.State,
		startLine:  anchor.Line,
		generation: generation,
	}
	s.metrics.jobsStarted.Add(1)
}

// active reports whether a job is in flight.
func (s *scheduler) active() bool {
	return s.job != nil
}

// cancel abandons any in-flight job without recording an abort.
func (s *scheduler) cancel() {
	s.job = nil
}

// abort abandons the in-flight job as superseded by an edit.
func (s *scheduler) abort() {
	if s.job != nil {
		s.job = nil
		s.metrics.jobsAborted.Add(1)
	}
}

// runSlice processes at most Batch lines of the current job and returns
// true when no further slices are needed. A job whose generation is no
// longer current aborts before writing anything.
func (s *scheduler) runSlice(current uint64) bool {
	j := s.job
	if j == nil {
		return true
	}
	if j.generation != current {
		s.job = nil
		s.metrics.jobsAborted.Add(1)
		return true
	}

	start := time.Now()
	processed := 0
	lineCount := s.doc.LineCount()

	for j.next < lineCount && processed < Batch {
		line := j.next

		if line%Stride == 0 {
			if line > j.startLine {
				if prev, ok := s.checkpoints.Prior(line); ok && prev == j.state {
					// Converged: the state entering this boundary matches the
					// pre-invalidation pass, so everything downstream is
					// already correctly highlighted.
					s.checkpoints.Record(line, j.state)
					s.checkpoints.RestoreFrom(line)
					s.job = nil
					s.metrics.jobsConverged.Add(1)
					s.metrics.recordSlice(processed, time.Since(start))
					return true
				}
			}
			s.checkpoints.Record(line, j.state)
		}

		spans, next := Tokenize(j.state, s.doc.Line(line), s.grammar)
		s.spans.Set(line, spans)
		j.state = next
		j.next++
		processed++
	}

	s.metrics.recordSlice(processed, time.Since(start))

	if j.next >= lineCount {
		s.job = nil
		s.metrics.jobsCompleted.Add(1)
		return true
	}
	return false
}
