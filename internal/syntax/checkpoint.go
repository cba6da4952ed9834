package syntax

// Stride is the fixed interval, in lines, between scanner-state checkpoints.
// It bounds the worst case re-highlight cost per edit to
// O(Stride + divergence length) and the store's memory to
// O(lines / Stride).
const Stride = 128

// Checkpoint is a (line, state) pair: the scanner state at the start of the
// given line. Checkpoints exist only at multiples of Stride.
type Checkpoint struct {
	Line  int
	State ScannerState
}

// CheckpointStore is a sparse map of stride-boundary lines to scanner
// states for one document.
//
// Besides the live checkpoints it retains invalidated states in a shadow
// set: when an edit invalidates the tail of the document, the old states
// still describe the spans committed by the previous pass, and the
// scheduler compares against them to detect convergence. A recorded or
// restored checkpoint supersedes its shadow entry.
//
// A shadow entry at boundary b is only usable if every line at or past b
// still holds spans committed by the pass that recorded b. The engine
// enforces that: states recorded by a pass that was superseded mid-flight,
// or whose forward region holds an unprocessed earlier edit, are dropped
// rather than shadowed.
//
// The store is confined to the goroutine driving the engine; it requires
// no locking.
type CheckpointStore struct {
	states map[int]ScannerState
	prior  map[int]ScannerState
}

// NewCheckpointStore creates an empty store.
func NewCheckpointStore() *CheckpointStore {
	return &CheckpointStore{
		states: make(map[int]ScannerState),
		prior:  make(map[int]ScannerState),
	}
}

// NearestAtOrBefore returns the closest live checkpoint at or before line.
// The store always has a valid anchor: with no closer checkpoint it returns
// the initial-state checkpoint at line 0.
func (s *CheckpointStore) NearestAtOrBefore(line int) Checkpoint {
	for b := (line / Stride) * Stride; b > 0; b -= Stride {
		if st, ok := s.states[b]; ok {
			return Checkpoint{Line: b, State: st}
		}
	}
	if st, ok := s.states[0]; ok {
		return Checkpoint{Line: 0, State: st}
	}
	return Checkpoint{Line: 0, State: StateInitial}
}

// Record stores the state at a stride boundary, overwriting any previous
// checkpoint there. The shadow entry for the line is dropped: the spans at
// and after the line are being rewritten under the new state.
func (s *CheckpointStore) Record(line int, state ScannerState) {
	if line%Stride != 0 {
		return
	}
	s.states[line] = state
	delete(s.prior, line)
}

// Prior returns the invalidated state previously recorded at a boundary,
// if any. Used by the scheduler's convergence check.
func (s *CheckpointStore) Prior(line int) (ScannerState, bool) {
	st, ok := s.prior[line]
	return st, ok
}

// InvalidateFrom drops every checkpoint in the stride containing line and
// all later ones. Checkpoints past the edited line move to the shadow set:
// the spans they anchor are untouched by the edit, so they remain a valid
// reference for convergence. Checkpoints at or before the edited line, and
// shadow entries there, are deleted outright: the region they describe
// includes the edited line, so state equality at them would prove nothing.
func (s *CheckpointStore) InvalidateFrom(line int) {
	boundary := (line / Stride) * Stride
	for l, st := range s.states {
		if l < boundary {
			continue
		}
		delete(s.states, l)
		if l > line {
			s.prior[l] = st
		}
	}
	s.DropPriorsThrough(line)
}

// DropPriorsThrough deletes shadow entries at or before line. Used when
// those entries can no longer witness convergence: their forward region
// contains lines whose committed spans are stale.
func (s *CheckpointStore) DropPriorsThrough(line int) {
	for l := range s.prior {
		if l <= line {
			delete(s.prior, l)
		}
	}
}

// DropPriors discards the entire shadow set. A pass that was superseded
// mid-flight recorded checkpoints without committing spans for the lines
// past where it stopped, so nothing in the shadow set can vouch for the
// document tail afterwards.
func (s *CheckpointStore) DropPriors() {
	s.prior = make(map[int]ScannerState)
}

// RestoreFrom promotes shadow entries after line back to live checkpoints.
// Called on convergence: everything past the converged boundary is known to
// be correctly highlighted from the prior pass.
func (s *CheckpointStore) RestoreFrom(line int) {
	for l, st := range s.prior {
		if l > line {
			s.states[l] = st
			delete(s.prior, l)
		}
	}
}

// Shift renumbers shadow entries for an edit at start that removed
// `removed` lines and inserted `inserted` lines. Entries inside the removed
// range are dropped; entries after it move by the net delta. A moved entry
// that lands off-stride is dropped, which soundly disables convergence for
// shifts that are not a multiple of Stride.
func (s *CheckpointStore) Shift(start, removed, inserted int) {
	delta := inserted - removed
	if delta == 0 {
		return
	}
	shifted := make(map[int]ScannerState, len(s.prior))
	for l, st := range s.prior {
		switch {
		case l <= start:
			shifted[l] = st
		case l < start+removed:
			// Line no longer exists.
		default:
			if n := l + delta; n > start && n%Stride == 0 {
				shifted[n] = st
			}
		}
	}
	s.prior = shifted
}

// Clear drops all checkpoints and shadow entries.
func (s *CheckpointStore) Clear() {
	s.states = make(map[int]ScannerState)
	s.prior = make(map[int]ScannerState)
}

// Len returns the number of live checkpoints.
func (s *CheckpointStore) Len() int {
	return len(s.states)
}
