package syntax

// ScannerState is the context carried from one line to the next so that
// multi-line constructs (block comments, raw strings) tokenize correctly.
// It is a flat value compared with ==, which keeps convergence checks O(1).
//
// StateInitial means "no open construct". Any other value identifies the
// multi-line rule of the active grammar that is open at the line boundary.
type ScannerState uint16

// StateInitial is the scanner state at the start of line 0 of any document.
const StateInitial ScannerState = 0

// IsInitial returns true if no multi-line construct is open.
func (s ScannerState) IsInitial() bool {
	return s == StateInitial
}

// stateForRule maps a multi-line rule index to its continuation state.
func stateForRule(ruleIndex int) ScannerState {
	return ScannerState(ruleIndex + 1)
}

// ruleForState maps a continuation state back to a multi-line rule index.
// Returns -1 for StateInitial.
func ruleForState(s ScannerState) int {
	return int(s) - 1
}
