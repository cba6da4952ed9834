package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize classifies one line of text into styled spans given the scanner
// state carried from the previous line, and returns the state for the next
// line. It is a pure function of its inputs: the same (state, line, grammar)
// always yields the same result, which is what makes checkpoint-based
// incremental re-use valid.
//
// Malformed input never fails: an unterminated construct simply leaves the
// scanner in the construct's continuation state so following lines are
// styled as part of it until a terminator or end of document.
func Tokenize(state ScannerState, line string, g *Grammar) ([]Span, ScannerState) {
	if g == nil || g.plain {
		return defaultLineSpans(len(line)), StateInitial
	}

	var spans []Span
	pos := 0

	if !state.IsInitial() {
		rule, ok := g.continuation(state)
		if !ok {
			// State minted by a different grammar (language switch);
			// treat as initial rather than failing.
			state = StateInitial
		} else {
			idx := strings.Index(line, rule.end)
			if idx < 0 {
				// Whole line remains inside the construct.
				return []Span{{StartCol: 0, EndCol: uint32(len(line)), Type: rule.typ}}, state
			}
			end := idx + len(rule.end)
			spans = append(spans, Span{StartCol: 0, EndCol: uint32(end), Type: rule.typ})
			pos = end
			state = StateInitial
		}
	}

	spans, state = g.scan(spans, line, pos)
	return fillGaps(spans, len(line)), state
}

// scan tokenizes line[pos:] in the initial state, appending to spans.
// At each position the leftmost match wins; multi-line construct openers
// take precedence over regex rules at equal positions.
func (g *Grammar) scan(spans []Span, line string, pos int) ([]Span, ScannerState) {
	for pos < len(line) {
		start, end, typ, next, found := g.leftmost(line, pos)
		if !found {
			break
		}
		spans = g.scanWords(spans, line, pos, start)
		spans = append(spans, Span{StartCol: uint32(start), EndCol: uint32(end), Type: typ})
		pos = end
		if !next.IsInitial() {
			// Construct is open to end of line.
			return spans, next
		}
	}
	spans = g.scanWords(spans, line, pos, len(line))
	return spans, StateInitial
}

// leftmost finds the earliest rule match at or after pos.
func (g *Grammar) leftmost(line string, pos int) (start, end int, typ TokenType, next ScannerState, found bool) {
	start = len(line)

	for i, ml := range g.multiLine {
		idx := strings.Index(line[pos:], ml.start)
		if idx < 0 {
			continue
		}
		s := pos + idx
		if s >= start {
			continue
		}
		body := s + len(ml.start)
		if e := strings.Index(line[body:], ml.end); e >= 0 {
			start, end = s, body+e+len(ml.end)
			next = StateInitial
		} else {
			start, end = s, len(line)
			next = stateForRule(i)
		}
		typ, found = ml.typ, true
	}

	for _, r := range g.rules {
		loc := r.Pattern.FindStringIndex(line[pos:])
		if loc == nil || loc[1] == loc[0] {
			continue
		}
		s := pos + loc[0]
		if s >= start {
			continue
		}
		start, end = s, pos+loc[1]
		typ, next, found = r.Type, StateInitial, true
	}

	return start, end, typ, next, found
}

// scanWords classifies identifier-like words in line[from:to], mapping
// keywords to their classes and everything else word-shaped to
// TokenIdentifier.
func (g *Grammar) scanWords(spans []Span, line string, from, to int) []Span {
	i := from
	for i < to {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !isWordStart(r) {
			i += size
			continue
		}
		start := i
		for i < to {
			r, size = utf8.DecodeRuneInString(line[i:])
			if !isWordPart(r) {
				break
			}
			i += size
		}
		word := line[start:i]
		typ := TokenIdentifier
		if kw, ok := g.keywords[word]; ok {
			typ = kw
		}
		spans = append(spans, Span{StartCol: uint32(start), EndCol: uint32(i), Type: typ})
	}
	return spans
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// fillGaps inserts default spans so the result covers the full line.
// Spans arrive in ascending order and non-overlapping by construction.
func fillGaps(spans []Span, lineLen int) []Span {
	if lineLen == 0 {
		return defaultLineSpans(0)
	}
	out := make([]Span, 0, len(spans)+4)
	var col uint32
	for _, sp := range spans {
		if sp.StartCol > col {
			out = append(out, Span{StartCol: col, EndCol: sp.StartCol, Type: TokenNone})
		}
		out = append(out, sp)
		col = sp.EndCol
	}
	if col < uint32(lineLen) {
		out = append(out, Span{StartCol: col, EndCol: uint32(lineLen), Type: TokenNone})
	}
	return out
}
