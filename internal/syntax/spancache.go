package syntax

// SpanCache holds the latest committed token spans per line for one
// document. Lines are written whole: a line's span list is replaced only
// after the full line has been tokenized, so a reader never observes a
// partially styled line.
//
// A nil entry means the line has never been highlighted since its last
// invalidation; the engine substitutes a full-line default span.
type SpanCache struct {
	lines [][]Span
}

// NewSpanCache creates a cache sized for lineCount lines.
func NewSpanCache(lineCount int) *SpanCache {
	return &SpanCache{lines: make([][]Span, lineCount)}
}

// Spans returns the committed spans for a line, or nil if the line has
// never been highlighted or is out of range.
func (c *SpanCache) Spans(line int) []Span {
	if line < 0 || line >= len(c.lines) {
		return nil
	}
	return c.lines[line]
}

// Set commits the spans for one line.
func (c *SpanCache) Set(line int, spans []Span) {
	if line < 0 {
		return
	}
	if line >= len(c.lines) {
		c.grow(line + 1)
	}
	c.lines[line] = spans
}

// Splice adjusts the cache for an edit at start that removed `removed`
// lines and inserted `inserted` lines. Inserted lines start out
// unhighlighted; lines after the edit keep their committed spans at their
// new positions until the scheduler rewrites them.
func (c *SpanCache) Splice(start, removed, inserted int) {
	if start < 0 || start > len(c.lines) {
		return
	}
	if end := start + removed; end > len(c.lines) {
		removed = len(c.lines) - start
	}
	tail := c.lines[start+removed:]
	next := make([][]Span, 0, start+inserted+len(tail))
	next = append(next, c.lines[:start]...)
	next = append(next, make([][]Span, inserted)...)
	next = append(next, tail...)
	c.lines = next
}

// LineCount returns the number of lines tracked.
func (c *SpanCache) LineCount() int {
	return len(c.lines)
}

// Clear drops all committed spans and resizes to lineCount lines.
func (c *SpanCache) Clear(lineCount int) {
	c.lines = make([][]Span, lineCount)
}

func (c *SpanCache) grow(n int) {
	next := make([][]Span, n)
	copy(next, c.lines)
	c.lines = next
}
