// Package document provides the line-based text store the highlight engine
// reads from. It is deliberately simple: the engine only needs line access
// and edit notifications with line granularity.
package document

import "strings"

// EditListener is notified after lines [line, line+removed) have been
// replaced by `inserted` lines. An in-place modification of a single line
// reports removed=1, inserted=1.
type EditListener func(line, removed, inserted int)

// Document is an ordered sequence of lines of text. It is confined to the
// goroutine driving the editor loop; methods clamp out-of-range arguments
// instead of failing, because an editor keystroke must never error out.
type Document struct {
	lines     []string
	listeners []EditListener
}

// New creates an empty single-line document.
func New() *Document {
	return &Document{lines: []string{""}}
}

// NewFromString creates a document from text. Line endings are normalized
// to LF; a document always has at least one line.
func NewFromString(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return &Document{lines: strings.Split(text, "\n")}
}

// Line returns the text of the line at index, without line ending.
// Out-of-range indexes return the empty string.
func (d *Document) Line(index int) string {
	if index < 0 || index >= len(d.lines) {
		return ""
	}
	return d.lines[index]
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Text returns the full document text with LF line endings.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Subscribe registers a listener for edit notifications.
func (d *Document) Subscribe(fn EditListener) {
	d.listeners = append(d.listeners, fn)
}

// SetLine replaces the text of one line.
func (d *Document) SetLine(index int, text string) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	d.lines[index] = text
	d.notify(index, 1, 1)
}

// InsertLines inserts lines before index.
func (d *Document) InsertLines(index int, lines ...string) {
	if len(lines) == 0 {
		return
	}
	index = clamp(index, 0, len(d.lines))
	next := make([]string, 0, len(d.lines)+len(lines))
	next = append(next, d.lines[:index]...)
	next = append(next, lines...)
	next = append(next, d.lines[index:]...)
	d.lines = next
	d.notify(index, 0, len(lines))
}

// DeleteLines removes n lines starting at index. A document never becomes
// empty; deleting every line leaves one empty line.
func (d *Document) DeleteLines(index, n int) {
	if n <= 0 || index < 0 || index >= len(d.lines) {
		return
	}
	if index+n > len(d.lines) {
		n = len(d.lines) - index
	}
	d.lines = append(d.lines[:index], d.lines[index+n:]...)
	if len(d.lines) == 0 {
		d.lines = []string{""}
		d.notify(0, n, 1)
		return
	}
	d.notify(index, n, 0)
}

// InsertText inserts text at a byte column within a line. Text containing
// newlines splits the line.
func (d *Document) InsertText(index, col int, text string) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	line := d.lines[index]
	col = clamp(col, 0, len(line))
	combined := line[:col] + text + line[col:]
	parts := strings.Split(combined, "\n")
	if len(parts) == 1 {
		d.lines[index] = parts[0]
		d.notify(index, 1, 1)
		return
	}
	next := make([]string, 0, len(d.lines)+len(parts)-1)
	next = append(next, d.lines[:index]...)
	next = append(next, parts...)
	next = append(next, d.lines[index+1:]...)
	d.lines = next
	d.notify(index, 1, len(parts))
}

// SplitLine breaks a line in two at a byte column.
func (d *Document) SplitLine(index, col int) {
	d.InsertText(index, col, "\n")
}

// JoinLines joins the line at index with the following line.
func (d *Document) JoinLines(index int) {
	if index < 0 || index+1 >= len(d.lines) {
		return
	}
	d.lines[index] += d.lines[index+1]
	d.lines = append(d.lines[:index+1], d.lines[index+2:]...)
	d.notify(index, 2, 1)
}

// DeleteRange removes bytes [startCol, endCol) from one line.
func (d *Document) DeleteRange(index, startCol, endCol int) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	line := d.lines[index]
	startCol = clamp(startCol, 0, len(line))
	endCol = clamp(endCol, startCol, len(line))
	if startCol == endCol {
		return
	}
	d.lines[index] = line[:startCol] + line[endCol:]
	d.notify(index, 1, 1)
}

func (d *Document) notify(line, removed, inserted int) {
	for _, fn := range d.listeners {
		fn(line, removed, inserted)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
