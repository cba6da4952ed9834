package syntax

import (
	"fmt"
	"testing"
)

// testDoc is a minimal in-memory document for engine tests. Edits go
// through the helpers so the engine sees the same notifications a real
// document would send.
type testDoc struct {
	lines []string
}

func (d *testDoc) Line(index int) string {
	if index < 0 || index >= len(d.lines) {
		return ""
	}
	return d.lines[index]
}

func (d *testDoc) LineCount() int {
	return len(d.lines)
}

func (d *testDoc) setLine(e *Engine, index int, text string) {
	d.lines[index] = text
	e.OnEdit(index, 1, 1)
}

func (d *testDoc) insertLines(e *Engine, index int, lines ...string) {
	d.lines = append(d.lines[:index], append(append([]string{}, lines...), d.lines[index:]...)...)
	e.OnEdit(index, 0, len(lines))
}

func (d *testDoc) deleteLines(e *Engine, index, n int) {
	d.lines = append(d.lines[:index], d.lines[index+n:]...)
	e.OnEdit(index, n, 0)
}

func drain(e *Engine) {
	for e.Tick() {
	}
}

func goDoc(n int) *testDoc {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("x%d := %d // note", i, i)
	}
	return &testDoc{lines: lines}
}

// sameSpans fails unless both engines report identical spans for every
// line of the document.
func sameSpans(t *testing.T, got, want *Engine, lineCount int) {
	t.Helper()
	for line := 0; line < lineCount; line++ {
		g, w := got.SpansFor(line), want.SpansFor(line)
		if len(g) != len(w) {
			t.Fatalf("line %d: %d spans, want %d (%v vs %v)", line, len(g), len(w), g, w)
		}
		for i := range g {
			if g[i] != w[i] {
				t.Fatalf("line %d span %d: %v, want %v", line, i, g[i], w[i])
			}
		}
	}
}

func TestEngineSmallDocSynchronous(t *testing.T) {
	doc := &testDoc{lines: []string{
		"package main",
		`import "fmt"`,
		"func main() {",
		`	fmt.Println("hi")`,
		"}",
	}}
	e := New(doc, "go", DefaultRegistry())

	if e.IsHighlighting() {
		t.Error("small document should be fully highlighted on open")
	}
	spans := e.SpansFor(0)
	if got := spanAt(t, spans, 0).Type; got != TokenKeywordOther {
		t.Errorf("'package' classified as %v", got)
	}
	if m := e.Metrics(); m.LinesTokenized != uint64(doc.LineCount()) {
		t.Errorf("LinesTokenized = %d, want %d", m.LinesTokenized, doc.LineCount())
	}
}

func TestEngineLargeDocChunked(t *testing.T) {
	doc := goDoc(LargeFileThreshold + 3000)
	woken := 0
	e := New(doc, "go", DefaultRegistry(), WithWake(func() { woken++ }))

	if !e.IsHighlighting() {
		t.Fatal("large document should be scheduled, not drained in New")
	}
	if woken == 0 {
		t.Error("engine should request a tick for the initial pass")
	}
	if e.SpansFor(doc.LineCount() - 1)[0].Type != TokenNone {
		t.Error("unhighlighted tail should read as default spans")
	}

	ticks := 0
	for e.Tick() {
		ticks++
	}
	if want := (doc.LineCount() + Batch - 1) / Batch; ticks+1 != want {
		t.Errorf("ran %d slices, want %d", ticks+1, want)
	}
	if e.IsHighlighting() {
		t.Error("still highlighting after drain")
	}
	m := e.Metrics()
	if m.LinesTokenized != uint64(doc.LineCount()) {
		t.Errorf("LinesTokenized = %d, want %d", m.LinesTokenized, doc.LineCount())
	}
	if m.JobsCompleted != 1 {
		t.Errorf("JobsCompleted = %d, want 1", m.JobsCompleted)
	}
}

func TestEngineEditEquivalence(t *testing.T) {
	doc := goDoc(600)
	e := New(doc, "go", DefaultRegistry())

	doc.setLine(e, 300, `s := "changed line"`)
	drain(e)

	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineConvergence(t *testing.T) {
	doc := goDoc(10000)
	e := New(doc, "go", DefaultRegistry())
	drain(e)

	before := e.Metrics().LinesTokenized

	// The edit leaves the line's exit state unchanged, so the pass resumes
	// at the checkpoint for line 128 and stops at the next boundary.
	doc.setLine(e, 200, "y2 := 99 // changed")
	drain(e)

	m := e.Metrics()
	if m.JobsConverged != 1 {
		t.Fatalf("JobsConverged = %d, want 1", m.JobsConverged)
	}
	if got := m.LinesTokenized - before; got != Stride {
		t.Errorf("re-tokenized %d lines, want %d (anchor 128 to boundary 256)", got, Stride)
	}

	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	drain(fresh)
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineUnterminatedConstructPropagates(t *testing.T) {
	doc := goDoc(400)
	e := New(doc, "go", DefaultRegistry())

	doc.setLine(e, 10, "v := 1 /* open")
	drain(e)

	for _, line := range []int{11, 200, 399} {
		spans := e.SpansFor(line)
		if len(spans) != 1 || spans[0].Type != TokenCommentBlock {
			t.Fatalf("line %d should be swallowed by the open comment, got %v", line, spans)
		}
	}

	doc.setLine(e, 12, "closed */ w := 2")
	drain(e)

	if got := spanAt(t, e.SpansFor(11), 0).Type; got != TokenCommentBlock {
		t.Errorf("line 11 stays inside the comment, got %v", got)
	}
	if got := spanAt(t, e.SpansFor(13), 0).Type; got == TokenCommentBlock {
		t.Error("line 13 should be code again after the terminator")
	}

	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineEditDuringJob(t *testing.T) {
	doc := goDoc(10000)
	e := New(doc, "go", DefaultRegistry())
	drain(e)

	// First edit opens a comment; run one partial slice, then a second
	// edit closes it again before the first pass finishes.
	doc.setLine(e, 50, "a := 1 /* open")
	e.Tick()
	if !e.IsHighlighting() {
		t.Fatal("pass over 10k lines should span multiple slices")
	}
	doc.setLine(e, 50, "a := 1")
	drain(e)

	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	drain(fresh)
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineEditDuringJobRunsToEnd(t *testing.T) {
	doc := goDoc(8000)
	e := New(doc, "go", DefaultRegistry())
	drain(e)

	// Open a comment and let its pass cover one slice, then land an
	// unrelated edit below it. The half-finished pass recorded in-comment
	// checkpoints but never rewrote the tail; if the recovery pass accepted
	// them as convergence witnesses it would stop at the first boundary and
	// leave every line past the slice un-commented.
	doc.setLine(e, 10, "v := 1 /* open")
	e.Tick()
	if !e.IsHighlighting() {
		t.Fatal("pass over 8k lines should span multiple slices")
	}
	before := e.Metrics()
	doc.setLine(e, 5, "w := 2")
	drain(e)

	m := e.Metrics()
	if got := m.JobsAborted - before.JobsAborted; got != 1 {
		t.Errorf("JobsAborted delta = %d, want 1", got)
	}
	if got := m.JobsConverged - before.JobsConverged; got != 0 {
		t.Errorf("JobsConverged delta = %d, want 0", got)
	}
	for _, line := range []int{2000, 2500, 7999} {
		spans := e.SpansFor(line)
		if len(spans) != 1 || spans[0].Type != TokenCommentBlock {
			t.Fatalf("line %d should be inside the open comment, got %v", line, spans)
		}
	}

	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	drain(fresh)
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineCollapseBelowPendingEdit(t *testing.T) {
	doc := goDoc(10000)
	e := New(doc, "go", DefaultRegistry())
	drain(e)

	// The second edit collapses below the first before any tick runs. The
	// collapsed pass must still rewrite the first edit's line: boundaries
	// between the two edits cannot witness convergence, but boundaries
	// past the upper edit can.
	doc.setLine(e, 5000, `s := "edited"`)
	doc.setLine(e, 300, "b := 2")
	before := e.Metrics().JobsConverged
	drain(e)

	if got := e.Metrics().JobsConverged - before; got != 1 {
		t.Errorf("JobsConverged delta = %d, want 1", got)
	}
	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	drain(fresh)
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineInsertAndDeleteLines(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		doc := goDoc(500)
		e := New(doc, "go", DefaultRegistry())

		doc.insertLines(e, 100, `s := "one"`, "// two", "n := 3")
		drain(e)

		fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
		sameSpans(t, e, fresh, doc.LineCount())
	})

	t.Run("delete", func(t *testing.T) {
		doc := goDoc(500)
		e := New(doc, "go", DefaultRegistry())

		doc.deleteLines(e, 100, 57)
		drain(e)

		fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
		sameSpans(t, e, fresh, doc.LineCount())
	})
}

func TestEnginePlainTextFallback(t *testing.T) {
	doc := &testDoc{lines: []string{"just some text", "func is not special"}}
	e := New(doc, "nosuchlang", DefaultRegistry())

	if e.Language() != "plaintext" {
		t.Errorf("Language() = %q, want plain fallback", e.Language())
	}
	if e.IsHighlighting() {
		t.Error("plain text needs no highlight pass")
	}
	spans := e.SpansFor(1)
	if len(spans) != 1 || spans[0].Type != TokenNone {
		t.Errorf("plain line spans = %v", spans)
	}
	if m := e.Metrics(); m.JobsStarted != 0 {
		t.Errorf("JobsStarted = %d, want 0", m.JobsStarted)
	}

	// Edits on a plain-text document schedule nothing either.
	doc.setLine(e, 0, "still just text")
	drain(e)
	if m := e.Metrics(); m.JobsStarted != 0 {
		t.Errorf("JobsStarted = %d after edit, want 0", m.JobsStarted)
	}
}

func TestEngineLanguageChange(t *testing.T) {
	doc := &testDoc{lines: []string{"# heading or comment", "def f():", "    return 1"}}
	e := New(doc, ".md", DefaultRegistry())

	if got := spanAt(t, e.SpansFor(0), 0).Type; got != TokenMarkupHeading {
		t.Fatalf("markdown heading classified as %v", got)
	}

	e.OnLanguageChanged("python")
	drain(e)

	if e.Language() != "python" {
		t.Errorf("Language() = %q after switch", e.Language())
	}
	if got := spanAt(t, e.SpansFor(0), 0).Type; got != TokenCommentLine {
		t.Errorf("python comment classified as %v", got)
	}
	if got := spanAt(t, e.SpansFor(1), 0).Type; got != TokenKeywordDeclaration {
		t.Errorf("def classified as %v", got)
	}
}

func TestEngineSetEnabled(t *testing.T) {
	doc := &testDoc{lines: []string{"func main() {}"}}
	e := New(doc, "go", DefaultRegistry())

	e.SetEnabled(false)
	if e.Enabled() {
		t.Fatal("Enabled() after disable")
	}
	spans := e.SpansFor(0)
	if len(spans) != 1 || spans[0].Type != TokenNone {
		t.Errorf("disabled engine should serve default spans, got %v", spans)
	}

	e.SetEnabled(true)
	drain(e)
	if got := spanAt(t, e.SpansFor(0), 0).Type; got != TokenKeywordDeclaration {
		t.Errorf("re-enabled engine classified func as %v", got)
	}
}

func TestEngineCollapsesPendingEdits(t *testing.T) {
	doc := goDoc(10000)
	e := New(doc, "go", DefaultRegistry())
	drain(e)

	// Several edits between ticks collapse into one pass from the lowest
	// affected line.
	doc.setLine(e, 5000, "a := 1")
	doc.setLine(e, 300, "b := 2")
	doc.setLine(e, 7000, "c := 3")
	before := e.Metrics().JobsStarted
	drain(e)

	if started := e.Metrics().JobsStarted - before; started != 1 {
		t.Errorf("started %d jobs for a burst of edits, want 1", started)
	}
	fresh := New(&testDoc{lines: append([]string{}, doc.lines...)}, "go", DefaultRegistry())
	drain(fresh)
	sameSpans(t, e, fresh, doc.LineCount())
}

func TestEngineClose(t *testing.T) {
	doc := goDoc(100)
	e := New(doc, "go", DefaultRegistry())
	e.Close()

	if e.IsHighlighting() {
		t.Error("closed engine reports work")
	}
	e.OnEdit(0, 1, 1)
	if e.Tick() {
		t.Error("closed engine accepted work")
	}
}
