package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lumen/internal/syntax"
)

func bigSource(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("x := 1 // line\n")
	}
	return b.String()
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", ".go"},
		{"a/b/script.py", ".py"},
		{"Notes.MD", ".MD"},
		{"README", ""},
		{"archive.tar.gz", ".gz"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOpenDetectsLanguage(t *testing.T) {
	m := NewManager(syntax.DefaultRegistry())

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"script.py", "python"},
		{"lib/app.ts", "javascript"},
		{"notes.md", "markdown"},
		{"README", "plaintext"},
		{"data.xyz", "plaintext"},
	}
	for _, tt := range tests {
		tab := m.Open(tt.path, "hello\n")
		if got := tab.Engine.Language(); got != tt.want {
			t.Errorf("Open(%q) language = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(syntax.DefaultRegistry())
	tab, err := m.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Doc.Line(0) != "package main" {
		t.Errorf("Line(0) = %q", tab.Doc.Line(0))
	}
	if tab.Engine.Language() != "go" {
		t.Errorf("language = %q", tab.Engine.Language())
	}
	if _, err := m.OpenFile(filepath.Join(t.TempDir(), "missing.go")); err == nil {
		t.Error("missing file should error")
	}
}

func TestEditsReachEngine(t *testing.T) {
	m := NewManager(syntax.DefaultRegistry())
	tab := m.Open("a.go", "x := 1\ny := 2\n")

	tab.Doc.SetLine(0, "x := 1 // changed")
	for tab.Engine.Tick() {
	}

	spans := tab.Engine.SpansFor(0)
	found := false
	for _, sp := range spans {
		if sp.Type == syntax.TokenCommentLine {
			found = true
		}
	}
	if !found {
		t.Errorf("edit did not re-highlight, spans = %v", spans)
	}
}

func TestCloseAndNext(t *testing.T) {
	m := NewManager(syntax.DefaultRegistry())
	a := m.Open("a.go", "")
	b := m.Open("b.go", "")

	if m.Active() != b {
		t.Fatal("newest tab should be active")
	}
	m.Next()
	if m.Active() != a {
		t.Error("Next should cycle back to the first tab")
	}

	m.Close(a.ID)
	if len(m.Tabs()) != 1 || m.Active() != b {
		t.Errorf("after close: %d tabs, active %v", len(m.Tabs()), m.Active())
	}
	m.Close(b.ID)
	if m.Active() != nil {
		t.Error("no tabs should mean no active tab")
	}
}

func TestTickPumpsOneEngineAtATime(t *testing.T) {
	woken := 0
	m := NewManager(syntax.DefaultRegistry(), WithWake(func() { woken++ }))
	src := bigSource(syntax.LargeFileThreshold + 1000)
	a := m.Open("a.go", src)
	b := m.Open("b.go", src)

	if !a.Engine.IsHighlighting() || !b.Engine.IsHighlighting() {
		t.Fatal("large files should highlight in the background")
	}
	if woken == 0 {
		t.Error("opening large files should request ticks")
	}

	m.Tick()
	total := a.Engine.Metrics().LinesTokenized + b.Engine.Metrics().LinesTokenized
	if total != syntax.Batch {
		t.Errorf("one Tick tokenized %d lines, want one slice of %d", total, syntax.Batch)
	}

	for m.Tick() {
	}
	if a.Engine.IsHighlighting() || b.Engine.IsHighlighting() {
		t.Error("all engines should finish")
	}
}

func TestSetEnabled(t *testing.T) {
	m := NewManager(syntax.DefaultRegistry(), WithHighlightingDisabled())
	tab := m.Open("a.go", "func main() {}\n")

	if tab.Engine.Enabled() {
		t.Fatal("manager option should start engines disabled")
	}
	m.SetEnabled(true)
	for tab.Engine.Tick() {
	}
	if !tab.Engine.Enabled() {
		t.Error("SetEnabled(true) did not reach the engine")
	}
	spans := tab.Engine.SpansFor(0)
	if len(spans) < 2 {
		t.Errorf("enabled engine should produce styled spans, got %v", spans)
	}
}
