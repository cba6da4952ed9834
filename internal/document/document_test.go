package document

import "testing"

type edit struct {
	line, removed, inserted int
}

func recordEdits(d *Document) *[]edit {
	var edits []edit
	d.Subscribe(func(line, removed, inserted int) {
		edits = append(edits, edit{line, removed, inserted})
	})
	return &edits
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"crlf normalized", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"bare cr normalized", "a\rb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromString(tt.text)
			if d.LineCount() != len(tt.want) {
				t.Fatalf("LineCount() = %d, want %d", d.LineCount(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := d.Line(i); got != want {
					t.Errorf("Line(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLineOutOfRange(t *testing.T) {
	d := NewFromString("only")
	if got := d.Line(-1); got != "" {
		t.Errorf("Line(-1) = %q", got)
	}
	if got := d.Line(5); got != "" {
		t.Errorf("Line(5) = %q", got)
	}
}

func TestSetLine(t *testing.T) {
	d := NewFromString("a\nb")
	edits := recordEdits(d)

	d.SetLine(1, "changed")
	if d.Line(1) != "changed" {
		t.Errorf("Line(1) = %q", d.Line(1))
	}
	if len(*edits) != 1 || (*edits)[0] != (edit{1, 1, 1}) {
		t.Errorf("edits = %v, want [{1 1 1}]", *edits)
	}
}

func TestInsertAndDeleteLines(t *testing.T) {
	d := NewFromString("a\nd")
	edits := recordEdits(d)

	d.InsertLines(1, "b", "c")
	if d.Text() != "a\nb\nc\nd" {
		t.Fatalf("after insert: %q", d.Text())
	}
	d.DeleteLines(1, 2)
	if d.Text() != "a\nd" {
		t.Fatalf("after delete: %q", d.Text())
	}
	want := []edit{{1, 0, 2}, {1, 2, 0}}
	if len(*edits) != len(want) {
		t.Fatalf("edits = %v, want %v", *edits, want)
	}
	for i := range want {
		if (*edits)[i] != want[i] {
			t.Errorf("edit %d = %v, want %v", i, (*edits)[i], want[i])
		}
	}
}

func TestDeleteAllLinesLeavesOne(t *testing.T) {
	d := NewFromString("a\nb")
	edits := recordEdits(d)

	d.DeleteLines(0, 2)
	if d.LineCount() != 1 || d.Line(0) != "" {
		t.Errorf("document should hold one empty line, got %q", d.Text())
	}
	if len(*edits) != 1 || (*edits)[0] != (edit{0, 2, 1}) {
		t.Errorf("edits = %v, want [{0 2 1}]", *edits)
	}
}

func TestInsertText(t *testing.T) {
	t.Run("within a line", func(t *testing.T) {
		d := NewFromString("hello world")
		edits := recordEdits(d)

		d.InsertText(0, 5, ",")
		if d.Line(0) != "hello, world" {
			t.Errorf("Line(0) = %q", d.Line(0))
		}
		if len(*edits) != 1 || (*edits)[0] != (edit{0, 1, 1}) {
			t.Errorf("edits = %v", *edits)
		}
	})

	t.Run("with newlines", func(t *testing.T) {
		d := NewFromString("ab")
		edits := recordEdits(d)

		d.InsertText(0, 1, "x\ny")
		if d.Text() != "ax\nyb" {
			t.Errorf("Text() = %q", d.Text())
		}
		if len(*edits) != 1 || (*edits)[0] != (edit{0, 1, 2}) {
			t.Errorf("edits = %v, want [{0 1 2}]", *edits)
		}
	})
}

func TestSplitAndJoin(t *testing.T) {
	d := NewFromString("hello world")

	d.SplitLine(0, 5)
	if d.Text() != "hello\n world" {
		t.Fatalf("after split: %q", d.Text())
	}
	d.JoinLines(0)
	if d.Text() != "hello world" {
		t.Fatalf("after join: %q", d.Text())
	}
}

func TestDeleteRange(t *testing.T) {
	d := NewFromString("hello world")
	d.DeleteRange(0, 5, 11)
	if d.Line(0) != "hello" {
		t.Errorf("Line(0) = %q", d.Line(0))
	}
}
