package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"lumen/internal/core"
	"lumen/internal/session"
	"lumen/internal/theme"
)

// View draws a tab's document into a screen region. Spans address byte
// columns within a line; the view maps them to screen cells, expanding
// tabs and accounting for wide runes.
type View struct {
	TabWidth    int
	LineNumbers bool

	// TopLine is the first document line shown.
	TopLine int

	// Cursor position, line and byte column.
	CursorLine int
	CursorCol  int
}

// ScrollTo keeps the cursor line within the given viewport height.
func (v *View) ScrollTo(height int) {
	if height <= 0 {
		return
	}
	if v.CursorLine < v.TopLine {
		v.TopLine = v.CursorLine
	}
	if v.CursorLine >= v.TopLine+height {
		v.TopLine = v.CursorLine - height + 1
	}
	if v.TopLine < 0 {
		v.TopLine = 0
	}
}

// Draw renders the visible lines of a tab, leaving the bottom row for the
// status line.
func (v *View) Draw(scr *Screen, tab *session.Tab, th *theme.Theme) {
	width, height := scr.Size()
	if width <= 0 || height <= 1 {
		return
	}
	textHeight := height - 1

	base := core.DefaultStyle().WithBackground(th.Background)
	scr.Fill(base)

	gutter := 0
	if v.LineNumbers {
		gutter = numberWidth(tab.Doc.LineCount()) + 1
	}

	v.ScrollTo(textHeight)

	for row := 0; row < textHeight; row++ {
		line := v.TopLine + row
		if line >= tab.Doc.LineCount() {
			break
		}

		lineBg := th.Background
		if line == v.CursorLine {
			lineBg = th.LineHighlight
		}

		if v.LineNumbers {
			numStyle := core.NewStyle(th.Foreground.Darken(0.4)).WithBackground(lineBg)
			num := fmt.Sprintf("%*d ", gutter-1, line+1)
			x := 0
			for _, r := range num {
				scr.SetContent(x, row, r, numStyle)
				x++
			}
		}

		v.drawLine(scr, tab, th, line, row, gutter, width, lineBg)

		if line == v.CursorLine && lineBg != th.Background {
			pad := core.DefaultStyle().WithBackground(lineBg)
			for x := gutter + v.lineWidth(tab.Doc.Line(line)); x < width; x++ {
				scr.SetContent(x, row, ' ', pad)
			}
		}
	}

	cx := gutter + v.columnX(tab.Doc.Line(v.CursorLine), v.CursorCol)
	cy := v.CursorLine - v.TopLine
	if cy >= 0 && cy < textHeight && cx < width {
		scr.ShowCursor(cx, cy)
	} else {
		scr.HideCursor()
	}
}

// DrawStatus renders the status line on the bottom row.
func (v *View) DrawStatus(scr *Screen, tab *session.Tab, th *theme.Theme, msg string) {
	width, height := scr.Size()
	if height < 1 {
		return
	}
	row := height - 1
	style := core.NewStyle(th.Background).WithBackground(th.Foreground)

	status := fmt.Sprintf(" %s  %s  %d:%d", tab.Path, tab.Engine.Language(), v.CursorLine+1, v.CursorCol+1)
	if tab.Engine.IsHighlighting() {
		status += "  highlighting..."
	}
	if msg != "" {
		status += "  " + msg
	}

	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		scr.SetContent(x, row, r, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		scr.SetContent(x, row, ' ', style)
	}
}

// drawLine renders one document line using the engine's committed spans.
func (v *View) drawLine(scr *Screen, tab *session.Tab, th *theme.Theme, line, row, gutter, width int, bg core.Color) {
	text := tab.Doc.Line(line)
	spans := tab.Engine.SpansFor(line)

	x := gutter
	byteCol := 0
	spanIdx := 0
	for byteCol < len(text) && x < width {
		for spanIdx < len(spans) && byteCol >= int(spans[spanIdx].EndCol) {
			spanIdx++
		}
		style := core.NewStyle(th.Foreground)
		if spanIdx < len(spans) && byteCol >= int(spans[spanIdx].StartCol) {
			style = th.StyleFor(spans[spanIdx].Type)
		}
		if style.Background.IsDefault() {
			style = style.WithBackground(bg)
		}

		r, size := utf8.DecodeRuneInString(text[byteCol:])
		if r == '\t' {
			stop := v.nextTabStop(x - gutter)
			for x-gutter < stop && x < width {
				scr.SetContent(x, row, ' ', style)
				x++
			}
		} else {
			scr.SetContent(x, row, r, style)
			x += runewidth.RuneWidth(r)
		}
		byteCol += size
	}
}

// columnX returns the screen x offset of a byte column within a line.
func (v *View) columnX(text string, col int) int {
	x := 0
	for i := 0; i < col && i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\t' {
			x = v.nextTabStop(x)
		} else {
			x += runewidth.RuneWidth(r)
		}
		i += size
	}
	return x
}

func (v *View) lineWidth(text string) int {
	return v.columnX(text, len(text))
}

func (v *View) nextTabStop(x int) int {
	w := v.TabWidth
	if w <= 0 {
		w = 4
	}
	return (x/w + 1) * w
}

func numberWidth(lineCount int) int {
	w := 1
	for lineCount >= 10 {
		lineCount /= 10
		w++
	}
	if w < 3 {
		w = 3
	}
	return w
}
