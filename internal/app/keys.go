package app

import (
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"lumen/internal/session"
)

// handleKey processes one key event against the active tab.
func (e *Editor) handleKey(ev *tcell.EventKey) error {
	tab := e.tabs.Active()
	if tab == nil {
		return ErrQuit
	}
	e.statusMsg = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return ErrQuit

	case tcell.KeyCtrlS:
		e.save(tab)

	case tcell.KeyCtrlN:
		e.tabs.Next()

	case tcell.KeyCtrlT:
		e.cycleTheme()

	case tcell.KeyCtrlE:
		e.toggleHighlight()

	case tcell.KeyUp:
		e.view.CursorLine--
	case tcell.KeyDown:
		e.view.CursorLine++
	case tcell.KeyLeft:
		e.moveLeft(tab)
	case tcell.KeyRight:
		e.moveRight(tab)
	case tcell.KeyHome:
		e.view.CursorCol = 0
	case tcell.KeyEnd:
		e.view.CursorCol = len(tab.Doc.Line(e.view.CursorLine))
	case tcell.KeyPgUp:
		_, h := e.screen.Size()
		e.view.CursorLine -= h - 1
	case tcell.KeyPgDn:
		_, h := e.screen.Size()
		e.view.CursorLine += h - 1

	case tcell.KeyEnter:
		tab.Doc.SplitLine(e.view.CursorLine, e.view.CursorCol)
		e.view.CursorLine++
		e.view.CursorCol = 0

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.backspace(tab)

	case tcell.KeyDelete:
		e.deleteForward(tab)

	case tcell.KeyTab:
		tab.Doc.InsertText(e.view.CursorLine, e.view.CursorCol, "\t")
		e.view.CursorCol++

	case tcell.KeyRune:
		text := string(ev.Rune())
		tab.Doc.InsertText(e.view.CursorLine, e.view.CursorCol, text)
		e.view.CursorCol += len(text)
	}

	e.clampCursor(tab)
	return nil
}

func (e *Editor) moveLeft(tab *session.Tab) {
	if e.view.CursorCol > 0 {
		line := tab.Doc.Line(e.view.CursorLine)
		_, size := utf8.DecodeLastRuneInString(line[:e.view.CursorCol])
		e.view.CursorCol -= size
	} else if e.view.CursorLine > 0 {
		e.view.CursorLine--
		e.view.CursorCol = len(tab.Doc.Line(e.view.CursorLine))
	}
}

func (e *Editor) moveRight(tab *session.Tab) {
	line := tab.Doc.Line(e.view.CursorLine)
	if e.view.CursorCol < len(line) {
		_, size := utf8.DecodeRuneInString(line[e.view.CursorCol:])
		e.view.CursorCol += size
	} else if e.view.CursorLine < tab.Doc.LineCount()-1 {
		e.view.CursorLine++
		e.view.CursorCol = 0
	}
}

func (e *Editor) backspace(tab *session.Tab) {
	if e.view.CursorCol > 0 {
		line := tab.Doc.Line(e.view.CursorLine)
		_, size := utf8.DecodeLastRuneInString(line[:e.view.CursorCol])
		tab.Doc.DeleteRange(e.view.CursorLine, e.view.CursorCol-size, e.view.CursorCol)
		e.view.CursorCol -= size
	} else if e.view.CursorLine > 0 {
		prevLen := len(tab.Doc.Line(e.view.CursorLine - 1))
		tab.Doc.JoinLines(e.view.CursorLine - 1)
		e.view.CursorLine--
		e.view.CursorCol = prevLen
	}
}

func (e *Editor) deleteForward(tab *session.Tab) {
	line := tab.Doc.Line(e.view.CursorLine)
	if e.view.CursorCol < len(line) {
		_, size := utf8.DecodeRuneInString(line[e.view.CursorCol:])
		tab.Doc.DeleteRange(e.view.CursorLine, e.view.CursorCol, e.view.CursorCol+size)
	} else if e.view.CursorLine < tab.Doc.LineCount()-1 {
		tab.Doc.JoinLines(e.view.CursorLine)
	}
}

func (e *Editor) save(tab *session.Tab) {
	if tab.Path == "" || tab.Path == "[No Name]" {
		e.statusMsg = "no file name"
		return
	}
	if err := os.WriteFile(tab.Path, []byte(tab.Doc.Text()), 0o644); err != nil {
		e.statusMsg = "save failed: " + err.Error()
		e.logger.Error("saving %s: %v", tab.Path, err)
		return
	}
	e.statusMsg = "saved " + tab.Path
}

// cycleTheme switches to the next theme. Spans stay cached; only the
// style lookup changes, so no re-tokenization happens.
func (e *Editor) cycleTheme() {
	names := e.themes.Names()
	if len(names) == 0 {
		return
	}
	cur := e.themes.Current().Name
	for i, name := range names {
		if name == cur {
			next := names[(i+1)%len(names)]
			e.themes.SetCurrent(next)
			e.cfg.Highlight.Theme = next
			e.statusMsg = "theme: " + next
			return
		}
	}
	e.themes.SetCurrent(names[0])
	e.cfg.Highlight.Theme = names[0]
}

func (e *Editor) toggleHighlight() {
	e.cfg.Highlight.Enabled = !e.cfg.Highlight.Enabled
	e.tabs.SetEnabled(e.cfg.Highlight.Enabled)
	if e.cfg.Highlight.Enabled {
		e.statusMsg = "highlighting on"
	} else {
		e.statusMsg = "highlighting off"
	}
}

// clampCursor keeps the cursor inside the document.
func (e *Editor) clampCursor(tab *session.Tab) {
	if e.view.CursorLine < 0 {
		e.view.CursorLine = 0
	}
	if max := tab.Doc.LineCount() - 1; e.view.CursorLine > max {
		e.view.CursorLine = max
	}
	if e.view.CursorCol < 0 {
		e.view.CursorCol = 0
	}
	if max := len(tab.Doc.Line(e.view.CursorLine)); e.view.CursorCol > max {
		e.view.CursorCol = max
	}
}
