// Package term renders documents to the terminal through tcell. It owns
// style conversion between the editor's core types and tcell, and posts
// wake events so highlight work can resume on the event loop.
package term

import (
	"github.com/gdamore/tcell/v2"

	"lumen/internal/core"
)

// Screen wraps a tcell screen with editor-level primitives.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnablePaste()
	return &Screen{screen: screen}, nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// SetContent places a rune at a cell with the given style.
func (s *Screen) SetContent(x, y int, r rune, style core.Style) {
	s.screen.SetContent(x, y, r, nil, convertStyle(style))
}

// Fill clears the screen to the given style.
func (s *Screen) Fill(style core.Style) {
	s.screen.Fill(' ', convertStyle(style))
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// ShowCursor places the hardware cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Wake posts an interrupt event so a blocked PollEvent returns and the
// loop can run pending highlight work. Safe to call from any goroutine.
func (s *Screen) Wake() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// HasTrueColor reports whether the terminal supports 24-bit color.
func (s *Screen) HasTrueColor() bool {
	return s.screen.Colors() > 256
}

// convertStyle converts a core.Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
