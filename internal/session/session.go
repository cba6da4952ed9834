// Package session manages open document tabs and the per-document
// highlight engines attached to them.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lumen/internal/document"
	"lumen/internal/syntax"
)

// Tab is one open document with its highlight engine.
type Tab struct {
	ID       uuid.UUID
	Path     string
	Doc      *document.Document
	Engine   *syntax.Engine
	Language string
}

// Manager owns the set of open tabs. Like the engine it is confined to
// the goroutine driving the host loop.
type Manager struct {
	grammars *syntax.Registry
	tabs     []*Tab
	active   int
	wake     func()
	enabled  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithWake sets the callback invoked when any engine wants another Tick.
func WithWake(wake func()) Option {
	return func(m *Manager) {
		m.wake = wake
	}
}

// WithHighlightingDisabled starts all engines with highlighting off.
func WithHighlightingDisabled() Option {
	return func(m *Manager) {
		m.enabled = false
	}
}

// NewManager creates a tab manager resolving languages against grammars.
func NewManager(grammars *syntax.Registry, opts ...Option) *Manager {
	m := &Manager{
		grammars: grammars,
		wake:     func() {},
		enabled:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OpenFile reads a file from disk into a new tab.
func (m *Manager) OpenFile(path string) (*Tab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return m.Open(path, string(data)), nil
}

// Open creates a tab for the given text, detecting the language from the
// path's extension. The new tab becomes active.
func (m *Manager) Open(path, text string) *Tab {
	doc := document.NewFromString(text)
	lang := DetectLanguage(path)

	tab := &Tab{
		ID:       uuid.New(),
		Path:     path,
		Doc:      doc,
		Language: lang,
	}
	var opts []syntax.Option
	opts = append(opts, syntax.WithWake(m.wake))
	if !m.enabled {
		opts = append(opts, syntax.WithHighlightingDisabled())
	}
	tab.Engine = syntax.New(doc, lang, m.grammars, opts...)
	doc.Subscribe(tab.Engine.OnEdit)

	m.tabs = append(m.tabs, tab)
	m.active = len(m.tabs) - 1
	return tab
}

// Close tears down a tab's engine and removes the tab.
func (m *Manager) Close(id uuid.UUID) {
	for i, tab := range m.tabs {
		if tab.ID != id {
			continue
		}
		tab.Engine.Close()
		m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
		if m.active >= len(m.tabs) {
			m.active = len(m.tabs) - 1
		}
		return
	}
}

// Active returns the active tab, or nil with no tabs open.
func (m *Manager) Active() *Tab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

// Next cycles the active tab.
func (m *Manager) Next() {
	if len(m.tabs) > 0 {
		m.active = (m.active + 1) % len(m.tabs)
	}
}

// Tabs returns the open tabs in order.
func (m *Manager) Tabs() []*Tab {
	return m.tabs
}

// Tick pumps highlight work, one engine per slice so a freshly opened
// large file does not starve the others. The active tab gets priority.
// Returns true if any engine still has work.
func (m *Manager) Tick() bool {
	if tab := m.Active(); tab != nil && tab.Engine.IsHighlighting() {
		tab.Engine.Tick()
	} else {
		for _, tab := range m.tabs {
			if tab.Engine.IsHighlighting() {
				tab.Engine.Tick()
				break
			}
		}
	}
	for _, tab := range m.tabs {
		if tab.Engine.IsHighlighting() {
			return true
		}
	}
	return false
}

// SetEnabled toggles highlighting for every open tab.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
	for _, tab := range m.tabs {
		tab.Engine.SetEnabled(enabled)
	}
}

// DetectLanguage maps a file path to a language identifier by extension.
// Returns the extension in filepath.Ext form, dot included; the grammar
// registry resolves either form. An empty string means plain text.
func DetectLanguage(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return ext
}
