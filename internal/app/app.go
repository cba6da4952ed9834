// Package app wires the editor together: configuration, logging, themes,
// open tabs, and the terminal event loop that pumps highlight work.
package app

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"lumen/internal/config"
	"lumen/internal/log"
	"lumen/internal/session"
	"lumen/internal/syntax"
	"lumen/internal/term"
	"lumen/internal/theme"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures the editor at startup.
type Options struct {
	ConfigPath string
	LogLevel   string
	Theme      string
	Files      []string
}

// Editor is the running application.
type Editor struct {
	cfg     config.Config
	logger  *log.Logger
	screen  *term.Screen
	tabs    *session.Manager
	themes  *theme.Registry
	view    term.View
	watcher *config.Watcher

	statusMsg string
	logFile   *os.File

	// mu guards pendingCfg and the watcher goroutine's view of screen;
	// everything else is touched only on the event-loop goroutine.
	mu         sync.Mutex
	pendingCfg *config.Config
}

// New builds an editor from options. The terminal is not touched until Run.
func New(opts Options) (*Editor, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Theme != "" {
		cfg.Highlight.Theme = opts.Theme
	}

	e := &Editor{cfg: cfg}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		e.logFile = f
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ParseLevel(cfg.Log.Level)
		logCfg.Output = f
		e.logger = log.New(logCfg)
	} else {
		// The terminal owns stderr once tcell starts; drop logs unless a
		// file is configured.
		e.logger = log.Null
	}

	e.themes = theme.NewRegistry()
	if cfg.Highlight.ThemeDir != "" {
		for _, err := range theme.LoadDir(e.themes, cfg.Highlight.ThemeDir) {
			e.logger.Warn("loading themes from %s: %v", cfg.Highlight.ThemeDir, err)
		}
	}
	if !e.themes.SetCurrent(cfg.Highlight.Theme) {
		e.logger.Warn("unknown theme %q, using default", cfg.Highlight.Theme)
	}

	grammars := syntax.DefaultRegistry()

	var mgrOpts []session.Option
	if !cfg.Highlight.Enabled {
		mgrOpts = append(mgrOpts, session.WithHighlightingDisabled())
	}
	mgrOpts = append(mgrOpts, session.WithWake(func() {
		if e.screen != nil {
			e.screen.Wake()
		}
	}))
	e.tabs = session.NewManager(grammars, mgrOpts...)

	for _, file := range opts.Files {
		tab, err := e.tabs.OpenFile(file)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				e.Close()
				return nil, err
			}
			tab = e.tabs.Open(file, "")
		}
		e.applyLanguageOverride(tab)
	}
	if len(e.tabs.Tabs()) == 0 {
		e.tabs.Open("[No Name]", "")
	}

	e.view = term.View{
		TabWidth:    cfg.Editor.TabWidth,
		LineNumbers: cfg.Editor.LineNumbers,
	}

	if w, err := config.NewWatcher(path, e.onConfigReload); err == nil {
		e.watcher = w
	} else {
		e.logger.Debug("config watch unavailable: %v", err)
	}

	return e, nil
}

// applyLanguageOverride re-resolves a tab's language through the config's
// extension overrides.
func (e *Editor) applyLanguageOverride(tab *session.Tab) {
	ext := session.DetectLanguage(tab.Path)
	if len(ext) > 1 && ext[0] == '.' {
		ext = ext[1:]
	}
	if lang, ok := e.cfg.Highlight.Languages[ext]; ok {
		tab.Language = lang
		tab.Engine.OnLanguageChanged(lang)
	}
}

// onConfigReload parks a changed config for the event loop. It runs on the
// watcher's debounce goroutine, so it must not touch live editor state;
// applyConfig picks the config up after the wake.
func (e *Editor) onConfigReload(cfg config.Config, err error) {
	if err != nil {
		e.logger.Warn("config reload: %v", err)
		return
	}
	e.mu.Lock()
	e.pendingCfg = &cfg
	scr := e.screen
	e.mu.Unlock()
	if scr != nil {
		scr.Wake()
	}
}

// Run starts the terminal and processes events until quit.
func (e *Editor) Run() error {
	screen, err := term.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	e.mu.Lock()
	e.screen = screen
	e.mu.Unlock()
	defer screen.Fini()

	e.logger.Info("editor started, %d tab(s)", len(e.tabs.Tabs()))
	e.draw()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := e.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case *tcell.EventResize:
			// Redraw below.
		case *tcell.EventInterrupt:
			// Highlight work pending.
		case nil:
			return nil
		}

		e.applyConfig()
		if e.tabs.Tick() {
			screen.Wake()
		}
		e.draw()
	}
}

// applyConfig drains any parked reload and folds the config into live
// state. Runs on the event-loop goroutine.
func (e *Editor) applyConfig() {
	e.mu.Lock()
	if e.pendingCfg != nil {
		e.cfg = *e.pendingCfg
		e.pendingCfg = nil
	}
	e.mu.Unlock()
	cfg := e.cfg
	e.view.TabWidth = cfg.Editor.TabWidth
	e.view.LineNumbers = cfg.Editor.LineNumbers
	if cur := e.themes.Current(); cur.Name != cfg.Highlight.Theme {
		if e.themes.SetCurrent(cfg.Highlight.Theme) {
			e.statusMsg = "theme: " + cfg.Highlight.Theme
		}
	}
	if tab := e.tabs.Active(); tab != nil && tab.Engine.Enabled() != cfg.Highlight.Enabled {
		e.tabs.SetEnabled(cfg.Highlight.Enabled)
	}
}

func (e *Editor) draw() {
	tab := e.tabs.Active()
	if tab == nil {
		return
	}
	th := e.themes.Current()
	e.clampCursor(tab)
	e.view.Draw(e.screen, tab, th)
	e.view.DrawStatus(e.screen, tab, th, e.statusMsg)
	e.screen.Show()
}

// Close releases resources outside the terminal.
func (e *Editor) Close() {
	if e.watcher != nil {
		_ = e.watcher.Close()
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}
