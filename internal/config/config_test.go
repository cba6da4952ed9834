package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg.Editor.TabWidth != want.Editor.TabWidth || cfg.Highlight.Theme != want.Highlight.Theme {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 8

[highlight]
enabled = false
theme = "Monokai"

[highlight.languages]
jsx = "javascript"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d", cfg.Editor.TabWidth)
	}
	if cfg.Highlight.Enabled {
		t.Error("Enabled should be false")
	}
	if cfg.Highlight.Theme != "Monokai" {
		t.Errorf("Theme = %q", cfg.Highlight.Theme)
	}
	if cfg.Highlight.Languages["jsx"] != "javascript" {
		t.Errorf("Languages = %v", cfg.Highlight.Languages)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	// Omitted sections keep defaults.
	if !cfg.Editor.LineNumbers {
		t.Error("LineNumbers default lost")
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "editor = [broken")
	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("Path = %q", perr.Path)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[highlight]
theme = "Monokai"
`)
	t.Setenv("LUMEN_THEME", "Dracula")
	t.Setenv("LUMEN_TAB_WIDTH", "2")
	t.Setenv("LUMEN_HIGHLIGHT", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Highlight.Theme != "Dracula" {
		t.Errorf("env override lost, Theme = %q", cfg.Highlight.Theme)
	}
	if cfg.Editor.TabWidth != 2 {
		t.Errorf("TabWidth = %d", cfg.Editor.TabWidth)
	}
	if cfg.Highlight.Enabled {
		t.Error("LUMEN_HIGHLIGHT=false ignored")
	}
}

func TestWatcherReload(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 4
`)
	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config, err error) {
		if err == nil {
			select {
			case reloaded <- cfg:
			default:
			}
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Editor.TabWidth != 8 {
			t.Errorf("reloaded TabWidth = %d, want 8", cfg.Editor.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
