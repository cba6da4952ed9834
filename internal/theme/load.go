package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"lumen/internal/core"
	"lumen/internal/syntax"
)

// themeFile is the TOML shape of a user theme:
//
//	name = "My Theme"
//	background = "#1e1e1e"
//	foreground = "#d4d4d4"
//
//	[tokens."comment"]
//	fg = "#6a9955"
//	italic = true
type themeFile struct {
	Name          string                `toml:"name"`
	Background    string                `toml:"background"`
	Foreground    string                `toml:"foreground"`
	Selection     string                `toml:"selection"`
	LineHighlight string                `toml:"line_highlight"`
	Tokens        map[string]tokenStyle `toml:"tokens"`
}

type tokenStyle struct {
	FG            string `toml:"fg"`
	BG            string `toml:"bg"`
	Bold          bool   `toml:"bold"`
	Italic        bool   `toml:"italic"`
	Underline     bool   `toml:"underline"`
	Strikethrough bool   `toml:"strikethrough"`
}

// LoadFile reads a theme from a TOML file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme from TOML data. Unknown token scopes are skipped;
// a theme is usable even when it styles only a few scopes.
func Parse(data []byte) (*Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	if tf.Name == "" {
		return nil, fmt.Errorf("theme has no name")
	}

	t := &Theme{
		Name:        tf.Name,
		Background:  parseColor(tf.Background, core.ColorDefault),
		Foreground:  parseColor(tf.Foreground, core.ColorDefault),
		Selection:   parseColor(tf.Selection, core.ColorDefault),
		TokenStyles: make(map[syntax.TokenType]core.Style, len(tf.Tokens)),
	}
	t.LineHighlight = parseColor(tf.LineHighlight, t.Background)

	for scope, ts := range tf.Tokens {
		typ, ok := syntax.TokenTypeFromScope(scope)
		if !ok {
			continue
		}
		style := core.NewStyle(parseColor(ts.FG, t.Foreground))
		if ts.BG != "" {
			style = style.WithBackground(parseColor(ts.BG, core.ColorDefault))
		}
		if ts.Bold {
			style = style.Bold()
		}
		if ts.Italic {
			style = style.Italic()
		}
		if ts.Underline {
			style = style.Underline()
		}
		if ts.Strikethrough {
			style = style.Strikethrough()
		}
		t.TokenStyles[typ] = style
	}
	return t, nil
}

// LoadDir registers every *.toml theme in dir. Unreadable or malformed
// files are skipped and reported; themes are cosmetic, a bad file must not
// prevent startup.
func LoadDir(r *Registry, dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{err}
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Register(t)
	}
	return errs
}

func parseColor(s string, fallback core.Color) core.Color {
	if s == "" {
		return fallback
	}
	c, err := core.ParseHex(s)
	if err != nil {
		return fallback
	}
	return c
}
