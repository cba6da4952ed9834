// Package config loads editor settings from TOML files with environment
// variable overrides, and supports live reload of the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds editor settings.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Highlight HighlightConfig `toml:"highlight"`
	Log       LogConfig       `toml:"log"`
}

// EditorConfig holds general editor settings.
type EditorConfig struct {
	TabWidth    int  `toml:"tab_width"`
	LineNumbers bool `toml:"line_numbers"`
}

// HighlightConfig holds syntax highlighting settings.
type HighlightConfig struct {
	Enabled bool   `toml:"enabled"`
	Theme   string `toml:"theme"`
	// ThemeDir holds extra TOML theme files loaded at startup.
	ThemeDir string `toml:"theme_dir"`
	// Languages maps file extensions to language names, overriding the
	// built-in extension table. Keys carry no dot: "jsx" = "javascript".
	Languages map[string]string `toml:"languages"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:    4,
			LineNumbers: true,
		},
		Highlight: HighlightConfig{
			Enabled: true,
			Theme:   "Default Dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lumen.toml"
	}
	return filepath.Join(dir, "lumen", "config.toml")
}

// Load reads configuration from path, applying defaults for anything the
// file omits and environment overrides on top. A missing file is not an
// error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides fields from LUMEN_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LUMEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LUMEN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("LUMEN_THEME"); v != "" {
		cfg.Highlight.Theme = v
	}
	if v := os.Getenv("LUMEN_HIGHLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Highlight.Enabled = b
		}
	}
	if v := os.Getenv("LUMEN_TAB_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Editor.TabWidth = n
		}
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
