// Package theme maps token types to concrete colors and attributes.
// Spans carry token types, not styles, so switching themes restyles a
// document without re-tokenizing it.
package theme

import (
	"lumen/internal/core"
	"lumen/internal/syntax"
)

// Theme defines colors and styles for syntax highlighting.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the editor background color.
	Background core.Color

	// Foreground is the default text color.
	Foreground core.Color

	// Selection is the selection highlight color.
	Selection core.Color

	// LineHighlight is the current line highlight color.
	LineHighlight core.Color

	// TokenStyles maps token types to their styles.
	TokenStyles map[syntax.TokenType]core.Style
}

// StyleFor returns the style for a token type, falling back to the theme's
// default foreground.
func (t *Theme) StyleFor(typ syntax.TokenType) core.Style {
	if style, ok := t.TokenStyles[typ]; ok {
		return style
	}
	return core.NewStyle(t.Foreground)
}

// Registry holds available themes.
type Registry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry creates a registry with the built-in themes, with Default
// Dark current.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	r.Register(DefaultDark())
	r.Register(Monokai())
	r.Register(Dracula())
	r.Register(Light())
	r.current = r.themes["Default Dark"]
	return r
}

// Register adds a theme, replacing any theme with the same name.
func (r *Registry) Register(t *Theme) {
	r.themes[t.Name] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the current theme.
func (r *Registry) Current() *Theme {
	return r.current
}

// SetCurrent sets the current theme by name. Returns false and keeps the
// current theme if the name is unknown.
func (r *Registry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns all registered theme names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	comment := core.RGB(106, 153, 85)
	keyword := core.RGB(86, 156, 214)
	str := core.RGB(206, 145, 120)
	number := core.RGB(181, 206, 168)
	function := core.RGB(220, 220, 170)
	typ := core.RGB(78, 201, 176)
	variable := core.RGB(156, 220, 254)

	return &Theme{
		Name:          "Default Dark",
		Background:    core.RGB(30, 30, 30),
		Foreground:    core.RGB(212, 212, 212),
		Selection:     core.RGB(64, 64, 128),
		LineHighlight: core.RGB(40, 40, 40),
		TokenStyles: map[syntax.TokenType]core.Style{
			syntax.TokenComment:      core.NewStyle(comment).Italic(),
			syntax.TokenCommentLine:  core.NewStyle(comment).Italic(),
			syntax.TokenCommentBlock: core.NewStyle(comment).Italic(),

			syntax.TokenString:             core.NewStyle(str),
			syntax.TokenStringInterpolated: core.NewStyle(str),
			syntax.TokenStringRegexp:       core.NewStyle(str),

			syntax.TokenNumber:       core.NewStyle(number),
			syntax.TokenNumberHex:    core.NewStyle(number),
			syntax.TokenNumberOctal:  core.NewStyle(number),
			syntax.TokenNumberBinary: core.NewStyle(number),

			syntax.TokenKeyword:            core.NewStyle(keyword),
			syntax.TokenKeywordControl:     core.NewStyle(keyword),
			syntax.TokenKeywordDeclaration: core.NewStyle(keyword),
			syntax.TokenKeywordOther:       core.NewStyle(keyword),
			syntax.TokenConstantLanguage:   core.NewStyle(keyword),
			syntax.TokenStorageModifier:    core.NewStyle(keyword),

			syntax.TokenIdentifier:      core.NewStyle(variable),
			syntax.TokenTypeBuiltin:     core.NewStyle(typ),
			syntax.TokenFunctionBuiltin: core.NewStyle(function),
			syntax.TokenMeta:            core.NewStyle(core.RGB(215, 186, 125)),

			syntax.TokenMarkupHeading: core.NewStyle(keyword).Bold(),
			syntax.TokenMarkupBold:    core.DefaultStyle().Bold(),
			syntax.TokenMarkupItalic:  core.DefaultStyle().Italic(),
			syntax.TokenMarkupStrike:  core.DefaultStyle().Strikethrough(),
			syntax.TokenMarkupQuote:   core.NewStyle(comment),
			syntax.TokenMarkupList:    core.NewStyle(keyword),
			syntax.TokenMarkupLink:    core.NewStyle(typ).Underline(),
			syntax.TokenMarkupCode:    core.NewStyle(str),
		},
	}
}

// Monokai returns a Monokai-inspired theme.
func Monokai() *Theme {
	pink := core.RGB(249, 38, 114)
	green := core.RGB(166, 226, 46)
	orange := core.RGB(253, 151, 31)
	yellow := core.RGB(230, 219, 116)
	blue := core.RGB(102, 217, 239)
	purple := core.RGB(174, 129, 255)
	comment := core.RGB(117, 113, 94)
	white := core.RGB(248, 248, 242)

	return &Theme{
		Name:          "Monokai",
		Background:    core.RGB(39, 40, 34),
		Foreground:    white,
		Selection:     core.RGB(73, 72, 62),
		LineHighlight: core.RGB(62, 61, 50),
		TokenStyles: map[syntax.TokenType]core.Style{
			syntax.TokenComment:      core.NewStyle(comment),
			syntax.TokenCommentLine:  core.NewStyle(comment),
			syntax.TokenCommentBlock: core.NewStyle(comment),

			syntax.TokenString:             core.NewStyle(yellow),
			syntax.TokenStringInterpolated: core.NewStyle(yellow),
			syntax.TokenStringRegexp:       core.NewStyle(yellow),

			syntax.TokenNumber:       core.NewStyle(purple),
			syntax.TokenNumberHex:    core.NewStyle(purple),
			syntax.TokenNumberOctal:  core.NewStyle(purple),
			syntax.TokenNumberBinary: core.NewStyle(purple),

			syntax.TokenKeyword:            core.NewStyle(pink),
			syntax.TokenKeywordControl:     core.NewStyle(pink),
			syntax.TokenKeywordDeclaration: core.NewStyle(blue).Italic(),
			syntax.TokenKeywordOther:       core.NewStyle(pink),
			syntax.TokenConstantLanguage:   core.NewStyle(purple),
			syntax.TokenStorageModifier:    core.NewStyle(pink),

			syntax.TokenIdentifier:      core.NewStyle(white),
			syntax.TokenTypeBuiltin:     core.NewStyle(blue).Italic(),
			syntax.TokenFunctionBuiltin: core.NewStyle(green),
			syntax.TokenMeta:            core.NewStyle(orange),

			syntax.TokenMarkupHeading: core.NewStyle(pink).Bold(),
			syntax.TokenMarkupBold:    core.DefaultStyle().Bold(),
			syntax.TokenMarkupItalic:  core.DefaultStyle().Italic(),
			syntax.TokenMarkupCode:    core.NewStyle(yellow),
			syntax.TokenMarkupLink:    core.NewStyle(blue).Underline(),
		},
	}
}

// Dracula returns a Dracula-inspired theme.
func Dracula() *Theme {
	pink := core.RGB(255, 121, 198)
	green := core.RGB(80, 250, 123)
	yellow := core.RGB(241, 250, 140)
	purple := core.RGB(189, 147, 249)
	cyan := core.RGB(139, 233, 253)
	comment := core.RGB(98, 114, 164)
	white := core.RGB(248, 248, 242)

	return &Theme{
		Name:          "Dracula",
		Background:    core.RGB(40, 42, 54),
		Foreground:    white,
		Selection:     core.RGB(68, 71, 90),
		LineHighlight: core.RGB(68, 71, 90),
		TokenStyles: map[syntax.TokenType]core.Style{
			syntax.TokenComment:      core.NewStyle(comment),
			syntax.TokenCommentLine:  core.NewStyle(comment),
			syntax.TokenCommentBlock: core.NewStyle(comment),

			syntax.TokenString:             core.NewStyle(yellow),
			syntax.TokenStringInterpolated: core.NewStyle(yellow),

			syntax.TokenNumber:       core.NewStyle(purple),
			syntax.TokenNumberHex:    core.NewStyle(purple),
			syntax.TokenNumberOctal:  core.NewStyle(purple),
			syntax.TokenNumberBinary: core.NewStyle(purple),

			syntax.TokenKeyword:            core.NewStyle(pink),
			syntax.TokenKeywordControl:     core.NewStyle(pink),
			syntax.TokenKeywordDeclaration: core.NewStyle(pink),
			syntax.TokenKeywordOther:       core.NewStyle(pink),
			syntax.TokenConstantLanguage:   core.NewStyle(purple),
			syntax.TokenStorageModifier:    core.NewStyle(pink),

			syntax.TokenIdentifier:      core.NewStyle(white),
			syntax.TokenTypeBuiltin:     core.NewStyle(cyan).Italic(),
			syntax.TokenFunctionBuiltin: core.NewStyle(green),
			syntax.TokenMeta:            core.NewStyle(purple),

			syntax.TokenMarkupHeading: core.NewStyle(purple).Bold(),
			syntax.TokenMarkupCode:    core.NewStyle(yellow),
			syntax.TokenMarkupLink:    core.NewStyle(cyan).Underline(),
		},
	}
}

// Light returns a light theme.
func Light() *Theme {
	comment := core.RGB(0, 128, 0)
	keyword := core.RGB(0, 0, 255)
	str := core.RGB(163, 21, 21)
	number := core.RGB(9, 134, 88)
	function := core.RGB(121, 94, 38)
	typ := core.RGB(38, 127, 153)
	variable := core.RGB(0, 16, 128)

	return &Theme{
		Name:          "Light",
		Background:    core.RGB(255, 255, 255),
		Foreground:    core.RGB(0, 0, 0),
		Selection:     core.RGB(173, 214, 255),
		LineHighlight: core.RGB(245, 245, 245),
		TokenStyles: map[syntax.TokenType]core.Style{
			syntax.TokenComment:      core.NewStyle(comment).Italic(),
			syntax.TokenCommentLine:  core.NewStyle(comment).Italic(),
			syntax.TokenCommentBlock: core.NewStyle(comment).Italic(),

			syntax.TokenString:             core.NewStyle(str),
			syntax.TokenStringInterpolated: core.NewStyle(str),

			syntax.TokenNumber:       core.NewStyle(number),
			syntax.TokenNumberHex:    core.NewStyle(number),
			syntax.TokenNumberOctal:  core.NewStyle(number),
			syntax.TokenNumberBinary: core.NewStyle(number),

			syntax.TokenKeyword:            core.NewStyle(keyword),
			syntax.TokenKeywordControl:     core.NewStyle(keyword),
			syntax.TokenKeywordDeclaration: core.NewStyle(keyword),
			syntax.TokenKeywordOther:       core.NewStyle(keyword),
			syntax.TokenConstantLanguage:   core.NewStyle(keyword),
			syntax.TokenStorageModifier:    core.NewStyle(keyword),

			syntax.TokenIdentifier:      core.NewStyle(variable),
			syntax.TokenTypeBuiltin:     core.NewStyle(typ),
			syntax.TokenFunctionBuiltin: core.NewStyle(function),
			syntax.TokenMeta:            core.NewStyle(function),

			syntax.TokenMarkupHeading: core.NewStyle(keyword).Bold(),
			syntax.TokenMarkupCode:    core.NewStyle(str),
			syntax.TokenMarkupLink:    core.NewStyle(typ).Underline(),
		},
	}
}
