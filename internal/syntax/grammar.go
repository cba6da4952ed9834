package syntax

import "regexp"

// Rule matches a single-line lexical element.
type Rule struct {
	// Pattern is the regex pattern to match.
	Pattern *regexp.Regexp

	// Type is the token type assigned to matches.
	Type TokenType
}

// multiLineRule describes a construct that may span lines, such as a block
// comment or a raw string. Its index in Grammar.multiLine determines the
// ScannerState used while the construct is open.
type multiLineRule struct {
	start string
	end   string
	typ   TokenType
}

// Grammar is an immutable per-language lexical ruleset. Build one with the
// fluent Rule/Keywords/MultiLine methods at startup and treat it as read-only
// afterwards; Tokenize never mutates it, so a Grammar is safe to share.
type Grammar struct {
	name       string
	extensions []string
	rules      []Rule
	keywords   map[string]TokenType
	multiLine  []multiLineRule
	plain      bool
}

// NewGrammar creates an empty grammar for the given language name and
// file extensions (with leading dots).
func NewGrammar(name string, extensions ...string) *Grammar {
	return &Grammar{
		name:       name,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// Rule adds a single-line regex rule. Rules are tried in insertion order;
// at any position the leftmost match wins.
func (g *Grammar) Rule(pattern string, typ TokenType) *Grammar {
	g.rules = append(g.rules, Rule{
		Pattern: regexp.MustCompile(pattern),
		Type:    typ,
	})
	return g
}

// Keywords assigns a token type to the given words.
func (g *Grammar) Keywords(typ TokenType, words ...string) *Grammar {
	for _, w := range words {
		g.keywords[w] = typ
	}
	return g
}

// MultiLine adds a construct delimited by start and end that may span lines.
func (g *Grammar) MultiLine(start, end string, typ TokenType) *Grammar {
	g.multiLine = append(g.multiLine, multiLineRule{
		start: start,
		end:   end,
		typ:   typ,
	})
	return g
}

// Name returns the language name.
func (g *Grammar) Name() string {
	return g.name
}

// Extensions returns the file extensions this grammar handles.
func (g *Grammar) Extensions() []string {
	return g.extensions
}

// IsPlainText returns true for the degenerate single-style grammar.
func (g *Grammar) IsPlainText() bool {
	return g.plain
}

// continuation returns the multi-line rule for an open state, or false if
// the state does not belong to this grammar (possible after a language
// switch; callers treat it as initial).
func (g *Grammar) continuation(s ScannerState) (multiLineRule, bool) {
	idx := ruleForState(s)
	if idx < 0 || idx >= len(g.multiLine) {
		return multiLineRule{}, false
	}
	return g.multiLine[idx], true
}

// PlainText returns the degenerate grammar: every line is one default-style
// span. Used as the fallback when no grammar matches a language.
func PlainText() *Grammar {
	return &Grammar{
		name:     "plaintext",
		keywords: make(map[string]TokenType),
		plain:    true,
	}
}
