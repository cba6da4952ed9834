// Package syntax implements incremental syntax highlighting: per-line
// tokenization with carried scanner state, sparse state checkpoints, and a
// cooperative scheduler that keeps large documents responsive under editing.
package syntax

import "strings"

// TokenType represents the semantic type of a token.
// These follow TextMate/VS Code scope naming conventions at a high level.
type TokenType uint16

// Token types emitted by the bundled grammars. TokenNone doubles as the
// default (plain text) style.
const (
	TokenNone TokenType = iota

	// Comments
	TokenComment
	TokenCommentLine
	TokenCommentBlock

	// Strings
	TokenString
	TokenStringInterpolated
	TokenStringRegexp

	// Numbers
	TokenNumber
	TokenNumberHex
	TokenNumberOctal
	TokenNumberBinary

	// Keywords
	TokenKeyword
	TokenKeywordControl
	TokenKeywordDeclaration
	TokenKeywordOther

	// Identifiers
	TokenIdentifier
	TokenConstantLanguage

	// Types and functions
	TokenTypeBuiltin
	TokenFunctionBuiltin

	// Storage
	TokenStorageModifier

	// Markup (markdown)
	TokenMarkupHeading
	TokenMarkupBold
	TokenMarkupItalic
	TokenMarkupStrike
	TokenMarkupQuote
	TokenMarkupList
	TokenMarkupLink
	TokenMarkupCode

	// Special
	TokenMeta

	// Sentinel for iteration
	tokenTypeCount
)

// tokenTypeNames maps token types to their scope-style names.
var tokenTypeNames = []string{
	TokenNone:               "none",
	TokenComment:            "comment",
	TokenCommentLine:        "comment.line",
	TokenCommentBlock:       "comment.block",
	TokenString:             "string",
	TokenStringInterpolated: "string.interpolated",
	TokenStringRegexp:       "string.regexp",
	TokenNumber:             "number",
	TokenNumberHex:          "number.hex",
	TokenNumberOctal:        "number.octal",
	TokenNumberBinary:       "number.binary",
	TokenKeyword:            "keyword",
	TokenKeywordControl:     "keyword.control",
	TokenKeywordDeclaration: "keyword.declaration",
	TokenKeywordOther:       "keyword.other",
	TokenIdentifier:         "identifier",
	TokenConstantLanguage:   "constant.language",
	TokenTypeBuiltin:        "type.builtin",
	TokenFunctionBuiltin:    "function.builtin",
	TokenStorageModifier:    "storage.modifier",
	TokenMarkupHeading:      "markup.heading",
	TokenMarkupBold:         "markup.bold",
	TokenMarkupItalic:       "markup.italic",
	TokenMarkupStrike:       "markup.strike",
	TokenMarkupQuote:        "markup.quote",
	TokenMarkupList:         "markup.list",
	TokenMarkupLink:         "markup.link",
	TokenMarkupCode:         "markup.code",
	TokenMeta:               "meta",
}

// String returns the scope-style name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// scopeToToken maps scope names back to token types.
var scopeToToken = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenTypeNames))
	for i, name := range tokenTypeNames {
		if name != "" {
			m[name] = TokenType(i)
		}
	}
	return m
}()

// TokenTypeFromScope converts a scope name like "comment.line" or
// "keyword.control" to a TokenType. Unknown scopes fall back to their
// parent scope ("string.fancy" resolves to "string"); a scope with no
// known parent yields TokenNone and false.
func TokenTypeFromScope(scope string) (TokenType, bool) {
	for scope != "" {
		if t, ok := scopeToToken[scope]; ok {
			return t, true
		}
		i := strings.LastIndexByte(scope, '.')
		if i < 0 {
			break
		}
		scope = scope[:i]
	}
	return TokenNone, false
}

// Span is a styled sub-range of a single line, in byte columns.
// Spans for a line are sorted by StartCol, non-overlapping, and together
// cover the full line (an empty line carries one zero-width span).
type Span struct {
	// StartCol is the starting column (0-indexed, byte offset).
	StartCol uint32

	// EndCol is the ending column (exclusive).
	EndCol uint32

	// Type selects the style for this span.
	Type TokenType
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	return s.EndCol - s.StartCol
}

// Contains returns true if the column is within the span.
func (s Span) Contains(col uint32) bool {
	return col >= s.StartCol && col < s.EndCol
}

// defaultLineSpans returns the spans for a line that has never been
// highlighted: a single default span covering the whole line.
func defaultLineSpans(lineLen int) []Span {
	return []Span{{StartCol: 0, EndCol: uint32(lineLen), Type: TokenNone}}
}
