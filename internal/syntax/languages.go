package syntax

// Bundled grammar definitions. Loaded once into a Registry at startup and
// immutable afterwards.

// GoGrammar returns the grammar for Go.
func GoGrammar() *Grammar {
	g := NewGrammar("go", ".go")

	g.MultiLine("/*", "*/", TokenCommentBlock)
	g.MultiLine("`", "`", TokenString)

	g.Rule(`//.*$`, TokenCommentLine)
	g.Rule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.Rule(`'(?:[^'\\]|\\.)'`, TokenString)
	g.Rule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumberHex)
	g.Rule(`\b0[oO][0-7_]+\b`, TokenNumberOctal)
	g.Rule(`\b0[bB][01_]+\b`, TokenNumberBinary)
	g.Rule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?i?\b`, TokenNumber)

	g.Keywords(TokenKeywordControl,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select")
	g.Keywords(TokenKeywordDeclaration,
		"func", "var", "const", "type", "struct", "interface", "map", "chan")
	g.Keywords(TokenKeywordOther,
		"package", "import", "defer", "go")
	g.Keywords(TokenConstantLanguage,
		"true", "false", "nil", "iota")
	g.Keywords(TokenTypeBuiltin,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	g.Keywords(TokenFunctionBuiltin,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println",
		"real", "imag", "complex", "min", "max", "clear")

	return g
}

// PythonGrammar returns the grammar for Python.
func PythonGrammar() *Grammar {
	g := NewGrammar("python", ".py", ".pyw", ".pyi")

	g.MultiLine(`"""`, `"""`, TokenString)
	g.MultiLine(`'''`, `'''`, TokenString)

	g.Rule(`#.*$`, TokenCommentLine)
	g.Rule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.Rule(`'(?:[^'\\]|\\.)*'`, TokenString)
	g.Rule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	g.Rule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	g.Rule(`\b0[bB][01]+\b`, TokenNumberBinary)
	g.Rule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?j?\b`, TokenNumber)
	g.Rule(`@\w+`, TokenMeta)

	g.Keywords(TokenKeywordControl,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"match", "case")
	g.Keywords(TokenKeywordDeclaration,
		"def", "class", "lambda", "async", "await")
	g.Keywords(TokenKeywordOther,
		"import", "from", "global", "nonlocal", "pass", "yield",
		"assert", "del", "in", "is", "not", "and", "or")
	g.Keywords(TokenConstantLanguage,
		"True", "False", "None")
	g.Keywords(TokenTypeBuiltin,
		"int", "float", "str", "bool", "list", "dict", "set", "tuple",
		"bytes", "bytearray", "complex", "frozenset", "type", "object")
	g.Keywords(TokenFunctionBuiltin,
		"print", "len", "range", "enumerate", "zip", "map", "filter",
		"open", "input", "isinstance", "super", "sorted", "reversed",
		"sum", "abs", "round", "all", "any", "repr", "hash", "id")

	return g
}

// JavaScriptGrammar returns the grammar for JavaScript and TypeScript.
func JavaScriptGrammar() *Grammar {
	g := NewGrammar("javascript", ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs")

	g.MultiLine("/*", "*/", TokenCommentBlock)
	g.MultiLine("`", "`", TokenStringInterpolated)

	g.Rule(`//.*$`, TokenCommentLine)
	g.Rule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.Rule(`'(?:[^'\\]|\\.)*'`, TokenString)
	g.Rule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	g.Rule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	g.Rule(`\b0[bB][01]+\b`, TokenNumberBinary)
	g.Rule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)
	g.Rule(`@\w+`, TokenMeta)

	g.Keywords(TokenKeywordControl,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "throw", "try", "catch", "finally")
	g.Keywords(TokenKeywordDeclaration,
		"function", "var", "let", "const", "class", "extends", "async", "await",
		"type", "interface", "enum", "namespace", "declare")
	g.Keywords(TokenKeywordOther,
		"import", "export", "from", "as", "new", "delete",
		"typeof", "instanceof", "in", "of", "this", "super", "static",
		"get", "set", "yield", "void")
	g.Keywords(TokenConstantLanguage,
		"true", "false", "null", "undefined", "NaN", "Infinity")
	g.Keywords(TokenStorageModifier,
		"public", "private", "protected", "readonly", "abstract", "override")

	return g
}

// RustGrammar returns the grammar for Rust.
func RustGrammar() *Grammar {
	g := NewGrammar("rust", ".rs")

	g.MultiLine("/*", "*/", TokenCommentBlock)

	g.Rule(`//.*$`, TokenCommentLine)
	g.Rule(`"(?:[^"\\]|\\.)*"`, TokenString)
	g.Rule(`r#*"[^"]*"#*`, TokenString)
	g.Rule(`b"(?:[^"\\]|\\.)*"`, TokenString)
	g.Rule(`'(?:[^'\\]|\\.)'`, TokenString)
	g.Rule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumberHex)
	g.Rule(`\b0[oO][0-7_]+\b`, TokenNumberOctal)
	g.Rule(`\b0[bB][01_]+\b`, TokenNumberBinary)
	g.Rule(`\b\d[\d_]*\.?[\d_]*(?:[eE][+-]?[\d_]+)?(?:f32|f64|i\d+|u\d+|isize|usize)?\b`, TokenNumber)
	g.Rule(`#!?\[.*?\]`, TokenMeta)

	g.Keywords(TokenKeywordControl,
		"if", "else", "match", "for", "while", "loop", "break", "continue",
		"return", "yield")
	g.Keywords(TokenKeywordDeclaration,
		"fn", "let", "mut", "const", "static", "struct", "enum", "trait",
		"impl", "type", "mod")
	g.Keywords(TokenKeywordOther,
		"use", "crate", "super", "self", "Self", "pub", "where", "as",
		"async", "await", "dyn", "move", "ref", "unsafe", "extern")
	g.Keywords(TokenConstantLanguage,
		"true", "false", "None", "Some", "Ok", "Err")
	g.Keywords(TokenTypeBuiltin,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result")

	return g
}

// MarkdownGrammar returns the grammar for Markdown.
func MarkdownGrammar() *Grammar {
	g := NewGrammar("markdown", ".md", ".markdown")

	g.MultiLine("```", "```", TokenMarkupCode)

	g.Rule(`^#{1,6}\s+.*$`, TokenMarkupHeading)
	g.Rule(`\*\*[^*]+\*\*`, TokenMarkupBold)
	g.Rule(`__[^_]+__`, TokenMarkupBold)
	g.Rule(`\*[^*]+\*`, TokenMarkupItalic)
	g.Rule(`~~[^~]+~~`, TokenMarkupStrike)
	g.Rule("`[^`]+`", TokenMarkupCode)
	g.Rule(`^>\s+.*$`, TokenMarkupQuote)
	g.Rule(`^\s*[-*+]\s+`, TokenMarkupList)
	g.Rule(`^\s*\d+\.\s+`, TokenMarkupList)
	g.Rule(`\[[^\]]+\]\([^)]+\)`, TokenMarkupLink)

	return g
}
