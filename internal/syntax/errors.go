package syntax

import "errors"

// Errors returned by the syntax package. None of them is fatal to the host:
// an unsupported language degrades to plain-text styling.
var (
	// ErrUnsupportedLanguage indicates no grammar is registered for the
	// requested language identifier or file extension.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
