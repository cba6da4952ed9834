package syntax

import "strings"

// Registry maps language identifiers and file extensions to grammars.
// It is populated once at process start and read-only afterwards.
type Registry struct {
	byLanguage  map[string]*Grammar
	byExtension map[string]*Grammar
}

// NewRegistry creates an empty grammar registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]*Grammar),
		byExtension: make(map[string]*Grammar),
	}
}

// DefaultRegistry returns a registry with the bundled grammars.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(GoGrammar())
	r.Register(PythonGrammar())
	r.Register(JavaScriptGrammar())
	r.Register(RustGrammar())
	r.Register(MarkdownGrammar())
	return r
}

// Register adds a grammar. A language or extension registered twice keeps
// the first registration (first match wins).
func (r *Registry) Register(g *Grammar) {
	if _, ok := r.byLanguage[g.Name()]; !ok {
		r.byLanguage[g.Name()] = g
	}
	for _, ext := range g.Extensions() {
		if _, ok := r.byExtension[ext]; !ok {
			r.byExtension[ext] = g
		}
	}
}

// Lookup resolves a language identifier or a file extension to a grammar.
// Returns ErrUnsupportedLanguage if nothing matches; callers are expected
// to fall back to PlainText rather than fail, since highlighting is a
// presentational enhancement.
func (r *Registry) Lookup(id string) (*Grammar, error) {
	if g, ok := r.byLanguage[id]; ok {
		return g, nil
	}
	if g, ok := r.byExtension[normalizeExt(id)]; ok {
		return g, nil
	}
	return nil, ErrUnsupportedLanguage
}

// LookupOrPlain resolves like Lookup but returns the plain-text grammar
// instead of an error.
func (r *Registry) LookupOrPlain(id string) *Grammar {
	g, err := r.Lookup(id)
	if err != nil {
		return PlainText()
	}
	return g
}

// Languages returns the registered language names.
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.byLanguage))
	for name := range r.byLanguage {
		names = append(names, name)
	}
	return names
}

func normalizeExt(ext string) string {
	if ext == "" {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
