package highlight

import (
	"path/filepath"
	"slices"
	"strings"

	"pound/config"
)

// Registry holds the known syntax tables in priority order.
type Registry struct {
	scheme    *config.ColorScheme
	languages []Syntax
	// Fallback enables chroma lexers for extensions no table claims.
	Fallback bool
}

// NewRegistry returns a registry preloaded with the built-in languages.
func NewRegistry(scheme *config.ColorScheme) *Registry {
	r := &Registry{scheme: scheme, Fallback: true}
	r.Register(Rust(scheme))
	r.Register(Go(scheme))
	r.Register(C(scheme))
	r.Register(Python(scheme))
	return r
}

func (r *Registry) Register(s Syntax) {
	r.languages = append(r.languages, s)
}

// Select returns the first registered syntax claiming ext, or nil.
func (r *Registry) Select(ext string) Syntax {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return nil
	}
	for _, s := range r.languages {
		if slices.Contains(s.Extensions(), ext) {
			return s
		}
	}
	return nil
}

// SelectPath picks a syntax for a file path: a table match on the
// extension first, then a chroma lexer, then nil.
func (r *Registry) SelectPath(path string) Syntax {
	if path == "" {
		return nil
	}
	if s := r.Select(filepath.Ext(path)); s != nil {
		return s
	}
	if !r.Fallback {
		return nil
	}
	if ls := NewLexerSyntax(path, r.scheme); ls != nil {
		return ls
	}
	return nil
}

// Plain returns the highlighter for unknown file types.
func (r *Registry) Plain() Syntax {
	return &Plain{Scheme: r.scheme}
}
