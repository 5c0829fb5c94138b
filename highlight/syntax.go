package highlight

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"pound/config"
)

// Rows is the view of a document a highlighter needs: read one row's
// rendered text and replace its highlight array.
type Rows interface {
	RowRender(at int) []rune
	SetHighlight(at int, tags []Tag)
}

// Syntax is the capability set every highlighter implements.
type Syntax interface {
	Extensions() []string
	FileType() string
	CommentToken() string
	SyntaxColor(tag Tag) tcell.Color
	// UpdateSyntax recomputes the full highlight array of row at.
	UpdateSyntax(at int, rows Rows)
	IsSeparator(r rune) bool
}

const separators = ",.()+-/*=~%<>[]{};:&|!^?"

// IsSeparator reports whether r ends a token: whitespace, NUL or one of a
// fixed punctuation set.
func IsSeparator(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// schemeColor maps the non-keyword tags through a color scheme.
func schemeColor(scheme *config.ColorScheme, tag Tag) tcell.Color {
	if scheme == nil {
		scheme = config.Themes["default"]
	}
	switch tag.Kind {
	case Number:
		return scheme.Number
	case String:
		return scheme.String
	case CharLiteral:
		return scheme.CharLiteral
	case Comment:
		return scheme.Comment
	case SearchMatch:
		return scheme.SearchMatch
	case Keyword:
		return tag.Color
	}
	return scheme.Normal
}

// Plain is the highlighter used when no file type is known. Every character
// is Normal, so the highlight array still tracks the render text.
type Plain struct {
	Scheme *config.ColorScheme
}

func (p *Plain) Extensions() []string { return nil }

func (p *Plain) FileType() string { return "" }

func (p *Plain) CommentToken() string { return "" }

func (p *Plain) SyntaxColor(tag Tag) tcell.Color { return schemeColor(p.Scheme, tag) }

func (p *Plain) IsSeparator(r rune) bool { return IsSeparator(r) }

func (p *Plain) UpdateSyntax(at int, rows Rows) {
	rows.SetHighlight(at, Fill(len(rows.RowRender(at))))
}
