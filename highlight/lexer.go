package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"

	"pound/config"
)

// lexerCacheSize caps how many distinct row texts a LexerSyntax remembers.
const lexerCacheSize = 1024

// LexerSyntax highlights file types without a built-in table by running a
// chroma lexer over each row on its own. Multi-line constructs are therefore
// seen one row at a time, same as the table languages.
type LexerSyntax struct {
	lexer  chroma.Lexer
	name   string
	exts   []string
	scheme *config.ColorScheme
	cache  map[string][]Tag
}

// NewLexerSyntax returns a LexerSyntax for filename, or nil when chroma has
// no lexer for it.
func NewLexerSyntax(filename string, scheme *config.ColorScheme) *LexerSyntax {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return nil
	}
	cfg := lexer.Config()
	if cfg == nil {
		return nil
	}
	var exts []string
	for _, pattern := range cfg.Filenames {
		if strings.HasPrefix(pattern, "*.") {
			exts = append(exts, strings.TrimPrefix(pattern, "*."))
		}
	}
	return &LexerSyntax{
		lexer:  chroma.Coalesce(lexer),
		name:   strings.ToLower(cfg.Name),
		exts:   exts,
		scheme: scheme,
		cache:  make(map[string][]Tag),
	}
}

func (l *LexerSyntax) Extensions() []string { return l.exts }

func (l *LexerSyntax) FileType() string { return l.name }

func (l *LexerSyntax) CommentToken() string { return "" }

func (l *LexerSyntax) IsSeparator(r rune) bool { return IsSeparator(r) }

func (l *LexerSyntax) SyntaxColor(tag Tag) tcell.Color {
	if tag.Kind == Keyword && tag.Color == tcell.ColorDefault {
		scheme := l.scheme
		if scheme == nil {
			scheme = config.Themes["default"]
		}
		return scheme.Keyword
	}
	return schemeColor(l.scheme, tag)
}

func (l *LexerSyntax) UpdateSyntax(at int, rows Rows) {
	rows.SetHighlight(at, l.Scan(rows.RowRender(at)))
}

// Scan tokenizes one rendered row. Results are cached by row text; the
// cache starts over once it holds lexerCacheSize rows.
func (l *LexerSyntax) Scan(render []rune) []Tag {
	text := string(render)
	if cached, ok := l.cache[text]; ok {
		return append([]Tag(nil), cached...)
	}

	tags := Fill(len(render))
	iter, err := l.lexer.Tokenise(nil, text)
	if err != nil {
		return tags
	}

	i := 0
	for _, tok := range iter.Tokens() {
		tag := tokenTag(tok.Type)
		for range tok.Value {
			if i >= len(tags) {
				break
			}
			tags[i] = tag
			i++
		}
	}

	if len(l.cache) >= lexerCacheSize {
		clear(l.cache)
	}
	l.cache[text] = append([]Tag(nil), tags...)
	return tags
}

func tokenTag(t chroma.TokenType) Tag {
	switch {
	case t.InCategory(chroma.Comment):
		return TagComment
	case t == chroma.LiteralStringChar:
		return TagCharLiteral
	case t.InSubCategory(chroma.LiteralString):
		return TagString
	case t.InSubCategory(chroma.LiteralNumber):
		return TagNumber
	case t.InCategory(chroma.Keyword):
		return KeywordTag(tcell.ColorDefault)
	}
	return TagNormal
}
