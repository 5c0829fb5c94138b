package highlight

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"pound/config"
)

// KeywordGroup is a set of words drawn in one color.
type KeywordGroup struct {
	Color tcell.Color
	Words []string
}

// Language is a table-described highlighter. Adding a language means adding
// a Language value to the registry, nothing else.
type Language struct {
	Name     string
	Exts     []string
	Comment  string
	Keywords []KeywordGroup
	Scheme   *config.ColorScheme
}

func (l *Language) Extensions() []string { return l.Exts }

func (l *Language) FileType() string { return l.Name }

func (l *Language) CommentToken() string { return l.Comment }

func (l *Language) SyntaxColor(tag Tag) tcell.Color { return schemeColor(l.Scheme, tag) }

func (l *Language) IsSeparator(r rune) bool { return IsSeparator(r) }

func (l *Language) UpdateSyntax(at int, rows Rows) {
	rows.SetHighlight(at, l.Scan(rows.RowRender(at)))
}

// Scan tokenizes one rendered row. State never crosses rows: a string or
// comment left open at the end of the row ends with it.
func (l *Language) Scan(render []rune) []Tag {
	tags := Fill(len(render))
	comment := []rune(l.Comment)

	prevSep := true
	var quote rune

	i := 0
	for i < len(render) {
		c := render[i]
		prev := TagNormal
		if i > 0 {
			prev = tags[i-1]
		}

		if quote == 0 && len(comment) > 0 && hasPrefixAt(render, i, comment) {
			for j := i; j < len(render); j++ {
				tags[j] = TagComment
			}
			break
		}

		if quote != 0 {
			tag := TagString
			if quote == '\'' {
				tag = TagCharLiteral
			}
			tags[i] = tag
			if c == '\\' && i+1 < len(render) {
				tags[i+1] = tag
				i += 2
				continue
			}
			if c == quote {
				quote = 0
			}
			prevSep = true
			i++
			continue
		}

		if c == '"' || c == '\'' {
			quote = c
			if c == '\'' {
				tags[i] = TagCharLiteral
			} else {
				tags[i] = TagString
			}
			i++
			continue
		}

		if (isDigit(c) && (prevSep || prev.Kind == Number)) || (c == '.' && prev.Kind == Number) {
			tags[i] = TagNumber
			prevSep = false
			i++
			continue
		}

		if prevSep {
			if n, color, ok := l.matchKeyword(render, i); ok {
				tag := KeywordTag(color)
				for j := i; j < i+n; j++ {
					tags[j] = tag
				}
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return tags
}

// matchKeyword finds the longest keyword starting at i that is followed by a
// separator or the end of the row.
func (l *Language) matchKeyword(render []rune, i int) (int, tcell.Color, bool) {
	best := 0
	var color tcell.Color
	for _, group := range l.Keywords {
		for _, word := range group.Words {
			kw := []rune(word)
			n := len(kw)
			if n <= best || i+n > len(render) {
				continue
			}
			if !slices.Equal(render[i:i+n], kw) {
				continue
			}
			if i+n < len(render) && !IsSeparator(render[i+n]) {
				continue
			}
			best = n
			color = group.Color
		}
	}
	return best, color, best > 0
}

func hasPrefixAt(s []rune, i int, prefix []rune) bool {
	if i+len(prefix) > len(s) {
		return false
	}
	return slices.Equal(s[i:i+len(prefix)], prefix)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
