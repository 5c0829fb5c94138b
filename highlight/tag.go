package highlight

import "github.com/gdamore/tcell/v2"

type Kind uint8

const (
	Normal Kind = iota
	Number
	String
	CharLiteral
	Comment
	SearchMatch
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Number:
		return "number"
	case String:
		return "string"
	case CharLiteral:
		return "char"
	case Comment:
		return "comment"
	case SearchMatch:
		return "match"
	case Keyword:
		return "keyword"
	}
	return "unknown"
}

// Tag is the highlight class of one rendered character. Color is only
// meaningful for Keyword tags, where it carries the keyword group's color.
type Tag struct {
	Kind  Kind
	Color tcell.Color
}

var (
	TagNormal      = Tag{Kind: Normal}
	TagNumber      = Tag{Kind: Number}
	TagString      = Tag{Kind: String}
	TagCharLiteral = Tag{Kind: CharLiteral}
	TagComment     = Tag{Kind: Comment}
	TagSearchMatch = Tag{Kind: SearchMatch}
)

// KeywordTag returns the tag for a keyword drawn in color c.
func KeywordTag(c tcell.Color) Tag {
	return Tag{Kind: Keyword, Color: c}
}

// Fill returns n Normal tags.
func Fill(n int) []Tag {
	tags := make([]Tag, n)
	for i := range tags {
		tags[i] = TagNormal
	}
	return tags
}
