package highlight

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"pound/config"
)

func kinds(tags []Tag) string {
	var b strings.Builder
	for _, t := range tags {
		switch t.Kind {
		case Normal:
			b.WriteByte('.')
		case Number:
			b.WriteByte('n')
		case String:
			b.WriteByte('s')
		case CharLiteral:
			b.WriteByte('c')
		case Comment:
			b.WriteByte('/')
		case SearchMatch:
			b.WriteByte('m')
		case Keyword:
			b.WriteByte('k')
		}
	}
	return b.String()
}

func TestScanKeywordNeedsBoundary(t *testing.T) {
	rust := Rust(nil)

	got := kinds(rust.Scan([]rune("for x")))
	if got != "kkk.." {
		t.Fatalf("for x: got %q", got)
	}

	got = kinds(rust.Scan([]rune("fortune")))
	if got != "......." {
		t.Fatalf("fortune: got %q", got)
	}

	got = kinds(rust.Scan([]rune("x.len")))
	if got != "....." {
		t.Fatalf("x.len: got %q", got)
	}
}

func TestScanKeywordGroupColor(t *testing.T) {
	tags := Rust(nil).Scan([]rune("let n: u32"))
	if tags[0].Color != tcell.ColorRed {
		t.Fatalf("let color = %v, want red", tags[0].Color)
	}
	if tags[7].Kind != Keyword || tags[7].Color != tcell.ColorReset {
		t.Fatalf("u32 tag = %+v", tags[7])
	}
}

func TestScanStringsAndEscapes(t *testing.T) {
	rust := Rust(nil)

	got := kinds(rust.Scan([]rune(`a "b\"c" d`)))
	if got != `..ssssss..` {
		t.Fatalf("got %q", got)
	}

	got = kinds(rust.Scan([]rune(`'x' 1`)))
	if got != "ccc.n" {
		t.Fatalf("got %q", got)
	}

	// unterminated strings stop at the end of the row
	got = kinds(rust.Scan([]rune(`"abc`)))
	if got != "ssss" {
		t.Fatalf("got %q", got)
	}
}

func TestScanComments(t *testing.T) {
	got := kinds(Rust(nil).Scan([]rune(`x // "no" 12`)))
	if got != "..//////////" {
		t.Fatalf("got %q", got)
	}

	got = kinds(Rust(nil).Scan([]rune(`"//" x`)))
	if got != "ssss.." {
		t.Fatalf("comment inside string: got %q", got)
	}

	got = kinds(Python(nil).Scan([]rune("a # b")))
	if got != "..///" {
		t.Fatalf("python: got %q", got)
	}
}

func TestScanNumbers(t *testing.T) {
	rust := Rust(nil)

	got := kinds(rust.Scan([]rune("x = 3.14;")))
	if got != "....nnnn." {
		t.Fatalf("got %q", got)
	}

	got = kinds(rust.Scan([]rune("abc123")))
	if got != "......" {
		t.Fatalf("digits inside identifiers: got %q", got)
	}
}

func TestScanLengthMatchesRender(t *testing.T) {
	rows := []string{"", "\t\t", "fn main() {", `"`, "//", "é ü 1"}
	for _, row := range rows {
		render := []rune(row)
		if got := len(Rust(nil).Scan(render)); got != len(render) {
			t.Fatalf("row %q: %d tags for %d runes", row, got, len(render))
		}
	}
}

type fakeRows struct {
	render [][]rune
	hl     [][]Tag
}

func (f *fakeRows) RowRender(at int) []rune { return f.render[at] }

func (f *fakeRows) SetHighlight(at int, tags []Tag) { f.hl[at] = tags }

func TestPlainUpdateSyntax(t *testing.T) {
	rows := &fakeRows{render: [][]rune{[]rune("for 1")}, hl: make([][]Tag, 1)}
	p := &Plain{}
	p.UpdateSyntax(0, rows)
	if got := kinds(rows.hl[0]); got != "....." {
		t.Fatalf("got %q", got)
	}
	if p.FileType() != "" {
		t.Fatalf("plain file type = %q", p.FileType())
	}
}

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry(config.Themes["default"])

	if s := r.Select("rs"); s == nil || s.FileType() != "rust" {
		t.Fatalf("rs: got %v", s)
	}
	if s := r.Select(".go"); s == nil || s.FileType() != "go" {
		t.Fatalf(".go: got %v", s)
	}
	if s := r.Select("unknownext"); s != nil {
		t.Fatalf("unknown extension matched %s", s.FileType())
	}
	if s := r.SelectPath("/tmp/notes.zzqq"); s != nil {
		t.Fatalf("unknown path matched %s", s.FileType())
	}
	if s := r.SelectPath("/tmp/main.py"); s == nil || s.FileType() != "python" {
		t.Fatalf("main.py: got %v", s)
	}
}

func TestRegistryLexerFallback(t *testing.T) {
	r := NewRegistry(nil)
	s := r.SelectPath("/tmp/page.html")
	if s == nil {
		t.Fatal("expected a lexer for html")
	}
	ls, ok := s.(*LexerSyntax)
	if !ok {
		t.Fatalf("got %T, want *LexerSyntax", s)
	}
	render := []rune(`<!-- c --> <a href="x">`)
	if got := len(ls.Scan(render)); got != len(render) {
		t.Fatalf("%d tags for %d runes", got, len(render))
	}

	r.Fallback = false
	if s := r.SelectPath("/tmp/page.html"); s != nil {
		t.Fatalf("fallback disabled but got %s", s.FileType())
	}
}

func TestLexerCacheIsBounded(t *testing.T) {
	ls := NewLexerSyntax("page.html", config.Themes["default"])
	if ls == nil {
		t.Fatal("expected a lexer for html")
	}
	for i := range lexerCacheSize + 50 {
		row := []rune("<p>" + strconv.Itoa(i) + "</p>")
		if tags := ls.Scan(row); len(tags) != len(row) {
			t.Fatalf("row %d: %d tags for %d runes", i, len(tags), len(row))
		}
	}
	if len(ls.cache) > lexerCacheSize {
		t.Fatalf("cache grew to %d entries", len(ls.cache))
	}
}

func TestForeground(t *testing.T) {
	tests := []struct {
		color tcell.Color
		want  string
	}{
		{tcell.ColorReset, "\x1b[39m"},
		{tcell.ColorDefault, "\x1b[39m"},
		{tcell.ColorMaroon, "\x1b[31m"},
		{tcell.ColorRed, "\x1b[91m"},
		{tcell.ColorGray, "\x1b[90m"},
		{tcell.PaletteColor(208), "\x1b[38;5;208m"},
		{tcell.NewRGBColor(1, 2, 3), "\x1b[38;2;1;2;3m"},
	}
	for _, tt := range tests {
		if got := Foreground(tt.color); got != tt.want {
			t.Fatalf("Foreground(%v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestColorRowEmitsOnChange(t *testing.T) {
	s := &Plain{Scheme: config.Themes["default"]}
	render := []rune("ab12")
	tags := []Tag{TagNormal, TagNormal, TagNumber, TagNumber}

	var out bytes.Buffer
	ColorRow(s, render, tags, &out)

	want := "\x1b[39mab\x1b[36m12\x1b[39m"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}
