package highlight

import (
	"github.com/gdamore/tcell/v2"

	"pound/config"
)

func Rust(scheme *config.ColorScheme) *Language {
	return &Language{
		Name:    "rust",
		Exts:    []string{"rs"},
		Comment: "//",
		Keywords: []KeywordGroup{
			{Color: tcell.ColorRed, Words: []string{
				"mod", "unsafe", "extern", "crate", "use", "type", "struct", "enum", "union", "const", "static",
				"mut", "let", "if", "else", "impl", "trait", "for", "fn", "self", "Self", "while", "true", "false",
				"in", "continue", "break", "loop", "match",
			}},
			{Color: tcell.ColorReset, Words: []string{
				"isize", "i8", "i16", "i32", "i64", "usize", "u8", "u16", "u32", "u64", "f32", "f64",
				"char", "str", "bool",
			}},
		},
		Scheme: scheme,
	}
}

func Go(scheme *config.ColorScheme) *Language {
	return &Language{
		Name:    "go",
		Exts:    []string{"go"},
		Comment: "//",
		Keywords: []KeywordGroup{
			{Color: tcell.ColorYellow, Words: []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
				"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var", "nil", "true", "false", "iota",
			}},
			{Color: tcell.ColorGreen, Words: []string{
				"bool", "byte", "complex64", "complex128", "error", "float32", "float64", "int", "int8",
				"int16", "int32", "int64", "rune", "string", "uint", "uint8", "uint16", "uint32", "uint64",
				"uintptr", "any",
			}},
		},
		Scheme: scheme,
	}
}

func C(scheme *config.ColorScheme) *Language {
	return &Language{
		Name:    "c",
		Exts:    []string{"c", "h", "cpp", "hpp", "cc"},
		Comment: "//",
		Keywords: []KeywordGroup{
			{Color: tcell.ColorYellow, Words: []string{
				"switch", "if", "while", "for", "break", "continue", "return", "else", "struct", "union",
				"typedef", "static", "enum", "class", "case", "default", "do", "goto", "sizeof", "const",
				"extern", "volatile", "#include", "#define", "#ifdef", "#ifndef", "#endif",
			}},
			{Color: tcell.ColorGreen, Words: []string{
				"int", "long", "double", "float", "char", "unsigned", "signed", "void", "short", "bool",
				"size_t",
			}},
		},
		Scheme: scheme,
	}
}

func Python(scheme *config.ColorScheme) *Language {
	return &Language{
		Name:    "python",
		Exts:    []string{"py", "pyw"},
		Comment: "#",
		Keywords: []KeywordGroup{
			{Color: tcell.ColorFuchsia, Words: []string{
				"and", "as", "assert", "break", "class", "continue", "def", "del", "elif", "else", "except",
				"finally", "for", "from", "global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
				"or", "pass", "raise", "return", "try", "while", "with", "yield", "None", "True", "False",
			}},
			{Color: tcell.ColorAqua, Words: []string{
				"int", "float", "str", "bytes", "list", "dict", "set", "tuple", "bool", "self",
			}},
		},
		Scheme: scheme,
	}
}
