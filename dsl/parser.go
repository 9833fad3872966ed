package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		// # 注释需在 # 后留空格，否则 #add 之类会被当成颜色
		{Name: "HashComment", Pattern: `#(?:[ \t][^\n]*)?`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:px)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;,]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of an icon batch file.
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Sections []*Section     `parser:"Newline* ( @@ Newline* )*"`
}

// Section is either a defaults block or an icon definition.
type Section struct {
	Defaults *DefaultsSection `parser:"  @@"`
	Icon     *IconSection     `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Defaults != nil:
		return "defaults"
	case s.Icon != nil:
		return "icon"
	default:
		return "unknown"
	}
}

// DefaultsSection sets properties inherited by every icon declared after it.
type DefaultsSection struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Block *Block         `parser:"'defaults' @@"`
}

// IconSection declares one icon; the optional string is its text.
type IconSection struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Text  *StringLiteral `parser:"'icon' @String?"`
	Block *Block         `parser:"@@"`
}

// Block is a delimited list of property assignments.
type Block struct {
	Assignments []*Assignment `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' @@"`
}

// Value is a property value: string, number (optionally px), hex color or bare identifier.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Raw returns the value as written, strings unquoted.
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
