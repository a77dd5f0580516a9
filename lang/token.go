package lang

//go:generate go tool stringer --linecomment --type Kind --output token_string.go

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Kind classifies a [Token].
type Kind int

const (
	EOF    Kind = iota // EOF
	Number             // number
	String             // string
	Ident              // identifier

	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Assign       // =
	EqualEqual   // ==
	NotEqual     // !=
	Less         // <
	Greater      // >
	LessEqual    // <=
	GreaterEqual // >=
	Not          // !

	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Semicolon  // ;
	Comma      // ,
	Dot        // .

	If     // if
	Else   // else
	While  // while
	Fun    // fun
	Return // return
	True   // true
	False  // false
	Nil    // nil
	And    // and
	Or     // or
	Var    // var
)

// keywords maps reserved words to their kinds. "not" is an alias of "!".
var keywords = map[string]Kind{
	"if":     If,
	"else":   Else,
	"while":  While,
	"fun":    Fun,
	"return": Return,
	"true":   True,
	"false":  False,
	"nil":    Nil,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"var":    Var,
}

// Keywords returns an iterator over the reserved words in sorted order.
func Keywords() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(keywords)))
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]

	return ok
}

// quote renders k for error messages: operators and keywords quoted, token
// classes bare.
func (k Kind) quote() string {
	if k <= Ident {
		return k.String()
	}

	return strconv.Quote(k.String())
}

// Pos is a location in source text. Line and Column are 1-based; Column
// counts runes. The zero Pos is unknown.
type Pos struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// IsValid reports whether p refers to a real location.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}

	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Token is one lexical unit. Value holds the decoded literal: int64 or
// float64 for numbers, the unescaped text for strings, and nil otherwise.
type Token struct {
	Value any
	Text  string
	Pos   Pos
	Kind  Kind
}

// String describes t for diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return EOF.String()
	}

	return strconv.Quote(t.Text)
}
