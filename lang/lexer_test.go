package lang

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// kinds scans src completely and returns the kinds of all tokens before EOF.
func kinds(t *testing.T, src string) []Kind {
	t.Helper()

	var out []Kind

	for tok, err := range NewLexer(src).All() {
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}

		if tok.Kind == EOF {
			break
		}

		out = append(out, tok.Kind)
	}

	return out
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"0", int64(0)},
		{"42", int64(42)},
		{"9223372036854775807", int64(9223372036854775807)},
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1.", 1.0},
		{"007", int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok, err := NewLexer(tt.src).Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tok.Kind != Number {
				t.Fatalf("expected number token, got %v", tok.Kind)
			}

			if tok.Value != tt.want {
				t.Errorf("value = %v (%T), want %v (%T)", tok.Value, tok.Value, tt.want, tt.want)
			}

			if tok.Text != tt.src {
				t.Errorf("text = %q, want %q", tok.Text, tt.src)
			}
		})
	}
}

func TestLexer_NumberRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 10, 255, 65536, 1 << 40, 9223372036854775807} {
		src := Stringify(n)

		l := NewLexer(src)

		tok, err := l.Next()
		if err != nil || tok.Kind != Number || tok.Value != n {
			t.Errorf("lex %q = %v %v, want number %d", src, tok, err, n)
		}

		if eof, _ := l.Next(); eof.Kind != EOF {
			t.Errorf("lex %q produced more than one token", src)
		}
	}

	for _, f := range []float64{0.5, 2.25, 3.0, 1234.5678} {
		src := Stringify(f)

		tok, err := NewLexer(src).Next()
		if err != nil || tok.Value != f {
			t.Errorf("lex %q = %v %v, want %v", src, tok.Value, err, f)
		}
	}
}

func TestLexer_InvalidNumber(t *testing.T) {
	for _, src := range []string{"1.2.3", "9223372036854775808", "99999999999999999999"} {
		t.Run(src, func(t *testing.T) {
			_, err := NewLexer(src).Next()

			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("expected ErrInvalidNumber, got %v", err)
			}

			if !errors.Is(err, ErrLex) {
				t.Errorf("expected error to match ErrLex")
			}
		})
	}
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		src  string
		want []Kind
	}{
		{"+ - * / = == != < > <= >= !", []Kind{
			Plus, Minus, Star, Slash, Assign, EqualEqual, NotEqual,
			Less, Greater, LessEqual, GreaterEqual, Not,
		}},
		{"<=>=!===", []Kind{LessEqual, GreaterEqual, NotEqual, EqualEqual}},
		{"===", []Kind{EqualEqual, Assign}},
		{"!!", []Kind{Not, Not}},
		{"(){};,.", []Kind{
			LeftParen, RightParen, LeftBrace, RightBrace, Semicolon, Comma, Dot,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := kinds(t, tt.src); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexer_Keywords(t *testing.T) {
	got := kinds(t, "if else while fun return true false nil and or not var iffy _x")
	want := []Kind{
		If, Else, While, Fun, Return, True, False, Nil, And, Or, Not, Var,
		Ident, Ident,
	}

	if !slices.Equal(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}

	if !IsKeyword("not") || IsKeyword("print") {
		t.Error("IsKeyword misclassifies")
	}

	if kw := slices.Collect(Keywords()); !slices.IsSorted(kw) || len(kw) != len(keywords) {
		t.Errorf("Keywords() = %v", kw)
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\r"`, "cr\r"},
		{`"quote\"d"`, `quote"d`},
		{`"back\\slash"`, `back\slash`},
		{`"\q"`, "q"},
		{"\"two\nlines\"", "two\nlines"},
		{`"héllo"`, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok, err := NewLexer(tt.src).Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tok.Kind != String || tok.Value != tt.want {
				t.Errorf("got %v %q, want string %q", tok.Kind, tok.Value, tt.want)
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		src  string
		want error
		line int
		col  int
	}{
		{`"abc`, ErrUnterminatedString, 1, 1},
		{`x = "abc\`, ErrUnterminatedString, 1, 5},
		{"x @", ErrUnknownCharacter, 1, 3},
		{"a\n  #", ErrUnknownCharacter, 2, 3},
		{"1.2.3", ErrInvalidNumber, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var err error

			for _, e := range NewLexer(tt.src).All() {
				err = e
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			var le *Error
			if !errors.As(err, &le) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if le.Pos().Line != tt.line || le.Pos().Column != tt.col {
				t.Errorf("position = %v, want line %d, column %d", le.Pos(), tt.line, tt.col)
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	src := "x // comment\n  é = \"s\"\n;"

	var got []Pos

	for tok, err := range NewLexer(src).All() {
		if err != nil {
			t.Fatal(err)
		}

		got = append(got, tok.Pos)
	}

	want := []Pos{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 15, Line: 2, Column: 3},
		{Offset: 18, Line: 2, Column: 5},
		{Offset: 20, Line: 2, Column: 7},
		{Offset: 24, Line: 3, Column: 1},
		{Offset: 25, Line: 3, Column: 2},
	}

	if !slices.Equal(got, want) {
		t.Errorf("positions = %v\nwant %v", got, want)
	}
}

func TestLexer_EOFIsIdempotent(t *testing.T) {
	l := NewLexer("  // only a comment")

	for range 3 {
		tok, err := l.Next()
		if err != nil || tok.Kind != EOF {
			t.Fatalf("expected EOF, got %v %v", tok, err)
		}
	}
}

func TestLexer_AllStopsAtError(t *testing.T) {
	var n int

	for _, err := range NewLexer("a b @ c d").All() {
		n++

		if err != nil {
			break
		}
	}

	if n != 3 {
		t.Errorf("expected 3 results, got %d", n)
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		EOF:          "EOF",
		Ident:        "identifier",
		GreaterEqual: ">=",
		Var:          "var",
		Kind(99):     "Kind(99)",
	}

	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func BenchmarkLexer(b *testing.B) {
	src := strings.Repeat("fun add(a, b) { return a + b; } x = add(1, 2.5); // sum\n", 64)

	for b.Loop() {
		for _, err := range NewLexer(src).All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
