package lang

import (
	"iter"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer converts source text into tokens on demand. It never backtracks:
// each call to [Lexer.Next] consumes exactly one token.
type Lexer struct {
	src  string
	off  int // byte offset of the next rune
	line int
	col  int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// All returns an iterator over the remaining tokens. Iteration stops after
// the EOF token or the first error.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if !yield(tok, err) || err != nil || tok.Kind == EOF {
				return
			}
		}
	}
}

// Next scans and returns the next token. Once the input is exhausted every
// call returns an EOF token.
func (l *Lexer) Next() (Token, error) {
	l.skip()

	pos := l.pos()

	if l.eof() {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	r := l.peek()

	switch {
	case isDigit(r):
		return l.number(pos)
	case r == '_' || unicode.IsLetter(r):
		return l.identifier(pos), nil
	case r == '"':
		return l.string(pos)
	}

	l.advance()

	kind, ok := Kind(-1), true

	switch r {
	case '+':
		kind = Plus
	case '-':
		kind = Minus
	case '*':
		kind = Star
	case '/':
		kind = Slash
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case '{':
		kind = LeftBrace
	case '}':
		kind = RightBrace
	case ';':
		kind = Semicolon
	case ',':
		kind = Comma
	case '.':
		kind = Dot
	case '=':
		kind = l.pick('=', EqualEqual, Assign)
	case '!':
		kind = l.pick('=', NotEqual, Not)
	case '<':
		kind = l.pick('=', LessEqual, Less)
	case '>':
		kind = l.pick('=', GreaterEqual, Greater)
	default:
		ok = false
	}

	if !ok {
		return Token{}, ErrUnknownCharacter.At(pos).
			Detailf("unknown character %q", r).
			With(slog.Int("offset", pos.Offset))
	}

	return Token{Kind: kind, Text: l.src[pos.Offset:l.off], Pos: pos}, nil
}

// pick consumes next and returns two if it follows, else one.
func (l *Lexer) pick(next rune, two, one Kind) Kind {
	if !l.eof() && l.peek() == next {
		l.advance()

		return two
	}

	return one
}

// skip discards whitespace and line comments.
func (l *Lexer) skip() {
	for !l.eof() {
		r := l.peek()

		switch {
		case unicode.IsSpace(r):
			l.advance()

		case r == '/' && strings.HasPrefix(l.src[l.off:], "//"):
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}

		default:
			return
		}
	}
}

// number scans a run of digits and dots starting with a digit.
func (l *Lexer) number(pos Pos) (Token, error) {
	for !l.eof() && (isDigit(l.peek()) || l.peek() == '.') {
		l.advance()
	}

	text := l.src[pos.Offset:l.off]
	tok := Token{Kind: Number, Text: text, Pos: pos}

	if !strings.Contains(text, ".") {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// Digits only, so this is a range error.
			return Token{}, ErrInvalidNumber.At(pos).
				Detailf("integer %s out of range", text)
		}

		tok.Value = n

		return tok, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return Token{}, ErrInvalidNumber.At(pos).Detailf("invalid number %q", text)
	}

	tok.Value = f

	return tok, nil
}

func (l *Lexer) identifier(pos Pos) Token {
	for !l.eof() {
		r := l.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		l.advance()
	}

	text := l.src[pos.Offset:l.off]

	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text, Pos: pos}
	}

	return Token{Kind: Ident, Text: text, Pos: pos}
}

// string scans a double-quoted literal. The escapes \n, \t and \r are
// translated; any other escaped rune stands for itself.
func (l *Lexer) string(pos Pos) (Token, error) {
	l.advance() // opening quote

	var b strings.Builder

	for {
		if l.eof() {
			return Token{}, ErrUnterminatedString.At(pos)
		}

		r := l.advance()

		switch r {
		case '"':
			return Token{
				Kind:  String,
				Text:  l.src[pos.Offset:l.off],
				Value: b.String(),
				Pos:   pos,
			}, nil

		case '\\':
			if l.eof() {
				return Token{}, ErrUnterminatedString.At(pos)
			}

			switch e := l.advance(); e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteRune(e)
			}

		default:
			b.WriteRune(r)
		}
	}
}

func (l *Lexer) eof() bool { return l.off >= len(l.src) }

func (l *Lexer) pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Column: l.col}
}

func (l *Lexer) peek() rune {
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])

	return r
}

// advance consumes and returns one rune, tracking line and column.
func (l *Lexer) advance() rune {
	r, n := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += n

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
