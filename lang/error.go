package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Error categories. Every specific error below matches its category with
// [errors.Is].
var (
	ErrLex     = NewError("lex error")
	ErrParse   = NewError("parse error")
	ErrRuntime = NewError("runtime error")
)

// I/O and host errors.
var (
	ErrReadInput   = NewError("failed to read input")
	ErrWriteOutput = NewError("failed to write output")
	ErrExpect      = NewError("invalid expectation")
	ErrUnmet       = NewError("expectation not met")
)

// Lex errors.
var (
	ErrUnknownCharacter   = ErrLex.kind("unknown character")
	ErrUnterminatedString = ErrLex.kind("unterminated string")
	ErrInvalidNumber      = ErrLex.kind("invalid number")
)

// Parse errors.
var (
	ErrUnexpectedToken = ErrParse.kind("unexpected token")
	ErrExpectedToken   = ErrParse.kind("expected token")
)

// Runtime errors.
var (
	ErrUndefinedVariable     = ErrRuntime.kind("undefined variable")
	ErrTypeMismatch          = ErrRuntime.kind("type mismatch")
	ErrDivisionByZero        = ErrRuntime.kind("division by zero")
	ErrArityMismatch         = ErrRuntime.kind("arity mismatch")
	ErrNotCallable           = ErrRuntime.kind("can only call functions")
	ErrReturnOutsideFunction = ErrRuntime.kind("return outside function")
	ErrMaxDepthExceeded      = ErrRuntime.kind("maximum call depth exceeded")
	ErrUnsupportedNode       = ErrRuntime.kind("unsupported syntax node")
)

// Error is a positioned error with optional structured logging attributes.
// It implements both error and slog.LogValuer.
//
// Errors are derived from the package sentinels and never mutated: With,
// Wrap, At and Detailf each return a copy.
type Error struct {
	base   *Error      // sentinel this error derives from
	class  *Error      // category of base, nil for categories
	msg    string      // sentinel message
	detail string      // instance message
	err    error       // wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // attributes for structured logging
	pos    Pos
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e

	return e
}

// kind creates a sentinel belonging to category e.
func (e *Error) kind(msg string) *Error {
	k := NewError(msg)
	k.class = e

	return k
}

// Error implements the error interface:
//
//	<category>: line L, column C: <message>: <cause> (k=v, ...)
//
// Parts that are unset are omitted. The message is the instance detail if
// one was given, otherwise the sentinel's message.
func (e *Error) Error() string {
	part := make([]string, 0, 5)

	if e.class != nil {
		part = append(part, e.class.msg)
	}

	if e.pos.IsValid() {
		part = append(part, e.pos.String())
	}

	if msg := e.Message(); msg != "" {
		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	s := strings.Join(part, ": ")

	if len(e.attrs) > 0 {
		kv := make([]string, len(e.attrs))
		for i, a := range e.attrs {
			kv[i] = a.String()
		}

		s += " (" + strings.Join(kv, ", ") + ")"
	}

	return s
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e derives from or its category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.base == nil {
		return false
	}

	return e.base == t.base || (e.class != nil && e.class == t.base)
}

// Pos returns the source position of e, or the zero Pos if unknown.
func (e *Error) Pos() Pos { return e.pos }

// Message returns the message of e without position, category or cause.
func (e *Error) Message() string {
	if e.detail != "" {
		return e.detail
	}

	return e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	if e.class != nil {
		attrs = append(attrs, slog.String("kind", e.class.msg))
	}

	attrs = append(attrs, slog.String("error", e.Message()))

	if e.pos.IsValid() {
		attrs = append(attrs,
			slog.Int("line", e.pos.Line),
			slog.Int("column", e.pos.Column))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

func (e *Error) clone() *Error {
	c := *e

	return &c
}

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// At returns a copy of e positioned at pos.
func (e *Error) At(pos Pos) *Error {
	c := e.clone()
	c.pos = pos

	return c
}

// Detailf returns a copy of e with a formatted instance message.
func (e *Error) Detailf(format string, args ...any) *Error {
	c := e.clone()
	c.detail = fmt.Sprintf(format, args...)

	return c
}

// Snippet renders the line of src containing e's position with a caret
// under the offending column. It returns "" if e has no position inside src.
func (e *Error) Snippet(src string) string {
	if !e.pos.IsValid() {
		return ""
	}

	lines := strings.Split(src, "\n")
	if e.pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[e.pos.Line-1], "\r")
	num := strconv.Itoa(e.pos.Line)

	var b strings.Builder

	b.WriteString("  " + num + " | " + line + "\n")

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", len(num)+5)
	if e.pos.Column > 0 {
		padding += strings.Repeat(" ", e.pos.Column-1)
	}

	b.WriteString(padding + "^\n")

	return b.String()
}
