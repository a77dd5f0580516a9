package repl

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/ardnew/jan/lang"
	"github.com/ardnew/jan/log"
)

// Session is the interpreter state shared by every input of a REPL. Global
// bindings persist across inputs until [Session.Reset].
type Session struct {
	interp *lang.Interpreter
	out    *bytes.Buffer
	logger log.Logger
}

// NewSession creates a session whose interpreter logs to logger. Output of
// expression statements is captured and returned by [Session.Eval].
func NewSession(logger log.Logger, opts ...lang.Option) *Session {
	out := new(bytes.Buffer)

	opts = append(opts, lang.WithLogger(logger), lang.WithOutput(out))

	return &Session{
		interp: lang.NewInterpreter(opts...),
		out:    out,
		logger: logger,
	}
}

// Eval runs src in the session and returns everything it printed, even if
// it failed part way. A single statement may omit its trailing semicolon.
func (s *Session) Eval(ctx context.Context, src string) (string, error) {
	defer s.out.Reset()

	prog, err := lang.ParseCached(ctx, terminate(src), lang.WithLogger(s.logger))
	if err == nil {
		err = s.interp.Interpret(ctx, prog)
	}

	s.logger.TraceContext(ctx, "repl eval",
		slog.Int("output_bytes", s.out.Len()),
		slog.Bool("ok", err == nil))

	return s.out.String(), err
}

// Reset discards every global binding.
func (s *Session) Reset() { s.interp.Reset() }

// Globals returns the global scope of the session.
func (s *Session) Globals() *lang.Environment { return s.interp.Globals() }

// Function returns the global function called name.
func (s *Session) Function(name string) (*lang.Function, bool) {
	v, ok := s.Globals().Lookup(name)
	if !ok {
		return nil, false
	}

	fn, ok := v.(*lang.Function)

	return fn, ok
}

// terminate inserts the semicolon a one-line statement usually lacks. It
// goes right after the last token, ahead of any trailing comment. Input that
// does not lex is returned unchanged for the parser to report.
func terminate(src string) string {
	var last lang.Token

	for tok, err := range lang.NewLexer(src).All() {
		if err != nil {
			return src
		}

		if tok.Kind != lang.EOF {
			last = tok
		}
	}

	switch last.Kind {
	case lang.EOF, lang.Semicolon, lang.RightBrace:
		return src
	}

	end := last.Pos.Offset + len(last.Text)

	return src[:end] + ";" + src[end:]
}
