package lang

import (
	"context"
	"log/slog"
)

// Interpreter is an interpreter session. Its global scope persists across
// calls to [Interpreter.Interpret], so a REPL can feed it one input at a
// time. A session must not be used by multiple goroutines concurrently.
type Interpreter struct {
	globals *Environment
	config
	depth int
}

// NewInterpreter creates a session with an empty global scope.
func NewInterpreter(opts ...Option) *Interpreter {
	return &Interpreter{
		globals: NewEnvironment(nil),
		config:  makeConfig(opts...),
	}
}

// Globals returns the global scope of the session.
func (in *Interpreter) Globals() *Environment { return in.globals }

// Reset discards every global binding.
func (in *Interpreter) Reset() { in.globals = NewEnvironment(nil) }

// Interpret executes the statements of prog in the global scope. The first
// error aborts the remaining statements; bindings made before it persist.
func (in *Interpreter) Interpret(ctx context.Context, prog *Program) error {
	in.depth = 0

	for _, stmt := range prog.Statements {
		out, err := in.execute(ctx, stmt, in.globals)
		if err != nil {
			return err
		}

		if out.returning {
			return ErrReturnOutsideFunction.At(out.pos)
		}
	}

	in.logger.TraceContext(ctx, "interpret complete",
		slog.Int("statements", len(prog.Statements)),
		slog.Int("globals", len(in.globals.values)))

	return nil
}

// Run parses src and interprets the result.
func (in *Interpreter) Run(ctx context.Context, src string) error {
	prog, err := Parse(ctx, src, WithLogger(in.logger))
	if err != nil {
		return err
	}

	return in.Interpret(ctx, prog)
}

// Call invokes fn with args from outside of any program, as if called from
// the global scope.
func (in *Interpreter) Call(
	ctx context.Context,
	fn *Function,
	args ...Value,
) (Value, error) {
	if len(args) != fn.Arity() {
		return nil, arityMismatch(fn, len(args), fn.Decl.Pos)
	}

	return in.invoke(ctx, fn, args, fn.Decl.Pos)
}
