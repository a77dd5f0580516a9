package lang

import (
	"context"
	"io"
	"log/slog"
)

// outcome is the result of executing a statement. A returning outcome
// unwinds every enclosing statement up to the nearest function call.
type outcome struct {
	value     Value
	pos       Pos
	returning bool
}

func (in *Interpreter) execute(
	ctx context.Context,
	stmt Stmt,
	env *Environment,
) (outcome, error) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		v, err := in.evaluate(ctx, s.Expr, env)
		if err != nil || v == nil {
			return outcome{}, err
		}

		if _, err := io.WriteString(in.output, Stringify(v)+"\n"); err != nil {
			return outcome{}, ErrWriteOutput.At(s.Pos).Wrap(err)
		}

		return outcome{}, nil

	case *Assignment:
		v, err := in.evaluate(ctx, s.Value, env)
		if err != nil {
			return outcome{}, err
		}

		if env.Assign(s.Name, v) != nil {
			env.Define(s.Name, v)
		}

		return outcome{}, nil

	case *VariableDeclaration:
		var v Value

		if s.Initializer != nil {
			var err error
			if v, err = in.evaluate(ctx, s.Initializer, env); err != nil {
				return outcome{}, err
			}
		}

		env.Define(s.Name, v)

		return outcome{}, nil

	case *IfStatement:
		cond, err := in.evaluate(ctx, s.Condition, env)
		if err != nil {
			return outcome{}, err
		}

		if Truthy(cond) {
			return in.execute(ctx, s.Then, env)
		}

		if s.Else != nil {
			return in.execute(ctx, s.Else, env)
		}

		return outcome{}, nil

	case *WhileStatement:
		for {
			if ctx.Err() != nil {
				return outcome{}, context.Cause(ctx)
			}

			cond, err := in.evaluate(ctx, s.Condition, env)
			if err != nil {
				return outcome{}, err
			}

			if !Truthy(cond) {
				return outcome{}, nil
			}

			out, err := in.execute(ctx, s.Body, env)
			if err != nil || out.returning {
				return out, err
			}
		}

	case *Block:
		return in.executeAll(ctx, s.Statements, NewEnvironment(env))

	case *FunctionDeclaration:
		env.Define(s.Name, &Function{Decl: s, Closure: env})

		return outcome{}, nil

	case *ReturnStatement:
		out := outcome{pos: s.Pos, returning: true}

		if s.Value != nil {
			var err error
			if out.value, err = in.evaluate(ctx, s.Value, env); err != nil {
				return outcome{}, err
			}
		}

		return out, nil

	default:
		return outcome{}, ErrUnsupportedNode.At(stmt.Position()).
			Detailf("unsupported statement %T", stmt)
	}
}

// executeAll runs stmts in env, stopping at the first error or return.
func (in *Interpreter) executeAll(
	ctx context.Context,
	stmts []Stmt,
	env *Environment,
) (outcome, error) {
	for _, stmt := range stmts {
		out, err := in.execute(ctx, stmt, env)
		if err != nil || out.returning {
			return out, err
		}
	}

	return outcome{}, nil
}

func (in *Interpreter) evaluate(
	ctx context.Context,
	expr Expr,
	env *Environment,
) (Value, error) {
	switch e := expr.(type) {
	case *NumberLiteral:
		return e.Value, nil

	case *StringLiteral:
		return e.Value, nil

	case *BooleanLiteral:
		return e.Value, nil

	case *NilLiteral:
		return nil, nil

	case *Identifier:
		v, err := env.Get(e.Name)

		return v, locate(err, e.Pos)

	case *UnaryOp:
		operand, err := in.evaluate(ctx, e.Operand, env)
		if err != nil {
			return nil, err
		}

		return unary(e.Op, e.Pos, operand)

	case *BinaryOp:
		// Both operands are always evaluated, left first, including for
		// "and" and "or".
		left, err := in.evaluate(ctx, e.Left, env)
		if err != nil {
			return nil, err
		}

		right, err := in.evaluate(ctx, e.Right, env)
		if err != nil {
			return nil, err
		}

		return binary(e.Op, e.Pos, left, right)

	case *FunctionCall:
		return in.call(ctx, e, env)

	default:
		return nil, ErrUnsupportedNode.At(expr.Position()).
			Detailf("unsupported expression %T", expr)
	}
}

// call checks arity before evaluating any argument.
func (in *Interpreter) call(
	ctx context.Context,
	e *FunctionCall,
	env *Environment,
) (Value, error) {
	callee, err := in.evaluate(ctx, e.Callee, env)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, ErrNotCallable.At(e.Pos).
			With(slog.String("type", TypeName(callee)))
	}

	if len(e.Arguments) != fn.Arity() {
		return nil, arityMismatch(fn, len(e.Arguments), e.Pos)
	}

	args := make([]Value, len(e.Arguments))

	for i, arg := range e.Arguments {
		if args[i], err = in.evaluate(ctx, arg, env); err != nil {
			return nil, err
		}
	}

	return in.invoke(ctx, fn, args, e.Pos)
}

// invoke runs the body of fn in a new scope enclosed by its closure.
func (in *Interpreter) invoke(
	ctx context.Context,
	fn *Function,
	args []Value,
	pos Pos,
) (Value, error) {
	if ctx.Err() != nil {
		return nil, context.Cause(ctx)
	}

	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return nil, ErrMaxDepthExceeded.At(pos).
			With(slog.String("function", fn.Name()),
				slog.Int("max_depth", in.maxDepth))
	}

	in.depth++
	defer func() { in.depth-- }()

	if in.tracing(ctx) {
		in.logger.TraceContext(ctx, "call",
			slog.String("function", fn.Name()),
			slog.Int("args", len(args)),
			slog.Int("depth", in.depth),
			slog.Int("line", pos.Line))
	}

	scope := NewEnvironment(fn.Closure)
	for i, param := range fn.Decl.Params {
		scope.Define(param, args[i])
	}

	out, err := in.executeAll(ctx, fn.Decl.Body.Statements, scope)
	if err != nil {
		return nil, err
	}

	return out.value, nil
}

func arityMismatch(fn *Function, got int, pos Pos) *Error {
	return ErrArityMismatch.At(pos).
		Detailf("expected %d arguments but got %d", fn.Arity(), got).
		With(slog.String("function", fn.Name()))
}

func unary(op Kind, pos Pos, v Value) (Value, error) {
	switch op {
	case Minus:
		n, ok := number(v)
		if !ok {
			return nil, ErrTypeMismatch.At(pos).
				Detailf("operand must be a number for -").
				With(slog.String("operand", TypeName(v)))
		}

		if n.isFloat {
			return -n.f, nil
		}

		return -n.i, nil

	case Not:
		return !Truthy(v), nil

	default:
		return nil, ErrUnsupportedNode.At(pos).
			Detailf("unsupported unary operator %s", op.quote())
	}
}

func binary(op Kind, pos Pos, left, right Value) (Value, error) {
	switch op {
	case EqualEqual:
		return Equal(left, right), nil
	case NotEqual:
		return !Equal(left, right), nil
	case And:
		return Truthy(left) && Truthy(right), nil
	case Or:
		return Truthy(left) || Truthy(right), nil
	}

	x, xok := number(left)
	y, yok := number(right)

	if !xok || !yok {
		if op == Plus {
			_, ls := left.(string)
			_, rs := right.(string)

			if ls || rs {
				return Stringify(left) + Stringify(right), nil
			}

			return nil, mismatch(op, pos, left, right,
				"operands must be two numbers or include a string for +")
		}

		return nil, mismatch(op, pos, left, right,
			"operands must be numbers for "+op.String())
	}

	ints := !x.isFloat && !y.isFloat

	switch op {
	case Plus:
		if ints {
			return x.i + y.i, nil
		}

		return x.float() + y.float(), nil

	case Minus:
		if ints {
			return x.i - y.i, nil
		}

		return x.float() - y.float(), nil

	case Star:
		if ints {
			return x.i * y.i, nil
		}

		return x.float() * y.float(), nil

	case Slash:
		if y.isZero() {
			return nil, ErrDivisionByZero.At(pos)
		}

		return x.float() / y.float(), nil

	case Less, Greater, LessEqual, GreaterEqual:
		return compare(op, x, y), nil

	default:
		return nil, ErrUnsupportedNode.At(pos).
			Detailf("unsupported binary operator %s", op.quote())
	}
}

// compare applies a relational operator, exactly when both operands are
// integers.
func compare(op Kind, x, y numeric) bool {
	if !x.isFloat && !y.isFloat {
		switch op {
		case Less:
			return x.i < y.i
		case Greater:
			return x.i > y.i
		case LessEqual:
			return x.i <= y.i
		default:
			return x.i >= y.i
		}
	}

	a, b := x.float(), y.float()

	switch op {
	case Less:
		return a < b
	case Greater:
		return a > b
	case LessEqual:
		return a <= b
	default:
		return a >= b
	}
}

func mismatch(op Kind, pos Pos, left, right Value, msg string) *Error {
	return ErrTypeMismatch.At(pos).Detailf("%s", msg).
		With(slog.String("op", op.String()),
			slog.String("left", TypeName(left)),
			slog.String("right", TypeName(right)))
}

// locate positions err at pos unless it already carries a position.
func locate(err error, pos Pos) error {
	if e, ok := err.(*Error); ok && !e.pos.IsValid() {
		return e.At(pos)
	}

	return err
}
