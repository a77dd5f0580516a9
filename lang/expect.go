package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expect checks each expectation against the current global bindings. An
// expectation is an expr-lang expression that must evaluate to true, for
// example "total == 55" or `greet("x") == "hi x"`. Global variables are
// visible by name and global Jan functions are callable.
func (in *Interpreter) Expect(ctx context.Context, exprs ...string) error {
	env, funcs := in.snapshot(ctx)

	for _, src := range exprs {
		opts := make([]expr.Option, 0, len(funcs)+2)
		opts = append(opts, expr.Env(env), expr.AsBool())
		opts = append(opts, funcs...)

		program, err := expr.Compile(src, opts...)
		if err != nil {
			return ErrExpect.Wrap(err).With(slog.String("expect", src))
		}

		result, err := vm.Run(program, env)
		if err != nil {
			return ErrExpect.Wrap(err).With(slog.String("expect", src))
		}

		if ok, _ := result.(bool); !ok {
			return ErrUnmet.With(slog.String("expect", src))
		}

		in.logger.TraceContext(ctx, "expectation met",
			slog.String("expect", src))
	}

	return nil
}

// snapshot converts the global scope into an expr-lang environment. Jan
// functions become expr-lang functions that call back into the session.
func (in *Interpreter) snapshot(
	ctx context.Context,
) (map[string]any, []expr.Option) {
	env := make(map[string]any)
	funcs := make([]expr.Option, 0)

	for _, name := range in.globals.Names() {
		v, _ := in.globals.Lookup(name)

		fn, ok := v.(*Function)
		if !ok {
			env[name] = v

			continue
		}

		funcs = append(funcs, expr.Function(name,
			func(params ...any) (any, error) {
				args := make([]Value, len(params))

				for i, p := range params {
					v, err := fromNative(p)
					if err != nil {
						return nil, err
					}

					args[i] = v
				}

				return in.Call(ctx, fn, args...)
			}))
	}

	return env, funcs
}

// fromNative converts a Go value produced by expr-lang into a Jan value.
func fromNative(v any) (Value, error) {
	switch v := v.(type) {
	case nil, bool, string, int64, float64, *Function:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return float64(v), nil
	default:
		return nil, ErrTypeMismatch.
			Detailf("unsupported argument type %s", resultTypeName(v))
	}
}
