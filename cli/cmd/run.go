package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/ardnew/jan/lang"
	"github.com/ardnew/jan/log"
)

// Run executes Jan scripts in a single session.
type Run struct {
	Expect   []string      `help:"Expression that must hold after the run (repeatable)" placeholder:"EXPR" short:"e"`
	Timeout  time.Duration `help:"Abort the run after this long (0 disables)"                                         default:"0s"`
	MaxDepth int           `help:"Maximum call depth (0 is unlimited)"                                                default:"${maxDepth}"`
	Path     []string      `help:"Additional script search directory (repeatable)"      placeholder:"DIR"  short:"I"  type:"path"`

	Source []string `arg:"" default:"-" help:"Script file, name on the search path, or '-' for stdin" name:"source" optional:""`
}

// Run executes the run command. Sources run in order; the first error
// aborts the rest.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if r.Timeout > 0 {
		var stop context.CancelFunc

		ctx, stop = context.WithTimeoutCause(ctx, r.Timeout, ErrTimeout.With(
			slog.Duration("timeout", r.Timeout),
		))
		defer stop()
	}

	stdio := stdioFrom(ctx)
	logger := log.Default()

	sources, err := resolveSources(r.Source, searchPath(r.Path...))
	if err != nil {
		return err
	}

	in := lang.NewInterpreter(
		lang.WithLogger(logger),
		lang.WithOutput(stdio.Out),
		lang.WithMaxDepth(r.MaxDepth),
	)

	for _, src := range sources {
		if err := r.run(ctx, in, src, stdio.In); err != nil {
			return err
		}
	}

	if len(r.Expect) > 0 {
		if err := in.Expect(ctx, r.Expect...); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "run complete",
		slog.Int("sources", len(sources)),
		slog.Int("expectations", len(r.Expect)),
		slog.Int("globals", len(in.Globals().Names())),
	)

	return nil
}

func (r *Run) run(
	ctx context.Context,
	in *lang.Interpreter,
	src source,
	stdin io.Reader,
) error {
	rc, err := src.open(stdin)
	if err != nil {
		return err
	}
	defer rc.Close()

	// Keep a copy of the text for error snippets.
	var text bytes.Buffer

	prog, err := lang.ParseReader(ctx, io.TeeReader(rc, &text),
		lang.WithLogger(log.Default()))
	if err != nil {
		return annotate(ctx, err, src.name, text.String())
	}

	return annotate(ctx, in.Interpret(ctx, prog), src.name, text.String())
}

// annotate attaches the source name and, for positioned errors, the
// offending line to err. A timeout is reported as [ErrTimeout].
func annotate(ctx context.Context, err error, name, text string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrTimeout) {
		if cause := context.Cause(ctx); errors.Is(cause, ErrTimeout) {
			return cause
		}

		return ErrTimeout.Wrap(err)
	}

	var lerr *lang.Error
	if !errors.As(err, &lerr) {
		return err
	}

	lerr = lerr.With(slog.String("source", name))

	if snippet := lerr.Snippet(text); snippet != "" {
		lerr = lerr.With(slog.String("snippet", snippet))
	}

	return lerr
}
