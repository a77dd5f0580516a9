package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/jan/cli/cmd/repl"
	"github.com/ardnew/jan/lang"
	"github.com/ardnew/jan/log"
)

// Repl starts an interactive session.
type Repl struct {
	Load     string `help:"Run a script before the first prompt" placeholder:"FILE" short:"l" type:"existingfile"`
	Plain    bool   `help:"Use a line-mode prompt instead of the terminal UI"`
	MaxDepth int    `help:"Maximum call depth (0 is unlimited)"                            default:"${maxDepth}"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stdio := stdioFrom(ctx)
	logger := log.Default()

	session := repl.NewSession(logger, lang.WithMaxDepth(r.MaxDepth))

	if r.Load != "" {
		text, err := readSource(r.Load, stdio.In)
		if err != nil {
			return err
		}

		out, err := session.Eval(ctx, text)
		_, _ = stdio.Out.Write([]byte(out))

		if err != nil {
			return annotate(ctx, err, r.Load, text)
		}
	}

	plain := r.Plain || !isTerminal(stdio.In)

	logger.DebugContext(ctx, "repl start",
		slog.Bool("plain", plain),
		slog.String("load", r.Load))

	if plain {
		return repl.Plain(ctx, session, stdio.In, stdio.Out)
	}

	return repl.Run(ctx, session, kongVar(ctx, CacheIdentifier))
}

func isTerminal(r any) bool {
	f, ok := r.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
