package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const plainPrompt = "jan> "

// Plain runs a line-mode REPL: one input per line, read from r until EOF
// or a line reading exit or quit. Errors are printed and the session
// continues.
func Plain(ctx context.Context, s *Session, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Jan Language REPL")
	fmt.Fprintln(w, "Type 'exit' to quit")

	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, plainPrompt)

		if !scanner.Scan() {
			fmt.Fprintln(w)

			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		out, err := s.Eval(ctx, line)
		_, _ = io.WriteString(w, out)

		if err != nil {
			fmt.Fprintf(w, "Error: %s\n", err)
		}

		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
	}
}
