package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/jan/lang"
	"github.com/ardnew/jan/pkg"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-parse-retry loop.
// It writes the buffer to a temp file, opens the user's editor, and parses
// the result. On a parse error the user is asked whether to re-edit.
type editCommand struct {
	ctx    context.Context
	buffer string // initial content
	source string // accepted content; empty if cancelled
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-parse-retry loop. An emptied buffer cancels the
// edit; declining to re-edit returns [ErrEditDeclined].
func (c *editCommand) Run() error {
	f, err := os.CreateTemp("", pkg.Name+"-repl-*"+pkg.Extension)
	if err != nil {
		return err
	}

	path := f.Name()
	f.Close()

	defer os.Remove(path)

	content := c.buffer

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(c.ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content = string(data)
		if strings.TrimSpace(content) == "" {
			return nil
		}

		_, perr := lang.ParseCached(c.ctx, content)
		if perr == nil {
			c.source = content

			return nil
		}

		var lerr *lang.Error
		if errors.As(perr, &lerr) {
			fmt.Fprint(c.stderr, "\n"+lerr.Snippet(content))
		}

		fmt.Fprintf(c.stderr, "Parse error: %s\n", perr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor opens $EDITOR (or vi) on path and waits for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	// $EDITOR may carry arguments, as in "code --wait".
	args := strings.Fields(editor)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %q: %w", editor, err)
	}

	return nil
}

// editSummary describes an edit result for the trace log.
func editSummary(c *editCommand, err error) []slog.Attr {
	return []slog.Attr{
		slog.Int("buffer_bytes", len(c.buffer)),
		slog.Int("source_bytes", len(c.source)),
		slog.Bool("declined", errors.Is(err, ErrEditDeclined)),
	}
}
