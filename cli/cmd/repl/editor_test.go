package repl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEditor installs an $EDITOR that replaces the edited file with
// content, or leaves it untouched if content is empty.
func fakeEditor(t *testing.T, content string) {
	t.Helper()

	if content == "" {
		t.Setenv("EDITOR", "true")

		return
	}

	dir := t.TempDir()

	src := filepath.Join(dir, "content")
	if err := os.WriteFile(src, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	script := filepath.Join(dir, "editor")
	if err := os.WriteFile(script, []byte("#!/bin/sh\ncp '"+src+"' \"$1\"\n"), 0o700); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", script)
}

func newEditCommand(t *testing.T, buffer, stdin string) (*editCommand, *bytes.Buffer) {
	var out bytes.Buffer

	c := &editCommand{ctx: t.Context(), buffer: buffer}
	c.SetStdin(strings.NewReader(stdin))
	c.SetStdout(&out)
	c.SetStderr(&out)

	return c, &out
}

func TestEditCommand_Accept(t *testing.T) {
	fakeEditor(t, "x = 1;\ny = x + 1;\n")

	c, _ := newEditCommand(t, "", "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if c.source != "x = 1;\ny = x + 1;\n" {
		t.Errorf("source = %q", c.source)
	}
}

func TestEditCommand_KeepsBuffer(t *testing.T) {
	fakeEditor(t, "")

	c, _ := newEditCommand(t, "z = 3;\n", "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if c.source != "z = 3;\n" {
		t.Errorf("source = %q", c.source)
	}
}

func TestEditCommand_Cancelled(t *testing.T) {
	fakeEditor(t, "")

	c, _ := newEditCommand(t, "  \n", "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if c.source != "" {
		t.Errorf("cancelled edit produced %q", c.source)
	}
}

func TestEditCommand_Declined(t *testing.T) {
	fakeEditor(t, "")

	c, out := newEditCommand(t, "x = ;\n", "n\n")

	err := c.Run()
	if !errors.Is(err, ErrEditDeclined) {
		t.Fatalf("expected ErrEditDeclined, got %v", err)
	}

	for _, want := range []string{"Parse error:", "Re-edit? [Y/n]", "x = ;"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEditCommand_EditorFails(t *testing.T) {
	t.Setenv("EDITOR", "false")

	c, _ := newEditCommand(t, "", "")
	if err := c.Run(); err == nil || errors.Is(err, ErrEditDeclined) {
		t.Errorf("expected editor failure, got %v", err)
	}
}
