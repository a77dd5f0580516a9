package lang

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := ErrDivisionByZero.At(Pos{Line: 1, Column: 2}).With(slog.Int("n", 1))

	tests := []struct {
		target error
		want   bool
	}{
		{ErrDivisionByZero, true},
		{ErrRuntime, true},
		{ErrTypeMismatch, false},
		{ErrParse, false},
		{ErrLex, false},
		{io.EOF, false},
	}

	for _, tt := range tests {
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(err, %v) = %v, want %v", tt.target, got, tt.want)
		}
	}

	if errors.Is(ErrRuntime, ErrDivisionByZero) {
		t.Error("a category must not match its members")
	}
}

func TestError_Render(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrDivisionByZero, "runtime error: division by zero"},
		{
			ErrDivisionByZero.At(Pos{Line: 3, Column: 7}),
			"runtime error: line 3, column 7: division by zero",
		},
		{
			undefined("y").At(Pos{Line: 2, Column: 3}),
			`runtime error: line 2, column 3: undefined variable "y" (name=y)`,
		},
		{ErrReadInput.Wrap(io.EOF), "failed to read input: EOF"},
		{ErrParse, "parse error"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestError_Wrap(t *testing.T) {
	err := ErrReadInput.Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(err, io.ErrUnexpectedEOF) || !errors.Is(err, ErrReadInput) {
		t.Errorf("wrapped error lost its identity: %v", err)
	}
}

func TestError_Immutable(t *testing.T) {
	_ = ErrTypeMismatch.With(slog.String("k", "v")).At(Pos{Line: 1}).Detailf("x")

	if len(ErrTypeMismatch.attrs) != 0 || ErrTypeMismatch.pos.IsValid() ||
		ErrTypeMismatch.detail != "" {
		t.Error("sentinel was mutated")
	}
}

func TestError_Snippet(t *testing.T) {
	_, err := Parse(t.Context(), "a = 1;\nx = ;")

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}

	want := "  2 | x = ;\n" + "          ^\n"
	if got := pe.Snippet("a = 1;\nx = ;"); got != want {
		t.Errorf("Snippet() =\n%q\nwant\n%q", got, want)
	}

	if got := ErrParse.Snippet("x"); got != "" {
		t.Errorf("expected no snippet without a position, got %q", got)
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrArityMismatch.At(Pos{Line: 4, Column: 1}).
		Detailf("expected 2 arguments but got 1").
		With(slog.String("function", "add"))

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"kind":     "runtime error",
		"error":    "expected 2 arguments but got 1",
		"line":     "4",
		"column":   "1",
		"function": "add",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
