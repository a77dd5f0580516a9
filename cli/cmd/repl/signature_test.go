package repl

import (
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{"no_call", "greeting", 8, "", 0, false},
		{"open_paren", "add(", 4, "add", 0, true},
		{"first_arg", "add(1", 5, "add", 0, true},
		{"second_arg", "add(1,", 6, "add", 1, true},
		{"second_arg_value", "add(1, 2", 8, "add", 1, true},
		{"closed", "add(1, 2)", 9, "", 0, false},
		{"grouping", "(1 + 2", 6, "", 0, false},
		{"nested_inner", "add(mul(2, ", 11, "mul", 1, true},
		{"nested_outer", "add(mul(2, 3), ", 15, "add", 1, true},
		{"cursor_inside", "add(1, 2)", 5, "add", 0, true},
		{"after_operator", "x = f(", 6, "f", 0, true},
		{"space_before_paren", "add (1,", 7, "add", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)
			if got.inCall != tt.wantInCall || got.name != tt.wantName || got.argIndex != tt.wantIndex {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want {%s %d %v}",
					tt.input, tt.cursor, got, tt.wantName, tt.wantIndex, tt.wantInCall)
			}
		})
	}
}

func TestSignatureHint(t *testing.T) {
	s := newTestSession()

	if _, err := s.Eval(t.Context(), "fun add(left, right) { return left + right; } n = 1;"); err != nil {
		t.Fatal(err)
	}

	hint := signatureHint(s, "add", 1)
	for _, want := range []string{"add", "left", "right"} {
		if !strings.Contains(hint, want) {
			t.Errorf("hint %q missing %q", hint, want)
		}
	}

	if hint := signatureHint(s, "n", 0); hint != "" {
		t.Errorf("non-function hint = %q", hint)
	}

	if hint := signatureHint(s, "missing", 0); hint != "" {
		t.Errorf("unknown hint = %q", hint)
	}
}
