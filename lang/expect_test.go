package lang

import (
	"bytes"
	"errors"
	"testing"
)

func TestInterpreter_Expect(t *testing.T) {
	var out bytes.Buffer

	in := NewInterpreter(WithOutput(&out))

	src := `total = 0; i = 1;
	        while (i <= 10) { total = total + i; i = i + 1; }
	        fun double(n) { return n * 2; }
	        fun greet(who) { return "hi " + who; }
	        name = "jan"; ratio = 1 / 4; nothing = nil;`

	if err := in.Run(t.Context(), src); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		expect string
		want   error
	}{
		{"total == 55", nil},
		{"i == 11 && total > 50", nil},
		{`name == "jan"`, nil},
		{"ratio == 0.25", nil},
		{"nothing == nil", nil},
		{"double(21) == 42", nil},
		{"double(total) == 110", nil},
		{`greet(name) == "hi jan"`, nil},
		{"total > 100", ErrUnmet},
		{"total +", ErrExpect},
		{"total + 1", ErrExpect},
		{"double(1, 2) == 2", ErrExpect},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			err := in.Expect(t.Context(), tt.expect)

			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInterpreter_ExpectStopsAtFirstFailure(t *testing.T) {
	in := NewInterpreter(WithOutput(nil))

	if err := in.Run(t.Context(), "x = 1;"); err != nil {
		t.Fatal(err)
	}

	err := in.Expect(t.Context(), "x == 1", "x == 2", "x +")
	if !errors.Is(err, ErrUnmet) {
		t.Fatalf("expected ErrUnmet, got %v", err)
	}

	if err := in.Expect(t.Context()); err != nil {
		t.Errorf("no expectations should pass, got %v", err)
	}
}

func TestFromNative(t *testing.T) {
	tests := []struct {
		in   any
		want Value
	}{
		{int(3), int64(3)},
		{int32(-3), int64(-3)},
		{uint8(7), int64(7)},
		{float32(0.5), 0.5},
		{"s", "s"},
		{true, true},
		{nil, nil},
	}

	for _, tt := range tests {
		got, err := fromNative(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("fromNative(%#v) = %#v, %v", tt.in, got, err)
		}
	}

	if _, err := fromNative([]any{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}
