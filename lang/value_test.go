package lang

import (
	"math"
	"testing"
)

func TestStringify(t *testing.T) {
	fn := &Function{Decl: &FunctionDeclaration{Name: "add", Params: []string{"a", "b"}}}

	tests := []struct {
		in   Value
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{int64(-42), "-42"},
		{2.0, "2.0"},
		{0.5, "0.5"},
		{-0.0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123456.789, "123456.789"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
		{"verbatim \"text\"", "verbatim \"text\""},
		{fn, "<fun add>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if got := fn.Signature(); got != "add(a, b)" {
		t.Errorf("Signature() = %q", got)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   Value
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{int64(0), true},
		{0.0, true},
		{"", true},
		{&Function{}, true},
	}

	for _, tt := range tests {
		if got := Truthy(tt.in); got != tt.want {
			t.Errorf("Truthy(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	f, g := &Function{}, &Function{}

	tests := []struct {
		a, b Value
		want bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{false, nil, false},
		{true, true, true},
		{true, int64(1), false},
		{int64(1), true, false},
		{int64(1), 1.0, true},
		{1.0, int64(1), true},
		{int64(9007199254740993), int64(9007199254740992), false},
		{0.5, 0.5, true},
		{"a", "a", true},
		{"a", "b", false},
		{"1", int64(1), false},
		{f, f, true},
		{f, g, false},
		{math.NaN(), math.NaN(), false},
	}

	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{nil, "nil"},
		{true, "boolean"},
		{int64(1), "number"},
		{1.5, "number"},
		{"s", "string"},
		{&Function{}, "function"},
		{[]int{}, "[]int"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.in); got != tt.want {
			t.Errorf("TypeName(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
