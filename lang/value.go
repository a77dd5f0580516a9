package lang

import (
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value. Its dynamic type is one of nil, bool, int64,
// float64, string or *[Function].
type Value = any

// Function is a closure: a declaration paired with the scope it was
// declared in. The declaration is shared, never copied.
type Function struct {
	Decl    *FunctionDeclaration
	Closure *Environment
}

// Name returns the declared name of f.
func (f *Function) Name() string { return f.Decl.Name }

// Arity returns the number of parameters of f.
func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) String() string { return "<fun " + f.Decl.Name + ">" }

// Signature renders the declaration header, for example "add(a, b)".
func (f *Function) Signature() string {
	return f.Decl.Name + "(" + strings.Join(f.Decl.Params, ", ") + ")"
}

// Truthy reports the truth value of v: nil and false are false, everything
// else (including 0 and "") is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// Equal reports whether a and b are equal. Numbers compare numerically
// across int64 and float64, functions by identity, and values of different
// kinds are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case bool:
		bb, ok := b.(bool)

		return ok && a == bb
	case string:
		bs, ok := b.(string)

		return ok && a == bs
	case *Function:
		bf, ok := b.(*Function)

		return ok && a == bf
	}

	x, ok := number(a)
	if !ok {
		return false
	}

	y, ok := number(b)
	if !ok {
		return false
	}

	return x.equal(y)
}

// Stringify returns the printed form of v.
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v)
	case string:
		return v
	case *Function:
		return v.String()
	default:
		return "<unknown>"
	}
}

// TypeName names the dynamic type of v as reported in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	default:
		return resultTypeName(v)
	}
}

// formatFloat renders f in shortest round-trip form, in positional notation
// with ".0" appended when integral unless its magnitude calls for an
// exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// numeric is a number operand: an int64 unless isFloat is set.
type numeric struct {
	i       int64
	f       float64
	isFloat bool
}

// number converts v to a numeric operand. Booleans are not numbers.
func number(v Value) (numeric, bool) {
	switch v := v.(type) {
	case int64:
		return numeric{i: v}, true
	case float64:
		return numeric{f: v, isFloat: true}, true
	default:
		return numeric{}, false
	}
}

func (n numeric) float() float64 {
	if n.isFloat {
		return n.f
	}

	return float64(n.i)
}

func (n numeric) isZero() bool {
	if n.isFloat {
		return n.f == 0
	}

	return n.i == 0
}

// equal compares exactly when both operands are integers.
func (n numeric) equal(m numeric) bool {
	if !n.isFloat && !m.isFloat {
		return n.i == m.i
	}

	return n.float() == m.float()
}
