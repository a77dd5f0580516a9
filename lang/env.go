package lang

import (
	"log/slog"
	"maps"
	"slices"
)

// Environment is one lexical scope: a set of bindings plus the scope that
// encloses it. The enclosing scope is fixed at construction.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment returns an empty scope enclosed by parent. A nil parent
// creates a global scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), parent: parent}
}

// Parent returns the enclosing scope, or nil for a global scope.
func (e *Environment) Parent() *Environment { return e.parent }

// Define binds name in this scope, shadowing any outer binding and replacing
// any existing binding in this scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get returns the value of the innermost binding of name.
func (e *Environment) Get(name string) (Value, error) {
	if s := e.resolve(name); s != nil {
		return s.values[name], nil
	}

	return nil, undefined(name)
}

// Assign replaces the value of the innermost existing binding of name.
func (e *Environment) Assign(name string, value Value) error {
	s := e.resolve(name)
	if s == nil {
		return undefined(name)
	}

	s.values[name] = value

	return nil
}

// Lookup is like Get but reports a missing binding with a boolean.
func (e *Environment) Lookup(name string) (Value, bool) {
	if s := e.resolve(name); s != nil {
		return s.values[name], true
	}

	return nil, false
}

// Names returns the names bound in this scope, excluding enclosing scopes,
// in sorted order.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// resolve returns the innermost scope binding name, or nil.
func (e *Environment) resolve(name string) *Environment {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.values[name]; ok {
			return s
		}
	}

	return nil
}

func undefined(name string) *Error {
	return ErrUndefinedVariable.
		Detailf("undefined variable %q", name).
		With(slog.String("name", name))
}
