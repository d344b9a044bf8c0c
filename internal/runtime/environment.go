package runtime

import (
	"sort"

	"github.com/kievzenit/golox/internal/lexer"
)

// Environment provides lexical scoping for runtime values.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
// The parent is not owned: a child never outlives the scope that made it.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Extend creates a child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

// Define inserts or overwrites a binding in the current scope. Redefinition
// is allowed so a REPL session can redeclare variables.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name *lexer.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, newUndefinedVariableError(name)
}

// Assign updates an existing binding in the first scope where it appears.
// It never declares.
func (e *Environment) Assign(name *lexer.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return newUndefinedVariableError(name)
}

// Snapshot returns a copy of the current scope's bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys lists the names bound in this scope, sorted.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
