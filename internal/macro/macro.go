// Package macro holds macro definitions and the two-level symbol table used
// while validating a single file: macros defined locally, and a read-only
// snapshot of the macros its includer had defined at the point of inclusion.
package macro

import "fmt"

// Definition is a single #define. A definition is either a constant or a
// function; Function is fixed when the definition is created.
type Definition struct {
	Name     string
	Value    string
	Params   []string
	Function bool
	File     string
	Line     int
}

// NewConstant creates an object-like definition.
func NewConstant(name, value, file string, line int) *Definition {
	return &Definition{Name: name, Value: value, File: file, Line: line}
}

// NewFunction creates a function-like definition. A nil params slice is
// treated as a zero-parameter function.
func NewFunction(name string, params []string, value, file string, line int) *Definition {
	p := make([]string, len(params))
	copy(p, params)
	return &Definition{Name: name, Value: value, Params: p, Function: true, File: file, Line: line}
}

// Arity returns the number of parameters of a function-like definition.
func (d *Definition) Arity() int {
	return len(d.Params)
}

func (d *Definition) String() string {
	if d.Function {
		return fmt.Sprintf("%s(%d) @ %s:%d", d.Name, len(d.Params), d.File, d.Line)
	}
	return fmt.Sprintf("%s @ %s:%d", d.Name, d.File, d.Line)
}
