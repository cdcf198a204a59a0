// Package expr evaluates a starlark expression once per channel offset.
//
// The expression sees the predeclared integer i, the offset being filled.
// For example "i * i" or "float(i) / 2".
package expr

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Expr is a compiled expression. It is safe for concurrent use.
type Expr struct {
	Source string // Source is the expression text.

	prog *starlark.Program
}

func isPredeclared(name string) bool {
	return name == "i"
}

// Compile parses and resolves source.
func Compile(source string) (ex *Expr, err error) {
	opts := syntax.FileOptions{}
	prog := "rc = " + source + "\n"
	_, program, err := starlark.SourceProgramOptions(&opts, "expr", prog, isPredeclared)
	if err != nil {
		err = &ErrExpression{Source: source, Err: err}
		return
	}

	ex = &Expr{
		Source: source,
		prog:   program,
	}
	return
}

// Eval runs the expression for offset.
func (ex *Expr) Eval(offset int) (value starlark.Value, err error) {
	thread := starlark.Thread{Name: ex.Source}
	pred := starlark.StringDict{
		"i": starlark.MakeInt(offset),
	}
	dict, err := ex.prog.Init(&thread, pred)
	if err != nil {
		err = &ErrExpression{Source: ex.Source, Err: err}
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = &ErrExpression{Source: ex.Source, Err: ErrNoResult}
		return
	}
	return
}

// EvalInt runs the expression for offset, which must yield an int that fits
// in an int64.
func (ex *Expr) EvalInt(offset int) (value int64, err error) {
	rc, err := ex.Eval(offset)
	if err != nil {
		return
	}
	st_int, ok := rc.(starlark.Int)
	if !ok {
		err = &ErrExpression{Source: ex.Source, Err: ErrNotInt}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Source: ex.Source, Err: ErrRange}
		return
	}
	return
}

// EvalFloat runs the expression for offset, which must yield an int or a
// float.
func (ex *Expr) EvalFloat(offset int) (value float64, err error) {
	rc, err := ex.Eval(offset)
	if err != nil {
		return
	}
	value, ok := starlark.AsFloat(rc)
	if !ok {
		err = &ErrExpression{Source: ex.Source, Err: ErrNotNumber}
		return
	}
	return
}
