package expr

import (
	"errors"

	"github.com/ezrec/lattice/translate"
)

var f = translate.From

var (
	ErrNoResult  = errors.New(f("no result"))
	ErrNotInt    = errors.New(f("result is not an int"))
	ErrNotNumber = errors.New(f("result is not a number"))
	ErrRange     = errors.New(f("result out of range"))
)

// ErrExpression is returned when an expression fails to compile or evaluate.
type ErrExpression struct {
	Source string
	Err    error
}

func (err *ErrExpression) Error() string {
	return f("expression %q: %v", err.Source, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
