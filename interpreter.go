package takeoff

import (
	"context"

	"github.com/obrafacil/takeoff/quantity"
)

// Interpreter turns a drawing report into a building model. It stands for
// the external interpretation step; the report may be empty when no page
// qualified, in which case the implementation decides how to proceed.
type Interpreter interface {
	Interpret(ctx context.Context, report string) (*quantity.Model, error)
}

// InterpreterFunc adapts a function to the Interpreter interface.
type InterpreterFunc func(ctx context.Context, report string) (*quantity.Model, error)

// Interpret calls f(ctx, report).
func (f InterpreterFunc) Interpret(ctx context.Context, report string) (*quantity.Model, error) {
	return f(ctx, report)
}
