package interpreter

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the interpreter: a postfix token stream is parsed
// into an expression tree and evaluated.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		expression, err := Parse("4 3 2 - 1 + +")
		if err != nil {
			return err
		}
		t.Printf("%s = %d", expression, expression.Interpret())
		return nil
	})
}
