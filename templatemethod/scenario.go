package templatemethod

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the template method: the same fixed sequence runs
// with two different sets of overridable steps.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		thief := NewHalflingThief(HitAndRunMethod{})
		thief.Steal(t)
		thief.ChangeMethod(SubtleMethod{})
		thief.Steal(t)
		return nil
	})
}
