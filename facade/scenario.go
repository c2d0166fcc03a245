package facade

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the facade: two coarse calls run a whole workday
// across three independent subsystem workers in a fixed order.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		goldmine := NewDwarvenGoldmineFacade()
		goldmine.StartNewDay(t)
		goldmine.EndDay(t)
		return nil
	})
}
