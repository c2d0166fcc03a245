package decorator

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the decorator: layers compose in any order, each
// layer delegating to exactly one inner beverage.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		t.Printf("%s", Describe(Espresso{}))
		t.Printf("%s", Describe(Chain[Beverage](Espresso{}, Milk)))
		t.Printf("%s", Describe(Chain[Beverage](Espresso{}, Chocolate, Milk)))
		t.Printf("%s", Describe(Chain[Beverage](Espresso{}, Milk, Chocolate)))
		return nil
	})
}
