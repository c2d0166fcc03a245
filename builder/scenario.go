package builder

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the builder: a director sequences the fixed steps for
// a car, then the same steps are chained directly on a motorbike builder.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		director := NewDirector(NewCarBuilder())
		t.Printf("%s", director.Construct(Blue))

		motorbike := NewMotorbikeBuilder().SetWheels().SetColor(Red).GetResult()
		t.Printf("%s", motorbike)
		return nil
	})
}
