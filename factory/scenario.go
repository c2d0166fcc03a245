package factory

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the factory method: the caller picks a factory and
// asks it for a vehicle without ever naming the concrete product type.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		factories := []VehicleFactory{CarFactory{}, MotorbikeFactory{}}
		colors := []Color{Red, Blue}
		for i, factory := range factories {
			vehicle, err := factory.Create(ctx, colors[i])
			if err != nil {
				return err
			}
			t.Printf("%s", vehicle)
		}
		return nil
	})
}
