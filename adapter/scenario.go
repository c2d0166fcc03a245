package adapter

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the adapter: the captain rows a fishing boat
// through an adapter without knowing it cannot row.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		captain := Captain{RowingBoat: FishingBoatAdapter{FishingBoat: FishingBoat{}}}
		captain.Row(t)
		return nil
	})
}
