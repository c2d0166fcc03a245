package strategy

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the strategy: the slayer swaps tactics between
// battles.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		slayer := NewDragonSlayer(MeleeStrategy)
		slayer.GoToBattle(t)
		slayer.ChangeStrategy(ProjectileStrategy)
		slayer.GoToBattle(t)
		slayer.ChangeStrategy(SpellStrategy)
		slayer.GoToBattle(t)
		return nil
	})
}
