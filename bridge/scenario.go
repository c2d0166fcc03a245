package bridge

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the bridge: weapons and enchantments vary
// independently and combine freely.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		weapons := []Weapon{
			Sword{Enchantment: SoulEatingEnchantment{}},
			Hammer{Enchantment: FlyingEnchantment{}},
		}
		for _, weapon := range weapons {
			weapon.Swing(t)
		}
		return nil
	})
}
