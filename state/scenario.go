package state

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the state pattern: five actions walk the hero
// through the full cycle and back into running.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		hero := NewHero()
		for i := 0; i < 5; i++ {
			hero.Act(t)
		}
		t.Printf("current state: %s", hero.State().Name())
		return nil
	})
}
