package iterator

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the iterator: three treasures come out in
// insertion order, then one call too many reports exhaustion.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		chest := NewTreasureChest(Item{Name: "ruby"}, Item{Name: "sapphire"}, Item{Name: "emerald"})
		it := chest.Items()
		for it.HasNext() {
			item, err := it.Next()
			if err != nil {
				return err
			}
			t.Printf("found %s", item.Name)
		}
		if _, err := it.Next(); err != nil {
			t.Printf("one more pull: %s", err)
		}
		return nil
	})
}
