package prototype

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the prototype: a shallow clone shares the nested
// equipment with the original while a deep clone does not, observable by
// mutating the original after cloning.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		original := &Hero{Name: "Aragorn", Level: 10, Equipment: &Equipment{Weapon: "sword", Armor: "chainmail"}}
		shallow := original.Clone()
		deep := original.DeepClone()

		original.Equipment.Weapon = "axe"
		t.Printf("original: %s", original)
		t.Printf("shallow clone: %s", shallow)
		t.Printf("deep clone: %s", deep)
		return nil
	})
}
