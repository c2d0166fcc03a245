package abstract

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the abstract factory: each concrete factory yields a
// whole consistent vehicle family, and switching factories swaps the family.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		maker := FactoryMaker{}
		for _, familyType := range []FamilyType{SportFamilyType, ClassicFamilyType} {
			factory := maker.MakeFactory(familyType)
			t.Printf("%s", factory.CreateCar().Description())
			t.Printf("%s", factory.CreateMotorbike().Description())
		}
		return nil
	})
}
