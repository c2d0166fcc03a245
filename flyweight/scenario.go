package flyweight

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the flyweight: a forest of four trees shares two
// kind objects, positions stay outside the shared state.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		oak := TreeKind{Name: "oak", Color: "green", Texture: "rough"}
		birch := TreeKind{Name: "birch", Color: "white", Texture: "smooth"}

		factory := NewKindFactory()
		forest := NewForest(factory)
		forest.Plant(1, 2, oak)
		forest.Plant(3, 4, birch)
		forest.Plant(5, 6, oak)
		forest.Plant(7, 8, birch)

		forest.Draw(t)
		t.Printf("distinct kinds created: %d", factory.Created())
		return nil
	})
}
