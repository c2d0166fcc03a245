package flyweight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEqualityIsByValue(t *testing.T) {
	factory := NewKindFactory()
	first := factory.GetKind(TreeKind{Name: "oak", Color: "green", Texture: "rough"})
	// a distinct key instance with equal fields yields the same flyweight
	second := factory.GetKind(TreeKind{Name: "oak", Color: "green", Texture: "rough"})
	assert.Same(t, first, second)
	assert.Equal(t, 1, factory.Created())
}

func TestDistinctIntrinsicStateDistinctFlyweight(t *testing.T) {
	factory := NewKindFactory()
	oak := factory.GetKind(TreeKind{Name: "oak", Color: "green", Texture: "rough"})
	birch := factory.GetKind(TreeKind{Name: "birch", Color: "white", Texture: "smooth"})
	assert.NotSame(t, oak, birch)
	assert.Equal(t, 2, factory.Created())
}

func TestExtrinsicStateIsPassedPerCall(t *testing.T) {
	factory := NewKindFactory()
	forest := NewForest(factory)
	oak := TreeKind{Name: "oak", Color: "green", Texture: "rough"}
	forest.Plant(1, 2, oak)
	forest.Plant(9, 9, oak)

	var buf strings.Builder
	forest.Draw(&buf)
	want := "drawing green oak tree at (1,2)\n" +
		"drawing green oak tree at (9,9)\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, factory.Created())
}
