package abstract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyConsistency(t *testing.T) {
	maker := FactoryMaker{}
	tests := []struct {
		familyType FamilyType
		family     string
	}{
		{SportFamilyType, "sport"},
		{ClassicFamilyType, "classic"},
	}
	for _, tt := range tests {
		factory := maker.MakeFactory(tt.familyType)
		// repeated creations never mix families
		for i := 0; i < 3; i++ {
			assert.True(t, strings.Contains(factory.CreateCar().Description(), tt.family))
			assert.True(t, strings.Contains(factory.CreateMotorbike().Description(), tt.family))
		}
	}
}

func TestFactorySwapSwapsWholeFamily(t *testing.T) {
	maker := FactoryMaker{}
	sport := maker.MakeFactory(SportFamilyType)
	classic := maker.MakeFactory(ClassicFamilyType)
	assert.NotEqual(t, sport.CreateCar().Description(), classic.CreateCar().Description())
	assert.NotEqual(t, sport.CreateMotorbike().Description(), classic.CreateMotorbike().Description())
}

func TestUnknownFamilyPanics(t *testing.T) {
	assert.Panics(t, func() {
		FactoryMaker{}.MakeFactory(FamilyType(42))
	})
}
