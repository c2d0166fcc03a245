package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainedSteps(t *testing.T) {
	car := NewCarBuilder().SetWheels().SetColor(Red).GetResult()
	assert.Equal(t, 4, car.Wheels)
	assert.Equal(t, Red, car.Color)

	motorbike := NewMotorbikeBuilder().SetWheels().SetColor(Red).GetResult()
	assert.Equal(t, 2, motorbike.Wheels)
	assert.Equal(t, Red, motorbike.Color)
}

func TestGetResultResets(t *testing.T) {
	builder := NewCarBuilder()
	first := builder.SetWheels().SetColor(Blue).GetResult()
	assert.Equal(t, Vehicle{Kind: "car", Wheels: 4, Color: Blue}, first)

	// no steps between calls: the second result is default-initialized
	second := builder.GetResult()
	assert.Equal(t, Vehicle{Kind: "car"}, second)
}

func TestDirector(t *testing.T) {
	director := NewDirector(NewCarBuilder())
	car := director.Construct(Black)
	assert.Equal(t, Vehicle{Kind: "car", Wheels: 4, Color: Black}, car)

	director.SetBuilder(NewMotorbikeBuilder())
	motorbike := director.Construct(Black)
	assert.Equal(t, Vehicle{Kind: "motorbike", Wheels: 2, Color: Black}, motorbike)
}

func TestBuild(t *testing.T) {
	var builder Builder[Vehicle] = NewCarBuilder().SetWheels().SetColor(Red)
	car, err := builder.Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Vehicle{Kind: "car", Wheels: 4, Color: Red}, car)
}
