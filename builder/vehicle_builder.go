package builder

import (
	"context"
	"fmt"
)

type Color string

const (
	Red   Color = "red"
	Blue  Color = "blue"
	Black Color = "black"
)

type Vehicle struct {
	Kind   string
	Wheels int
	Color  Color
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s %s with %d wheels", v.Color, v.Kind, v.Wheels)
}

var _ Builder[Vehicle] = (*VehicleBuilder)(nil)

// VehicleBuilder assembles a Vehicle step by step. Every setter returns the
// builder itself so steps can be chained, with or without a Director.
type VehicleBuilder struct {
	kind    string
	wheels  int
	vehicle Vehicle
}

// NewCarBuilder returns a builder whose SetWheels step fits four wheels.
func NewCarBuilder() *VehicleBuilder {
	return &VehicleBuilder{kind: "car", wheels: 4, vehicle: Vehicle{Kind: "car"}}
}

// NewMotorbikeBuilder returns a builder whose SetWheels step fits two wheels.
func NewMotorbikeBuilder() *VehicleBuilder {
	return &VehicleBuilder{kind: "motorbike", wheels: 2, vehicle: Vehicle{Kind: "motorbike"}}
}

func (b *VehicleBuilder) SetWheels() *VehicleBuilder {
	b.vehicle.Wheels = b.wheels
	return b
}

func (b *VehicleBuilder) SetColor(color Color) *VehicleBuilder {
	b.vehicle.Color = color
	return b
}

// GetResult yields the built vehicle and resets the builder to defaults, so a
// second GetResult without new steps returns a default-initialized vehicle.
func (b *VehicleBuilder) GetResult() Vehicle {
	vehicle := b.vehicle
	b.vehicle = Vehicle{Kind: b.kind}
	return vehicle
}

// Build implements Builder.
func (b *VehicleBuilder) Build(ctx context.Context) (Vehicle, error) {
	return b.GetResult(), nil
}

// A Director sequences a fixed subset of build steps. Direct step calls on
// the builder remain valid without it.
type Director struct {
	builder *VehicleBuilder
}

func NewDirector(builder *VehicleBuilder) *Director {
	return &Director{builder: builder}
}

func (d *Director) SetBuilder(builder *VehicleBuilder) {
	d.builder = builder
}

// Construct runs the fixed step sequence: wheels first, then color.
func (d *Director) Construct(color Color) Vehicle {
	return d.builder.SetWheels().SetColor(color).GetResult()
}
