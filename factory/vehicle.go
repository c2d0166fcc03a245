package factory

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

// Vehicle is the product. Concrete factories fix the kind and wheel count;
// the color comes from the caller.
type Vehicle struct {
	Kind   string
	Wheels int
	Color  Color
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s %s with %d wheels", v.Color, v.Kind, v.Wheels)
}

// VehicleFactory is the creator contract. Callers pick a factory, never a
// concrete vehicle type.
type VehicleFactory = Factory[Vehicle, Color]

// CarFactory creates cars. Every car has four wheels.
type CarFactory struct{}

func (CarFactory) Create(ctx context.Context, color Color) (Vehicle, error) {
	return Vehicle{Kind: "car", Wheels: 4, Color: color}, nil
}

// MotorbikeFactory creates motorbikes. Every motorbike has two wheels.
type MotorbikeFactory struct{}

func (MotorbikeFactory) Create(ctx context.Context, color Color) (Vehicle, error) {
	return Vehicle{Kind: "motorbike", Wheels: 2, Color: color}, nil
}
