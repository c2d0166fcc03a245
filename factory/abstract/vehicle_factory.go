package abstract

import "errors"

// VehicleFactory creates one consistent family of vehicles. Switching the
// concrete factory swaps every product's variant atomically.
type VehicleFactory interface {
	CreateCar() Car

	CreateMotorbike() Motorbike
}

type SportVehicleFactory struct{}

func (SportVehicleFactory) CreateCar() Car {
	return SportCar{}
}

func (SportVehicleFactory) CreateMotorbike() Motorbike {
	return SportMotorbike{}
}

type ClassicVehicleFactory struct{}

func (ClassicVehicleFactory) CreateCar() Car {
	return ClassicCar{}
}

func (ClassicVehicleFactory) CreateMotorbike() Motorbike {
	return ClassicMotorbike{}
}

type FamilyType int

const (
	SportFamilyType FamilyType = iota
	ClassicFamilyType
)

// FactoryMaker the factory of vehicle factories.
type FactoryMaker struct{}

func (FactoryMaker) MakeFactory(t FamilyType) VehicleFactory {
	switch t {
	case SportFamilyType:
		return SportVehicleFactory{}
	case ClassicFamilyType:
		return ClassicVehicleFactory{}
	default:
		panic(errors.New("family type not supported"))
	}
}
