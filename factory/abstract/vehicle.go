package abstract

// Car interface.
type Car interface {
	Description() string
}

// SportCar this is the sport car.
type SportCar struct{}

func (SportCar) Description() string {
	return "This is the sport car!"
}

// ClassicCar this is the classic car.
type ClassicCar struct{}

func (ClassicCar) Description() string {
	return "This is the classic car!"
}

// Motorbike interface.
type Motorbike interface {
	Description() string
}

// SportMotorbike this is the sport motorbike.
type SportMotorbike struct{}

func (SportMotorbike) Description() string {
	return "This is the sport motorbike!"
}

// ClassicMotorbike this is the classic motorbike.
type ClassicMotorbike struct{}

func (ClassicMotorbike) Description() string {
	return "This is the classic motorbike!"
}
