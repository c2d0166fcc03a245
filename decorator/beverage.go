package decorator

import "fmt"

// Beverage is the component contract decorators share with the plain drink.
type Beverage interface {
	Description() string
	Cost() int
}

// Espresso is the undecorated component.
type Espresso struct{}

func (Espresso) Description() string {
	return "espresso"
}

func (Espresso) Cost() int {
	return 2
}

// milk layers steamed milk over exactly one inner beverage.
type milk struct {
	inner Beverage
}

func (m milk) Description() string {
	return m.inner.Description() + " + milk"
}

func (m milk) Cost() int {
	return m.inner.Cost() + 1
}

// Milk is the Decorator that wraps a Beverage in milk.
var Milk Decorator[Beverage] = DecoratorFunc[Beverage](func(obj Beverage) Beverage {
	return milk{inner: obj}
})

// chocolate layers chocolate over exactly one inner beverage.
type chocolate struct {
	inner Beverage
}

func (c chocolate) Description() string {
	return c.inner.Description() + " + chocolate"
}

func (c chocolate) Cost() int {
	return c.inner.Cost() + 2
}

// Chocolate is the Decorator that wraps a Beverage in chocolate.
var Chocolate Decorator[Beverage] = DecoratorFunc[Beverage](func(obj Beverage) Beverage {
	return chocolate{inner: obj}
})

func Describe(b Beverage) string {
	return fmt.Sprintf("%s costs %d", b.Description(), b.Cost())
}
