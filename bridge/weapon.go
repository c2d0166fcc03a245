package bridge

import (
	"fmt"
	"io"
)

// Enchantment is the implementor side of the bridge.
type Enchantment interface {
	Apply(w io.Writer)
}

type FlyingEnchantment struct{}

func (FlyingEnchantment) Apply(w io.Writer) {
	fmt.Fprintln(w, "The item flies and strikes the enemies")
}

type SoulEatingEnchantment struct{}

func (SoulEatingEnchantment) Apply(w io.Writer) {
	fmt.Fprintln(w, "The item eats the soul of enemies")
}

// Weapon is the abstraction side. Concrete weapons hold an Enchantment
// reference and never downcast it.
type Weapon interface {
	Swing(w io.Writer)
}

type Sword struct {
	Enchantment Enchantment
}

func (s Sword) Swing(w io.Writer) {
	fmt.Fprintln(w, "The sword is swung")
	s.Enchantment.Apply(w)
}

type Hammer struct {
	Enchantment Enchantment
}

func (h Hammer) Swing(w io.Writer) {
	fmt.Fprintln(w, "The hammer is swung")
	h.Enchantment.Apply(w)
}
