package strategy

import (
	"fmt"
	"io"
)

// A DragonSlayingStrategy is one interchangeable way of getting the job done.
type DragonSlayingStrategy interface {
	Execute(w io.Writer)
}

// The StrategyFunc type is an adapter to allow the use of ordinary functions as DragonSlayingStrategy.
type StrategyFunc func(w io.Writer)

// Execute calls f(w).
func (f StrategyFunc) Execute(w io.Writer) {
	f(w)
}

var (
	MeleeStrategy DragonSlayingStrategy = StrategyFunc(func(w io.Writer) {
		fmt.Fprintln(w, "with your excalibur you sever the dragon's head")
	})
	ProjectileStrategy DragonSlayingStrategy = StrategyFunc(func(w io.Writer) {
		fmt.Fprintln(w, "you shoot the dragon with the magical crossbow")
	})
	SpellStrategy DragonSlayingStrategy = StrategyFunc(func(w io.Writer) {
		fmt.Fprintln(w, "you cast the spell of disintegration")
	})
)

// DragonSlayer is the context. A strategy swap takes effect on the next
// battle only, never retroactively.
type DragonSlayer struct {
	strategy DragonSlayingStrategy
}

func NewDragonSlayer(strategy DragonSlayingStrategy) *DragonSlayer {
	return &DragonSlayer{strategy: strategy}
}

func (s *DragonSlayer) ChangeStrategy(strategy DragonSlayingStrategy) {
	s.strategy = strategy
}

func (s *DragonSlayer) GoToBattle(w io.Writer) {
	s.strategy.Execute(w)
}
