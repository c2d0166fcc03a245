package adapter

import (
	"fmt"
	"io"
)

// RowingBoat is the target contract the Captain knows how to use.
type RowingBoat interface {
	Row(w io.Writer)
}

// FishingBoat is the incompatible adaptee with its own vocabulary.
type FishingBoat struct{}

func (FishingBoat) Sail(w io.Writer) {
	fmt.Fprintln(w, "The fishing boat is sailing")
}

// Captain only speaks the RowingBoat contract.
type Captain struct {
	RowingBoat RowingBoat
}

func (c Captain) Row(w io.Writer) {
	c.RowingBoat.Row(w)
}
