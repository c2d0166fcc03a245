package adapter

import "io"

// FishingBoatAdapter exposes the RowingBoat contract over a FishingBoat.
// The translation is pure: it only delegates, no side effects of its own.
type FishingBoatAdapter struct {
	FishingBoat FishingBoat
}

func (receiver FishingBoatAdapter) Row(w io.Writer) {
	receiver.FishingBoat.Sail(w)
}
