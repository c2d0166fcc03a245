package prototype

import "fmt"

// Equipment is the nested owned object a Hero carries. It is mutable on
// purpose so clones can be told apart from copies.
type Equipment struct {
	Weapon string
	Armor  string
}

type Hero struct {
	Name      string
	Level     int
	Equipment *Equipment
}

func (h *Hero) String() string {
	return fmt.Sprintf("%s (level %d) wielding %s in %s", h.Name, h.Level, h.Equipment.Weapon, h.Equipment.Armor)
}

// Clone copies the top-level fields only. The nested Equipment is shared
// with the original, so mutating the original's equipment shows through.
func (h *Hero) Clone() *Hero {
	clone := *h
	return &clone
}

// DeepClone recursively duplicates the nested Equipment as well, so the
// clone is independent of later mutations of the original.
func (h *Hero) DeepClone() *Hero {
	clone := *h
	if h.Equipment != nil {
		equipment := *h.Equipment
		clone.Equipment = &equipment
	}
	return &clone
}
