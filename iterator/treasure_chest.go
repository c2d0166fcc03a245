package iterator

// Item is one treasure in the chest.
type Item struct {
	Name string
}

// TreasureChest hides how the treasures are stored; Items is the only way
// to walk them, in insertion order.
type TreasureChest struct {
	items []Item
}

func NewTreasureChest(items ...Item) *TreasureChest {
	chest := &TreasureChest{items: make([]Item, len(items))}
	copy(chest.items, items)
	return chest
}

func (c *TreasureChest) Items() Iterator[Item] {
	// each call starts a fresh walk
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return &sliceIterator[Item]{items: items}
}
