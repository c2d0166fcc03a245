package flyweight

import (
	"fmt"
	"io"
)

// TreeKind is the intrinsic state. Two requests with equal field values
// must yield the same shared flyweight, whatever instance the key came from.
type TreeKind struct {
	Name    string
	Color   string
	Texture string
}

// Kind is the shared flyweight. It stores intrinsic state only; the
// position is extrinsic and passed per call.
type Kind struct {
	kind TreeKind
}

func (k *Kind) Draw(w io.Writer, x, y int) {
	fmt.Fprintf(w, "drawing %s %s tree at (%d,%d)\n", k.kind.Color, k.kind.Name, x, y)
}

// KindFactory hands out one shared Kind per intrinsic-state value,
// creating it on first request.
type KindFactory struct {
	kinds map[TreeKind]*Kind
}

func NewKindFactory() *KindFactory {
	return &KindFactory{kinds: map[TreeKind]*Kind{}}
}

func (f *KindFactory) GetKind(kind TreeKind) *Kind {
	if shared, ok := f.kinds[kind]; ok {
		return shared
	}
	shared := &Kind{kind: kind}
	f.kinds[kind] = shared
	return shared
}

// Created reports how many distinct flyweights exist.
func (f *KindFactory) Created() int {
	return len(f.kinds)
}

type planting struct {
	x, y int
	kind *Kind
}

// Forest keeps the extrinsic state, one coordinate pair per planted tree.
type Forest struct {
	factory   *KindFactory
	plantings []planting
}

func NewForest(factory *KindFactory) *Forest {
	return &Forest{factory: factory}
}

func (f *Forest) Plant(x, y int, kind TreeKind) {
	f.plantings = append(f.plantings, planting{x: x, y: y, kind: f.factory.GetKind(kind)})
}

func (f *Forest) Draw(w io.Writer) {
	for _, p := range f.plantings {
		p.kind.Draw(w, p.x, p.y)
	}
}
