package templatemethod

import (
	"fmt"
	"io"
)

// StealingMethod supplies only the overridable steps of the theft. The
// sequence itself belongs to the thief and cannot be changed.
type StealingMethod interface {
	PickTarget() string
	Confuse(w io.Writer, target string)
	Steal(w io.Writer, target string)
}

type HitAndRunMethod struct{}

func (HitAndRunMethod) PickTarget() string {
	return "old goblin woman"
}

func (HitAndRunMethod) Confuse(w io.Writer, target string) {
	fmt.Fprintf(w, "approach the %s from behind\n", target)
}

func (HitAndRunMethod) Steal(w io.Writer, target string) {
	fmt.Fprintln(w, "grab the handbag and run away fast")
}

type SubtleMethod struct{}

func (SubtleMethod) PickTarget() string {
	return "shop keeper"
}

func (SubtleMethod) Confuse(w io.Writer, target string) {
	fmt.Fprintf(w, "approach the %s with tears running and hug him\n", target)
}

func (SubtleMethod) Steal(w io.Writer, target string) {
	fmt.Fprintln(w, "while in close contact grab the keeper's wallet")
}

// HalflingThief runs the template: pick, announce, confuse, steal. The
// announcement is the fixed step no method can replace.
type HalflingThief struct {
	method StealingMethod
}

func NewHalflingThief(method StealingMethod) *HalflingThief {
	return &HalflingThief{method: method}
}

func (t *HalflingThief) ChangeMethod(method StealingMethod) {
	t.method = method
}

func (t *HalflingThief) Steal(w io.Writer) {
	target := t.method.PickTarget()
	fmt.Fprintf(w, "the target has been chosen as %s\n", target)
	t.method.Confuse(w, target)
	t.method.Steal(w, target)
}
