package state

import (
	"fmt"
	"io"
)

// A State handles one action for the hero and reassigns the hero's
// current state as part of handling. State objects are immutable and
// swapped by reference.
type State interface {
	Name() string
	Handle(h *Hero, w io.Writer)
}

// The cycle is Idle→Running→Jumping→Attacking→Idle.
var (
	Idle      State = idleState{}
	Running   State = runningState{}
	Jumping   State = jumpingState{}
	Attacking State = attackingState{}
)

// Hero is the context. Every action is delegated to the current state.
type Hero struct {
	state State
}

func NewHero() *Hero {
	return &Hero{state: Idle}
}

func (h *Hero) Act(w io.Writer) {
	h.state.Handle(h, w)
}

func (h *Hero) State() State {
	return h.state
}

type idleState struct{}

func (idleState) Name() string { return "idle" }

func (idleState) Handle(h *Hero, w io.Writer) {
	fmt.Fprintln(w, "the hero starts running")
	h.state = Running
}

type runningState struct{}

func (runningState) Name() string { return "running" }

func (runningState) Handle(h *Hero, w io.Writer) {
	fmt.Fprintln(w, "the hero jumps")
	h.state = Jumping
}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }

func (jumpingState) Handle(h *Hero, w io.Writer) {
	fmt.Fprintln(w, "the hero attacks in midair")
	h.state = Attacking
}

type attackingState struct{}

func (attackingState) Name() string { return "attacking" }

func (attackingState) Handle(h *Hero, w io.Writer) {
	fmt.Fprintln(w, "the hero lands and rests")
	h.state = Idle
}
