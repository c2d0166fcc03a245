package facade

import (
	"fmt"
	"io"
)

// The subsystem workers are independent of each other; only the facade
// knows the order a workday runs in.

type DwarvenGoldDigger struct{}

func (DwarvenGoldDigger) Name() string { return "gold digger" }

func (d DwarvenGoldDigger) WakeUp(w io.Writer) { fmt.Fprintf(w, "%s wakes up\n", d.Name()) }

func (d DwarvenGoldDigger) Work(w io.Writer) { fmt.Fprintf(w, "%s digs for gold\n", d.Name()) }

func (d DwarvenGoldDigger) GoHome(w io.Writer) { fmt.Fprintf(w, "%s goes home\n", d.Name()) }

type DwarvenCartOperator struct{}

func (DwarvenCartOperator) Name() string { return "cart operator" }

func (d DwarvenCartOperator) WakeUp(w io.Writer) { fmt.Fprintf(w, "%s wakes up\n", d.Name()) }

func (d DwarvenCartOperator) Work(w io.Writer) { fmt.Fprintf(w, "%s moves gold chunks out of the mine\n", d.Name()) }

func (d DwarvenCartOperator) GoHome(w io.Writer) { fmt.Fprintf(w, "%s goes home\n", d.Name()) }

type DwarvenTunnelDigger struct{}

func (DwarvenTunnelDigger) Name() string { return "tunnel digger" }

func (d DwarvenTunnelDigger) WakeUp(w io.Writer) { fmt.Fprintf(w, "%s wakes up\n", d.Name()) }

func (d DwarvenTunnelDigger) Work(w io.Writer) { fmt.Fprintf(w, "%s creates another promising tunnel\n", d.Name()) }

func (d DwarvenTunnelDigger) GoHome(w io.Writer) { fmt.Fprintf(w, "%s goes home\n", d.Name()) }

// DwarvenGoldmineFacade exposes two coarse operations over the workers.
// It holds no business logic, only the orchestration order.
type DwarvenGoldmineFacade struct {
	digger   DwarvenGoldDigger
	operator DwarvenCartOperator
	tunneler DwarvenTunnelDigger
}

func NewDwarvenGoldmineFacade() *DwarvenGoldmineFacade {
	return &DwarvenGoldmineFacade{}
}

func (f *DwarvenGoldmineFacade) StartNewDay(w io.Writer) {
	f.digger.WakeUp(w)
	f.operator.WakeUp(w)
	f.tunneler.WakeUp(w)
	f.digger.Work(w)
	f.operator.Work(w)
	f.tunneler.Work(w)
}

func (f *DwarvenGoldmineFacade) EndDay(w io.Writer) {
	f.digger.GoHome(w)
	f.operator.GoHome(w)
	f.tunneler.GoHome(w)
}
