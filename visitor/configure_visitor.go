package visitor

import (
	"fmt"
	"io"
)

var (
	_ ModemVisitor = ConfigureForDosVisitor{}
	_ ModemVisitor = ConfigureForUnixVisitor{}
)

// ConfigureForDosVisitor configures every modem type for Dos.
type ConfigureForDosVisitor struct {
	W io.Writer
}

func (receiver ConfigureForDosVisitor) VisitHayes(modem Hayes) {
	fmt.Fprintln(receiver.W, "Hayes modem used with Dos configurator")
}

func (receiver ConfigureForDosVisitor) VisitZoom(modem Zoom) {
	fmt.Fprintln(receiver.W, "Zoom modem used with Dos configurator")
}

// ConfigureForUnixVisitor configures every modem type for Unix.
type ConfigureForUnixVisitor struct {
	W io.Writer
}

func (receiver ConfigureForUnixVisitor) VisitHayes(modem Hayes) {
	fmt.Fprintln(receiver.W, "Hayes modem used with Unix configurator")
}

func (receiver ConfigureForUnixVisitor) VisitZoom(modem Zoom) {
	fmt.Fprintln(receiver.W, "Zoom modem used with Unix configurator")
}
