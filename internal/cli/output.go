// Package cli holds the styled terminal output helpers and environment
// configuration shared by the gof commands.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// A Printer writes headings and items, styled unless color is disabled.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) Heading(msg string) {
	if p.color {
		msg = headingStyle.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}

func (p *Printer) Item(msg string) {
	if p.color {
		msg = itemStyle.Render("  " + msg)
	} else {
		msg = "  " + msg
	}
	fmt.Fprintln(p.w, msg)
}
