package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/aretw0/cellfn/pkg/value"
)

// Printer writes function outputs for humans. Errors are colored when the
// profile supports it.
type Printer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewPrinter returns a printer using the detected terminal color profile.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, profile: termenv.ColorProfile()}
}

// NewPlainPrinter returns a printer that never emits escape sequences.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w, profile: termenv.Ascii}
}

// Print writes a single payload as one line and a grid as an aligned table,
// row by row.
func (p *Printer) Print(out value.Output) error {
	if !out.IsGrid() {
		_, err := fmt.Fprintln(p.w, p.cell(out.Payload()))
		if err != nil {
			return err
		}
		if msg := out.Payload().Message; msg != "" {
			_, err = fmt.Fprintln(p.w, p.faint(msg))
		}
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, row := range out.Grid().Rows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, p.cell(cell))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func (p *Printer) cell(payload value.Payload) string {
	s := payload.String()
	if payload.IsError() {
		return p.profile.String(s).Foreground(p.profile.Color("#f87171")).Bold().String()
	}
	if payload.Format != "" {
		return s + " " + p.faint("("+payload.Format+")")
	}
	return s
}

func (p *Printer) faint(s string) string {
	return p.profile.String(s).Faint().String()
}
