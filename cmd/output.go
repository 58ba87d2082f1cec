package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printer writes messages to w, colored only when w is a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		color: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) colorFor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Paint returns s wrapped in attr, or s unchanged when color is off.
func (p *printer) Paint(attr color.Attribute, s string) string {
	return p.colorFor(attr).Sprint(s)
}

// Printf writes the formatted message in attr.
func (p *printer) Printf(attr color.Attribute, format string, a ...any) {
	_, _ = fmt.Fprint(p.w, p.colorFor(attr).Sprintf(format, a...))
}

// Println writes s followed by a newline without adding color.
func (p *printer) Println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
