package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	okMark   = "✅"
	failMark = "❌"
	arrow    = "→"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	oldStyle    = lipgloss.NewStyle().Faint(true)
	newStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Printer styles output lines. Plain printers emit no escape codes.
type Printer struct {
	styled bool
}

// NewPrinter returns a Printer that styles output only when w is a terminal.
func NewPrinter(w io.Writer) Printer {
	f, ok := w.(*os.File)
	return Printer{styled: ok && term.IsTerminal(int(f.Fd()))}
}

// PlainPrinter never styles output.
func PlainPrinter() Printer { return Printer{} }

func (p Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// OK formats a success line.
func (p Printer) OK(msg string) string {
	return okMark + " " + p.render(okStyle, msg)
}

// Fail formats a failure line.
func (p Printer) Fail(subject, msg string) string {
	return failMark + " " + p.render(failStyle, subject) + ": " + msg
}

// Change formats "name: old → new".
func (p Printer) Change(name, from, to string) string {
	return name + ": " + p.render(oldStyle, from) + " " + arrow + " " + p.render(newStyle, to)
}

// Header formats a section heading.
func (p Printer) Header(text string) string {
	return p.render(headerStyle, text)
}
