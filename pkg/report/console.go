// Package report turns example outcomes into console output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gospec/pkg/spec"
)

// Console writes one line per outcome: passed and pending to out, failed and
// errored to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer

	success *color.Color
	failure *color.Color
	warning *color.Color
}

// NewConsole creates a new Console
func NewConsole(out, errOut io.Writer, colored bool) *Console {
	c := &Console{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
	}
	for _, col := range []*color.Color{c.success, c.failure, c.warning} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Report prints the line for o.
func (c *Console) Report(o spec.Outcome) {
	switch o.Status {
	case spec.StatusPassed:
		c.success.Fprintln(c.out, Line(o))
	case spec.StatusPending:
		c.warning.Fprintln(c.out, Line(o))
	case spec.StatusFailed, spec.StatusErrored:
		c.failure.Fprintln(c.errOut, Line(o))
	}
}

// Line formats o as a single uncolored line, e.g.
// "Success: Array #size: expected 3 to eq 3."
func Line(o spec.Outcome) string {
	label := map[spec.Status]string{
		spec.StatusPassed:  "Success",
		spec.StatusFailed:  "Failure",
		spec.StatusErrored: "Error",
		spec.StatusPending: "Warning",
	}[o.Status]

	subject := oneLine(o.Subject)
	message := oneLine(o.Message)

	var text string
	switch {
	case message == "" || message == subject:
		text = subject
	case o.Status == spec.StatusPending && strings.HasSuffix(subject, " "+message):
		text = subject
	case subject == "":
		text = message
	default:
		text = subject + ": " + message
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return fmt.Sprintf("%s: %s", label, text)
}

// oneLine collapses all whitespace, including newlines, to single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
