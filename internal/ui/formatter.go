package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"gospec/internal/config"
	"gospec/pkg/spec"
)

// Tree connectors
const (
	TreeBranch     = "├── "
	TreeLastBranch = "└── "
	TreeContinue   = "│   "
	TreeIndent     = "    "
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer

	group   *color.Color
	example *color.Color
	pending *color.Color
	helper  *color.Color
	success *color.Color
	failure *color.Color
	plain   *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	f := &Formatter{
		config:  cfg,
		out:     out,
		group:   color.New(color.FgCyan),
		example: color.New(color.FgWhite),
		pending: color.New(color.FgYellow),
		helper:  color.New(color.FgMagenta),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		plain:   color.New(),
	}
	for _, c := range []*color.Color{f.group, f.example, f.pending, f.helper, f.success, f.failure, f.plain} {
		if cfg.UseColor() {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// PrintSuiteList prints the declared group trees, optionally with examples.
func (f *Formatter) PrintSuiteList(groups []*spec.Group, showExamples bool) error {
	if len(groups) == 0 {
		f.pending.Fprintln(f.out, "No suites found")
		return nil
	}

	total := 0
	for _, g := range groups {
		total += g.CountExamples()
	}
	f.success.Fprintf(f.out, "Found %d suite(s) with %d example(s):\n\n", len(groups), total)

	for i, g := range groups {
		isLast := i == len(groups)-1
		f.printGroup(g, "", isLast, showExamples)
	}
	return nil
}

func (f *Formatter) printGroup(g *spec.Group, prefix string, isLast bool, showExamples bool) {
	connector := TreeBranch
	childPrefix := prefix + TreeContinue
	if isLast {
		connector = TreeLastBranch
		childPrefix = prefix + TreeIndent
	}

	f.plain.Fprint(f.out, prefix+connector)
	f.group.Fprint(f.out, groupLabel(g))
	if helpers := g.Helpers(); len(helpers) > 0 {
		f.helper.Fprintf(f.out, " [let: %s]", strings.Join(helpers, ", "))
	}
	fmt.Fprintln(f.out)

	items := visibleItems(g, showExamples)
	for i, item := range items {
		last := i == len(items)-1
		switch n := item.(type) {
		case *spec.Group:
			f.printGroup(n, childPrefix, last, showExamples)
		case *spec.Example:
			connector := TreeBranch
			if last {
				connector = TreeLastBranch
			}
			f.plain.Fprint(f.out, childPrefix+connector)
			if n.Pending() {
				f.pending.Fprintf(f.out, "%s (pending)\n", exampleLabel(n))
			} else {
				f.example.Fprintln(f.out, exampleLabel(n))
			}
		}
	}
}

// PrintStats prints the statistics of a finished run.
func (f *Formatter) PrintStats(sum spec.Summary, duration time.Duration) {
	fmt.Fprintln(f.out)
	f.plain.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	rows := []struct {
		label string
		value string
		paint *color.Color
	}{
		{"Examples Run", fmt.Sprintf("%d", sum.Total()), f.plain},
		{"Passed", fmt.Sprintf("%d", sum.Passed), f.success},
		{"Pending", fmt.Sprintf("%d", sum.Pending), f.pending},
		{"Failed", fmt.Sprintf("%d", sum.Failed), f.failure},
		{"Errored", fmt.Sprintf("%d", sum.Errored), f.failure},
		{"Duration", fmt.Sprintf("%.2fs", duration.Seconds()), f.plain},
	}
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.paint.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			f.plain.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	f.plain.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if sum.Halted {
		f.failure.Fprintln(f.out, "✗ Run halted on the first failing example")
	} else {
		f.success.Fprintln(f.out, "✓ All examples passed!")
	}
}

func visibleItems(g *spec.Group, showExamples bool) []spec.Node {
	if showExamples {
		return g.Items()
	}
	var items []spec.Node
	for _, child := range g.Children() {
		items = append(items, child)
	}
	return items
}

func groupLabel(g *spec.Group) string {
	if g.Description() == "" {
		return "(anonymous group)"
	}
	return g.Description()
}

func exampleLabel(e *spec.Example) string {
	if e.Description() == "" {
		return "(example)"
	}
	return e.Description()
}
