package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"gospec/pkg/spec"
)

// Progress forwards outcomes to another Reporter and tracks them on a
// progress bar.
type Progress struct {
	next spec.Reporter
	bar  *progressbar.ProgressBar

	cyan   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color

	done    int
	passed  int
	pending int
	failed  int
}

// NewProgress creates a progress bar for total examples written to w.
func NewProgress(next spec.Reporter, total int, w io.Writer, colored bool) *Progress {
	p := &Progress{
		next:   next,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.cyan, p.green, p.yellow, p.red} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        p.cyan.Sprint("█"),
			SaucerHead:    p.cyan.Sprint("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(colored),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return p
}

// Report forwards o and advances the bar.
func (p *Progress) Report(o spec.Outcome) {
	if p.next != nil {
		p.next.Report(o)
	}

	p.done++
	switch o.Status {
	case spec.StatusPassed:
		p.passed++
	case spec.StatusPending:
		p.pending++
	case spec.StatusFailed, spec.StatusErrored:
		p.failed++
	}
	_ = p.bar.Set(p.done)
	p.bar.Describe(p.describe())
}

// Finish completes the progress bar
func (p *Progress) Finish() error {
	return p.bar.Finish()
}

// Done returns the number of outcomes seen so far.
func (p *Progress) Done() int {
	return p.done
}

func (p *Progress) describe() string {
	return p.cyan.Sprint("Running examples: ") +
		p.green.Sprintf("[passed: %d", p.passed) +
		" | " +
		p.yellow.Sprintf("pending: %d", p.pending) +
		" | " +
		p.red.Sprintf("failed: %d]", p.failed)
}
