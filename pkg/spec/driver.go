package spec

import (
	"fmt"
	"io"
	"log/slog"
)

// Reporter consumes outcomes as soon as they are produced.
type Reporter interface {
	Report(o Outcome)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(o Outcome)

// Report calls f(o).
func (f ReporterFunc) Report(o Outcome) { f(o) }

// Driver walks a group tree depth-first and stops at the first failed or
// errored example.
type Driver struct {
	runner   *Runner
	reporter Reporter
	logger   *slog.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithRunner sets the runner used for each example.
func WithRunner(r *Runner) DriverOption {
	return func(d *Driver) {
		if r != nil {
			d.runner = r
		}
	}
}

// WithLogger sets the logger for run events.
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDriver creates a new Driver reporting to reporter.
func NewDriver(reporter Reporter, opts ...DriverOption) *Driver {
	d := &Driver{
		runner:   NewRunner(),
		reporter: reporter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes every example under root in declared order. Examples after
// the first failed or errored one are neither run nor reported. An
// authoring error aborts the walk and is returned.
func (d *Driver) Run(root *Group) (Summary, error) {
	var sum Summary
	if err := d.walk(root, &sum); err != nil {
		return sum, err
	}
	return sum, nil
}

func (d *Driver) walk(g *Group, sum *Summary) error {
	for _, item := range g.items {
		if sum.Halted {
			return nil
		}
		switch n := item.(type) {
		case *Group:
			if err := d.walk(n, sum); err != nil {
				return err
			}
		case *Example:
			if err := d.runExample(n, sum); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver) runExample(ex *Example, sum *Summary) error {
	d.logger.Debug("running example", "example", ex.FullDescription(), "pending", ex.Pending())

	out, err := d.runner.Run(ex)
	if err != nil {
		d.logger.Error("authoring error", "example", ex.FullDescription(), "error", err)
		return fmt.Errorf("%s: %w", ex.FullDescription(), err)
	}

	sum.add(out)
	if d.reporter != nil {
		d.reporter.Report(out)
	}
	d.logger.Debug("example finished", "example", out.Subject, "status", out.Status)

	if out.Status.Halts() {
		sum.Halted = true
		d.logger.Debug("halting run", "example", out.Subject, "status", out.Status)
	}
	return nil
}
