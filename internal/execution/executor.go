package execution

import (
	"io"
	"log/slog"
	"os"
	"time"

	"gospec/internal/config"
	"gospec/pkg/report"
	"gospec/pkg/spec"
)

// Executor runs root groups one after another and stops the whole run at
// the first failed or errored example.
type Executor struct {
	config *config.Config
	logger *slog.Logger
	runner *spec.Runner

	out    io.Writer
	errOut io.Writer
}

// NewExecutor creates a new Executor
func NewExecutor(cfg *config.Config, logger *slog.Logger, runner *spec.Runner) *Executor {
	return &Executor{
		config: cfg,
		logger: logger,
		runner: runner,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetOutput redirects console lines and the progress bar.
func (e *Executor) SetOutput(out, errOut io.Writer) {
	e.out = out
	e.errOut = errOut
}

// Execute runs groups in order. The returned summary covers every example
// that produced an outcome; an authoring error stops the run and is returned.
func (e *Executor) Execute(groups []*spec.Group) (spec.Summary, time.Duration, error) {
	startTime := time.Now()

	var reporter spec.Reporter = report.NewConsole(e.out, e.errOut, e.config.UseColor())
	var progress *report.Progress
	if e.config.ShowProgress() {
		total := 0
		for _, g := range groups {
			total += g.CountExamples()
		}
		progress = report.NewProgress(reporter, total, e.errOut, e.config.UseColor())
		defer func() { _ = progress.Finish() }()
		reporter = progress
	}

	driver := spec.NewDriver(reporter, spec.WithRunner(e.runner), spec.WithLogger(e.logger))

	var summary spec.Summary
	for _, g := range groups {
		e.logger.Info("running suite", "suite", g.Description(), "examples", g.CountExamples())
		sum, err := driver.Run(g)
		summary = summary.Merge(sum)
		if err != nil {
			return summary, time.Since(startTime), err
		}
		if summary.Halted {
			e.logger.Info("run halted", "suite", g.Description())
			break
		}
	}

	return summary, time.Since(startTime), nil
}
