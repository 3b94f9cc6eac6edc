package commands

import (
	"fmt"

	"gospec/internal/cli"
	"gospec/internal/config"
	"gospec/internal/execution"
	"gospec/internal/exitcodes"
	"gospec/internal/logging"
	"gospec/internal/selection"
	"gospec/internal/ui"
	"gospec/pkg/spec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *spec.Registry
	filter   *selection.Filter
	runner   *spec.Runner
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	registry *spec.Registry,
	filter *selection.Filter,
	runner *spec.Runner,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: registry,
		filter:   filter,
		runner:   runner,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := logging.New(rc.config.GetLogLevel(), rc.config.GetLogFormat(), errOut)

	groups := rc.filter.FilterByName(rc.registry.Groups(), rc.config.GetFilter())
	if len(groups) == 0 {
		warn := color.New(color.FgYellow)
		if !rc.config.UseColor() {
			warn.DisableColor()
		}
		warn.Fprintln(out, "No suites to run")
		return nil
	}

	executor := execution.NewExecutor(rc.config, logger, rc.runner)
	executor.SetOutput(out, errOut)

	summary, duration, err := executor.Execute(groups)
	if err != nil {
		logger.Error("run aborted", "error", err)
		return &cli.ExitError{Code: exitcodes.RuntimeErr, Message: err.Error()}
	}

	if rc.config.Flags.Summary {
		ui.NewFormatter(rc.config, out).PrintStats(summary, duration)
	}

	if summary.Halted {
		return &cli.ExitError{
			Code:    exitcodes.Failure,
			Message: fmt.Sprintf("run halted after %d example(s)", summary.Total()),
		}
	}
	return nil
}
