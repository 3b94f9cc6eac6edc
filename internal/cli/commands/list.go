package commands

import (
	"gospec/internal/config"
	"gospec/internal/selection"
	"gospec/internal/ui"
	"gospec/pkg/spec"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *spec.Registry
	filter   *selection.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, registry *spec.Registry, filter *selection.Filter) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: registry,
		filter:   filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	groups := lc.filter.FilterByName(lc.registry.Groups(), lc.config.GetFilter())

	formatter := ui.NewFormatter(lc.config, cmd.OutOrStdout())
	return formatter.PrintSuiteList(groups, lc.config.Flags.Examples)
}
