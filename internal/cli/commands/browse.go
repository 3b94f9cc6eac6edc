package commands

import (
	"gospec/internal/config"
	"gospec/internal/selection"
	"gospec/internal/ui"
	"gospec/pkg/spec"

	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config   *config.Config
	registry *spec.Registry
	filter   *selection.Filter
	viewer   ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, registry *spec.Registry, filter *selection.Filter, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		config:   cfg,
		registry: registry,
		filter:   filter,
		viewer:   viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	groups := bc.filter.FilterByName(bc.registry.Groups(), bc.config.GetFilter())
	return bc.viewer.View(groups)
}
