package commands

import (
	"fmt"

	"gospec/internal/cli"
	"gospec/internal/config"
	"gospec/internal/exitcodes"
	"gospec/internal/selection"
	"gospec/internal/ui"
	"gospec/pkg/spec"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Browse *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *spec.Registry) *Commands {
	filter := selection.NewFilter()
	runner := spec.NewRunner()

	return &Commands{
		Run:    NewRunCommand(cfg, registry, filter, runner),
		List:   NewListCommand(cfg, registry, filter),
		Browse: NewBrowseCommand(cfg, registry, filter, ui.NewBrowser()),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		if err := cfg.Validate(); err != nil {
			return &cli.ExitError{Code: exitcodes.RuntimeErr, Message: err.Error()}
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered suites",
		Long:    "Run every registered suite in declaration order, stopping at the first failing example",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by description pattern (supports wildcards, e.g., 'Array*' or '*Integer*')")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while running")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	runCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print run statistics when the run finishes")
	addLogFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered suites",
		Long:    "Print the registered group trees without running any example",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by description pattern (supports wildcards, e.g., 'Array*' or '*Integer*')")
	listCmd.Flags().BoolVarP(&flags.Examples, "examples", "e", false, "List examples as well as groups")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse registered suites interactively",
		Long:    "Display the registered group trees, helpers and examples in an interactive viewer",
		RunE:    c.Browse.Execute,
		PreRunE: applyFlags,
	}
	browseCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by description pattern (supports wildcards, e.g., 'Array*' or '*Integer*')")
	rootCmd.AddCommand(browseCmd)
}

func addLogFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", fmt.Sprintf("Log level (%s)", "debug, info, warn, error"))
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "", "Log format (text, json)")
}
