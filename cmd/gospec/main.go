package main

import (
	"errors"
	"fmt"
	"os"

	"gospec/internal/cli"
	"gospec/internal/cli/commands"
	"gospec/internal/config"
	"gospec/internal/exitcodes"
	_ "gospec/internal/suites"
	"gospec/pkg/spec"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(args []string) error {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gospec",
		Short:         "Behavior-driven example runner",
		Long:          `Run nested example groups with memoized, overridable helpers. The run stops at the first failing example.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Load config from defaults, .env and the environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return &cli.ExitError{Code: exitcodes.RuntimeErr, Message: err.Error()}
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, spec.DefaultRegistry())
	cmds.Register(rootCmd, &flags, cfg)

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
