// Package commands provides the CLI commands for teletype.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/teletype/internal/version"
)

// errReported is returned once a failure has already been printed.
var errReported = errors.New("failed")

// projectRoot is the global --root flag.
var projectRoot string

var rootCmd = &cobra.Command{
	Use:   "teletype",
	Short: "teletype - scaffold commands for Thor based Ruby CLIs",
	Long: `teletype adds commands and subcommands to a Thor based Ruby CLI.

It generates the command file under lib/<app>/commands and registers the
command in lib/<app>/cli.rb. Running the same add twice changes nothing.

Quick Start:
  teletype add deploy           Add a top-level command
  teletype add deploy status    Add a subcommand of deploy
  teletype list                 List existing commands
  teletype config               Show the effective configuration
  teletype mcp                  Serve the scaffolder as MCP tools`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errReported) {
		if jsonOutput {
			printJSONError(os.Stdout, err)
		} else {
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(os.Stderr, "  %s %v\n", red("Error:"), err)
		}
	}
	stop()
	os.Exit(1)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "Project root directory")

	// Commands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}
