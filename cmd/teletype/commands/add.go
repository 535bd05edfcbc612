package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/teletype/pkg/config"
	"github.com/abdul-hamid-achik/teletype/pkg/inject"
	"github.com/abdul-hamid-achik/teletype/pkg/naming"
	"github.com/abdul-hamid-achik/teletype/pkg/report"
	"github.com/abdul-hamid-achik/teletype/pkg/scaffold"
)

var (
	addForce   bool
	addNoColor bool
	addDesc    string
	addApp     string
)

var addCmd = &cobra.Command{
	Use:   "add <command> [subcommand]",
	Short: "Add a command or subcommand to the CLI",
	Long: `Add a command to lib/<app>/cli.rb.

With one argument a command file is generated under lib/<app>/commands and a
dispatch method is injected into the CLI class. With two arguments the first
names a parent command: its Thor class is generated if missing, registered in
the CLI, and the subcommand is added to it.

Existing files are left alone unless --force is given, and code that is
already present is never injected twice.

Examples:
  teletype add deploy                     Add lib/app/commands/deploy.rb
  teletype add config-set                 Add lib/app/commands/config/set.rb
  teletype add deploy status              Add deploy status subcommand
  teletype add deploy --desc "Ship it"    Set the command description
  teletype add deploy --json              Output JSON for automation`,
	Args: cobra.MaximumNArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Overwrite generated files that already exist")
	addCmd.Flags().BoolVar(&addNoColor, "no-color", false, "Disable colored output")
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Command description")
	addCmd.Flags().StringVar(&addApp, "app", "", "App name under lib/ (defaults to the root directory name)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return err
	}

	var req scaffold.Request
	if len(args) > 0 {
		req.Command = args[0]
	}
	if len(args) > 1 {
		req.Subcommand = args[1]
	}
	if req.Command == "" && !jsonOutput && isInteractive() {
		if req.Command, err = promptCommandName(); err != nil {
			return err
		}
	}

	var reporter inject.Reporter
	var printer *report.Printer
	if !jsonOutput {
		printer = report.New(out, report.Options{
			NoColor: addNoColor || cfg.NoColor,
			Root:    projectRoot,
		})
		reporter = printer
	}

	s := scaffold.New(scaffold.Config{
		Root:        projectRoot,
		AppName:     firstNonEmpty(addApp, cfg.App),
		Force:       addForce || cfg.Force,
		Description: firstNonEmpty(addDesc, cfg.Description),
	}, scaffold.WithReporter(reporter))

	run, err := s.Add(cmd.Context(), req)
	if jsonOutput {
		output := AddOutput{
			Summary: run.Summary(projectRoot),
			Changed: relPaths(projectRoot, run.Changed()),
		}
		if err != nil {
			printJSON(out, JSONResponse{Success: false, Data: output, Error: err.Error()})
			return fmt.Errorf("%w: %w", errReported, err)
		}
		if run.Failed() {
			printJSON(out, JSONResponse{Success: false, Data: output, Error: run.Err().Error()})
			return errReported
		}
		printSuccess(out, output)
		return nil
	}

	if err != nil {
		return err
	}
	if run.Failed() {
		for _, e := range run.Errors {
			printer.Error(e)
		}
		return errReported
	}
	return nil
}

func promptCommandName() (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Command name").
				Description("e.g. deploy or config-set").
				Validate(naming.Validate).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return name, nil
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func relPaths(root string, paths []string) []string {
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		if r, err := filepath.Rel(root, p); err == nil {
			p = filepath.ToSlash(r)
		}
		rel = append(rel, p)
	}
	return rel
}
