package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/teletype/pkg/config"
	"github.com/abdul-hamid-achik/teletype/pkg/scaffold"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the commands of the CLI",
	Long: `List the command files under lib/<app>/commands.

Examples:
  teletype list
  teletype list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listApp string

func init() {
	listCmd.Flags().StringVar(&listApp, "app", "", "App name under lib/ (defaults to the root directory name)")
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return err
	}

	s := scaffold.New(scaffold.Config{Root: projectRoot, AppName: firstNonEmpty(listApp, cfg.App)})
	commands, err := s.List()
	if err != nil {
		return err
	}
	if commands == nil {
		commands = []scaffold.Command{}
	}

	if jsonOutput {
		printSuccess(out, ListOutput{
			App:      s.Config().AppName,
			Commands: commands,
			Total:    len(commands),
		})
		return nil
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "\n  %s Commands (%d)\n\n", cyan(s.Config().AppName), len(commands))
	for _, c := range commands {
		indent := "  "
		if c.Depth > 1 {
			indent += "  "
		}
		fmt.Fprintf(out, "  %s%s %s\n", indent, c.Path, dim(relPaths(projectRoot, []string{c.File})[0]))
	}
	fmt.Fprintln(out)
	return nil
}
