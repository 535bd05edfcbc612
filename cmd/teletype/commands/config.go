package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/teletype/pkg/config"
	"github.com/abdul-hamid-achik/teletype/pkg/scaffold"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration teletype uses for this project.

Settings come from .teletype.yaml in the project root and TELETYPE_*
environment variables (TELETYPE_APP, TELETYPE_DESCRIPTION, TELETYPE_FORCE,
TELETYPE_NO_COLOR). Command line flags override both.

Examples:
  teletype config             Print the configuration as YAML
  teletype config --write     Save it to .teletype.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configWrite, "write", false, "Write the configuration to .teletype.yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return err
	}
	if cfg.App == "" {
		cfg.App = scaffold.AppNameFromRoot(projectRoot)
	}

	var written string
	if configWrite {
		if err := config.Save(projectRoot, cfg); err != nil {
			return err
		}
		written = config.Path(projectRoot)
	}

	if jsonOutput {
		printSuccess(out, ConfigOutput{Config: cfg, Written: written})
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))

	if written != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s Wrote %s\n", green("✓"), written)
	}
	return nil
}
