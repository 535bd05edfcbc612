package commands

import (
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/teletype/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve teletype as MCP tools over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  add_command      Add a command or subcommand (same as teletype add)
  list_commands    List existing commands

Example client configuration:
  {"command": "teletype", "args": ["mcp", "--root", "/path/to/project"]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.NewServer(projectRoot).Serve()
	},
}
