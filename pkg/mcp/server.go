// Package mcp exposes teletype as Model Context Protocol tools so agents
// can scaffold commands without shelling out.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdul-hamid-achik/teletype/internal/version"
	"github.com/abdul-hamid-achik/teletype/pkg/config"
	"github.com/abdul-hamid-achik/teletype/pkg/inject"
	"github.com/abdul-hamid-achik/teletype/pkg/report"
	"github.com/abdul-hamid-achik/teletype/pkg/scaffold"
)

// Server serves teletype tools over stdio for one project.
type Server struct {
	workdir   string
	mcpServer *server.MCPServer

	// Tool calls edit the same hub files, so they run one at a time.
	mu sync.Mutex
}

// NewServer creates a server for the project rooted at workdir.
func NewServer(workdir string) *Server {
	s := &Server{
		workdir: workdir,
		mcpServer: server.NewMCPServer(
			"teletype",
			version.GetVersion(),
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// Serve blocks serving requests on stdin/stdout.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("add_command",
		mcp.WithDescription("Add a command, or a subcommand of a command, to the Thor CLI of this project. Generates the command file and registers it in lib/<app>/cli.rb. Safe to repeat."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("Command name, e.g. deploy or config-set"),
		),
		mcp.WithString("subcommand",
			mcp.Description("Optional subcommand name, e.g. status"),
		),
		mcp.WithString("description",
			mcp.Description("Help text for the new command"),
		),
		mcp.WithBoolean("force",
			mcp.Description("Overwrite generated files that already exist"),
		),
	), s.handleAddCommand)

	s.mcpServer.AddTool(mcp.NewTool("list_commands",
		mcp.WithDescription("List the command files under lib/<app>/commands"),
	), s.handleListCommands)
}

// scaffolder builds a Scaffolder from the project config plus overrides.
func (s *Server) scaffolder(force bool, description string, rep inject.Reporter) (*scaffold.Scaffolder, error) {
	cfg, err := config.Load(s.workdir)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = cfg.Description
	}
	return scaffold.New(scaffold.Config{
		Root:        s.workdir,
		AppName:     cfg.App,
		Force:       force || cfg.Force,
		Description: description,
	}, scaffold.WithReporter(rep)), nil
}

func (s *Server) handleAddCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command := req.GetString("command", "")
	if command == "" {
		return mcp.NewToolResultError("command is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collector := &report.Collector{}
	sc, err := s.scaffolder(req.GetBool("force", false), req.GetString("description", ""), collector)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	run, err := sc.Add(ctx, scaffold.Request{
		Command:    command,
		Subcommand: req.GetString("subcommand", ""),
	})
	response := map[string]any{
		"success": err == nil && !run.Failed(),
		"run":     run.Summary(sc.Config().Root),
	}
	if err != nil {
		response["error"] = fmt.Sprintf("failed to add %s: %v", command, err)
	}

	result, jsonErr := jsonResult(response)
	if jsonErr != nil {
		return nil, jsonErr
	}
	result.IsError = err != nil || run.Failed()
	return result, nil
}

func (s *Server) handleListCommands(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, err := s.scaffolder(false, "", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	commands, err := sc.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if commands == nil {
		commands = []scaffold.Command{}
	}

	return jsonResult(map[string]any{
		"success":  true,
		"app":      sc.Config().AppName,
		"commands": commands,
		"total":    len(commands),
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
