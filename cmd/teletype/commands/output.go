package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/teletype/pkg/config"
	"github.com/abdul-hamid-achik/teletype/pkg/scaffold"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AddOutput represents the JSON output for the add command
type AddOutput struct {
	scaffold.Summary
	Changed []string `json:"changed"`
}

// ListOutput represents the JSON output for the list command
type ListOutput struct {
	App      string             `json:"app"`
	Commands []scaffold.Command `json:"commands"`
	Total    int                `json:"total"`
}

// ConfigOutput represents the JSON output for the config command
type ConfigOutput struct {
	Config  *config.Config `json:"config"`
	Written string         `json:"written,omitempty"`
}

// printJSON outputs data as formatted JSON
func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

// printSuccess outputs a successful JSON response
func printSuccess(w io.Writer, data any) {
	printJSON(w, JSONResponse{Success: true, Data: data})
}

// printJSONError outputs an error as JSON
func printJSONError(w io.Writer, err error) {
	printJSON(w, JSONResponse{Success: false, Error: err.Error()})
}
