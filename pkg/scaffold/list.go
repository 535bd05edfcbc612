package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Command is an existing command file.
type Command struct {
	// Path is the command path relative to the commands directory,
	// without extension, e.g. "deploy/status".
	Path string `json:"path"`
	// File is the file path on disk.
	File string `json:"file"`
	// Depth is the number of path segments; 2 or more means subcommand.
	Depth int `json:"depth"`
}

// List returns the command files under the commands directory, sorted by
// path. A missing directory yields no commands.
func (s *Scaffolder) List() ([]Command, error) {
	dir := s.CommandsDir()
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+Ext)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands in %s: %w", dir, err)
	}

	commands := make([]Command, 0, len(matches))
	for _, m := range matches {
		p := strings.TrimSuffix(m, Ext)
		commands = append(commands, Command{
			Path:  p,
			File:  filepath.Join(dir, filepath.FromSlash(m)),
			Depth: strings.Count(p, "/") + 1,
		})
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Path < commands[j].Path })
	return commands, nil
}
