package scaffold

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	p := newProject(t, cliHub, Config{})

	for _, req := range []Request{
		{Command: "deploy", Subcommand: "status"},
		{Command: "build"},
		{Command: "config-set"},
	} {
		_, err := p.s.Add(context.Background(), req)
		require.NoError(t, err)
	}

	commands, err := p.s.List()
	require.NoError(t, err)

	paths := make([]string, 0, len(commands))
	for _, c := range commands {
		paths = append(paths, c.Path)
	}
	assert.Equal(t, []string{"build", "config/set", "deploy", "deploy/status"}, paths)

	assert.Equal(t, 1, commands[0].Depth)
	assert.Equal(t, 2, commands[3].Depth)
	assert.Equal(t, filepath.Join(p.s.CommandsDir(), "deploy", "status.rb"), commands[3].File)
}

func TestList_NoCommandsDir(t *testing.T) {
	p := newProject(t, cliHub, Config{})

	commands, err := p.s.List()
	require.NoError(t, err)
	assert.Empty(t, commands)
}
