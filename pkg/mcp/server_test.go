package mcp

import (
	"testing"
)

func TestNewServer(t *testing.T) {
	tmpDir := t.TempDir()
	server := NewServer(tmpDir)

	if server == nil {
		t.Fatal("NewServer returned nil")
	}

	if server.workdir != tmpDir {
		t.Errorf("workdir = %q, want %q", server.workdir, tmpDir)
	}

	if server.mcpServer == nil {
		t.Error("mcpServer should not be nil")
	}
}

func TestServer_Workdir(t *testing.T) {
	tests := []struct {
		name    string
		workdir string
	}{
		{"absolute path", "/Users/test/my_tool"},
		{"relative path", "./my_tool"},
		{"current dir", "."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(tt.workdir)

			if server.workdir != tt.workdir {
				t.Errorf("workdir = %q, want %q", server.workdir, tt.workdir)
			}
		})
	}
}
