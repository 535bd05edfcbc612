package inject

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer map[string]string

func (s stubRenderer) Render(name string, _ any) (string, error) {
	out, ok := s[name]
	if !ok {
		return "", errors.New("unknown template " + name)
	}
	return out, nil
}

type collector struct {
	results []Result
}

func (c *collector) Report(r Result) {
	c.results = append(c.results, r)
}

func TestSplice_NonDestructive(t *testing.T) {
	texts := []string{hubWithVersion, hubWithoutMap, hubBare}
	payload := "    desc 'deploy', 'x'\n    def deploy(*)\n    end\n"

	for _, text := range texts {
		anchor, ok := CommandSite("  ").Select(text)
		require.True(t, ok)

		out := Splice(text, anchor.Span, payload)
		assert.Equal(t, len(text)+1+len(payload), len(out))
		assert.Equal(t, text, out[:anchor.Span.End]+out[anchor.Span.End+1+len(payload):],
			"original bytes must survive in order")
		assert.Contains(t, out, "\n"+payload)
	}
}

func TestInjector_Inject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.rb")
	require.NoError(t, os.WriteFile(path, []byte(hubWithVersion), 0600))

	rep := &collector{}
	inj := New(stubRenderer{}, rep)

	anchor, ok := CommandSite("  ").Select(hubWithVersion)
	require.True(t, ok)

	payload := "    desc 'deploy', 'Command description...'\n"
	result, err := inj.Inject(path, payload, SiteCommand, anchor)
	require.NoError(t, err)
	assert.Equal(t, Inserted, result.Outcome)
	assert.Equal(t, 0, result.Anchor)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ":version\n\n"+payload+"  end\nend\n")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permissions are preserved")

	require.Len(t, rep.results, 1)
	assert.Equal(t, SiteCommand, rep.results[0].Site)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestInjector_Inject_MissingFile(t *testing.T) {
	inj := New(stubRenderer{}, nil)

	_, err := inj.Inject(filepath.Join(t.TempDir(), "missing.rb"), "x\n", SiteCommand, Anchor{})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInjector_Inject_SpanOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.rb")
	require.NoError(t, os.WriteFile(path, []byte(hubBare), 0644))

	inj := New(stubRenderer{}, nil)
	_, err := inj.Inject(path, "x\n", SiteCommand, Anchor{Span: Span{Start: 0, End: len(hubBare) + 10}})
	require.ErrorIs(t, err, ErrSpanOutOfRange)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, hubBare, string(data), "file untouched on failure")
}

func TestInjector_Generate(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "lib", "app", "commands", "deploy.rb")

	rep := &collector{}
	inj := New(stubRenderer{"command": "class Deploy\nend\n"}, rep)

	result, err := inj.Generate("command", dest, nil, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, Created, result.Outcome)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "class Deploy\nend\n", string(data))

	// Second run is skipped.
	result, err = inj.Generate("command", dest, nil, GenerateOptions{})
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, Exists, result.Outcome)

	var siteErr *SiteError
	require.ErrorAs(t, err, &siteErr)
	assert.Equal(t, dest, siteErr.Path)
	assert.Equal(t, SiteFile, siteErr.Site)

	require.Len(t, rep.results, 2)
	assert.Equal(t, Exists, rep.results[1].Outcome)
}

func TestInjector_Generate_Force(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "deploy.rb")
	require.NoError(t, os.WriteFile(dest, []byte("old\n"), 0644))

	inj := New(stubRenderer{"command": "new\n"}, nil)
	result, err := inj.Generate("command", dest, nil, GenerateOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, Overwritten, result.Outcome)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestInjector_Generate_RenderError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "deploy.rb")

	inj := New(stubRenderer{}, nil)
	_, err := inj.Generate("missing", dest, nil, GenerateOptions{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to render missing"))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "nothing written when rendering fails")
}

func TestInjector_FailuresAreReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "commands")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory\n"), 0644))

	rep := &collector{}
	inj := New(stubRenderer{"command": "class Deploy\nend\n"}, rep)

	tests := []struct {
		name string
		run  func() (Result, error)
	}{
		{"render", func() (Result, error) {
			return inj.Generate("missing", filepath.Join(dir, "a.rb"), nil, GenerateOptions{})
		}},
		{"stat", func() (Result, error) {
			return inj.Generate("command", filepath.Join(blocker, "deploy.rb"), nil, GenerateOptions{})
		}},
		{"read", func() (Result, error) {
			return inj.Inject(filepath.Join(dir, "missing.rb"), "x\n", SiteCommand, Anchor{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep.results = nil

			result, err := tt.run()
			require.Error(t, err)
			assert.Equal(t, Errored, result.Outcome)
			require.Len(t, rep.results, 1)
			assert.Equal(t, result, rep.results[0])
		})
	}
}

func TestWriteFileAtomic_CreateTempFails(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "cli.rb")
	require.NoError(t, os.WriteFile(parent, []byte(hubBare), 0644))

	err := WriteFileAtomic(filepath.Join(parent, "deploy.rb"), []byte("x\n"), 0644)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create temp file for", ioErr.Op)

	data, err := os.ReadFile(parent)
	require.NoError(t, err)
	assert.Equal(t, hubBare, string(data))
}

func TestWriteFileAtomic_RenameFails(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "cli.rb")
	inner := filepath.Join(dest, "keep.rb")
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(inner, []byte(hubBare), 0644))

	err := WriteFileAtomic(dest, []byte("replacement\n"), 0644)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "rename", ioErr.Op)
	assert.Equal(t, dest, ioErr.Path)

	data, err := os.ReadFile(inner)
	require.NoError(t, err)
	assert.Equal(t, hubBare, string(data), "existing content untouched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file removed")
	assert.Equal(t, "cli.rb", entries[0].Name())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		verb    string
		failed  bool
		changed bool
	}{
		{Created, "create", false, true},
		{Overwritten, "force", false, true},
		{Exists, "exist", false, false},
		{Inserted, "inject", false, true},
		{Skipped, "skip", false, false},
		{NoAnchor, "miss", true, false},
		{Errored, "error", true, false},
		{Outcome(99), "unknown", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			assert.Equal(t, tt.verb, tt.outcome.String())
			assert.Equal(t, tt.failed, tt.outcome.Failed())
			assert.Equal(t, tt.changed, tt.outcome.Changed())
		})
	}
}

func TestErrors(t *testing.T) {
	siteErr := &SiteError{Path: "lib/app/cli.rb", Site: SiteCommand, Err: ErrAnchorNotFound}
	assert.Equal(t, "lib/app/cli.rb (command): no anchor matched", siteErr.Error())
	assert.ErrorIs(t, siteErr, ErrAnchorNotFound)

	ioErr := &IOError{Op: "read", Path: "x.rb", Err: os.ErrPermission}
	assert.Equal(t, "failed to read x.rb: permission denied", ioErr.Error())
	assert.ErrorIs(t, ioErr, os.ErrPermission)
}
