package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/teletype/pkg/inject"
)

func TestPrinter_Report(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer
	p := New(&buf, Options{NoColor: true, Root: root})

	p.Report(inject.Result{Path: filepath.Join(root, "lib", "app", "cli.rb"), Outcome: inject.Inserted})
	p.Report(inject.Result{Path: filepath.Join(root, "lib", "app", "commands", "deploy.rb"), Outcome: inject.Exists})
	p.Report(inject.Result{Path: "/elsewhere/x.rb", Outcome: inject.NoAnchor})

	want := "      inject  " + filepath.Join("lib", "app", "cli.rb") + "\n" +
		"       exist  " + filepath.Join("lib", "app", "commands", "deploy.rb") + "\n"
	assert.Contains(t, buf.String(), want)
	assert.Contains(t, buf.String(), "        miss  ")
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes with NoColor")
}

func TestPrinter_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{})

	p.Report(inject.Result{Path: "cli.rb", Outcome: inject.Created})
	assert.Equal(t, "      create  cli.rb\n", buf.String())
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{NoColor: true}).Error(errors.New("boom"))
	assert.Equal(t, "       error  boom\n", buf.String())
}

func TestColorEnabled_Buffer(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}

func TestCollectorAndMulti(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	m := Multi{a, nil, b}

	m.Report(inject.Result{Path: "x", Outcome: inject.Skipped})
	require.Len(t, a.Results, 1)
	require.Len(t, b.Results, 1)
	assert.Equal(t, inject.Skipped, b.Results[0].Outcome)
}
