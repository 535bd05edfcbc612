// Package report prints scaffold results as aligned status lines, in the
// style of Thor generators:
//
//	      create  lib/app/commands/deploy.rb
//	      inject  lib/app/cli.rb
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/abdul-hamid-achik/teletype/pkg/inject"
)

// Options configures a Printer.
type Options struct {
	// NoColor disables ANSI colors.
	NoColor bool
	// Root, when set, is trimmed from reported paths.
	Root string
}

// Printer writes one status line per result.
type Printer struct {
	w    io.Writer
	root string

	green  *color.Color
	yellow *color.Color
	blue   *color.Color
	red    *color.Color
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	p := &Printer{
		w:      w,
		root:   opts.Root,
		green:  color.New(color.FgGreen, color.Bold),
		yellow: color.New(color.FgYellow, color.Bold),
		blue:   color.New(color.FgBlue, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
	}
	if opts.NoColor || !ColorEnabled(w) {
		for _, c := range []*color.Color{p.green, p.yellow, p.blue, p.red} {
			c.DisableColor()
		}
	}
	return p
}

// Report implements inject.Reporter.
func (p *Printer) Report(r inject.Result) {
	fmt.Fprintf(p.w, "%s  %s\n", p.colorFor(r.Outcome).Sprintf("%12s", r.Outcome.String()), p.rel(r.Path))
}

// Error prints a failure line for an error that has no Result.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s  %v\n", p.red.Sprintf("%12s", "error"), err)
}

func (p *Printer) colorFor(o inject.Outcome) *color.Color {
	switch o {
	case inject.Created, inject.Inserted:
		return p.green
	case inject.Overwritten:
		return p.yellow
	case inject.Exists, inject.Skipped:
		return p.blue
	default:
		return p.red
	}
}

func (p *Printer) rel(path string) string {
	if p.root == "" {
		return path
	}
	if rel, err := filepath.Rel(p.root, path); err == nil {
		return rel
	}
	return path
}

// ColorEnabled reports whether w is a terminal that should receive
// colors. NO_COLOR and the global color.NoColor switch are honored.
func ColorEnabled(w io.Writer) bool {
	if color.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Collector keeps results in memory, for JSON output and tests.
type Collector struct {
	Results []inject.Result
}

// Report implements inject.Reporter.
func (c *Collector) Report(r inject.Result) {
	c.Results = append(c.Results, r)
}

// Multi fans results out to several reporters.
type Multi []inject.Reporter

// Report implements inject.Reporter.
func (m Multi) Report(r inject.Result) {
	for _, rep := range m {
		if rep != nil {
			rep.Report(r)
		}
	}
}
