// Package inject finds anchor points in hub files and splices content after
// them, or renders brand new files, without ever leaving a file half
// written.
package inject

import (
	"regexp"
)

// Site identifies the kind of location being edited.
type Site string

const (
	// SiteFile is the generation of a new file.
	SiteFile Site = "file"
	// SiteCommand is a top-level command dispatch method in the CLI hub.
	SiteCommand Site = "command"
	// SiteRegister is a require + register pair in the CLI hub.
	SiteRegister Site = "register"
	// SiteSubcommand is a subcommand dispatch method in a parent command.
	SiteSubcommand Site = "subcommand"
)

// Span is a byte range [Start, End) within a file's text.
type Span struct {
	Start int
	End   int
}

// Pattern locates an anchor in a text.
type Pattern interface {
	Match(text string) (Span, bool)
	String() string
}

type regexpPattern struct {
	re *regexp.Regexp
}

// Regexp returns a Pattern backed by a compiled regular expression.
// It panics if expr does not compile.
func Regexp(expr string) Pattern {
	return regexpPattern{re: regexp.MustCompile(expr)}
}

func (p regexpPattern) Match(text string) (Span, bool) {
	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[0], End: loc[1]}, true
}

func (p regexpPattern) String() string {
	return p.re.String()
}

// Anchor is the outcome of a successful Select.
type Anchor struct {
	// Index is the position of the winning pattern in the candidate list.
	Index   int
	Pattern Pattern
	Span    Span
}

// Candidates is an ordered list of patterns for one site.
type Candidates []Pattern

// Select tries each pattern in order and returns the first that matches.
// Later patterns are not evaluated once one matches.
func (c Candidates) Select(text string) (Anchor, bool) {
	for i, p := range c {
		if span, ok := p.Match(text); ok {
			return Anchor{Index: i, Pattern: p, Span: span}, true
		}
	}
	return Anchor{Index: -1}, false
}

// CommandSite returns the anchors for a new top-level command: the end of
// the version command, the end of the method body following it, or the
// line opening the CLI class.
func CommandSite(appIndent string) Candidates {
	return Candidates{
		Regexp(`(?s)def version.*?:version\n`),
		Regexp(`(?s)def version.*?` + regexp.QuoteMeta(appIndent) + `  end\n`),
		Regexp(`class CLI < Thor\n`),
	}
}

// RegisterSite returns the anchors for registering a subcommand-bearing
// command: after an existing require + register pair, else anywhere a
// command could go.
func RegisterSite(appIndent string) Candidates {
	site := Candidates{
		Regexp(`require_relative [^\n]*\n[ \t]*register [^\n]*\n`),
	}
	return append(site, CommandSite(appIndent)...)
}

// SubcommandSite returns the anchors for a subcommand dispatch method in
// its parent command file: the namespace line, else the class line.
func SubcommandSite() Candidates {
	return Candidates{
		Regexp(`namespace [^\n]*\n`),
		Regexp(`class [^\n]*? < Thor\n`),
	}
}
