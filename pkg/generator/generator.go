// Package generator renders the Ruby sources teletype writes: command
// files and the snippets injected into hub files.
package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/abdul-hamid-achik/teletype/pkg/naming"
)

// DefaultDescription is used when no command description is given.
const DefaultDescription = "Command description..."

// Template names understood by Render.
const (
	CommandTemplate     = "command"
	ParentTemplate      = "parent"
	SubcommandTemplate  = "subcommand"
	DispatchTemplate    = "dispatch"
	RegisterTemplate    = "register"
	SubdispatchTemplate = "subdispatch"
)

// Payload holds every slot a template may reference. All values are
// derived from the app, command and subcommand names.
type Payload struct {
	AppConstant    string
	AppUnderscored string
	AppParts       []string
	AppIndent      string

	CmdConstant    string
	CmdUnderscored string
	CmdParts       []string
	CmdPath        string
	CmdIndent      string
	// CmdFilePath is the require_relative path from a command file to the
	// app's base command class.
	CmdFilePath string

	SubcmdConstant    string
	SubcmdUnderscored string
	SubcmdParts       []string
	SubcmdPath        string
	SubcmdFilePath    string

	Description string
}

// NewPayload derives a Payload. subcmd may be empty.
func NewPayload(app, cmd, subcmd naming.Name, description string) Payload {
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}

	p := Payload{
		AppConstant:    app.Constant(),
		AppUnderscored: app.Underscored(),
		AppParts:       app.ConstantParts(),
		AppIndent:      app.Indent(),

		CmdConstant:    cmd.Constant(),
		CmdUnderscored: cmd.Underscored(),
		CmdParts:       cmd.ConstantParts(),
		CmdPath:        cmd.Path(),
		CmdIndent:      cmd.Indent(),
		CmdFilePath:    baseCommandPath(cmd.Depth()),

		Description: description,
	}

	if subcmd != "" {
		p.SubcmdConstant = subcmd.Constant()
		p.SubcmdUnderscored = subcmd.Underscored()
		p.SubcmdParts = subcmd.ConstantParts()
		p.SubcmdPath = subcmd.Path()
		p.SubcmdFilePath = baseCommandPath(cmd.Depth() + subcmd.Depth())
	}

	return p
}

// CmdObject is the fully qualified command class.
func (p Payload) CmdObject() string {
	return p.AppConstant + "::Commands::" + p.CmdConstant
}

// SubcmdObject is the fully qualified subcommand class.
func (p Payload) SubcmdObject() string {
	return p.CmdObject() + "::" + p.SubcmdConstant
}

// CmdBasename is the last path segment of the command, the directory its
// subcommand files live in relative to the command file.
func (p Payload) CmdBasename() string {
	if i := strings.LastIndex(p.CmdPath, "/"); i >= 0 {
		return p.CmdPath[i+1:]
	}
	return p.CmdPath
}

// CommandModules are the modules enclosing the command class.
func (p Payload) CommandModules() []string {
	mods := append([]string{}, p.AppParts...)
	mods = append(mods, "Commands")
	if len(p.CmdParts) > 1 {
		mods = append(mods, p.CmdParts[:len(p.CmdParts)-1]...)
	}
	return mods
}

// CommandClass is the unqualified command class name.
func (p Payload) CommandClass() string {
	if len(p.CmdParts) == 0 {
		return ""
	}
	return p.CmdParts[len(p.CmdParts)-1]
}

// SubcommandModules are the modules enclosing the subcommand class.
func (p Payload) SubcommandModules() []string {
	mods := append([]string{}, p.AppParts...)
	mods = append(mods, "Commands")
	mods = append(mods, p.CmdParts...)
	if len(p.SubcmdParts) > 1 {
		mods = append(mods, p.SubcmdParts[:len(p.SubcmdParts)-1]...)
	}
	return mods
}

// SubcommandClass is the unqualified subcommand class name.
func (p Payload) SubcommandClass() string {
	if len(p.SubcmdParts) == 0 {
		return ""
	}
	return p.SubcmdParts[len(p.SubcmdParts)-1]
}

// Templates renders the built-in templates. The zero value is ready to use.
type Templates struct{}

// Render executes the named template with payload.
func (Templates) Render(name string, payload any) (string, error) {
	content, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}
	return executeTemplate(name, content, payload)
}

// Names returns the names of the built-in templates.
func Names() []string {
	return []string{
		CommandTemplate,
		ParentTemplate,
		SubcommandTemplate,
		DispatchTemplate,
		RegisterTemplate,
		SubdispatchTemplate,
	}
}

var funcs = template.FuncMap{
	"indent": naming.Indent,
	"open":   openModules,
	"close":  closeModules,
	"squote": rubyQuote,
}

func executeTemplate(name, tmplContent string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// baseCommandPath climbs one directory per namespace level back to
// lib/<app>/cmd.rb.
func baseCommandPath(depth int) string {
	return strings.Repeat("../", depth) + "cmd"
}

func openModules(mods []string) string {
	var sb strings.Builder
	for i, m := range mods {
		sb.WriteString(naming.Indent(i))
		sb.WriteString("module ")
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	return sb.String()
}

func closeModules(n int) string {
	var sb strings.Builder
	for i := n - 1; i >= 0; i-- {
		sb.WriteString(naming.Indent(i))
		sb.WriteString("end\n")
	}
	return sb.String()
}

// rubyQuote returns s as a single-quoted Ruby string literal.
func rubyQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
