// Package scaffold adds commands and subcommands to a Thor based Ruby CLI.
//
// An Add run generates the command file, then registers it in the CLI hub
// (lib/<app>/cli.rb) and, for subcommands, in the parent command file.
// Every hub edit is guarded by a presence check so running Add twice with
// the same names leaves the files as they were after the first run.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/teletype/pkg/generator"
	"github.com/abdul-hamid-achik/teletype/pkg/inject"
	"github.com/abdul-hamid-achik/teletype/pkg/naming"
)

// Ext is the extension of generated files.
const Ext = ".rb"

// Config is resolved once by the caller and never re-derived.
type Config struct {
	// Root is the project root directory.
	Root string
	// AppName is the directory under lib/ holding cli.rb. Defaults to the
	// base name of Root.
	AppName string
	// Force overwrites an existing command or subcommand file. A parent
	// command file is never overwritten.
	Force bool
	// Description is used for the Thor desc of new commands.
	Description string
}

// Request names the command and optional subcommand to add.
type Request struct {
	Command    string
	Subcommand string
}

// Scaffolder runs Add against one project.
type Scaffolder struct {
	cfg      Config
	renderer inject.Renderer
	injector *inject.Injector
}

// Option customizes a Scaffolder.
type Option func(*scaffolderOptions)

type scaffolderOptions struct {
	renderer inject.Renderer
	reporter inject.Reporter
}

// WithRenderer replaces the built-in templates.
func WithRenderer(r inject.Renderer) Option {
	return func(o *scaffolderOptions) { o.renderer = r }
}

// WithReporter receives every step result.
func WithReporter(r inject.Reporter) Option {
	return func(o *scaffolderOptions) { o.reporter = r }
}

// New creates a Scaffolder.
func New(cfg Config, opts ...Option) *Scaffolder {
	o := scaffolderOptions{renderer: generator.Templates{}}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.AppName == "" {
		cfg.AppName = AppNameFromRoot(cfg.Root)
	}

	return &Scaffolder{
		cfg:      cfg,
		renderer: o.renderer,
		injector: inject.New(o.renderer, o.reporter),
	}
}

// AppNameFromRoot returns the base name of the absolute project root.
func AppNameFromRoot(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(root)
	}
	return filepath.Base(abs)
}

// Config returns the resolved configuration.
func (s *Scaffolder) Config() Config {
	return s.cfg
}

// LibDir is lib/<app> under the project root.
func (s *Scaffolder) LibDir() string {
	return filepath.Join(s.cfg.Root, "lib", s.cfg.AppName)
}

// HubPath is the CLI entry file.
func (s *Scaffolder) HubPath() string {
	return filepath.Join(s.LibDir(), "cli"+Ext)
}

// CommandsDir holds the generated command files.
func (s *Scaffolder) CommandsDir() string {
	return filepath.Join(s.LibDir(), "commands")
}

// CommandPath is the file of command cmd, optionally of its subcommand.
func (s *Scaffolder) CommandPath(cmd, subcmd naming.Name) string {
	rel := cmd.Path()
	if subcmd != "" {
		rel += "/" + subcmd.Path()
	}
	return filepath.Join(s.CommandsDir(), filepath.FromSlash(rel)+Ext)
}

// Add scaffolds req.
//
// The returned error is non-nil only for fatal failures (invalid input or
// I/O); the Run is returned even then, describing the steps completed.
// Missing anchors are recorded in Run.Errors and do not stop the run.
func (s *Scaffolder) Add(ctx context.Context, req Request) (*Run, error) {
	run := &Run{Request: req}
	run.enter(StateStart)

	cmd, subcmd, err := s.resolve(req)
	if err != nil {
		return run, err
	}
	payload := generator.NewPayload(naming.Name(s.cfg.AppName), cmd, subcmd, s.cfg.Description)
	run.enter(StateNameResolved)

	if err := ctx.Err(); err != nil {
		return run, err
	}

	cmdFile := s.CommandPath(cmd, "")
	if subcmd == "" {
		if err := s.generate(run, generator.CommandTemplate, cmdFile, payload, s.cfg.Force); err != nil {
			return run, err
		}
	} else {
		// The parent holds the dispatch methods of earlier subcommands, so
		// it is never overwritten.
		if err := s.generate(run, generator.ParentTemplate, cmdFile, payload, false); err != nil {
			return run, err
		}
		if err := s.generate(run, generator.SubcommandTemplate, s.CommandPath(cmd, subcmd), payload, s.cfg.Force); err != nil {
			return run, err
		}
	}
	run.enter(StatePrimaryFileGenerated)

	if err := ctx.Err(); err != nil {
		return run, err
	}

	hub := site{path: s.HubPath(), payload: payload}
	if subcmd == "" {
		hub.kind = inject.SiteCommand
		hub.candidates = inject.CommandSite(payload.AppIndent)
		hub.template = generator.DispatchTemplate
		hub.present = func(text string) bool { return inject.MethodDefined(text, payload.CmdUnderscored) }
	} else {
		hub.kind = inject.SiteRegister
		hub.candidates = inject.RegisterSite(payload.AppIndent)
		hub.template = generator.RegisterTemplate
		hub.present = func(text string) bool { return inject.Required(text, "commands/"+payload.CmdPath) }
	}

	outcome, err := s.apply(run, hub, StateHubChecked)
	if err != nil {
		return run, err
	}
	run.enter(stateAfter(outcome, StateHubInjected, StateHubSkipped, StateHubMissed))

	if subcmd != "" {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		parent := site{
			path:       cmdFile,
			kind:       inject.SiteSubcommand,
			candidates: inject.SubcommandSite(),
			template:   generator.SubdispatchTemplate,
			payload:    payload,
			present:    func(text string) bool { return inject.MethodDefined(text, payload.SubcmdUnderscored) },
		}
		outcome, err := s.apply(run, parent, StateSubHubChecked)
		if err != nil {
			return run, err
		}
		run.enter(stateAfter(outcome, StateSubHubInjected, StateSubHubSkipped, StateSubHubMissed))
	}

	run.enter(StateDone)
	return run, nil
}

func (s *Scaffolder) resolve(req Request) (naming.Name, naming.Name, error) {
	if err := naming.Validate(req.Command); err != nil {
		return "", "", fmt.Errorf("%w: command: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.Subcommand) != "" {
		if err := naming.Validate(req.Subcommand); err != nil {
			return "", "", fmt.Errorf("%w: subcommand: %v", ErrInvalidInput, err)
		}
	}
	if err := naming.Validate(s.cfg.AppName); err != nil {
		return "", "", fmt.Errorf("%w: app name: %v", ErrInvalidInput, err)
	}
	return naming.Name(strings.TrimSpace(req.Command)), naming.Name(strings.TrimSpace(req.Subcommand)), nil
}

// generate renders a new file. An existing file is a warning, not an error.
func (s *Scaffolder) generate(run *Run, template, dest string, payload generator.Payload, force bool) error {
	res, err := s.injector.Generate(template, dest, payload, inject.GenerateOptions{Force: force})
	run.record(res)
	if errors.Is(err, inject.ErrAlreadyExists) {
		run.Warnings = append(run.Warnings, err)
		return nil
	}
	return err
}

// site is one check-then-inject edit.
type site struct {
	path       string
	kind       inject.Site
	candidates inject.Candidates
	template   string
	payload    generator.Payload
	present    func(text string) bool
}

func (s *Scaffolder) apply(run *Run, st site, checked State) (inject.Outcome, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		res := inject.Result{Path: st.path, Site: st.kind, Outcome: inject.Errored, Anchor: -1}
		s.injector.Report(res)
		run.record(res)
		return res.Outcome, &inject.IOError{Op: "read", Path: st.path, Err: err}
	}
	text := string(data)
	run.enter(checked)

	if st.present(text) {
		res := inject.Result{Path: st.path, Site: st.kind, Outcome: inject.Skipped, Anchor: -1}
		s.injector.Report(res)
		run.record(res)
		return res.Outcome, nil
	}

	anchor, ok := st.candidates.Select(text)
	if !ok {
		res := inject.Result{Path: st.path, Site: st.kind, Outcome: inject.NoAnchor, Anchor: -1}
		s.injector.Report(res)
		run.record(res)
		run.Errors = append(run.Errors, &inject.SiteError{Path: st.path, Site: st.kind, Err: inject.ErrAnchorNotFound})
		return res.Outcome, nil
	}

	content, err := s.renderer.Render(st.template, st.payload)
	if err != nil {
		res := inject.Result{Path: st.path, Site: st.kind, Outcome: inject.Errored, Anchor: anchor.Index}
		s.injector.Report(res)
		run.record(res)
		return res.Outcome, fmt.Errorf("failed to render %s for %s: %w", st.template, st.path, err)
	}

	res, err := s.injector.Inject(st.path, content, st.kind, anchor)
	run.record(res)
	return res.Outcome, err
}

func stateAfter(o inject.Outcome, injected, skipped, missed State) State {
	switch o {
	case inject.Inserted:
		return injected
	case inject.Skipped:
		return skipped
	default:
		return missed
	}
}
