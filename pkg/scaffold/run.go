package scaffold

import (
	"errors"
	"path/filepath"

	"github.com/abdul-hamid-achik/teletype/pkg/inject"
)

// ErrInvalidInput means the command or subcommand name is missing or
// malformed. Nothing has been written when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// State is a step of an Add run.
type State string

const (
	StateStart                State = "start"
	StateNameResolved         State = "name_resolved"
	StatePrimaryFileGenerated State = "primary_file_generated"
	StateHubChecked           State = "hub_checked"
	StateHubInjected          State = "hub_injected"
	StateHubSkipped           State = "hub_skipped"
	StateHubMissed            State = "hub_missed"
	StateSubHubChecked        State = "sub_hub_checked"
	StateSubHubInjected       State = "sub_hub_injected"
	StateSubHubSkipped        State = "sub_hub_skipped"
	StateSubHubMissed         State = "sub_hub_missed"
	StateDone                 State = "done"
)

// Run records what an Add call did.
type Run struct {
	Request Request
	// States lists the states visited, in order.
	States []State
	// Results has one entry per attempted file step.
	Results []inject.Result
	// Warnings are skipped generations (inject.ErrAlreadyExists).
	Warnings []error
	// Errors are failed, non-fatal steps (inject.ErrAnchorNotFound).
	Errors []error
}

// State returns the last state reached.
func (r *Run) State() State {
	if len(r.States) == 0 {
		return ""
	}
	return r.States[len(r.States)-1]
}

// Failed reports whether any step failed.
func (r *Run) Failed() bool {
	return len(r.Errors) > 0
}

// Succeeded counts the steps that did not fail.
func (r *Run) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if !res.Outcome.Failed() {
			n++
		}
	}
	return n
}

// Err joins the failed steps, or returns nil.
func (r *Run) Err() error {
	return errors.Join(r.Errors...)
}

// Changed returns the paths written during the run.
func (r *Run) Changed() []string {
	var paths []string
	for _, res := range r.Results {
		if res.Outcome.Changed() {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

func (r *Run) enter(s State) {
	r.States = append(r.States, s)
}

func (r *Run) record(res inject.Result) {
	r.Results = append(r.Results, res)
}

// Summary is the machine readable form of a Run.
type Summary struct {
	Command    string   `json:"command"`
	Subcommand string   `json:"subcommand,omitempty"`
	State      State    `json:"state"`
	Steps      []Step   `json:"steps"`
	Warnings   []string `json:"warnings,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// Step is one reported result.
type Step struct {
	Action string      `json:"action"`
	Site   inject.Site `json:"site"`
	Path   string      `json:"path"`
}

// Summary converts the run, printing paths relative to root when possible.
func (r *Run) Summary(root string) Summary {
	s := Summary{
		Command:    r.Request.Command,
		Subcommand: r.Request.Subcommand,
		State:      r.State(),
		Steps:      make([]Step, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		path := res.Path
		if root != "" {
			if rel, err := filepath.Rel(root, path); err == nil {
				path = filepath.ToSlash(rel)
			}
		}
		s.Steps = append(s.Steps, Step{Action: res.Outcome.String(), Site: res.Site, Path: path})
	}
	for _, w := range r.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
	for _, e := range r.Errors {
		s.Errors = append(s.Errors, e.Error())
	}
	return s
}
