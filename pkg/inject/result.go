package inject

// Outcome is what happened to a single file at a single site.
type Outcome int

const (
	// Created means a new file was written.
	Created Outcome = iota
	// Overwritten means an existing file was replaced on request.
	Overwritten
	// Exists means generation was skipped because the file exists.
	Exists
	// Inserted means content was spliced in after an anchor.
	Inserted
	// Skipped means the content was already present.
	Skipped
	// NoAnchor means no candidate anchor matched and nothing was written.
	NoAnchor
	// Errored means the step failed on rendering or I/O and aborted the run.
	Errored
)

// String returns the status verb shown to users.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "create"
	case Overwritten:
		return "force"
	case Exists:
		return "exist"
	case Inserted:
		return "inject"
	case Skipped:
		return "skip"
	case NoAnchor:
		return "miss"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome is a failed step.
func (o Outcome) Failed() bool {
	return o == NoAnchor || o == Errored
}

// Changed reports whether the outcome wrote to disk.
func (o Outcome) Changed() bool {
	return o == Created || o == Overwritten || o == Inserted
}

// Result is the outcome of one attempted step.
type Result struct {
	Path    string
	Site    Site
	Outcome Outcome
	// Anchor is the index of the candidate pattern used, or -1.
	Anchor int
}

// Reporter receives every Result produced.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result)

// Report calls f(r).
func (f ReporterFunc) Report(r Result) {
	f(r)
}

type discard struct{}

func (discard) Report(Result) {}
