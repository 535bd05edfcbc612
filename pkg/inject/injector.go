package inject

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Renderer turns a named template and its payload into text.
type Renderer interface {
	Render(name string, payload any) (string, error)
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	// Force replaces an existing destination instead of skipping it.
	Force bool
}

// Injector performs file generation and in-place injection, reporting each
// step.
type Injector struct {
	renderer Renderer
	reporter Reporter
}

// New creates an Injector. A nil reporter discards results.
func New(renderer Renderer, reporter Reporter) *Injector {
	if reporter == nil {
		reporter = discard{}
	}
	return &Injector{renderer: renderer, reporter: reporter}
}

// Generate renders template to a new file at dest.
//
// If dest exists and opts.Force is false nothing is written, the Exists
// outcome is reported and the returned error wraps ErrAlreadyExists. Any
// other failure reports Errored.
func (i *Injector) Generate(template, dest string, payload any, opts GenerateOptions) (Result, error) {
	result := Result{Path: dest, Site: SiteFile, Outcome: Created, Anchor: -1}

	_, err := os.Stat(dest)
	switch {
	case err == nil:
		if !opts.Force {
			result.Outcome = Exists
			i.reporter.Report(result)
			return result, &SiteError{Path: dest, Site: SiteFile, Err: ErrAlreadyExists}
		}
		result.Outcome = Overwritten
	case !errors.Is(err, fs.ErrNotExist):
		return i.fail(result, &IOError{Op: "stat", Path: dest, Err: err})
	}

	content, err := i.renderer.Render(template, payload)
	if err != nil {
		return i.fail(result, fmt.Errorf("failed to render %s for %s: %w", template, dest, err))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return i.fail(result, &IOError{Op: "create directory for", Path: dest, Err: err})
	}

	if err := WriteFileAtomic(dest, []byte(content), 0644); err != nil {
		return i.fail(result, err)
	}

	i.reporter.Report(result)
	return result, nil
}

// Inject splices payload into the file at path immediately after the
// anchor span, preceded by one newline, and reports Inserted.
//
// The file is replaced atomically; on any failure it is left untouched and
// Errored is reported.
func (i *Injector) Inject(path, payload string, site Site, after Anchor) (Result, error) {
	result := Result{Path: path, Site: site, Outcome: Inserted, Anchor: after.Index}

	data, err := os.ReadFile(path)
	if err != nil {
		return i.fail(result, &IOError{Op: "read", Path: path, Err: err})
	}

	text := string(data)
	if after.Span.Start < 0 || after.Span.Start > after.Span.End || after.Span.End > len(text) {
		return i.fail(result, &SiteError{Path: path, Site: site, Err: ErrSpanOutOfRange})
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := WriteFileAtomic(path, []byte(Splice(text, after.Span, payload)), perm); err != nil {
		return i.fail(result, err)
	}

	i.reporter.Report(result)
	return result, nil
}

// Report forwards a result produced outside the injector, such as a skip or
// an anchor miss decided by the caller, to the same reporter.
func (i *Injector) Report(r Result) {
	i.reporter.Report(r)
}

// fail reports result as Errored and returns it with err.
func (i *Injector) fail(result Result, err error) (Result, error) {
	result.Outcome = Errored
	i.reporter.Report(result)
	return result, err
}

// Splice returns text with "\n"+payload inserted at the end of span.
// The original text is kept intact as the bytes before and after it.
func Splice(text string, span Span, payload string) string {
	var sb strings.Builder
	sb.Grow(len(text) + len(payload) + 1)
	sb.WriteString(text[:span.End])
	sb.WriteString("\n")
	sb.WriteString(payload)
	sb.WriteString(text[span.End:])
	return sb.String()
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create temp file for", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
