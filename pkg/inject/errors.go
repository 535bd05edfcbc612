package inject

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound means no candidate pattern matched the target file.
	ErrAnchorNotFound = errors.New("no anchor matched")
	// ErrAlreadyExists means a file to be generated is already on disk.
	ErrAlreadyExists = errors.New("file already exists")
	// ErrSpanOutOfRange means an anchor span does not fit the current file.
	ErrSpanOutOfRange = errors.New("anchor span out of range")
)

// SiteError ties an error to the file and site it happened at.
type SiteError struct {
	Path string
	Site Site
	Err  error
}

func (e *SiteError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Site, e.Err)
}

func (e *SiteError) Unwrap() error {
	return e.Err
}

// IOError is a read or write failure on a touched file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
